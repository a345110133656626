package gallery

import "time"

// Category tags a gallery photo. Writes accept any string (the public site
// has historically stored ad hoc categories); the enum governs filtering.
type Category string

const (
	CategoryKegiatan  Category = "Kegiatan"
	CategoryFasilitas Category = "Fasilitas"
	CategoryPrestasi  Category = "Prestasi"
)

// CategoryAll is the list sentinel meaning "no filter".
const CategoryAll = "All"

func (c Category) Valid() bool {
	switch c {
	case CategoryKegiatan, CategoryFasilitas, CategoryPrestasi:
		return true
	}
	return false
}

type GalleryItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Caption   string    `gorm:"size:255" json:"caption"`
	Image     string    `gorm:"type:text;not null" json:"image"`
	PublicID  string    `gorm:"size:255;column:public_id" json:"public_id"`
	Category  string    `gorm:"size:100;not null;default:'Kegiatan'" json:"category"`
	Featured  bool      `gorm:"not null;default:false" json:"featured"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GalleryItem) TableName() string {
	return "gallery_items"
}

type CreateGalleryInput struct {
	Caption  string `json:"caption"`
	Image    string `json:"image" binding:"required"`
	PublicID string `json:"public_id"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
}

// Partition splits items into facility photos and everything else. The
// facilities screen and the general gallery share one collection; this is
// the single place that split is defined.
func Partition(items []GalleryItem) (facilities, others []GalleryItem) {
	facilities = []GalleryItem{}
	others = []GalleryItem{}
	for _, item := range items {
		if Category(item.Category) == CategoryFasilitas {
			facilities = append(facilities, item)
		} else {
			others = append(others, item)
		}
	}
	return facilities, others
}
