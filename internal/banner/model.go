package banner

import "time"

type Banner struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	Subtitle  string    `gorm:"size:255" json:"subtitle"`
	Image     string    `gorm:"type:text;not null" json:"image"`
	PublicID  string    `gorm:"size:255;column:public_id" json:"public_id"`
	Link      string    `gorm:"size:512" json:"link"`
	BtnText   string    `gorm:"size:100;column:btn_text" json:"btn_text"`
	Order     int       `gorm:"not null;default:0;column:display_order" json:"order"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Banner) TableName() string {
	return "banners"
}

type CreateBannerInput struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image" binding:"required"`
	PublicID string `json:"public_id"`
	Link     string `json:"link"`
	BtnText  string `json:"btn_text"`
	Order    int    `json:"order"`
	Active   *bool  `json:"active"`
}

// UpdateBannerInput carries only the fields present in the request body;
// nil pointers are left untouched by the merge.
type UpdateBannerInput struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Image    *string `json:"image"`
	PublicID *string `json:"public_id"`
	Link     *string `json:"link"`
	BtnText  *string `json:"btn_text"`
	Order    *int    `json:"order"`
	Active   *bool   `json:"active"`
}

type BulkDeleteInput struct {
	IDs []uint `json:"ids"`
}
