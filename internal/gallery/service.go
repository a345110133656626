package gallery

import (
	"gorm.io/gorm"
)

type GalleryService struct {
	DB *gorm.DB
}

// GetItems lists gallery photos newest first. An empty or "All" category
// returns everything.
func (s *GalleryService) GetItems(category string) ([]GalleryItem, error) {
	items := []GalleryItem{}

	query := s.DB.Order("created_at DESC")
	if category != "" && category != CategoryAll {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetFacilities returns only the facility photos, via the shared partition.
func (s *GalleryService) GetFacilities() ([]GalleryItem, error) {
	items, err := s.GetItems("")
	if err != nil {
		return nil, err
	}
	facilities, _ := Partition(items)
	return facilities, nil
}

func (s *GalleryService) CreateItem(input CreateGalleryInput) (*GalleryItem, error) {
	category := input.Category
	if category == "" {
		category = string(CategoryKegiatan)
	}

	item := GalleryItem{
		Caption:  input.Caption,
		Image:    input.Image,
		PublicID: input.PublicID,
		Category: category,
		Featured: input.Featured,
	}

	if err := s.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GalleryService) DeleteItem(id uint) error {
	var item GalleryItem
	if err := s.DB.First(&item, id).Error; err != nil {
		return err
	}
	return s.DB.Delete(&item).Error
}
