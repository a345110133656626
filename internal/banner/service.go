package banner

import (
	"gorm.io/gorm"
)

type BannerService struct {
	DB *gorm.DB
}

// GetAllBanners lists every banner, manual display order first, then newest.
func (s *BannerService) GetAllBanners() ([]Banner, error) {
	banners := []Banner{}
	result := s.DB.Order("display_order ASC, created_at DESC").Find(&banners)
	if result.Error != nil {
		return nil, result.Error
	}
	return banners, nil
}

func (s *BannerService) CreateBanner(input CreateBannerInput) (*Banner, error) {
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	banner := Banner{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Image:    input.Image,
		PublicID: input.PublicID,
		Link:     input.Link,
		BtnText:  input.BtnText,
		Order:    input.Order,
		Active:   active,
	}

	if err := s.DB.Create(&banner).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (s *BannerService) UpdateBanner(id uint, input UpdateBannerInput) (*Banner, error) {
	var banner Banner
	if err := s.DB.First(&banner, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Subtitle != nil {
		updates["subtitle"] = *input.Subtitle
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.PublicID != nil {
		updates["public_id"] = *input.PublicID
	}
	if input.Link != nil {
		updates["link"] = *input.Link
	}
	if input.BtnText != nil {
		updates["btn_text"] = *input.BtnText
	}
	if input.Order != nil {
		updates["display_order"] = *input.Order
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&banner).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &banner, nil
}

func (s *BannerService) DeleteBanner(id uint) error {
	var banner Banner
	if err := s.DB.First(&banner, id).Error; err != nil {
		return err
	}
	return s.DB.Delete(&banner).Error
}

// DeleteBanners removes every banner whose id is in ids. The associated
// Cloudinary assets are left in place; only their keys go away with the rows.
func (s *BannerService) DeleteBanners(ids []uint) (int64, error) {
	result := s.DB.Where("id IN ?", ids).Delete(&Banner{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
