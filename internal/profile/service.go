package profile

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService struct {
	DB *gorm.DB
}

// GetProfile returns the singleton row, creating it with defaults when the
// collection is still empty.
func (s *ProfileService) GetProfile() (*SchoolProfile, error) {
	var profile SchoolProfile
	err := s.DB.Order("id ASC").First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = SchoolProfile{
		Name:   defaultName,
		Vision: defaultVision,
	}
	if err := s.DB.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile upserts into the singleton: the row is created first when
// missing, then the supplied fields are merged in place.
func (s *ProfileService) UpdateProfile(input UpdateProfileInput) (*SchoolProfile, error) {
	profile, err := s.GetProfile()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Whatsapp != nil {
		updates["whatsapp"] = *input.Whatsapp
	}
	if input.MapsEmbedURL != nil {
		updates["maps_embed_url"] = *input.MapsEmbedURL
	}
	if input.Vision != nil {
		updates["vision"] = *input.Vision
	}
	if input.Mission != nil {
		updates["mission"] = pq.StringArray(*input.Mission)
	}
	if input.History != nil {
		updates["history"] = *input.History
	}
	if input.Socials != nil {
		updates["socials"] = datatypes.NewJSONType(*input.Socials)
	}
	if input.ThemeColor != nil {
		updates["theme_color"] = *input.ThemeColor
	}

	if len(updates) > 0 {
		if err := s.DB.Model(profile).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return profile, nil
}
