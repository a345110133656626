package dashboard

import (
	"gorm.io/gorm"

	"school-admin-api/internal/banner"
	"school-admin-api/internal/gallery"
	"school-admin-api/internal/message"
	"school-admin-api/internal/news"
)

type DashboardService struct {
	DB *gorm.DB
}

type Counts struct {
	Banners        int64 `json:"banners"`
	GalleryItems   int64 `json:"gallery_items"`
	News           int64 `json:"news"`
	PublishedNews  int64 `json:"published_news"`
	Messages       int64 `json:"messages"`
	UnreadMessages int64 `json:"unread_messages"`
}

// GetCounts aggregates the totals shown on the admin landing page.
func (s *DashboardService) GetCounts() (*Counts, error) {
	var counts Counts

	if err := s.DB.Model(&banner.Banner{}).Count(&counts.Banners).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&gallery.GalleryItem{}).Count(&counts.GalleryItems).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&news.News{}).Count(&counts.News).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&news.News{}).Where("published = ?", true).Count(&counts.PublishedNews).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&message.Message{}).Count(&counts.Messages).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&message.Message{}).Where("read = ?", false).Count(&counts.UnreadMessages).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}
