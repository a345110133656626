package news

import "time"

type News struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title             string    `gorm:"size:255;not null" json:"title"`
	Slug              string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Content           string    `gorm:"type:text;not null" json:"content"`
	Excerpt           string    `gorm:"type:text" json:"excerpt"`
	Thumbnail         string    `gorm:"type:text" json:"thumbnail"`
	ThumbnailPublicID string    `gorm:"size:255;column:thumbnail_public_id" json:"thumbnail_public_id"`
	Category          string    `gorm:"size:100;not null;default:'Berita'" json:"category"`
	Author            string    `gorm:"size:255" json:"author"`
	Published         bool      `gorm:"not null;default:false" json:"published"`
	Views             int64     `gorm:"not null;default:0" json:"views"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (News) TableName() string {
	return "news"
}

type CreateNewsInput struct {
	Title             string `json:"title" binding:"required"`
	Slug              string `json:"slug"`
	Content           string `json:"content" binding:"required"`
	Excerpt           string `json:"excerpt"`
	Thumbnail         string `json:"thumbnail"`
	ThumbnailPublicID string `json:"thumbnail_public_id"`
	Category          string `json:"category"`
	Author            string `json:"author"`
	Published         bool   `json:"published"`
}

// UpdateNewsInput merges only the fields present in the request. An explicit
// Slug is stored verbatim; derivation never runs on update.
type UpdateNewsInput struct {
	Title             *string `json:"title"`
	Slug              *string `json:"slug"`
	Content           *string `json:"content"`
	Excerpt           *string `json:"excerpt"`
	Thumbnail         *string `json:"thumbnail"`
	ThumbnailPublicID *string `json:"thumbnail_public_id"`
	Category          *string `json:"category"`
	Author            *string `json:"author"`
	Published         *bool   `json:"published"`
}
