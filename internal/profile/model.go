package profile

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Socials struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Youtube   string `json:"youtube"`
	Tiktok    string `json:"tiktok"`
}

// SchoolProfile is a singleton: at most one row exists, lazily created with
// defaults on first read and upserted in place afterwards.
type SchoolProfile struct {
	ID           uint                         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string                       `gorm:"size:255;not null" json:"name"`
	Address      string                       `gorm:"type:text" json:"address"`
	Phone        string                       `gorm:"size:50" json:"phone"`
	Email        string                       `gorm:"size:255" json:"email"`
	Whatsapp     string                       `gorm:"size:50" json:"whatsapp"`
	MapsEmbedURL string                       `gorm:"type:text;column:maps_embed_url" json:"maps_embed_url"`
	Vision       string                       `gorm:"type:text" json:"vision"`
	Mission      pq.StringArray               `gorm:"type:text[]" json:"mission"`
	History      string                       `gorm:"type:text" json:"history"`
	Socials      datatypes.JSONType[Socials]  `json:"socials"`
	ThemeColor   string                       `gorm:"size:20;column:theme_color" json:"theme_color"`
	CreatedAt    time.Time                    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time                    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SchoolProfile) TableName() string {
	return "school_profiles"
}

const (
	defaultName   = "SLB Pelita Kasih"
	defaultVision = "Menjadi sekolah luar biasa yang unggul..."
)

// UpdateProfileInput merges only the fields present in the request body.
type UpdateProfileInput struct {
	Name         *string   `json:"name"`
	Address      *string   `json:"address"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email"`
	Whatsapp     *string   `json:"whatsapp"`
	MapsEmbedURL *string   `json:"maps_embed_url"`
	Vision       *string   `json:"vision"`
	Mission      *[]string `json:"mission"`
	History      *string   `json:"history"`
	Socials      *Socials  `json:"socials"`
	ThemeColor   *string   `json:"theme_color"`
}
