package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryItem is a photo shown in the public gallery
type GalleryItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	URL       string         `gorm:"size:512;not null" json:"url"`
	Category  *string        `gorm:"size:100" json:"category,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new gallery item
func (g *GalleryItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GalleryItem model
func (GalleryItem) TableName() string {
	return "gallery"
}
