package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceItem is an offered service shown on the site (rentals,
// custom confections, accessories). Services have no fixed price;
// when quoted, the price is set manually.
type ServiceItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	IconName    *string        `gorm:"size:100" json:"icon_name,omitempty"`
	Image       *string        `gorm:"size:512" json:"image,omitempty"`
	CTA         *string        `gorm:"size:255;column:cta" json:"cta,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new service item
func (s *ServiceItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ServiceItem model
func (ServiceItem) TableName() string {
	return "services"
}
