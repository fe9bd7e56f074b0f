package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Lead is a rental inquiry captured from the public contact form
type Lead struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Email     *string         `gorm:"size:255" json:"email,omitempty"`
	Phone     *string         `gorm:"size:50" json:"phone,omitempty"`
	Service   *string         `gorm:"size:255" json:"service,omitempty"`
	EventDate *time.Time      `json:"event_date,omitempty"`
	Message   *string         `gorm:"type:text" json:"message,omitempty"`
	Status    enum.LeadStatus `gorm:"default:0" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new lead
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Lead model
func (Lead) TableName() string {
	return "leads"
}
