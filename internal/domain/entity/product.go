package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Product is a pollera available for rent in the catalog
type Product struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Type        enum.PolleraType `gorm:"default:0" json:"type"`
	Technique   enum.Technique   `gorm:"default:0" json:"technique"`
	Price       int64            `gorm:"default:0" json:"price"` // Stored in cents
	Image       *string          `gorm:"size:512" json:"image,omitempty"`
	Description *string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the rental price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the rental price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(price * 100)
}

// ProductJSON is a helper struct for JSON marshaling with decimal prices
type ProductJSON struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Type        enum.PolleraType `json:"type"`
	Technique   enum.Technique   `json:"technique"`
	Price       float64          `json:"price"` // Decimal value for JSON
	Image       *string          `json:"image,omitempty"`
	Description *string          `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(ProductJSON{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Technique:   p.Technique,
		Price:       p.GetPriceDecimal(),
		Image:       p.Image,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	})
}
