package entity

import "time"

// SiteContent is a keyed block of editable site copy, e.g. the
// history page title and body.
type SiteContent struct {
	Key       string    `gorm:"size:100;primary_key" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the SiteContent model
func (SiteContent) TableName() string {
	return "site_content"
}
