package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Setting keys
const (
	SettingQuoteCounter = "quote_counter"
)

// AppSetting is a keyed JSON document holding application state.
// The quote counter lives under the "quote_counter" key as {"count": N}.
type AppSetting struct {
	Key       string         `gorm:"size:100;primary_key" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb" json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName returns the table name for the AppSetting model
func (AppSetting) TableName() string {
	return "app_settings"
}

// QuoteCounterValue is the JSON shape stored under the quote_counter key
type QuoteCounterValue struct {
	Count int `json:"count"`
}
