package repository

import (
	"context"

	"github.com/masquepolleras/polleras-api/internal/domain/entity"
)

// SettingsRepository defines the interface for app settings data access
type SettingsRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.AppSetting, error)
	Upsert(ctx context.Context, setting *entity.AppSetting) error

	// GetQuoteCounter reads the current quote counter value
	GetQuoteCounter(ctx context.Context) (int, error)
	// IncrementQuoteCounter atomically advances the quote counter by one
	// and returns the new value. Concurrent callers get distinct values.
	IncrementQuoteCounter(ctx context.Context) (int, error)
}
