package repository

import (
	"context"
	"errors"

	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	domainRepo "github.com/masquepolleras/polleras-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new app settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByKey(ctx context.Context, key string) (*entity.AppSetting, error) {
	var setting entity.AppSetting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &setting, err
}

func (r *settingsRepository) Upsert(ctx context.Context, setting *entity.AppSetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(setting).Error
}

// GetQuoteCounter reads the stored counter. A missing row counts as zero.
func (r *settingsRepository) GetQuoteCounter(ctx context.Context) (int, error) {
	var count int
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE((value->>'count')::int, 0)
		 FROM app_settings WHERE key = ?`,
		entity.SettingQuoteCounter,
	).Scan(&count).Error
	return count, err
}

// IncrementQuoteCounter advances the counter in a single statement so two
// concurrent exports can never read the same value.
func (r *settingsRepository) IncrementQuoteCounter(ctx context.Context) (int, error) {
	var count int
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO app_settings (key, value, created_at, updated_at)
		 VALUES (?, '{"count": 1}'::jsonb, NOW(), NOW())
		 ON CONFLICT (key) DO UPDATE
		 SET value = jsonb_set(app_settings.value, '{count}',
		         to_jsonb(COALESCE((app_settings.value->>'count')::int, 0) + 1)),
		     updated_at = NOW()
		 RETURNING (value->>'count')::int`,
		entity.SettingQuoteCounter,
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
