package database

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/masquepolleras/polleras-api/internal/config"
	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	"github.com/masquepolleras/polleras-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Admin accounts
		&entity.User{},
		&entity.PasswordResetToken{},

		// Public site entities
		&entity.Product{},
		&entity.ServiceItem{},
		&entity.GalleryItem{},
		&entity.SiteContent{},

		// Pipeline entities
		&entity.Lead{},

		// System entities
		&entity.AppSetting{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the quote counter, the admin account and a
// starter catalog so a fresh install is usable immediately.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	seedQuoteCounter(db)
	seedAdminUser(db, cfg.Admin)
	seedCatalog(db)
	seedServices(db)

	log.Println("Default data seeding completed")
	return nil
}

// seedQuoteCounter creates the counter row at zero if it is missing
func seedQuoteCounter(db *gorm.DB) {
	var existing entity.AppSetting
	if err := db.Where("key = ?", entity.SettingQuoteCounter).First(&existing).Error; err == nil {
		return
	}

	value, _ := json.Marshal(entity.QuoteCounterValue{Count: 0})
	setting := entity.AppSetting{
		Key:   entity.SettingQuoteCounter,
		Value: value,
	}
	if err := db.Create(&setting).Error; err != nil {
		log.Printf("Warning: failed to seed quote counter: %v", err)
	}
}

// seedAdminUser creates the back-office account configured via
// ADMIN_EMAIL and ADMIN_PASSWORD.
func seedAdminUser(db *gorm.DB, cfg config.AdminConfig) {
	if cfg.Email == "" || cfg.Password == "" {
		return
	}

	var existing entity.User
	if err := db.Where("email = ?", cfg.Email).First(&existing).Error; err == nil {
		log.Printf("Admin user already exists: %s", cfg.Email)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return
	}

	name := cfg.Name
	if name == "" {
		name = "Administrator"
	}

	admin := entity.User{
		Name:     name,
		Email:    cfg.Email,
		Password: string(hashedPassword),
		Provider: "local",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Warning: failed to create admin user: %v", err)
		return
	}
	log.Printf("Admin user created: %s", cfg.Email)
}

// seedCatalog loads a few representative pieces on first run
func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&entity.Product{}).Count(&count)
	if count > 0 {
		return
	}

	strPtr := func(s string) *string { return &s }

	products := []entity.Product{
		{
			Name:        "Pollera de Gala Santeña",
			Type:        enum.PolleraTypeGala,
			Technique:   enum.TechniqueSombreada,
			Price:       45000,
			Description: strPtr("Pollera de gala con labores sombreadas, confeccionada en Las Tablas."),
		},
		{
			Name:        "Pollera Montuna Ocueña",
			Type:        enum.PolleraTypeMontuna,
			Technique:   enum.TechniqueMarcada,
			Price:       28000,
			Description: strPtr("Pollera montuna de uso diario con labores marcadas."),
		},
		{
			Name:        "Pollera Congo Colonense",
			Type:        enum.PolleraTypeCongo,
			Technique:   enum.TechniqueAplicacion,
			Price:       22000,
			Description: strPtr("Pollera congo de retazos coloridos, tradición de la costa atlántica."),
		},
	}

	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Printf("Warning: failed to seed product %s: %v", products[i].Name, err)
		}
	}
}

// seedServices loads the studio's standing offering on first run
func seedServices(db *gorm.DB) {
	var count int64
	db.Model(&entity.ServiceItem{}).Count(&count)
	if count > 0 {
		return
	}

	strPtr := func(s string) *string { return &s }

	services := []entity.ServiceItem{
		{
			Title:       "Alquiler de Polleras",
			Description: strPtr("Polleras de gala, montunas y estilizadas para toda ocasión."),
			IconName:    strPtr("dress"),
			CTA:         strPtr("Consultar disponibilidad"),
		},
		{
			Title:       "Confección a Medida",
			Description: strPtr("Confección artesanal de polleras por encargo."),
			IconName:    strPtr("needle"),
			CTA:         strPtr("Solicitar cotización"),
		},
		{
			Title:       "Tembleques y Accesorios",
			Description: strPtr("Joyas, tembleques y accesorios para completar el conjunto."),
			IconName:    strPtr("sparkles"),
			CTA:         strPtr("Ver accesorios"),
		},
	}

	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			log.Printf("Warning: failed to seed service %s: %v", services[i].Title, err)
		}
	}
}
