package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/masquepolleras/polleras-api/internal/application/service"
	"github.com/masquepolleras/polleras-api/internal/config"
	"github.com/masquepolleras/polleras-api/internal/infrastructure/database"
	"github.com/masquepolleras/polleras-api/internal/infrastructure/repository"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/handler"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/routes"
	"github.com/masquepolleras/polleras-api/pkg/email"
	"github.com/masquepolleras/polleras-api/pkg/gemini"
	"github.com/masquepolleras/polleras-api/pkg/oauth"
	"github.com/masquepolleras/polleras-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	productRepo := repository.NewProductRepository(db)
	serviceItemRepo := repository.NewServiceItemRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	contentRepo := repository.NewContentRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize email service
	frontendURL := "http://localhost:3000"
	if len(cfg.CORS.AllowedOrigins) > 0 {
		frontendURL = cfg.CORS.AllowedOrigins[0]
	}
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.SMTP.FromName,
		FromEmail:    cfg.SMTP.FromEmail,
		FrontendURL:  frontendURL,
		AppName:      cfg.Business.Name,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})

	// Initialize the Gemini client when a key is configured. Without
	// one, design generation answers 503 and everything else works.
	var geminiClient *gemini.Client
	if cfg.Gemini.APIKey != "" {
		geminiClient, err = gemini.New(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Printf("Warning: failed to initialize Gemini client: %v", err)
		}
	}

	// Initialize services
	quoteSessions := service.NewQuoteSessionStore(2 * time.Hour)
	defer quoteSessions.Stop()

	authService := service.NewAuthService(userRepo, passwordResetRepo, jwtManager, emailService, []string{cfg.Admin.Email})
	productService := service.NewProductService(productRepo)
	serviceItemService := service.NewServiceItemService(serviceItemRepo)
	galleryService := service.NewGalleryService(galleryRepo)
	contentService := service.NewContentService(contentRepo)
	leadService := service.NewLeadService(leadRepo, emailService, cfg.Business.NotifyInbox)
	quoteService := service.NewQuoteService(quoteSessions, leadRepo, productRepo, serviceItemRepo, settingsRepo, cfg.Business)
	designService := service.NewDesignService(geminiClient)
	dashboardService := service.NewDashboardService(leadRepo, productRepo, serviceItemRepo, galleryRepo, settingsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService, googleOAuthService),
		Product:     handler.NewProductHandler(productService),
		ServiceItem: handler.NewServiceItemHandler(serviceItemService),
		Gallery:     handler.NewGalleryHandler(galleryService),
		Content:     handler.NewContentHandler(contentService),
		Lead:        handler.NewLeadHandler(leadService),
		Quote:       handler.NewQuoteHandler(quoteService),
		Design:      handler.NewDesignHandler(designService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
