package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/masquepolleras/polleras-api/internal/config"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/handler"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/middleware"
	"github.com/masquepolleras/polleras-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Product     *handler.ProductHandler
	ServiceItem *handler.ServiceItemHandler
	Gallery     *handler.GalleryHandler
	Content     *handler.ContentHandler
	Lead        *handler.LeadHandler
	Quote       *handler.QuoteHandler
	Design      *handler.DesignHandler
	Dashboard   *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerPublicRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		registerProtectedRoutes(protected, h)
	}

	return router
}

// registerPublicRoutes wires the endpoints the public site consumes.
// The anonymous write endpoints sit behind a per-IP rate limiter.
func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		auth.GET("/google", h.Auth.GoogleAuthURL)
		auth.POST("/google", h.Auth.GoogleLogin)
	}

	v1.GET("/products", h.Product.ListPublic)
	v1.GET("/services", h.ServiceItem.List)
	v1.GET("/gallery", h.Gallery.List)
	v1.GET("/content/:key", h.Content.Get)

	publicLimiter := middleware.NewIPRateLimiter(middleware.DefaultRateLimiterConfig())
	limited := v1.Group("")
	limited.Use(publicLimiter.Middleware())
	{
		limited.POST("/leads", h.Lead.Create)
		limited.POST("/designs", h.Design.Generate)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	admin := protected.Group("/admin")
	{
		admin.GET("/dashboard", h.Dashboard.GetStats)

		registerLeadRoutes(admin, h)
		registerQuoteRoutes(admin, h)
		registerCatalogRoutes(admin, h)
		registerSiteRoutes(admin, h)
	}
}

func registerLeadRoutes(admin *gin.RouterGroup, h *Handlers) {
	leads := admin.Group("/leads")
	{
		leads.GET("", h.Lead.List)
		leads.GET("/export", h.Lead.Export)
		leads.GET("/:id", h.Lead.Get)
		leads.PUT("/:id", h.Lead.Update)
		leads.PATCH("/:id/status", h.Lead.UpdateStatus)
		leads.DELETE("/:id", h.Lead.Delete)
		leads.POST("/:id/quote", h.Quote.Open)
	}
}

func registerQuoteRoutes(admin *gin.RouterGroup, h *Handlers) {
	quotes := admin.Group("/quotes")
	{
		quotes.GET("/:id", h.Quote.Get)
		quotes.DELETE("/:id", h.Quote.Close)
		quotes.POST("/:id/items", h.Quote.AddManual)
		quotes.POST("/:id/items/product", h.Quote.AddProduct)
		quotes.POST("/:id/items/service", h.Quote.AddService)
		quotes.PATCH("/:id/items/:itemId", h.Quote.UpdateItem)
		quotes.DELETE("/:id/items/:itemId", h.Quote.RemoveItem)
		quotes.POST("/:id/pdf", h.Quote.ExportPDF)
		quotes.GET("/:id/whatsapp", h.Quote.WhatsAppLink)
	}
}

func registerCatalogRoutes(admin *gin.RouterGroup, h *Handlers) {
	products := admin.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerSiteRoutes(admin *gin.RouterGroup, h *Handlers) {
	services := admin.Group("/services")
	{
		services.POST("", h.ServiceItem.Create)
		services.PUT("/:id", h.ServiceItem.Update)
		services.DELETE("/:id", h.ServiceItem.Delete)
	}

	gallery := admin.Group("/gallery")
	{
		gallery.POST("", h.Gallery.Create)
		gallery.PUT("/:id", h.Gallery.Update)
		gallery.DELETE("/:id", h.Gallery.Delete)
	}

	content := admin.Group("/content")
	{
		content.GET("", h.Content.List)
		content.PUT("/:key", h.Content.Upsert)
	}
}
