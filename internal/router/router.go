package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cityfashion/internal/config"
	"cityfashion/internal/domain"
	"cityfashion/internal/handler"
	"cityfashion/internal/middleware"
	"cityfashion/internal/service"
)

// Handlers bundles everything Setup wires into routes.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Product     *handler.ProductHandler
	Customer    *handler.CustomerHandler
	Supplier    *handler.SupplierHandler
	PaymentMode *handler.PaymentModeHandler
	Sale        *handler.SaleHandler
	Purchase    *handler.PurchaseHandler
	Invoice     *handler.InvoiceHandler
	Document    *handler.DocumentHandler
	Report      *handler.ReportHandler
	Health      *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, authSvc service.AuthService, h Handlers) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Operator management
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.GetByID)
	users.PATCH("/:id/active", middleware.RequireRole(domain.RoleAdmin), h.User.SetActive)
	users.POST("/me/password", h.User.ChangePassword)

	// Product catalog
	products := protected.Group("/products")
	products.POST("", h.Product.Create)
	products.GET("", h.Product.List)
	products.GET("/:id", h.Product.GetByID)
	products.PUT("/:id", h.Product.Update)
	products.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Product.Delete)

	// Customers
	customers := protected.Group("/customers")
	customers.POST("", h.Customer.Create)
	customers.GET("", h.Customer.List)
	customers.GET("/:id", h.Customer.GetByID)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Customer.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	suppliers.POST("", h.Supplier.Create)
	suppliers.GET("", h.Supplier.List)
	suppliers.GET("/:id", h.Supplier.GetByID)
	suppliers.PUT("/:id", h.Supplier.Update)
	suppliers.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Supplier.Delete)

	// Payment modes
	modes := protected.Group("/payment-modes")
	modes.GET("", h.PaymentMode.ListActive)
	modes.POST("", middleware.RequireRole(domain.RoleAdmin), h.PaymentMode.Create)
	modes.PATCH("/:id/active", middleware.RequireRole(domain.RoleAdmin), h.PaymentMode.SetActive)

	// Live invoice computation for entry screens
	invoices := protected.Group("/invoices")
	invoices.POST("/preview", h.Invoice.Preview)

	// Sales
	sales := protected.Group("/sales")
	sales.POST("", h.Sale.Create)
	sales.GET("", h.Sale.List)
	sales.GET("/:id", h.Sale.GetByID)
	sales.PATCH("/:id/status", middleware.RequireRole(domain.RoleAdmin), h.Sale.UpdateStatus)
	sales.GET("/:id/pdf", h.Document.RenderPDF)
	sales.POST("/:id/email", h.Document.EmailInvoice)

	// Purchases
	purchases := protected.Group("/purchases")
	purchases.POST("", h.Purchase.Create)
	purchases.GET("", h.Purchase.List)
	purchases.GET("/:id", h.Purchase.GetByID)

	// Reports
	reports := protected.Group("/reports")
	reports.GET("/sales-register", h.Report.SalesRegister)
	reports.GET("/sales-register/export", h.Report.ExportSalesRegister)

	return r
}
