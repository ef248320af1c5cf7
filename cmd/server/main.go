// Command server runs the retail billing console API.
//
// @title        City Fashion POS API
// @version      1.0
// @description  Billing, inventory, and GST reporting backend for the store console.
// @BasePath     /api/v1
package main

import (
	"fmt"
	"log"

	_ "cityfashion/docs"
	"cityfashion/internal/config"
	"cityfashion/internal/document"
	"cityfashion/internal/email/noop"
	"cityfashion/internal/email/ses"
	"cityfashion/internal/handler"
	"cityfashion/internal/port"
	"cityfashion/internal/repository/postgres"
	"cityfashion/internal/router"
	"cityfashion/internal/service"
	s3storage "cityfashion/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	productRepo := postgres.NewProductRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	supplierRepo := postgres.NewSupplierRepo(db)
	modeRepo := postgres.NewPaymentModeRepo(db)
	saleRepo := postgres.NewSaleRepo(db)
	purchaseRepo := postgres.NewPurchaseRepo(db)
	reportRepo := postgres.NewReportRepo(db)

	// PDF archive is optional; leave it off for single-machine installs.
	var archive port.ObjectStorage
	if cfg.S3.Enabled {
		archive, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	renderer := document.NewRenderer(cfg.Store)

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	productSvc := service.NewProductService(productRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	modeSvc := service.NewPaymentModeService(modeRepo)
	invoiceSvc := service.NewInvoiceService()
	saleSvc := service.NewSaleService(saleRepo, productRepo, customerRepo, modeRepo, cfg.Store)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, productRepo, supplierRepo, cfg.Store)
	reportSvc := service.NewReportService(reportRepo)
	documentSvc := service.NewDocumentService(saleRepo, customerRepo, modeRepo, renderer, archive, emailSender)

	// Handlers
	h := router.Handlers{
		Auth:        handler.NewAuthHandler(authSvc),
		User:        handler.NewUserHandler(userSvc),
		Product:     handler.NewProductHandler(productSvc),
		Customer:    handler.NewCustomerHandler(customerSvc),
		Supplier:    handler.NewSupplierHandler(supplierSvc),
		PaymentMode: handler.NewPaymentModeHandler(modeSvc),
		Sale:        handler.NewSaleHandler(saleSvc),
		Purchase:    handler.NewPurchaseHandler(purchaseSvc),
		Invoice:     handler.NewInvoiceHandler(invoiceSvc),
		Document:    handler.NewDocumentHandler(documentSvc),
		Report:      handler.NewReportHandler(reportSvc),
		Health:      handler.NewHealthHandler(db),
	}

	r := router.Setup(cfg, authSvc, h)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
