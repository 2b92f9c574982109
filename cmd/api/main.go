package main

import (
	"log"

	"github.com/gastrosys/pos-api/internal/application/service"
	"github.com/gastrosys/pos-api/internal/config"
	"github.com/gastrosys/pos-api/internal/infrastructure/database"
	"github.com/gastrosys/pos-api/internal/infrastructure/repository"
	"github.com/gastrosys/pos-api/internal/presentation/http/handler"
	"github.com/gastrosys/pos-api/internal/presentation/http/routes"
	"github.com/gastrosys/pos-api/pkg/email"
	"github.com/gastrosys/pos-api/pkg/printer"
	"github.com/gastrosys/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
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

	// Seed tables and the default admin
	if err := database.SeedDefaultData(db, &cfg.App); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	transactor := repository.NewTransactor(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	tableRepo := repository.NewTableRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	billRepo := repository.NewBillRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	reportRepo := repository.NewDailyReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize the shift report mailer when SMTP is configured
	var mailer service.ShiftReportMailer
	if cfg.SMTP.SendOnEnd && cfg.SMTP.Host != "" && cfg.SMTP.ReportTo != "" {
		mailer = email.NewEmailService(email.EmailConfig{
			SMTPHost:     cfg.SMTP.Host,
			SMTPPort:     cfg.SMTP.Port,
			SMTPUsername: cfg.SMTP.Username,
			SMTPPassword: cfg.SMTP.Password,
			FromName:     cfg.App.Name,
			FromEmail:    cfg.SMTP.From,
		})
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.NewFromConfig(cfg.Printer.Enabled, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(employeeRepo, jwtManager)
	tableService := service.NewTableService(tableRepo, orderRepo)
	articleService := service.NewArticleService(articleRepo)
	customerService := service.NewCustomerService(customerRepo)
	orderService := service.NewOrderService(transactor, orderRepo, orderItemRepo, tableRepo, articleRepo, customerRepo)
	billService := service.NewBillService(transactor, billRepo, orderRepo, customerRepo)
	shiftService := service.NewShiftService(transactor, shiftRepo, reportRepo, orderRepo, billRepo, tableRepo, mailer, cfg.SMTP.ReportTo)
	reportService := service.NewReportService(reportRepo, billRepo, orderRepo, orderItemRepo)
	printerService := service.NewPrinterService(thermalPrinter, billRepo, orderRepo, cfg.Printer.Width, cfg.Printer.Enabled)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Table:    handler.NewTableHandler(tableService),
		Order:    handler.NewOrderHandler(orderService),
		Bill:     handler.NewBillHandler(billService, printerService),
		Article:  handler.NewArticleHandler(articleService),
		Customer: handler.NewCustomerHandler(customerService),
		Shift:    handler.NewShiftHandler(shiftService),
		Report:   handler.NewReportHandler(shiftService, reportService, printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
