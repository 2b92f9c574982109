package routes

import (
	"time"

	"github.com/gastrosys/pos-api/internal/config"
	domainRepo "github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/internal/presentation/http/handler"
	"github.com/gastrosys/pos-api/internal/presentation/http/middleware"
	"github.com/gastrosys/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Table    *handler.TableHandler
	Order    *handler.OrderHandler
	Bill     *handler.BillHandler
	Article  *handler.ArticleHandler
	Customer *handler.CustomerHandler
	Shift    *handler.ShiftHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
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
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-employee rate limiter
		rateLimiter := middleware.NewEmployeeRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Employees (admin only beyond listing)
	registerEmployeeRoutes(protected, h)

	// Tables
	registerTableRoutes(protected, h)

	// Orders and order items
	registerOrderRoutes(protected, h, deps)

	// Bills
	registerBillRoutes(protected, h, deps)

	// Articles
	registerArticleRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Shifts
	registerShiftRoutes(protected, h, deps)

	// Reports
	registerReportRoutes(protected, h)
}

func registerEmployeeRoutes(protected *gin.RouterGroup, h *Handlers) {
	employees := protected.Group("/employees")
	{
		employees.GET("", h.Auth.ListEmployees)
		employees.POST("", middleware.RequireElevated(), h.Auth.CreateEmployee)
	}
}

func registerTableRoutes(protected *gin.RouterGroup, h *Handlers) {
	tables := protected.Group("/tables")
	{
		tables.GET("", h.Table.List)
		tables.GET("/statuses", h.Table.Statuses)
		tables.GET("/:id", h.Table.Get)
		tables.POST("/:id/open", h.Table.Open)
		tables.POST("/:id/prepare", h.Table.Prepare)
		tables.PUT("/:id/pax", h.Table.UpdatePax)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	orders := protected.Group("/orders")
	{
		orders.POST("", idempotent, h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/submit", h.Order.Submit)
		orders.PUT("/:id/customer", h.Order.AssignCustomer)
		orders.PUT("/:id/discount", h.Order.SetDiscount)
	}

	tables := protected.Group("/tables/:id")
	{
		tables.GET("/order", h.Order.ByTable)
		tables.POST("/close", h.Order.CloseTable)
		tables.POST("/items", idempotent, h.Order.AddItem)
		tables.GET("/items", h.Order.ListItems)
	}

	items := protected.Group("/items")
	{
		items.PUT("/:itemId/quantity", h.Order.UpdateItemQuantity)
		items.DELETE("/:itemId", h.Order.DeleteItem)
	}
}

func registerBillRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	bills := protected.Group("/bills")
	{
		bills.POST("", idempotent, h.Bill.Create)
		bills.GET("", h.Bill.List)
		bills.GET("/by-date", h.Bill.ByDate)
		bills.GET("/:id", h.Bill.Get)
		bills.PUT("/:id/pay", h.Bill.Pay)
		bills.POST("/:id/process-payment", idempotent, h.Bill.ProcessPayment)
		bills.POST("/:id/print", h.Bill.PrintReceipt)
	}
}

func registerArticleRoutes(protected *gin.RouterGroup, h *Handlers) {
	articles := protected.Group("/articles")
	{
		articles.GET("", h.Article.Menu)
		articles.GET("/category/:category", h.Article.ByCategory)
		articles.GET("/:id", h.Article.Get)
		articles.POST("", middleware.RequireElevated(), h.Article.Add)
		articles.PUT("/:id/price", middleware.RequireElevated(), h.Article.UpdatePrice)
		articles.POST("/:id/disable", middleware.RequireElevated(), h.Article.Disable)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerShiftRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	shifts := protected.Group("/shifts")
	{
		shifts.POST("/start", h.Shift.Start)
		shifts.POST("/end", idempotent, h.Shift.End)
		shifts.GET("/active", h.Shift.Active)
		shifts.GET("/current-report", h.Shift.Current)
		shifts.GET("/history", h.Shift.History)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/by-date", h.Report.ByDate)
		reports.GET("/payment-methods", h.Report.PaymentMethods)
		reports.GET("/payment-methods/range", h.Report.PaymentMethodsRange)
		reports.GET("/categories", h.Report.Categories)
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/sales/export", h.Report.Excel)
		reports.GET("/most-sold", h.Report.MostSold)
		reports.GET("/customer-types", h.Report.CustomerTypes)
		reports.GET("/customer-types/range", h.Report.CustomerTypesRange)
		reports.GET("/:id", h.Report.Get)
		reports.GET("/:id/pdf", h.Report.PDF)
		reports.POST("/:id/print", h.Report.Print)
	}

	protected.GET("/printer/status", h.Report.PrinterStatus)
}
