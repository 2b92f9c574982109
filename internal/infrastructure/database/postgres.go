package database

import (
	"fmt"
	"log"

	"github.com/gastrosys/pos-api/internal/config"
	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/spf13/viper"
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
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
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
		// Staff and floor
		&entity.Employee{},
		&entity.RestaurantTable{},

		// Menu and customers
		&entity.Article{},
		&entity.Customer{},

		// Order flow
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Bill{},

		// Shift accounting
		&entity.Shift{},
		&entity.DailyReport{},

		// System entities
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createPartialIndexes(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// createPartialIndexes adds the uniqueness guards AutoMigrate cannot
// express: one active order per table and one open shift per employee.
func createPartialIndexes(db *gorm.DB) error {
	stmts := []string{
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_one_active_per_table
			ON orders (table_id) WHERE status IN (%d, %d)`,
			enum.OrderStatusPending, enum.OrderStatusSubmitted),
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_shifts_one_open_per_employee
			ON shifts (employee_id) WHERE end_time IS NULL`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

// SeedDefaultData seeds the database with the dining room layout and an
// admin employee when configured via environment variables
func SeedDefaultData(db *gorm.DB, cfg *config.AppConfig) error {
	log.Println("Seeding default data...")

	// Dining room layout: create any missing table numbers
	for number := 1; number <= cfg.TableCount; number++ {
		var existing entity.RestaurantTable
		if err := db.Where("number = ?", number).First(&existing).Error; err != nil {
			table := entity.RestaurantTable{Number: number, Capacity: cfg.TableCapacity}
			if err := db.Create(&table).Error; err != nil {
				log.Printf("Warning: failed to create table %d: %v", number, err)
			}
		}
	}

	adminName := viper.GetString("ADMIN_NAME")
	adminCode := viper.GetString("ADMIN_LOGIN_CODE")

	if adminName != "" && adminCode != "" {
		var existingAdmin entity.Employee
		if err := db.Where("name = ?", adminName).First(&existingAdmin).Error; err != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(adminCode), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin login code: %v", err)
			} else {
				admin := entity.Employee{
					Name:          adminName,
					Role:          enum.RoleAdmin,
					LoginCodeHash: string(hash),
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin employee: %v", err)
				} else {
					log.Printf("Admin employee created: %s", adminName)
				}
			}
		} else {
			log.Printf("Admin employee already exists: %s", adminName)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
