// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/stockflow/internal/domain/order"
	"github.com/your-org/stockflow/internal/domain/product"
	"github.com/your-org/stockflow/internal/infrastructure/seed"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db     *gorm.DB
	logger logrus.FieldLogger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, logger logrus.FieldLogger) *Migration {
	return &Migration{
		db:     db,
		logger: logger,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.logger.Info("Running database auto-migrations")

	models := []interface{}{
		&product.Product{},
		&order.Order{},
	}

	for _, model := range models {
		m.logger.Debugf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.logger.Info("Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes for the shop and admin queries
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_name_lower ON products(LOWER(name))",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_stock ON products(stock)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_customer_email ON orders((customer_info->>'email'))",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			m.logger.WithError(err).Warn("Failed to create index")
			failCount++
		} else {
			successCount++
		}
	}

	m.logger.Infof("Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts the starter catalog and sample orders into empty tables
func (m *Migration) SeedInitialData() error {
	m.logger.Info("Seeding initial data")

	if err := m.seedProducts(); err != nil {
		return err
	}
	if err := m.seedOrders(); err != nil {
		return err
	}

	m.logger.Info("Initial data seeded successfully")
	return nil
}

func (m *Migration) seedProducts() error {
	var count int64
	if err := m.db.Model(&product.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		m.logger.Info("Products already exist, skipping seed")
		return nil
	}

	products, err := seed.Products()
	if err != nil {
		return err
	}

	// Let the sequence assign ids so later inserts don't collide
	for i := range products {
		products[i].ID = 0
	}
	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	m.logger.Infof("Seeded %d products", len(products))
	return nil
}

func (m *Migration) seedOrders() error {
	var count int64
	if err := m.db.Model(&order.Order{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count orders: %w", err)
	}
	if count > 0 {
		m.logger.Info("Orders already exist, skipping seed")
		return nil
	}

	orders, err := seed.Orders()
	if err != nil {
		return err
	}

	for i := range orders {
		orders[i].ID = 0
	}
	if err := m.db.Create(&orders).Error; err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	m.logger.Infof("Seeded %d orders", len(orders))
	return nil
}

// GetTableInfo logs the row count of each table
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		if err := m.db.Table(table).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count %s: %w", table, err)
		}
		totalRecords += count

		m.logger.WithFields(logrus.Fields{
			"table":   table,
			"records": count,
		}).Info("Table info")
	}

	m.logger.WithFields(logrus.Fields{
		"tables":  len(tables),
		"records": totalRecords,
	}).Info("Database summary")

	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	m.logger.Warn("Dropping all database tables")

	for _, table := range []string{"orders", "products"} {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
