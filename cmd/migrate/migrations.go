package main

import (
	"gorm.io/gorm"

	"github.com/rewear-app/backend/internal/models"
)

// registerModels returns all models that need migration, referenced entities
// first so AutoMigrate can create foreign keys in one pass.
func registerModels() []interface{} {
	return []interface{}{
		// Identity
		&models.User{},
		&models.Profile{},

		// Catalog
		&models.Category{},
		&models.Brand{},
		&models.Item{},
		&models.Purchase{},

		// Marketplace
		&models.Listing{},
		&models.Sale{},
	}
}

// runMigrations executes all database migrations
func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}

	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addSellerStatusIndex,
		addSoldOnIndex,
	}

	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}

	return nil
}

// addSellerStatusIndex speeds up the marketplace browse and recent-listings
// queries.
func addSellerStatusIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_listings_seller_status
		ON listings(seller_id, status)
	`).Error
}

// addSoldOnIndex backs the recent-orders ordering.
func addSoldOnIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_sales_buyer_sold_on
		ON sales(buyer_id, sold_on DESC)
	`).Error
}
