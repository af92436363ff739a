package migration

import (
	"Bakehouse-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Staff{}); err != nil {
		log.Fatalf("Error migrating staff database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.StockMovement{}); err != nil {
		log.Fatalf("Error migrating stock movement database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.IssuanceRecord{}); err != nil {
		log.Fatalf("Error migrating issuance database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CatalogEntry{}); err != nil {
		log.Fatalf("Error migrating catalog database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FinishedProduct{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ProductionSheet{}); err != nil {
		log.Fatalf("Error migrating production sheet database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ConsumptionRecord{}); err != nil {
		log.Fatalf("Error migrating consumption database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.VarianceSnapshot{}); err != nil {
		log.Fatalf("Error migrating variance snapshot database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
