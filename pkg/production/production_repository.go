package production

import (
	"Bakehouse-Backend/entities"
	"Bakehouse-Backend/pkg/issuance"
	"context"

	"gorm.io/gorm"
)

type (
	ProductionRepository interface {
		// CreateSheetWithConsumptions signs the sheet and draws every
		// consumption line down from its issuance inside one transaction;
		// any overconsumption aborts the whole sheet.
		CreateSheetWithConsumptions(ctx context.Context, sheet *entities.ProductionSheet, lines []*entities.ConsumptionRecord) error
		GetSheetByID(ctx context.Context, id string) (*entities.ProductionSheet, error)
		GetSheets(ctx context.Context, page, limit int) ([]*entities.ProductionSheet, int64, error)
		DeleteSheet(ctx context.Context, id string) error
	}

	productionRepository struct {
		db *gorm.DB
	}
)

func NewProductionRepository(db *gorm.DB) ProductionRepository {
	return &productionRepository{db: db}
}

func (r *productionRepository) CreateSheetWithConsumptions(ctx context.Context, sheet *entities.ProductionSheet, lines []*entities.ConsumptionRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sheet).Error; err != nil {
			return err
		}

		for _, line := range lines {
			record, err := issuance.ApplyDrawdown(tx, line.IssuanceID.String(), line.QuantityBase)
			if err != nil {
				return err
			}

			line.SheetID = sheet.ID
			line.IngredientID = record.IngredientID
			if err := tx.Create(line).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *productionRepository) GetSheetByID(ctx context.Context, id string) (*entities.ProductionSheet, error) {
	var sheet entities.ProductionSheet
	if err := r.db.WithContext(ctx).
		Preload("Product.Catalog").
		Preload("Staff").
		Preload("Consumptions.Ingredient").
		Where("id = ?", id).
		First(&sheet).Error; err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (r *productionRepository) GetSheets(ctx context.Context, page, limit int) ([]*entities.ProductionSheet, int64, error) {
	var sheets []*entities.ProductionSheet
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.ProductionSheet{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Product.Catalog").
		Preload("Staff").
		Offset(offset).Limit(limit).
		Order("signed_at desc").
		Find(&sheets).Error; err != nil {
		return nil, 0, err
	}

	return sheets, count, nil
}

func (r *productionRepository) DeleteSheet(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sheet_id = ?", id).Delete(&entities.ConsumptionRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.ProductionSheet{}).Error
	})
}
