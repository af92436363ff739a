package ingredient

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	IngredientRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context, search string) ([]*entities.Ingredient, error)
		// RenameIngredient updates the name column only. Stock changes go
		// through the ledger operations below, never through here.
		RenameIngredient(ctx context.Context, id string, name string) error
		DeleteIngredient(ctx context.Context, id string) error
		CountDependents(ctx context.Context, id string) (int64, error)

		// Ledger operations. Both run as a single locked read-modify-write on
		// the ingredient row and append a stock movement journal entry.
		DebitStock(ctx context.Context, id string, quantity float64, reason string, referenceID *uuid.UUID, note string) error
		CreditStock(ctx context.Context, id string, quantity float64, reason string, referenceID *uuid.UUID, note string) error
		GetStockMovements(ctx context.Context, id string, page, limit int) ([]*entities.StockMovement, int64, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredients(ctx context.Context, search string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient

	query := r.db.WithContext(ctx).Order("name asc")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) RenameIngredient(ctx context.Context, id string, name string) error {
	return r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Ingredient{}).Error
}

func (r *ingredientRepository) CountDependents(ctx context.Context, id string) (int64, error) {
	var issuances int64
	if err := r.db.WithContext(ctx).Model(&entities.IssuanceRecord{}).
		Where("ingredient_id = ?", id).
		Count(&issuances).Error; err != nil {
		return 0, err
	}

	var consumptions int64
	if err := r.db.WithContext(ctx).Model(&entities.ConsumptionRecord{}).
		Where("ingredient_id = ?", id).
		Count(&consumptions).Error; err != nil {
		return 0, err
	}

	return issuances + consumptions, nil
}

func (r *ingredientRepository) DebitStock(ctx context.Context, id string, quantity float64, reason string, referenceID *uuid.UUID, note string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ingredient entities.Ingredient
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&ingredient).Error; err != nil {
			return err
		}

		if quantity > ingredient.StockBase {
			return domain.ErrInsufficientStock
		}

		if err := tx.Model(&ingredient).
			Update("stock_base", ingredient.StockBase-quantity).Error; err != nil {
			return err
		}

		movement := &entities.StockMovement{
			ID:           uuid.New(),
			IngredientID: ingredient.ID,
			Quantity:     -quantity,
			Reason:       reason,
			ReferenceID:  referenceID,
			Note:         note,
		}
		return tx.Create(movement).Error
	})
}

func (r *ingredientRepository) CreditStock(ctx context.Context, id string, quantity float64, reason string, referenceID *uuid.UUID, note string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ingredient entities.Ingredient
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&ingredient).Error; err != nil {
			return err
		}

		if err := tx.Model(&ingredient).
			Update("stock_base", ingredient.StockBase+quantity).Error; err != nil {
			return err
		}

		movement := &entities.StockMovement{
			ID:           uuid.New(),
			IngredientID: ingredient.ID,
			Quantity:     quantity,
			Reason:       reason,
			ReferenceID:  referenceID,
			Note:         note,
		}
		return tx.Create(movement).Error
	})
}

func (r *ingredientRepository) GetStockMovements(ctx context.Context, id string, page, limit int) ([]*entities.StockMovement, int64, error) {
	var movements []*entities.StockMovement
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("ingredient_id = ?", id)

	if err := query.Model(&entities.StockMovement{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&movements).Error; err != nil {
		return nil, 0, err
	}

	return movements, count, nil
}
