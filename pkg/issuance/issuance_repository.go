package issuance

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	IssuanceRepository interface {
		// CreateWithDebit inserts the issuance and debits the ingredient's
		// stock in one transaction; the whole operation fails when stock is
		// insufficient.
		CreateWithDebit(ctx context.Context, record *entities.IssuanceRecord) error
		// DeleteWithCredit returns the record's current remaining base
		// quantity to stock and removes the record, atomically.
		DeleteWithCredit(ctx context.Context, record *entities.IssuanceRecord) error
		GetIssuanceByID(ctx context.Context, id string) (*entities.IssuanceRecord, error)
		GetIssuances(ctx context.Context, page, limit int) ([]*entities.IssuanceRecord, int64, error)
		GetAvailableIssuances(ctx context.Context) ([]*entities.IssuanceRecord, error)
	}

	issuanceRepository struct {
		db *gorm.DB
	}
)

func NewIssuanceRepository(db *gorm.DB) IssuanceRepository {
	return &issuanceRepository{db: db}
}

func (r *issuanceRepository) CreateWithDebit(ctx context.Context, record *entities.IssuanceRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ingredient entities.Ingredient
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", record.IngredientID).
			First(&ingredient).Error; err != nil {
			return err
		}

		if record.IssuedBase > ingredient.StockBase {
			return domain.ErrInsufficientStock
		}

		if err := tx.Model(&ingredient).
			Update("stock_base", ingredient.StockBase-record.IssuedBase).Error; err != nil {
			return err
		}

		movement := &entities.StockMovement{
			ID:           uuid.New(),
			IngredientID: ingredient.ID,
			Quantity:     -record.IssuedBase,
			Reason:       "Issuance",
			ReferenceID:  &record.ID,
		}
		if err := tx.Create(movement).Error; err != nil {
			return err
		}

		return tx.Create(record).Error
	})
}

func (r *issuanceRepository) DeleteWithCredit(ctx context.Context, record *entities.IssuanceRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ingredient entities.Ingredient
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", record.IngredientID).
			First(&ingredient).Error; err != nil {
			return err
		}

		returned := record.RemainingPrincipal + record.RemainingComplementary

		if err := tx.Model(&ingredient).
			Update("stock_base", ingredient.StockBase+returned).Error; err != nil {
			return err
		}

		movement := &entities.StockMovement{
			ID:           uuid.New(),
			IngredientID: ingredient.ID,
			Quantity:     returned,
			Reason:       "IssuanceReturn",
			ReferenceID:  &record.ID,
		}
		if err := tx.Create(movement).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", record.ID).Delete(&entities.IssuanceRecord{}).Error
	})
}

// ApplyDrawdown locks the issuance row and draws requestedBase from its
// remainders inside the caller's transaction. Callers that need several
// drawdowns to commit or abort together run them all through the same tx.
func ApplyDrawdown(tx *gorm.DB, id string, requestedBase float64) (*entities.IssuanceRecord, error) {
	var record entities.IssuanceRecord
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&record).Error; err != nil {
		return nil, err
	}

	principal, complementary, err := Drawdown(record.RemainingPrincipal, record.RemainingComplementary, requestedBase)
	if err != nil {
		return nil, err
	}

	if err := tx.Model(&record).Updates(map[string]interface{}{
		"remaining_principal":     principal,
		"remaining_complementary": complementary,
	}).Error; err != nil {
		return nil, err
	}

	record.RemainingPrincipal = principal
	record.RemainingComplementary = complementary
	return &record, nil
}

func (r *issuanceRepository) GetIssuanceByID(ctx context.Context, id string) (*entities.IssuanceRecord, error) {
	var record entities.IssuanceRecord
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Preload("IssuedBy").
		Preload("ReceivedBy").
		Where("id = ?", id).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *issuanceRepository) GetIssuances(ctx context.Context, page, limit int) ([]*entities.IssuanceRecord, int64, error) {
	var records []*entities.IssuanceRecord
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.IssuanceRecord{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Preload("IssuedBy").
		Preload("ReceivedBy").
		Offset(offset).Limit(limit).
		Order("issued_at desc").
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, count, nil
}

func (r *issuanceRepository) GetAvailableIssuances(ctx context.Context) ([]*entities.IssuanceRecord, error) {
	var records []*entities.IssuanceRecord
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("remaining_principal > 0 OR remaining_complementary > 0").
		Order("issued_at asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
