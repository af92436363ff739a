package audit

import (
	"Bakehouse-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AuditRepository interface {
		GetWithdrawnTotals(ctx context.Context) (map[uuid.UUID]float64, error)
		GetConsumedTotals(ctx context.Context) (map[uuid.UUID]float64, error)
		// ReplaceSnapshots swaps the snapshot set for a date in one
		// transaction so a re-recorded audit never duplicates lines.
		ReplaceSnapshots(ctx context.Context, date time.Time, snapshots []*entities.VarianceSnapshot) error
		GetSnapshotDates(ctx context.Context) ([]time.Time, error)
		GetSnapshotsByDate(ctx context.Context, date time.Time) ([]*entities.VarianceSnapshot, error)
		DeleteSnapshotsByDate(ctx context.Context, date time.Time) error
	}

	auditRepository struct {
		db *gorm.DB
	}

	totalRow struct {
		IngredientID uuid.UUID
		Total        float64
	}
)

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) GetWithdrawnTotals(ctx context.Context) (map[uuid.UUID]float64, error) {
	var rows []totalRow
	if err := r.db.WithContext(ctx).
		Model(&entities.IssuanceRecord{}).
		Select("ingredient_id, COALESCE(SUM(issued_base), 0) AS total").
		Group("ingredient_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toTotals(rows), nil
}

func (r *auditRepository) GetConsumedTotals(ctx context.Context) (map[uuid.UUID]float64, error) {
	var rows []totalRow
	if err := r.db.WithContext(ctx).
		Model(&entities.ConsumptionRecord{}).
		Select("ingredient_id, COALESCE(SUM(quantity_base), 0) AS total").
		Group("ingredient_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toTotals(rows), nil
}

func (r *auditRepository) ReplaceSnapshots(ctx context.Context, date time.Time, snapshots []*entities.VarianceSnapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("audit_date = ?", date).Delete(&entities.VarianceSnapshot{}).Error; err != nil {
			return err
		}
		return tx.Create(&snapshots).Error
	})
}

func (r *auditRepository) GetSnapshotDates(ctx context.Context) ([]time.Time, error) {
	var dates []time.Time
	if err := r.db.WithContext(ctx).
		Model(&entities.VarianceSnapshot{}).
		Distinct("audit_date").
		Order("audit_date desc").
		Pluck("audit_date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *auditRepository) GetSnapshotsByDate(ctx context.Context, date time.Time) ([]*entities.VarianceSnapshot, error) {
	var snapshots []*entities.VarianceSnapshot
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("audit_date = ?", date).
		Order("created_at asc").
		Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *auditRepository) DeleteSnapshotsByDate(ctx context.Context, date time.Time) error {
	return r.db.WithContext(ctx).Where("audit_date = ?", date).Delete(&entities.VarianceSnapshot{}).Error
}

func toTotals(rows []totalRow) map[uuid.UUID]float64 {
	totals := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		totals[row.IngredientID] = row.Total
	}
	return totals
}
