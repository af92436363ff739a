package audit

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/entities"
	"Bakehouse-Backend/pkg/ingredient"
	"Bakehouse-Backend/pkg/units"
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const auditDateLayout = "2006-01-02"

type (
	AuditService interface {
		ComputeReport(ctx context.Context) ([]domain.VarianceReportRow, error)
		RecordAudit(ctx context.Context, date string, req domain.RecordAuditRequest) ([]domain.SnapshotResponse, error)
		GetChecklistDates(ctx context.Context) ([]string, error)
		GetChecklist(ctx context.Context, date string) ([]domain.SnapshotResponse, error)
		DeleteChecklist(ctx context.Context, date string) error
		ExportChecklist(ctx context.Context, date string) ([]byte, string, error)
	}

	auditService struct {
		auditRepository      AuditRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewAuditService(auditRepository AuditRepository, ingredientRepository ingredient.IngredientRepository) AuditService {
	return &auditService{
		auditRepository:      auditRepository,
		ingredientRepository: ingredientRepository,
	}
}

// ComputeReport builds the live variance view: per ingredient, everything ever
// issued out of stock against everything production sheets consumed. The
// theoretical remainder is clamped at zero so over-reported consumption never
// shows up as negative stock on the counting sheet.
func (s *auditService) ComputeReport(ctx context.Context) ([]domain.VarianceReportRow, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, "")
	if err != nil {
		return nil, err
	}

	withdrawn, err := s.auditRepository.GetWithdrawnTotals(ctx)
	if err != nil {
		return nil, err
	}
	consumed, err := s.auditRepository.GetConsumedTotals(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.VarianceReportRow, 0, len(ingredients))
	for _, ing := range ingredients {
		baseUnit, err := units.BaseUnit(ing.UnitClass)
		if err != nil {
			return nil, err
		}
		row := domain.VarianceReportRow{
			IngredientID:   ing.ID.String(),
			IngredientName: ing.Name,
			BaseUnit:       baseUnit,
			Withdrawn:      withdrawn[ing.ID],
			Consumed:       consumed[ing.ID],
		}
		row.Theoretical = theoreticalRemainder(row.Withdrawn, row.Consumed)
		rows = append(rows, row)
	}
	return rows, nil
}

// RecordAudit freezes the variance figures for the counted ingredients into a
// dated checklist. Waste keeps its sign: a negative value means more was
// counted than the ledger says should remain, which is worth surfacing, not
// hiding.
func (s *auditService) RecordAudit(ctx context.Context, date string, req domain.RecordAuditRequest) ([]domain.SnapshotResponse, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyAudit
	}

	auditDate, err := parseAuditDate(date)
	if err != nil {
		return nil, err
	}

	withdrawn, err := s.auditRepository.GetWithdrawnTotals(ctx)
	if err != nil {
		return nil, err
	}
	consumed, err := s.auditRepository.GetConsumedTotals(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]*entities.VarianceSnapshot, 0, len(req.Items))
	for _, item := range req.Items {
		ing, err := s.ingredientRepository.GetIngredientByID(ctx, item.IngredientID)
		if err != nil {
			return nil, domain.ErrIngredientNotFound
		}

		theoretical := theoreticalRemainder(withdrawn[ing.ID], consumed[ing.ID])
		snapshots = append(snapshots, &entities.VarianceSnapshot{
			ID:           uuid.New(),
			IngredientID: ing.ID,
			Withdrawn:    withdrawn[ing.ID],
			Consumed:     consumed[ing.ID],
			Theoretical:  theoretical,
			Actual:       item.Actual,
			Waste:        theoretical - item.Actual,
			AuditDate:    auditDate,
			Ingredient:   ing,
		})
	}

	if err := s.auditRepository.ReplaceSnapshots(ctx, auditDate, snapshots); err != nil {
		return nil, err
	}

	result := make([]domain.SnapshotResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		result = append(result, toSnapshotResponse(snapshot))
	}
	return result, nil
}

func (s *auditService) GetChecklistDates(ctx context.Context) ([]string, error) {
	dates, err := s.auditRepository.GetSnapshotDates(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(dates))
	for _, date := range dates {
		result = append(result, date.Format(auditDateLayout))
	}
	return result, nil
}

func (s *auditService) GetChecklist(ctx context.Context, date string) ([]domain.SnapshotResponse, error) {
	snapshots, err := s.loadChecklist(ctx, date)
	if err != nil {
		return nil, err
	}

	result := make([]domain.SnapshotResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		result = append(result, toSnapshotResponse(snapshot))
	}
	return result, nil
}

func (s *auditService) DeleteChecklist(ctx context.Context, date string) error {
	auditDate, err := parseAuditDate(date)
	if err != nil {
		return err
	}

	snapshots, err := s.auditRepository.GetSnapshotsByDate(ctx, auditDate)
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		return domain.ErrChecklistNotFound
	}

	return s.auditRepository.DeleteSnapshotsByDate(ctx, auditDate)
}

// ExportChecklist renders a checklist as an xlsx workbook and returns the file
// bytes together with a download filename.
func (s *auditService) ExportChecklist(ctx context.Context, date string) ([]byte, string, error) {
	snapshots, err := s.loadChecklist(ctx, date)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	header := []interface{}{"Ingredient", "Unit", "Withdrawn", "Consumed", "Theoretical", "Counted", "Waste"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", err
	}

	for i, snapshot := range snapshots {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}

		name := snapshot.IngredientID.String()
		baseUnit := ""
		if snapshot.Ingredient != nil {
			name = snapshot.Ingredient.Name
			if unit, err := units.BaseUnit(snapshot.Ingredient.UnitClass); err == nil {
				baseUnit = unit
			}
		}

		row := []interface{}{
			name,
			baseUnit,
			snapshot.Withdrawn,
			snapshot.Consumed,
			snapshot.Theoretical,
			snapshot.Actual,
			snapshot.Waste,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("audit_%s.xlsx", snapshots[0].AuditDate.Format(auditDateLayout))
	return buf.Bytes(), filename, nil
}

func (s *auditService) loadChecklist(ctx context.Context, date string) ([]*entities.VarianceSnapshot, error) {
	auditDate, err := parseAuditDate(date)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.auditRepository.GetSnapshotsByDate(ctx, auditDate)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, domain.ErrChecklistNotFound
	}
	return snapshots, nil
}

func parseAuditDate(date string) (time.Time, error) {
	if date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	parsed, err := time.Parse(auditDateLayout, date)
	if err != nil {
		return time.Time{}, domain.ErrInvalidAuditDate
	}
	return parsed, nil
}

func theoreticalRemainder(withdrawn, consumed float64) float64 {
	theoretical := withdrawn - consumed
	if theoretical < 0 {
		return 0
	}
	return theoretical
}

func toSnapshotResponse(snapshot *entities.VarianceSnapshot) domain.SnapshotResponse {
	response := domain.SnapshotResponse{
		ID:           snapshot.ID.String(),
		IngredientID: snapshot.IngredientID.String(),
		Withdrawn:    snapshot.Withdrawn,
		Consumed:     snapshot.Consumed,
		Theoretical:  snapshot.Theoretical,
		Actual:       snapshot.Actual,
		Waste:        snapshot.Waste,
		AuditDate:    snapshot.AuditDate.Format(auditDateLayout),
	}
	if snapshot.Ingredient != nil {
		response.IngredientName = snapshot.Ingredient.Name
	}
	return response
}
