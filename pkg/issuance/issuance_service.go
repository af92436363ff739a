package issuance

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/entities"
	"Bakehouse-Backend/pkg/ingredient"
	"Bakehouse-Backend/pkg/units"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IssuanceService interface {
		CreateIssuance(ctx context.Context, req domain.CreateIssuanceRequest) (domain.IssuanceResponse, error)
		DeleteIssuance(ctx context.Context, id string) error
		GetIssuances(ctx context.Context, page, limit int) ([]domain.IssuanceResponse, int64, error)
		GetAvailableIssuances(ctx context.Context) ([]domain.IssuanceResponse, error)
	}

	issuanceService struct {
		issuanceRepository   IssuanceRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewIssuanceService(issuanceRepository IssuanceRepository, ingredientRepository ingredient.IngredientRepository) IssuanceService {
	return &issuanceService{
		issuanceRepository:   issuanceRepository,
		ingredientRepository: ingredientRepository,
	}
}

func (s *issuanceService) CreateIssuance(ctx context.Context, req domain.CreateIssuanceRequest) (domain.IssuanceResponse, error) {
	if req.Principal < 0 || req.Complementary < 0 {
		return domain.IssuanceResponse{}, domain.ErrNegativeQuantity
	}
	if req.Principal == 0 && req.Complementary == 0 {
		return domain.IssuanceResponse{}, domain.ErrNegativeQuantity
	}

	ing, err := s.ingredientRepository.GetIngredientByID(ctx, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IssuanceResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IssuanceResponse{}, err
	}

	factor, err := units.Factor(ing.UnitClass, req.Unit)
	if err != nil {
		return domain.IssuanceResponse{}, err
	}

	issuedByUUID, err := uuid.Parse(req.IssuedByID)
	if err != nil {
		return domain.IssuanceResponse{}, domain.ErrParseUUID
	}
	receivedByUUID, err := uuid.Parse(req.ReceivedByID)
	if err != nil {
		return domain.IssuanceResponse{}, domain.ErrParseUUID
	}

	// The remaining pair is kept in base units: the principal component is
	// converted up front, the complementary one already is base sub-units.
	principalBase := req.Principal * factor
	record := &entities.IssuanceRecord{
		ID:                     uuid.New(),
		IngredientID:           ing.ID,
		IssuedByID:             issuedByUUID,
		ReceivedByID:           receivedByUUID,
		RemainingPrincipal:     principalBase,
		RemainingComplementary: req.Complementary,
		EntryUnit:              req.Unit,
		IssuedBase:             principalBase + req.Complementary,
		IssuedAt:               time.Now(),
	}

	if err := s.issuanceRepository.CreateWithDebit(ctx, record); err != nil {
		return domain.IssuanceResponse{}, err
	}

	record.Ingredient = ing
	return s.toResponse(record)
}

func (s *issuanceService) DeleteIssuance(ctx context.Context, id string) error {
	record, err := s.issuanceRepository.GetIssuanceByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIssuanceNotFound
		}
		return err
	}

	return s.issuanceRepository.DeleteWithCredit(ctx, record)
}

func (s *issuanceService) GetIssuances(ctx context.Context, page, limit int) ([]domain.IssuanceResponse, int64, error) {
	records, count, err := s.issuanceRepository.GetIssuances(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.IssuanceResponse, 0, len(records))
	for _, record := range records {
		res, err := s.toResponse(record)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, res)
	}
	return result, count, nil
}

func (s *issuanceService) GetAvailableIssuances(ctx context.Context) ([]domain.IssuanceResponse, error) {
	records, err := s.issuanceRepository.GetAvailableIssuances(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IssuanceResponse, 0, len(records))
	for _, record := range records {
		res, err := s.toResponse(record)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *issuanceService) toResponse(record *entities.IssuanceRecord) (domain.IssuanceResponse, error) {
	remaining := record.RemainingPrincipal + record.RemainingComplementary

	res := domain.IssuanceResponse{
		ID:            record.ID.String(),
		IngredientID:  record.IngredientID.String(),
		IssuedByID:    record.IssuedByID.String(),
		ReceivedByID:  record.ReceivedByID.String(),
		EntryUnit:     record.EntryUnit,
		IssuedBase:    record.IssuedBase,
		RemainingBase: remaining,
		IssuedAt:      record.IssuedAt,
	}

	if record.Ingredient != nil {
		res.IngredientName = record.Ingredient.Name
		display, err := units.Format(record.Ingredient.UnitClass, remaining)
		if err != nil {
			return domain.IssuanceResponse{}, err
		}
		res.RemainingDisplay = display
	}
	if record.IssuedBy != nil {
		res.IssuedByName = record.IssuedBy.Name
	}
	if record.ReceivedBy != nil {
		res.ReceivedByName = record.ReceivedBy.Name
	}

	return res, nil
}
