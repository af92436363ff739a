package ingredient

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/entities"
	"Bakehouse-Backend/pkg/units"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReasonIssuance       = "Issuance"
	ReasonIssuanceReturn = "IssuanceReturn"
	ReasonAdjustment     = "Adjustment"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		GetIngredients(ctx context.Context, search string) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) error
		DeleteIngredient(ctx context.Context, id string) error
		AdjustStock(ctx context.Context, id string, req domain.AdjustStockRequest) error
		GetStockMovements(ctx context.Context, id string, page, limit int) ([]domain.StockMovementResponse, int64, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	if req.InitialStock < 0 {
		return domain.IngredientResponse{}, domain.ErrNegativeQuantity
	}
	if _, err := units.BaseUnit(req.UnitClass); err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient := &entities.Ingredient{
		ID:        uuid.New(),
		Name:      req.Name,
		UnitClass: req.UnitClass,
		StockBase: req.InitialStock,
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return s.toResponse(ingredient)
}

func (s *ingredientService) GetIngredients(ctx context.Context, search string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, search)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		res, err := s.toResponse(ingredient)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return s.toResponse(ingredient)
}

// UpdateIngredient renames the ingredient. Only the name column is written;
// writing the whole row here could resurrect a stock value that a concurrent
// debit already changed.
func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	return s.ingredientRepository.RenameIngredient(ctx, id, req.Name)
}

// DeleteIngredient refuses to delete while issuance or consumption records
// still reference the ingredient, so audit history is never dropped by a
// cascade.
func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	dependents, err := s.ingredientRepository.CountDependents(ctx, id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return domain.ErrIngredientInUse
	}

	return s.ingredientRepository.DeleteIngredient(ctx, id)
}

func (s *ingredientService) AdjustStock(ctx context.Context, id string, req domain.AdjustStockRequest) error {
	if req.Quantity <= 0 {
		return domain.ErrNegativeQuantity
	}

	if req.Type == "debit" {
		return s.ingredientRepository.DebitStock(ctx, id, req.Quantity, ReasonAdjustment, nil, req.Note)
	}
	return s.ingredientRepository.CreditStock(ctx, id, req.Quantity, ReasonAdjustment, nil, req.Note)
}

func (s *ingredientService) GetStockMovements(ctx context.Context, id string, page, limit int) ([]domain.StockMovementResponse, int64, error) {
	movements, count, err := s.ingredientRepository.GetStockMovements(ctx, id, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.StockMovementResponse, 0, len(movements))
	for _, movement := range movements {
		res := domain.StockMovementResponse{
			ID:           movement.ID.String(),
			IngredientID: movement.IngredientID.String(),
			Quantity:     movement.Quantity,
			Reason:       movement.Reason,
			Note:         movement.Note,
			CreatedAt:    movement.CreatedAt,
		}
		if movement.ReferenceID != nil {
			res.ReferenceID = movement.ReferenceID.String()
		}
		result = append(result, res)
	}
	return result, count, nil
}

func (s *ingredientService) toResponse(ingredient *entities.Ingredient) (domain.IngredientResponse, error) {
	baseUnit, err := units.BaseUnit(ingredient.UnitClass)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	display, err := units.Format(ingredient.UnitClass, ingredient.StockBase)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	return domain.IngredientResponse{
		ID:           ingredient.ID.String(),
		Name:         ingredient.Name,
		UnitClass:    ingredient.UnitClass,
		StockBase:    ingredient.StockBase,
		BaseUnit:     baseUnit,
		StockDisplay: display,
	}, nil
}
