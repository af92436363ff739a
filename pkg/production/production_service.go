package production

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/entities"
	"Bakehouse-Backend/pkg/issuance"
	"Bakehouse-Backend/pkg/product"
	"Bakehouse-Backend/pkg/units"
	"Bakehouse-Backend/pkg/user"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	ProductionService interface {
		CreateSheet(ctx context.Context, req domain.CreateSheetRequest, userID string) (domain.SheetResponse, error)
		GetSheets(ctx context.Context, page, limit int) ([]domain.SheetResponse, int64, error)
		GetSheetByID(ctx context.Context, id string) (domain.SheetResponse, error)
		DeleteSheet(ctx context.Context, id string) error
	}

	productionService struct {
		productionRepository ProductionRepository
		issuanceRepository   issuance.IssuanceRepository
		productRepository    product.ProductRepository
		userRepository       user.UserRepository
	}
)

func NewProductionService(
	productionRepository ProductionRepository,
	issuanceRepository issuance.IssuanceRepository,
	productRepository product.ProductRepository,
	userRepository user.UserRepository,
) ProductionService {
	return &productionService{
		productionRepository: productionRepository,
		issuanceRepository:   issuanceRepository,
		productRepository:    productRepository,
		userRepository:       userRepository,
	}
}

// CreateSheet signs a production sheet in the name of the requesting user.
// The password must be re-entered so the signature cannot be produced from
// a stolen session alone.
func (s *productionService) CreateSheet(ctx context.Context, req domain.CreateSheetRequest, userID string) (domain.SheetResponse, error) {
	if len(req.Consumptions) == 0 {
		return domain.SheetResponse{}, domain.ErrEmptyConsumptions
	}

	signer, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SheetResponse{}, domain.ErrUserNotFound
		}
		return domain.SheetResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(signer.Password), []byte(req.Password)); err != nil {
		return domain.SheetResponse{}, domain.ErrWrongPassword
	}

	finished, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SheetResponse{}, domain.ErrProductNotFound
		}
		return domain.SheetResponse{}, err
	}

	signedBy := signer.Username
	if signer.Staff != nil {
		signedBy = signer.Staff.Name
	}

	sheet := &entities.ProductionSheet{
		ID:            uuid.New(),
		ProductID:     finished.ID,
		StaffID:       signer.StaffID,
		SignedBy:      signedBy,
		ProductWeight: req.ProductWeight,
		SignedAt:      time.Now(),
	}

	lines := make([]*entities.ConsumptionRecord, 0, len(req.Consumptions))
	for _, line := range req.Consumptions {
		record, err := s.issuanceRepository.GetIssuanceByID(ctx, line.IssuanceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.SheetResponse{}, domain.ErrIssuanceNotFound
			}
			return domain.SheetResponse{}, err
		}

		factor, err := units.Factor(record.Ingredient.UnitClass, line.Unit)
		if err != nil {
			return domain.SheetResponse{}, err
		}

		lines = append(lines, &entities.ConsumptionRecord{
			ID:           uuid.New(),
			IssuanceID:   record.ID,
			Quantity:     line.Quantity,
			EntryUnit:    line.Unit,
			QuantityBase: line.Quantity * factor,
		})
	}

	if err := s.productionRepository.CreateSheetWithConsumptions(ctx, sheet, lines); err != nil {
		return domain.SheetResponse{}, err
	}

	created, err := s.productionRepository.GetSheetByID(ctx, sheet.ID.String())
	if err != nil {
		return domain.SheetResponse{}, err
	}

	return toSheetResponse(created), nil
}

func (s *productionService) GetSheets(ctx context.Context, page, limit int) ([]domain.SheetResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	sheets, count, err := s.productionRepository.GetSheets(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.SheetResponse, 0, len(sheets))
	for _, sheet := range sheets {
		result = append(result, toSheetResponse(sheet))
	}
	return result, count, nil
}

func (s *productionService) GetSheetByID(ctx context.Context, id string) (domain.SheetResponse, error) {
	sheet, err := s.productionRepository.GetSheetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SheetResponse{}, domain.ErrSheetNotFound
		}
		return domain.SheetResponse{}, err
	}
	return toSheetResponse(sheet), nil
}

// DeleteSheet removes a signed sheet without crediting the drawn quantities
// back. The consumption already happened in the kitchen; removing the record
// does not undo it.
func (s *productionService) DeleteSheet(ctx context.Context, id string) error {
	if _, err := s.productionRepository.GetSheetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSheetNotFound
		}
		return err
	}
	return s.productionRepository.DeleteSheet(ctx, id)
}

func toSheetResponse(sheet *entities.ProductionSheet) domain.SheetResponse {
	response := domain.SheetResponse{
		ID:            sheet.ID.String(),
		ProductID:     sheet.ProductID.String(),
		SignedBy:      sheet.SignedBy,
		ProductWeight: sheet.ProductWeight,
		SignedAt:      sheet.SignedAt,
	}

	if sheet.Product != nil && sheet.Product.Catalog != nil {
		response.ProductName = sheet.Product.Catalog.Name
	}

	for _, line := range sheet.Consumptions {
		lineResponse := domain.ConsumptionLineResponse{
			ID:           line.ID.String(),
			IngredientID: line.IngredientID.String(),
			IssuanceID:   line.IssuanceID.String(),
			Quantity:     line.Quantity,
			Unit:         line.EntryUnit,
			QuantityBase: line.QuantityBase,
		}
		if line.Ingredient != nil {
			lineResponse.IngredientName = line.Ingredient.Name
		}
		response.Consumptions = append(response.Consumptions, lineResponse)
	}

	return response
}
