package product

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		CreateCatalogEntry(ctx context.Context, req domain.CreateCatalogEntryRequest) (domain.CatalogEntryResponse, error)
		GetCatalogEntries(ctx context.Context) ([]domain.CatalogEntryResponse, error)
		UpdateCatalogEntry(ctx context.Context, id string, req domain.UpdateCatalogEntryRequest) error
		DeleteCatalogEntry(ctx context.Context, id string) error

		CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error)
		GetProducts(ctx context.Context) ([]domain.ProductResponse, error)
		GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) error
		DeleteProduct(ctx context.Context, id string) error
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{productRepository: productRepository}
}

func (s *productService) CreateCatalogEntry(ctx context.Context, req domain.CreateCatalogEntryRequest) (domain.CatalogEntryResponse, error) {
	entry := &entities.CatalogEntry{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.productRepository.CreateCatalogEntry(ctx, entry); err != nil {
		return domain.CatalogEntryResponse{}, err
	}

	return domain.CatalogEntryResponse{
		ID:          entry.ID.String(),
		Name:        entry.Name,
		Description: entry.Description,
	}, nil
}

func (s *productService) GetCatalogEntries(ctx context.Context) ([]domain.CatalogEntryResponse, error) {
	entries, err := s.productRepository.GetCatalogEntries(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CatalogEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, domain.CatalogEntryResponse{
			ID:          entry.ID.String(),
			Name:        entry.Name,
			Description: entry.Description,
		})
	}
	return result, nil
}

func (s *productService) UpdateCatalogEntry(ctx context.Context, id string, req domain.UpdateCatalogEntryRequest) error {
	entry, err := s.productRepository.GetCatalogEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCatalogEntryNotFound
		}
		return err
	}

	if req.Name != "" {
		entry.Name = req.Name
	}
	if req.Description != "" {
		entry.Description = req.Description
	}
	return s.productRepository.UpdateCatalogEntry(ctx, entry)
}

func (s *productService) DeleteCatalogEntry(ctx context.Context, id string) error {
	if _, err := s.productRepository.GetCatalogEntryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCatalogEntryNotFound
		}
		return err
	}
	return s.productRepository.DeleteCatalogEntry(ctx, id)
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error) {
	catalog, err := s.productRepository.GetCatalogEntryByID(ctx, req.CatalogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrCatalogEntryNotFound
		}
		return domain.ProductResponse{}, err
	}

	productionDate, err := parseOptionalDate(req.ProductionDate)
	if err != nil {
		return domain.ProductResponse{}, err
	}
	expiryDate, err := parseOptionalDate(req.ExpiryDate)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	product := &entities.FinishedProduct{
		ID:             uuid.New(),
		CatalogID:      catalog.ID,
		Quantity:       req.Quantity,
		UnitWeight:     req.UnitWeight,
		ProductionDate: productionDate,
		ExpiryDate:     expiryDate,
		Price:          req.Price,
	}

	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	product.Catalog = catalog
	return toProductResponse(product, time.Now()), nil
}

func (s *productService) GetProducts(ctx context.Context) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]domain.ProductResponse, 0, len(products))
	for _, product := range products {
		result = append(result, toProductResponse(product, now))
	}
	return result, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}
	return toProductResponse(product, time.Now()), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if req.Quantity > 0 {
		product.Quantity = req.Quantity
	}
	if req.UnitWeight > 0 {
		product.UnitWeight = req.UnitWeight
	}
	if req.ProductionDate != "" {
		productionDate, err := parseOptionalDate(req.ProductionDate)
		if err != nil {
			return err
		}
		product.ProductionDate = productionDate
	}
	if req.ExpiryDate != "" {
		expiryDate, err := parseOptionalDate(req.ExpiryDate)
		if err != nil {
			return err
		}
		product.ExpiryDate = expiryDate
	}
	if req.Price != nil {
		product.Price = req.Price
	}

	return s.productRepository.UpdateProduct(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.productRepository.GetProductByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}
	return s.productRepository.DeleteProduct(ctx, id)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	return &parsed, nil
}

// determineExpiryStatus mirrors the shelf-life coloring of the product list:
// expired, expiring today, within three days, or fresh.
func determineExpiryStatus(expiryDate *time.Time, now time.Time) string {
	if expiryDate == nil {
		return domain.ProductStatusFresh
	}

	today := now.Truncate(24 * time.Hour)
	expiry := expiryDate.Truncate(24 * time.Hour)

	switch {
	case expiry.Before(today):
		return domain.ProductStatusExpired
	case expiry.Equal(today):
		return domain.ProductStatusExpiresToday
	case !expiry.After(today.Add(3 * 24 * time.Hour)):
		return domain.ProductStatusExpiringSoon
	default:
		return domain.ProductStatusFresh
	}
}

func toProductResponse(product *entities.FinishedProduct, now time.Time) domain.ProductResponse {
	res := domain.ProductResponse{
		ID:             product.ID.String(),
		CatalogID:      product.CatalogID.String(),
		Quantity:       product.Quantity,
		UnitWeight:     product.UnitWeight,
		ProductionDate: product.ProductionDate,
		ExpiryDate:     product.ExpiryDate,
		Price:          product.Price,
		ExpiryStatus:   determineExpiryStatus(product.ExpiryDate, now),
	}
	if product.Catalog != nil {
		res.Name = product.Catalog.Name
	}
	return res
}
