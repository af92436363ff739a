package domain

import (
	"errors"
	"time"
)

// Expiry status values derived for finished product listings.
const (
	ProductStatusFresh        = "Fresh"
	ProductStatusExpiringSoon = "ExpiringSoon"
	ProductStatusExpiresToday = "ExpiresToday"
	ProductStatusExpired      = "Expired"
)

var (
	MessageSuccessCreateCatalogEntry = "catalog entry created successfully"
	MessageSuccessUpdateCatalogEntry = "catalog entry updated successfully"
	MessageSuccessDeleteCatalogEntry = "catalog entry deleted successfully"
	MessageSuccessGetCatalog         = "catalog retrieved successfully"

	MessageSuccessCreateProduct = "product created successfully"
	MessageSuccessUpdateProduct = "product updated successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"

	MessageFailedCreateCatalogEntry = "failed to create catalog entry"
	MessageFailedUpdateCatalogEntry = "failed to update catalog entry"
	MessageFailedDeleteCatalogEntry = "failed to delete catalog entry"
	MessageFailedGetCatalog         = "failed to retrieve catalog"

	MessageFailedCreateProduct = "failed to create product"
	MessageFailedUpdateProduct = "failed to update product"
	MessageFailedDeleteProduct = "failed to delete product"
	MessageFailedGetProducts   = "failed to retrieve products"

	ErrCatalogEntryNotFound = errors.New("catalog entry not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidDate          = errors.New("invalid date")
)

type (
	CreateCatalogEntryRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	UpdateCatalogEntryRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
	}

	CatalogEntryResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}

	CreateProductRequest struct {
		CatalogID      string   `json:"catalog_id" validate:"required,uuid"`
		Quantity       int      `json:"quantity" validate:"required,min=1"`
		UnitWeight     float64  `json:"unit_weight" validate:"required,gt=0"`
		ProductionDate string   `json:"production_date" validate:"omitempty"`
		ExpiryDate     string   `json:"expiry_date" validate:"omitempty"`
		Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	}

	UpdateProductRequest struct {
		Quantity       int      `json:"quantity" validate:"omitempty,min=1"`
		UnitWeight     float64  `json:"unit_weight" validate:"omitempty,gt=0"`
		ProductionDate string   `json:"production_date" validate:"omitempty"`
		ExpiryDate     string   `json:"expiry_date" validate:"omitempty"`
		Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	}

	ProductResponse struct {
		ID             string     `json:"id"`
		CatalogID      string     `json:"catalog_id"`
		Name           string     `json:"name"`
		Quantity       int        `json:"quantity"`
		UnitWeight     float64    `json:"unit_weight"`
		ProductionDate *time.Time `json:"production_date,omitempty"`
		ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
		Price          *float64   `json:"price,omitempty"`
		ExpiryStatus   string     `json:"expiry_status"`
	}
)
