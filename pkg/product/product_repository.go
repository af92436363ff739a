package product

import (
	"Bakehouse-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		// Catalog
		CreateCatalogEntry(ctx context.Context, entry *entities.CatalogEntry) error
		GetCatalogEntries(ctx context.Context) ([]*entities.CatalogEntry, error)
		GetCatalogEntryByID(ctx context.Context, id string) (*entities.CatalogEntry, error)
		UpdateCatalogEntry(ctx context.Context, entry *entities.CatalogEntry) error
		DeleteCatalogEntry(ctx context.Context, id string) error

		// Finished products
		CreateProduct(ctx context.Context, product *entities.FinishedProduct) error
		GetProducts(ctx context.Context) ([]*entities.FinishedProduct, error)
		GetProductByID(ctx context.Context, id string) (*entities.FinishedProduct, error)
		UpdateProduct(ctx context.Context, product *entities.FinishedProduct) error
		DeleteProduct(ctx context.Context, id string) error
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateCatalogEntry(ctx context.Context, entry *entities.CatalogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *productRepository) GetCatalogEntries(ctx context.Context) ([]*entities.CatalogEntry, error) {
	var entries []*entities.CatalogEntry
	if err := r.db.WithContext(ctx).Order("name asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *productRepository) GetCatalogEntryByID(ctx context.Context, id string) (*entities.CatalogEntry, error) {
	var entry entities.CatalogEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *productRepository) UpdateCatalogEntry(ctx context.Context, entry *entities.CatalogEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *productRepository) DeleteCatalogEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CatalogEntry{}).Error
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.FinishedProduct) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetProducts(ctx context.Context) ([]*entities.FinishedProduct, error) {
	var products []*entities.FinishedProduct
	if err := r.db.WithContext(ctx).
		Preload("Catalog").
		Order("expiry_date asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.FinishedProduct, error) {
	var product entities.FinishedProduct
	if err := r.db.WithContext(ctx).
		Preload("Catalog").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.FinishedProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FinishedProduct{}).Error
}
