// internal/infrastructure/database/postgres/product_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/stockflow/internal/domain/product"
	"gorm.io/gorm"
)

// ProductRepository stores products in Postgres
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns every product, newest first
func (r *ProductRepository) List(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// Get returns a product by id
func (r *ProductRepository) Get(ctx context.Context, id uint) (*product.Product, error) {
	var p product.Product
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &p, nil
}

// Create inserts a product and fills in its id
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update saves every column of an existing product
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	result := r.db.WithContext(ctx).Model(&product.Product{}).Where("id = ?", p.ID).Select("*").Omit("created_at").Updates(p)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&product.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}
