// internal/domain/product/service.go
package product

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/stockflow/internal/pkg/money"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Sort keys accepted by ListFilter.SortBy
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
	SortByStock     = "stock"
)

// Repository is where products are stored
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error
}

// Service handles product business logic
type Service struct {
	repo   Repository
	logger logrus.FieldLogger
}

// NewService creates a new product service
func NewService(repo Repository, logger logrus.FieldLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListFilter represents product list query parameters
type ListFilter struct {
	Search      string `form:"search"`
	Category    string `form:"category"`
	SortBy      string `form:"sort_by"`
	InStockOnly bool   `form:"-"`
}

// ProductRequest represents product create and update data
type ProductRequest struct {
	Name              string      `json:"name" binding:"required"`
	Price             money.Cents `json:"price"` // 19.99 or "19.99"
	Stock             int         `json:"stock"`
	Category          string      `json:"category"`
	Description       string      `json:"description"`
	LowStockThreshold *int        `json:"low_stock_threshold"`
	Tags              string      `json:"tags"`
}

// ListProducts filters and sorts the catalog in memory
func (s *Service) ListProducts(ctx context.Context, filter ListFilter) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return ApplyFilter(products, filter), nil
}

// ApplyFilter returns the products matching filter, sorted by filter.SortBy
func ApplyFilter(products []Product, filter ListFilter) []Product {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if filter.InStockOnly && p.Stock <= 0 {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, lessFunc(filtered, filter.SortBy))
	return filtered
}

func lessFunc(ps []Product, sortBy string) func(i, j int) bool {
	switch sortBy {
	case SortByPriceLow:
		return func(i, j int) bool { return ps[i].Price < ps[j].Price }
	case SortByPriceHigh:
		return func(i, j int) bool { return ps[i].Price > ps[j].Price }
	case SortByStock:
		return func(i, j int) bool { return ps[i].Stock > ps[j].Stock }
	default:
		return func(i, j int) bool { return strings.ToLower(ps[i].Name) < strings.ToLower(ps[j].Name) }
	}
}

// Categories returns the distinct categories in first-seen order. With
// inStockOnly set, categories whose products are all sold out are left out.
func (s *Service) Categories(ctx context.Context, inStockOnly bool) ([]string, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	seen := make(map[string]struct{})
	categories := []string{}
	for _, p := range products {
		if p.Category == "" || (inStockOnly && p.Stock <= 0) {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	return s.repo.Get(ctx, id)
}

// LowStock returns products at or under their low-stock threshold
func (s *Service) LowStock(ctx context.Context) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return FilterLowStock(products), nil
}

// FilterLowStock keeps the products at or under their threshold
func FilterLowStock(products []Product) []Product {
	low := []Product{}
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}

// CreateProduct validates req and stores a new product
func (s *Service) CreateProduct(ctx context.Context, req *ProductRequest) (*Product, error) {
	p := &Product{}
	if err := applyRequest(p, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"product_id": p.ID, "name": p.Name}).Info("product created")
	return p, nil
}

// UpdateProduct replaces the editable fields of product id
func (s *Service) UpdateProduct(ctx context.Context, id uint, req *ProductRequest) (*Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyRequest(p, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.WithField("product_id", p.ID).Info("product updated")
	return p, nil
}

// UpdateStock sets the stock level of product id
func (s *Service) UpdateStock(ctx context.Context, id uint, stock int) (*Product, error) {
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", ErrInvalidProduct)
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := p.Stock
	p.Stock = stock
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"product_id": id,
		"from":       previous,
		"to":         stock,
	}).Info("stock updated")
	return p, nil
}

// DeleteProduct removes product id
func (s *Service) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("product_id", id).Info("product deleted")
	return nil
}

func applyRequest(p *Product, req *ProductRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	}
	if req.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrInvalidProduct)
	}

	threshold := DefaultLowStockThreshold
	if req.LowStockThreshold != nil {
		threshold = *req.LowStockThreshold
	}
	if threshold < 0 {
		return fmt.Errorf("%w: low stock threshold cannot be negative", ErrInvalidProduct)
	}

	p.Name = name
	p.Price = req.Price
	p.Stock = req.Stock
	p.Category = strings.TrimSpace(req.Category)
	p.Description = strings.TrimSpace(req.Description)
	p.LowStockThreshold = threshold
	p.Tags = req.Tags
	return nil
}
