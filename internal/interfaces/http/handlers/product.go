// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/stockflow/internal/domain/product"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productService *product.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *product.Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// ProductView adds the derived stock fields the shop and inventory pages show
type ProductView struct {
	product.Product
	StockStatus       product.StockStatus `json:"stock_status"`
	StockLevelPercent int                 `json:"stock_level_percent"`
	FormattedPrice    string              `json:"formatted_price"`
}

func newProductView(p product.Product) ProductView {
	return ProductView{
		Product:           p,
		StockStatus:       p.StockStatus(),
		StockLevelPercent: p.StockLevelPercent(),
		FormattedPrice:    p.Price.Format(),
	}
}

func newProductViews(products []product.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = newProductView(p)
	}
	return views
}

// GetProducts handles GET /products. Only products in stock are listed.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var filter product.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}
	filter.InStockOnly = true

	products, err := h.productService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    newProductViews(products),
	})
}

// GetCategories handles GET /products/categories. Only categories with
// something in stock are offered to the shop.
func (h *ProductHandler) GetCategories(c *gin.Context) {
	categories, err := h.productService.Categories(c.Request.Context(), true)
	if err != nil {
		respondError(c, err, "Failed to retrieve categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "product")
	if !ok {
		return
	}

	p, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    newProductView(*p),
	})
}

// Admin endpoints

// AdminGetProducts handles GET /admin/products
func (h *ProductHandler) AdminGetProducts(c *gin.Context) {
	var filter product.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    newProductViews(products),
	})
}

// AdminGetLowStock handles GET /admin/products/low-stock
func (h *ProductHandler) AdminGetLowStock(c *gin.Context) {
	products, err := h.productService.LowStock(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve low stock products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Low stock products retrieved successfully",
		"data":    newProductViews(products),
	})
}

// AdminGetProduct handles GET /admin/products/:id
func (h *ProductHandler) AdminGetProduct(c *gin.Context) {
	h.GetProduct(c)
}

// AdminCreateProduct handles POST /admin/products
func (h *ProductHandler) AdminCreateProduct(c *gin.Context) {
	var req product.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    newProductView(*p),
	})
}

// AdminUpdateProduct handles PUT /admin/products/:id
func (h *ProductHandler) AdminUpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "product")
	if !ok {
		return
	}

	var req product.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.productService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    newProductView(*p),
	})
}

// AdminDeleteProduct handles DELETE /admin/products/:id
func (h *ProductHandler) AdminDeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "product")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// UpdateInventoryRequest sets a product's stock level
type UpdateInventoryRequest struct {
	Stock *int `json:"stock" binding:"required,min=0"`
}

// AdminUpdateInventory handles PUT /admin/products/:id/inventory
func (h *ProductHandler) AdminUpdateInventory(c *gin.Context) {
	id, ok := parseID(c, "product")
	if !ok {
		return
	}

	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.productService.UpdateStock(c.Request.Context(), id, *req.Stock)
	if err != nil {
		respondError(c, err, "Failed to update inventory")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory updated successfully",
		"data":    newProductView(*p),
	})
}
