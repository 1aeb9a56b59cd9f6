// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/stockflow/internal/domain/cart"
	"github.com/your-org/stockflow/internal/domain/product"
	"github.com/your-org/stockflow/internal/pkg/money"
)

// ProductFinder looks up the product being added to the cart
type ProductFinder interface {
	GetProduct(ctx context.Context, id uint) (*product.Product, error)
}

// CartHandler handles cart endpoints
type CartHandler struct {
	sessions *CartSessions
	products ProductFinder
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *CartSessions, products ProductFinder) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		products: products,
	}
}

// AddToCartRequest represents the add to cart payload
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateCartItemRequest represents a quantity change. Zero or less removes the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartResponse is the cart as returned to the shop
type CartResponse struct {
	Items          []cart.LineItem `json:"items"`
	Total          money.Cents     `json:"total"`
	FormattedTotal string          `json:"formatted_total"`
	ItemCount      int             `json:"item_count"`
	LineCount      int             `json:"line_count"`
	IsEmpty        bool            `json:"is_empty"`
}

func newCartResponse(store *cart.Store) CartResponse {
	total := store.Total()
	return CartResponse{
		Items:          store.Items(),
		Total:          total,
		FormattedTotal: total.Format(),
		ItemCount:      store.ItemCount(),
		LineCount:      store.LineCount(),
		IsEmpty:        store.IsEmpty(),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.sessions.Open(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    newCartResponse(store),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	p, err := h.products.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}

	store, release, err := h.sessions.Lock(c)
	if err != nil {
		respondError(c, err, "Failed to open cart")
		return
	}
	defer release()

	if !p.IsInStock() {
		c.JSON(http.StatusConflict, gin.H{
			"error": "This product is out of stock",
		})
		return
	}
	if store.ItemQuantity(p.ID)+req.Quantity > p.Stock {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Requested quantity exceeds available stock",
			"details": gin.H{"available": p.Stock, "in_cart": store.ItemQuantity(p.ID)},
		})
		return
	}

	store.AddItem(c.Request.Context(), p, req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Added " + p.Name + " to cart",
		"data":    newCartResponse(store),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	productID, ok := parseID(c, "product")
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	store, release, err := h.sessions.Lock(c)
	if err != nil {
		respondError(c, err, "Failed to open cart")
		return
	}
	defer release()

	store.UpdateQuantity(c.Request.Context(), productID, *req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    newCartResponse(store),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, ok := parseID(c, "product")
	if !ok {
		return
	}

	store, release, err := h.sessions.Lock(c)
	if err != nil {
		respondError(c, err, "Failed to open cart")
		return
	}
	defer release()

	store.RemoveItem(c.Request.Context(), productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    newCartResponse(store),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store, release, err := h.sessions.Lock(c)
	if err != nil {
		respondError(c, err, "Failed to open cart")
		return
	}
	defer release()

	store.ClearCart(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    newCartResponse(store),
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	store := h.sessions.Open(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": store.ItemCount(),
			"lines": store.LineCount(),
		},
	})
}
