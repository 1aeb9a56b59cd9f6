// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/stockflow/internal/domain/checkout"
)

// CheckoutHandler turns the session's cart into an order
type CheckoutHandler struct {
	sessions        *CartSessions
	checkoutService *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(sessions *CartSessions, checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		sessions:        sessions,
		checkoutService: checkoutService,
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkout.CheckoutRequest
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

	o, err := h.checkoutService.Checkout(c.Request.Context(), store, req.CustomerInfo())
	if err != nil {
		respondError(c, err, "Failed to place order. Please try again.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully! Thank you for your purchase.",
		"data":    o,
	})
}
