// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/stockflow/internal/domain/checkout"
	"github.com/your-org/stockflow/internal/domain/order"
	"github.com/your-org/stockflow/internal/domain/product"
)

// respondError maps domain errors to HTTP responses. Anything unrecognised
// becomes a 500 carrying fallback, never the internal error text.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, product.ErrProductNotFound), errors.Is(err, order.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, product.ErrInvalidProduct),
		errors.Is(err, order.ErrInvalidOrder),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Request timeout"})
	case errors.Is(err, order.ErrSubmissionFailed):
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": order.ErrSubmissionFailed.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// parseID reads the :id path parameter
func parseID(c *gin.Context, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + what + " ID",
		})
		return 0, false
	}
	return uint(id), true
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request data",
		"details": err.Error(),
	})
}
