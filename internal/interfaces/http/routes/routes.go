// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/stockflow/internal/interfaces/http/handlers"
)

// Handlers groups everything the API routes dispatch to
type Handlers struct {
	Product   *handlers.ProductHandler
	Cart      *handlers.CartHandler
	Checkout  *handlers.CheckoutHandler
	Order     *handlers.OrderHandler
	Analytics *handlers.AnalyticsHandler
}

// SetupRoutes registers every API route under rg
func SetupRoutes(rg *gin.RouterGroup, h *Handlers) {
	SetupProductRoutes(rg, h)
	SetupCartRoutes(rg, h)
	SetupAdminRoutes(rg, h)
}

// SetupProductRoutes sets up the shop catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, h *Handlers) {
	products := rg.Group("/products")
	{
		products.GET("", h.Product.GetProducts)
		products.GET("/categories", h.Product.GetCategories)
		products.GET("/:id", h.Product.GetProduct)
	}
}

// SetupCartRoutes sets up the session cart and checkout routes
func SetupCartRoutes(rg *gin.RouterGroup, h *Handlers) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Cart.GetCart)
		cart.GET("/count", h.Cart.GetCartCount)
		cart.POST("/items", h.Cart.AddToCart)
		cart.PUT("/items/:id", h.Cart.UpdateCartItem)
		cart.DELETE("/items/:id", h.Cart.RemoveFromCart)
		cart.DELETE("", h.Cart.ClearCart)
	}

	rg.POST("/checkout", h.Checkout.Checkout)
}

// SetupAdminRoutes sets up inventory, order and dashboard management routes
func SetupAdminRoutes(rg *gin.RouterGroup, h *Handlers) {
	admin := rg.Group("/admin")
	{
		// Product management
		products := admin.Group("/products")
		{
			products.GET("", h.Product.AdminGetProducts)
			products.GET("/low-stock", h.Product.AdminGetLowStock)
			products.GET("/:id", h.Product.AdminGetProduct)
			products.POST("", h.Product.AdminCreateProduct)
			products.PUT("/:id", h.Product.AdminUpdateProduct)
			products.DELETE("/:id", h.Product.AdminDeleteProduct)
			products.PUT("/:id/inventory", h.Product.AdminUpdateInventory)
		}

		// Order management
		orders := admin.Group("/orders")
		{
			orders.GET("", h.Order.AdminGetOrders)
			orders.GET("/:id", h.Order.AdminGetOrder)
			orders.PUT("/:id/status", h.Order.AdminUpdateOrderStatus)
			orders.DELETE("/:id", h.Order.AdminDeleteOrder)
		}

		admin.GET("/dashboard", h.Analytics.GetDashboard)
	}
}
