package routes

import (
	cartControllers "github.com/CKONG1301/Day96-Online-Shop/controllers/cart"
	checkoutControllers "github.com/CKONG1301/Day96-Online-Shop/controllers/checkout"
	productControllers "github.com/CKONG1301/Day96-Online-Shop/controllers/product"
	"github.com/CKONG1301/Day96-Online-Shop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupShopRoutes registers the storefront pages. Everything here requires a
// logged-in session; anonymous visitors are redirected to /login.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	shop := r.Group("/")
	shop.Use(middleware.RequireLogin)
	{
		// ──────────────── Catalog ────────────────
		shop.GET("/", productControllers.HomePage(db))
		shop.GET("/buy", productControllers.ProductPage(db)) // product detail, /buy?id=<product_id>

		// ──────────────── Shopping Cart ────────────────
		shop.POST("/buy", cartControllers.AddToCart(db))

		// ──────────────── Checkout ────────────────
		shop.GET("/checkout", checkoutControllers.CheckoutHandler(db))
		shop.POST("/checkout", checkoutControllers.CheckoutHandler(db))
	}

	// Confirmation pages are reached via Stripe's redirect, outside the session.
	r.GET("/success", checkoutControllers.SuccessPage)
	r.GET("/cancel", checkoutControllers.CancelPage)
}
