package routes

import (
	checkoutControllers "github.com/CKONG1301/Day96-Online-Shop/controllers/checkout"
	productControllers "github.com/CKONG1301/Day96-Online-Shop/controllers/product"
	"github.com/CKONG1301/Day96-Online-Shop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers catalog management. Only the admin role gets in.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/")
	adminGroup.Use(middleware.RequireLogin, middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		adminGroup.GET("/add", productControllers.NewProductPage)
		adminGroup.POST("/add", productControllers.SubmitProduct(db))

		// ─────────── Catalog Sync & Export ───────────
		adminGroup.POST("/admin/sync", checkoutControllers.SyncHandler(db))
		adminGroup.GET("/admin/export", productControllers.ExportProductsToExcel(db))
	}
}
