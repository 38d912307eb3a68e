package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, Shop, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Shop routes (session-protected)
	SetupShopRoutes(r, db)

	// 3️⃣ Admin routes (session + role protected)
	SetupAdminRoutes(r, db)
}
