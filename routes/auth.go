package routes

import (
	"github.com/CKONG1301/Day96-Online-Shop/auth"
	"github.com/CKONG1301/Day96-Online-Shop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the session lifecycle endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/login", auth.LoginPage)
	r.POST("/login", auth.LoginHandler(db))

	r.GET("/register", auth.RegisterPage)
	r.POST("/register", auth.RegisterHandler(db))

	r.GET("/logout", middleware.RequireLogin, auth.LogoutHandler)
}
