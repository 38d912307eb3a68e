package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/CKONG1301/Day96-Online-Shop/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionCookie carries the signed session token for every protected route.
const SessionCookie = "session"

const sessionTTL = 24 * time.Hour

// GET /register
func RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// POST /register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")
		name := c.PostForm("name")
		if email == "" || password == "" || name == "" {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{"Flash": "All fields are required"})
			return
		}

		var existing models.User
		err := db.Where("email = ?", email).First(&existing).Error
		if err == nil {
			// Already signed up with that email, log in instead.
			c.Redirect(http.StatusFound, "/login")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Flash": "Database error"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Flash": "Failed to create account"})
			return
		}

		// The first account on a fresh install becomes the administrator.
		role := models.RoleCustomer
		var count int64
		db.Model(&models.User{}).Count(&count)
		if count == 0 {
			role = models.RoleAdmin
		}

		user := models.User{
			Email:    email,
			Password: string(hash),
			Name:     name,
			Role:     role,
			Cart:     models.Cart{},
		}
		if err := db.Create(&user).Error; err != nil {
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Flash": "Failed to create account"})
			return
		}

		if err := setSession(c, &user); err != nil {
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Flash": "Failed to establish session"})
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

// GET /login
func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// POST /login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")
		if email == "" || password == "" {
			c.HTML(http.StatusBadRequest, "login.html", gin.H{"Flash": "Email and password are required"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// That email does not exist, please register.
				c.Redirect(http.StatusFound, "/register")
				return
			}
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Flash": "Database error"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Flash": "Password incorrect, please try again"})
			return
		}

		if err := setSession(c, &user); err != nil {
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Flash": "Failed to establish session"})
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

// GET /logout
func LogoutHandler(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func setSession(c *gin.Context, user *models.User) error {
	token, err := issueSessionToken(user)
	if err != nil {
		return err
	}
	c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
	return nil
}

// issueSessionToken generates the signed JWT stored in the session cookie.
func issueSessionToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"name":    user.Name,
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
