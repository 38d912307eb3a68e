package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/CKONG1301/Day96-Online-Shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddToCart handles POST /buy?id=<product_id>. Each submission appends a new
// cart entry; repeated purchases of the same product are kept as separate
// rows. There is no stock-level check.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		qty, err := strconv.Atoi(c.PostForm("qty"))
		if err != nil || qty < 1 || qty > 5 {
			c.String(http.StatusBadRequest, "Quantity must be between 1 and 5")
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Query("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.String(http.StatusBadRequest, "Product does not exist")
				return
			}
			c.String(http.StatusInternalServerError, "Failed to validate product")
			return
		}

		cart, err := cartOf(db, userID)
		if err != nil {
			c.String(http.StatusInternalServerError, "User cart not found")
			return
		}

		item := models.CartItem{
			CartID:    cart.CartID,
			ProductID: product.ID,
			Quantity:  qty,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to add item to cart")
			return
		}

		c.Redirect(http.StatusFound, "/")
	}
}

// Items returns the user's pending cart entries, oldest first.
func Items(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	cart, err := cartOf(db, userID)
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.CartID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Size is the cart badge count shown on every shop page. Lookup failures
// just render as an empty cart.
func Size(db *gorm.DB, userID uint) int64 {
	items, err := Items(db, userID)
	if err != nil {
		return 0
	}
	return int64(len(items))
}

func cartOf(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}
