package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	cartControllers "github.com/CKONG1301/Day96-Online-Shop/controllers/cart"
	"github.com/CKONG1301/Day96-Online-Shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var qtyChoices = []int{1, 2, 3, 4, 5}

// GET /
func HomePage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id").Find(&products).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		c.HTML(http.StatusOK, "index.html", gin.H{
			"Products": products,
			"CartSize": cartControllers.Size(db, c.GetUint("user_id")),
			"Name":     c.GetString("name"),
		})
	}
}

// ProductPage renders the detail + purchase form for GET /buy?id=<product_id>.
// An unknown id renders a blank detail page rather than an error.
func ProductPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product *models.Product
		if id, err := strconv.Atoi(c.Query("id")); err == nil {
			var p models.Product
			err := db.First(&p, id).Error
			if err == nil {
				product = &p
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.String(http.StatusInternalServerError, "Failed to retrieve product")
				return
			}
		}

		c.HTML(http.StatusOK, "product.html", gin.H{
			"Product":  product,
			"Qty":      qtyChoices,
			"CartSize": cartControllers.Size(db, c.GetUint("user_id")),
		})
	}
}
