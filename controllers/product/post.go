package productcontroller

import (
	"errors"
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/CKONG1301/Day96-Online-Shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

var allowedExtensions = map[string]bool{".jpg": true, ".png": true, ".bmp": true}

// UploadDir is where product images land; served back under the same path.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "static/images/online"
}

// GET /add
func NewProductPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", gin.H{"Categories": models.Categories})
}

// SubmitProduct handles POST /add: validates the form, saves the uploaded
// image to local disk and upserts the product by title. The image save and
// the row write are two independent steps, not a transaction.
func SubmitProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		redisplay := func(status int, msg string) {
			c.HTML(status, "add.html", gin.H{"Flash": msg, "Categories": models.Categories})
		}

		category := c.PostForm("category")
		title := c.PostForm("title")
		stockStr := c.PostForm("stock")
		priceStr := c.PostForm("price")
		description := c.PostForm("description")
		if category == "" || title == "" || stockStr == "" || priceStr == "" || description == "" {
			redisplay(http.StatusBadRequest, "All fields are required")
			return
		}
		if !models.ValidCategory(category) {
			redisplay(http.StatusBadRequest, "Invalid category")
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil {
			redisplay(http.StatusBadRequest, "Invalid stock")
			return
		}
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			redisplay(http.StatusBadRequest, "Invalid price")
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			redisplay(http.StatusBadRequest, "Image file is required")
			return
		}
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedExtensions[ext] {
			redisplay(http.StatusBadRequest, "Images only! (jpg, png, bmp)")
			return
		}

		// The upload must actually decode as an image.
		src, err := file.Open()
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to read image: %v", err)
			return
		}
		_, _, err = image.Decode(src)
		src.Close()
		if err != nil {
			c.String(http.StatusBadRequest, "error: %s is not a valid image", file.Filename)
			return
		}

		saveDir := UploadDir()
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.String(http.StatusInternalServerError, "Failed to create upload folder: %v", err)
			return
		}
		filename := strings.ReplaceAll(filepath.Base(file.Filename), " ", "_")
		savePath := filepath.Join(saveDir, filename)
		// Same filename overwrites the previous upload.
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.String(http.StatusInternalServerError, "Failed to save image: %v", err)
			return
		}
		imageURL := "/" + filepath.ToSlash(savePath)

		var product models.Product
		err = db.Where("title = ?", title).First(&product).Error
		switch {
		case err == nil:
			// Update existing product.
			product.Category = category
			product.Stock = stock
			product.Price = price
			product.Description = description
			product.Image = imageURL
			if err := db.Save(&product).Error; err != nil {
				c.String(http.StatusInternalServerError, "Failed to update product")
				return
			}
			c.HTML(http.StatusOK, "add.html", gin.H{
				"Flash":      "You have updated an existing product!",
				"Categories": models.Categories,
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Create new product.
			product = models.Product{
				Category:    category,
				Title:       title,
				Stock:       stock,
				Price:       price,
				Description: description,
				Image:       imageURL,
			}
			if err := db.Create(&product).Error; err != nil {
				c.String(http.StatusInternalServerError, "Failed to create product")
				return
			}
			c.HTML(http.StatusOK, "add.html", gin.H{
				"Flash":      fmt.Sprintf("Product %s saved", product.Title),
				"Categories": models.Categories,
			})
		default:
			c.String(http.StatusInternalServerError, "Failed to look up product")
		}
	}
}
