package productcontroller_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	cartControllers "github.com/CKONG1301/Day96-Online-Shop/controllers/cart"
	productcontroller "github.com/CKONG1301/Day96-Online-Shop/controllers/product"
	"github.com/CKONG1301/Day96-Online-Shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("UPLOAD_DIR", t.TempDir())
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")
	r.GET("/add", productcontroller.NewProductPage)
	r.POST("/add", productcontroller.SubmitProduct(db))
	r.GET("/buy", fakeSession(1), productcontroller.ProductPage(db))
	r.POST("/buy", fakeSession(1), cartControllers.AddToCart(db))
	return r, db
}

func fakeSession(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

// pngBytes encodes a 1x1 image so uploads pass the decode check.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func productForm(t *testing.T, fields map[string]string, filename string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("Failed to write field %s: %v", k, err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("image", filename)
		if err != nil {
			t.Fatalf("Failed to create form file: %v", err)
		}
		if _, err := fw.Write(file); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
	}
	mw.Close()
	return &body, mw.FormDataContentType()
}

func submit(r *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/add", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func speakerFields(price string) map[string]string {
	return map[string]string{
		"category":    "Audio",
		"title":       "ML-20",
		"stock":       "20",
		"price":       price,
		"description": "Stereo Speaker.",
	}
}

func TestSubmitProductCreates(t *testing.T) {
	r, db := newTestRouter(t)

	body, ct := productForm(t, speakerFields("3.5"), "speaker.png", pngBytes(t))
	w := submit(r, body, ct)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var product models.Product
	if err := db.Where("title = ?", "ML-20").First(&product).Error; err != nil {
		t.Fatalf("product not created: %v", err)
	}
	if product.Price != 3.5 || product.Stock != 20 || product.Category != "Audio" {
		t.Fatalf("unexpected product: %+v", product)
	}
	if product.Image == "" {
		t.Fatal("expected image path to be set")
	}
}

func TestSubmitProductUpsertsByTitle(t *testing.T) {
	r, db := newTestRouter(t)

	body, ct := productForm(t, speakerFields("3.5"), "speaker.png", pngBytes(t))
	submit(r, body, ct)

	// Same title again: the second submission's values fully overwrite.
	fields := speakerFields("9.99")
	fields["stock"] = "5"
	fields["description"] = "Bigger Stereo Speaker."
	body, ct = productForm(t, fields, "speaker2.png", pngBytes(t))
	w := submit(r, body, ct)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var count int64
	db.Model(&models.Product{}).Where("title = ?", "ML-20").Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one product row, got %d", count)
	}
	var product models.Product
	db.Where("title = ?", "ML-20").First(&product)
	if product.Price != 9.99 || product.Stock != 5 || product.Description != "Bigger Stereo Speaker." {
		t.Fatalf("second submission did not overwrite: %+v", product)
	}
}

func TestSubmitProductRejectsUndecodableImage(t *testing.T) {
	r, db := newTestRouter(t)

	body, ct := productForm(t, speakerFields("3.5"), "speaker.png", []byte("not really an image"))
	w := submit(r, body, ct)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count != 0 {
		t.Fatal("invalid image must not create a product")
	}
}

func TestSubmitProductRejectsBadExtension(t *testing.T) {
	r, db := newTestRouter(t)

	body, ct := productForm(t, speakerFields("3.5"), "speaker.gif", pngBytes(t))
	w := submit(r, body, ct)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count != 0 {
		t.Fatal("disallowed extension must not create a product")
	}
}

func TestSubmitProductMissingFields(t *testing.T) {
	r, db := newTestRouter(t)

	fields := speakerFields("3.5")
	delete(fields, "description")
	body, ct := productForm(t, fields, "speaker.png", pngBytes(t))
	w := submit(r, body, ct)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count != 0 {
		t.Fatal("incomplete form must not create a product")
	}
}

func TestProductPageUnknownIDIsBlank(t *testing.T) {
	r, db := newTestRouter(t)
	seedUserWithCart(t, db)

	req := httptest.NewRequest(http.MethodGet, "/buy?id=999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected blank detail page, got %d", w.Code)
	}
}

func seedUserWithCart(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{Email: "ck@example.com", Password: "x", Name: "Chee Kong", Role: models.RoleCustomer, Cart: models.Cart{}}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}
