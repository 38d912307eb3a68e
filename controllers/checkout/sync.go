package checkoutControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/CKONG1301/Day96-Online-Shop/models"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/price"
	"github.com/stripe/stripe-go/v80/product"
	"gorm.io/gorm"
)

// SyncCatalog mirrors local products into Stripe product/price records.
// It deletes every remote product (tolerating ones already gone), then
// recreates a product and default price per local row. Creation failures are
// logged and skipped, so a partial remote catalog is a possible outcome.
func SyncCatalog(db *gorm.DB) error {
	var products []models.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		return err
	}

	iter := product.List(&stripe.ProductListParams{})
	for iter.Next() {
		p := iter.Product()
		if _, err := product.Del(p.ID, nil); err != nil && !resourceMissing(err) {
			log.Printf("❌ Failed to delete stripe product %s: %v", p.ID, err)
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}

	for _, p := range products {
		remoteID := StripeProductID(p.ID)
		if _, err := product.New(&stripe.ProductParams{
			ID:     stripe.String(remoteID),
			Name:   stripe.String(p.Title),
			Images: []*string{stripe.String(Domain() + p.Image)},
		}); err != nil {
			log.Printf("❌ Failed to create stripe product %s: %v", remoteID, err)
			continue
		}

		pr, err := price.New(&stripe.PriceParams{
			Product:           stripe.String(remoteID),
			UnitAmountDecimal: stripe.Float64(p.Price * 100),
			Currency:          stripe.String(string(stripe.CurrencySGD)),
		})
		if err != nil {
			log.Printf("❌ Failed to create stripe price for %s: %v", remoteID, err)
			continue
		}

		if _, err := product.Update(remoteID, &stripe.ProductParams{
			DefaultPrice: stripe.String(pr.ID),
		}); err != nil {
			log.Printf("❌ Failed to set default price for %s: %v", remoteID, err)
		}
	}
	return nil
}

func resourceMissing(err error) bool {
	var stripeErr *stripe.Error
	return errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing
}

// POST /admin/sync
func SyncHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := SyncCatalog(db); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Catalog synced"})
	}
}
