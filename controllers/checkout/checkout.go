package checkoutControllers

import (
	"fmt"
	"net/http"
	"os"

	cartControllers "github.com/CKONG1301/Day96-Online-Shop/controllers/cart"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/product"
	"gorm.io/gorm"
)

// StripeProductID derives the remote product id for a local product row.
func StripeProductID(id uint) string {
	return fmt.Sprintf("prod_SGD%d", id)
}

// Domain is the public base URL Stripe redirects back to.
func Domain() string {
	if d := os.Getenv("DOMAIN"); d != "" {
		return d
	}
	return "http://localhost:8080"
}

// CheckoutHandler builds a hosted Stripe checkout session from the user's
// cart and redirects the browser to it. Any Stripe-side error aborts the
// whole checkout and surfaces the raw error text; the cart is left untouched
// on both success and failure, so an abandoned payment can be retried.
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		items, err := cartControllers.Items(db, userID)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		if len(items) == 0 {
			c.Redirect(http.StatusFound, "/")
			return
		}

		var lineItems []*stripe.CheckoutSessionLineItemParams
		for _, item := range items {
			remote, err := product.Get(StripeProductID(item.ProductID), nil)
			if err != nil {
				c.String(http.StatusBadGateway, err.Error())
				return
			}
			if remote.DefaultPrice == nil {
				c.String(http.StatusBadGateway, "no default price for %s", remote.ID)
				return
			}
			lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
				Price:    stripe.String(remote.DefaultPrice.ID),
				Quantity: stripe.Int64(int64(item.Quantity)),
			})
		}

		params := &stripe.CheckoutSessionParams{
			Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
			LineItems:         lineItems,
			SuccessURL:        stripe.String(Domain() + "/success"),
			CancelURL:         stripe.String(Domain() + "/cancel"),
			ClientReferenceID: stripe.String(uuid.NewString()),
		}
		s, err := session.New(params)
		if err != nil {
			c.String(http.StatusBadGateway, err.Error())
			return
		}

		c.Redirect(http.StatusSeeOther, s.URL)
	}
}

// GET /success — reached via Stripe's redirect after payment.
func SuccessPage(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", gin.H{})
}

// GET /cancel
func CancelPage(c *gin.Context) {
	c.HTML(http.StatusOK, "cancel.html", gin.H{})
}
