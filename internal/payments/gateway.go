package payments

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// CurrencyUSD is the fixed settlement currency for payment intents.
const CurrencyUSD = string(stripe.CurrencyUSD)

// Gateway creates card-payable payment intents with the external
// processor. The bridge is a thin pass-through: a failed gateway call
// fails the request, with no retry.
type Gateway interface {
	// CreateIntent registers an intent for amount minor units in the
	// given currency and returns the gateway-issued client secret.
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// MinorUnits converts a decimal price to integer minor units
// (19.99 -> 1999). Rounding to the nearest unit avoids the float64
// artifact where 19.99*100 truncates to 1998.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

type stripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a Gateway backed by the Stripe API.
func NewStripeGateway(secretKey string) Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeGateway{api: api}
}

func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
