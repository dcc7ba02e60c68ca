package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"
)

// StripeProcessor talks to the Stripe PaymentIntents API.
type StripeProcessor struct {
	name string
}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	stripe.Key = secretKey
	return &StripeProcessor{name: "stripe"}
}

func (sp *StripeProcessor) GetName() string {
	return sp.name
}

func (sp *StripeProcessor) CreateIntent(ctx context.Context, p *IntentParams) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(p.Amount),
		Currency:           stripe.String(p.Currency),
		PaymentMethod:      stripe.String(p.PaymentMethodID),
		ConfirmationMethod: stripe.String(string(stripe.PaymentIntentConfirmationMethodManual)),
		Confirm:            stripe.Bool(true),
		UseStripeSDK:       stripe.Bool(p.UseStripeSDK),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", wrapStripeErr(err))
	}
	return intentFrom(pi), nil
}

func (sp *StripeProcessor) ConfirmIntent(ctx context.Context, intentID string) (*Intent, error) {
	params := &stripe.PaymentIntentConfirmParams{}
	params.Context = ctx

	pi, err := paymentintent.Confirm(intentID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm payment intent %s: %w", intentID, wrapStripeErr(err))
	}
	return intentFrom(pi), nil
}

func intentFrom(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		Status:       string(pi.Status),
		ClientSecret: pi.ClientSecret,
	}
}

// wrapStripeErr tags reachability failures with ErrProcessorUnavailable so
// callers can tell them apart from definitive processor answers.
func wrapStripeErr(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch stripeErr.Type {
		case stripe.ErrorTypeAPIConnection, stripe.ErrorTypeAPI:
			return fmt.Errorf("%w: %v", ErrProcessorUnavailable, err)
		}
	}
	return err
}
