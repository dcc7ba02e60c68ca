package processor

import "context"

// Intent is a read-only projection of the processor's payment intent object.
type Intent struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret"`
}

// IntentParams describes a new payment intent. Confirmation is manual and
// performed in the same call.
type IntentParams struct {
	Amount          int64
	Currency        string
	PaymentMethodID string
	UseStripeSDK    bool
}

type Client interface {
	GetName() string
	CreateIntent(ctx context.Context, params *IntentParams) (*Intent, error)
	ConfirmIntent(ctx context.Context, intentID string) (*Intent, error)
}
