package models

// LineItem is one cart entry. Amount is in the currency's minor unit.
type LineItem struct {
	Amount   int64 `json:"amount"`
	Quantity int64 `json:"quantity"`
}

// PaymentRequest is the body of POST /v1/order/payment. Callers populate
// exactly one of PaymentMethodID (create a new intent) or PaymentIntentID
// (confirm an existing one).
type PaymentRequest struct {
	PaymentMethodID string     `json:"paymentMethodId,omitempty"`
	PaymentIntentID string     `json:"paymentIntentId,omitempty"`
	Items           []LineItem `json:"items"`
	Currency        string     `json:"currency"`
	UseStripeSDK    bool       `json:"useStripeSdk"`
}

type ResponseError struct {
	Messages []string `json:"messages"`
}

// PaymentResponse is the client-facing projection of a payment intent.
type PaymentResponse struct {
	RequiresAction      bool           `json:"requiresAction"`
	ClientSecret        string         `json:"clientSecret"`
	PaymentIntentStatus string         `json:"paymentIntentStatus"`
	Error               *ResponseError `json:"error,omitempty"`
}

// ErrorResponse is the uniform failure payload.
type ErrorResponse struct {
	Error ResponseError `json:"error"`
}
