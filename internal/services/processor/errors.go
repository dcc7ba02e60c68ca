package processor

import "errors"

var (
	ErrProcessorUnavailable    = errors.New("payment processor service is unavailable")
	ErrMissingPaymentReference = errors.New("request has neither a payment method id nor a payment intent id")
)
