package processor

import (
	"errors"
	"testing"

	"github.com/stripe/stripe-go/v72"
)

func TestWrapStripeErrTagsConnectionFailures(t *testing.T) {
	for _, errType := range []stripe.ErrorType{stripe.ErrorTypeAPIConnection, stripe.ErrorTypeAPI} {
		err := wrapStripeErr(&stripe.Error{Type: errType, Msg: "connection reset"})
		if !errors.Is(err, ErrProcessorUnavailable) {
			t.Errorf("%s: expected ErrProcessorUnavailable, got %v", errType, err)
		}
	}
}

func TestWrapStripeErrKeepsDefinitiveAnswers(t *testing.T) {
	cardErr := &stripe.Error{Type: stripe.ErrorTypeCard, Msg: "card declined"}
	if err := wrapStripeErr(cardErr); errors.Is(err, ErrProcessorUnavailable) {
		t.Errorf("card errors are definitive answers, got %v", err)
	}
}

func TestWrapStripeErrPassesThroughPlainErrors(t *testing.T) {
	plain := errors.New("boom")
	if err := wrapStripeErr(plain); err != plain {
		t.Errorf("expected plain errors untouched, got %v", err)
	}
}
