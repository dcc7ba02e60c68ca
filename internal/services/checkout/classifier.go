package checkout

import (
	"github.com/ksaito/order-payment-gateway/internal/models"
	"github.com/ksaito/order-payment-gateway/internal/services/processor"
)

// Payment intent statuses reported by the processor.
const (
	StatusRequiresAction        = "requires_action"
	StatusRequiresSourceAction  = "requires_source_action"
	StatusRequiresPaymentMethod = "requires_payment_method"
	StatusRequiresSource        = "requires_source"
	StatusSucceeded             = "succeeded"
)

// DeclinedMessage is returned to the client when the processor rejects the
// payment method.
const DeclinedMessage = "card declined, try another payment method"

// Classifier maps a processor intent onto the client-facing response shape.
//
// LegacyCascade restores the previous gateway's mapping, where a matched
// status also applied the effects of every status listed after it. Clients
// built against that wire behavior can opt back in; everyone else gets one
// complete response per status.
type Classifier struct {
	LegacyCascade bool
}

func (cl Classifier) Classify(intent *processor.Intent) models.PaymentResponse {
	if cl.LegacyCascade {
		return cl.classifyCascade(intent)
	}

	switch intent.Status {
	case StatusRequiresAction, StatusRequiresSourceAction:
		return models.PaymentResponse{
			RequiresAction:      true,
			ClientSecret:        intent.ClientSecret,
			PaymentIntentStatus: intent.Status,
		}
	case StatusRequiresPaymentMethod, StatusRequiresSource:
		return models.PaymentResponse{
			PaymentIntentStatus: intent.Status,
			Error:               &models.ResponseError{Messages: []string{DeclinedMessage}},
		}
	case StatusSucceeded:
		return models.PaymentResponse{
			ClientSecret:        intent.ClientSecret,
			PaymentIntentStatus: StatusSucceeded,
		}
	default:
		return models.PaymentResponse{}
	}
}

// classifyCascade keeps every fallthrough of the original mapping, so a
// matched status always ends in the succeeded arm. The error payload is
// initialized here instead of crashing like the original did.
func (cl Classifier) classifyCascade(intent *processor.Intent) models.PaymentResponse {
	var res models.PaymentResponse
	switch intent.Status {
	case StatusRequiresAction:
		res.PaymentIntentStatus = StatusRequiresAction
		fallthrough
	case StatusRequiresSourceAction:
		res.PaymentIntentStatus = StatusRequiresSourceAction
		res.RequiresAction = true
		res.ClientSecret = intent.ClientSecret
		fallthrough
	case StatusRequiresPaymentMethod:
		res.PaymentIntentStatus = StatusRequiresPaymentMethod
		fallthrough
	case StatusRequiresSource:
		res.PaymentIntentStatus = StatusRequiresSource
		res.Error = &models.ResponseError{Messages: []string{DeclinedMessage}}
		fallthrough
	case StatusSucceeded:
		res.PaymentIntentStatus = StatusSucceeded
		res.ClientSecret = intent.ClientSecret
	}
	return res
}
