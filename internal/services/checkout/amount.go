package checkout

import (
	"github.com/ksaito/order-payment-gateway/internal/models"
)

// TotalAmount reduces a cart into a single charge amount in the currency's
// minor unit. Item values are trusted as-is: sign and overflow are the
// caller's responsibility.
func TotalAmount(items []models.LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Amount * item.Quantity
	}
	return total
}
