package checkout

import (
	"testing"

	"github.com/ksaito/order-payment-gateway/internal/models"
)

func TestTotalAmountEmptyCartIsZero(t *testing.T) {
	if got := TotalAmount(nil); got != 0 {
		t.Errorf("expected 0 for nil cart, got %d", got)
	}
	if got := TotalAmount([]models.LineItem{}); got != 0 {
		t.Errorf("expected 0 for empty cart, got %d", got)
	}
}

func TestTotalAmountSumsItemProducts(t *testing.T) {
	items := []models.LineItem{
		{Amount: 1000, Quantity: 2},
		{Amount: 300, Quantity: 3},
		{Amount: 50, Quantity: 0},
	}

	if got := TotalAmount(items); got != 2900 {
		t.Errorf("expected 2900, got %d", got)
	}
}

func TestTotalAmountIsOrderIndependent(t *testing.T) {
	forward := []models.LineItem{
		{Amount: 120, Quantity: 1},
		{Amount: 999, Quantity: 4},
		{Amount: 5, Quantity: 10},
	}
	reversed := []models.LineItem{forward[2], forward[1], forward[0]}

	if TotalAmount(forward) != TotalAmount(reversed) {
		t.Errorf("permuting items changed the total: %d vs %d", TotalAmount(forward), TotalAmount(reversed))
	}
}

func TestTotalAmountPropagatesNegativeValues(t *testing.T) {
	// Negative amounts are not validated here; they flow into the total.
	items := []models.LineItem{
		{Amount: -500, Quantity: 2},
		{Amount: 1000, Quantity: 1},
	}

	if got := TotalAmount(items); got != 0 {
		t.Errorf("expected -1000+1000 = 0, got %d", got)
	}
}
