package entities

import (
	"math"
	"testing"
)

func TestEstimateTotals(t *testing.T) {
	t.Run("independent discounts", func(t *testing.T) {
		e := Estimate{
			Parts:         []Part{{Price: 200, Quantity: 1}},
			Labor:         []Labor{{Rate: 100, Hours: 3}},
			PartsDiscount: 10,
			LaborDiscount: 20,
			Payments:      []Payment{},
		}
		got := e.Totals()
		want := EstimateTotals{
			PartsSubtotal:       200,
			LaborSubtotal:       300,
			PartsDiscountAmount: 20,
			LaborDiscountAmount: 60,
			GrandTotal:          420,
			TotalPaid:           0,
			RemainingBalance:    420,
		}
		if got != want {
			t.Fatalf("unexpected totals: %+v", got)
		}
	})

	t.Run("empty estimate", func(t *testing.T) {
		got := Estimate{Parts: []Part{}, Labor: []Labor{}, Payments: []Payment{}}.Totals()
		if got != (EstimateTotals{}) {
			t.Fatalf("expected all-zero totals, got %+v", got)
		}
	})

	t.Run("nil slices treated as empty", func(t *testing.T) {
		got := Estimate{}.Totals()
		if got != (EstimateTotals{}) {
			t.Fatalf("expected all-zero totals, got %+v", got)
		}
	})

	t.Run("overpayment surfaces negative balance", func(t *testing.T) {
		e := Estimate{
			Parts:    []Part{{Price: 100, Quantity: 1}},
			Payments: []Payment{{Amount: 150}},
		}
		got := e.Totals()
		if got.RemainingBalance != -50 {
			t.Fatalf("expected -50 remaining, got %v", got.RemainingBalance)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		e := Estimate{
			Parts:         []Part{{Price: 19.99, Quantity: 3}, {Price: 4.5, Quantity: 2}},
			Labor:         []Labor{{Rate: 80, Hours: 1.5}},
			PartsDiscount: 7.5,
			LaborDiscount: 12,
			Payments:      []Payment{{Amount: 25}, {Amount: 10.01}},
		}
		if e.Totals() != e.Totals() {
			t.Fatalf("expected identical results for identical input")
		}
	})

	t.Run("nan and inf fields count as zero", func(t *testing.T) {
		e := Estimate{
			Parts:         []Part{{Price: math.NaN(), Quantity: 5}, {Price: 100, Quantity: 1}},
			Labor:         []Labor{{Rate: math.Inf(1), Hours: 2}},
			PartsDiscount: math.NaN(),
			Payments:      []Payment{{Amount: math.NaN()}},
		}
		got := e.Totals()
		if got.PartsSubtotal != 100 || got.LaborSubtotal != 0 || got.TotalPaid != 0 {
			t.Fatalf("expected NaN/Inf treated as zero, got %+v", got)
		}
		if math.IsNaN(got.GrandTotal) || math.IsNaN(got.RemainingBalance) {
			t.Fatalf("NaN leaked into derived totals: %+v", got)
		}
	})

	t.Run("mixed payments accumulate", func(t *testing.T) {
		e := Estimate{
			Parts:    []Part{{Price: 50, Quantity: 4}},
			Payments: []Payment{{Amount: 100, Method: "cash"}, {Amount: 50, Method: "card"}},
		}
		got := e.Totals()
		if got.TotalPaid != 150 || got.RemainingBalance != 50 {
			t.Fatalf("unexpected payment ledger: %+v", got)
		}
	})
}

func TestEstimateNetValue(t *testing.T) {
	t.Run("applies both discounts", func(t *testing.T) {
		e := Estimate{
			Parts:         []Part{{Price: 100, Quantity: 2}},
			Labor:         []Labor{{Rate: 50, Hours: 2}},
			PartsDiscount: 50,
			LaborDiscount: 10,
		}
		if got := e.NetValue(); got != 190 {
			t.Fatalf("expected 190, got %v", got)
		}
	})

	t.Run("clamped at zero when discount exceeds 100", func(t *testing.T) {
		e := Estimate{
			Parts:         []Part{{Price: 100, Quantity: 1}},
			PartsDiscount: 150,
		}
		if got := e.NetValue(); got != 0 {
			t.Fatalf("expected clamp to 0, got %v", got)
		}
	})
}
