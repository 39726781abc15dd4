package entities

import (
	"math"
	"time"
)

// EstimateStatus represents the lifecycle of a workshop estimate.
//
// Domain notes:
//   - Only COMPLETED estimates count toward a client's spend history and
//     loyalty points.
//   - DRAFT estimates are freely editable; AWAITING_PAYMENT freezes the line
//     items but still accepts payments.

type EstimateStatus string

const (
	EstimateStatusDraft           EstimateStatus = "DRAFT"
	EstimateStatusAwaitingPayment EstimateStatus = "AWAITING_PAYMENT"
	EstimateStatusCompleted       EstimateStatus = "COMPLETED"
)

// DiscountSource records where an estimate's discount percentages came from.
// Precedence is decided by the caller: staff identity beats an applied
// promotion, which beats the automatic loyalty tier discount.

type DiscountSource string

const (
	DiscountSourceLoyalty   DiscountSource = "loyalty"
	DiscountSourcePromotion DiscountSource = "promotion"
	DiscountSourceManual    DiscountSource = "manual"
	DiscountSourceStaff     DiscountSource = "staff"
)

// Part is a stocked part line on an estimate. Line value = Price * Quantity.
type Part struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Labor is a labor line on an estimate. Line value = Rate * Hours.
type Labor struct {
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
	Hours       float64 `json:"hours"`
}

// Payment is a payment recorded against an estimate. Amount should be
// positive by contract; the calculator does not enforce it.
type Payment struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Method string    `json:"method"`
	Date   time.Time `json:"date"`
}

// Estimate is the workshop estimate/invoice persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_phone-index): customer_phone
//
// CustomerPhone is the client identity key used for loyalty history lookups.
// Discounts are percentages (0..100) applied independently to the parts and
// labor subtotals; tier configs use 0..1 fractions, converted at the boundary.
type Estimate struct {
	ID             string         `json:"id"`
	Number         string         `json:"number"`
	CustomerName   string         `json:"customer_name"`
	CustomerPhone  string         `json:"customer_phone"`
	VehicleModel   string         `json:"vehicle_model"`
	Status         EstimateStatus `json:"status"`
	Parts          []Part         `json:"parts"`
	Labor          []Labor        `json:"labor"`
	PartsDiscount  float64        `json:"parts_discount"`
	LaborDiscount  float64        `json:"labor_discount"`
	DiscountSource DiscountSource `json:"discount_source,omitempty"`
	Payments       []Payment      `json:"payments"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// EstimateTotals holds every monetary figure derived from an estimate.
// RemainingBalance is negative on overpayment; it is surfaced as-is.
type EstimateTotals struct {
	PartsSubtotal       float64 `json:"parts_subtotal"`
	LaborSubtotal       float64 `json:"labor_subtotal"`
	PartsDiscountAmount float64 `json:"parts_discount_amount"`
	LaborDiscountAmount float64 `json:"labor_discount_amount"`
	GrandTotal          float64 `json:"grand_total"`
	TotalPaid           float64 `json:"total_paid"`
	RemainingBalance    float64 `json:"remaining_balance"`
}

// Totals recomputes every derived monetary figure from the current line
// items, discounts and payments. It is total: nil slices count as empty and
// NaN/Inf fields count as zero, so a half-filled draft still renders a
// summary. No rounding happens here; rounding is a display concern.
func (e Estimate) Totals() EstimateTotals {
	var t EstimateTotals
	for _, p := range e.Parts {
		t.PartsSubtotal += num(p.Price) * float64(p.Quantity)
	}
	for _, l := range e.Labor {
		t.LaborSubtotal += num(l.Rate) * num(l.Hours)
	}
	t.PartsDiscountAmount = t.PartsSubtotal * num(e.PartsDiscount) / 100
	t.LaborDiscountAmount = t.LaborSubtotal * num(e.LaborDiscount) / 100
	t.GrandTotal = (t.PartsSubtotal - t.PartsDiscountAmount) + (t.LaborSubtotal - t.LaborDiscountAmount)
	for _, p := range e.Payments {
		t.TotalPaid += num(p.Amount)
	}
	t.RemainingBalance = t.GrandTotal - t.TotalPaid
	return t
}

// NetValue is the discounted total of a single estimate, clamped at zero so a
// discount above 100% can never drag a client's historical spend negative.
func (e Estimate) NetValue() float64 {
	t := e.Totals()
	net := t.GrandTotal
	if net < 0 {
		return 0
	}
	return net
}

func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
