package response

import (
	"time"

	"motoshop/internal/domain/entities"
	"motoshop/internal/usecase"
)

type PartResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type LaborResponse struct {
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
	Hours       float64 `json:"hours"`
}

type PaymentResponse struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Method string    `json:"method"`
	Date   time.Time `json:"date"`
}

type TotalsResponse struct {
	PartsSubtotal       float64 `json:"parts_subtotal"`
	LaborSubtotal       float64 `json:"labor_subtotal"`
	PartsDiscountAmount float64 `json:"parts_discount_amount"`
	LaborDiscountAmount float64 `json:"labor_discount_amount"`
	GrandTotal          float64 `json:"grand_total"`
	TotalPaid           float64 `json:"total_paid"`
	RemainingBalance    float64 `json:"remaining_balance"`
}

// EstimateResponse is the full read model served to detail views: the
// document plus every derived figure, so clients never do money math.
type EstimateResponse struct {
	ID             string            `json:"id"`
	Number         string            `json:"number"`
	CustomerName   string            `json:"customer_name"`
	CustomerPhone  string            `json:"customer_phone,omitempty"`
	VehicleModel   string            `json:"vehicle_model,omitempty"`
	Status         string            `json:"status"`
	Parts          []PartResponse    `json:"parts"`
	Labor          []LaborResponse   `json:"labor"`
	PartsDiscount  float64           `json:"parts_discount"`
	LaborDiscount  float64           `json:"labor_discount"`
	DiscountSource string            `json:"discount_source,omitempty"`
	Payments       []PaymentResponse `json:"payments"`
	Totals         TotalsResponse    `json:"totals"`
	Loyalty        LoyaltyResponse   `json:"loyalty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func FromEstimateDetail(d usecase.EstimateDetail) EstimateResponse {
	e := d.Estimate
	resp := EstimateResponse{
		ID:             e.ID,
		Number:         e.Number,
		CustomerName:   e.CustomerName,
		CustomerPhone:  e.CustomerPhone,
		VehicleModel:   e.VehicleModel,
		Status:         string(e.Status),
		Parts:          make([]PartResponse, 0, len(e.Parts)),
		Labor:          make([]LaborResponse, 0, len(e.Labor)),
		PartsDiscount:  e.PartsDiscount,
		LaborDiscount:  e.LaborDiscount,
		DiscountSource: string(e.DiscountSource),
		Payments:       make([]PaymentResponse, 0, len(e.Payments)),
		Totals:         fromTotals(d.Totals),
		Loyalty:        fromLoyaltyResult(d.Loyalty),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	for _, p := range e.Parts {
		resp.Parts = append(resp.Parts, PartResponse{Name: p.Name, Price: p.Price, Quantity: p.Quantity})
	}
	for _, l := range e.Labor {
		resp.Labor = append(resp.Labor, LaborResponse{Description: l.Description, Rate: l.Rate, Hours: l.Hours})
	}
	for _, p := range e.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{ID: p.ID, Amount: p.Amount, Method: p.Method, Date: p.Date})
	}
	return resp
}

func FromEstimateDetails(list []usecase.EstimateDetail) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromEstimateDetail(d))
	}
	return out
}

func fromTotals(t entities.EstimateTotals) TotalsResponse {
	return TotalsResponse{
		PartsSubtotal:       t.PartsSubtotal,
		LaborSubtotal:       t.LaborSubtotal,
		PartsDiscountAmount: t.PartsDiscountAmount,
		LaborDiscountAmount: t.LaborDiscountAmount,
		GrandTotal:          t.GrandTotal,
		TotalPaid:           t.TotalPaid,
		RemainingBalance:    t.RemainingBalance,
	}
}
