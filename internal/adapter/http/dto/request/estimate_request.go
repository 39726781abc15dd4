package request

import (
	"strings"

	"motoshop/internal/domain/entities"
	"motoshop/internal/usecase"
)

type PartRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type LaborRequest struct {
	Description string  `json:"description" binding:"required"`
	Rate        float64 `json:"rate"`
	Hours       float64 `json:"hours"`
}

// CreateEstimateRequest is the payload for opening a new draft. Discount
// fields are optional: absent means "apply the loyalty tier automatically",
// present means an explicit promotion or manual override.
type CreateEstimateRequest struct {
	CustomerName   string         `json:"customer_name" binding:"required"`
	CustomerPhone  string         `json:"customer_phone"`
	VehicleModel   string         `json:"vehicle_model"`
	Parts          []PartRequest  `json:"parts"`
	Labor          []LaborRequest `json:"labor"`
	PartsDiscount  *float64       `json:"parts_discount"`
	LaborDiscount  *float64       `json:"labor_discount"`
	DiscountSource string         `json:"discount_source"`
}

func (r CreateEstimateRequest) ToCommand() usecase.CreateEstimateCommand {
	return usecase.CreateEstimateCommand{
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		VehicleModel:   r.VehicleModel,
		Parts:          toParts(r.Parts),
		Labor:          toLabor(r.Labor),
		PartsDiscount:  r.PartsDiscount,
		LaborDiscount:  r.LaborDiscount,
		DiscountSource: entities.DiscountSource(strings.ToLower(strings.TrimSpace(r.DiscountSource))),
	}
}

// UpdateEstimateRequest replaces a draft's line items and discounts.
type UpdateEstimateRequest struct {
	Parts          []PartRequest  `json:"parts"`
	Labor          []LaborRequest `json:"labor"`
	PartsDiscount  *float64       `json:"parts_discount"`
	LaborDiscount  *float64       `json:"labor_discount"`
	DiscountSource string         `json:"discount_source"`
}

func (r UpdateEstimateRequest) ToCommand() usecase.UpdateEstimateCommand {
	return usecase.UpdateEstimateCommand{
		Parts:          toParts(r.Parts),
		Labor:          toLabor(r.Labor),
		PartsDiscount:  r.PartsDiscount,
		LaborDiscount:  r.LaborDiscount,
		DiscountSource: entities.DiscountSource(strings.ToLower(strings.TrimSpace(r.DiscountSource))),
	}
}

// EstimateStatusRequest moves an estimate through its lifecycle.
type EstimateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r EstimateStatusRequest) ResolveStatus() entities.EstimateStatus {
	return entities.EstimateStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

func toParts(in []PartRequest) []entities.Part {
	out := make([]entities.Part, 0, len(in))
	for _, p := range in {
		out = append(out, entities.Part{Name: p.Name, Price: p.Price, Quantity: p.Quantity})
	}
	return out
}

func toLabor(in []LaborRequest) []entities.Labor {
	out := make([]entities.Labor, 0, len(in))
	for _, l := range in {
		out = append(out, entities.Labor{Description: l.Description, Rate: l.Rate, Hours: l.Hours})
	}
	return out
}
