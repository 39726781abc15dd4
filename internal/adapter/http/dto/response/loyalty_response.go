package response

import (
	"motoshop/internal/domain/entities"
	"motoshop/internal/usecase"
)

// LoyaltyResponse is the tier snapshot shown on an estimate. Tier is the
// empty string for the "Standard" client with no discount.
type LoyaltyResponse struct {
	Points        int     `json:"points"`
	Tier          string  `json:"tier,omitempty"`
	PartsDiscount float64 `json:"parts_discount"`
	LaborDiscount float64 `json:"labor_discount"`
}

// LoyaltyProfileResponse is the client detail view: the tier snapshot plus
// the new-client badge.
type LoyaltyProfileResponse struct {
	LoyaltyResponse
	CompletedEstimates int  `json:"completed_estimates"`
	IsNew              bool `json:"is_new"`
}

func FromLoyaltyProfile(p usecase.ClientLoyaltyProfile) LoyaltyProfileResponse {
	return LoyaltyProfileResponse{
		LoyaltyResponse:    fromLoyaltyResult(p.LoyaltyResult),
		CompletedEstimates: p.CompletedEstimates,
		IsNew:              p.IsNew,
	}
}

func fromLoyaltyResult(r entities.LoyaltyResult) LoyaltyResponse {
	resp := LoyaltyResponse{
		Points:        r.Points,
		PartsDiscount: r.PartsDiscount,
		LaborDiscount: r.LaborDiscount,
	}
	if r.Tier != nil {
		resp.Tier = string(*r.Tier)
	}
	return resp
}

type TierConfigResponse struct {
	Points        int     `json:"points"`
	PartsDiscount float64 `json:"parts_discount"`
	LaborDiscount float64 `json:"labor_discount"`
}

// LoyaltyConfigResponse is always the fully-merged tier table.
type LoyaltyConfigResponse struct {
	PointsPerCurrencyUnit float64                       `json:"points_per_currency_unit"`
	Tiers                 map[string]TierConfigResponse `json:"tiers"`
}

func FromLoyaltyConfig(cfg entities.LoyaltyConfig) LoyaltyConfigResponse {
	resp := LoyaltyConfigResponse{
		PointsPerCurrencyUnit: cfg.PointsPerCurrencyUnit,
		Tiers:                 make(map[string]TierConfigResponse, len(cfg.Tiers)),
	}
	for tier, tc := range cfg.Tiers {
		resp.Tiers[string(tier)] = TierConfigResponse{
			Points:        tc.Points,
			PartsDiscount: tc.PartsDiscount,
			LaborDiscount: tc.LaborDiscount,
		}
	}
	return resp
}
