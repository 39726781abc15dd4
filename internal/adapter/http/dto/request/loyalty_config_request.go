package request

import (
	"strings"

	"motoshop/internal/domain/entities"
)

type TierConfigRequest struct {
	Points        int     `json:"points"`
	PartsDiscount float64 `json:"parts_discount"`
	LaborDiscount float64 `json:"labor_discount"`
}

// LoyaltyConfigRequest is a possibly-partial loyalty config override. Absent
// tiers keep their defaults; discounts are 0..1 fractions.
type LoyaltyConfigRequest struct {
	PointsPerCurrencyUnit float64                      `json:"points_per_currency_unit"`
	Tiers                 map[string]TierConfigRequest `json:"tiers"`
}

func (r LoyaltyConfigRequest) ToConfig() entities.LoyaltyConfig {
	cfg := entities.LoyaltyConfig{PointsPerCurrencyUnit: r.PointsPerCurrencyUnit}
	if len(r.Tiers) > 0 {
		cfg.Tiers = make(map[entities.LoyaltyTier]entities.TierConfig, len(r.Tiers))
		for name, tc := range r.Tiers {
			cfg.Tiers[entities.LoyaltyTier(strings.ToUpper(strings.TrimSpace(name)))] = entities.TierConfig{
				Points:        tc.Points,
				PartsDiscount: tc.PartsDiscount,
				LaborDiscount: tc.LaborDiscount,
			}
		}
	}
	return cfg
}
