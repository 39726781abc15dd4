package entities

import (
	"math"
	"sort"
)

// LoyaltyTier is a client's loyalty level. Tiers are ordered by ascending
// point requirement except STAFF, which is assigned by identity match against
// the shop's user list and never earned through points.

type LoyaltyTier string

const (
	LoyaltyTierBronze   LoyaltyTier = "BRONZE"
	LoyaltyTierSilver   LoyaltyTier = "SILVER"
	LoyaltyTierGold     LoyaltyTier = "GOLD"
	LoyaltyTierPlatinum LoyaltyTier = "PLATINUM"
	LoyaltyTierVeteran  LoyaltyTier = "VETERAN"
	LoyaltyTierStaff    LoyaltyTier = "STAFF"
)

// loyaltyTierOrder is the declaration order of the earnable tiers. The tier
// ranking sorts by descending point requirement and breaks threshold ties by
// this order so resolution stays deterministic.
var loyaltyTierOrder = []LoyaltyTier{
	LoyaltyTierBronze,
	LoyaltyTierSilver,
	LoyaltyTierGold,
	LoyaltyTierPlatinum,
	LoyaltyTierVeteran,
}

// staffPointsSentinel keeps STAFF out of reach of the point ranking. It is a
// large finite number rather than a true unreachable marker; the ranking loop
// additionally skips STAFF by identity so the sentinel is never load-bearing.
const staffPointsSentinel = math.MaxInt32

// TierConfig holds a single tier's threshold and discounts. Discounts are
// 0..1 fractions; Estimate carries 0..100 percentages. Convert only through
// ToPercent/ToFraction.
type TierConfig struct {
	Points        int     `json:"points"`
	PartsDiscount float64 `json:"parts_discount"`
	LaborDiscount float64 `json:"labor_discount"`
}

// LoyaltyConfig is the shop-wide loyalty configuration. It is persisted as a
// possibly-partial blob and must be run through MergeLoyaltyConfig before
// use, so every enumerated tier is guaranteed an entry.
type LoyaltyConfig struct {
	PointsPerCurrencyUnit float64                    `json:"points_per_currency_unit"`
	Tiers                 map[LoyaltyTier]TierConfig `json:"tiers"`
}

// DefaultLoyaltyConfig returns the built-in tier table: 1 point per 10
// currency units, discounts growing with tier.
func DefaultLoyaltyConfig() LoyaltyConfig {
	return LoyaltyConfig{
		PointsPerCurrencyUnit: 0.1,
		Tiers: map[LoyaltyTier]TierConfig{
			LoyaltyTierBronze:   {Points: 50, PartsDiscount: 0, LaborDiscount: 0.05},
			LoyaltyTierSilver:   {Points: 150, PartsDiscount: 0.03, LaborDiscount: 0.08},
			LoyaltyTierGold:     {Points: 400, PartsDiscount: 0.05, LaborDiscount: 0.10},
			LoyaltyTierPlatinum: {Points: 1000, PartsDiscount: 0.08, LaborDiscount: 0.15},
			LoyaltyTierVeteran:  {Points: 2500, PartsDiscount: 0.10, LaborDiscount: 0.20},
			LoyaltyTierStaff:    {Points: staffPointsSentinel, PartsDiscount: 0.20, LaborDiscount: 1.0},
		},
	}
}

// MergeLoyaltyConfig overlays a possibly-partial override onto the defaults.
// The top level merges shallowly and the Tiers map merges key-by-key, so a
// partial override never silently drops a tier. Call it once at load time and
// pass the result around; it is never re-merged per computation.
func MergeLoyaltyConfig(override LoyaltyConfig) LoyaltyConfig {
	merged := DefaultLoyaltyConfig()
	if override.PointsPerCurrencyUnit > 0 {
		merged.PointsPerCurrencyUnit = override.PointsPerCurrencyUnit
	}
	for tier, tc := range override.Tiers {
		merged.Tiers[tier] = tc
	}
	return merged
}

// LoyaltyResult is the outcome of a loyalty computation. Tier is nil for the
// "Standard" no-discount client. Discounts are percentages ready to be set on
// an Estimate.
type LoyaltyResult struct {
	Points        int          `json:"points"`
	Tier          *LoyaltyTier `json:"tier"`
	PartsDiscount float64      `json:"parts_discount"`
	LaborDiscount float64      `json:"labor_discount"`
}

// ComputeClientLoyalty derives a client's points and discount tier from the
// estimate history. It filters internally: only estimates whose CustomerPhone
// matches phone and whose status is COMPLETED count, and excludeID (the
// estimate currently being edited, if any) never contributes to its own
// discount. A staff client short-circuits to the STAFF tier regardless of
// history. Pure function; never errors on sparse or out-of-range input.
func ComputeClientLoyalty(phone string, estimates []Estimate, excludeID string, cfg LoyaltyConfig, isStaff bool) LoyaltyResult {
	if isStaff {
		staff := LoyaltyTierStaff
		tc := cfg.Tiers[LoyaltyTierStaff]
		return LoyaltyResult{
			Tier:          &staff,
			PartsDiscount: ToPercent(tc.PartsDiscount),
			LaborDiscount: ToPercent(tc.LaborDiscount),
		}
	}
	if phone == "" {
		return LoyaltyResult{}
	}

	totalSpent := 0.0
	for _, e := range estimates {
		if e.CustomerPhone != phone || e.Status != EstimateStatusCompleted {
			continue
		}
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		totalSpent += e.NetValue()
	}

	points := int(math.Floor(totalSpent * num(cfg.PointsPerCurrencyUnit)))
	res := LoyaltyResult{Points: points}

	best, ok := resolveTier(points, cfg)
	if !ok {
		return res
	}
	tc := cfg.Tiers[best]
	res.Tier = &best
	res.PartsDiscount = ToPercent(tc.PartsDiscount)
	res.LaborDiscount = ToPercent(tc.LaborDiscount)
	return res
}

// resolveTier picks the highest earnable tier whose threshold is <= points.
// STAFF never participates; it is assigned by identity only. The stable sort
// breaks threshold ties by declaration order so resolution is deterministic
// even under odd config overrides.
func resolveTier(points int, cfg LoyaltyConfig) (LoyaltyTier, bool) {
	ranked := make([]LoyaltyTier, 0, len(loyaltyTierOrder))
	for _, tier := range loyaltyTierOrder {
		if _, ok := cfg.Tiers[tier]; ok {
			ranked = append(ranked, tier)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return cfg.Tiers[ranked[i]].Points > cfg.Tiers[ranked[j]].Points
	})
	for _, tier := range ranked {
		if points >= cfg.Tiers[tier].Points {
			return tier, true
		}
	}
	return "", false
}

// IsNewClient reports whether a client still gets the "new client" badge.
// The threshold is <= 1 on purpose: a client keeps the badge until their
// second completed estimate exists. Changing it would silently alter visible
// behavior.
func IsNewClient(completedCount int) bool {
	return completedCount <= 1
}

// ToPercent converts a 0..1 discount fraction to the 0..100 percentage space
// used on Estimate.
func ToPercent(fraction float64) float64 {
	return num(fraction) * 100
}

// ToFraction converts a 0..100 percentage back to the 0..1 fraction space
// used in TierConfig.
func ToFraction(percent float64) float64 {
	return num(percent) / 100
}
