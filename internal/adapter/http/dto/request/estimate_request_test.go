package request

import (
	"testing"

	"motoshop/internal/domain/entities"
)

func TestCreateEstimateRequest_ToCommand(t *testing.T) {
	pd := 10.0
	r := CreateEstimateRequest{
		CustomerName:   "Marcos Silva",
		CustomerPhone:  "11988887777",
		Parts:          []PartRequest{{Name: "Chain kit", Price: 100, Quantity: 2}},
		Labor:          []LaborRequest{{Description: "Chain replacement", Rate: 150, Hours: 2}},
		PartsDiscount:  &pd,
		DiscountSource: " Promotion ",
	}

	cmd := r.ToCommand()
	if cmd.CustomerName != "Marcos Silva" || cmd.CustomerPhone != "11988887777" {
		t.Fatalf("unexpected customer fields: %+v", cmd)
	}
	if len(cmd.Parts) != 1 || cmd.Parts[0].Quantity != 2 {
		t.Fatalf("unexpected parts: %+v", cmd.Parts)
	}
	if len(cmd.Labor) != 1 || cmd.Labor[0].Hours != 2 {
		t.Fatalf("unexpected labor: %+v", cmd.Labor)
	}
	if cmd.PartsDiscount == nil || *cmd.PartsDiscount != 10 || cmd.LaborDiscount != nil {
		t.Fatalf("unexpected discounts: %+v", cmd)
	}
	if cmd.DiscountSource != entities.DiscountSourcePromotion {
		t.Fatalf("expected normalized promotion source, got %q", cmd.DiscountSource)
	}
}

func TestEstimateStatusRequest_ResolveStatus(t *testing.T) {
	r := EstimateStatusRequest{Status: " awaiting_payment "}
	if got := r.ResolveStatus(); got != entities.EstimateStatusAwaitingPayment {
		t.Fatalf("expected AWAITING_PAYMENT, got %q", got)
	}
}

func TestBayStatusRequest_ResolveStatus(t *testing.T) {
	r := BayStatusRequest{Status: " problem "}
	if got := r.ResolveStatus(); got != entities.BayStatusProblem {
		t.Fatalf("expected PROBLEM, got %q", got)
	}
}

func TestLoyaltyConfigRequest_ToConfig(t *testing.T) {
	r := LoyaltyConfigRequest{
		PointsPerCurrencyUnit: 0.2,
		Tiers: map[string]TierConfigRequest{
			" gold ": {Points: 500, PartsDiscount: 0.05, LaborDiscount: 0.1},
		},
	}

	cfg := r.ToConfig()
	if cfg.PointsPerCurrencyUnit != 0.2 {
		t.Fatalf("unexpected rate: %v", cfg.PointsPerCurrencyUnit)
	}
	tc, ok := cfg.Tiers[entities.LoyaltyTierGold]
	if !ok || tc.Points != 500 {
		t.Fatalf("tier key not normalized: %+v", cfg.Tiers)
	}

	empty := LoyaltyConfigRequest{}
	if got := empty.ToConfig(); got.Tiers != nil {
		t.Fatalf("expected nil tiers for empty request, got %+v", got.Tiers)
	}
}
