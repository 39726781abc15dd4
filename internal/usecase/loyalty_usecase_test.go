package usecase

import (
	"context"
	"errors"
	"testing"

	"motoshop/internal/domain/entities"
	mock_interfaces "motoshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func loyaltyFixtures(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIEstimateRepository, *mock_interfaces.MockILoyaltyConfigRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	return ctrl, mock_interfaces.NewMockIEstimateRepository(ctrl), mock_interfaces.NewMockILoyaltyConfigRepository(ctrl)
}

func TestLoyaltyUseCase_ComputeForCustomer(t *testing.T) {
	t.Run("invalid phone", func(t *testing.T) {
		uc := NewLoyaltyUseCase(nil, nil, nil)
		_, err := uc.ComputeForCustomer(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidCustomerPhone) {
			t.Fatalf("expected ErrInvalidCustomerPhone, got %v", err)
		}
	})

	t.Run("history repo error", func(t *testing.T) {
		ctrl, estRepo, cfgRepo := loyaltyFixtures(t)
		defer ctrl.Finish()
		uc := NewLoyaltyUseCase(estRepo, cfgRepo, nil)

		estRepo.EXPECT().ListByCustomerPhone(gomock.Any(), "0700").Return(nil, errors.New("db"))

		_, err := uc.ComputeForCustomer(context.Background(), "0700")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("tier from completed history", func(t *testing.T) {
		ctrl, estRepo, cfgRepo := loyaltyFixtures(t)
		defer ctrl.Finish()
		uc := NewLoyaltyUseCase(estRepo, cfgRepo, nil)

		history := []entities.Estimate{
			{ID: "e1", CustomerPhone: "0700", CustomerName: "Ana", Status: entities.EstimateStatusCompleted, Parts: []entities.Part{{Price: 2000, Quantity: 1}}},
			{ID: "e2", CustomerPhone: "0700", CustomerName: "Ana", Status: entities.EstimateStatusDraft, Parts: []entities.Part{{Price: 9999, Quantity: 1}}},
		}
		estRepo.EXPECT().ListByCustomerPhone(gomock.Any(), "0700").Return(history, nil)
		cfgRepo.EXPECT().Get(gomock.Any()).Return(entities.LoyaltyConfig{}, false, nil)

		got, err := uc.ComputeForCustomer(context.Background(), "0700")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Points != 200 {
			t.Fatalf("expected 200 points, got %d", got.Points)
		}
		if got.Tier == nil || *got.Tier != entities.LoyaltyTierSilver {
			t.Fatalf("expected SILVER, got %+v", got)
		}
		if got.CompletedEstimates != 1 || !got.IsNew {
			t.Fatalf("expected new client with 1 completed estimate, got %+v", got)
		}
	})

	t.Run("staff matched by name from history", func(t *testing.T) {
		ctrl, estRepo, cfgRepo := loyaltyFixtures(t)
		defer ctrl.Finish()
		uc := NewLoyaltyUseCase(estRepo, cfgRepo, NewStaffMatcher([]string{"Marco Silva"}))

		history := []entities.Estimate{
			{ID: "e1", CustomerPhone: "0700", CustomerName: "marco silva", Status: entities.EstimateStatusCompleted},
		}
		estRepo.EXPECT().ListByCustomerPhone(gomock.Any(), "0700").Return(history, nil)
		cfgRepo.EXPECT().Get(gomock.Any()).Return(entities.LoyaltyConfig{}, false, nil)

		got, err := uc.ComputeForCustomer(context.Background(), "0700")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Tier == nil || *got.Tier != entities.LoyaltyTierStaff {
			t.Fatalf("expected STAFF, got %+v", got)
		}
	})

	t.Run("config loaded once", func(t *testing.T) {
		ctrl, estRepo, cfgRepo := loyaltyFixtures(t)
		defer ctrl.Finish()
		uc := NewLoyaltyUseCase(estRepo, cfgRepo, nil)

		estRepo.EXPECT().ListByCustomerPhone(gomock.Any(), "0700").Return(nil, nil).Times(2)
		cfgRepo.EXPECT().Get(gomock.Any()).Return(entities.LoyaltyConfig{}, false, nil).Times(1)

		for i := 0; i < 2; i++ {
			if _, err := uc.ComputeForCustomer(context.Background(), "0700"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	})
}

func TestLoyaltyUseCase_ComputeForEstimate(t *testing.T) {
	t.Run("blank phone short-circuits to zero result", func(t *testing.T) {
		uc := NewLoyaltyUseCase(nil, nil, nil)
		got, err := uc.ComputeForEstimate(context.Background(), entities.Estimate{ID: "e1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Points != 0 || got.Tier != nil {
			t.Fatalf("expected zero result, got %+v", got)
		}
	})

	t.Run("excludes the estimate itself", func(t *testing.T) {
		ctrl, estRepo, cfgRepo := loyaltyFixtures(t)
		defer ctrl.Finish()
		uc := NewLoyaltyUseCase(estRepo, cfgRepo, nil)

		history := []entities.Estimate{
			{ID: "e1", CustomerPhone: "0700", Status: entities.EstimateStatusCompleted, Parts: []entities.Part{{Price: 4000, Quantity: 1}}},
			{ID: "e2", CustomerPhone: "0700", Status: entities.EstimateStatusCompleted, Parts: []entities.Part{{Price: 50000, Quantity: 1}}},
		}
		estRepo.EXPECT().ListByCustomerPhone(gomock.Any(), "0700").Return(history, nil)
		cfgRepo.EXPECT().Get(gomock.Any()).Return(entities.LoyaltyConfig{}, false, nil)

		got, err := uc.ComputeForEstimate(context.Background(), entities.Estimate{ID: "e2", CustomerPhone: "0700", CustomerName: "Ana"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Points != 400 {
			t.Fatalf("expected 400 points with e2 excluded, got %d", got.Points)
		}
		if got.Tier == nil || *got.Tier != entities.LoyaltyTierGold {
			t.Fatalf("expected GOLD, got %+v", got)
		}
	})
}

func TestLoyaltyUseCase_Config(t *testing.T) {
	t.Run("get merges stored partial blob", func(t *testing.T) {
		ctrl, estRepo, cfgRepo := loyaltyFixtures(t)
		defer ctrl.Finish()
		uc := NewLoyaltyUseCase(estRepo, cfgRepo, nil)

		partial := entities.LoyaltyConfig{Tiers: map[entities.LoyaltyTier]entities.TierConfig{
			entities.LoyaltyTierGold: {Points: 300, PartsDiscount: 0.07, LaborDiscount: 0.12},
		}}
		cfgRepo.EXPECT().Get(gomock.Any()).Return(partial, true, nil)

		got, err := uc.GetConfig(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Tiers[entities.LoyaltyTierGold].Points != 300 {
			t.Fatalf("expected override applied, got %+v", got.Tiers[entities.LoyaltyTierGold])
		}
		if _, ok := got.Tiers[entities.LoyaltyTierVeteran]; !ok {
			t.Fatalf("partial blob dropped a default tier")
		}
	})

	t.Run("update validates fraction space", func(t *testing.T) {
		uc := NewLoyaltyUseCase(nil, nil, nil)
		_, err := uc.UpdateConfig(context.Background(), entities.LoyaltyConfig{Tiers: map[entities.LoyaltyTier]entities.TierConfig{
			entities.LoyaltyTierGold: {Points: 300, PartsDiscount: 7}, // percent, not fraction
		}})
		if !errors.Is(err, ErrInvalidLoyaltyConfig) {
			t.Fatalf("expected ErrInvalidLoyaltyConfig, got %v", err)
		}
	})

	t.Run("update persists and refreshes cache", func(t *testing.T) {
		ctrl, estRepo, cfgRepo := loyaltyFixtures(t)
		defer ctrl.Finish()
		uc := NewLoyaltyUseCase(estRepo, cfgRepo, nil)

		partial := entities.LoyaltyConfig{PointsPerCurrencyUnit: 0.2}
		cfgRepo.EXPECT().Put(gomock.Any(), partial).Return(nil)

		merged, err := uc.UpdateConfig(context.Background(), partial)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if merged.PointsPerCurrencyUnit != 0.2 {
			t.Fatalf("expected merged rate 0.2, got %v", merged.PointsPerCurrencyUnit)
		}

		// Subsequent reads hit the cache, not the repo.
		got, err := uc.GetConfig(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PointsPerCurrencyUnit != 0.2 {
			t.Fatalf("cache not refreshed: %v", got.PointsPerCurrencyUnit)
		}
	})

	t.Run("update put error", func(t *testing.T) {
		ctrl, estRepo, cfgRepo := loyaltyFixtures(t)
		defer ctrl.Finish()
		uc := NewLoyaltyUseCase(estRepo, cfgRepo, nil)

		cfgRepo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.UpdateConfig(context.Background(), entities.LoyaltyConfig{PointsPerCurrencyUnit: 0.2})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
