package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"motoshop/internal/domain/entities"
	"motoshop/internal/usecase/interfaces"
)

var (
	ErrInvalidCustomerPhone = errors.New("invalid customer phone")
	ErrInvalidLoyaltyConfig = errors.New("invalid loyalty config")
)

// ClientLoyaltyProfile is what a detail view shows next to a client: the tier
// computation plus the "new client" badge input.
type ClientLoyaltyProfile struct {
	entities.LoyaltyResult
	CompletedEstimates int  `json:"completed_estimates"`
	IsNew              bool `json:"is_new"`
}

// ILoyaltyUseCase exposes loyalty computations and config management.
//
//   - ComputeForCustomer answers "what tier is this client on" for a client
//     detail view, using the full completed history.
//   - ComputeForEstimate answers "which discounts apply to this document",
//     excluding the document itself from its own history.
//   - Config reads always return the fully-merged table; partial overrides
//     are merged once on load/update, never per computation.

type ILoyaltyUseCase interface {
	ComputeForCustomer(ctx context.Context, phone string) (ClientLoyaltyProfile, error)
	ComputeForEstimate(ctx context.Context, e entities.Estimate) (entities.LoyaltyResult, error)
	GetConfig(ctx context.Context) (entities.LoyaltyConfig, error)
	UpdateConfig(ctx context.Context, partial entities.LoyaltyConfig) (entities.LoyaltyConfig, error)
}

// StaffMatcher reports whether a display name belongs to shop staff. It is an
// identity short-circuit independent of points, kept outside the engine so
// tests can swap it freely.
type StaffMatcher func(displayName string) bool

// NewStaffMatcher builds the case-insensitive name matcher used in
// production, from the shop's internal user list.
func NewStaffMatcher(usernames []string) StaffMatcher {
	names := make(map[string]struct{}, len(usernames))
	for _, u := range usernames {
		u = strings.ToLower(strings.TrimSpace(u))
		if u != "" {
			names[u] = struct{}{}
		}
	}
	return func(displayName string) bool {
		_, ok := names[strings.ToLower(strings.TrimSpace(displayName))]
		return ok
	}
}

type LoyaltyUseCase struct {
	estimateRepo interfaces.IEstimateRepository
	configRepo   interfaces.ILoyaltyConfigRepository
	isStaff      StaffMatcher

	mu     sync.RWMutex
	cached *entities.LoyaltyConfig
}

var _ ILoyaltyUseCase = (*LoyaltyUseCase)(nil)

func NewLoyaltyUseCase(estimateRepo interfaces.IEstimateRepository, configRepo interfaces.ILoyaltyConfigRepository, isStaff StaffMatcher) *LoyaltyUseCase {
	if isStaff == nil {
		isStaff = func(string) bool { return false }
	}
	return &LoyaltyUseCase{estimateRepo: estimateRepo, configRepo: configRepo, isStaff: isStaff}
}

func (u *LoyaltyUseCase) ComputeForCustomer(ctx context.Context, phone string) (ClientLoyaltyProfile, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ClientLoyaltyProfile{}, ErrInvalidCustomerPhone
	}
	return u.compute(ctx, phone, "", "")
}

func (u *LoyaltyUseCase) ComputeForEstimate(ctx context.Context, e entities.Estimate) (entities.LoyaltyResult, error) {
	phone := strings.TrimSpace(e.CustomerPhone)
	if phone == "" {
		// Unknown client: zero points, no tier, no discount.
		return entities.LoyaltyResult{}, nil
	}
	profile, err := u.compute(ctx, phone, e.CustomerName, e.ID)
	if err != nil {
		return entities.LoyaltyResult{}, err
	}
	return profile.LoyaltyResult, nil
}

func (u *LoyaltyUseCase) compute(ctx context.Context, phone, displayName, excludeID string) (ClientLoyaltyProfile, error) {
	history, err := u.estimateRepo.ListByCustomerPhone(ctx, phone)
	if err != nil {
		return ClientLoyaltyProfile{}, err
	}
	cfg, err := u.loadConfig(ctx)
	if err != nil {
		return ClientLoyaltyProfile{}, err
	}

	// The staff check matches on display name; a customer-only lookup takes
	// the name from the most recent estimate on file.
	if displayName == "" {
		for _, e := range history {
			if e.CustomerName != "" {
				displayName = e.CustomerName
			}
		}
	}

	completed := 0
	for _, e := range history {
		if e.Status == entities.EstimateStatusCompleted && (excludeID == "" || e.ID != excludeID) {
			completed++
		}
	}

	res := entities.ComputeClientLoyalty(phone, history, excludeID, cfg, u.isStaff(displayName))
	return ClientLoyaltyProfile{
		LoyaltyResult:      res,
		CompletedEstimates: completed,
		IsNew:              entities.IsNewClient(completed),
	}, nil
}

func (u *LoyaltyUseCase) GetConfig(ctx context.Context) (entities.LoyaltyConfig, error) {
	return u.loadConfig(ctx)
}

func (u *LoyaltyUseCase) UpdateConfig(ctx context.Context, partial entities.LoyaltyConfig) (entities.LoyaltyConfig, error) {
	if partial.PointsPerCurrencyUnit < 0 {
		return entities.LoyaltyConfig{}, ErrInvalidLoyaltyConfig
	}
	for _, tc := range partial.Tiers {
		if tc.Points < 0 || tc.PartsDiscount < 0 || tc.PartsDiscount > 1 || tc.LaborDiscount < 0 || tc.LaborDiscount > 1 {
			return entities.LoyaltyConfig{}, ErrInvalidLoyaltyConfig
		}
	}

	if err := u.configRepo.Put(ctx, partial); err != nil {
		return entities.LoyaltyConfig{}, err
	}

	merged := entities.MergeLoyaltyConfig(partial)
	u.mu.Lock()
	u.cached = &merged
	u.mu.Unlock()
	return merged, nil
}

// loadConfig returns the merged config, reading and merging the stored blob
// at most once until the next UpdateConfig.
func (u *LoyaltyUseCase) loadConfig(ctx context.Context) (entities.LoyaltyConfig, error) {
	u.mu.RLock()
	if u.cached != nil {
		cfg := *u.cached
		u.mu.RUnlock()
		return cfg, nil
	}
	u.mu.RUnlock()

	stored, found, err := u.configRepo.Get(ctx)
	if err != nil {
		return entities.LoyaltyConfig{}, err
	}
	var merged entities.LoyaltyConfig
	if found {
		merged = entities.MergeLoyaltyConfig(stored)
	} else {
		merged = entities.DefaultLoyaltyConfig()
	}

	u.mu.Lock()
	u.cached = &merged
	u.mu.Unlock()
	return merged, nil
}
