package interfaces

import (
	"context"
	"motoshop/internal/domain/entities"
)

// ILoyaltyConfigRepository abstracts persistence of the loyalty configuration
// blob. The stored value may be partial; callers merge it over the defaults
// with entities.MergeLoyaltyConfig. Get reports found=false when no blob has
// ever been saved.

type ILoyaltyConfigRepository interface {
	Get(ctx context.Context) (cfg entities.LoyaltyConfig, found bool, err error)
	Put(ctx context.Context, cfg entities.LoyaltyConfig) error
}
