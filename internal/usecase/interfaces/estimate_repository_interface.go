package interfaces

import (
	"context"
	"motoshop/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The service must be able to:
//   - create and update whole estimates (line items, discounts, payments)
//   - load one estimate by id
//   - list a client's estimates by phone for loyalty history lookups

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	ListByCustomerPhone(ctx context.Context, phone string) ([]entities.Estimate, error)
}
