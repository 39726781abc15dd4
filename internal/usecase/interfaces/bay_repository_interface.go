package interfaces

import (
	"context"
	"motoshop/internal/domain/entities"
)

// IBayRepository abstracts DynamoDB persistence for the workshop bay board.
//
// SaveBoard persists the whole board in one transactional write so a
// swap-on-drop never leaves the same estimate visible in two bays.

type IBayRepository interface {
	List(ctx context.Context) ([]entities.Bay, error)
	SaveBoard(ctx context.Context, bays []entities.Bay) error
}
