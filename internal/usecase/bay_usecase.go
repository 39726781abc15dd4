package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"motoshop/internal/domain/entities"
	"motoshop/internal/usecase/interfaces"
)

var (
	ErrInvalidBayID      = errors.New("invalid bay id")
	ErrInvalidAssignment = errors.New("invalid bay assignment")
)

const defaultBayCount = 4

// IBayUseCase exposes the workshop bay assignment board. Every mutation loads
// the board, applies the pure board transition and persists the whole board
// in one write.

type IBayUseCase interface {
	Board(ctx context.Context) ([]entities.Bay, error)
	Assign(ctx context.Context, sourceBayID, targetBayID, estimateID string) ([]entities.Bay, error)
	Release(ctx context.Context, bayID string) ([]entities.Bay, error)
	SetStatus(ctx context.Context, bayID string, status entities.BayStatus) ([]entities.Bay, error)
}

type BayUseCase struct {
	repo         interfaces.IBayRepository
	estimateRepo interfaces.IEstimateRepository
	bayCount     int
}

var _ IBayUseCase = (*BayUseCase)(nil)

func NewBayUseCase(repo interfaces.IBayRepository, estimateRepo interfaces.IEstimateRepository, bayCount int) *BayUseCase {
	if bayCount <= 0 {
		bayCount = defaultBayCount
	}
	return &BayUseCase{repo: repo, estimateRepo: estimateRepo, bayCount: bayCount}
}

// Board returns the current board, seeding the configured number of empty
// ACTIVE bays on first use.
func (u *BayUseCase) Board(ctx context.Context) ([]entities.Bay, error) {
	bays, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(bays) > 0 {
		return bays, nil
	}

	bays = make([]entities.Bay, 0, u.bayCount)
	for i := 1; i <= u.bayCount; i++ {
		bays = append(bays, entities.Bay{ID: fmt.Sprintf("bay-%d", i), Status: entities.BayStatusActive})
	}
	if err := u.repo.SaveBoard(ctx, bays); err != nil {
		return nil, err
	}
	log.Printf("[bay][usecase] board seeded bays=%d", len(bays))
	return bays, nil
}

func (u *BayUseCase) Assign(ctx context.Context, sourceBayID, targetBayID, estimateID string) ([]entities.Bay, error) {
	sourceBayID = strings.TrimSpace(sourceBayID)
	targetBayID = strings.TrimSpace(targetBayID)
	estimateID = strings.TrimSpace(estimateID)
	if targetBayID == "" {
		return nil, ErrInvalidBayID
	}
	if estimateID == "" {
		return nil, ErrInvalidAssignment
	}

	// Only real estimates land on the board.
	e, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	if e.ID == "" {
		return nil, ErrEstimateNotFound
	}

	bays, err := u.Board(ctx)
	if err != nil {
		return nil, err
	}
	next, err := entities.ApplyBayAssignment(bays, sourceBayID, targetBayID, estimateID)
	if err != nil {
		return nil, err
	}
	if err := u.repo.SaveBoard(ctx, next); err != nil {
		return nil, err
	}
	log.Printf("[bay][usecase] assigned estimate_id=%s bay=%s source=%q", estimateID, targetBayID, sourceBayID)
	return next, nil
}

func (u *BayUseCase) Release(ctx context.Context, bayID string) ([]entities.Bay, error) {
	bayID = strings.TrimSpace(bayID)
	if bayID == "" {
		return nil, ErrInvalidBayID
	}
	bays, err := u.Board(ctx)
	if err != nil {
		return nil, err
	}
	next, err := entities.ReleaseBay(bays, bayID)
	if err != nil {
		return nil, err
	}
	if err := u.repo.SaveBoard(ctx, next); err != nil {
		return nil, err
	}
	log.Printf("[bay][usecase] released bay=%s", bayID)
	return next, nil
}

func (u *BayUseCase) SetStatus(ctx context.Context, bayID string, status entities.BayStatus) ([]entities.Bay, error) {
	bayID = strings.TrimSpace(bayID)
	if bayID == "" {
		return nil, ErrInvalidBayID
	}
	bays, err := u.Board(ctx)
	if err != nil {
		return nil, err
	}
	next, err := entities.SetBayStatus(bays, bayID, status)
	if err != nil {
		return nil, err
	}
	if err := u.repo.SaveBoard(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}
