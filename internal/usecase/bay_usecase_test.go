package usecase

import (
	"context"
	"errors"
	"testing"

	"motoshop/internal/domain/entities"
	mock_interfaces "motoshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func bayFixtures(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIBayRepository, *mock_interfaces.MockIEstimateRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	return ctrl, mock_interfaces.NewMockIBayRepository(ctrl), mock_interfaces.NewMockIEstimateRepository(ctrl)
}

func occupiedBoard() []entities.Bay {
	return []entities.Bay{
		{ID: "bay-1", EstimateID: "est-a", Status: entities.BayStatusActive},
		{ID: "bay-2", EstimateID: "est-b", Status: entities.BayStatusWaiting},
		{ID: "bay-3", Status: entities.BayStatusActive},
	}
}

func TestBayUseCase_Board(t *testing.T) {
	t.Run("returns existing board", func(t *testing.T) {
		ctrl, bayRepo, estRepo := bayFixtures(t)
		defer ctrl.Finish()
		uc := NewBayUseCase(bayRepo, estRepo, 4)

		bayRepo.EXPECT().List(gomock.Any()).Return(occupiedBoard(), nil)

		got, err := uc.Board(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 bays, got %d", len(got))
		}
	})

	t.Run("seeds empty board", func(t *testing.T) {
		ctrl, bayRepo, estRepo := bayFixtures(t)
		defer ctrl.Finish()
		uc := NewBayUseCase(bayRepo, estRepo, 6)

		bayRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		bayRepo.EXPECT().SaveBoard(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bays []entities.Bay) error {
				if len(bays) != 6 {
					t.Fatalf("expected 6 seeded bays, got %d", len(bays))
				}
				for _, b := range bays {
					if b.EstimateID != "" || b.Status != entities.BayStatusActive {
						t.Fatalf("expected free ACTIVE bay, got %+v", b)
					}
				}
				return nil
			},
		)

		if _, err := uc.Board(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBayUseCase_Assign(t *testing.T) {
	t.Run("unknown estimate", func(t *testing.T) {
		ctrl, bayRepo, estRepo := bayFixtures(t)
		defer ctrl.Finish()
		uc := NewBayUseCase(bayRepo, estRepo, 4)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-x").Return(entities.Estimate{}, nil)

		_, err := uc.Assign(context.Background(), "", "bay-1", "est-x")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("swap persisted in one write", func(t *testing.T) {
		ctrl, bayRepo, estRepo := bayFixtures(t)
		defer ctrl.Finish()
		uc := NewBayUseCase(bayRepo, estRepo, 4)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-a").Return(entities.Estimate{ID: "est-a"}, nil)
		bayRepo.EXPECT().List(gomock.Any()).Return(occupiedBoard(), nil)
		bayRepo.EXPECT().SaveBoard(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bays []entities.Bay) error {
				byID := map[string]entities.Bay{}
				for _, b := range bays {
					byID[b.ID] = b
				}
				if byID["bay-2"].EstimateID != "est-a" || byID["bay-1"].EstimateID != "est-b" {
					t.Fatalf("expected swap, got %+v", bays)
				}
				return nil
			},
		)

		if _, err := uc.Assign(context.Background(), "bay-1", "bay-2", "est-a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing target bay id", func(t *testing.T) {
		ctrl, bayRepo, estRepo := bayFixtures(t)
		defer ctrl.Finish()
		uc := NewBayUseCase(bayRepo, estRepo, 4)

		_, err := uc.Assign(context.Background(), "", "  ", "est-a")
		if !errors.Is(err, ErrInvalidBayID) {
			t.Fatalf("expected ErrInvalidBayID, got %v", err)
		}
	})
}

func TestBayUseCase_Release(t *testing.T) {
	ctrl, bayRepo, estRepo := bayFixtures(t)
	defer ctrl.Finish()
	uc := NewBayUseCase(bayRepo, estRepo, 4)

	bayRepo.EXPECT().List(gomock.Any()).Return(occupiedBoard(), nil)
	bayRepo.EXPECT().SaveBoard(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, bays []entities.Bay) error {
			for _, b := range bays {
				if b.ID == "bay-2" && (b.EstimateID != "" || b.Status != entities.BayStatusActive) {
					t.Fatalf("expected released bay, got %+v", b)
				}
			}
			return nil
		},
	)

	if _, err := uc.Release(context.Background(), "bay-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBayUseCase_SetStatus(t *testing.T) {
	t.Run("empty bay rejected", func(t *testing.T) {
		ctrl, bayRepo, estRepo := bayFixtures(t)
		defer ctrl.Finish()
		uc := NewBayUseCase(bayRepo, estRepo, 4)

		bayRepo.EXPECT().List(gomock.Any()).Return(occupiedBoard(), nil)

		_, err := uc.SetStatus(context.Background(), "bay-3", entities.BayStatusProblem)
		if !errors.Is(err, entities.ErrBayEmpty) {
			t.Fatalf("expected ErrBayEmpty, got %v", err)
		}
	})

	t.Run("occupied bay updated", func(t *testing.T) {
		ctrl, bayRepo, estRepo := bayFixtures(t)
		defer ctrl.Finish()
		uc := NewBayUseCase(bayRepo, estRepo, 4)

		bayRepo.EXPECT().List(gomock.Any()).Return(occupiedBoard(), nil)
		bayRepo.EXPECT().SaveBoard(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.SetStatus(context.Background(), "bay-1", entities.BayStatusProblem)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, b := range got {
			if b.ID == "bay-1" && b.Status != entities.BayStatusProblem {
				t.Fatalf("expected PROBLEM, got %+v", b)
			}
		}
	})
}
