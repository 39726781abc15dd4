package entities

import (
	"errors"
	"testing"
)

func board() []Bay {
	return []Bay{
		{ID: "bay-1", EstimateID: "est-a", Status: BayStatusWaiting},
		{ID: "bay-2", EstimateID: "est-b", Status: BayStatusActive},
		{ID: "bay-3", Status: BayStatusActive},
	}
}

func findBay(t *testing.T, bays []Bay, id string) Bay {
	t.Helper()
	for _, b := range bays {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("bay %s not found", id)
	return Bay{}
}

func TestApplyBayAssignment(t *testing.T) {
	t.Run("drop into free bay", func(t *testing.T) {
		next, err := ApplyBayAssignment(board(), "", "bay-3", "est-c")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := findBay(t, next, "bay-3")
		if b.EstimateID != "est-c" || b.Status != BayStatusActive {
			t.Fatalf("unexpected bay: %+v", b)
		}
	})

	t.Run("swap between occupied bays", func(t *testing.T) {
		next, err := ApplyBayAssignment(board(), "bay-1", "bay-2", "est-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b := findBay(t, next, "bay-2"); b.EstimateID != "est-a" {
			t.Fatalf("expected est-a in bay-2, got %+v", b)
		}
		if b := findBay(t, next, "bay-1"); b.EstimateID != "est-b" {
			t.Fatalf("expected est-b swapped into bay-1, got %+v", b)
		}
	})

	t.Run("swap resets both statuses to active", func(t *testing.T) {
		next, err := ApplyBayAssignment(board(), "bay-1", "bay-2", "est-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, id := range []string{"bay-1", "bay-2"} {
			if b := findBay(t, next, id); b.Status != BayStatusActive {
				t.Fatalf("expected ACTIVE after reassignment, got %+v", b)
			}
		}
	})

	t.Run("drop from pool displaces occupant back to pool", func(t *testing.T) {
		next, err := ApplyBayAssignment(board(), "", "bay-2", "est-c")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b := findBay(t, next, "bay-2"); b.EstimateID != "est-c" {
			t.Fatalf("expected est-c in bay-2, got %+v", b)
		}
		// est-b must be off the board entirely, which is what "back in the
		// unassigned pool" means; it must not land somewhere else.
		for _, b := range next {
			if b.ID != "bay-2" && b.EstimateID == "est-b" {
				t.Fatalf("displaced estimate reappeared in %+v", b)
			}
		}
		if b := findBay(t, next, "bay-1"); b.EstimateID != "est-a" {
			t.Fatalf("unrelated bay changed: %+v", b)
		}
	})

	t.Run("estimate never occupies two bays", func(t *testing.T) {
		next, err := ApplyBayAssignment(board(), "bay-1", "bay-3", "est-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		count := 0
		for _, b := range next {
			if b.EstimateID == "est-a" {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("expected est-a in exactly one bay, found %d", count)
		}
		if b := findBay(t, next, "bay-1"); b.EstimateID != "" {
			t.Fatalf("expected bay-1 freed, got %+v", b)
		}
	})

	t.Run("unknown target bay", func(t *testing.T) {
		if _, err := ApplyBayAssignment(board(), "", "bay-9", "est-c"); !errors.Is(err, ErrBayNotFound) {
			t.Fatalf("expected ErrBayNotFound, got %v", err)
		}
	})

	t.Run("input board not mutated", func(t *testing.T) {
		in := board()
		if _, err := ApplyBayAssignment(in, "", "bay-3", "est-c"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in[2].EstimateID != "" {
			t.Fatalf("input slice mutated: %+v", in[2])
		}
	})
}

func TestReleaseBay(t *testing.T) {
	next, err := ReleaseBay(board(), "bay-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := findBay(t, next, "bay-1")
	if b.EstimateID != "" || b.Status != BayStatusActive {
		t.Fatalf("expected free ACTIVE bay, got %+v", b)
	}

	if _, err := ReleaseBay(board(), "bay-9"); !errors.Is(err, ErrBayNotFound) {
		t.Fatalf("expected ErrBayNotFound, got %v", err)
	}
}

func TestSetBayStatus(t *testing.T) {
	t.Run("occupied bay accepts status", func(t *testing.T) {
		next, err := SetBayStatus(board(), "bay-2", BayStatusProblem)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b := findBay(t, next, "bay-2"); b.Status != BayStatusProblem {
			t.Fatalf("expected PROBLEM, got %+v", b)
		}
	})

	t.Run("empty bay rejects status", func(t *testing.T) {
		if _, err := SetBayStatus(board(), "bay-3", BayStatusWaiting); !errors.Is(err, ErrBayEmpty) {
			t.Fatalf("expected ErrBayEmpty, got %v", err)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		if _, err := SetBayStatus(board(), "bay-2", "BROKEN"); !errors.Is(err, ErrInvalidBayStatus) {
			t.Fatalf("expected ErrInvalidBayStatus, got %v", err)
		}
	})
}
