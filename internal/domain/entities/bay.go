package entities

import "errors"

// BayStatus is the operational state of an occupied workshop bay. An empty
// bay is always ACTIVE; WAITING and PROBLEM only make sense with a motorcycle
// in the bay.

type BayStatus string

const (
	BayStatusActive  BayStatus = "ACTIVE"
	BayStatusWaiting BayStatus = "WAITING"
	BayStatusProblem BayStatus = "PROBLEM"
)

var (
	ErrBayNotFound      = errors.New("bay not found")
	ErrBayEmpty         = errors.New("bay is empty")
	ErrInvalidBayStatus = errors.New("invalid bay status")
)

// Bay is one slot on the workshop assignment board. EstimateID is empty when
// the bay is free. The board is persistent operational state: there is no
// terminal transition, bays just get reassigned.
type Bay struct {
	ID         string    `json:"id"`
	EstimateID string    `json:"estimate_id,omitempty"`
	Status     BayStatus `json:"status"`
}

// ApplyBayAssignment drops estimateID onto the bay targetBayID and returns
// the new board. sourceBayID is the bay the drag started from, or empty when
// it came from the unassigned pool.
//
// Swap semantics: if the target bay is occupied, its previous occupant moves
// to the source bay; with no source bay it simply ends up unassigned (pool
// membership is derived, so leaving it off every bay is the return to the
// pool). A freshly assigned bay always resets to ACTIVE. The input slice is
// not mutated.
func ApplyBayAssignment(bays []Bay, sourceBayID, targetBayID, estimateID string) ([]Bay, error) {
	next := make([]Bay, len(bays))
	copy(next, bays)

	target := indexOfBay(next, targetBayID)
	if target < 0 {
		return nil, ErrBayNotFound
	}
	displaced := next[target].EstimateID

	// If the estimate was already on the board somewhere else, vacate it so
	// it never appears in two bays at once.
	for i := range next {
		if next[i].EstimateID == estimateID {
			next[i].EstimateID = ""
			next[i].Status = BayStatusActive
		}
	}

	next[target].EstimateID = estimateID
	next[target].Status = BayStatusActive

	if displaced != "" && displaced != estimateID && sourceBayID != "" {
		source := indexOfBay(next, sourceBayID)
		if source < 0 {
			return nil, ErrBayNotFound
		}
		next[source].EstimateID = displaced
		next[source].Status = BayStatusActive
	}
	return next, nil
}

// ReleaseBay clears a bay back to free/ACTIVE.
func ReleaseBay(bays []Bay, bayID string) ([]Bay, error) {
	next := make([]Bay, len(bays))
	copy(next, bays)
	i := indexOfBay(next, bayID)
	if i < 0 {
		return nil, ErrBayNotFound
	}
	next[i].EstimateID = ""
	next[i].Status = BayStatusActive
	return next, nil
}

// SetBayStatus changes an occupied bay's status. Setting a status on an empty
// bay is rejected: a free bay is always conceptually ACTIVE and must never
// display WAITING or PROBLEM.
func SetBayStatus(bays []Bay, bayID string, status BayStatus) ([]Bay, error) {
	switch status {
	case BayStatusActive, BayStatusWaiting, BayStatusProblem:
	default:
		return nil, ErrInvalidBayStatus
	}
	next := make([]Bay, len(bays))
	copy(next, bays)
	i := indexOfBay(next, bayID)
	if i < 0 {
		return nil, ErrBayNotFound
	}
	if next[i].EstimateID == "" {
		return nil, ErrBayEmpty
	}
	next[i].Status = status
	return next, nil
}

func indexOfBay(bays []Bay, id string) int {
	for i := range bays {
		if bays[i].ID == id {
			return i
		}
	}
	return -1
}
