package request

import (
	"strings"

	"motoshop/internal/domain/entities"
)

// BayAssignmentRequest drops an estimate onto a bay. SourceBayID is empty
// when the drag started from the unassigned pool.
type BayAssignmentRequest struct {
	SourceBayID string `json:"source_bay_id"`
	BayID       string `json:"bay_id" binding:"required"`
	EstimateID  string `json:"estimate_id" binding:"required"`
}

// BayStatusRequest flags an occupied bay as waiting/problem/active.
type BayStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r BayStatusRequest) ResolveStatus() entities.BayStatus {
	return entities.BayStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}
