package response

import "motoshop/internal/domain/entities"

type BayResponse struct {
	ID         string `json:"id"`
	EstimateID string `json:"estimate_id,omitempty"`
	Status     string `json:"status"`
}

func FromBays(bays []entities.Bay) []BayResponse {
	out := make([]BayResponse, 0, len(bays))
	for _, b := range bays {
		out = append(out, BayResponse{ID: b.ID, EstimateID: b.EstimateID, Status: string(b.Status)})
	}
	return out
}
