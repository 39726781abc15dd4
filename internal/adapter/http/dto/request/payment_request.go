package request

import (
	"encoding/json"

	"motoshop/internal/usecase"
)

// RecordPaymentRequest records money against an estimate. GatewayPayload is
// forwarded to the payment provider as-is for card payments (payment method
// id, payer, token); it is ignored for cash.
type RecordPaymentRequest struct {
	Amount         float64         `json:"amount" binding:"required"`
	Method         string          `json:"method"`
	GatewayPayload json.RawMessage `json:"gateway_payload,omitempty"`
}

func (r RecordPaymentRequest) ToCommand() usecase.RecordPaymentCommand {
	return usecase.RecordPaymentCommand{
		Amount:         r.Amount,
		Method:         r.Method,
		GatewayPayload: r.GatewayPayload,
	}
}
