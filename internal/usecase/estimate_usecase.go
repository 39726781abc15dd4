package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"motoshop/internal/domain/entities"
	"motoshop/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrInvalidEstimateID       = errors.New("invalid estimate id")
	ErrInvalidEstimateInput    = errors.New("invalid estimate input")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrEstimateNotEditable     = errors.New("estimate is not editable")
	ErrInvalidPaymentAmount    = errors.New("invalid payment amount")
	ErrPaymentGatewayNotSet    = errors.New("payment gateway not configured")
	ErrPaymentGatewayDeclined  = errors.New("payment declined by gateway")
	ErrInvalidDiscountOverride = errors.New("invalid discount override")
)

// CreateEstimateCommand carries everything a new draft needs. When the
// discount overrides are nil the loyalty tier discount is applied
// automatically; staff identity overrides both the override and the tier.
type CreateEstimateCommand struct {
	CustomerName  string
	CustomerPhone string
	VehicleModel  string
	Parts         []entities.Part
	Labor         []entities.Labor

	PartsDiscount  *float64
	LaborDiscount  *float64
	DiscountSource entities.DiscountSource
}

// UpdateEstimateCommand replaces a draft's line items and discounts.
type UpdateEstimateCommand struct {
	Parts []entities.Part
	Labor []entities.Labor

	PartsDiscount  *float64
	LaborDiscount  *float64
	DiscountSource entities.DiscountSource
}

// RecordPaymentCommand records money against an estimate. Method "card" is
// processed through the payment gateway first; anything else (cash, transfer)
// is recorded directly. GatewayPayload carries provider-specific fields such
// as payment_method_id and payer.
type RecordPaymentCommand struct {
	Amount         float64
	Method         string
	GatewayPayload json.RawMessage
}

// EstimateDetail is the read model for a single estimate: the document, its
// derived totals and the loyalty snapshot its discounts came from. Totals are
// recomputed on every read; no stored total is authoritative.
type EstimateDetail struct {
	Estimate entities.Estimate       `json:"estimate"`
	Totals   entities.EstimateTotals `json:"totals"`
	Loyalty  entities.LoyaltyResult  `json:"loyalty"`
}

// IEstimateUseCase exposes workshop estimate operations.

type IEstimateUseCase interface {
	Create(ctx context.Context, cmd CreateEstimateCommand) (EstimateDetail, error)
	GetByID(ctx context.Context, id string) (EstimateDetail, error)
	ListByCustomerPhone(ctx context.Context, phone string) ([]EstimateDetail, error)
	UpdateLines(ctx context.Context, id string, cmd UpdateEstimateCommand) (EstimateDetail, error)
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (EstimateDetail, error)
	RecordPayment(ctx context.Context, id string, cmd RecordPaymentCommand) (EstimateDetail, error)
}

type EstimateUseCase struct {
	repo    interfaces.IEstimateRepository
	loyalty ILoyaltyUseCase
	gateway interfaces.IPaymentGateway
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, loyalty ILoyaltyUseCase, gateway interfaces.IPaymentGateway) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, loyalty: loyalty, gateway: gateway}
}

func (u *EstimateUseCase) Create(ctx context.Context, cmd CreateEstimateCommand) (EstimateDetail, error) {
	cmd.CustomerPhone = strings.TrimSpace(cmd.CustomerPhone)
	cmd.CustomerName = strings.TrimSpace(cmd.CustomerName)
	if cmd.CustomerName == "" {
		return EstimateDetail{}, ErrInvalidEstimateInput
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:            uuid.NewString(),
		Number:        newEstimateNumber(now),
		CustomerName:  cmd.CustomerName,
		CustomerPhone: cmd.CustomerPhone,
		VehicleModel:  strings.TrimSpace(cmd.VehicleModel),
		Status:        entities.EstimateStatusDraft,
		Parts:         cmd.Parts,
		Labor:         cmd.Labor,
		Payments:      []entities.Payment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.applyDiscounts(ctx, &e, cmd.PartsDiscount, cmd.LaborDiscount, cmd.DiscountSource); err != nil {
		return EstimateDetail{}, err
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return EstimateDetail{}, err
	}
	log.Printf("[estimate][usecase] created id=%s number=%s customer_phone=%s discount_source=%s", created.ID, created.Number, created.CustomerPhone, created.DiscountSource)
	return u.detail(ctx, created)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (EstimateDetail, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return EstimateDetail{}, err
	}
	return u.detail(ctx, e)
}

func (u *EstimateUseCase) ListByCustomerPhone(ctx context.Context, phone string) ([]EstimateDetail, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrInvalidCustomerPhone
	}
	list, err := u.repo.ListByCustomerPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	out := make([]EstimateDetail, 0, len(list))
	for _, e := range list {
		d, err := u.detail(ctx, e)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (u *EstimateUseCase) UpdateLines(ctx context.Context, id string, cmd UpdateEstimateCommand) (EstimateDetail, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return EstimateDetail{}, err
	}
	if e.Status != entities.EstimateStatusDraft {
		return EstimateDetail{}, ErrEstimateNotEditable
	}

	e.Parts = cmd.Parts
	e.Labor = cmd.Labor
	if err := u.applyDiscounts(ctx, &e, cmd.PartsDiscount, cmd.LaborDiscount, cmd.DiscountSource); err != nil {
		return EstimateDetail{}, err
	}
	e.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return EstimateDetail{}, err
	}
	return u.detail(ctx, updated)
}

// estimateStatusTransitions lists the allowed lifecycle moves. Completed
// documents can be reopened to DRAFT for correction; reopening drops them out
// of the loyalty history until completed again.
var estimateStatusTransitions = map[entities.EstimateStatus][]entities.EstimateStatus{
	entities.EstimateStatusDraft:           {entities.EstimateStatusAwaitingPayment, entities.EstimateStatusCompleted},
	entities.EstimateStatusAwaitingPayment: {entities.EstimateStatusCompleted, entities.EstimateStatusDraft},
	entities.EstimateStatusCompleted:       {entities.EstimateStatusDraft},
}

func (u *EstimateUseCase) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (EstimateDetail, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return EstimateDetail{}, err
	}

	allowed := false
	for _, s := range estimateStatusTransitions[e.Status] {
		if s == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return EstimateDetail{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, e.Status, status)
	}

	e.Status = status
	e.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return EstimateDetail{}, err
	}
	log.Printf("[estimate][usecase] status change id=%s status=%s", updated.ID, updated.Status)
	return u.detail(ctx, updated)
}

func (u *EstimateUseCase) RecordPayment(ctx context.Context, id string, cmd RecordPaymentCommand) (EstimateDetail, error) {
	if cmd.Amount <= 0 {
		return EstimateDetail{}, ErrInvalidPaymentAmount
	}
	e, err := u.load(ctx, id)
	if err != nil {
		return EstimateDetail{}, err
	}

	p := entities.Payment{
		ID:     uuid.NewString(),
		Amount: cmd.Amount,
		Method: strings.ToLower(strings.TrimSpace(cmd.Method)),
		Date:   time.Now().UTC(),
	}
	if p.Method == "" {
		p.Method = "cash"
	}

	if p.Method == "card" {
		providerID, err := u.chargeCard(ctx, e, cmd)
		if err != nil {
			return EstimateDetail{}, err
		}
		p.ID = providerID
	}

	e.Payments = append(e.Payments, p)
	e.UpdatedAt = p.Date
	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return EstimateDetail{}, err
	}
	log.Printf("[estimate][usecase] payment recorded id=%s payment_id=%s method=%s amount=%.2f", updated.ID, p.ID, p.Method, p.Amount)
	return u.detail(ctx, updated)
}

// chargeCard runs a card payment through the provider before it is recorded.
// The estimate id travels as external_reference so provider events can be
// reconciled later.
func (u *EstimateUseCase) chargeCard(ctx context.Context, e entities.Estimate, cmd RecordPaymentCommand) (string, error) {
	if u.gateway == nil {
		return "", ErrPaymentGatewayNotSet
	}

	payload := map[string]any{}
	if len(cmd.GatewayPayload) > 0 && json.Valid(cmd.GatewayPayload) {
		_ = json.Unmarshal(cmd.GatewayPayload, &payload)
	}
	payload["transaction_amount"] = cmd.Amount
	if _, ok := payload["external_reference"]; !ok {
		payload["external_reference"] = e.ID
	}
	if _, ok := payload["description"]; !ok {
		payload["description"] = fmt.Sprintf("Estimate %s", e.Number)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[estimate][usecase] gateway failed id=%s err=%v", e.ID, err)
		return "", err
	}
	if providerStatus != "approved" {
		log.Printf("[estimate][usecase] gateway declined id=%s provider_status=%s", e.ID, providerStatus)
		return "", ErrPaymentGatewayDeclined
	}
	return providerID, nil
}

// applyDiscounts sets the estimate's discount percentages. Precedence: staff
// identity, then an explicit promotion/manual override, then the automatic
// loyalty tier. The loyalty computation excludes the estimate itself.
func (u *EstimateUseCase) applyDiscounts(ctx context.Context, e *entities.Estimate, parts, labor *float64, source entities.DiscountSource) error {
	res, err := u.loyalty.ComputeForEstimate(ctx, *e)
	if err != nil {
		return err
	}
	if res.Tier != nil && *res.Tier == entities.LoyaltyTierStaff {
		e.PartsDiscount = res.PartsDiscount
		e.LaborDiscount = res.LaborDiscount
		e.DiscountSource = entities.DiscountSourceStaff
		return nil
	}

	if parts != nil || labor != nil {
		if parts != nil {
			if *parts < 0 || *parts > 100 {
				return ErrInvalidDiscountOverride
			}
			e.PartsDiscount = *parts
		}
		if labor != nil {
			if *labor < 0 || *labor > 100 {
				return ErrInvalidDiscountOverride
			}
			e.LaborDiscount = *labor
		}
		if source != entities.DiscountSourcePromotion {
			source = entities.DiscountSourceManual
		}
		e.DiscountSource = source
		return nil
	}

	e.PartsDiscount = res.PartsDiscount
	e.LaborDiscount = res.LaborDiscount
	if res.Tier != nil {
		e.DiscountSource = entities.DiscountSourceLoyalty
	} else {
		e.DiscountSource = ""
	}
	return nil
}

func (u *EstimateUseCase) detail(ctx context.Context, e entities.Estimate) (EstimateDetail, error) {
	res, err := u.loyalty.ComputeForEstimate(ctx, e)
	if err != nil {
		return EstimateDetail{}, err
	}
	return EstimateDetail{Estimate: e, Totals: e.Totals(), Loyalty: res}, nil
}

func (u *EstimateUseCase) load(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func newEstimateNumber(now time.Time) string {
	return fmt.Sprintf("EST-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}
