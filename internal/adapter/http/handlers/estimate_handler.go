package handlers

import (
	"errors"
	"net/http"

	request "motoshop/internal/adapter/http/dto/request"
	response "motoshop/internal/adapter/http/dto/response"
	"motoshop/internal/usecase"
	"motoshop/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for workshop estimates: the document
// lifecycle, line editing and the payment ledger.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	detail, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimateDetail(detail))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	detail, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateDetail(detail))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	list, err := h.usecase.ListByCustomerPhone(c.Request.Context(), c.Query("customer_phone"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateDetails(list))
}

func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	detail, err := h.usecase.UpdateLines(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateDetail(detail))
}

func (h *EstimateHandler) UpdateEstimateStatus(c *gin.Context) {
	var payload request.EstimateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	detail, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateDetail(detail))
}

func (h *EstimateHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	detail, err := h.usecase.RecordPayment(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimateDetail(detail))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidEstimateInput),
		errors.Is(err, usecase.ErrInvalidCustomerPhone),
		errors.Is(err, usecase.ErrInvalidDiscountOverride),
		errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition), errors.Is(err, usecase.ErrEstimateNotEditable):
		return pkg.NewDomainErrorSimple("ESTIMATE_CONFLICT", "Estimate state does not allow this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment declined by gateway", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayNotSet):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
