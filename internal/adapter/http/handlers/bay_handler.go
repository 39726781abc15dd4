package handlers

import (
	"errors"
	"net/http"

	request "motoshop/internal/adapter/http/dto/request"
	response "motoshop/internal/adapter/http/dto/response"
	"motoshop/internal/domain/entities"
	"motoshop/internal/usecase"
	"motoshop/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBayPayload = pkg.NewDomainErrorSimple("INVALID_BAY_INPUT", "Invalid bay payload", http.StatusBadRequest)
)

// BayHandler serves the workshop bay assignment board.

type BayHandler struct {
	usecase usecase.IBayUseCase
}

func NewBayHandler(uc usecase.IBayUseCase) *BayHandler {
	return &BayHandler{usecase: uc}
}

func (h *BayHandler) GetBoard(c *gin.Context) {
	bays, err := h.usecase.Board(c.Request.Context())
	if err != nil {
		appErr := mapBayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBays(bays))
}

func (h *BayHandler) AssignBay(c *gin.Context) {
	var payload request.BayAssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBayPayload.HTTPStatus, errInvalidBayPayload.ToHTTPError())
		return
	}

	bays, err := h.usecase.Assign(c.Request.Context(), payload.SourceBayID, payload.BayID, payload.EstimateID)
	if err != nil {
		appErr := mapBayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBays(bays))
}

func (h *BayHandler) SetBayStatus(c *gin.Context) {
	var payload request.BayStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBayPayload.HTTPStatus, errInvalidBayPayload.ToHTTPError())
		return
	}

	bays, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapBayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBays(bays))
}

func (h *BayHandler) ReleaseBay(c *gin.Context) {
	bays, err := h.usecase.Release(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBays(bays))
}

func mapBayError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBayID),
		errors.Is(err, usecase.ErrInvalidAssignment),
		errors.Is(err, entities.ErrInvalidBayStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrBayNotFound):
		return pkg.NewDomainErrorSimple("BAY_NOT_FOUND", "Bay not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrBayEmpty):
		return pkg.NewDomainErrorSimple("BAY_EMPTY", "Cannot set a status on an empty bay", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
