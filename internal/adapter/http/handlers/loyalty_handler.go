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
	errInvalidLoyaltyPayload = pkg.NewDomainErrorSimple("INVALID_LOYALTY_INPUT", "Invalid loyalty payload", http.StatusBadRequest)
)

// LoyaltyHandler serves the client loyalty profile and the tier config.

type LoyaltyHandler struct {
	usecase usecase.ILoyaltyUseCase
}

func NewLoyaltyHandler(uc usecase.ILoyaltyUseCase) *LoyaltyHandler {
	return &LoyaltyHandler{usecase: uc}
}

func (h *LoyaltyHandler) GetClientLoyalty(c *gin.Context) {
	profile, err := h.usecase.ComputeForCustomer(c.Request.Context(), c.Param("phone"))
	if err != nil {
		appErr := mapLoyaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLoyaltyProfile(profile))
}

func (h *LoyaltyHandler) GetLoyaltyConfig(c *gin.Context) {
	cfg, err := h.usecase.GetConfig(c.Request.Context())
	if err != nil {
		appErr := mapLoyaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLoyaltyConfig(cfg))
}

func (h *LoyaltyHandler) UpdateLoyaltyConfig(c *gin.Context) {
	var payload request.LoyaltyConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoyaltyPayload.HTTPStatus, errInvalidLoyaltyPayload.ToHTTPError())
		return
	}

	cfg, err := h.usecase.UpdateConfig(c.Request.Context(), payload.ToConfig())
	if err != nil {
		appErr := mapLoyaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLoyaltyConfig(cfg))
}

func mapLoyaltyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerPhone), errors.Is(err, usecase.ErrInvalidLoyaltyConfig):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
