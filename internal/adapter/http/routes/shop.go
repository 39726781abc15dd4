package routes

import (
	"motoshop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathLoyalty   = "/loyalty"
	PathBays      = "/bays"
)

func addShopRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, loyaltyHandler *handlers.LoyaltyHandler, bayHandler *handlers.BayHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)
		estimates.PATCH("/:id/status", estimateHandler.UpdateEstimateStatus)
		estimates.POST("/:id/payments", estimateHandler.RecordPayment)
	}

	loyalty := rg.Group(PathLoyalty)
	{
		// "config" is registered before the phone wildcard on purpose.
		loyalty.GET("/config", loyaltyHandler.GetLoyaltyConfig)
		loyalty.PUT("/config", loyaltyHandler.UpdateLoyaltyConfig)
		loyalty.GET("/:phone", loyaltyHandler.GetClientLoyalty)
	}

	bays := rg.Group(PathBays)
	{
		bays.GET("", bayHandler.GetBoard)
		bays.POST("/assignments", bayHandler.AssignBay)
		bays.PATCH("/:id/status", bayHandler.SetBayStatus)
		bays.DELETE("/:id/assignment", bayHandler.ReleaseBay)
	}
}
