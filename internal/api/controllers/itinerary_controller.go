package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type ItineraryController struct {
	plannerService services.PlannerServiceInterface
}

func NewItineraryController(plannerService services.PlannerServiceInterface) *ItineraryController {
	return &ItineraryController{
		plannerService: plannerService,
	}
}

// PlanItinerary godoc
// @Summary Plan a trip itinerary
// @Description Build an optimized route, day-wise distribution and schedule for the selected points
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.PlanItineraryRequest true "Points and trip details"
// @Success 200 {object} response_models.PlanItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/plan [post]
func (i *ItineraryController) PlanItinerary(c *gin.Context) {
	var req request_models.PlanItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	response, err := i.plannerService.PlanTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response, "Itinerary generated successfully")
}
