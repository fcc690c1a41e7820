package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type LandmarkController struct {
	landmarkService services.LandmarkServiceInterface
}

func NewLandmarkController(landmarkService services.LandmarkServiceInterface) *LandmarkController {
	return &LandmarkController{
		landmarkService: landmarkService,
	}
}

// ListLandmarks godoc
// @Summary List landmarks
// @Description Fetch a paginated list of landmarks, optionally filtered by city
// @Tags Landmarks
// @Accept json
// @Produce json
// @Param city query string false "City filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.LandmarkResponse
// @Router /landmarks [get]
func (l *LandmarkController) ListLandmarks(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	landmarks, err := l.landmarkService.ListLandmarks(c.Request.Context(), c.Query("city"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, landmarks, "Landmarks fetched successfully")
}

// GetLandmarkById godoc
// @Summary Get landmark by ID
// @Tags Landmarks
// @Accept json
// @Produce json
// @Param id path string true "Landmark ID"
// @Success 200 {object} response_models.LandmarkResponse
// @Failure 404 {object} utils.APIResponse
// @Router /landmarks/{id} [get]
func (l *LandmarkController) GetLandmarkById(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Landmark ID is required")
		return
	}

	landmark, err := l.landmarkService.GetLandmarkById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, landmark, "Landmark fetched successfully")
}

// NearbyLandmarks godoc
// @Summary Find landmarks near a coordinate
// @Tags Landmarks
// @Accept json
// @Produce json
// @Param city query string true "City to search in"
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radiusKm query number false "Radius in kilometers" default(10)
// @Success 200 {array} response_models.LandmarkResponse
// @Router /landmarks/nearby [get]
func (l *LandmarkController) NearbyLandmarks(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lon query parameters are required")
		return
	}

	radiusKm, err := strconv.ParseFloat(c.DefaultQuery("radiusKm", "10"), 64)
	if err != nil || radiusKm <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid radius")
		return
	}

	landmarks, err := l.landmarkService.NearbyLandmarks(c.Request.Context(), c.Query("city"), lat, lon, radiusKm, 50)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, landmarks, "Nearby landmarks fetched successfully")
}

// CreateLandmark godoc
// @Summary Create a landmark
// @Tags Landmarks
// @Accept json
// @Produce json
// @Param request body request_models.CreateLandmarkRequest true "Landmark payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /landmarks [post]
func (l *LandmarkController) CreateLandmark(c *gin.Context) {
	var req request_models.CreateLandmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := l.landmarkService.CreateLandmark(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Landmark created successfully")
}
