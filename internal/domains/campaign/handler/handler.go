package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crowdfund-backoffice/internal/domains/campaign/model"
	"crowdfund-backoffice/internal/domains/campaign/service"
	"crowdfund-backoffice/internal/shared/middleware"
	"crowdfund-backoffice/internal/shared/response"
)

// =====================================================
// CAMPAIGN HANDLER
// =====================================================

type CampaignHandler struct {
	service service.ServiceInterface
}

func NewCampaignHandler(s service.ServiceInterface) *CampaignHandler {
	return &CampaignHandler{service: s}
}

func (h *CampaignHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/slug/:slug", h.GetBySlug)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
}

// Create
// POST /api/v1/campaigns
func (h *CampaignHandler) Create(c *gin.Context) {
	// Step 1: Get user ID from JWT
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	// Step 2: Bind + validate
	var req model.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	// Step 3: Call service
	campaign, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, campaign)
}

// List
// GET /api/v1/campaigns?page=1&limit=20&status=active&mine=true
func (h *CampaignHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter := model.ListFilter{Page: page, Limit: limit}

	if raw := c.Query("status"); raw != "" {
		status := model.Status(raw)
		if !status.IsValid() {
			response.BadRequest(c, "status must be active or closed")
			return
		}
		filter.Status = &status
	}

	if c.Query("mine") == "true" {
		userID, err := middleware.GetUserID(c)
		if err != nil {
			response.Unauthorized(c, "Unauthorized")
			return
		}
		filter.OwnerID = &userID
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetByID
// GET /api/v1/campaigns/:id
func (h *CampaignHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid campaign ID")
		return
	}

	campaign, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, campaign)
}

// GetBySlug
// GET /api/v1/campaigns/slug/:slug
func (h *CampaignHandler) GetBySlug(c *gin.Context) {
	campaign, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, campaign)
}

// Update
// PUT /api/v1/campaigns/:id
func (h *CampaignHandler) Update(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid campaign ID")
		return
	}

	var req model.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	campaign, err := h.service.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, campaign)
}

func respondError(c *gin.Context, err error) {
	status, code, message := model.MapErrorToHTTP(err)
	response.ErrorResponse(c, status, code, message)
}
