package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crowdfund-backoffice/internal/domains/dashboard"
	"crowdfund-backoffice/internal/domains/workflow"
	"crowdfund-backoffice/internal/shared/middleware"
	"crowdfund-backoffice/internal/shared/response"
	"crowdfund-backoffice/pkg/jwt"
)

// Service is what the handler needs from the workflow coordinator.
type Service[C any] interface {
	Create(ctx context.Context, campaignID uuid.UUID, content C, ownerID uuid.UUID) (*workflow.Draft[C], error)
	Update(ctx context.Context, id uuid.UUID, patch C, userID uuid.UUID) (*workflow.Draft[C], error)
	ResubmitOnEdit(ctx context.Context, campaignID uuid.UUID, patch C, userID uuid.UUID) (*workflow.Draft[C], error)
	Submit(ctx context.Context, id, userID uuid.UUID) (*workflow.Draft[C], error)
	Review(ctx context.Context, id uuid.UUID, action workflow.Action, reviewerID uuid.UUID, comment *string) (*workflow.Draft[C], error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*workflow.Draft[C], error)
	GetByCampaignID(ctx context.Context, campaignID uuid.UUID) (*workflow.Draft[C], error)
	ListPending(ctx context.Context) ([]*workflow.Draft[C], error)
	ListBySubmitter(ctx context.Context, userID uuid.UUID) ([]*workflow.Draft[C], error)
}

// validatable - content types tự validate (dashboard.Summary, Info, Socials)
type validatable interface {
	Validate() error
}

// =====================================================
// DASHBOARD HANDLER
// =====================================================

// Handler serves one entity kind under /dashboard/{kind}.
type Handler[C any] struct {
	service Service[C]
	label   string
}

func NewHandler[C any](service Service[C], label string) *Handler[C] {
	return &Handler[C]{
		service: service,
		label:   label,
	}
}

// RegisterRoutes mounts the kind's routes on rg. admin is applied to the
// review endpoints only.
func (h *Handler[C]) RegisterRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc) {
	rg.POST("", h.Create)
	rg.GET("/mine", h.ListMine)
	rg.GET("/pending", admin, h.ListPending)
	rg.GET("/campaign/:campaignId", h.GetByCampaign)
	rg.PUT("/campaign/:campaignId", h.ResubmitOnEdit)
	rg.GET("/:id", h.GetByID)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/submit", h.Submit)
	rg.POST("/:id/review", admin, h.Review)
}

// =====================================================
// OWNER ENDPOINTS
// =====================================================

// Create
// POST /api/v1/dashboard/{kind}
func (h *Handler[C]) Create(c *gin.Context) {
	// Step 1: Get user ID from JWT
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	// Step 2: Bind + validate
	var req dashboard.CreateRequest[C]
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if !validContent(c, req.Content) {
		return
	}

	// Step 3: Call service
	draft, err := h.service.Create(c.Request.Context(), uuid.MustParse(req.CampaignID), req.Content, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, draft)
}

// Update
// PATCH /api/v1/dashboard/{kind}/:id
func (h *Handler[C]) Update(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var patch C
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !validContent(c, patch) {
		return
	}

	draft, err := h.service.Update(c.Request.Context(), id, patch, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, draft)
}

// ResubmitOnEdit - tạo mới nếu chưa có, REJECTED thì tự submit lại
// PUT /api/v1/dashboard/{kind}/campaign/:campaignId
func (h *Handler[C]) ResubmitOnEdit(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	campaignID, ok := h.uuidParam(c, "campaignId")
	if !ok {
		return
	}

	var patch C
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !validContent(c, patch) {
		return
	}

	draft, err := h.service.ResubmitOnEdit(c.Request.Context(), campaignID, patch, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, draft)
}

// Submit
// POST /api/v1/dashboard/{kind}/:id/submit
func (h *Handler[C]) Submit(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	draft, err := h.service.Submit(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, draft)
}

// Delete
// DELETE /api/v1/dashboard/{kind}/:id
func (h *Handler[C]) Delete(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": h.label + " deleted successfully"})
}

// ListMine
// GET /api/v1/dashboard/{kind}/mine
func (h *Handler[C]) ListMine(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	items, err := h.service.ListBySubmitter(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dashboard.ListResponse[C]{Items: items, Total: len(items)})
}

// =====================================================
// READ ENDPOINTS
// =====================================================

// GetByID
// GET /api/v1/dashboard/{kind}/:id
func (h *Handler[C]) GetByID(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	userID, ok := h.userID(c)
	if !ok {
		return
	}

	draft, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !canRead(c, draft, userID) {
		response.Forbidden(c, "only the submitter or an admin can view this "+h.label)
		return
	}

	response.Success(c, http.StatusOK, draft)
}

// GetByCampaign trả về draft, hoặc bản đã publish nếu chưa có draft
// GET /api/v1/dashboard/{kind}/campaign/:campaignId
func (h *Handler[C]) GetByCampaign(c *gin.Context) {
	campaignID, ok := h.uuidParam(c, "campaignId")
	if !ok {
		return
	}

	userID, ok := h.userID(c)
	if !ok {
		return
	}

	draft, err := h.service.GetByCampaignID(c.Request.Context(), campaignID)
	if err != nil {
		respondError(c, err)
		return
	}
	if draft == nil {
		response.NotFound(c, h.label+" not found")
		return
	}
	if !canRead(c, draft, userID) {
		response.Forbidden(c, "only the submitter or an admin can view this "+h.label)
		return
	}

	response.Success(c, http.StatusOK, draft)
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// ListPending - review queue, oldest first
// GET /api/v1/dashboard/{kind}/pending
func (h *Handler[C]) ListPending(c *gin.Context) {
	items, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dashboard.ListResponse[C]{Items: items, Total: len(items)})
}

// Review
// POST /api/v1/dashboard/{kind}/:id/review
func (h *Handler[C]) Review(c *gin.Context) {
	reviewerID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req dashboard.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	draft, err := h.service.Review(c.Request.Context(), id, workflow.Action(req.Action), reviewerID, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, draft)
}

// =====================================================
// HELPER FUNCTIONS
// =====================================================

func (h *Handler[C]) userID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Unauthorized(c, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// canRead: bản đã publish (ID rỗng) ai cũng xem được, draft thì chỉ owner hoặc admin
func canRead[C any](c *gin.Context, draft *workflow.Draft[C], userID uuid.UUID) bool {
	if draft.ID == uuid.Nil {
		return true
	}
	return draft.IsOwnedBy(userID) || c.GetString(middleware.ContextRole) == jwt.RoleAdmin
}

func (h *Handler[C]) uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func validContent(c *gin.Context, content any) bool {
	v, ok := content.(validatable)
	if !ok {
		return true
	}
	if err := v.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return false
	}
	return true
}

// respondError map error kind → HTTP status
func respondError(c *gin.Context, err error) {
	kind := workflow.KindOf(err)

	message := "Internal server error"
	var wfErr *workflow.Error
	if errors.As(err, &wfErr) && kind != workflow.KindInternal {
		message = wfErr.Message
	}

	response.ErrorResponse(c, statusForKind(kind), string(kind), message)
}

func statusForKind(kind workflow.Kind) int {
	switch kind {
	case workflow.KindNotFound:
		return http.StatusNotFound
	case workflow.KindConflict:
		return http.StatusConflict
	case workflow.KindValidation:
		return http.StatusBadRequest
	case workflow.KindUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
