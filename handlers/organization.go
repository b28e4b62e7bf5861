package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	organizationService "carelink/services/organization"
	"carelink/utils"
)

// OrganizationHandler serves organization directory and affiliation endpoints.
type OrganizationHandler struct {
	OrganizationService organizationService.OrganizationService
}

func NewOrganizationHandler(svc organizationService.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{OrganizationService: svc}
}

func orgError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, organizationService.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, organizationService.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, organizationService.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Organization operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// CreateHandler handles POST /api/organizations.
func (h *OrganizationHandler) CreateHandler(c *gin.Context) {
	adminUserID := c.GetString("userID")

	var req organizationService.CreateData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	org, err := h.OrganizationService.Create(c.Request.Context(), adminUserID, req)
	if err != nil {
		orgError(c, err)
		return
	}
	c.JSON(http.StatusCreated, org)
}

// GetHandler handles GET /api/organizations/:id.
func (h *OrganizationHandler) GetHandler(c *gin.Context) {
	org, err := h.OrganizationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		orgError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// UpdateHandler handles PUT /api/organizations/:id.
func (h *OrganizationHandler) UpdateHandler(c *gin.Context) {
	adminUserID := c.GetString("userID")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	org, err := h.OrganizationService.Update(c.Request.Context(), c.Param("id"), adminUserID, updates)
	if err != nil {
		orgError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// ListHandler handles GET /api/organizations?limit=.
func (h *OrganizationHandler) ListHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	orgs, err := h.OrganizationService.List(c.Request.Context(), limit)
	if err != nil {
		orgError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

// RequestAffiliationHandler handles POST /api/organizations/:id/affiliations.
func (h *OrganizationHandler) RequestAffiliationHandler(c *gin.Context) {
	profID := c.GetString("professionalID")

	var req struct {
		Message string `json:"message"`
	}
	_ = c.ShouldBindJSON(&req) // body optional

	created, err := h.OrganizationService.RequestAffiliation(c.Request.Context(), profID, c.Param("id"), req.Message)
	if err != nil {
		orgError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ReviewAffiliationHandler handles POST /api/affiliations/:id/review.
func (h *OrganizationHandler) ReviewAffiliationHandler(c *gin.Context) {
	adminUserID := c.GetString("userID")

	var req struct {
		Decision   string `json:"decision" binding:"required"`
		ReviewNote string `json:"reviewNote"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reviewed, err := h.OrganizationService.ReviewAffiliation(c.Request.Context(), c.Param("id"), adminUserID, req.Decision, req.ReviewNote)
	if err != nil {
		if errors.Is(err, organizationService.ErrForbidden) || errors.Is(err, organizationService.ErrNotFound) {
			orgError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviewed)
}

// PendingAffiliationsHandler handles GET /api/organizations/:id/affiliations/pending.
func (h *OrganizationHandler) PendingAffiliationsHandler(c *gin.Context) {
	adminUserID := c.GetString("userID")

	reqs, err := h.OrganizationService.PendingAffiliations(c.Request.Context(), c.Param("id"), adminUserID)
	if err != nil {
		orgError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// MyAffiliationsHandler handles GET /api/affiliations/mine for professionals.
func (h *OrganizationHandler) MyAffiliationsHandler(c *gin.Context) {
	profID := c.GetString("professionalID")

	reqs, err := h.OrganizationService.AffiliationsForProfessional(c.Request.Context(), profID)
	if err != nil {
		orgError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}
