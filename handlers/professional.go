package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carelink/models"
	professionalService "carelink/services/professional"
	"carelink/utils"
)

// ProfessionalHandler serves professional account and profile endpoints.
type ProfessionalHandler struct {
	ProfessionalService professionalService.ProfessionalService
}

func NewProfessionalHandler(svc professionalService.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{ProfessionalService: svc}
}

// RegisterHandler handles POST /api/professionals/register.
func (h *ProfessionalHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req professionalService.RegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.ProfessionalService.Register(c.Request.Context(), req)
	if err != nil {
		logger.Error("Professional registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/professionals/login.
func (h *ProfessionalHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.ProfessionalService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByIDHandler handles GET /api/professionals/:id. Public profile view.
func (h *ProfessionalHandler) GetByIDHandler(c *gin.Context) {
	prof, err := h.ProfessionalService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "professional not found"})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// SearchHandler handles GET /api/professionals?q=&specialty=.
func (h *ProfessionalHandler) SearchHandler(c *gin.Context) {
	profs, err := h.ProfessionalService.Search(c.Request.Context(), c.Query("q"), c.Query("specialty"))
	if err != nil {
		utils.GetLogger().Error("Professional search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"professionals": profs})
}

// UpdateProfileHandler handles PUT /api/professionals/me.
func (h *ProfessionalHandler) UpdateProfileHandler(c *gin.Context) {
	profID := c.GetString("professionalID")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	prof, err := h.ProfessionalService.Update(c.Request.Context(), profID, updates)
	if err != nil {
		utils.GetLogger().Error("Professional update failed", zap.String("professionalId", profID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// UpdatePasswordHandler handles PUT /api/professionals/me/password.
func (h *ProfessionalHandler) UpdatePasswordHandler(c *gin.Context) {
	profID := c.GetString("professionalID")

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.ProfessionalService.UpdatePassword(c.Request.Context(), profID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, professionalService.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated, please sign in again"})
}

// LogoutHandler handles POST /api/professionals/logout.
func (h *ProfessionalHandler) LogoutHandler(c *gin.Context) {
	profID := c.GetString("professionalID")
	if err := h.ProfessionalService.RevokeToken(c.Request.Context(), profID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// GetAvailabilityHandler handles GET /api/professionals/:id/availability.
func (h *ProfessionalHandler) GetAvailabilityHandler(c *gin.Context) {
	wa, err := h.ProfessionalService.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "professional not found"})
		return
	}
	c.JSON(http.StatusOK, wa)
}

// UpdateAvailabilityHandler handles PUT /api/professionals/me/availability.
func (h *ProfessionalHandler) UpdateAvailabilityHandler(c *gin.Context) {
	profID := c.GetString("professionalID")

	var wa models.WeeklyAvailability
	if err := c.ShouldBindJSON(&wa); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.ProfessionalService.UpdateAvailability(c.Request.Context(), profID, wa)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
