package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carelink/models"
	appointmentService "carelink/services/appointment"
	"carelink/services/scheduling"
	"carelink/utils"
)

// AppointmentHandler serves slot queries, booking and the review flow.
type AppointmentHandler struct {
	AppointmentService appointmentService.AppointmentService
}

func NewAppointmentHandler(svc appointmentService.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{AppointmentService: svc}
}

// apptError maps service errors onto HTTP statuses.
func apptError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appointmentService.ErrSlotTaken),
		errors.Is(err, appointmentService.ErrInvalidInput),
		errors.Is(err, appointmentService.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, appointmentService.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, appointmentService.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Appointment operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// SlotsHandler handles GET /api/professionals/:id/slots?startDate=&endDate=.
func (h *AppointmentHandler) SlotsHandler(c *gin.Context) {
	days, err := h.AppointmentService.AvailableSlots(c.Request.Context(),
		c.Param("id"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		apptError(c, err)
		return
	}
	if days == nil {
		days = []scheduling.DaySlots{}
	}
	c.JSON(http.StatusOK, days)
}

// BookHandler handles POST /api/appointments.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	patientID := c.GetString("userID")

	var req appointmentService.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.AppointmentService.Book(c.Request.Context(), patientID, req)
	if err != nil {
		apptError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ApproveHandler handles PUT /api/appointments/:id/approve.
func (h *AppointmentHandler) ApproveHandler(c *gin.Context) {
	profID := c.GetString("professionalID")

	var req struct {
		Notes string `json:"notes"`
	}
	_ = c.ShouldBindJSON(&req) // body optional

	appt, err := h.AppointmentService.Approve(c.Request.Context(), profID, c.Param("id"), req.Notes)
	if err != nil {
		apptError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RejectHandler handles PUT /api/appointments/:id/reject.
func (h *AppointmentHandler) RejectHandler(c *gin.Context) {
	profID := c.GetString("professionalID")

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a rejection reason is required"})
		return
	}

	appt, err := h.AppointmentService.Reject(c.Request.Context(), profID, c.Param("id"), req.Reason)
	if err != nil {
		apptError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RescheduleHandler handles PUT /api/appointments/:id/reschedule.
func (h *AppointmentHandler) RescheduleHandler(c *gin.Context) {
	profID := c.GetString("professionalID")

	var req struct {
		SuggestedTimes []models.SuggestedTime `json:"suggestedTimes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.AppointmentService.Reschedule(c.Request.Context(), profID, c.Param("id"), req.SuggestedTimes)
	if err != nil {
		apptError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CompleteHandler handles PUT /api/appointments/:id/complete.
func (h *AppointmentHandler) CompleteHandler(c *gin.Context) {
	profID := c.GetString("professionalID")

	appt, err := h.AppointmentService.Complete(c.Request.Context(), profID, c.Param("id"))
	if err != nil {
		apptError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// AcceptRescheduleHandler handles PUT /api/appointments/:id/accept-reschedule.
func (h *AppointmentHandler) AcceptRescheduleHandler(c *gin.Context) {
	patientID := c.GetString("userID")

	var req models.SuggestedTime
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.AppointmentService.AcceptReschedule(c.Request.Context(), patientID, c.Param("id"), req)
	if err != nil {
		apptError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelHandler handles PUT /api/appointments/:id/cancel, for either side.
func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	actorID := c.GetString("userID")
	if actorID == "" {
		actorID = c.GetString("professionalID")
	}

	appt, err := h.AppointmentService.Cancel(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		apptError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// MyAppointmentsHandler handles GET /api/appointments/mine for patients.
func (h *AppointmentHandler) MyAppointmentsHandler(c *gin.Context) {
	patientID := c.GetString("userID")

	appts, err := h.AppointmentService.ForPatient(c.Request.Context(), patientID)
	if err != nil {
		apptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ProfessionalAppointmentsHandler handles GET /api/appointments/schedule?status=.
func (h *AppointmentHandler) ProfessionalAppointmentsHandler(c *gin.Context) {
	profID := c.GetString("professionalID")

	var statuses []string
	if raw := c.Query("status"); raw != "" {
		statuses = strings.Split(raw, ",")
	}

	appts, err := h.AppointmentService.ForProfessional(c.Request.Context(), profID, statuses)
	if err != nil {
		apptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
