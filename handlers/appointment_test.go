package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"carelink/models"
	appointmentService "carelink/services/appointment"
	"carelink/services/scheduling"
)

type stubAppointmentService struct {
	days []scheduling.DaySlots
	err  error
}

func (s *stubAppointmentService) AvailableSlots(ctx context.Context, professionalID, startDate, endDate string) ([]scheduling.DaySlots, error) {
	return s.days, s.err
}

func (s *stubAppointmentService) Book(ctx context.Context, patientID string, req appointmentService.BookingRequest) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) Approve(ctx context.Context, professionalID, appointmentID, notes string) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) Reject(ctx context.Context, professionalID, appointmentID, reason string) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) Reschedule(ctx context.Context, professionalID, appointmentID string, suggested []models.SuggestedTime) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) Complete(ctx context.Context, professionalID, appointmentID string) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) AcceptReschedule(ctx context.Context, patientID, appointmentID string, chosen models.SuggestedTime) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) Cancel(ctx context.Context, actorID, appointmentID string) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) ForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) ForProfessional(ctx context.Context, professionalID string, statuses []string) ([]models.Appointment, error) {
	return nil, nil
}

func slotsRouter(svc appointmentService.AppointmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &AppointmentHandler{AppointmentService: svc}
	r.GET("/api/professionals/:id/slots", h.SlotsHandler)
	return r
}

// The slot query responds with the day list itself, not a wrapper object.
func TestSlotsHandlerReturnsBareArray(t *testing.T) {
	svc := &stubAppointmentService{days: []scheduling.DaySlots{
		{Date: "2026-09-07", AvailableTimes: []string{"09:00", "09:30"}},
	}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/professionals/pro-1/slots?startDate=2026-09-07&endDate=2026-09-08", nil)
	slotsRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got []scheduling.DaySlots
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not a JSON array: %v (body %s)", err, w.Body.String())
	}
	if len(got) != 1 || got[0].Date != "2026-09-07" || len(got[0].AvailableTimes) != 2 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestSlotsHandlerEmptyRangeIsEmptyArray(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/professionals/pro-1/slots?startDate=2026-09-07&endDate=2026-09-08", nil)
	slotsRouter(&stubAppointmentService{}).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("empty range body = %s, want []", body)
	}
}
