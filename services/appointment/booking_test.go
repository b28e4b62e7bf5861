package appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"carelink/models"
)

// fakeApptRepo is an in-memory AppointmentRepository that mimics the unique
// live-slot index: inserting a second live record for the same slot fails
// with a duplicate key error, exactly like Mongo would.
type fakeApptRepo struct {
	appts map[string]*models.Appointment
	// hideFromList suppresses listing results, simulating the window where
	// a concurrent insert is not yet visible to the pre-check.
	hideFromList bool
	nextID       int
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appts: make(map[string]*models.Appointment)}
}

func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key"}}}
}

func (f *fakeApptRepo) slotHeld(professionalID, date, timeStr, excludeID string) bool {
	for _, a := range f.appts {
		if a.ID == excludeID {
			continue
		}
		if a.Live && a.ProfessionalID == professionalID && a.AppointmentDate == date && a.AppointmentTime == timeStr {
			return true
		}
	}
	return false
}

func (f *fakeApptRepo) Create(ctx context.Context, appt *models.Appointment) error {
	if appt.Live && f.slotHeld(appt.ProfessionalID, appt.AppointmentDate, appt.AppointmentTime, "") {
		return duplicateKeyErr()
	}
	if appt.ID == "" {
		f.nextID++
		appt.ID = fmt.Sprintf("appt-%d", f.nextID)
	}
	cp := *appt
	f.appts[appt.ID] = &cp
	return nil
}

func (f *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	a, ok := f.appts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *a
	return &cp, nil
}

func (f *fakeApptRepo) Update(ctx context.Context, appt *models.Appointment) error {
	if _, ok := f.appts[appt.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	if appt.Live && f.slotHeld(appt.ProfessionalID, appt.AppointmentDate, appt.AppointmentTime, appt.ID) {
		return duplicateKeyErr()
	}
	cp := *appt
	f.appts[appt.ID] = &cp
	return nil
}

func (f *fakeApptRepo) ListLiveByProfessionalRange(ctx context.Context, professionalID, startDate, endDate string) ([]models.Appointment, error) {
	if f.hideFromList {
		return nil, nil
	}
	var out []models.Appointment
	for _, a := range f.appts {
		if a.Live && a.ProfessionalID == professionalID && a.AppointmentDate >= startDate && a.AppointmentDate <= endDate {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) ListByProfessional(ctx context.Context, professionalID string, statuses []string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ProfessionalID == professionalID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) ListApprovedBefore(ctx context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.Status == models.StatusApproved && a.AppointmentDate < date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) EnsureIndexes() error { return nil }

// fakeProfRepo serves a single professional with no configured availability.
type fakeProfRepo struct{ prof models.Professional }

func (f *fakeProfRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	if id != f.prof.ID {
		return nil, mongo.ErrNoDocuments
	}
	cp := f.prof
	return &cp, nil
}

func (f *fakeProfRepo) Create(ctx context.Context, p *models.Professional) error { return nil }
func (f *fakeProfRepo) GetByEmail(ctx context.Context, email string) (*models.Professional, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeProfRepo) GetByTokenHash(ctx context.Context, h string) (*models.Professional, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeProfRepo) Update(ctx context.Context, id string, u map[string]interface{}) error {
	return nil
}
func (f *fakeProfRepo) UpdateAvailability(ctx context.Context, id string, wa models.WeeklyAvailability) error {
	return nil
}
func (f *fakeProfRepo) SetTokenHash(ctx context.Context, id, h string) error          { return nil }
func (f *fakeProfRepo) SetPasswordHash(ctx context.Context, id, h string) error       { return nil }
func (f *fakeProfRepo) Delete(ctx context.Context, id string) error                   { return nil }
func (f *fakeProfRepo) AddOrganization(ctx context.Context, id, orgID string) error   { return nil }
func (f *fakeProfRepo) EnsureIndexes() error                                          { return nil }
func (f *fakeProfRepo) Search(ctx context.Context, q, s string, l int64) ([]models.Professional, error) {
	return nil, nil
}

func newTestService() (*DefaultAppointmentService, *fakeApptRepo) {
	repo := newFakeApptRepo()
	svc := &DefaultAppointmentService{
		Repo:             repo,
		ProfessionalRepo: &fakeProfRepo{prof: models.Professional{ID: "prof-1", Name: "Dr. Achieng"}},
	}
	return svc, repo
}

// Monday 2026-03-02 at 09:30 under the default template.
var testBooking = BookingRequest{
	ProfessionalID:  "prof-1",
	AppointmentDate: "2026-03-02",
	AppointmentTime: "09:30",
	Reason:          "follow-up",
}

func TestBookHappyPath(t *testing.T) {
	svc, _ := newTestService()

	appt, err := svc.Book(context.Background(), "patient-1", testBooking)
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if appt.Status != models.StatusRequested || !appt.Live {
		t.Fatalf("expected live requested appointment, got %s live=%v", appt.Status, appt.Live)
	}
	if appt.ID == "" {
		t.Fatal("expected an assigned appointment ID")
	}
}

func TestBookRejectsInvalidSlot(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []BookingRequest{
		{ProfessionalID: "prof-1", AppointmentDate: "not-a-date", AppointmentTime: "09:30"},
		{ProfessionalID: "prof-1", AppointmentDate: "2026-03-02", AppointmentTime: "9:30"},
		{ProfessionalID: "prof-1", AppointmentDate: "2026-03-02", AppointmentTime: "09:45"},
		{ProfessionalID: "prof-1", AppointmentDate: "2026-03-02", AppointmentTime: "09:0a"},
	}
	for _, req := range cases {
		if _, err := svc.Book(ctx, "patient-1", req); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Book(%q %q): expected ErrInvalidInput, got %v", req.AppointmentDate, req.AppointmentTime, err)
		}
	}
}

func TestBookSameSlotTwiceRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Book(ctx, "patient-1", testBooking); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := svc.Book(ctx, "patient-2", testBooking); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("second booking: expected ErrSlotTaken, got %v", err)
	}
}

func TestBookRaceSettledByUniqueIndex(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.Book(ctx, "patient-1", testBooking); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// Hide the first booking from the pre-check, as a concurrent insert
	// would be. The insert must still fail, mapped to ErrSlotTaken.
	repo.hideFromList = true
	if _, err := svc.Book(ctx, "patient-2", testBooking); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("racing booking: expected ErrSlotTaken, got %v", err)
	}
}

func TestBookAfterSlotFreed(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Book(ctx, "patient-1", testBooking)
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := svc.Reject(ctx, "prof-1", first.ID, "out of office"); err != nil {
		t.Fatalf("reject: %v", err)
	}

	if _, err := svc.Book(ctx, "patient-2", testBooking); err != nil {
		t.Fatalf("rebooking a freed slot: %v", err)
	}
}
