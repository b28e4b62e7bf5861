package appointment

import (
	"context"
	"errors"
	"testing"
)

func TestAvailableSlotsSubtractsBookings(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Book(ctx, "patient-1", testBooking); err != nil {
		t.Fatalf("Book: %v", err)
	}

	days, err := svc.AvailableSlots(ctx, "prof-1", "2026-03-02", "2026-03-02")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(days) != 1 || days[0].Date != "2026-03-02" {
		t.Fatalf("unexpected days: %v", days)
	}
	for _, ts := range days[0].AvailableTimes {
		if ts == "09:30" {
			t.Fatal("booked slot still offered")
		}
	}
}

func TestAvailableSlotsValidatesRange(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := [][2]string{
		{"2026-03-10", "2026-03-02"}, // inverted
		{"03/02/2026", "2026-03-05"}, // wrong format
		{"2026-01-01", "2026-12-31"}, // too wide
	}
	for _, c := range cases {
		if _, err := svc.AvailableSlots(ctx, "prof-1", c[0], c[1]); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("AvailableSlots(%s, %s): expected ErrInvalidInput, got %v", c[0], c[1], err)
		}
	}
}

func TestAvailableSlotsUnknownProfessional(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.AvailableSlots(context.Background(), "prof-404", "2026-03-02", "2026-03-02"); err == nil {
		t.Fatal("expected error for unknown professional")
	}
}
