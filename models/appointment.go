package models

import "time"

// Appointment statuses. An appointment is "live" (occupies its slot) only
// while requested or approved; every other status releases the slot.
const (
	StatusRequested   = "requested"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusRescheduled = "rescheduled"
	StatusCompleted   = "completed"
	StatusCancelled   = "cancelled"
)

// SuggestedTime is one alternate slot proposed by a professional when
// rescheduling a request.
type SuggestedTime struct {
	Date string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time string `bson:"time" json:"time"` // "HH:MM", 24h
}

// Appointment represents one booking record. Records are never deleted;
// review and terminal outcomes mutate Status in place.
type Appointment struct {
	ID                string          `bson:"id" json:"id"`
	ProfessionalID    string          `bson:"professionalId" json:"professionalId"`
	PatientID         string          `bson:"patientId" json:"patientId"`
	OrganizationID    string          `bson:"organizationId,omitempty" json:"organizationId,omitempty"`
	AppointmentDate   string          `bson:"appointmentDate" json:"appointmentDate"` // day key "YYYY-MM-DD"
	AppointmentTime   string          `bson:"appointmentTime" json:"appointmentTime"` // slot start "HH:MM"
	Status            string          `bson:"status" json:"status"`
	Live              bool            `bson:"live" json:"-"` // mirrors Status; backs the unique slot index
	Reason            string          `bson:"reason,omitempty" json:"reason,omitempty"`
	RejectionReason   string          `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	SuggestedTimes    []SuggestedTime `bson:"suggestedTimes,omitempty" json:"suggestedTimes,omitempty"`
	ProfessionalNotes string          `bson:"professionalNotes,omitempty" json:"professionalNotes,omitempty"`
	PatientNotes      string          `bson:"patientNotes,omitempty" json:"patientNotes,omitempty"`
	CreatedAt         time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time       `bson:"updatedAt" json:"updatedAt"`
}
