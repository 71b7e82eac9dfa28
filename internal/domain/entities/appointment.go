package entities

import (
	"strings"
	"time"
)

// ContactInfo is the patient block of the booking form.
type ContactInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Insurance string `json:"insurance"`
	Reason    string `json:"reason"`
}

// FullName joins first and last name.
func (c ContactInfo) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// AppointmentDraft is the working state of the booking page. It is a value:
// every user action produces a new draft and the zero value is the empty
// initial state.
type AppointmentDraft struct {
	DoctorID int         `json:"doctor_id,omitempty"`
	Date     string      `json:"date"`
	Time     string      `json:"time"`
	Type     string      `json:"type"`
	Contact  ContactInfo `json:"contact"`
}

// Required booking fields, in the order they are reported.
const (
	FieldDoctor = "doctor"
	FieldDate   = "date"
	FieldTime   = "time"
	FieldType   = "type"
)

// WithDoctor returns a copy of d with the doctor selected.
func (d AppointmentDraft) WithDoctor(id int) AppointmentDraft {
	d.DoctorID = id
	return d
}

// WithDate returns a copy of d with the date selected.
func (d AppointmentDraft) WithDate(date string) AppointmentDraft {
	d.Date = strings.TrimSpace(date)
	return d
}

// WithTime returns a copy of d with the time slot selected.
func (d AppointmentDraft) WithTime(slot string) AppointmentDraft {
	d.Time = strings.TrimSpace(slot)
	return d
}

// WithType returns a copy of d with the appointment type selected.
func (d AppointmentDraft) WithType(typeID string) AppointmentDraft {
	d.Type = strings.TrimSpace(typeID)
	return d
}

// WithContact returns a copy of d with the contact block replaced.
func (d AppointmentDraft) WithContact(c ContactInfo) AppointmentDraft {
	d.Contact = c
	return d
}

// HasDoctor reports whether a doctor is selected.
func (d AppointmentDraft) HasDoctor() bool {
	return d.DoctorID > 0
}

// MissingFields lists the required fields that are still empty.
func (d AppointmentDraft) MissingFields() []string {
	var missing []string
	if !d.HasDoctor() {
		missing = append(missing, FieldDoctor)
	}
	if strings.TrimSpace(d.Date) == "" {
		missing = append(missing, FieldDate)
	}
	if strings.TrimSpace(d.Time) == "" {
		missing = append(missing, FieldTime)
	}
	if strings.TrimSpace(d.Type) == "" {
		missing = append(missing, FieldType)
	}
	return missing
}

// Reset returns the empty initial draft.
func (d AppointmentDraft) Reset() AppointmentDraft {
	return AppointmentDraft{}
}

// IsEmpty reports whether d equals the initial empty draft.
func (d AppointmentDraft) IsEmpty() bool {
	return d == AppointmentDraft{}
}

// AppointmentConfirmation is the canned result of a simulated booking.
type AppointmentConfirmation struct {
	Reference   string          `json:"reference"`
	Doctor      Doctor          `json:"doctor"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Type        AppointmentType `json:"type"`
	PatientName string          `json:"patient_name,omitempty"`
	ConfirmedAt time.Time       `json:"confirmed_at"`
}
