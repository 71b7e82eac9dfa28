package entities

import "slices"

// Doctor is a bookable clinician from the static directory.
type Doctor struct {
	ID              int      `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Specialty       string   `json:"specialty" yaml:"specialty"`
	Rating          float64  `json:"rating" yaml:"rating"`
	Reviews         int      `json:"reviews" yaml:"reviews"`
	ExperienceYears int      `json:"experience_years" yaml:"experience_years"`
	Location        string   `json:"location" yaml:"location"`
	Avatar          string   `json:"avatar" yaml:"avatar"`
	AvailableSlots  []string `json:"available_slots" yaml:"available_slots"`
	NextAvailable   string   `json:"next_available" yaml:"next_available"`
}

// Clone returns a copy of d that shares no memory with it.
func (d Doctor) Clone() Doctor {
	d.AvailableSlots = slices.Clone(d.AvailableSlots)
	return d
}

// AppointmentType is a kind of visit a patient can book.
type AppointmentType struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Duration string `json:"duration" yaml:"duration"`
}
