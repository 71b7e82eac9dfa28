package entities

import "slices"

// Dashboard tabs.
const (
	DashboardTabOverview      = "overview"
	DashboardTabAppointments  = "appointments"
	DashboardTabConsultations = "consultations"
)

// DashboardTab is a tab on the dashboard.
type DashboardTab struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// UpcomingAppointment is a sample appointment shown on the dashboard.
type UpcomingAppointment struct {
	ID        int    `json:"id" yaml:"id"`
	Doctor    string `json:"doctor" yaml:"doctor"`
	Specialty string `json:"specialty" yaml:"specialty"`
	Date      string `json:"date" yaml:"date"`
	Time      string `json:"time" yaml:"time"`
	Location  string `json:"location" yaml:"location"`
	Type      string `json:"type" yaml:"type"`
}

// Consultation is a sample past symptom check shown on the dashboard.
type Consultation struct {
	ID              int    `json:"id" yaml:"id"`
	Date            string `json:"date" yaml:"date"`
	Symptoms        string `json:"symptoms" yaml:"symptoms"`
	AIAnalysis      string `json:"ai_analysis" yaml:"ai_analysis"`
	Recommendations string `json:"recommendations" yaml:"recommendations"`
	Status          string `json:"status" yaml:"status"`
}

// HealthMetric is a dashboard summary tile.
type HealthMetric struct {
	Label  string `json:"label" yaml:"label"`
	Value  string `json:"value" yaml:"value"`
	Change string `json:"change" yaml:"change"`
}

// Dashboard is the sample patient dashboard.
type Dashboard struct {
	Tabs                 []DashboardTab        `json:"tabs" yaml:"tabs"`
	UpcomingAppointments []UpcomingAppointment `json:"upcoming_appointments" yaml:"upcoming_appointments"`
	RecentConsultations  []Consultation        `json:"recent_consultations" yaml:"recent_consultations"`
	HealthMetrics        []HealthMetric        `json:"health_metrics" yaml:"health_metrics"`
}

// HasTab reports whether id names one of the dashboard tabs.
func (d Dashboard) HasTab(id string) bool {
	for _, t := range d.Tabs {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a copy of d that shares no memory with it.
func (d Dashboard) Clone() Dashboard {
	d.Tabs = slices.Clone(d.Tabs)
	d.UpcomingAppointments = slices.Clone(d.UpcomingAppointments)
	d.RecentConsultations = slices.Clone(d.RecentConsultations)
	d.HealthMetrics = slices.Clone(d.HealthMetrics)
	return d
}
