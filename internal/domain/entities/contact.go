package entities

import "time"

// ContactMessage is a submission of the contact form. It is validated and
// acknowledged but never stored.
type ContactMessage struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Subject     string    `json:"subject" validate:"max=200"`
	Message     string    `json:"message" validate:"required,max=5000"`
	Category    string    `json:"category"`
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
}

// ContactChannel is one way of reaching the support team.
type ContactChannel struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Details     string `json:"details" yaml:"details"`
	Description string `json:"description" yaml:"description"`
}
