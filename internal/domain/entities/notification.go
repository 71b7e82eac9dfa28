package entities

import "time"

// NotificationVariant selects the toast styling.
type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

// Notification is a transient message shown to the visitor as a toast.
type Notification struct {
	ID          string              `json:"id,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
	CreatedAt   time.Time           `json:"created_at,omitempty"`
}

// IsZero reports whether n carries no message.
func (n Notification) IsZero() bool {
	return n.Title == "" && n.Description == ""
}

// NewNotification builds a default-variant notification.
func NewNotification(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: NotificationDefault}
}

// NewErrorNotification builds a destructive-variant notification.
func NewErrorNotification(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: NotificationDestructive}
}
