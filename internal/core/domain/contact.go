package domain

import "time"

// ContactMessage is a durable record of a support inquiry. It is written
// before any email relay attempt so a delivery failure never loses the
// message.
type ContactMessage struct {
	MessageID string    `json:"messageID"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	EmailSent bool      `json:"emailSent"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactSubjects maps form subject categories to their display names.
var ContactSubjects = map[string]string{
	"general":    "General Inquiry",
	"complaint":  "Complaint",
	"account":    "Account Issue",
	"withdrawal": "Withdrawal Issue",
	"deposit":    "Deposit Issue",
}

// SubjectDisplay returns the display name for a subject category, falling
// back to the raw value for unknown categories.
func SubjectDisplay(subject string) string {
	if name, ok := ContactSubjects[subject]; ok {
		return name
	}
	return subject
}
