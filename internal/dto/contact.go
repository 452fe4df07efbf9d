package dto

// ContactRequest is a support form submission.
type ContactRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Subject  string `json:"subject" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// ContactResponse reports whether the inquiry was relayed or only queued.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
