package domain

import "time"

// KycStatus is the review state of an identity verification.
type KycStatus string

const (
	KycUnderReview KycStatus = "under_review"
	KycApproved    KycStatus = "approved"
	KycRejected    KycStatus = "rejected"
)

// KycIDType enumerates accepted identity document kinds.
type KycIDType string

const (
	KycNationalID     KycIDType = "national_id"
	KycPassport       KycIDType = "passport"
	KycDriversLicense KycIDType = "drivers_license"
)

// KycVerification is one investor's identity submission. Resubmission replaces
// the existing record and resets the status to under_review.
type KycVerification struct {
	VerificationID string     `json:"verificationID"`
	UserID         string     `json:"userID"`
	FullName       string     `json:"fullName"`
	IDType         KycIDType  `json:"idType"`
	IDNumber       string     `json:"idNumber"`
	IDImageURL     string     `json:"idImageURL,omitempty"`
	Status         KycStatus  `json:"status"`
	SubmittedAt    time.Time  `json:"submittedAt"`
	ReviewedAt     *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy     *string    `json:"reviewedBy,omitempty"`
}
