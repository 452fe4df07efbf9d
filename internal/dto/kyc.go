package dto

import (
	"time"

	"github.com/primeblocks/investment-backend/internal/core/domain"
)

// SubmitKycRequest carries an identity verification submission.
type SubmitKycRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	IDType     string `json:"idType" binding:"required,oneof=national_id passport drivers_license"`
	IDNumber   string `json:"idNumber" binding:"required"`
	IDImageURL string `json:"idImageURL" binding:"omitempty,url"`
}

// KycResponse is the API representation of a verification record.
type KycResponse struct {
	VerificationID string     `json:"verificationID"`
	UserID         string     `json:"userID"`
	FullName       string     `json:"fullName"`
	IDType         string     `json:"idType"`
	IDNumber       string     `json:"idNumber"`
	IDImageURL     string     `json:"idImageURL,omitempty"`
	Status         string     `json:"status"`
	SubmittedAt    time.Time  `json:"submittedAt"`
	ReviewedAt     *time.Time `json:"reviewedAt,omitempty"`
}

// ToKycResponse converts a domain.KycVerification to its API representation.
func ToKycResponse(v *domain.KycVerification) KycResponse {
	return KycResponse{
		VerificationID: v.VerificationID,
		UserID:         v.UserID,
		FullName:       v.FullName,
		IDType:         string(v.IDType),
		IDNumber:       v.IDNumber,
		IDImageURL:     v.IDImageURL,
		Status:         string(v.Status),
		SubmittedAt:    v.SubmittedAt,
		ReviewedAt:     v.ReviewedAt,
	}
}

// ListKycResponse wraps a page of verification records.
type ListKycResponse struct {
	Verifications []KycResponse `json:"verifications"`
}

// ToListKycResponse converts domain verifications to the list DTO.
func ToListKycResponse(vs []domain.KycVerification) ListKycResponse {
	out := make([]KycResponse, len(vs))
	for i := range vs {
		out[i] = ToKycResponse(&vs[i])
	}
	return ListKycResponse{Verifications: out}
}

// ReviewKycRequest records an admin decision on a submission.
type ReviewKycRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
