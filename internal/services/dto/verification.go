package dto

import "time"

type ReviewDocumentRequest struct {
	// Status must be "approved" or "rejected".
	Status          string `json:"status" validate:"required,oneof=approved rejected"`
	RejectionReason string `json:"rejectionReason"`
}

type VerificationStatusResponse struct {
	Status     string                        `json:"verificationStatus"`
	Progress   int                           `json:"verificationProgress"`
	IsVerified bool                          `json:"isVerified"`
	Document   *VerificationDocumentResponse `json:"document,omitempty"`
}

type VerificationDocumentResponse struct {
	ID              string     `json:"id"`
	DocumentType    string     `json:"documentType"`
	FileName        string     `json:"fileName"`
	Status          string     `json:"verificationStatus"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	UploadedAt      time.Time  `json:"uploadedAt"`
}

// PendingReviewResponse is the admin queue row.
type PendingReviewResponse struct {
	DocumentID   string    `json:"documentId"`
	CompanyID    string    `json:"companyId"`
	CompanyName  string    `json:"companyName"`
	DocumentType string    `json:"documentType"`
	FileName     string    `json:"fileName"`
	FilePath     string    `json:"filePath"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
