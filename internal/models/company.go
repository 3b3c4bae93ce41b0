package models

import (
	"time"

	"gorm.io/datatypes"
)

type CompanyProfile struct {
	BaseModel
	AccountID string `gorm:"type:uuid;uniqueIndex;not null" json:"accountId"`

	CompanyName string `gorm:"not null;index" json:"companyName"`
	CompanySize string `gorm:"type:varchar(20)" json:"companySize"`
	Industry    string `gorm:"index" json:"industry,omitempty"`
	Location    string `json:"location,omitempty"`
	Website     string `json:"website,omitempty"`
	Phone       string `json:"phone,omitempty"`
	FoundedYear int    `json:"foundedYear,omitempty"`
	Description string `json:"companyDescription,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`

	Technologies datatypes.JSONSlice[string] `json:"technologies,omitempty"`
	Benefits     datatypes.JSONSlice[string] `json:"benefits,omitempty"`
	SocialLinks  datatypes.JSONMap           `json:"socialMedia,omitempty"`

	// Verification workflow terminal state. Only the verification
	// service writes these, through the transition table.
	IsVerified           bool                      `gorm:"default:false;index" json:"isVerified"`
	VerificationStatus   CompanyVerificationStatus `gorm:"type:varchar(20);default:'unverified'" json:"verificationStatus"`
	VerificationProgress int                       `gorm:"default:0" json:"verificationProgress"`
}

// VerificationDocument is an uploaded proof-of-authenticity file. At most
// one live (pending) document exists per company; a new upload supersedes
// older pending or rejected ones.
type VerificationDocument struct {
	BaseModel
	CompanyID string `gorm:"type:uuid;not null;index" json:"companyId"`

	DocumentType string `gorm:"type:varchar(50);not null" json:"documentType"`
	FileName     string `gorm:"not null" json:"fileName"`
	FilePath     string `gorm:"not null" json:"filePath"`
	FileType     string `gorm:"type:varchar(10);default:'pdf'" json:"fileType"`
	FileSize     int64  `json:"fileSize"`

	Status          DocumentStatus `gorm:"type:varchar(20);default:'pending';index" json:"verificationStatus"`
	RejectionReason string         `json:"rejectionReason,omitempty"`
	ReviewedBy      string         `gorm:"type:uuid" json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewedAt,omitempty"`
}
