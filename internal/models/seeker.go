package models

import (
	"time"

	"gorm.io/datatypes"
)

// JobSeekerProfile is the seeker-side extension of an Account, filled in
// across the onboarding wizard (step1 personal, step2 education, step3 CV).
type JobSeekerProfile struct {
	BaseModel
	AccountID string `gorm:"type:uuid;uniqueIndex;not null" json:"accountId"`

	FullName string `gorm:"not null" json:"fullName"`
	JobTitle string `gorm:"index" json:"jobTitle,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `gorm:"index" json:"location,omitempty"`

	BirthDate         *time.Time `json:"birthDate,omitempty"`
	Gender            string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	YearsOfExperience int        `gorm:"default:0" json:"yearsOfExperience"`
	Industry          string     `json:"industry,omitempty"`

	Degree         string `json:"degree,omitempty"`
	University     string `json:"university,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty"`

	WorkType  string `gorm:"type:varchar(20)" json:"workType,omitempty"`
	WorkPlace string `gorm:"type:varchar(20)" json:"workPlace,omitempty"`

	SavedJobs datatypes.JSONSlice[string] `json:"savedJobs"`

	// AI-generated data with no fixed schema.
	PersonalityProfile datatypes.JSONMap `json:"personalityProfile,omitempty"`
}

// CvUpload records one uploaded CV file and the (optional) analysis run
// against it. getMe reports the newest row per seeker.
type CvUpload struct {
	BaseModel
	SeekerID string `gorm:"type:uuid;not null;index:idx_cv_seeker_created" json:"seekerId"`

	FileName string `gorm:"not null" json:"fileName"`
	FilePath string `gorm:"not null" json:"filePath"`
	FileType string `gorm:"type:varchar(10)" json:"fileType"`
	FileSize int64  `json:"fileSize"`

	UploadStatus   string `gorm:"type:varchar(20);default:'uploaded'" json:"uploadStatus"`
	AnalysisStatus string `gorm:"type:varchar(20);default:'pending'" json:"analysisStatus"`

	AnalysisScores datatypes.JSONMap           `json:"analysisScores,omitempty"`
	AtsScore       int                         `json:"atsScore,omitempty"`
	Strengths      datatypes.JSONSlice[string] `json:"strengths,omitempty"`
	Improvements   datatypes.JSONSlice[string] `json:"improvementSuggestions,omitempty"`
	AnalyzedAt     *time.Time                  `json:"analyzedAt,omitempty"`
}
