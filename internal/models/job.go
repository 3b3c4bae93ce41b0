package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	CompanyID string `gorm:"type:uuid;not null;index" json:"companyId"`

	Title    string `gorm:"not null;index" json:"title"`
	Location string `gorm:"not null;index" json:"location"`

	Type            string `gorm:"type:varchar(20);not null" json:"type"`
	WorkPlace       string `gorm:"type:varchar(20);default:'on_site'" json:"workPlace"`
	ExperienceLevel string `gorm:"type:varchar(20)" json:"experienceLevel"`

	Description  string `gorm:"not null" json:"description"`
	Requirements string `json:"requirements,omitempty"`
	Benefits     string `json:"benefits,omitempty"`

	SalaryMin float64 `json:"salaryMin,omitempty"`
	SalaryMax float64 `json:"salaryMax,omitempty"`
	Currency  string  `gorm:"type:varchar(10);default:'USD'" json:"currency"`

	Skills datatypes.JSONSlice[string] `json:"skills"`

	Status   JobStatus `gorm:"type:varchar(20);default:'published';index" json:"status"`
	IsActive bool      `gorm:"default:true" json:"isActive"`
	PostedAt time.Time `json:"postedDate"`

	Company *CompanyProfile `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// Application links a seeker to a job. The composite unique index is the
// duplicate-apply guard: apply is an atomic insert, and a conflict on
// this index is what turns into the 409.
type Application struct {
	BaseModel
	JobID    string `gorm:"type:uuid;not null;uniqueIndex:idx_app_job_seeker" json:"jobId"`
	SeekerID string `gorm:"type:uuid;not null;uniqueIndex:idx_app_job_seeker" json:"seekerId"`

	Status      ApplicationStatus `gorm:"type:varchar(30);default:'submitted'" json:"status"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	ResumeURL   string            `gorm:"not null" json:"resumeUrl"`
	AppliedAt   time.Time         `json:"appliedAt"`

	Job    *Job              `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Seeker *JobSeekerProfile `gorm:"foreignKey:SeekerID" json:"seeker,omitempty"`
}
