package dto

import "time"

type CreateJobRequest struct {
	Title           string   `json:"title" validate:"required,min=3"`
	Location        string   `json:"location" validate:"required"`
	Type            string   `json:"type" validate:"required,is-work-type"`
	WorkPlace       string   `json:"workPlace" validate:"omitempty,is-work-place"`
	ExperienceLevel string   `json:"experienceLevel" validate:"omitempty,oneof=intern junior middle senior lead"`
	Description     string   `json:"description" validate:"required,min=10"`
	Requirements    string   `json:"requirements"`
	Benefits        string   `json:"benefits"`
	SalaryMin       float64  `json:"salaryMin" validate:"gte=0"`
	SalaryMax       float64  `json:"salaryMax" validate:"gte=0"`
	Currency        string   `json:"currency"`
	Skills          []string `json:"skills"`
	// Status accepts the display vocabulary ("Draft", "Active").
	Status string `json:"status" validate:"omitempty,is-job-status"`
}

type UpdateJobRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=3"`
	Location        *string  `json:"location"`
	Type            *string  `json:"type" validate:"omitempty,is-work-type"`
	WorkPlace       *string  `json:"workPlace" validate:"omitempty,is-work-place"`
	ExperienceLevel *string  `json:"experienceLevel" validate:"omitempty,oneof=intern junior middle senior lead"`
	Description     *string  `json:"description" validate:"omitempty,min=10"`
	Requirements    *string  `json:"requirements"`
	Benefits        *string  `json:"benefits"`
	SalaryMin       *float64 `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax       *float64 `json:"salaryMax" validate:"omitempty,gte=0"`
	Currency        *string  `json:"currency"`
	Skills          []string `json:"skills"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,is-job-status"`
}

// JobResponse is the public job card. Status carries the display label.
type JobResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	CompanyName     string    `json:"companyName"`
	CompanyLogo     string    `json:"companyLogo,omitempty"`
	IsVerified      bool      `json:"isVerifiedCompany"`
	Location        string    `json:"location"`
	Type            string    `json:"type"`
	WorkPlace       string    `json:"workPlace"`
	ExperienceLevel string    `json:"experienceLevel,omitempty"`
	Description     string    `json:"description"`
	Requirements    string    `json:"requirements,omitempty"`
	Benefits        string    `json:"benefits,omitempty"`
	SalaryMin       float64   `json:"salaryMin,omitempty"`
	SalaryMax       float64   `json:"salaryMax,omitempty"`
	Currency        string    `json:"currency"`
	Skills          []string  `json:"skills"`
	Status          string    `json:"status"`
	PostedAt        time.Time `json:"postedDate"`
	Applicants      int64     `json:"applicants,omitempty"`
}

type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Total int64         `json:"total"`
}

type JobListQuery struct {
	Search    string `form:"search"`
	Location  string `form:"location"`
	Type      string `form:"type" validate:"omitempty,is-work-type"`
	WorkPlace string `form:"workPlace" validate:"omitempty,is-work-place"`
	Limit     int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset    int    `form:"offset" validate:"omitempty,gte=0"`
}
