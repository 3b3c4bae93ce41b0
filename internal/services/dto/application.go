package dto

import "time"

type ApplyRequest struct {
	JobID       string `json:"jobId" validate:"required,uuid"`
	CoverLetter string `json:"coverLetter"`
}

type UpdateApplicationStatusRequest struct {
	// Status accepts the display vocabulary ("Reviewing", "Hired", ...).
	Status string `json:"status" validate:"required,is-application-status"`
}

// ApplicationResponse is the seeker-facing view of an application.
type ApplicationResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	JobTitle    string    `json:"jobTitle"`
	CompanyName string    `json:"companyName"`
	CompanyLogo string    `json:"companyLogo,omitempty"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"appliedAt"`
}

// CandidateResponse is the company-facing view: the application plus the
// candidate details the recruiter needs to make contact.
type CandidateResponse struct {
	ID            string    `json:"id"`
	JobID         string    `json:"jobId"`
	CandidateName string    `json:"candidateName"`
	Position      string    `json:"position,omitempty"`
	Location      string    `json:"location,omitempty"`
	Experience    int       `json:"yearsOfExperience"`
	Status        string    `json:"status"`
	CoverLetter   string    `json:"coverLetter,omitempty"`
	ResumeURL     string    `json:"resumeUrl"`
	AppliedAt     time.Time `json:"appliedAt"`
}
