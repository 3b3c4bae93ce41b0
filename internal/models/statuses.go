package models

type AccountRole string
type JobStatus string
type ApplicationStatus string
type CompanyVerificationStatus string
type DocumentStatus string
type TokenKind string

const (
	AccountRoleJobSeeker AccountRole = "job_seeker"
	AccountRoleCompany   AccountRole = "company"
	AccountRoleAdmin     AccountRole = "admin"

	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
	JobStatusArchived  JobStatus = "archived"

	ApplicationStatusSubmitted          ApplicationStatus = "submitted"
	ApplicationStatusUnderReview        ApplicationStatus = "under_review"
	ApplicationStatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationStatusAccepted           ApplicationStatus = "accepted"
	ApplicationStatusRejected           ApplicationStatus = "rejected"

	CompanyVerificationUnverified CompanyVerificationStatus = "unverified"
	CompanyVerificationInProgress CompanyVerificationStatus = "in_progress"
	CompanyVerificationVerified   CompanyVerificationStatus = "verified"
	CompanyVerificationRejected   CompanyVerificationStatus = "rejected"

	DocumentStatusPending     DocumentStatus = "pending"
	DocumentStatusUnderReview DocumentStatus = "under_review"
	DocumentStatusApproved    DocumentStatus = "approved"
	DocumentStatusRejected    DocumentStatus = "rejected"

	TokenKindEmailVerification TokenKind = "email_verification"
	TokenKindPasswordReset     TokenKind = "password_reset"
)

// ============================================================
// Display-label mapping tables.
//
// The UI vocabulary ("Active", "Hired", ...) differs from the stored
// enums. Both directions live here and nowhere else so handlers and
// services cannot drift apart.
// ============================================================

var jobStatusDisplay = map[JobStatus]string{
	JobStatusDraft:     "Draft",
	JobStatusPublished: "Active",
	JobStatusClosed:    "Closed",
	JobStatusArchived:  "Archived",
}

var jobStatusFromDisplay = map[string]JobStatus{
	"Draft":    JobStatusDraft,
	"Active":   JobStatusPublished,
	"Closed":   JobStatusClosed,
	"Archived": JobStatusArchived,
	// No paused state is persisted; pausing a job closes it.
	"Paused": JobStatusClosed,
}

// Display returns the user-facing label for a stored job status.
func (s JobStatus) Display() string {
	if label, ok := jobStatusDisplay[s]; ok {
		return label
	}
	return string(s)
}

// JobStatusFromDisplay maps a user-facing label back to the stored enum.
func JobStatusFromDisplay(label string) (JobStatus, bool) {
	s, ok := jobStatusFromDisplay[label]
	return s, ok
}

var applicationStatusDisplay = map[ApplicationStatus]string{
	ApplicationStatusSubmitted:          "New",
	ApplicationStatusUnderReview:        "Reviewing",
	ApplicationStatusInterviewScheduled: "Interviewed",
	ApplicationStatusAccepted:           "Hired",
	ApplicationStatusRejected:           "Rejected",
}

var applicationStatusFromDisplay = map[string]ApplicationStatus{
	"New":         ApplicationStatusSubmitted,
	"Reviewing":   ApplicationStatusUnderReview,
	"Interviewed": ApplicationStatusInterviewScheduled,
	"Hired":       ApplicationStatusAccepted,
	"Rejected":    ApplicationStatusRejected,
}

func (s ApplicationStatus) Display() string {
	if label, ok := applicationStatusDisplay[s]; ok {
		return label
	}
	return string(s)
}

func ApplicationStatusFromDisplay(label string) (ApplicationStatus, bool) {
	s, ok := applicationStatusFromDisplay[label]
	return s, ok
}

// ============================================================
// Company verification transition table.
// ============================================================

var companyVerificationTransitions = map[CompanyVerificationStatus][]CompanyVerificationStatus{
	CompanyVerificationUnverified: {CompanyVerificationInProgress},
	CompanyVerificationInProgress: {CompanyVerificationVerified, CompanyVerificationRejected},
	CompanyVerificationRejected:   {CompanyVerificationInProgress},
	// verified is terminal
	CompanyVerificationVerified: {},
}

// CanTransitionVerification reports whether the verification workflow
// allows moving a company from one status to another. Every write to
// CompanyProfile.VerificationStatus must pass this check first.
func CanTransitionVerification(from, to CompanyVerificationStatus) bool {
	for _, allowed := range companyVerificationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
