package dto

// --- Job seeker onboarding ---

// SeekerStep1Request carries the personal-info step.
type SeekerStep1Request struct {
	FullName  string `json:"fullName" validate:"required,min=2"`
	JobTitle  string `json:"jobTitle"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
	Gender    string `json:"gender" validate:"omitempty,oneof=male female other"`
}

// SeekerStep2Request carries education and experience.
type SeekerStep2Request struct {
	YearsOfExperience int      `json:"yearsOfExperience" validate:"gte=0,lte=60"`
	Industry          string   `json:"industry"`
	Degree            string   `json:"degree"`
	University        string   `json:"university"`
	GraduationYear    int      `json:"graduationYear" validate:"omitempty,gte=1950,lte=2035"`
	WorkType          string   `json:"workType" validate:"omitempty,is-work-type"`
	WorkPlace         string   `json:"workPlace" validate:"omitempty,is-work-place"`
	Skills            []string `json:"skills"`
}

type SeekerProfileUpdateRequest struct {
	FullName  string `json:"fullName"`
	JobTitle  string `json:"jobTitle"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Industry  string `json:"industry"`
	WorkType  string `json:"workType" validate:"omitempty,is-work-type"`
	WorkPlace string `json:"workPlace" validate:"omitempty,is-work-place"`
}

type ToggleSavedJobRequest struct {
	JobID string `json:"jobId" validate:"required,uuid"`
}

// SeekerMeResponse groups the profile into the wizard's sections so the
// client can resume onboarding where the user left off.
type SeekerMeResponse struct {
	AccountID        string              `json:"accountId"`
	Email            string              `json:"email"`
	RegistrationStep int                 `json:"registrationStep"`
	Personal         SeekerPersonalInfo  `json:"personalInfo"`
	Education        SeekerEducationInfo `json:"educationInfo"`
	Cv               *SeekerCvInfo       `json:"cv,omitempty"`
	SavedJobs        []string            `json:"savedJobs"`
	Skills           []SeekerSkillInfo   `json:"skills"`
}

type SeekerPersonalInfo struct {
	FullName  string `json:"fullName"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

type SeekerEducationInfo struct {
	YearsOfExperience int    `json:"yearsOfExperience"`
	Industry          string `json:"industry,omitempty"`
	Degree            string `json:"degree,omitempty"`
	University        string `json:"university,omitempty"`
	GraduationYear    int    `json:"graduationYear,omitempty"`
	WorkType          string `json:"workType,omitempty"`
	WorkPlace         string `json:"workPlace,omitempty"`
}

type SeekerCvInfo struct {
	FileName       string `json:"fileName"`
	CvURL          string `json:"cvUrl"`
	AnalysisStatus string `json:"analysisStatus"`
	AtsScore       int    `json:"atsScore,omitempty"`
}

type SeekerSkillInfo struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// --- Company onboarding ---

type CompanyStep1Request struct {
	CompanyName string `json:"companyName" validate:"required,min=2"`
	CompanySize string `json:"companySize" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 500+"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	FoundedYear int    `json:"foundedYear" validate:"omitempty,gte=1800,lte=2035"`
}

type CompanyStep2Request struct {
	Description  string            `json:"companyDescription"`
	Website      string            `json:"website" validate:"omitempty,url"`
	Technologies []string          `json:"technologies"`
	Benefits     []string          `json:"benefits"`
	SocialLinks  map[string]string `json:"socialMedia"`
}

type CompanyProfileUpdateRequest struct {
	CompanyName  string            `json:"companyName"`
	CompanySize  string            `json:"companySize"`
	Industry     string            `json:"industry"`
	Location     string            `json:"location"`
	Website      string            `json:"website" validate:"omitempty,url"`
	Phone        string            `json:"phone"`
	Description  string            `json:"companyDescription"`
	Technologies []string          `json:"technologies"`
	Benefits     []string          `json:"benefits"`
	SocialLinks  map[string]string `json:"socialMedia"`
}

// CompanyPublicResponse is the company card shown to anonymous
// visitors; contact details stay private.
type CompanyPublicResponse struct {
	ID           string   `json:"id"`
	CompanyName  string   `json:"companyName"`
	Industry     string   `json:"industry,omitempty"`
	Location     string   `json:"location,omitempty"`
	CompanySize  string   `json:"companySize,omitempty"`
	Website      string   `json:"website,omitempty"`
	Description  string   `json:"companyDescription,omitempty"`
	LogoURL      string   `json:"logoUrl,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	IsVerified   bool     `json:"isVerified"`
	ActiveJobs   int64    `json:"activeJobs"`
}

// CompanyDashboardResponse aggregates the numbers shown on the company
// home screen.
type CompanyDashboardResponse struct {
	ActiveJobs        int64 `json:"activeJobs"`
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
	ProfileComplete   bool  `json:"profileComplete"`
	IsVerified        bool  `json:"isVerified"`
}
