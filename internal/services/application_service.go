package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"careerpro_backend/internal/models"
	"careerpro_backend/internal/repositories"
	"careerpro_backend/internal/services/dto"
	"careerpro_backend/pkg/apperrors"
)

type ApplicationService interface {
	// Apply submits an application. Duplicate submissions hit the unique
	// index and come back as a conflict; there is no check-then-create
	// window.
	Apply(ctx context.Context, seekerID string, req dto.ApplyRequest) (*models.Application, error)
	ListForSeeker(ctx context.Context, seekerID string) ([]dto.ApplicationResponse, error)
	Withdraw(ctx context.Context, seekerID, applicationID string) error
	ListForJob(ctx context.Context, companyID, jobID string) ([]dto.CandidateResponse, error)
	// ListForCompany returns candidates across all of the company's jobs.
	ListForCompany(ctx context.Context, companyID string) ([]dto.CandidateResponse, error)
	UpdateStatus(ctx context.Context, companyID, applicationID string, req dto.UpdateApplicationStatusRequest) (*dto.CandidateResponse, error)
}

type applicationServiceImpl struct {
	applications repositories.ApplicationRepository
	jobs         repositories.JobRepository
	seekers      repositories.SeekerRepository
}

func NewApplicationService(
	applications repositories.ApplicationRepository,
	jobs repositories.JobRepository,
	seekers repositories.SeekerRepository,
) ApplicationService {
	return &applicationServiceImpl{
		applications: applications,
		jobs:         jobs,
		seekers:      seekers,
	}
}

func (s *applicationServiceImpl) Apply(ctx context.Context, seekerID string, req dto.ApplyRequest) (*models.Application, error) {
	job, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.Translate(err)
	}
	if job.Status != models.JobStatusPublished || !job.IsActive {
		return nil, apperrors.ErrJobNotFound
	}

	seeker, err := s.seekers.GetByID(ctx, seekerID)
	if err != nil {
		return nil, apperrors.ErrProfileNotFound
	}

	cv, err := s.seekers.GetLatestCv(ctx, seeker.ID)
	if err != nil {
		return nil, apperrors.ErrProfileIncomplete
	}

	app := &models.Application{
		JobID:       job.ID,
		SeekerID:    seeker.ID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   cv.FilePath,
		Status:      models.ApplicationStatusSubmitted,
		AppliedAt:   time.Now(),
	}
	if err := s.applications.Create(ctx, app); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.Translate(err)
	}
	return app, nil
}

func (s *applicationServiceImpl) ListForSeeker(ctx context.Context, seekerID string) ([]dto.ApplicationResponse, error) {
	apps, err := s.applications.ListBySeeker(ctx, seekerID)
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp := dto.ApplicationResponse{
			ID:        app.ID,
			JobID:     app.JobID,
			Status:    app.Status.Display(),
			AppliedAt: app.AppliedAt,
		}
		if app.Job != nil {
			resp.JobTitle = app.Job.Title
			resp.Location = app.Job.Location
			if app.Job.Company != nil {
				resp.CompanyName = app.Job.Company.CompanyName
				resp.CompanyLogo = app.Job.Company.LogoURL
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *applicationServiceImpl) Withdraw(ctx context.Context, seekerID, applicationID string) error {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.Translate(err)
	}
	if app.SeekerID != seekerID {
		return apperrors.ErrApplicationNotOwned
	}
	if err := s.applications.Delete(ctx, app.ID); err != nil {
		return apperrors.Translate(err)
	}
	return nil
}

func (s *applicationServiceImpl) ListForJob(ctx context.Context, companyID, jobID string) ([]dto.CandidateResponse, error) {
	// Ownership gate before any applicant data is read.
	if _, err := s.jobs.GetOwned(ctx, jobID, companyID); err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.Translate(err)
	}

	apps, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	out := make([]dto.CandidateResponse, 0, len(apps))
	for i := range apps {
		out = append(out, toCandidateResponse(&apps[i]))
	}
	return out, nil
}

func (s *applicationServiceImpl) ListForCompany(ctx context.Context, companyID string) ([]dto.CandidateResponse, error) {
	jobs, err := s.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	out := []dto.CandidateResponse{}
	for _, job := range jobs {
		apps, err := s.applications.ListByJob(ctx, job.ID)
		if err != nil {
			return nil, apperrors.Translate(err)
		}
		for i := range apps {
			out = append(out, toCandidateResponse(&apps[i]))
		}
	}
	return out, nil
}

func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, companyID, applicationID string, req dto.UpdateApplicationStatusRequest) (*dto.CandidateResponse, error) {
	status, ok := models.ApplicationStatusFromDisplay(req.Status)
	if !ok {
		return nil, apperrors.NewBadRequestError("unknown application status " + req.Status)
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.Translate(err)
	}

	// Only the company owning the job may move the application.
	if app.Job == nil || app.Job.CompanyID != companyID {
		return nil, apperrors.ErrApplicationNotOwned
	}

	app.Status = status
	if err := s.applications.Update(ctx, app); err != nil {
		return nil, apperrors.Translate(err)
	}

	resp := toCandidateResponse(app)
	return &resp, nil
}

func toCandidateResponse(app *models.Application) dto.CandidateResponse {
	resp := dto.CandidateResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		Status:      app.Status.Display(),
		CoverLetter: app.CoverLetter,
		ResumeURL:   app.ResumeURL,
		AppliedAt:   app.AppliedAt,
	}
	if app.Seeker != nil {
		resp.CandidateName = app.Seeker.FullName
		resp.Position = app.Seeker.JobTitle
		resp.Location = app.Seeker.Location
		resp.Experience = app.Seeker.YearsOfExperience
	}
	return resp
}
