package services

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"careerpro_backend/internal/models"
	"careerpro_backend/internal/repositories"
	"careerpro_backend/internal/services/dto"
	"careerpro_backend/pkg/apperrors"
)

type JobService interface {
	Create(ctx context.Context, companyID string, req dto.CreateJobRequest) (*dto.JobResponse, error)
	// GetPublic returns a published job for the catalog.
	GetPublic(ctx context.Context, jobID string) (*dto.JobResponse, error)
	ListPublic(ctx context.Context, query dto.JobListQuery) (*dto.JobListResponse, error)
	ListFeatured(ctx context.Context, limit int) ([]dto.JobResponse, error)
	ListOwned(ctx context.Context, companyID string) ([]dto.JobResponse, error)
	Update(ctx context.Context, companyID, jobID string, req dto.UpdateJobRequest) (*dto.JobResponse, error)
	UpdateStatus(ctx context.Context, companyID, jobID string, req dto.UpdateJobStatusRequest) (*dto.JobResponse, error)
	Delete(ctx context.Context, companyID, jobID string) error
}

type jobServiceImpl struct {
	jobs         repositories.JobRepository
	companies    repositories.CompanyRepository
	applications repositories.ApplicationRepository
}

func NewJobService(
	jobs repositories.JobRepository,
	companies repositories.CompanyRepository,
	applications repositories.ApplicationRepository,
) JobService {
	return &jobServiceImpl{
		jobs:         jobs,
		companies:    companies,
		applications: applications,
	}
}

func (s *jobServiceImpl) Create(ctx context.Context, companyID string, req dto.CreateJobRequest) (*dto.JobResponse, error) {
	status := models.JobStatusPublished
	if req.Status != "" {
		mapped, ok := models.JobStatusFromDisplay(req.Status)
		if !ok {
			return nil, apperrors.NewBadRequestError("unknown job status " + req.Status)
		}
		status = mapped
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	workPlace := req.WorkPlace
	if workPlace == "" {
		workPlace = "on_site"
	}

	job := &models.Job{
		CompanyID:       companyID,
		Title:           req.Title,
		Location:        req.Location,
		Type:            req.Type,
		WorkPlace:       workPlace,
		ExperienceLevel: req.ExperienceLevel,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Benefits:        req.Benefits,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Currency:        currency,
		Skills:          datatypes.JSONSlice[string](req.Skills),
		Status:          status,
		IsActive:        status == models.JobStatusPublished,
		PostedAt:        time.Now(),
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.Translate(err)
	}

	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, apperrors.Translate(err)
	}
	job.Company = company

	resp := toJobResponse(job, 0)
	return &resp, nil
}

func (s *jobServiceImpl) GetPublic(ctx context.Context, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.Translate(err)
	}
	if job.Status != models.JobStatusPublished || !job.IsActive {
		return nil, apperrors.ErrJobNotFound
	}

	count, _ := s.applications.CountByJob(ctx, job.ID)
	resp := toJobResponse(job, count)
	return &resp, nil
}

func (s *jobServiceImpl) ListPublic(ctx context.Context, query dto.JobListQuery) (*dto.JobListResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}

	jobs, total, err := s.jobs.ListPublished(ctx, repositories.JobFilter{
		Search:    query.Search,
		Location:  query.Location,
		Type:      query.Type,
		WorkPlace: query.WorkPlace,
		Limit:     limit,
		Offset:    query.Offset,
	})
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i], 0))
	}
	return &dto.JobListResponse{Jobs: out, Total: total}, nil
}

func (s *jobServiceImpl) ListFeatured(ctx context.Context, limit int) ([]dto.JobResponse, error) {
	jobs, err := s.jobs.ListFeatured(ctx, limit)
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i], 0))
	}
	return out, nil
}

func (s *jobServiceImpl) ListOwned(ctx context.Context, companyID string) ([]dto.JobResponse, error) {
	jobs, err := s.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		count, _ := s.applications.CountByJob(ctx, jobs[i].ID)
		out = append(out, toJobResponse(&jobs[i], count))
	}
	return out, nil
}

func (s *jobServiceImpl) Update(ctx context.Context, companyID, jobID string, req dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.requireOwned(ctx, jobID, companyID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.WorkPlace != nil {
		job.WorkPlace = *req.WorkPlace
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Benefits != nil {
		job.Benefits = *req.Benefits
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if req.Currency != nil {
		job.Currency = *req.Currency
	}
	if req.Skills != nil {
		job.Skills = datatypes.JSONSlice[string](req.Skills)
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, apperrors.Translate(err)
	}

	count, _ := s.applications.CountByJob(ctx, job.ID)
	resp := toJobResponse(job, count)
	return &resp, nil
}

func (s *jobServiceImpl) UpdateStatus(ctx context.Context, companyID, jobID string, req dto.UpdateJobStatusRequest) (*dto.JobResponse, error) {
	job, err := s.requireOwned(ctx, jobID, companyID)
	if err != nil {
		return nil, err
	}

	status, ok := models.JobStatusFromDisplay(req.Status)
	if !ok {
		return nil, apperrors.NewBadRequestError("unknown job status " + req.Status)
	}

	job.Status = status
	job.IsActive = status == models.JobStatusPublished
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, apperrors.Translate(err)
	}

	count, _ := s.applications.CountByJob(ctx, job.ID)
	resp := toJobResponse(job, count)
	return &resp, nil
}

func (s *jobServiceImpl) Delete(ctx context.Context, companyID, jobID string) error {
	job, err := s.requireOwned(ctx, jobID, companyID)
	if err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, job.ID); err != nil {
		return apperrors.Translate(err)
	}
	return nil
}

func (s *jobServiceImpl) requireOwned(ctx context.Context, jobID, companyID string) (*models.Job, error) {
	job, err := s.jobs.GetOwned(ctx, jobID, companyID)
	if err != nil {
		// Missing and foreign jobs look the same.
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.Translate(err)
	}
	return job, nil
}

func toJobResponse(job *models.Job, applicants int64) dto.JobResponse {
	resp := dto.JobResponse{
		ID:              job.ID,
		Title:           job.Title,
		Location:        job.Location,
		Type:            job.Type,
		WorkPlace:       job.WorkPlace,
		ExperienceLevel: job.ExperienceLevel,
		Description:     job.Description,
		Requirements:    job.Requirements,
		Benefits:        job.Benefits,
		SalaryMin:       job.SalaryMin,
		SalaryMax:       job.SalaryMax,
		Currency:        job.Currency,
		Skills:          job.Skills,
		Status:          job.Status.Display(),
		PostedAt:        job.PostedAt,
		Applicants:      applicants,
	}
	if job.Company != nil {
		resp.CompanyName = job.Company.CompanyName
		resp.CompanyLogo = job.Company.LogoURL
		resp.IsVerified = job.Company.IsVerified
	}
	return resp
}
