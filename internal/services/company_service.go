package services

import (
	"context"
	"mime/multipart"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"careerpro_backend/internal/models"
	"careerpro_backend/internal/repositories"
	"careerpro_backend/internal/services/dto"
	"careerpro_backend/pkg/apperrors"
)

// Registration steps for the company wizard.
const (
	companyStepBasics       = 1
	companyStepDetails      = 2
	companyStepVerification = 3
	companyStepDone         = 4
)

type CompanyService interface {
	CompleteStep1(ctx context.Context, accountID string, req dto.CompanyStep1Request) (*models.CompanyProfile, error)
	CompleteStep2(ctx context.Context, accountID string, req dto.CompanyStep2Request) (*models.CompanyProfile, error)
	UploadLogo(ctx context.Context, accountID string, file *multipart.FileHeader) (*models.CompanyProfile, error)
	GetMe(ctx context.Context, accountID string) (*models.CompanyProfile, error)
	UpdateProfile(ctx context.Context, accountID string, req dto.CompanyProfileUpdateRequest) (*models.CompanyProfile, error)
	Dashboard(ctx context.Context, accountID string) (*dto.CompanyDashboardResponse, error)
	GetProfileByAccount(ctx context.Context, accountID string) (*models.CompanyProfile, error)

	// Public catalog views.
	ListPublic(ctx context.Context, limit, offset int) ([]dto.CompanyPublicResponse, int64, error)
	ListTop(ctx context.Context, limit int) ([]dto.CompanyPublicResponse, error)
	GetPublic(ctx context.Context, companyID string) (*dto.CompanyPublicResponse, error)
}

type companyServiceImpl struct {
	companies    repositories.CompanyRepository
	accounts     repositories.AccountRepository
	jobs         repositories.JobRepository
	applications repositories.ApplicationRepository
	uploads      UploadService
}

func NewCompanyService(
	companies repositories.CompanyRepository,
	accounts repositories.AccountRepository,
	jobs repositories.JobRepository,
	applications repositories.ApplicationRepository,
	uploads UploadService,
) CompanyService {
	return &companyServiceImpl{
		companies:    companies,
		accounts:     accounts,
		jobs:         jobs,
		applications: applications,
		uploads:      uploads,
	}
}

func (s *companyServiceImpl) CompleteStep1(ctx context.Context, accountID string, req dto.CompanyStep1Request) (*models.CompanyProfile, error) {
	profile, err := s.companies.GetByAccountID(ctx, accountID)
	if err != nil && !apperrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Translate(err)
	}

	if profile == nil {
		profile = &models.CompanyProfile{AccountID: accountID}
	}
	profile.CompanyName = req.CompanyName
	profile.CompanySize = req.CompanySize
	profile.Industry = req.Industry
	profile.Location = req.Location
	profile.Phone = req.Phone
	profile.FoundedYear = req.FoundedYear

	if profile.ID == "" {
		err = s.companies.Create(ctx, profile)
	} else {
		err = s.companies.Update(ctx, profile)
	}
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	if err := s.advanceStep(ctx, accountID, companyStepDetails); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *companyServiceImpl) CompleteStep2(ctx context.Context, accountID string, req dto.CompanyStep2Request) (*models.CompanyProfile, error) {
	profile, err := s.requireProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	profile.Description = req.Description
	profile.Website = req.Website
	profile.Technologies = datatypes.JSONSlice[string](req.Technologies)
	profile.Benefits = datatypes.JSONSlice[string](req.Benefits)
	if req.SocialLinks != nil {
		links := datatypes.JSONMap{}
		for k, v := range req.SocialLinks {
			links[k] = v
		}
		profile.SocialLinks = links
	}

	if err := s.companies.Update(ctx, profile); err != nil {
		return nil, apperrors.Translate(err)
	}

	if err := s.advanceStep(ctx, accountID, companyStepVerification); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *companyServiceImpl) UploadLogo(ctx context.Context, accountID string, file *multipart.FileHeader) (*models.CompanyProfile, error) {
	profile, err := s.requireProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	url, _, err := s.uploads.Store(ctx, "logoFile", accountID, file)
	if err != nil {
		return nil, err
	}

	// Replace, not accumulate.
	if profile.LogoURL != "" {
		_ = s.uploads.Remove(ctx, profile.LogoURL)
	}

	profile.LogoURL = url
	if err := s.companies.Update(ctx, profile); err != nil {
		return nil, apperrors.Translate(err)
	}
	return profile, nil
}

func (s *companyServiceImpl) GetMe(ctx context.Context, accountID string) (*models.CompanyProfile, error) {
	return s.requireProfile(ctx, accountID)
}

func (s *companyServiceImpl) UpdateProfile(ctx context.Context, accountID string, req dto.CompanyProfileUpdateRequest) (*models.CompanyProfile, error) {
	profile, err := s.requireProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != "" {
		profile.CompanyName = req.CompanyName
	}
	if req.CompanySize != "" {
		profile.CompanySize = req.CompanySize
	}
	if req.Industry != "" {
		profile.Industry = req.Industry
	}
	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.Website != "" {
		profile.Website = req.Website
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.Description != "" {
		profile.Description = req.Description
	}
	if req.Technologies != nil {
		profile.Technologies = datatypes.JSONSlice[string](req.Technologies)
	}
	if req.Benefits != nil {
		profile.Benefits = datatypes.JSONSlice[string](req.Benefits)
	}
	if req.SocialLinks != nil {
		links := datatypes.JSONMap{}
		for k, v := range req.SocialLinks {
			links[k] = v
		}
		profile.SocialLinks = links
	}

	if err := s.companies.Update(ctx, profile); err != nil {
		return nil, apperrors.Translate(err)
	}
	return profile, nil
}

func (s *companyServiceImpl) Dashboard(ctx context.Context, accountID string) (*dto.CompanyDashboardResponse, error) {
	profile, err := s.requireProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	active, err := s.jobs.CountByCompany(ctx, profile.ID, models.JobStatusPublished)
	if err != nil {
		return nil, apperrors.Translate(err)
	}
	total, err := s.jobs.CountByCompany(ctx, profile.ID)
	if err != nil {
		return nil, apperrors.Translate(err)
	}
	apps, err := s.applications.CountByCompany(ctx, profile.ID)
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	return &dto.CompanyDashboardResponse{
		ActiveJobs:        active,
		TotalJobs:         total,
		TotalApplications: apps,
		ProfileComplete:   profile.CompanyName != "" && profile.Description != "",
		IsVerified:        profile.IsVerified,
	}, nil
}

func (s *companyServiceImpl) GetProfileByAccount(ctx context.Context, accountID string) (*models.CompanyProfile, error) {
	return s.requireProfile(ctx, accountID)
}

func (s *companyServiceImpl) ListPublic(ctx context.Context, limit, offset int) ([]dto.CompanyPublicResponse, int64, error) {
	if limit <= 0 {
		limit = 50
	}

	profiles, total, err := s.companies.ListPublic(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperrors.Translate(err)
	}
	return s.toPublicCards(ctx, profiles), total, nil
}

func (s *companyServiceImpl) ListTop(ctx context.Context, limit int) ([]dto.CompanyPublicResponse, error) {
	profiles, err := s.companies.ListTop(ctx, limit)
	if err != nil {
		return nil, apperrors.Translate(err)
	}
	return s.toPublicCards(ctx, profiles), nil
}

func (s *companyServiceImpl) GetPublic(ctx context.Context, companyID string) (*dto.CompanyPublicResponse, error) {
	profile, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("company", "Company not found")
		}
		return nil, apperrors.Translate(err)
	}

	cards := s.toPublicCards(ctx, []models.CompanyProfile{*profile})
	return &cards[0], nil
}

func (s *companyServiceImpl) toPublicCards(ctx context.Context, profiles []models.CompanyProfile) []dto.CompanyPublicResponse {
	out := make([]dto.CompanyPublicResponse, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		active, _ := s.jobs.CountByCompany(ctx, p.ID, models.JobStatusPublished)
		out = append(out, dto.CompanyPublicResponse{
			ID:           p.ID,
			CompanyName:  p.CompanyName,
			Industry:     p.Industry,
			Location:     p.Location,
			CompanySize:  p.CompanySize,
			Website:      p.Website,
			Description:  p.Description,
			LogoURL:      p.LogoURL,
			Technologies: p.Technologies,
			IsVerified:   p.IsVerified,
			ActiveJobs:   active,
		})
	}
	return out
}

func (s *companyServiceImpl) requireProfile(ctx context.Context, accountID string) (*models.CompanyProfile, error) {
	profile, err := s.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Translate(err)
	}
	return profile, nil
}

func (s *companyServiceImpl) advanceStep(ctx context.Context, accountID string, step int) error {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return apperrors.Translate(err)
	}
	if account.RegistrationStep >= step {
		return nil
	}
	if err := s.accounts.UpdateFields(ctx, accountID, map[string]interface{}{
		"registration_step": step,
	}); err != nil {
		return apperrors.Translate(err)
	}
	return nil
}
