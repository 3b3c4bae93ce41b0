package repositories

import (
	"context"

	"gorm.io/gorm"

	"careerpro_backend/internal/models"
)

type SeekerRepository interface {
	Create(ctx context.Context, profile *models.JobSeekerProfile) error
	GetByID(ctx context.Context, id string) (*models.JobSeekerProfile, error)
	GetByAccountID(ctx context.Context, accountID string) (*models.JobSeekerProfile, error)
	Update(ctx context.Context, profile *models.JobSeekerProfile) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error

	CreateCvUpload(ctx context.Context, cv *models.CvUpload) error
	GetLatestCv(ctx context.Context, seekerID string) (*models.CvUpload, error)
	UpdateCv(ctx context.Context, cv *models.CvUpload) error
}

type seekerRepository struct {
	db *gorm.DB
}

func NewSeekerRepository(db *gorm.DB) SeekerRepository {
	return &seekerRepository{db: db}
}

func (r *seekerRepository) Create(ctx context.Context, profile *models.JobSeekerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *seekerRepository) GetByID(ctx context.Context, id string) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *seekerRepository) GetByAccountID(ctx context.Context, accountID string) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	err := r.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *seekerRepository) Update(ctx context.Context, profile *models.JobSeekerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *seekerRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&models.JobSeekerProfile{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *seekerRepository) CreateCvUpload(ctx context.Context, cv *models.CvUpload) error {
	return r.db.WithContext(ctx).Create(cv).Error
}

func (r *seekerRepository) GetLatestCv(ctx context.Context, seekerID string) (*models.CvUpload, error) {
	var cv models.CvUpload
	err := r.db.WithContext(ctx).
		Where("seeker_id = ?", seekerID).
		Order("created_at DESC").
		First(&cv).Error
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *seekerRepository) UpdateCv(ctx context.Context, cv *models.CvUpload) error {
	return r.db.WithContext(ctx).Save(cv).Error
}
