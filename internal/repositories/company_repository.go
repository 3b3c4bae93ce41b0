package repositories

import (
	"context"

	"gorm.io/gorm"

	"careerpro_backend/internal/models"
)

type CompanyRepository interface {
	Create(ctx context.Context, profile *models.CompanyProfile) error
	GetByID(ctx context.Context, id string) (*models.CompanyProfile, error)
	GetByAccountID(ctx context.Context, accountID string) (*models.CompanyProfile, error)
	Update(ctx context.Context, profile *models.CompanyProfile) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	ListByVerificationStatus(ctx context.Context, status models.CompanyVerificationStatus) ([]models.CompanyProfile, error)
	ListPublic(ctx context.Context, limit, offset int) ([]models.CompanyProfile, int64, error)
	// ListTop orders companies by their number of active jobs.
	ListTop(ctx context.Context, limit int) ([]models.CompanyProfile, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, profile *models.CompanyProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *companyRepository) GetByAccountID(ctx context.Context, accountID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *companyRepository) Update(ctx context.Context, profile *models.CompanyProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *companyRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&models.CompanyProfile{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *companyRepository) ListByVerificationStatus(ctx context.Context, status models.CompanyVerificationStatus) ([]models.CompanyProfile, error) {
	var profiles []models.CompanyProfile
	err := r.db.WithContext(ctx).
		Where("verification_status = ?", status).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *companyRepository) ListPublic(ctx context.Context, limit, offset int) ([]models.CompanyProfile, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.CompanyProfile{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Order("is_verified DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var profiles []models.CompanyProfile
	err := q.Find(&profiles).Error
	return profiles, total, err
}

func (r *companyRepository) ListTop(ctx context.Context, limit int) ([]models.CompanyProfile, error) {
	if limit <= 0 {
		limit = 10
	}

	var profiles []models.CompanyProfile
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN jobs ON jobs.company_id = company_profiles.id AND jobs.status = ? AND jobs.is_active = ?",
			models.JobStatusPublished, true).
		Group("company_profiles.id").
		Order("COUNT(jobs.id) DESC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}
