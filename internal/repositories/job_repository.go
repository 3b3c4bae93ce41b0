package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"careerpro_backend/internal/models"
)

// JobFilter narrows the public catalog listing. Zero values mean "any".
type JobFilter struct {
	Search    string
	Location  string
	Type      string
	WorkPlace string
	Limit     int
	Offset    int
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id string) (*models.Job, error)
	// GetOwned returns the job only if it belongs to the company.
	GetOwned(ctx context.Context, id, companyID string) (*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context, filter JobFilter) ([]models.Job, int64, error)
	// ListFeatured returns the newest published jobs from verified
	// companies.
	ListFeatured(ctx context.Context, limit int) ([]models.Job, error)
	// ListByIDs returns published jobs matching the given ids, used for
	// the saved-jobs listing.
	ListByIDs(ctx context.Context, ids []string) ([]models.Job, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.Job, error)
	CountByCompany(ctx context.Context, companyID string, statuses ...models.JobStatus) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) GetOwned(ctx context.Context, id, companyID string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		First(&job, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Delete removes the job and its applications in one transaction.
func (r *jobRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, "id = ?", id).Error
	})
}

func (r *jobRepository) ListPublished(ctx context.Context, filter JobFilter) ([]models.Job, int64, error) {
	applyFilter := func(q *gorm.DB) *gorm.DB {
		q = q.Where("status = ? AND is_active = ?", models.JobStatusPublished, true)
		if filter.Search != "" {
			pattern := "%" + strings.ToLower(filter.Search) + "%"
			q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		}
		if filter.Location != "" {
			q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
		}
		if filter.Type != "" {
			q = q.Where("type = ?", filter.Type)
		}
		if filter.WorkPlace != "" {
			q = q.Where("work_place = ?", filter.WorkPlace)
		}
		return q
	}

	var total int64
	if err := applyFilter(r.db.WithContext(ctx).Model(&models.Job{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := applyFilter(r.db.WithContext(ctx))
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var jobs []models.Job
	err := q.Preload("Company").Order("posted_at DESC").Find(&jobs).Error
	return jobs, total, err
}

func (r *jobRepository) ListFeatured(ctx context.Context, limit int) ([]models.Job, error) {
	if limit <= 0 {
		limit = 10
	}

	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Joins("JOIN company_profiles ON company_profiles.id = jobs.company_id").
		Where("jobs.status = ? AND jobs.is_active = ? AND company_profiles.is_verified = ?",
			models.JobStatusPublished, true, true).
		Preload("Company").
		Order("jobs.posted_at DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) ListByIDs(ctx context.Context, ids []string) ([]models.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("id IN ? AND status = ? AND is_active = ?", ids, models.JobStatusPublished, true).
		Preload("Company").
		Order("posted_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) ListByCompany(ctx context.Context, companyID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) CountByCompany(ctx context.Context, companyID string, statuses ...models.JobStatus) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("company_id = ?", companyID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}
