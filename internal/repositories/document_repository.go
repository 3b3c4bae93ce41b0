package repositories

import (
	"context"

	"gorm.io/gorm"

	"careerpro_backend/internal/models"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *models.VerificationDocument) error
	GetByID(ctx context.Context, id string) (*models.VerificationDocument, error)
	Update(ctx context.Context, doc *models.VerificationDocument) error
	// ListSuperseded returns the company's pending and rejected documents,
	// the ones a fresh upload replaces.
	ListSuperseded(ctx context.Context, companyID string) ([]models.VerificationDocument, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	GetLatestByCompany(ctx context.Context, companyID string) (*models.VerificationDocument, error)
	ListPending(ctx context.Context) ([]models.VerificationDocument, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *models.VerificationDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*models.VerificationDocument, error) {
	var doc models.VerificationDocument
	err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) Update(ctx context.Context, doc *models.VerificationDocument) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

func (r *documentRepository) ListSuperseded(ctx context.Context, companyID string) ([]models.VerificationDocument, error) {
	var docs []models.VerificationDocument
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND status IN ?", companyID,
			[]models.DocumentStatus{models.DocumentStatusPending, models.DocumentStatusRejected}).
		Find(&docs).Error
	return docs, err
}

func (r *documentRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Delete(&models.VerificationDocument{}, "id IN ?", ids).Error
}

func (r *documentRepository) GetLatestByCompany(ctx context.Context, companyID string) (*models.VerificationDocument, error) {
	var doc models.VerificationDocument
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) ListPending(ctx context.Context) ([]models.VerificationDocument, error) {
	var docs []models.VerificationDocument
	err := r.db.WithContext(ctx).
		Where("status = ?", models.DocumentStatusPending).
		Order("created_at ASC").
		Find(&docs).Error
	return docs, err
}
