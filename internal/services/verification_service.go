package services

import (
	"context"
	"mime/multipart"
	"time"

	"gorm.io/gorm"

	"careerpro_backend/internal/logger"
	"careerpro_backend/internal/models"
	"careerpro_backend/internal/repositories"
	"careerpro_backend/internal/services/dto"
	"careerpro_backend/pkg/apperrors"
)

type VerificationService interface {
	// UploadDocument replaces any pending or rejected document with the
	// new one and moves the company into the review queue.
	UploadDocument(ctx context.Context, accountID, companyID, documentType string, file *multipart.FileHeader) (*models.VerificationDocument, error)
	Status(ctx context.Context, companyID string) (*dto.VerificationStatusResponse, error)
	ListPending(ctx context.Context) ([]dto.PendingReviewResponse, error)
	// Review resolves a pending document. The document and company rows
	// change together or not at all.
	Review(ctx context.Context, reviewerID, documentID string, req dto.ReviewDocumentRequest) (*models.VerificationDocument, error)
}

type verificationServiceImpl struct {
	db        *gorm.DB
	documents repositories.DocumentRepository
	companies repositories.CompanyRepository
	accounts  repositories.AccountRepository
	uploads   UploadService
}

func NewVerificationService(
	db *gorm.DB,
	documents repositories.DocumentRepository,
	companies repositories.CompanyRepository,
	accounts repositories.AccountRepository,
	uploads UploadService,
) VerificationService {
	return &verificationServiceImpl{
		db:        db,
		documents: documents,
		companies: companies,
		accounts:  accounts,
		uploads:   uploads,
	}
}

func (s *verificationServiceImpl) UploadDocument(ctx context.Context, accountID, companyID, documentType string, file *multipart.FileHeader) (*models.VerificationDocument, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Translate(err)
	}

	// A verified company has nothing left to prove.
	if company.VerificationStatus == models.CompanyVerificationVerified {
		return nil, apperrors.ErrInvalidVerificationTransition(
			string(company.VerificationStatus),
			string(models.CompanyVerificationInProgress),
		)
	}

	url, filename, err := s.uploads.Store(ctx, "verificationDocument", accountID, file)
	if err != nil {
		return nil, err
	}

	stale, err := s.documents.ListSuperseded(ctx, companyID)
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	doc := &models.VerificationDocument{
		CompanyID:    companyID,
		DocumentType: documentType,
		FileName:     filename,
		FilePath:     url,
		FileType:     extOf(file.Filename),
		FileSize:     file.Size,
		Status:       models.DocumentStatusPending,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(stale) > 0 {
			ids := make([]string, 0, len(stale))
			for _, d := range stale {
				ids = append(ids, d.ID)
			}
			if err := tx.Delete(&models.VerificationDocument{}, "id IN ?", ids).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(doc).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"verification_progress": 100,
		}
		if company.VerificationStatus != models.CompanyVerificationInProgress {
			if !models.CanTransitionVerification(company.VerificationStatus, models.CompanyVerificationInProgress) {
				return apperrors.ErrInvalidVerificationTransition(
					string(company.VerificationStatus),
					string(models.CompanyVerificationInProgress),
				)
			}
			updates["verification_status"] = models.CompanyVerificationInProgress
		}
		return tx.Model(&models.CompanyProfile{}).
			Where("id = ?", companyID).
			Updates(updates).Error
	})
	if err != nil {
		_ = s.uploads.Remove(ctx, url)
		return nil, apperrors.Translate(err)
	}

	// Stale files on disk are cleaned up after the database commit.
	for _, d := range stale {
		if err := s.uploads.Remove(ctx, d.FilePath); err != nil {
			logger.CtxWithError(ctx, "failed to remove superseded document file", err, "document_id", d.ID)
		}
	}

	if err := s.advanceAccountStep(ctx, accountID, companyStepDone); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *verificationServiceImpl) Status(ctx context.Context, companyID string) (*dto.VerificationStatusResponse, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Translate(err)
	}

	resp := &dto.VerificationStatusResponse{
		Status:     string(company.VerificationStatus),
		Progress:   company.VerificationProgress,
		IsVerified: company.IsVerified,
	}

	if doc, err := s.documents.GetLatestByCompany(ctx, companyID); err == nil {
		resp.Document = &dto.VerificationDocumentResponse{
			ID:              doc.ID,
			DocumentType:    doc.DocumentType,
			FileName:        doc.FileName,
			Status:          string(doc.Status),
			RejectionReason: doc.RejectionReason,
			ReviewedAt:      doc.ReviewedAt,
			UploadedAt:      doc.CreatedAt,
		}
	}
	return resp, nil
}

func (s *verificationServiceImpl) ListPending(ctx context.Context) ([]dto.PendingReviewResponse, error) {
	docs, err := s.documents.ListPending(ctx)
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	out := make([]dto.PendingReviewResponse, 0, len(docs))
	for _, doc := range docs {
		row := dto.PendingReviewResponse{
			DocumentID:   doc.ID,
			CompanyID:    doc.CompanyID,
			DocumentType: doc.DocumentType,
			FileName:     doc.FileName,
			FilePath:     doc.FilePath,
			UploadedAt:   doc.CreatedAt,
		}
		if company, err := s.companies.GetByID(ctx, doc.CompanyID); err == nil {
			row.CompanyName = company.CompanyName
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *verificationServiceImpl) Review(ctx context.Context, reviewerID, documentID string, req dto.ReviewDocumentRequest) (*models.VerificationDocument, error) {
	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, apperrors.Translate(err)
	}
	// A superseded or already-reviewed document cannot be acted on.
	if doc.Status != models.DocumentStatusPending {
		return nil, apperrors.ErrDocumentNotFound
	}

	company, err := s.companies.GetByID(ctx, doc.CompanyID)
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	var docStatus models.DocumentStatus
	var companyStatus models.CompanyVerificationStatus
	companyUpdates := map[string]interface{}{}

	switch req.Status {
	case "approved":
		docStatus = models.DocumentStatusApproved
		companyStatus = models.CompanyVerificationVerified
		companyUpdates["is_verified"] = true
		companyUpdates["verification_progress"] = 100
	case "rejected":
		if req.RejectionReason == "" {
			return nil, apperrors.ErrRejectionReasonRequired
		}
		docStatus = models.DocumentStatusRejected
		companyStatus = models.CompanyVerificationRejected
		companyUpdates["is_verified"] = false
		companyUpdates["verification_progress"] = 0
	default:
		return nil, apperrors.ErrInvalidReviewDecision
	}

	if !models.CanTransitionVerification(company.VerificationStatus, companyStatus) {
		return nil, apperrors.ErrInvalidVerificationTransition(
			string(company.VerificationStatus),
			string(companyStatus),
		)
	}
	companyUpdates["verification_status"] = companyStatus

	now := time.Now()
	doc.Status = docStatus
	doc.RejectionReason = req.RejectionReason
	doc.ReviewedBy = reviewerID
	doc.ReviewedAt = &now

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(doc).Error; err != nil {
			return err
		}
		return tx.Model(&models.CompanyProfile{}).
			Where("id = ?", company.ID).
			Updates(companyUpdates).Error
	})
	if err != nil {
		return nil, apperrors.Translate(err)
	}
	return doc, nil
}

func (s *verificationServiceImpl) advanceAccountStep(ctx context.Context, accountID string, step int) error {
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
