package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"careerpro_backend/internal/models"
)

type TokenRepository interface {
	Create(ctx context.Context, token *models.AuthToken) error
	// GetLive returns the token row only if it is unused and unexpired.
	GetLive(ctx context.Context, token string, kind models.TokenKind) (*models.AuthToken, error)
	MarkUsed(ctx context.Context, id string) error
	// InvalidateForAccount marks all live tokens of a kind as used, so a
	// resend leaves exactly one valid code.
	InvalidateForAccount(ctx context.Context, accountID string, kind models.TokenKind) error
	// CountRecent counts tokens issued for the account within the window.
	CountRecent(ctx context.Context, accountID string, kind models.TokenKind, since time.Time) (int64, error)
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *models.AuthToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) GetLive(ctx context.Context, token string, kind models.TokenKind) (*models.AuthToken, error) {
	var row models.AuthToken
	err := r.db.WithContext(ctx).
		Where("token = ? AND kind = ? AND used = ? AND expires_at > ?",
			token, kind, false, time.Now()).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *tokenRepository) MarkUsed(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.AuthToken{}).
		Where("id = ?", id).
		Update("used", true).Error
}

func (r *tokenRepository) InvalidateForAccount(ctx context.Context, accountID string, kind models.TokenKind) error {
	return r.db.WithContext(ctx).
		Model(&models.AuthToken{}).
		Where("account_id = ? AND kind = ? AND used = ?", accountID, kind, false).
		Update("used", true).Error
}

func (r *tokenRepository) CountRecent(ctx context.Context, accountID string, kind models.TokenKind, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AuthToken{}).
		Where("account_id = ? AND kind = ? AND created_at > ?", accountID, kind, since).
		Count(&count).Error
	return count, err
}
