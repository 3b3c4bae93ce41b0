package repositories

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"careerpro_backend/internal/models"
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	MarkVerified(ctx context.Context, id string) error
	TouchLastLogin(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role models.AccountRole) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	account.Email = strings.ToLower(strings.TrimSpace(account.Email))
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		First(&account, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *accountRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *accountRepository) MarkVerified(ctx context.Context, id string) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"is_verified": true})
}

func (r *accountRepository) TouchLastLogin(ctx context.Context, id string) error {
	now := time.Now()
	return r.UpdateFields(ctx, id, map[string]interface{}{"last_login_at": &now})
}

func (r *accountRepository) CountByRole(ctx context.Context, role models.AccountRole) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("role = ?", role).
		Count(&count).Error
	return count, err
}
