package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"careerpro_backend/internal/auth"
	"careerpro_backend/internal/email"
	"careerpro_backend/internal/logger"
	"careerpro_backend/internal/models"
	"careerpro_backend/internal/repositories"
	"careerpro_backend/internal/services/dto"
	"careerpro_backend/pkg/apperrors"
)

const (
	verificationCodeTTL = 15 * time.Minute
	resetTokenTTL       = time.Hour
	// At most this many outstanding codes per account per hour.
	maxCodeRequestsPerHour = 3
)

type AuthService interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyEmail(ctx context.Context, req dto.VerifyEmailRequest) (*dto.AuthResponse, error)
	ResendCode(ctx context.Context, req dto.ResendCodeRequest) error
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
}

type authServiceImpl struct {
	accounts repositories.AccountRepository
	tokens   repositories.TokenRepository
	mailer   email.Provider
}

func NewAuthService(
	accounts repositories.AccountRepository,
	tokens repositories.TokenRepository,
	mailer email.Provider,
) AuthService {
	return &authServiceImpl{
		accounts: accounts,
		tokens:   tokens,
		mailer:   mailer,
	}
}

func (s *authServiceImpl) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role := models.AccountRole(req.AccountType)
	if role != models.AccountRoleJobSeeker && role != models.AccountRoleCompany {
		return nil, apperrors.ErrInvalidAccountRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	account := &models.Account{
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:     hash,
		Role:             role,
		RegistrationStep: 1,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.Translate(err)
	}

	if err := s.issueVerificationCode(ctx, account); err != nil {
		// The account exists; the code can be resent, so log and move on.
		logger.CtxWithError(ctx, "failed to send verification code", err, "account_id", account.ID)
	}

	return &dto.AuthResponse{Account: toAccountResponse(account)}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Translate(err)
	}

	// Credentials are checked before the verification gate so a wrong
	// password never reveals verification state.
	if !auth.CheckPasswordHash(req.Password, account.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !account.IsVerified {
		return nil, apperrors.ErrAccountNotVerified
	}

	token, err := auth.GenerateToken(account.ID, string(account.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.accounts.TouchLastLogin(ctx, account.ID); err != nil {
		logger.CtxWithError(ctx, "failed to record last login", err, "account_id", account.ID)
	}

	return &dto.AuthResponse{Token: token, Account: toAccountResponse(account)}, nil
}

func (s *authServiceImpl) VerifyEmail(ctx context.Context, req dto.VerifyEmailRequest) (*dto.AuthResponse, error) {
	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidVerificationCode
		}
		return nil, apperrors.Translate(err)
	}

	row, err := s.tokens.GetLive(ctx, req.Code, models.TokenKindEmailVerification)
	if err != nil || row.AccountID != account.ID {
		return nil, apperrors.ErrInvalidVerificationCode
	}

	if err := s.tokens.MarkUsed(ctx, row.ID); err != nil {
		return nil, apperrors.Translate(err)
	}
	if err := s.accounts.MarkVerified(ctx, account.ID); err != nil {
		return nil, apperrors.Translate(err)
	}
	account.IsVerified = true

	token, err := auth.GenerateToken(account.ID, string(account.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, Account: toAccountResponse(account)}, nil
}

func (s *authServiceImpl) ResendCode(ctx context.Context, req dto.ResendCodeRequest) error {
	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the address is registered.
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.Translate(err)
	}
	if account.IsVerified {
		return nil
	}

	if err := s.checkThrottle(ctx, account.ID, models.TokenKindEmailVerification); err != nil {
		return err
	}

	// Old codes die with the resend so exactly one code is live.
	if err := s.tokens.InvalidateForAccount(ctx, account.ID, models.TokenKindEmailVerification); err != nil {
		return apperrors.Translate(err)
	}
	return s.issueVerificationCode(ctx, account)
}

func (s *authServiceImpl) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.Translate(err)
	}

	if err := s.checkThrottle(ctx, account.ID, models.TokenKindPasswordReset); err != nil {
		return err
	}

	token, err := auth.GenerateResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	row := &models.AuthToken{
		AccountID: account.ID,
		Token:     token,
		Kind:      models.TokenKindPasswordReset,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.tokens.Create(ctx, row); err != nil {
		return apperrors.Translate(err)
	}

	if err := email.SendPasswordReset(ctx, s.mailer, account.Email, token); err != nil {
		logger.CtxWithError(ctx, "failed to send reset email", err, "account_id", account.ID)
	}
	return nil
}

func (s *authServiceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	if req.Password != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	row, err := s.tokens.GetLive(ctx, req.Token, models.TokenKindPasswordReset)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.accounts.UpdateFields(ctx, row.AccountID, map[string]interface{}{
		"password_hash": hash,
	}); err != nil {
		return apperrors.Translate(err)
	}
	if err := s.tokens.MarkUsed(ctx, row.ID); err != nil {
		return apperrors.Translate(err)
	}
	// Other outstanding reset tokens die with the successful reset.
	if err := s.tokens.InvalidateForAccount(ctx, row.AccountID, models.TokenKindPasswordReset); err != nil {
		return apperrors.Translate(err)
	}
	return nil
}

func (s *authServiceImpl) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperrors.Translate(err)
	}
	return account, nil
}

func (s *authServiceImpl) issueVerificationCode(ctx context.Context, account *models.Account) error {
	code, err := auth.GenerateNumericCode()
	if err != nil {
		return apperrors.InternalError(err)
	}

	row := &models.AuthToken{
		AccountID: account.ID,
		Token:     code,
		Kind:      models.TokenKindEmailVerification,
		ExpiresAt: time.Now().Add(verificationCodeTTL),
	}
	if err := s.tokens.Create(ctx, row); err != nil {
		return apperrors.Translate(err)
	}
	return email.SendVerificationCode(ctx, s.mailer, account.Email, code)
}

func (s *authServiceImpl) checkThrottle(ctx context.Context, accountID string, kind models.TokenKind) error {
	count, err := s.tokens.CountRecent(ctx, accountID, kind, time.Now().Add(-time.Hour))
	if err != nil {
		return apperrors.Translate(err)
	}
	if count >= maxCodeRequestsPerHour {
		return apperrors.ErrTooManyResetRequests
	}
	return nil
}

func toAccountResponse(a *models.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:               a.ID,
		Email:            a.Email,
		Role:             string(a.Role),
		IsVerified:       a.IsVerified,
		RegistrationStep: a.RegistrationStep,
	}
}
