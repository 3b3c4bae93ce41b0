package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"careerpro_backend/internal/auth"
	"careerpro_backend/internal/models"
	"careerpro_backend/internal/repositories"
	"careerpro_backend/pkg/apperrors"
	"careerpro_backend/pkg/contextkeys"
)

// Caller is the resolved identity of the current request. The profile id
// is derived once here so handlers never look it up themselves.
type Caller struct {
	Account   *models.Account
	AccountID string
	Role      models.AccountRole
	// ProfileID is the seeker or company profile id, empty while the
	// profile wizard has not created one yet.
	ProfileID string
}

// AuthMiddleware validates the bearer token and re-resolves the account
// on every request, so a deleted account cannot keep using a live token.
func AuthMiddleware(
	accounts repositories.AccountRepository,
	seekers repositories.SeekerRepository,
	companies repositories.CompanyRepository,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header is missing or malformed"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apperrors.HandleError(c, apperrors.Translate(err))
			c.Abort()
			return
		}

		account, err := accounts.GetByID(c.Request.Context(), claims.AccountID)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		caller := &Caller{
			Account:   account,
			AccountID: account.ID,
			Role:      account.Role,
		}

		switch account.Role {
		case models.AccountRoleJobSeeker:
			if profile, err := seekers.GetByAccountID(c.Request.Context(), account.ID); err == nil {
				caller.ProfileID = profile.ID
			} else if !apperrors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.HandleError(c, apperrors.Translate(err))
				c.Abort()
				return
			}
		case models.AccountRoleCompany:
			if profile, err := companies.GetByAccountID(c.Request.Context(), account.ID); err == nil {
				caller.ProfileID = profile.ID
			} else if !apperrors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.HandleError(c, apperrors.Translate(err))
				c.Abort()
				return
			}
		}

		c.Set(contextkeys.CallerKey, caller)
		c.Next()
	}
}

// RequireRoles gates a route group to the listed roles. Runs after
// AuthMiddleware.
func RequireRoles(roles ...models.AccountRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := GetCaller(c)
		if caller == nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}
		for _, role := range roles {
			if caller.Role == role {
				c.Next()
				return
			}
		}
		apperrors.HandleError(c, apperrors.NewForbiddenError("You do not have access to this resource"))
		c.Abort()
	}
}

// GetCaller returns the resolved caller, or nil outside authed routes.
func GetCaller(c *gin.Context) *Caller {
	v, ok := c.Get(contextkeys.CallerKey)
	if !ok {
		return nil
	}
	caller, _ := v.(*Caller)
	return caller
}
