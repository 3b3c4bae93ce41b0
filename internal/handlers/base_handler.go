package handlers

import (
	"github.com/gin-gonic/gin"

	"careerpro_backend/internal/middleware"
	"careerpro_backend/internal/validator"
	"careerpro_backend/pkg/apperrors"
)

// BaseHandler carries the helpers every handler embeds.
type BaseHandler struct{}

// BindJSON decodes and validates a JSON body. A false return means the
// error response has already been written.
func (h *BaseHandler) BindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	if err := validator.Struct(dst); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			apperrors.HandleError(c, apperrors.ValidationError(verrs))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// BindQuery decodes and validates query parameters.
func (h *BaseHandler) BindQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	if err := validator.Struct(dst); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			apperrors.HandleError(c, apperrors.ValidationError(verrs))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// Caller returns the authenticated caller. A nil return means the error
// response has already been written.
func (h *BaseHandler) Caller(c *gin.Context) *middleware.Caller {
	caller := middleware.GetCaller(c)
	if caller == nil {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return nil
	}
	return caller
}

// CallerWithProfile is Caller plus the requirement that the role profile
// already exists.
func (h *BaseHandler) CallerWithProfile(c *gin.Context) *middleware.Caller {
	caller := h.Caller(c)
	if caller == nil {
		return nil
	}
	if caller.ProfileID == "" {
		apperrors.HandleError(c, apperrors.ErrProfileNotFound)
		return nil
	}
	return caller
}
