package handlers

import (
	"github.com/gin-gonic/gin"

	"careerpro_backend/internal/services"
	"careerpro_backend/internal/services/dto"
	"careerpro_backend/pkg/apperrors"
)

type AuthHandler struct {
	BaseHandler
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRoutes mounts the public auth endpoints.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
	rg.POST("/verify-email", h.VerifyEmail)
	rg.POST("/resend-code", h.ResendCode)
	rg.POST("/forgot-password", h.ForgotPassword)
	rg.POST("/reset-password", h.ResetPassword)
}

// RegisterProtectedRoutes mounts the endpoints that need a valid token.
func (h *AuthHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.auth.Signup(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondCreated(c, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, resp)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.auth.VerifyEmail(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, resp)
}

func (h *AuthHandler) ResendCode(c *gin.Context) {
	var req dto.ResendCodeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.auth.ResendCode(c.Request.Context(), req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, "If the email is registered, a new code has been sent")
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, "If the email is registered, a reset link has been sent")
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, "Password has been reset. Please log in.")
}

func (h *AuthHandler) Me(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}
	respondOK(c, caller.Account)
}
