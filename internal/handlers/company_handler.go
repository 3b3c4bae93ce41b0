package handlers

import (
	"github.com/gin-gonic/gin"

	"careerpro_backend/internal/services"
	"careerpro_backend/internal/services/dto"
	"careerpro_backend/pkg/apperrors"
)

type CompanyHandler struct {
	BaseHandler
	companies    services.CompanyService
	verification services.VerificationService
	applications services.ApplicationService
}

func NewCompanyHandler(
	companies services.CompanyService,
	verification services.VerificationService,
	applications services.ApplicationService,
) *CompanyHandler {
	return &CompanyHandler{
		companies:    companies,
		verification: verification,
		applications: applications,
	}
}

// RegisterRoutes mounts the company endpoints; the group is already
// gated to the company role.
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
	rg.PATCH("/profile/step1", h.Step1)
	rg.PATCH("/profile/step2", h.Step2)
	rg.POST("/profile/logo", h.UploadLogo)
	rg.PATCH("/profile", h.UpdateProfile)
	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/applications", h.ListApplications)

	rg.POST("/verification/document", h.UploadDocument)
	rg.GET("/verification/status", h.VerificationStatus)
}

func (h *CompanyHandler) Me(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	profile, err := h.companies.GetMe(c.Request.Context(), caller.AccountID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, profile)
}

func (h *CompanyHandler) Step1(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	var req dto.CompanyStep1Request
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.companies.CompleteStep1(c.Request.Context(), caller.AccountID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, profile)
}

func (h *CompanyHandler) Step2(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	var req dto.CompanyStep2Request
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.companies.CompleteStep2(c.Request.Context(), caller.AccountID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, profile)
}

func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	file, err := c.FormFile("logoFile")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrFileMissing)
		return
	}

	profile, err := h.companies.UploadLogo(c.Request.Context(), caller.AccountID, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, profile)
}

func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	var req dto.CompanyProfileUpdateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.companies.UpdateProfile(c.Request.Context(), caller.AccountID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, profile)
}

func (h *CompanyHandler) Dashboard(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	stats, err := h.companies.Dashboard(c.Request.Context(), caller.AccountID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, stats)
}

func (h *CompanyHandler) ListApplications(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	candidates, err := h.applications.ListForCompany(c.Request.Context(), caller.ProfileID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondList(c, len(candidates), candidates)
}

func (h *CompanyHandler) UploadDocument(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	file, err := c.FormFile("verificationDocument")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrFileMissing)
		return
	}

	documentType := c.PostForm("documentType")
	if documentType == "" {
		documentType = "business_license"
	}

	doc, err := h.verification.UploadDocument(c.Request.Context(), caller.AccountID, caller.ProfileID, documentType, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondCreated(c, doc)
}

func (h *CompanyHandler) VerificationStatus(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	status, err := h.verification.Status(c.Request.Context(), caller.ProfileID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, status)
}
