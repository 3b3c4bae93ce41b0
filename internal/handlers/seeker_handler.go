package handlers

import (
	"github.com/gin-gonic/gin"

	"careerpro_backend/internal/services"
	"careerpro_backend/internal/services/dto"
	"careerpro_backend/pkg/apperrors"
)

type SeekerHandler struct {
	BaseHandler
	seekers      services.SeekerService
	applications services.ApplicationService
}

func NewSeekerHandler(seekers services.SeekerService, applications services.ApplicationService) *SeekerHandler {
	return &SeekerHandler{seekers: seekers, applications: applications}
}

// RegisterRoutes mounts the seeker endpoints; the group is already gated
// to the job_seeker role.
func (h *SeekerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
	rg.PATCH("/profile/step1", h.Step1)
	rg.PATCH("/profile/step2", h.Step2)
	rg.POST("/profile/cv", h.UploadCv)
	rg.PATCH("/profile", h.UpdateProfile)
	rg.POST("/saved-jobs", h.ToggleSavedJob)
	rg.GET("/saved-jobs", h.ListSavedJobs)

	rg.POST("/applications", h.Apply)
	rg.GET("/applications", h.ListApplications)
	rg.DELETE("/applications/:id", h.Withdraw)
}

func (h *SeekerHandler) Me(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	resp, err := h.seekers.GetMe(c.Request.Context(), caller.Account)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, resp)
}

func (h *SeekerHandler) Step1(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	var req dto.SeekerStep1Request
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.seekers.CompleteStep1(c.Request.Context(), caller.AccountID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, profile)
}

func (h *SeekerHandler) Step2(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	var req dto.SeekerStep2Request
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.seekers.CompleteStep2(c.Request.Context(), caller.AccountID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, profile)
}

func (h *SeekerHandler) UploadCv(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	file, err := c.FormFile("cvFile")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrFileMissing)
		return
	}

	cv, err := h.seekers.UploadCv(c.Request.Context(), caller.AccountID, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondCreated(c, cv)
}

func (h *SeekerHandler) UpdateProfile(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	var req dto.SeekerProfileUpdateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.seekers.UpdateProfile(c.Request.Context(), caller.AccountID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, profile)
}

func (h *SeekerHandler) ToggleSavedJob(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	var req dto.ToggleSavedJobRequest
	if !h.BindJSON(c, &req) {
		return
	}

	saved, err := h.seekers.ToggleSavedJob(c.Request.Context(), caller.AccountID, req.JobID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, gin.H{"jobId": req.JobID, "saved": saved})
}

func (h *SeekerHandler) ListSavedJobs(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	jobs, err := h.seekers.ListSavedJobs(c.Request.Context(), caller.AccountID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondList(c, len(jobs), jobs)
}

func (h *SeekerHandler) Apply(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	var req dto.ApplyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	app, err := h.applications.Apply(c.Request.Context(), caller.ProfileID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondCreated(c, app)
}

func (h *SeekerHandler) ListApplications(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	apps, err := h.applications.ListForSeeker(c.Request.Context(), caller.ProfileID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondList(c, len(apps), apps)
}

func (h *SeekerHandler) Withdraw(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	if err := h.applications.Withdraw(c.Request.Context(), caller.ProfileID, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, "Application withdrawn")
}
