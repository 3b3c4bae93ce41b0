package handlers

import (
	"github.com/gin-gonic/gin"

	"careerpro_backend/internal/services"
	"careerpro_backend/internal/services/dto"
	"careerpro_backend/pkg/apperrors"
)

// JobHandler serves the company-side job management endpoints.
type JobHandler struct {
	BaseHandler
	jobs         services.JobService
	applications services.ApplicationService
}

func NewJobHandler(jobs services.JobService, applications services.ApplicationService) *JobHandler {
	return &JobHandler{jobs: jobs, applications: applications}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.ListOwned)
	rg.PATCH("/:id", h.Update)
	rg.PATCH("/:id/status", h.UpdateStatus)
	rg.DELETE("/:id", h.Delete)

	rg.GET("/:id/applications", h.ListApplications)
}

// RegisterApplicationRoutes lives outside the /jobs group so the static
// /applications segment cannot collide with the :id wildcard.
func (h *JobHandler) RegisterApplicationRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/applications/:id/status", h.UpdateApplicationStatus)
}

func (h *JobHandler) Create(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), caller.ProfileID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondCreated(c, job)
}

func (h *JobHandler) ListOwned(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	jobs, err := h.jobs.ListOwned(c.Request.Context(), caller.ProfileID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondList(c, len(jobs), jobs)
}

func (h *JobHandler) Update(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), caller.ProfileID, c.Param("id"), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, job)
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	var req dto.UpdateJobStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobs.UpdateStatus(c.Request.Context(), caller.ProfileID, c.Param("id"), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), caller.ProfileID, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, "Job deleted")
}

func (h *JobHandler) ListApplications(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	candidates, err := h.applications.ListForJob(c.Request.Context(), caller.ProfileID, c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondList(c, len(candidates), candidates)
}

func (h *JobHandler) UpdateApplicationStatus(c *gin.Context) {
	caller := h.CallerWithProfile(c)
	if caller == nil {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	candidate, err := h.applications.UpdateStatus(c.Request.Context(), caller.ProfileID, c.Param("id"), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, candidate)
}
