package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"careerpro_backend/internal/services"
	"careerpro_backend/internal/services/dto"
	"careerpro_backend/pkg/apperrors"
)

// PublicHandler serves the unauthenticated job and company catalog.
type PublicHandler struct {
	BaseHandler
	jobs      services.JobService
	companies services.CompanyService
}

func NewPublicHandler(jobs services.JobService, companies services.CompanyService) *PublicHandler {
	return &PublicHandler{jobs: jobs, companies: companies}
}

func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.ListJobs)
	rg.GET("/jobs/:id", h.GetJob)
	// Separate path because /jobs/:id already owns that segment.
	rg.GET("/featured-jobs", h.ListFeaturedJobs)
	rg.GET("/companies", h.ListCompanies)
	rg.GET("/companies/:id", h.GetCompany)
}

func (h *PublicHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	resp, err := h.jobs.ListPublic(c.Request.Context(), query)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondList(c, len(resp.Jobs), resp)
}

func (h *PublicHandler) GetJob(c *gin.Context) {
	job, err := h.jobs.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, job)
}

func (h *PublicHandler) ListFeaturedJobs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	jobs, err := h.jobs.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondList(c, len(jobs), jobs)
}

func (h *PublicHandler) ListCompanies(c *gin.Context) {
	// sort=top ranks by active job count instead of recency.
	if c.Query("sort") == "top" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		companies, err := h.companies.ListTop(c.Request.Context(), limit)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		respondList(c, len(companies), companies)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	companies, total, err := h.companies.ListPublic(c.Request.Context(), limit, offset)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondList(c, len(companies), gin.H{"companies": companies, "total": total})
}

func (h *PublicHandler) GetCompany(c *gin.Context) {
	company, err := h.companies.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, company)
}
