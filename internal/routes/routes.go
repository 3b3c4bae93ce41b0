package routes

import (
	"github.com/gin-gonic/gin"

	"careerpro_backend/internal/handlers"
	"careerpro_backend/internal/middleware"
	"careerpro_backend/internal/models"
	"careerpro_backend/internal/repositories"
)

// Register wires every route group onto the engine.
func Register(
	r *gin.Engine,
	h *handlers.AppHandlers,
	accounts repositories.AccountRepository,
	seekers repositories.SeekerRepository,
	companies repositories.CompanyRepository,
) {
	api := r.Group("/api/v1")

	h.Public.RegisterRoutes(api)
	h.Auth.RegisterRoutes(api.Group("/auth"))

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(accounts, seekers, companies))

	h.Auth.RegisterProtectedRoutes(authed.Group("/auth"))

	seeker := authed.Group("/seeker")
	seeker.Use(middleware.RequireRoles(models.AccountRoleJobSeeker))
	h.Seeker.RegisterRoutes(seeker)

	company := authed.Group("/company")
	company.Use(middleware.RequireRoles(models.AccountRoleCompany))
	h.Company.RegisterRoutes(company)

	jobs := authed.Group("/company/jobs")
	jobs.Use(middleware.RequireRoles(models.AccountRoleCompany))
	h.Job.RegisterRoutes(jobs)
	h.Job.RegisterApplicationRoutes(company)

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireRoles(models.AccountRoleAdmin))
	h.Admin.RegisterRoutes(admin)
}
