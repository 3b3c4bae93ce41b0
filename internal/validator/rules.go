package validator

import (
	"github.com/go-playground/validator/v10"

	"careerpro_backend/internal/models"
)

// Domain enum rules. Each rule accepts the empty string so optional
// fields stay optional; pair with required when the field is mandatory.
func registerRules(v *validator.Validate) {
	v.RegisterValidation("is-account-role", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" ||
			s == string(models.AccountRoleJobSeeker) ||
			s == string(models.AccountRoleCompany)
	})

	v.RegisterValidation("is-job-status", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, ok := models.JobStatusFromDisplay(s)
		return ok
	})

	v.RegisterValidation("is-application-status", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, ok := models.ApplicationStatusFromDisplay(s)
		return ok
	})

	v.RegisterValidation("is-work-type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "full_time", "part_time", "contract", "internship", "freelance":
			return true
		}
		return false
	})

	v.RegisterValidation("is-work-place", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "remote", "on_site", "hybrid":
			return true
		}
		return false
	})
}
