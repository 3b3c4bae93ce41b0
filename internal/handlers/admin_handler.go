package handlers

import (
	"github.com/gin-gonic/gin"

	"careerpro_backend/internal/services"
	"careerpro_backend/internal/services/dto"
	"careerpro_backend/pkg/apperrors"
)

// AdminHandler serves the verification review queue.
type AdminHandler struct {
	BaseHandler
	verification services.VerificationService
}

func NewAdminHandler(verification services.VerificationService) *AdminHandler {
	return &AdminHandler{verification: verification}
}

// RegisterRoutes mounts the admin endpoints; the group is already gated
// to the admin role.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/verification/pending", h.ListPending)
	rg.PATCH("/verification/documents/:id", h.Review)
}

func (h *AdminHandler) ListPending(c *gin.Context) {
	rows, err := h.verification.ListPending(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondList(c, len(rows), rows)
}

func (h *AdminHandler) Review(c *gin.Context) {
	caller := h.Caller(c)
	if caller == nil {
		return
	}

	var req dto.ReviewDocumentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.verification.Review(c.Request.Context(), caller.AccountID, c.Param("id"), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, doc)
}
