package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// envelope matches the API contract: status is "fail" for client errors
// and "error" for server errors.
type envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Code    ErrorCode   `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// GinErrorHandler renders AppErrors to clients. In production mode
// internal errors are reduced to a generic message while the full error
// is logged server-side.
type GinErrorHandler struct {
	Debug bool
}

var defaultHandler = &GinErrorHandler{Debug: true}

// SetDebug configures the package-level responder; called once at startup.
func SetDebug(debug bool) {
	defaultHandler = &GinErrorHandler{Debug: debug}
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr := Translate(err)

	if appErr.HTTPCode >= 500 {
		slog.Error("server error",
			"path", c.Request.URL.Path,
			"error", appErr.Error(),
		)
		if !h.Debug {
			appErr = New(CodeInternalError, "system", "Something went very wrong!", appErr.HTTPCode)
		}
	}

	status := "fail"
	if appErr.HTTPCode >= 500 {
		status = "error"
	}

	c.JSON(appErr.HTTPCode, envelope{
		Status:  status,
		Message: appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}

// HandleError is the shortcut every handler uses.
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}
