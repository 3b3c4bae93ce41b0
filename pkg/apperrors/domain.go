package apperrors

import "net/http"

// Predefined errors for the flows every service shares. Services raise
// these; nothing below the handler layer formats an HTTP response.

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"This email address is already registered. Please log in instead.",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Incorrect email or password",
	http.StatusUnauthorized,
)

var ErrAccountNotVerified = New(
	CodeForbidden,
	"auth",
	"Please verify your email address before logging in",
	http.StatusForbidden,
)

var ErrInvalidVerificationCode = New(
	CodeValidationFailed,
	"auth",
	"Invalid or expired verification code",
	http.StatusBadRequest,
)

var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"auth",
	"Passwords do not match",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters.",
	http.StatusBadRequest,
)

var ErrInvalidAccountRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid account type for this operation",
	http.StatusBadRequest,
)

var ErrTooManyResetRequests = New(
	CodeRateLimited,
	"auth",
	"Too many password reset requests. Please try again later.",
	http.StatusTooManyRequests,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token. Please log in again.",
	http.StatusUnauthorized,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Your token has expired. Please log in again.",
	http.StatusUnauthorized,
)

// --- Profiles ---

var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found. Please complete your profile.",
	http.StatusNotFound,
)

var ErrProfileIncomplete = New(
	CodeValidationFailed,
	"profile",
	"Please complete your profile before applying",
	http.StatusBadRequest,
)

// --- Jobs & applications ---

// ErrJobNotFound covers both a missing job and a job owned by someone
// else; the two are deliberately indistinguishable to the caller.
var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found or unauthorized",
	http.StatusNotFound,
)

var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrApplicationNotOwned = New(
	CodeForbidden,
	"application",
	"You are not authorized to manage this application",
	http.StatusForbidden,
)

// --- Verification workflow ---

var ErrDocumentNotFound = New(
	CodeNotFound,
	"verification",
	"Verification document not found",
	http.StatusNotFound,
)

var ErrRejectionReasonRequired = New(
	CodeValidationFailed,
	"verification",
	"Please provide a rejection reason",
	http.StatusBadRequest,
)

var ErrInvalidReviewDecision = New(
	CodeValidationFailed,
	"verification",
	"Status must be either approved or rejected",
	http.StatusBadRequest,
)

func ErrInvalidVerificationTransition(from, to string) *AppError {
	return New(
		CodeInvalidStatus,
		"verification",
		"Verification status cannot move from "+from+" to "+to,
		http.StatusConflict,
	)
}

// --- Uploads ---

var ErrFileMissing = New(
	CodeValidationFailed,
	"upload",
	"Please upload a file",
	http.StatusBadRequest,
)

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"File is too large. Maximum size is 5MB.",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
