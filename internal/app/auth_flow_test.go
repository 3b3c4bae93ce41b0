package app_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpro_backend/internal/models"
)

func TestSignupDuplicateEmail(t *testing.T) {
	router, _ := newTestServer(t)

	payload := gin.H{
		"email":           "dup@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
		"accountType":     "job_seeker",
	}

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "fail", env.Status)
}

func TestSignupEmailIsCaseInsensitive(t *testing.T) {
	router, _ := newTestServer(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":           "Mixed@Example.com",
		"password":        "password123",
		"confirmPassword": "password123",
		"accountType":     "job_seeker",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":           "mixed@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
		"accountType":     "job_seeker",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupPasswordMismatch(t *testing.T) {
	router, _ := newTestServer(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":           "mismatch@example.com",
		"password":        "password123",
		"confirmPassword": "different123",
		"accountType":     "job_seeker",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupRejectsAdminRole(t *testing.T) {
	router, _ := newTestServer(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":           "sneaky@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
		"accountType":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Wrong credentials must answer 401 before the verification state is
// consulted, so the two cases are distinguishable only with the right
// password.
func TestLoginChecksCredentialsBeforeVerificationGate(t *testing.T) {
	router, _ := newTestServer(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":           "gate@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
		"accountType":     "job_seeker",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "gate@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "gate@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerificationCodeIsSingleUse(t *testing.T) {
	router, db := newTestServer(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":           "once@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
		"accountType":     "job_seeker",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	code := latestCode(t, db, "once@example.com", models.TokenKindEmailVerification)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/verify-email", "", gin.H{
		"email": "once@example.com",
		"code":  code,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/verify-email", "", gin.H{
		"email": "once@example.com",
		"code":  code,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResendInvalidatesOldCode(t *testing.T) {
	router, db := newTestServer(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":           "resend@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
		"accountType":     "job_seeker",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	oldCode := latestCode(t, db, "resend@example.com", models.TokenKindEmailVerification)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/resend-code", "", gin.H{
		"email": "resend@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/verify-email", "", gin.H{
		"email": "resend@example.com",
		"code":  oldCode,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	newCode := latestCode(t, db, "resend@example.com", models.TokenKindEmailVerification)
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/verify-email", "", gin.H{
		"email": "resend@example.com",
		"code":  newCode,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResendRateLimit(t *testing.T) {
	router, _ := newTestServer(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":           "throttle@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
		"accountType":     "job_seeker",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Signup issued the first code; two resends fill the hourly quota.
	for i := 0; i < 2; i++ {
		w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/resend-code", "", gin.H{
			"email": "throttle@example.com",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/resend-code", "", gin.H{
		"email": "throttle@example.com",
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestForgotPasswordDoesNotRevealAccounts(t *testing.T) {
	router, _ := newTestServer(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/forgot-password", "", gin.H{
		"email": "nobody@example.com",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	router, db := newTestServer(t)

	signupVerified(t, router, db, "reset@example.com", "job_seeker")

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/forgot-password", "", gin.H{
		"email": "reset@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	token := latestCode(t, db, "reset@example.com", models.TokenKindPasswordReset)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/reset-password", "", gin.H{
		"token":           token,
		"password":        "newpassword456",
		"confirmPassword": "newpassword456",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Old password no longer works; new one does.
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "reset@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "reset@example.com",
		"password": "newpassword456",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// The reset token is spent.
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/reset-password", "", gin.H{
		"token":           token,
		"password":        "anotherpass789",
		"confirmPassword": "anotherpass789",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	router, db := newTestServer(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := signupVerified(t, router, db, "me@example.com", "job_seeker")
	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
