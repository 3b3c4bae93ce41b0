package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"careerpro_backend/internal/app"
	"careerpro_backend/internal/auth"
	"careerpro_backend/internal/config"
	"careerpro_backend/internal/models"
	"careerpro_backend/pkg/apperrors"
)

// envelope mirrors the response wrapper for both success and error
// payloads.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Results int             `json:"results"`
	Data    json.RawMessage `json:"data"`
	Details json.RawMessage `json:"details"`
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	auth.Configure("test-secret", 60)
	apperrors.SetDebug(true)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, app.Migrate(db))

	cfg := &config.Config{
		Server: config.ServerConfig{Env: "test"},
		Storage: config.StorageConfig{
			Backend:  "local",
			LocalDir: t.TempDir(),
		},
		Email:  config.EmailConfig{Provider: "log"},
		Upload: config.UploadConfig{MaxSizeMB: 5},
	}

	router, err := app.SetupRouter(cfg, db)
	require.NoError(t, err)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// doUpload posts a multipart form with one file part and optional extra
// string fields.
func doUpload(t *testing.T, router *gin.Engine, path, token, field, filename, contentType string, content []byte, extra map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	for k, v := range extra {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// latestCode reads the live verification code straight from the
// database, standing in for the email the user would receive.
func latestCode(t *testing.T, db *gorm.DB, email string, kind models.TokenKind) string {
	t.Helper()

	var account models.Account
	require.NoError(t, db.First(&account, "email = ?", email).Error)

	var token models.AuthToken
	require.NoError(t, db.
		Where("account_id = ? AND kind = ? AND used = ?", account.ID, kind, false).
		Order("created_at DESC").
		First(&token).Error)
	return token.Token
}

// signupVerified registers an account, verifies it with the emailed
// code and returns the access token.
func signupVerified(t *testing.T, router *gin.Engine, db *gorm.DB, email, accountType string) string {
	t.Helper()

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":           email,
		"password":        "password123",
		"confirmPassword": "password123",
		"accountType":     accountType,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	code := latestCode(t, db, email, models.TokenKindEmailVerification)
	w, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/verify-email", "", gin.H{
		"email": email,
		"code":  code,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// newSeekerWithCv runs the whole seeker wizard so the account can apply
// to jobs.
func newSeekerWithCv(t *testing.T, router *gin.Engine, db *gorm.DB, email string) string {
	t.Helper()

	token := signupVerified(t, router, db, email, "job_seeker")

	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/seeker/profile/step1", token, gin.H{
		"fullName": "Test Seeker",
		"jobTitle": "Engineer",
		"location": "Berlin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPatch, "/api/v1/seeker/profile/step2", token, gin.H{
		"yearsOfExperience": 3,
		"industry":          "tech",
		"skills":            []string{"Go", "SQL"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doUpload(t, router, "/api/v1/seeker/profile/cv", token,
		"cvFile", "resume.pdf", "application/pdf", []byte("%PDF-1.4 test"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	return token
}

// newCompanyWithProfile registers a company account and completes step1
// so the caller has a profile id.
func newCompanyWithProfile(t *testing.T, router *gin.Engine, db *gorm.DB, email, name string) string {
	t.Helper()

	token := signupVerified(t, router, db, email, "company")

	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/company/profile/step1", token, gin.H{
		"companyName": name,
		"companySize": "11-50",
		"industry":    "tech",
	})
	require.Equal(t, http.StatusOK, w.Code)

	return token
}

// createJob posts a published job and returns its id.
func createJob(t *testing.T, router *gin.Engine, token, title string) string {
	t.Helper()

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/company/jobs", token, gin.H{
		"title":       title,
		"location":    "Berlin",
		"type":        "full_time",
		"description": "Join our growing team.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var job struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &job))
	require.NotEmpty(t, job.ID)
	return job.ID
}

// seedAdmin inserts a verified admin account directly and returns a
// token for it.
func seedAdmin(t *testing.T, db *gorm.DB) string {
	t.Helper()

	hash, err := auth.HashPassword("admin-password")
	require.NoError(t, err)

	admin := &models.Account{
		Email:        fmt.Sprintf("admin-%s@example.com", uuid.NewString()[:8]),
		PasswordHash: hash,
		Role:         models.AccountRoleAdmin,
		IsVerified:   true,
	}
	require.NoError(t, db.Create(admin).Error)

	token, err := auth.GenerateToken(admin.ID, string(admin.Role))
	require.NoError(t, err)
	return token
}
