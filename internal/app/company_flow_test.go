package app_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpro_backend/internal/models"
)

func uploadVerificationDoc(t *testing.T, router *gin.Engine, token string) string {
	t.Helper()

	w, env := doUpload(t, router, "/api/v1/company/verification/document", token,
		"verificationDocument", "license.pdf", "application/pdf", []byte("%PDF-1.4 license"),
		map[string]string{"documentType": "business_license"})
	require.Equal(t, http.StatusCreated, w.Code)

	var doc struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &doc))
	require.NotEmpty(t, doc.ID)
	return doc.ID
}

func TestCompanyOnboardingAdvancesSteps(t *testing.T) {
	router, db := newTestServer(t)
	token := signupVerified(t, router, db, "co-wizard@example.com", "company")

	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/company/profile/step1", token, gin.H{
		"companyName": "Initech",
		"companySize": "51-200",
		"industry":    "software",
		"foundedYear": 1999,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var account struct {
		RegistrationStep int `json:"registrationStep"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &account))
	assert.Equal(t, 2, account.RegistrationStep)

	w, _ = doJSON(t, router, http.MethodPatch, "/api/v1/company/profile/step2", token, gin.H{
		"companyDescription": "We make TPS reports painless.",
		"website":            "https://initech.example.com",
		"technologies":       []string{"Go", "Postgres"},
		"benefits":           []string{"Remote work"},
		"socialMedia":        map[string]string{"linkedin": "initech"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &account))
	assert.Equal(t, 3, account.RegistrationStep)

	uploadVerificationDoc(t, router, token)

	w, env = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &account))
	assert.Equal(t, 4, account.RegistrationStep)
}

func TestVerificationUploadSupersedesOldDocuments(t *testing.T) {
	router, db := newTestServer(t)
	token := newCompanyWithProfile(t, router, db, "supersede@example.com", "SupersedeCo")

	uploadVerificationDoc(t, router, token)
	uploadVerificationDoc(t, router, token)

	// Only one live document remains.
	var count int64
	require.NoError(t, db.Model(&models.VerificationDocument{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/company/verification/status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status struct {
		Status   string `json:"verificationStatus"`
		Progress int    `json:"verificationProgress"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "in_progress", status.Status)
	assert.Equal(t, 100, status.Progress)
}

func TestAdminApproveVerification(t *testing.T) {
	router, db := newTestServer(t)
	token := newCompanyWithProfile(t, router, db, "approve-me@example.com", "ApproveCo")
	docID := uploadVerificationDoc(t, router, token)

	adminToken := seedAdmin(t, db)

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/admin/verification/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Results)

	w, _ = doJSON(t, router, http.MethodPatch, "/api/v1/admin/verification/documents/"+docID, adminToken, gin.H{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, router, http.MethodGet, "/api/v1/company/verification/status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status struct {
		Status     string `json:"verificationStatus"`
		Progress   int    `json:"verificationProgress"`
		IsVerified bool   `json:"isVerified"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "verified", status.Status)
	assert.Equal(t, 100, status.Progress)
	assert.True(t, status.IsVerified)

	// Verified is terminal; another upload is refused.
	w, _ = doUpload(t, router, "/api/v1/company/verification/document", token,
		"verificationDocument", "again.pdf", "application/pdf", []byte("%PDF"), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminRejectVerification(t *testing.T) {
	router, db := newTestServer(t)
	token := newCompanyWithProfile(t, router, db, "reject-me@example.com", "RejectCo")
	docID := uploadVerificationDoc(t, router, token)

	adminToken := seedAdmin(t, db)

	// Rejection without a reason is refused.
	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/admin/verification/documents/"+docID, adminToken, gin.H{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPatch, "/api/v1/admin/verification/documents/"+docID, adminToken, gin.H{
		"status":          "rejected",
		"rejectionReason": "Document is illegible",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/company/verification/status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status struct {
		Status   string `json:"verificationStatus"`
		Progress int    `json:"verificationProgress"`
		Document struct {
			RejectionReason string `json:"rejectionReason"`
		} `json:"document"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "rejected", status.Status)
	assert.Equal(t, 0, status.Progress)
	assert.Equal(t, "Document is illegible", status.Document.RejectionReason)

	// A rejected company can try again.
	uploadVerificationDoc(t, router, token)

	w, env = doJSON(t, router, http.MethodGet, "/api/v1/company/verification/status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "in_progress", status.Status)
}

func TestReviewStaleDocumentFails(t *testing.T) {
	router, db := newTestServer(t)
	token := newCompanyWithProfile(t, router, db, "stale@example.com", "StaleCo")

	staleID := uploadVerificationDoc(t, router, token)
	// Second upload supersedes (and deletes) the first document.
	uploadVerificationDoc(t, router, token)

	adminToken := seedAdmin(t, db)
	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/admin/verification/documents/"+staleID, adminToken, gin.H{
		"status": "approved",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	router, db := newTestServer(t)
	token := newCompanyWithProfile(t, router, db, "notadmin@example.com", "NotAdminCo")

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/admin/verification/pending", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCompanyDashboard(t *testing.T) {
	router, db := newTestServer(t)
	token := newCompanyWithProfile(t, router, db, "dash@example.com", "DashCo")

	createJob(t, router, token, "Role One")
	jobID := createJob(t, router, token, "Role Two")

	seekerToken := newSeekerWithCv(t, router, db, "dash-seeker@example.com")
	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/seeker/applications", seekerToken, gin.H{
		"jobId": jobID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/company/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		ActiveJobs        int64 `json:"activeJobs"`
		TotalJobs         int64 `json:"totalJobs"`
		TotalApplications int64 `json:"totalApplications"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(2), stats.ActiveJobs)
	assert.Equal(t, int64(2), stats.TotalJobs)
	assert.Equal(t, int64(1), stats.TotalApplications)
}

func TestCompanyLogoUpload(t *testing.T) {
	router, db := newTestServer(t)
	token := newCompanyWithProfile(t, router, db, "logo@example.com", "LogoCo")

	w, env := doUpload(t, router, "/api/v1/company/profile/logo", token,
		"logoFile", "logo.png", "image/png", []byte{0x89, 0x50, 0x4E, 0x47}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		LogoURL string `json:"logoUrl"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.NotEmpty(t, profile.LogoURL)

	// A document where an image is expected is refused.
	w, _ = doUpload(t, router, "/api/v1/company/profile/logo", token,
		"logoFile", "logo.pdf", "application/pdf", []byte("%PDF"), nil)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
