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

func seekerMe(t *testing.T, router *gin.Engine, token string) map[string]json.RawMessage {
	t.Helper()

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/seeker/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &me))
	return me
}

func TestSeekerOnboardingAdvancesSteps(t *testing.T) {
	router, db := newTestServer(t)
	token := signupVerified(t, router, db, "wizard@example.com", "job_seeker")

	me := seekerMe(t, router, token)
	assert.Equal(t, "1", string(me["registrationStep"]))

	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/seeker/profile/step1", token, gin.H{
		"fullName":  "Ada Lovelace",
		"jobTitle":  "Engineer",
		"location":  "London",
		"birthDate": "1990-12-10",
		"gender":    "female",
	})
	require.Equal(t, http.StatusOK, w.Code)

	me = seekerMe(t, router, token)
	assert.Equal(t, "2", string(me["registrationStep"]))

	var personal struct {
		FullName  string `json:"fullName"`
		BirthDate string `json:"birthDate"`
	}
	require.NoError(t, json.Unmarshal(me["personalInfo"], &personal))
	assert.Equal(t, "Ada Lovelace", personal.FullName)
	assert.Equal(t, "1990-12-10", personal.BirthDate)

	w, _ = doJSON(t, router, http.MethodPatch, "/api/v1/seeker/profile/step2", token, gin.H{
		"yearsOfExperience": 5,
		"industry":          "tech",
		"degree":            "BSc",
		"university":        "UCL",
		"graduationYear":    2012,
		"skills":            []string{"Go", "Postgres"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	me = seekerMe(t, router, token)
	assert.Equal(t, "3", string(me["registrationStep"]))

	w, _ = doUpload(t, router, "/api/v1/seeker/profile/cv", token,
		"cvFile", "cv.pdf", "application/pdf", []byte("%PDF-1.4"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	me = seekerMe(t, router, token)
	assert.Equal(t, "4", string(me["registrationStep"]))

	var cv struct {
		CvURL          string `json:"cvUrl"`
		AnalysisStatus string `json:"analysisStatus"`
	}
	require.NoError(t, json.Unmarshal(me["cv"], &cv))
	assert.NotEmpty(t, cv.CvURL)

	var skills []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(me["skills"], &skills))
	assert.Len(t, skills, 2)
}

func TestSeekerStepDoesNotMoveBackwards(t *testing.T) {
	router, db := newTestServer(t)
	token := newSeekerWithCv(t, router, db, "noback@example.com")

	// Redoing step1 keeps the account at the final step.
	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/seeker/profile/step1", token, gin.H{
		"fullName": "Renamed Person",
	})
	require.Equal(t, http.StatusOK, w.Code)

	me := seekerMe(t, router, token)
	assert.Equal(t, "4", string(me["registrationStep"]))
}

func TestStep2WithoutStep1Fails(t *testing.T) {
	router, db := newTestServer(t)
	token := signupVerified(t, router, db, "skipper@example.com", "job_seeker")

	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/seeker/profile/step2", token, gin.H{
		"yearsOfExperience": 3,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCvUploadRejectsWrongType(t *testing.T) {
	router, db := newTestServer(t)
	token := signupVerified(t, router, db, "badcv@example.com", "job_seeker")

	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/seeker/profile/step1", token, gin.H{
		"fullName": "Test",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doUpload(t, router, "/api/v1/seeker/profile/cv", token,
		"cvFile", "photo.png", "image/png", []byte("not a pdf"), nil)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestToggleSavedJob(t *testing.T) {
	router, db := newTestServer(t)

	companyToken := newCompanyWithProfile(t, router, db, "saver-co@example.com", "SaverCo")
	jobID := createJob(t, router, companyToken, "Backend Engineer")

	token := signupVerified(t, router, db, "saver@example.com", "job_seeker")
	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/seeker/profile/step1", token, gin.H{
		"fullName": "Saver",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Save.
	w, env := doJSON(t, router, http.MethodPost, "/api/v1/seeker/saved-jobs", token, gin.H{"jobId": jobID})
	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		Saved bool `json:"saved"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Saved)

	me := seekerMe(t, router, token)
	var saved []string
	require.NoError(t, json.Unmarshal(me["savedJobs"], &saved))
	assert.Equal(t, []string{jobID}, saved)

	// Toggle off.
	w, env = doJSON(t, router, http.MethodPost, "/api/v1/seeker/saved-jobs", token, gin.H{"jobId": jobID})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.False(t, result.Saved)

	me = seekerMe(t, router, token)
	require.NoError(t, json.Unmarshal(me["savedJobs"], &saved))
	assert.Empty(t, saved)
}

func TestToggleSavedJobUnknownJob(t *testing.T) {
	router, db := newTestServer(t)
	token := signupVerified(t, router, db, "ghost@example.com", "job_seeker")

	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/seeker/profile/step1", token, gin.H{
		"fullName": "Ghost",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/seeker/saved-jobs", token, gin.H{
		"jobId": "00000000-0000-0000-0000-000000000000",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyAndDuplicateApply(t *testing.T) {
	router, db := newTestServer(t)

	companyToken := newCompanyWithProfile(t, router, db, "hiring@example.com", "HiringCo")
	jobID := createJob(t, router, companyToken, "Go Developer")

	seekerToken := newSeekerWithCv(t, router, db, "applicant@example.com")

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/seeker/applications", seekerToken, gin.H{
		"jobId":       jobID,
		"coverLetter": "I would love to join.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/seeker/applications", seekerToken, gin.H{
		"jobId": jobID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApplyWithoutCvFails(t *testing.T) {
	router, db := newTestServer(t)

	companyToken := newCompanyWithProfile(t, router, db, "nocv-co@example.com", "NoCvCo")
	jobID := createJob(t, router, companyToken, "Analyst")

	token := signupVerified(t, router, db, "nocv@example.com", "job_seeker")
	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/seeker/profile/step1", token, gin.H{
		"fullName": "No CV",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/seeker/applications", token, gin.H{
		"jobId": jobID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithdrawOwnershipIsolation(t *testing.T) {
	router, db := newTestServer(t)

	companyToken := newCompanyWithProfile(t, router, db, "iso-co@example.com", "IsoCo")
	jobID := createJob(t, router, companyToken, "Designer")

	tokenA := newSeekerWithCv(t, router, db, "seeker-a@example.com")
	tokenB := newSeekerWithCv(t, router, db, "seeker-b@example.com")

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/seeker/applications", tokenA, gin.H{
		"jobId": jobID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var app struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &app))

	// Seeker B cannot withdraw A's application.
	w, _ = doJSON(t, router, http.MethodDelete, "/api/v1/seeker/applications/"+app.ID, tokenB, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A can.
	w, _ = doJSON(t, router, http.MethodDelete, "/api/v1/seeker/applications/"+app.ID, tokenA, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, router, http.MethodGet, "/api/v1/seeker/applications", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Results)
}

func TestSeekerRoutesRejectCompanyRole(t *testing.T) {
	router, db := newTestServer(t)
	token := signupVerified(t, router, db, "wrongrole@example.com", "company")

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/seeker/me", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
