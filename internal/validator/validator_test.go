package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"accountType" validate:"required,is-account-role"`
	WorkType  string `json:"workType" validate:"omitempty,is-work-type"`
	JobStatus string `json:"status" validate:"omitempty,is-job-status"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(samplePayload{Role: "job_seeker"})
	require.Error(t, err)

	verrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	assert.Contains(t, verrs, "email")
	assert.NotContains(t, verrs, "Email")
}

func TestAccountRoleRule(t *testing.T) {
	assert.NoError(t, Struct(samplePayload{Email: "a@b.com", Role: "job_seeker"}))
	assert.NoError(t, Struct(samplePayload{Email: "a@b.com", Role: "company"}))

	err := Struct(samplePayload{Email: "a@b.com", Role: "admin"})
	require.Error(t, err)
	verrs := err.(ValidationErrors)
	assert.Contains(t, verrs, "accountType")
}

func TestWorkTypeRule(t *testing.T) {
	assert.NoError(t, Struct(samplePayload{Email: "a@b.com", Role: "company", WorkType: "full_time"}))
	assert.Error(t, Struct(samplePayload{Email: "a@b.com", Role: "company", WorkType: "weekend_only"}))
}

func TestJobStatusRuleUsesDisplayVocabulary(t *testing.T) {
	assert.NoError(t, Struct(samplePayload{Email: "a@b.com", Role: "company", JobStatus: "Active"}))
	assert.NoError(t, Struct(samplePayload{Email: "a@b.com", Role: "company", JobStatus: "Paused"}))
	assert.Error(t, Struct(samplePayload{Email: "a@b.com", Role: "company", JobStatus: "published"}))
}
