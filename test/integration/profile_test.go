package integration_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub_backend/internal/auth"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/test/helpers"
)

func freshToken(t *testing.T, role string) (string, string) {
	userID := uuid.NewString()
	token, err := auth.GenerateToken(userID, role)
	require.NoError(t, err)
	return token, userID
}

func TestCreateProfile(t *testing.T) {
	ts := GetTestServer(t)
	token, userID := freshToken(t, "freelancer")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/profiles", token, map[string]interface{}{
		"role":        "freelancer",
		"full_name":   "Jane Developer",
		"bio":         "Backend engineer",
		"skills":      []string{"go", "postgres"},
		"hourly_rate": 45.0,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var profile models.Profile
	unmarshalBody(t, body, &profile)
	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, models.ProfileRoleFreelancer, profile.Role)
	assert.Equal(t, "Jane Developer", profile.FullName)
}

func TestCreateProfileDuplicate(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateClient(t, ts.DB)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/profiles", token, map[string]interface{}{
		"role":      "client",
		"full_name": "Second Attempt",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Equal(t, "ALREADY_EXISTS", errorCode(t, body))
}

func TestCreateProfileInvalidRole(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := freshToken(t, "client")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/profiles", token, map[string]interface{}{
		"role":      "admin",
		"full_name": "Wannabe Admin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
}

func TestGetMyProfile(t *testing.T) {
	ts := GetTestServer(t)
	token, profile := helpers.CreateClient(t, ts.DB)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var got models.Profile
	unmarshalBody(t, body, &got)
	assert.Equal(t, profile.ID, got.ID)
	assert.Equal(t, profile.FullName, got.FullName)
}

func TestGetMyProfileMissing(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := freshToken(t, "client")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/me", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestUpdateMyProfileKeepsRole(t *testing.T) {
	ts := GetTestServer(t)
	token, profile := helpers.CreateFreelancer(t, ts.DB)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/profiles/me", token, map[string]interface{}{
		"full_name":   "Renamed Freelancer",
		"bio":         "Updated bio",
		"skills":      []string{"rust"},
		"hourly_rate": 60.0,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var got models.Profile
	unmarshalBody(t, body, &got)
	assert.Equal(t, "Renamed Freelancer", got.FullName)
	// роль неизменяема
	assert.Equal(t, profile.Role, got.Role)
}

func TestGetOtherProfileSummary(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateClient(t, ts.DB)
	_, other := helpers.CreateFreelancer(t, ts.DB)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/"+other.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var summary models.ProfileSummary
	unmarshalBody(t, body, &summary)
	assert.Equal(t, other.ID, summary.ID)
	assert.Equal(t, other.FullName, summary.FullName)
}
