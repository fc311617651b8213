package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/test/helpers"
)

func jobPayload(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":           title,
		"description":     "Build a REST API",
		"budget":          1500.0,
		"deadline":        time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
		"required_skills": []string{"go", "postgres"},
	}
}

func TestCreateJob(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, client := helpers.CreateClient(t, ts.DB)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", clientToken, jobPayload("API Job"))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var job models.Job
	unmarshalBody(t, body, &job)
	assert.Equal(t, "API Job", job.Title)
	assert.Equal(t, client.ID, job.ClientID)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.NotEmpty(t, job.ID)
	assert.Nil(t, job.HiredFreelancerID)
}

func TestCreateJobForbiddenForFreelancer(t *testing.T) {
	ts := GetTestServer(t)
	freelancerToken, _ := helpers.CreateFreelancer(t, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", freelancerToken, jobPayload("Sneaky Job"))
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestCreateJobValidation(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, _ := helpers.CreateClient(t, ts.DB)

	payload := jobPayload("Bad Budget")
	payload["budget"] = -5.0

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", clientToken, payload)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
}

func TestCreateJobUnauthorized(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", "", jobPayload("No Auth"))
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestListJobsPagination(t *testing.T) {
	ts := GetTestServer(t)
	_, client := helpers.CreateClient(t, ts.DB)

	for i := 0; i < 5; i++ {
		helpers.CreateJob(t, ts.DB, client.ID, fmt.Sprintf("Job %d", i), models.JobStatusOpen)
	}
	helpers.CreateJob(t, ts.DB, client.ID, "Done Job", models.JobStatusCompleted)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?status=open&limit=2&offset=0", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var envelope struct {
		Data       []models.Job `json:"data"`
		Pagination struct {
			Total   int64 `json:"total"`
			Limit   int   `json:"limit"`
			Offset  int   `json:"offset"`
			HasMore bool  `json:"hasMore"`
		} `json:"pagination"`
	}
	unmarshalBody(t, body, &envelope)

	assert.Len(t, envelope.Data, 2)
	assert.EqualValues(t, 5, envelope.Pagination.Total)
	assert.Equal(t, 2, envelope.Pagination.Limit)
	assert.True(t, envelope.Pagination.HasMore)

	// последняя страница
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?status=open&limit=2&offset=4", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	unmarshalBody(t, body, &envelope)
	assert.Len(t, envelope.Data, 1)
	assert.False(t, envelope.Pagination.HasMore)
}

func TestListJobsLimitValidation(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?limit=500", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
}

func TestGetJob(t *testing.T) {
	ts := GetTestServer(t)
	_, client := helpers.CreateClient(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, client.ID, "Visible Job", models.JobStatusOpen)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var got struct {
		models.Job
		Client *models.ProfileSummary `json:"client"`
	}
	unmarshalBody(t, body, &got)
	assert.Equal(t, job.ID, got.ID)
	require.NotNil(t, got.Client)
	assert.Equal(t, client.ID, got.Client.ID)
}

func TestGetJobNotFound(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/00000000-0000-0000-0000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestGetMyJobs(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, client := helpers.CreateClient(t, ts.DB)
	_, otherClient := helpers.CreateClient(t, ts.DB)

	helpers.CreateJob(t, ts.DB, client.ID, "Mine", models.JobStatusOpen)
	helpers.CreateJob(t, ts.DB, otherClient.ID, "Not Mine", models.JobStatusOpen)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/my", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var envelope struct {
		Data []models.Job `json:"data"`
	}
	unmarshalBody(t, body, &envelope)
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Mine", envelope.Data[0].Title)
}

func TestCompleteJob(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, client := helpers.CreateClient(t, ts.DB)
	_, freelancer := helpers.CreateFreelancer(t, ts.DB)

	job := helpers.CreateJob(t, ts.DB, client.ID, "Work In Progress", models.JobStatusInProgress)
	require.NoError(t, ts.DB.Model(job).Update("hired_freelancer_id", freelancer.ID).Error)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/complete", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.Job
	unmarshalBody(t, body, &updated)
	assert.Equal(t, models.JobStatusCompleted, updated.Status)

	// фрилансер получает уведомление о завершении
	var count int64
	ts.DB.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", freelancer.ID, models.NotificationTypeJobCompleted).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCompleteJobInvalidState(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, client := helpers.CreateClient(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, client.ID, "Still Open", models.JobStatusOpen)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/complete", clientToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "INVALID_STATUS", errorCode(t, body))
}

func TestCompleteJobNotOwner(t *testing.T) {
	ts := GetTestServer(t)
	_, client := helpers.CreateClient(t, ts.DB)
	strangerToken, _ := helpers.CreateClient(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, client.ID, "Foreign Job", models.JobStatusInProgress)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/complete", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, body))
}

func TestCancelJob(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, client := helpers.CreateClient(t, ts.DB)
	_, freelancer := helpers.CreateFreelancer(t, ts.DB)

	job := helpers.CreateJob(t, ts.DB, client.ID, "To Cancel", models.JobStatusOpen)
	bid := helpers.CreateBid(t, ts.DB, job.ID, freelancer.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/cancel", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.Job
	unmarshalBody(t, body, &updated)
	assert.Equal(t, models.JobStatusCancelled, updated.Status)

	// ожидающая ставка отклонена, фрилансер уведомлен
	var storedBid models.Bid
	require.NoError(t, ts.DB.First(&storedBid, "id = ?", bid.ID).Error)
	assert.Equal(t, models.BidStatusRejected, storedBid.Status)

	var count int64
	ts.DB.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", freelancer.ID, models.NotificationTypeJobCancelled).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCancelJobInvalidState(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, client := helpers.CreateClient(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, client.ID, "Running", models.JobStatusInProgress)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/cancel", clientToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "INVALID_STATUS", errorCode(t, body))
}
