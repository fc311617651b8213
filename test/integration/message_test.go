package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/test/helpers"
)

func inProgressJob(t *testing.T, ts *helpers.TestServer, clientID, freelancerID string) *models.Job {
	job := helpers.CreateJob(t, ts.DB, clientID, "Active Job", models.JobStatusInProgress)
	require.NoError(t, ts.DB.Model(job).Update("hired_freelancer_id", freelancerID).Error)
	job.HiredFreelancerID = &freelancerID
	return job
}

func TestSendMessage(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, client := helpers.CreateClient(t, ts.DB)
	_, freelancer := helpers.CreateFreelancer(t, ts.DB)
	job := inProgressJob(t, ts, client.ID, freelancer.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/messages", clientToken, map[string]interface{}{
		"job_id":  job.ID,
		"content": "How is it going?",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var message models.Message
	unmarshalBody(t, body, &message)
	assert.Equal(t, client.ID, message.SenderID)
	assert.Equal(t, freelancer.ID, message.ReceiverID)
	assert.False(t, message.IsRead)

	// получатель уведомлен
	var count int64
	ts.DB.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", freelancer.ID, models.NotificationTypeNewMessage).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSendMessageNotParticipant(t *testing.T) {
	ts := GetTestServer(t)
	_, client := helpers.CreateClient(t, ts.DB)
	strangerToken, _ := helpers.CreateFreelancer(t, ts.DB)
	_, freelancer := helpers.CreateFreelancer(t, ts.DB)
	job := inProgressJob(t, ts, client.ID, freelancer.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/messages", strangerToken, map[string]interface{}{
		"job_id":  job.ID,
		"content": "Let me in",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, body))
}

func TestSendMessageNoFreelancerHired(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, client := helpers.CreateClient(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, client.ID, "No Hire Yet", models.JobStatusOpen)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/messages", clientToken, map[string]interface{}{
		"job_id":  job.ID,
		"content": "Anyone there?",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "INVALID_STATUS", errorCode(t, body))
}

func TestJobConversation(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, client := helpers.CreateClient(t, ts.DB)
	freelancerToken, freelancer := helpers.CreateFreelancer(t, ts.DB)
	job := inProgressJob(t, ts, client.ID, freelancer.ID)

	for _, msg := range []struct {
		token   string
		content string
	}{
		{clientToken, "Any updates?"},
		{freelancerToken, "Almost done"},
	} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/messages", msg.token,
			map[string]interface{}{"job_id": job.ID, "content": msg.content})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	// переписка в хронологическом порядке
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/messages", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var envelope struct {
		Data []models.Message `json:"data"`
	}
	unmarshalBody(t, body, &envelope)
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "Any updates?", envelope.Data[0].Content)
	assert.Equal(t, "Almost done", envelope.Data[1].Content)

	// клиент помечает входящие прочитанными
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+job.ID+"/messages/read", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var unread int64
	ts.DB.Model(&models.Message{}).
		Where("job_id = ? AND receiver_id = ? AND is_read = ?", job.ID, client.ID, false).
		Count(&unread)
	assert.EqualValues(t, 0, unread)
}

func TestJobConversationForbiddenForOutsider(t *testing.T) {
	ts := GetTestServer(t)
	_, client := helpers.CreateClient(t, ts.DB)
	strangerToken, _ := helpers.CreateClient(t, ts.DB)
	_, freelancer := helpers.CreateFreelancer(t, ts.DB)
	job := inProgressJob(t, ts, client.ID, freelancer.ID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/messages", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, body))
}
