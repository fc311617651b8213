package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/test/helpers"
)

func completedJob(t *testing.T, ts *helpers.TestServer, clientID, freelancerID string) *models.Job {
	job := helpers.CreateJob(t, ts.DB, clientID, "Finished Job", models.JobStatusCompleted)
	require.NoError(t, ts.DB.Model(job).Update("hired_freelancer_id", freelancerID).Error)
	job.HiredFreelancerID = &freelancerID
	return job
}

func TestPreparePayment(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, client := helpers.CreateClient(t, ts.DB)
	_, freelancer := helpers.CreateFreelancer(t, ts.DB)
	job := completedJob(t, ts, client.ID, freelancer.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/payments/prepare", clientToken,
		map[string]interface{}{"job_id": job.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var prepared struct {
		Success       bool   `json:"success"`
		TransactionID string `json:"transaction_id"`
		PaymentData   struct {
			Amount      int64  `json:"amount"`
			Currency    string `json:"currency"`
			Description string `json:"description"`
		} `json:"payment_data"`
	}
	unmarshalBody(t, body, &prepared)
	assert.True(t, prepared.Success)
	require.NotEmpty(t, prepared.TransactionID)
	// бюджет 1000 в минорных единицах
	assert.EqualValues(t, 100000, prepared.PaymentData.Amount)
	assert.Equal(t, "INR", prepared.PaymentData.Currency)
	assert.Contains(t, prepared.PaymentData.Description, "Finished Job")

	// транзакция записана в pending с точным разбиением суммы
	var tx models.Transaction
	require.NoError(t, ts.DB.First(&tx, "id = ?", prepared.TransactionID).Error)
	assert.Equal(t, models.TransactionStatusPending, tx.Status)
	assert.Equal(t, client.ID, tx.ClientID)
	assert.Equal(t, freelancer.ID, tx.FreelancerID)
	assert.InDelta(t, 1000.0, tx.Amount, 1e-9)
	assert.InDelta(t, 100.0, tx.PlatformFee, 1e-9)
	assert.InDelta(t, 900.0, tx.FreelancerPayout, 1e-9)
	assert.InDelta(t, tx.Amount, tx.PlatformFee+tx.FreelancerPayout, 1e-9)
}

func TestPreparePaymentJobNotCompleted(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, client := helpers.CreateClient(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, client.ID, "Still Running", models.JobStatusInProgress)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/payments/prepare", clientToken,
		map[string]interface{}{"job_id": job.ID})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "INVALID_STATUS", errorCode(t, body))
}

func TestPreparePaymentNotOwner(t *testing.T) {
	ts := GetTestServer(t)
	_, client := helpers.CreateClient(t, ts.DB)
	strangerToken, _ := helpers.CreateClient(t, ts.DB)
	_, freelancer := helpers.CreateFreelancer(t, ts.DB)
	job := completedJob(t, ts, client.ID, freelancer.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/payments/prepare", strangerToken,
		map[string]interface{}{"job_id": job.ID})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, body))
}

func TestPreparePaymentForbiddenForFreelancer(t *testing.T) {
	ts := GetTestServer(t)
	_, client := helpers.CreateClient(t, ts.DB)
	freelancerToken, freelancer := helpers.CreateFreelancer(t, ts.DB)
	job := completedJob(t, ts, client.ID, freelancer.ID)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/payments/prepare", freelancerToken,
		map[string]interface{}{"job_id": job.ID})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestGetMyTransactions(t *testing.T) {
	ts := GetTestServer(t)
	clientToken, client := helpers.CreateClient(t, ts.DB)
	freelancerToken, freelancer := helpers.CreateFreelancer(t, ts.DB)
	job := completedJob(t, ts, client.ID, freelancer.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/payments/prepare", clientToken,
		map[string]interface{}{"job_id": job.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// транзакцию видят обе стороны
	for _, token := range []string{clientToken, freelancerToken} {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/payments/my", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var envelope struct {
			Data []models.Transaction `json:"data"`
		}
		unmarshalBody(t, body, &envelope)
		require.Len(t, envelope.Data, 1)
		assert.Equal(t, job.ID, envelope.Data[0].JobID)
	}
}
