package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Role   string  `json:"role" validate:"required,is-profile-role"`
	Status string  `json:"status" validate:"omitempty,is-job-status"`
	Budget float64 `json:"budget" validate:"required,gt=0"`
}

func TestValidateOK(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{Role: "client", Status: "open", Budget: 100})
	assert.NoError(t, err)
}

func TestValidateCustomRules(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Role: "admin", Status: "archived", Budget: 100})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	// ключи ошибок - имена json-полей
	assert.Contains(t, vErr.Errors, "role")
	assert.Contains(t, vErr.Errors, "status")
	assert.NotContains(t, vErr.Errors, "budget")
}

func TestValidateBudgetPositive(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Role: "freelancer", Budget: -10})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "budget")
}
