package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"freelancehub_backend/internal/models"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации - это ошибка времени запуска приложения
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-profile-role", validateProfileRole)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-bid-status", validateBidStatus)
}

func validateProfileRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}
	switch models.ProfileRole(value) {
	case models.ProfileRoleClient, models.ProfileRoleFreelancer:
		return true
	}
	return false
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusOpen, models.JobStatusInProgress,
		models.JobStatusCompleted, models.JobStatusCancelled:
		return true
	}
	return false
}

func validateBidStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.BidStatus(value) {
	case models.BidStatusPending, models.BidStatusAccepted, models.BidStatusRejected:
		return true
	}
	return false
}
