package helpers

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"freelancehub_backend/internal/auth"
	"freelancehub_backend/internal/models"
)

// CreateProfile создает профиль и выпускает для него токен.
// ID генерируется как у внешнего Identity Provider.
func CreateProfile(t *testing.T, db *gorm.DB, role models.ProfileRole) (string, *models.Profile) {
	profile := &models.Profile{
		ID:       uuid.NewString(),
		Role:     role,
		FullName: fmt.Sprintf("Test %s %d", role, time.Now().UnixNano()),
		Skills:   datatypes.JSON([]byte(`["go","sql"]`)),
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("Не удалось создать тестовый профиль: %v", err)
	}

	token, err := auth.GenerateToken(profile.ID, string(profile.Role))
	if err != nil {
		t.Fatalf("Не удалось выпустить тестовый токен: %v", err)
	}
	return token, profile
}

func CreateClient(t *testing.T, db *gorm.DB) (string, *models.Profile) {
	return CreateProfile(t, db, models.ProfileRoleClient)
}

func CreateFreelancer(t *testing.T, db *gorm.DB) (string, *models.Profile) {
	return CreateProfile(t, db, models.ProfileRoleFreelancer)
}

// CreateJob создает задание напрямую в БД, минуя API
func CreateJob(t *testing.T, db *gorm.DB, clientID, title string, status models.JobStatus) *models.Job {
	job := &models.Job{
		ClientID:       clientID,
		Title:          title,
		Description:    "Test job description",
		Budget:         1000,
		Deadline:       time.Now().AddDate(0, 1, 0),
		RequiredSkills: datatypes.JSON([]byte(`["go"]`)),
		Status:         status,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("Не удалось создать тестовое задание: %v", err)
	}
	return job
}

// CreateBid создает ставку напрямую в БД
func CreateBid(t *testing.T, db *gorm.DB, jobID, freelancerID string) *models.Bid {
	bid := &models.Bid{
		JobID:        jobID,
		FreelancerID: freelancerID,
		Amount:       800,
		Proposal:     "I can do this",
		DeliveryTime: 7,
		Status:       models.BidStatusPending,
	}
	if err := db.Create(bid).Error; err != nil {
		t.Fatalf("Не удалось создать тестовую ставку: %v", err)
	}
	return bid
}
