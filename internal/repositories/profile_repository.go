package repositories

import (
	"errors"

	"gorm.io/gorm"

	"freelancehub_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByID(db *gorm.DB, id string) (*models.Profile, error)
	Update(db *gorm.DB, profile *models.Profile) error
	FindSummaries(db *gorm.DB, ids []string) (map[string]models.ProfileSummary, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.Profile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Profile, error) {
	var profile models.Profile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Update(db *gorm.DB, profile *models.Profile) error {
	return db.Save(profile).Error
}

// FindSummaries загружает краткие формы профилей одним запросом
// (для встраивания в списки ставок)
func (r *ProfileRepositoryImpl) FindSummaries(db *gorm.DB, ids []string) (map[string]models.ProfileSummary, error) {
	result := make(map[string]models.ProfileSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var profiles []models.Profile
	if err := db.Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}

	for i := range profiles {
		result[profiles[i].ID] = profiles[i].Summary()
	}
	return result, nil
}
