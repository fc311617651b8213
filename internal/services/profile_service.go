package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func marshalSkills(skills []string) ([]byte, error) {
	if skills == nil {
		skills = []string{}
	}
	data, err := json.Marshal(skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	return data, nil
}

func (s *ProfileService) Create(db *gorm.DB, userID string, req *dto.CreateProfileRequest) (*models.Profile, error) {
	if _, err := s.profileRepo.FindByID(db, userID); err == nil {
		return nil, apperrors.ErrProfileExists
	} else if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	skillsJSON, err := marshalSkills(req.Skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{
		ID:           userID,
		Role:         models.ProfileRole(req.Role),
		FullName:     req.FullName,
		Bio:          req.Bio,
		Skills:       skillsJSON,
		HourlyRate:   req.HourlyRate,
		PortfolioURL: req.PortfolioURL,
		AvatarURL:    req.AvatarURL,
		Location:     req.Location,
	}

	if err := s.profileRepo.Create(db, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrProfileExists
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileService) Get(db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// Update обновляет изменяемые атрибуты. Role остается прежней.
func (s *ProfileService) Update(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.Get(db, userID)
	if err != nil {
		return nil, err
	}

	skillsJSON, err := marshalSkills(req.Skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile.FullName = req.FullName
	profile.Bio = req.Bio
	profile.Skills = skillsJSON
	profile.HourlyRate = req.HourlyRate
	profile.PortfolioURL = req.PortfolioURL
	profile.AvatarURL = req.AvatarURL
	profile.Location = req.Location

	if err := s.profileRepo.Update(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// requireRole загружает профиль и проверяет роль и блокировку.
// Общий пре-чек для операций, доступных одной роли.
func (s *ProfileService) requireRole(db *gorm.DB, userID string, role models.ProfileRole, roleErr *apperrors.AppError) (*models.Profile, error) {
	profile, err := s.Get(db, userID)
	if err != nil {
		return nil, err
	}
	if profile.IsBlocked {
		return nil, apperrors.ErrProfileBlocked
	}
	if profile.Role != role {
		return nil, roleErr
	}
	return profile, nil
}

func (s *ProfileService) RequireClient(db *gorm.DB, userID string) (*models.Profile, error) {
	return s.requireRole(db, userID, models.ProfileRoleClient, apperrors.ErrOnlyClients)
}

func (s *ProfileService) RequireFreelancer(db *gorm.DB, userID string) (*models.Profile, error) {
	return s.requireRole(db, userID, models.ProfileRoleFreelancer, apperrors.ErrOnlyFreelancers)
}
