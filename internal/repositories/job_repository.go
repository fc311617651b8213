package repositories

import (
	"errors"

	"gorm.io/gorm"

	"freelancehub_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// JobListCriteria - фильтры листинга заданий
type JobListCriteria struct {
	Status string
	Limit  int
	Offset int
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Job, error)
	List(db *gorm.DB, criteria JobListCriteria) ([]models.Job, int64, error)
	ListByClient(db *gorm.DB, clientID string, criteria JobListCriteria) ([]models.Job, int64, error)
	// TransitionStatus выполняет условный переход статуса одним UPDATE.
	// Возвращает false, если задание уже не в статусе from (проигравший
	// конкурентный вызов наблюдает именно это).
	TransitionStatus(db *gorm.DB, jobID string, from, to models.JobStatus, hiredFreelancerID *string) (bool, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var jobs []models.Job
	if err := db.Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) List(db *gorm.DB, criteria JobListCriteria) ([]models.Job, int64, error) {
	return r.list(db.Model(&models.Job{}), criteria)
}

func (r *JobRepositoryImpl) ListByClient(db *gorm.DB, clientID string, criteria JobListCriteria) ([]models.Job, int64, error) {
	return r.list(db.Model(&models.Job{}).Where("client_id = ?", clientID), criteria)
}

func (r *JobRepositoryImpl) list(query *gorm.DB, criteria JobListCriteria) ([]models.Job, int64, error) {
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.
		Order("created_at DESC").
		Limit(criteria.Limit).
		Offset(criteria.Offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepositoryImpl) TransitionStatus(db *gorm.DB, jobID string, from, to models.JobStatus, hiredFreelancerID *string) (bool, error) {
	updates := map[string]interface{}{"status": to}
	if hiredFreelancerID != nil {
		updates["hired_freelancer_id"] = *hiredFreelancerID
	}

	result := db.Model(&models.Job{}).
		Where("id = ? AND status = ?", jobID, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
