package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

const defaultPageSize = 20

type JobService struct {
	jobRepo             repositories.JobRepository
	bidRepo             repositories.BidRepository
	profileRepo         repositories.ProfileRepository
	profileService      *ProfileService
	notificationService *NotificationService
}

func NewJobService(
	jobRepo repositories.JobRepository,
	bidRepo repositories.BidRepository,
	profileRepo repositories.ProfileRepository,
	profileService *ProfileService,
	notificationService *NotificationService,
) *JobService {
	return &JobService{
		jobRepo:             jobRepo,
		bidRepo:             bidRepo,
		profileRepo:         profileRepo,
		profileService:      profileService,
		notificationService: notificationService,
	}
}

// Job Operations

func (s *JobService) Create(db *gorm.DB, clientID string, req *dto.CreateJobRequest) (*models.Job, error) {
	if _, err := s.profileService.RequireClient(db, clientID); err != nil {
		return nil, err
	}

	skillsJSON, err := marshalSkills(req.RequiredSkills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		ClientID:       clientID,
		Title:          req.Title,
		Description:    req.Description,
		Budget:         req.Budget,
		Deadline:       req.Deadline,
		RequiredSkills: skillsJSON,
		Status:         models.JobStatusOpen,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// JobList - страница заданий с встроенными клиентами
type JobList struct {
	Jobs       []dto.JobResponse `json:"jobs"`
	Pagination dto.Pagination    `json:"pagination"`
}

func (s *JobService) List(db *gorm.DB, query dto.JobListQuery) (*JobList, error) {
	criteria := repositories.JobListCriteria{
		Status: query.Status,
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	if criteria.Limit <= 0 {
		criteria.Limit = defaultPageSize
	}

	jobs, total, err := s.jobRepo.List(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildJobList(db, jobs, total, criteria)
}

func (s *JobService) ListMine(db *gorm.DB, clientID string, query dto.JobListQuery) (*JobList, error) {
	criteria := repositories.JobListCriteria{
		Status: query.Status,
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	if criteria.Limit <= 0 {
		criteria.Limit = defaultPageSize
	}

	jobs, total, err := s.jobRepo.ListByClient(db, clientID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildJobList(db, jobs, total, criteria)
}

func (s *JobService) buildJobList(db *gorm.DB, jobs []models.Job, total int64, criteria repositories.JobListCriteria) (*JobList, error) {
	clientIDs := make([]string, 0, len(jobs))
	for i := range jobs {
		clientIDs = append(clientIDs, jobs[i].ClientID)
	}
	summaries, err := s.profileRepo.FindSummaries(db, clientIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp := dto.JobResponse{Job: jobs[i]}
		if summary, ok := summaries[jobs[i].ClientID]; ok {
			resp.Client = &summary
		}
		responses = append(responses, resp)
	}

	return &JobList{
		Jobs:       responses,
		Pagination: dto.NewPagination(total, criteria.Limit, criteria.Offset),
	}, nil
}

func (s *JobService) Get(db *gorm.DB, jobID string) (*dto.JobResponse, error) {
	job, err := s.findJob(db, jobID)
	if err != nil {
		return nil, err
	}

	resp := &dto.JobResponse{Job: *job}
	if client, err := s.profileRepo.FindByID(db, job.ClientID); err == nil {
		summary := client.Summary()
		resp.Client = &summary
	}
	return resp, nil
}

func (s *JobService) findJob(db *gorm.DB, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Hire принимает ставку и переводит задание open -> in_progress.
// Пре-чеки выполняются до любой записи; сам переход - одна транзакция
// с условным обновлением статуса, так что из двух конкурентных наймов
// выигрывает ровно один, второй получает InvalidStatus без записей.
func (s *JobService) Hire(ctx context.Context, db *gorm.DB, clientID, bidID string) (*dto.HireResult, error) {
	bid, err := s.bidRepo.FindByID(db, bidID)
	if err != nil {
		if errors.Is(err, repositories.ErrBidNotFound) {
			return nil, apperrors.ErrBidNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.findJob(db, bid.JobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != clientID {
		return nil, apperrors.ErrNotJobOwner
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobNotOpen
	}

	var rejected []models.Bid
	err = db.Transaction(func(tx *gorm.DB) error {
		ok, err := s.jobRepo.TransitionStatus(tx, job.ID, models.JobStatusOpen, models.JobStatusInProgress, &bid.FreelancerID)
		if err != nil {
			return err
		}
		if !ok {
			// параллельный найм успел раньше
			return apperrors.ErrJobNotOpen
		}

		if err := s.bidRepo.UpdateStatus(tx, bid.ID, models.BidStatusAccepted); err != nil {
			return err
		}

		pending, err := s.bidRepo.ListByJob(tx, job.ID, string(models.BidStatusPending))
		if err != nil {
			return err
		}
		rejected = pending

		return s.bidRepo.RejectOthers(tx, job.ID, bid.ID)
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	// Уведомления после коммита, best-effort
	s.notificationService.Emit(ctx, db, &models.Notification{
		UserID:       bid.FreelancerID,
		Type:         models.NotificationTypeBidAccepted,
		Title:        "Your Bid Was Accepted!",
		Message:      fmt.Sprintf("Congratulations! Your bid of $%.2f for \"%s\" has been accepted.", bid.Amount, job.Title),
		RelatedJobID: &job.ID,
		RelatedBidID: &bid.ID,
	})
	for i := range rejected {
		if rejected[i].ID == bid.ID {
			continue
		}
		s.notificationService.Emit(ctx, db, &models.Notification{
			UserID:       rejected[i].FreelancerID,
			Type:         models.NotificationTypeBidAccepted,
			Title:        "Bid Not Selected",
			Message:      fmt.Sprintf("Your bid for \"%s\" was not selected.", job.Title),
			RelatedJobID: &job.ID,
			RelatedBidID: &rejected[i].ID,
		})
	}

	return &dto.HireResult{
		Message:      "Freelancer hired successfully",
		JobID:        job.ID,
		FreelancerID: bid.FreelancerID,
	}, nil
}

// Complete переводит задание in_progress -> completed
func (s *JobService) Complete(ctx context.Context, db *gorm.DB, clientID, jobID string) (*models.Job, error) {
	job, err := s.findJob(db, jobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != clientID {
		return nil, apperrors.ErrNotJobOwner
	}
	if job.Status != models.JobStatusInProgress {
		return nil, apperrors.ErrInvalidStatus("jobs", "Only jobs in progress can be completed")
	}

	ok, err := s.jobRepo.TransitionStatus(db, job.ID, models.JobStatusInProgress, models.JobStatusCompleted, nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !ok {
		return nil, apperrors.ErrInvalidStatus("jobs", "Only jobs in progress can be completed")
	}
	job.Status = models.JobStatusCompleted

	if job.HiredFreelancerID != nil {
		s.notificationService.Emit(ctx, db, &models.Notification{
			UserID:       *job.HiredFreelancerID,
			Type:         models.NotificationTypeJobCompleted,
			Title:        "Job Completed",
			Message:      fmt.Sprintf("The job \"%s\" has been marked as completed.", job.Title),
			RelatedJobID: &job.ID,
		})
	}
	return job, nil
}

// Cancel переводит задание open -> cancelled и отклоняет ожидающие ставки
func (s *JobService) Cancel(ctx context.Context, db *gorm.DB, clientID, jobID string) (*models.Job, error) {
	job, err := s.findJob(db, jobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != clientID {
		return nil, apperrors.ErrNotJobOwner
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobNotOpen
	}

	var pending []models.Bid
	err = db.Transaction(func(tx *gorm.DB) error {
		ok, err := s.jobRepo.TransitionStatus(tx, job.ID, models.JobStatusOpen, models.JobStatusCancelled, nil)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrJobNotOpen
		}

		bids, err := s.bidRepo.ListByJob(tx, job.ID, string(models.BidStatusPending))
		if err != nil {
			return err
		}
		pending = bids

		return s.bidRepo.RejectPending(tx, job.ID)
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}
	job.Status = models.JobStatusCancelled

	for i := range pending {
		s.notificationService.Emit(ctx, db, &models.Notification{
			UserID:       pending[i].FreelancerID,
			Type:         models.NotificationTypeJobCancelled,
			Title:        "Job Cancelled",
			Message:      fmt.Sprintf("The job \"%s\" has been cancelled.", job.Title),
			RelatedJobID: &job.ID,
			RelatedBidID: &pending[i].ID,
		})
	}
	return job, nil
}
