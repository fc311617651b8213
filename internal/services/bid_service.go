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

type BidService struct {
	bidRepo             repositories.BidRepository
	jobRepo             repositories.JobRepository
	profileRepo         repositories.ProfileRepository
	profileService      *ProfileService
	notificationService *NotificationService
}

func NewBidService(
	bidRepo repositories.BidRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	profileService *ProfileService,
	notificationService *NotificationService,
) *BidService {
	return &BidService{
		bidRepo:             bidRepo,
		jobRepo:             jobRepo,
		profileRepo:         profileRepo,
		profileService:      profileService,
		notificationService: notificationService,
	}
}

// Submit подает ставку по открытому заданию.
// Дубликат отсекается дважды: пре-чеком (дружелюбная ошибка) и
// уникальным индексом (гонка двух одновременных ставок).
func (s *BidService) Submit(ctx context.Context, db *gorm.DB, freelancerID string, req *dto.SubmitBidRequest) (*models.Bid, error) {
	if _, err := s.profileService.RequireFreelancer(db, freelancerID); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByID(db, req.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobNotOpen
	}

	exists, err := s.bidRepo.ExistsForJobAndFreelancer(db, job.ID, freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateBid
	}

	bid := &models.Bid{
		JobID:        job.ID,
		FreelancerID: freelancerID,
		Amount:       req.Amount,
		Proposal:     req.Proposal,
		DeliveryTime: req.DeliveryTime,
		Status:       models.BidStatusPending,
	}

	if err := s.bidRepo.Create(db, bid); err != nil {
		if errors.Is(err, repositories.ErrDuplicateBid) {
			return nil, apperrors.ErrDuplicateBid
		}
		return nil, apperrors.InternalError(err)
	}

	s.notificationService.Emit(ctx, db, &models.Notification{
		UserID:       job.ClientID,
		Type:         models.NotificationTypeBidPlaced,
		Title:        "New Bid Received",
		Message:      fmt.Sprintf("You received a new bid of $%.2f on \"%s\".", bid.Amount, job.Title),
		RelatedJobID: &job.ID,
		RelatedBidID: &bid.ID,
	})

	return bid, nil
}

// ListForJob возвращает ставки по заданию. Доступно только владельцу.
func (s *BidService) ListForJob(db *gorm.DB, clientID, jobID string, query dto.BidListQuery) ([]dto.BidWithFreelancer, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.ClientID != clientID {
		return nil, apperrors.ErrNotJobOwner
	}

	bids, err := s.bidRepo.ListByJob(db, jobID, query.Status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	freelancerIDs := make([]string, 0, len(bids))
	for i := range bids {
		freelancerIDs = append(freelancerIDs, bids[i].FreelancerID)
	}
	summaries, err := s.profileRepo.FindSummaries(db, freelancerIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.BidWithFreelancer, 0, len(bids))
	for i := range bids {
		item := dto.BidWithFreelancer{Bid: bids[i]}
		if summary, ok := summaries[bids[i].FreelancerID]; ok {
			item.Freelancer = &summary
		}
		result = append(result, item)
	}
	return result, nil
}

// FreelancerBidList - страница ставок фрилансера с краткими заданиями
type FreelancerBidList struct {
	Bids       []dto.BidWithJob `json:"bids"`
	Pagination dto.Pagination   `json:"pagination"`
}

func (s *BidService) ListForFreelancer(db *gorm.DB, freelancerID string, query dto.BidListQuery) (*FreelancerBidList, error) {
	criteria := repositories.BidListCriteria{
		Status: query.Status,
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	if criteria.Limit <= 0 {
		criteria.Limit = defaultPageSize
	}

	bids, total, err := s.bidRepo.ListByFreelancer(db, freelancerID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobIDs := make([]string, 0, len(bids))
	for i := range bids {
		jobIDs = append(jobIDs, bids[i].JobID)
	}
	jobs, err := s.findJobSummaries(db, jobIDs)
	if err != nil {
		return nil, err
	}

	result := make([]dto.BidWithJob, 0, len(bids))
	for i := range bids {
		item := dto.BidWithJob{Bid: bids[i]}
		if job, ok := jobs[bids[i].JobID]; ok {
			item.Job = job
		}
		result = append(result, item)
	}

	return &FreelancerBidList{
		Bids:       result,
		Pagination: dto.NewPagination(total, criteria.Limit, criteria.Offset),
	}, nil
}

func (s *BidService) findJobSummaries(db *gorm.DB, jobIDs []string) (map[string]*dto.JobSummary, error) {
	result := make(map[string]*dto.JobSummary, len(jobIDs))
	if len(jobIDs) == 0 {
		return result, nil
	}

	jobs, err := s.jobRepo.FindByIDs(db, jobIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	clientIDs := make([]string, 0, len(jobs))
	for i := range jobs {
		clientIDs = append(clientIDs, jobs[i].ClientID)
	}
	clients, err := s.profileRepo.FindSummaries(db, clientIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	for i := range jobs {
		summary := &dto.JobSummary{
			ID:       jobs[i].ID,
			Title:    jobs[i].Title,
			Budget:   jobs[i].Budget,
			Status:   jobs[i].Status,
			ClientID: jobs[i].ClientID,
		}
		if client, ok := clients[jobs[i].ClientID]; ok {
			summary.Client = &client
		}
		result[jobs[i].ID] = summary
	}
	return result, nil
}
