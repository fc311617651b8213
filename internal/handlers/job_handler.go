package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/jobs")
	{
		public.GET("", h.ListJobs)
		public.GET("/:jobId", h.GetJob)
	}

	// Protected routes - владелец задания
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("", middleware.RequireRoles(models.ProfileRoleClient), h.CreateJob)
		jobs.GET("/my", h.GetMyJobs)
		jobs.POST("/:jobId/complete", h.CompleteJob)
		jobs.POST("/:jobId/cancel", h.CancelJob)
	}

	// Найм идет по ставке, а не по заданию
	hire := r.Group("/bids")
	hire.Use(middleware.AuthMiddleware())
	{
		hire.POST("/:bidId/hire", h.HireFreelancer)
	}
}

// --- Public handlers ---

func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.jobService.List(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       list.Jobs,
		"pagination": list.Pagination,
	})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.Get(h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// --- Protected handlers ---

func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) GetMyJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.jobService.ListMine(h.GetDB(c), userID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       list.Jobs,
		"pagination": list.Pagination,
	})
}

func (h *JobHandler) HireFreelancer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	result, err := h.jobService.Hire(c.Request.Context(), h.GetDB(c), userID, c.Param("bidId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *JobHandler) CompleteJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	job, err := h.jobService.Complete(c.Request.Context(), h.GetDB(c), userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CancelJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	job, err := h.jobService.Cancel(c.Request.Context(), h.GetDB(c), userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
