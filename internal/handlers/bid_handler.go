package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"
)

type BidHandler struct {
	*BaseHandler
	bidService *services.BidService
}

func NewBidHandler(base *BaseHandler, bidService *services.BidService) *BidHandler {
	return &BidHandler{
		BaseHandler: base,
		bidService:  bidService,
	}
}

func (h *BidHandler) RegisterRoutes(r *gin.RouterGroup) {
	bids := r.Group("/bids")
	bids.Use(middleware.AuthMiddleware())
	{
		bids.POST("", middleware.RequireRoles(models.ProfileRoleFreelancer), h.SubmitBid)
		bids.GET("/my", h.GetMyBids)
	}

	// Ставки по заданию видит только его владелец
	jobBids := r.Group("/jobs")
	jobBids.Use(middleware.AuthMiddleware())
	{
		jobBids.GET("/:jobId/bids", h.GetJobBids)
	}
}

func (h *BidHandler) SubmitBid(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitBidRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	bid, err := h.bidService.Submit(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bid)
}

func (h *BidHandler) GetJobBids(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.BidListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	bids, err := h.bidService.ListForJob(h.GetDB(c), userID, c.Param("jobId"), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bids})
}

func (h *BidHandler) GetMyBids(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.BidListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.bidService.ListForFreelancer(h.GetDB(c), userID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       list.Bids,
		"pagination": list.Pagination,
	})
}
