package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"wanderworld/internal/models/request_models"
	"wanderworld/internal/models/response_models"
	"wanderworld/internal/services"
	"wanderworld/internal/storefront"
	"wanderworld/pkg/middleware"
	"wanderworld/pkg/utils"
)

type StorefrontAPIController struct {
	storefrontService services.StorefrontServiceInterface
	logger            *zap.Logger
}

func NewStorefrontAPIController(storefrontService services.StorefrontServiceInterface, logger *zap.Logger) *StorefrontAPIController {
	return &StorefrontAPIController{
		storefrontService: storefrontService,
		logger:            logger.Named("storefront_api"),
	}
}

// GetView godoc
// @Summary Get the storefront view
// @Description Returns the visitor's storefront state, loading destinations and packages on first call
// @Tags Storefront
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.StorefrontView}
// @Router /api/view [get]
func (s *StorefrontAPIController) GetView(c *gin.Context) {
	visitorID, ok := middleware.VisitorID(c)
	if !ok {
		s.handleError(c, utils.ErrInvalidVisitor)
		return
	}

	view, err := s.storefrontService.Bootstrap(c.Request.Context(), visitorID)
	s.respondView(c, view, err, "View fetched successfully")
}

// SelectDestination godoc
// @Summary Toggle the destination filter
// @Description Selects a destination, or clears the filter when it is already selected, and reloads packages
// @Tags Storefront
// @Accept json
// @Produce json
// @Param request body request_models.SelectDestinationRequest true "Destination slug"
// @Success 200 {object} utils.APIResponse{data=response_models.StorefrontView}
// @Failure 400 {object} utils.APIResponse
// @Router /api/destinations/select [post]
func (s *StorefrontAPIController) SelectDestination(c *gin.Context) {
	var req request_models.SelectDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	visitorID, ok := middleware.VisitorID(c)
	if !ok {
		s.handleError(c, utils.ErrInvalidVisitor)
		return
	}

	view, err := s.storefrontService.SelectDestination(c.Request.Context(), visitorID, req.Slug)
	s.respondView(c, view, err, "Destination selection updated")
}

// FilterPackages godoc
// @Summary Filter packages by destination
// @Tags Storefront
// @Accept json
// @Produce json
// @Param request body request_models.FilterPackagesRequest true "Destination slug, empty for all"
// @Success 200 {object} utils.APIResponse{data=response_models.StorefrontView}
// @Failure 400 {object} utils.APIResponse
// @Router /api/packages/filter [post]
func (s *StorefrontAPIController) FilterPackages(c *gin.Context) {
	var req request_models.FilterPackagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	visitorID, ok := middleware.VisitorID(c)
	if !ok {
		s.handleError(c, utils.ErrInvalidVisitor)
		return
	}

	view, err := s.storefrontService.FilterPackages(c.Request.Context(), visitorID, req.Destination)
	s.respondView(c, view, err, "Packages filtered")
}

// Refresh godoc
// @Summary Reload destinations and packages
// @Tags Storefront
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.StorefrontView}
// @Router /api/refresh [post]
func (s *StorefrontAPIController) Refresh(c *gin.Context) {
	visitorID, ok := middleware.VisitorID(c)
	if !ok {
		s.handleError(c, utils.ErrInvalidVisitor)
		return
	}

	view, err := s.storefrontService.Refresh(c.Request.Context(), visitorID)
	s.respondView(c, view, err, "View refreshed")
}

// PresetInquiry godoc
// @Summary Enquire about a package
// @Description Copies a package's title and destination into the inquiry draft
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body request_models.PresetInquiryRequest true "Package title and destination"
// @Success 200 {object} utils.APIResponse{data=response_models.StorefrontView}
// @Failure 400 {object} utils.APIResponse
// @Router /api/inquiry/preset [post]
func (s *StorefrontAPIController) PresetInquiry(c *gin.Context) {
	var req request_models.PresetInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	visitorID, ok := middleware.VisitorID(c)
	if !ok {
		s.handleError(c, utils.ErrInvalidVisitor)
		return
	}

	view, err := s.storefrontService.PresetInquiry(c.Request.Context(), visitorID, req.ToPackage())
	s.respondView(c, view, err, "Inquiry draft updated")
}

// UpdateDraft godoc
// @Summary Save the inquiry draft as typed
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body request_models.InquiryDraftRequest true "Draft fields"
// @Success 200 {object} utils.APIResponse{data=response_models.StorefrontView}
// @Failure 400 {object} utils.APIResponse
// @Router /api/inquiry/draft [put]
func (s *StorefrontAPIController) UpdateDraft(c *gin.Context) {
	var req request_models.InquiryDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	visitorID, ok := middleware.VisitorID(c)
	if !ok {
		s.handleError(c, utils.ErrInvalidVisitor)
		return
	}

	view, err := s.storefrontService.UpdateDraft(c.Request.Context(), visitorID, req.ToDraft())
	s.respondView(c, view, err, "Inquiry draft updated")
}

// SubmitInquiry godoc
// @Summary Send the inquiry
// @Description Posts the inquiry to the backend once. The outcome is reported in status/status_message, not as an HTTP error.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body request_models.SubmitInquiryRequest true "Inquiry"
// @Success 200 {object} utils.APIResponse{data=response_models.StorefrontView}
// @Failure 400 {object} utils.APIResponse
// @Router /api/inquiry [post]
func (s *StorefrontAPIController) SubmitInquiry(c *gin.Context) {
	var req request_models.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name and a valid email are required")
		return
	}
	visitorID, ok := middleware.VisitorID(c)
	if !ok {
		s.handleError(c, utils.ErrInvalidVisitor)
		return
	}

	view, err := s.storefrontService.SubmitInquiry(c.Request.Context(), visitorID, req.ToDraft())
	if err != nil {
		s.handleError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewStorefrontView(view), view.Status.Message())
}

func (s *StorefrontAPIController) respondView(c *gin.Context, view *storefront.View, err error, message string) {
	if err != nil {
		s.handleError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewStorefrontView(view), message)
}
