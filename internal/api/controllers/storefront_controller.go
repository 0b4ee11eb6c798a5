package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"wanderworld/internal/api/views"
	"wanderworld/internal/config"
	"wanderworld/internal/models/request_models"
	"wanderworld/internal/services"
	"wanderworld/internal/storefront"
	"wanderworld/pkg/middleware"
	"wanderworld/pkg/utils"
)

// StorefrontController serves the server-rendered storefront page. Every
// interaction is a form post that redirects back to the page.
type StorefrontController struct {
	storefrontService services.StorefrontServiceInterface
	backendURL        string
	logger            *zap.Logger
}

func NewStorefrontController(storefrontService services.StorefrontServiceInterface, cfg config.Config, logger *zap.Logger) *StorefrontController {
	return &StorefrontController{
		storefrontService: storefrontService,
		backendURL:        cfg.BackendURL,
		logger:            logger.Named("storefront_page"),
	}
}

type storefrontPage struct {
	View       *storefront.View
	BackendURL string
}

// Page renders the storefront, running the first-display sequence for a new
// visitor.
func (s *StorefrontController) Page(c *gin.Context) {
	visitorID, ok := middleware.VisitorID(c)
	if !ok {
		s.fail(c, utils.ErrInvalidVisitor)
		return
	}

	view, err := s.storefrontService.Bootstrap(c.Request.Context(), visitorID)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, views.StorefrontPage, storefrontPage{
		View:       view,
		BackendURL: s.backendURL,
	})
}

func (s *StorefrontController) SelectDestination(c *gin.Context) {
	var req request_models.SelectDestinationRequest
	if !s.bind(c, &req, "#destinations") {
		return
	}

	s.run(c, "#destinations", func(visitorID uuid.UUID) error {
		_, err := s.storefrontService.SelectDestination(c.Request.Context(), visitorID, req.Slug)
		return err
	})
}

func (s *StorefrontController) FilterPackages(c *gin.Context) {
	var req request_models.FilterPackagesRequest
	if !s.bind(c, &req, "#packages") {
		return
	}

	s.run(c, "#packages", func(visitorID uuid.UUID) error {
		_, err := s.storefrontService.FilterPackages(c.Request.Context(), visitorID, req.Destination)
		return err
	})
}

func (s *StorefrontController) Refresh(c *gin.Context) {
	s.run(c, "#destinations", func(visitorID uuid.UUID) error {
		_, err := s.storefrontService.Refresh(c.Request.Context(), visitorID)
		return err
	})
}

func (s *StorefrontController) PresetInquiry(c *gin.Context) {
	var req request_models.PresetInquiryRequest
	if !s.bind(c, &req, "#packages") {
		return
	}

	s.run(c, "#inquiry", func(visitorID uuid.UUID) error {
		_, err := s.storefrontService.PresetInquiry(c.Request.Context(), visitorID, req.ToPackage())
		return err
	})
}

// SubmitInquiry posts the form as typed. Required fields are checked by the
// browser through the form's required attributes.
func (s *StorefrontController) SubmitInquiry(c *gin.Context) {
	var req request_models.InquiryDraftRequest
	if !s.bind(c, &req, "#inquiry") {
		return
	}

	s.run(c, "#inquiry", func(visitorID uuid.UUID) error {
		_, err := s.storefrontService.SubmitInquiry(c.Request.Context(), visitorID, req.ToDraft())
		return err
	})
}

// bind decodes the posted form into req. An unreadable form is logged and the
// visitor is sent back to anchor with nothing changed.
func (s *StorefrontController) bind(c *gin.Context, req interface{}, anchor string) bool {
	if err := c.ShouldBind(req); err != nil {
		s.logger.Warn("Unreadable form post",
			zap.String("path", c.Request.URL.Path),
			zap.String("trace_id", c.GetString("trace_id")),
			zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/"+anchor)
		return false
	}
	return true
}

func (s *StorefrontController) run(c *gin.Context, anchor string, fn func(visitorID uuid.UUID) error) {
	visitorID, ok := middleware.VisitorID(c)
	if !ok {
		s.fail(c, utils.ErrInvalidVisitor)
		return
	}
	if err := fn(visitorID); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/"+anchor)
}

func (s *StorefrontController) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	s.logger.Error("Storefront request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("trace_id", c.GetString("trace_id")),
		zap.Error(err))
	c.String(http.StatusInternalServerError, "Something went wrong. Please reload the page.")
}
