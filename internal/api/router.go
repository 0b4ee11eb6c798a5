package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderworld/internal/api/controllers"
)

func RegisterRoutes(r *gin.Engine,
	pageController *controllers.StorefrontController,
	apiController *controllers.StorefrontAPIController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", pageController.Page)
	r.POST("/refresh", pageController.Refresh)
	r.POST("/destinations/select", pageController.SelectDestination)
	r.POST("/packages/filter", pageController.FilterPackages)
	r.POST("/inquiry/preset", pageController.PresetInquiry)
	r.POST("/inquiry", pageController.SubmitInquiry)

	apiGroup := r.Group("/api")
	apiGroup.GET("/view", apiController.GetView)
	apiGroup.POST("/refresh", apiController.Refresh)
	apiGroup.POST("/destinations/select", apiController.SelectDestination)
	apiGroup.POST("/packages/filter", apiController.FilterPackages)

	inquiryGroup := apiGroup.Group("/inquiry")
	inquiryGroup.POST("", apiController.SubmitInquiry)
	inquiryGroup.POST("/preset", apiController.PresetInquiry)
	inquiryGroup.PUT("/draft", apiController.UpdateDraft)
}
