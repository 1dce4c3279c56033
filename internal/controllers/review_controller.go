package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bistroboss/bistro-api/internal/services"
)

// ReviewController handles HTTP requests for the reviews collection.
type ReviewController struct {
	reviews services.ReviewService
}

// NewReviewController creates a new instance of ReviewController
func NewReviewController(reviews services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// GetAllReviews godoc
// @Summary List customer reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} models.Review
// @Failure 500 {object} map[string]string
// @Router /reviews [get]
func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	reviews, err := rc.reviews.GetAllReviews(c.Request.Context())
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
