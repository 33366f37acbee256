package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type RatingHandler struct {
	ratingRepo *repository.RatingRepository
	log        zerolog.Logger
}

func NewRatingHandler(ratingRepo *repository.RatingRepository, log zerolog.Logger) *RatingHandler {
	return &RatingHandler{ratingRepo: ratingRepo, log: log.With().Str("component", "rating_handler").Logger()}
}

// RateRequest keeps rating untyped: clients send it as a JSON number or a
// numeric string, and both must be accepted.
type RateRequest struct {
	BlogID string `json:"blog_id"`
	Rating any    `json:"rating"`
}

// Submit records one immutable rating. Nothing is written unless the value
// is an integer between 1 and 5.
func (h *RatingHandler) Submit(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BlogID == "" || isEmptyRating(req.Rating) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing blog_id or rating"})
		return
	}
	value, ok := parseRatingValue(req.Rating)
	if !ok || value < 1 || value > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be an integer between 1 and 5"})
		return
	}
	if err := h.ratingRepo.Create(&models.Rating{BlogID: req.BlogID, Rating: value}); err != nil {
		h.log.Error().Err(err).Str("blog_id", req.BlogID).Msg("rating insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not record rating"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted"})
}

// Get returns {average, count} for a blog identifier; zero ratings yield
// average null and count 0.
func (h *RatingHandler) Get(c *gin.Context) {
	summary, err := h.ratingRepo.Summarize(c.Param("blog_id"))
	if err != nil {
		h.log.Error().Err(err).Msg("rating summary failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load ratings"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func isEmptyRating(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case float64:
		return n == 0
	case string:
		return strings.TrimSpace(n) == ""
	}
	return false
}

// parseRatingValue accepts a JSON number with no fractional part or a
// decimal string.
func parseRatingValue(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		value, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return value, true
	}
	return 0, false
}
