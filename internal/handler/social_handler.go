package handler

import (
	"net/http"
	"strconv"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type SocialLinkHandler struct {
	socialRepo *repository.SocialLinkRepository
	log        zerolog.Logger
}

func NewSocialLinkHandler(socialRepo *repository.SocialLinkRepository, log zerolog.Logger) *SocialLinkHandler {
	return &SocialLinkHandler{socialRepo: socialRepo, log: log.With().Str("component", "social_handler").Logger()}
}

type CreateSocialLinkRequest struct {
	Name  string `json:"name" binding:"required"`
	URL   string `json:"url" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type UpdateSocialLinkRequest struct {
	Name  *string `json:"name"`
	URL   *string `json:"url"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

func (h *SocialLinkHandler) Create(c *gin.Context) {
	var req CreateSocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and url are required"})
		return
	}
	owner := middleware.GetUserID(c)
	link := models.SocialLink{
		Name:   req.Name,
		URL:    req.URL,
		Icon:   req.Icon,
		Color:  req.Color,
		UserID: &owner,
	}
	if err := h.socialRepo.Create(&link); err != nil {
		h.log.Error().Err(err).Str("name", req.Name).Msg("social link insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create social link"})
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *SocialLinkHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid social link id"})
		return
	}
	var req UpdateSocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid social link payload"})
		return
	}

	link, err := h.socialRepo.GetByID(uint(id))
	if err != nil || link.UserID == nil || *link.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Social link not found"})
		return
	}

	if req.Name != nil {
		link.Name = *req.Name
	}
	if req.URL != nil {
		link.URL = *req.URL
	}
	if req.Icon != nil {
		link.Icon = *req.Icon
	}
	if req.Color != nil {
		link.Color = *req.Color
	}

	if err := h.socialRepo.Update(link); err != nil {
		h.log.Error().Err(err).Uint("id", link.ID).Msg("social link update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update social link"})
		return
	}
	c.JSON(http.StatusOK, link)
}
