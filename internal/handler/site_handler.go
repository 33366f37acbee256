package handler

import (
	"net/http"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type SiteHandler struct {
	siteRepo *repository.SiteRepository
	log      zerolog.Logger
}

func NewSiteHandler(siteRepo *repository.SiteRepository, log zerolog.Logger) *SiteHandler {
	return &SiteHandler{siteRepo: siteRepo, log: log.With().Str("component", "site_handler").Logger()}
}

type SiteRequest struct {
	Title          string `json:"title"`
	Author         string `json:"author"`
	Introduction   string `json:"introduction"`
	Navbar         string `json:"navbar"`
	Footer         string `json:"footer"`
	HeroBackground string `json:"heroBackground"`
}

// Upsert writes the authenticated author's site settings, creating the row
// on first save.
func (h *SiteHandler) Upsert(c *gin.Context) {
	var req SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid site payload"})
		return
	}
	site := models.Site{
		Title:          req.Title,
		Author:         req.Author,
		Introduction:   req.Introduction,
		Navbar:         req.Navbar,
		Footer:         req.Footer,
		HeroBackground: req.HeroBackground,
		UserID:         middleware.GetUserID(c),
	}
	if err := h.siteRepo.Upsert(&site); err != nil {
		h.log.Error().Err(err).Msg("site upsert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update site settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Site settings updated"})
}
