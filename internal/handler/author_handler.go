package handler

import (
	"errors"
	"net/http"

	"inkwell/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type AuthorHandler struct {
	siteSvc *service.SiteService
	log     zerolog.Logger
}

func NewAuthorHandler(siteSvc *service.SiteService, log zerolog.Logger) *AuthorHandler {
	return &AuthorHandler{siteSvc: siteSvc, log: log.With().Str("component", "author_handler").Logger()}
}

// GetSite serves the composite author document for a slug.
func (h *AuthorHandler) GetSite(c *gin.Context) {
	view, err := h.siteSvc.ComposeAuthorSite(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Author not found"})
			return
		}
		h.log.Error().Err(err).Str("slug", c.Param("slug")).Msg("site composition failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load author site"})
		return
	}
	c.JSON(http.StatusOK, view)
}
