package handler

import (
	"net/http"

	"inkwell/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ConfigHandler struct {
	configRepo *repository.ConfigRepository
	log        zerolog.Logger
}

func NewConfigHandler(configRepo *repository.ConfigRepository, log zerolog.Logger) *ConfigHandler {
	return &ConfigHandler{configRepo: configRepo, log: log.With().Str("component", "config_handler").Logger()}
}

// Get returns every configuration key/value pair, unpaginated.
func (h *ConfigHandler) Get(c *gin.Context) {
	values, err := h.configRepo.GetAll()
	if err != nil {
		h.log.Error().Err(err).Msg("config read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load configuration"})
		return
	}
	c.JSON(http.StatusOK, values)
}

// Update upserts the posted key/value mapping in one transaction.
func (h *ConfigHandler) Update(c *gin.Context) {
	var values map[string]string
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid configuration payload"})
		return
	}
	if err := h.configRepo.SetAll(values); err != nil {
		h.log.Error().Err(err).Msg("config update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update configuration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Configuration updated"})
}
