package api

import (
	"net/http"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/constants"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/logging"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/service"
	"github.com/gin-gonic/gin"
)

// GeneratePacks rolls one or more card packs.
func (h *Handler) GeneratePacks(c *gin.Context) {
	var req service.GeneratePacksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	packs, seed, err := service.GeneratePacks(h.repo, req)
	if err != nil {
		switch err {
		case service.ErrUnknownPackType, service.ErrBadPackCount:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedGeneratePack})
		}
		return
	}
	logging.Info("packs generated", logging.Fields{
		constants.LogFieldPackType: req.PackType,
		constants.LogFieldSeed:     seed,
	})
	out, err := MarshalIntoSnakeTimestamps(packs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedGeneratePack})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packs": out, "seed": seed})
}
