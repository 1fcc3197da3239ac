package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/constants"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/service"
	"github.com/gin-gonic/gin"
)

// ListEvents returns the configured event calendar, optionally filtered
// by current status (active, upcoming, ended).
func (h *Handler) ListEvents(c *gin.Context) {
	views, err := service.ListEvents(h.events, c.Query("status"), time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": views})
}

// GetEvent returns one configured event by ID.
func (h *Handler) GetEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("eventID"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidEventID})
		return
	}
	view, err := service.GetEvent(h.events, uint(id), time.Now())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEventNotFound})
		return
	}
	c.JSON(http.StatusOK, view)
}
