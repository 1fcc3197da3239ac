package api

import (
	"net/http"
	"strings"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/constants"
	"github.com/gin-gonic/gin"
)

// GetPlayer returns aggregate stats for a named player. Unknown names
// report a zeroed profile rather than a 404 so clients can render a
// fresh player without a special case.
func (h *Handler) GetPlayer(c *gin.Context) {
	name := strings.TrimSpace(c.Param("playerName"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	u, err := h.repo.GetStatsByName(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchPlayer})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchPlayer})
		return
	}
	c.JSON(http.StatusOK, out)
}
