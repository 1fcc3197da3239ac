package api

import (
	"net/http"
	"strconv"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/constants"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/dedupe"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
	"github.com/gin-gonic/gin"
)

// ListLeaderboard returns the top players by wins (desc), limited to
// top 10 by default. Concurrent identical reads share one DB query via
// singleflight.
func (h *Handler) ListLeaderboard(c *gin.Context) {
	// optional ?limit=N
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	v, err, _ := dedupe.LeaderboardGroup.Do(strconv.Itoa(limit), func() (interface{}, error) {
		return h.repo.GetTopPlayers(limit)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	users := v.([]game.User)
	out, err := MarshalIntoSnakeTimestamps(users)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, out)
}
