package api

import (
	"net/http"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/constants"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/service"
	"github.com/gin-gonic/gin"
)

// GetCollection returns one player's card collection with optional
// rarity filter, sorting and pagination.
func (h *Handler) GetCollection(c *gin.Context) {
	req := service.GetCollectionRequest{
		PlayerUUID: c.Param("playerUUID"),
		Rarity:     c.Query("rarity"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
		Page:       queryInt(c, "page", 1),
		PageSize:   queryInt(c, "page_size", 0),
	}
	page, err := service.GetCollection(h.repo, req)
	if err != nil {
		switch err {
		case service.ErrUnknownSortField, service.ErrBadRarityFilter:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCollection})
		}
		return
	}
	out, err := MarshalIntoSnakeTimestamps(page.Entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCollection})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"collection": out,
		"total":      page.Total,
		"page":       page.Page,
		"page_size":  page.PageSize,
	})
}
