package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/constants"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/service"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20
const maxPageSize = 100

// ListCards returns the card catalog with optional rarity/type/search
// filters and page/page_size pagination.
func (h *Handler) ListCards(c *gin.Context) {
	cards, err := h.repo.GetCards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCards})
		return
	}

	if rarity := c.Query("rarity"); rarity != "" {
		if !game.IsValidRarity(rarity) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		cards = filterCards(cards, func(card game.Card) bool { return card.Rarity == game.Rarity(rarity) })
	}
	if dadType := c.Query("dad_type"); dadType != "" {
		if !game.IsValidDadType(dadType) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		cards = filterCards(cards, func(card game.Card) bool { return card.DadType == game.DadType(dadType) })
	}
	if q := strings.ToLower(strings.TrimSpace(c.Query("search"))); q != "" {
		cards = filterCards(cards, func(card game.Card) bool {
			return strings.Contains(strings.ToLower(card.Name), q)
		})
	}

	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", defaultPageSize)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	total := len(cards)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	out, err := MarshalIntoSnakeTimestamps(cards[start:end])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCards})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cards":     out,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetCard returns a single card by numeric ID or, for non-numeric
// segments, by case-insensitive name. The literal segment "random"
// dispatches to RandomCard instead.
func (h *Handler) GetCard(c *gin.Context) {
	param := c.Param("cardID")
	if param == constants.CardRandomParam {
		h.RandomCard(c)
		return
	}
	var card *game.Card
	if id, err := strconv.ParseUint(param, 10, 32); err == nil {
		if id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCardID})
			return
		}
		card, err = h.repo.GetCardByID(uint(id))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCardNotFound})
			return
		}
	} else {
		card, err = h.repo.GetCardByName(param)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCardNotFound})
			return
		}
	}
	out, err := MarshalIntoSnakeTimestamps(card)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCards})
		return
	}
	c.JSON(http.StatusOK, out)
}

// RandomCard draws one card uniformly from the catalog. Optional
// ?seed=N makes the draw reproducible; ?exclude=1,2 skips IDs.
func (h *Handler) RandomCard(c *gin.Context) {
	var seed int64
	if s := c.Query("seed"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		seed = n
	}
	var exclude []uint
	if s := c.Query("exclude"); s != "" {
		for _, part := range strings.Split(s, ",") {
			n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCardID})
				return
			}
			exclude = append(exclude, uint(n))
		}
	}

	card, err := service.RandomCard(h.repo, seed, exclude)
	if err != nil {
		if err == service.ErrCardNotFound {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCardNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCards})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(card)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCards})
		return
	}
	c.JSON(http.StatusOK, out)
}

func filterCards(cards []game.Card, keep func(game.Card) bool) []game.Card {
	out := cards[:0:0]
	for _, card := range cards {
		if keep(card) {
			out = append(out, card)
		}
	}
	return out
}

func queryInt(c *gin.Context, key string, def int) int {
	s := c.Query(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
