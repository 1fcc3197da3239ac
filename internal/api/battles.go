package api

import (
	"net/http"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/constants"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/logging"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/service"
	"github.com/gin-gonic/gin"
)

// battleErrorStatus maps service sentinel errors to HTTP statuses.
func battleErrorStatus(err error) (int, string) {
	switch err {
	case service.ErrEmptyDeck:
		return http.StatusBadRequest, constants.ErrDeckEmpty
	case service.ErrBadCardCount, service.ErrDeckTooLarge:
		return http.StatusBadRequest, constants.ErrDeckSizeOutOfRange
	case service.ErrCardNotFound:
		return http.StatusNotFound, constants.ErrUnknownCardInDeck
	default:
		return http.StatusInternalServerError, constants.ErrFailedResolveBattle
	}
}

// ResolveBattle resolves a deck-vs-deck battle.
func (h *Handler) ResolveBattle(c *gin.Context) {
	var req service.ResolveBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	res, seed, err := service.ResolveBattle(h.repo, req)
	if err != nil {
		status, msg := battleErrorStatus(err)
		c.JSON(status, gin.H{constants.JSONKeyError: msg})
		return
	}
	logging.Info("battle resolved", logging.Fields{
		constants.LogFieldDeckName: res.Winner.Name,
		constants.LogFieldSeed:     seed,
	})
	c.JSON(http.StatusOK, gin.H{"result": res, "seed": seed})
}

// SimulateBattle runs the single-card turn-based simulator.
func (h *Handler) SimulateBattle(c *gin.Context) {
	var req service.SimulateBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	out, seed, err := service.SimulateBattle(h.repo, req)
	if err != nil {
		if err == service.ErrCardNotFound {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCardNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedResolveBattle})
		return
	}
	c.JSON(http.StatusOK, gin.H{"outcome": out, "seed": seed})
}

// PredictBattle returns the heuristic winner prediction for two cards.
func (h *Handler) PredictBattle(c *gin.Context) {
	var req service.PredictBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	pred, err := service.PredictWinner(h.repo, req)
	if err != nil {
		if err == service.ErrCardNotFound {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCardNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedResolveBattle})
		return
	}
	c.JSON(http.StatusOK, pred)
}
