package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/constants"
	"github.com/gin-gonic/gin"
)

// extractAPIKey pulls the key from X-API-Key or an Authorization bearer
// token.
func extractAPIKey(c *gin.Context) string {
	if k := strings.TrimSpace(c.GetHeader(constants.HeaderAPIKey)); k != "" {
		return k
	}
	auth := c.GetHeader(constants.HeaderAuthorization)
	if strings.HasPrefix(auth, constants.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(auth, constants.BearerPrefix))
	}
	return ""
}

// APIKeyRequired validates the request's API key against the configured
// key set. Keys carry the ddpk_ prefix; comparison is constant-time so
// timing does not leak key bytes. An empty configured set disables the
// check (local development).
func APIKeyRequired(validKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}
		key := extractAPIKey(c)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		if !strings.HasPrefix(key, constants.APIKeyPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidAPIKey})
			return
		}
		for _, valid := range validKeys {
			if subtle.ConstantTimeCompare([]byte(key), []byte(valid)) == 1 {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidAPIKey})
	}
}
