// Package middleware provides HTTP middleware functions.
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	appConfig "github.com/clubsports/matchday/internal/config"
)

// userIDKey is the gin context key the verified user id is stored under.
const userIDKey = "user_id"

// Auth returns a middleware that validates the Bearer access token and
// stores the verified user id in the request context. Confirmation
// endpoints are not behind this middleware: they authenticate with the
// action token carried in the request body instead.
func Auth(cfg appConfig.TokenConfig) gin.HandlerFunc {
	secret := []byte(cfg.Secret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "missing or invalid authorization header")
			return
		}
		raw := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		).ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		userID, err := strconv.ParseUint(claims.Subject, 10, 32)
		if err != nil || userID == 0 {
			abortUnauthorized(c, "token missing subject")
			return
		}

		c.Set(userIDKey, uint(userID))
		c.Next()
	}
}

// UserID returns the verified user id stored by Auth, or 0 when the
// request did not pass through it.
func UserID(c *gin.Context) uint {
	value, ok := c.Get(userIDKey)
	if !ok {
		return 0
	}
	userID, ok := value.(uint)
	if !ok {
		return 0
	}
	return userID
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
