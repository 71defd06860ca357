package middleware

import (
	"net/http"
	"strings"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/go-points/routers/api"
	"github.com/go-points/utils/header"
)

const (
	ErrKeyUnauthorized = "unauthorized"
	UserKey            = "user"

	bearerPrefix = "Bearer "
	authEntity   = "authentication"
)

// JWT requires an HS256 bearer token signed with secret. The token subject
// is stored under UserKey.
func JWT(secret []byte, alerts header.Builder) gin.HandlerFunc {
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	}

	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			api.Fail(c, alerts, http.StatusUnauthorized, authEntity, ErrKeyUnauthorized, "missing bearer token")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(auth, bearerPrefix), claims, keyFunc)
		if err != nil || !token.Valid {
			msg := "invalid token"
			if err != nil {
				msg = err.Error()
			}
			api.Fail(c, alerts, http.StatusUnauthorized, authEntity, ErrKeyUnauthorized, msg)
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set(UserKey, sub)
		}
		c.Next()
	}
}
