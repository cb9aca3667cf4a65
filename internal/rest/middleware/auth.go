package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/futureuniv/campusfeed/domain"
)

// IdentityKey is where the parsed viewer identity lives in the gin context.
const IdentityKey = "identity"

// AuthMiddleware requires a valid access token and injects the identity.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, err := parseIdentity(c, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}

		c.Set(IdentityKey, ident)
		c.Next()
	}
}

// OptionalAuth injects the identity when a valid token is present and lets
// anonymous requests through untouched. Pages like the feed render for
// both.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ident, err := parseIdentity(c, secret); err == nil {
			c.Set(IdentityKey, ident)
		}
		c.Next()
	}
}

// parseIdentity verifies the bearer token locally (shared HMAC secret with
// the auth surface) and extracts the subject and email claims.
func parseIdentity(c *gin.Context, secret string) (domain.Identity, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	email, _ := claims["email"].(string)

	return domain.Identity{ID: sub, Email: email, Token: raw}, nil
}
