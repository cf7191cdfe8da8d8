package middleware

import (
	"errors"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const UserIDKey = "user_id"

type Claims struct {
	Sub string `json:"sub"`
	jwt.RegisteredClaims
}

// Identity resolves the caller from an optional Bearer token. A missing
// header means an anonymous caller (guest booking path); a present but
// invalid token is rejected outright.
func Identity(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "malformed authorization header"})
			return
		}

		claims, err := parseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(UserIDKey, claims.Sub)
		c.Next()
	}
}

func parseToken(tokenStr, secret string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Sub == "" {
		return nil, errors.New("invalid token")
	}
	return c, nil
}
