package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const EmailContextKey = "email"

// AuthMiddleware resolves the caller's identity. Behind the api gateway the
// identity arrives as an X-User-Email header (with a cookie fallback); a
// Bearer token signed with the shared secret is accepted directly so the
// service also works without the gateway in front.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetHeader("X-User-Email")

		if email == "" {
			if v, err := c.Cookie("user_email"); err == nil {
				email = v
			}
		}

		if email == "" {
			email = emailFromBearerToken(c, jwtSecret)
		}

		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		c.Set(EmailContextKey, email)
		c.Next()
	}
}

func emailFromBearerToken(c *gin.Context, secret string) string {
	tokenString := c.GetHeader("Authorization")
	if !strings.HasPrefix(tokenString, "Bearer ") {
		return ""
	}
	tokenString = tokenString[7:]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

// GetEmail returns the authenticated email set by AuthMiddleware.
func GetEmail(c *gin.Context) (string, error) {
	if val, ok := c.Get(EmailContextKey); ok {
		if email, ok := val.(string); ok && email != "" {
			return email, nil
		}
	}
	return "", errors.New("email not found in context")
}
