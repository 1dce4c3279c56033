package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bistroboss/bistro-api/internal/models"
)

// Context keys populated by JWTAuth for downstream guards and handlers.
const (
	// ContextDecodedKey holds the full decoded claim map.
	ContextDecodedKey = "decoded"
	// ContextEmailKey holds the decoded identity's email.
	ContextEmailKey = "decodedEmail"
)

// JWTAuth validates the bearer token on protected requests.
// It terminates the request with 401 when the Authorization header is
// missing or the token fails signature/expiry verification; on success
// it attaches the decoded claims to the request context and continues.
// The middleware is agnostic to which resource it guards.
func JWTAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondUnauthorized(c)
			return
		}

		// Bearer scheme only
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondUnauthorized(c)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			respondUnauthorized(c)
			return
		}

		claims, err := parseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			respondUnauthorized(c)
			return
		}

		c.Set(ContextDecodedKey, claims)
		if email, ok := claims["email"].(string); ok {
			c.Set(ContextEmailKey, email)
		}

		c.Next()
	}
}

// respondUnauthorized terminates the request with the guard rejection body.
func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": models.MsgUnauthorized})
	c.Abort()
}

// parseAndValidateJWT validates and parses a JWT token using HMAC signing method.
// Expiry and not-before validation happen inside jwt.Parse.
func parseAndValidateJWT(tokenString string, jwtSecret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method to prevent algorithm confusion attacks
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims format")
	}

	return claims, nil
}

// DecodedEmail returns the email attached by JWTAuth, or false when the
// request never passed the token guard.
func DecodedEmail(c *gin.Context) (string, bool) {
	email, ok := c.Get(ContextEmailKey)
	if !ok {
		return "", false
	}
	s, ok := email.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
