package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bistroboss/bistro-api/internal/models"
)

// RoleLookup resolves a stored user record by email. Satisfied by
// services.UserService; kept narrow so the guard can be tested with a fake.
type RoleLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireAdmin admits a request only when the authenticated identity's
// stored record carries the admin role. It must run after JWTAuth.
//
// The role is resolved from the store on every invocation rather than
// from a token claim, so a role change takes effect immediately without
// reissuing the token. That costs one store read per admin-gated call.
func RequireAdmin(lookup RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := DecodedEmail(c)
		if !ok {
			// JWTAuth never ran; treat as unauthenticated
			respondUnauthorized(c)
			return
		}

		user, err := lookup.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			c.Abort()
			return
		}
		if user == nil || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"message": models.MsgForbidden})
			c.Abort()
			return
		}

		c.Next()
	}
}
