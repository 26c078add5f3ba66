package middleware

import (
	"context"
	"net/http"
	"strings"

	"scrumboard/internal/auth"
	"scrumboard/internal/model"

	"github.com/gin-gonic/gin"
)

const CallerKey = "caller"

// CallerResolver turns verified token claims into the caller of the request, recording
// the user locally if needed.
type CallerResolver interface {
	Resolve(ctx context.Context, claims *auth.Claims, role model.OrgRole) (model.Caller, error)
}

func JWTAuthMiddleware(signer *auth.Signer, resolver CallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := signer.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		role, err := model.ParseOrgRole(claims.OrgRole)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid organization role in token"})
			return
		}

		caller, err := resolver.Resolve(c.Request.Context(), claims, role)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
			return
		}

		c.Set(CallerKey, caller)
		c.Next()
	}
}

// CallerFrom returns the caller stored by JWTAuthMiddleware.
func CallerFrom(c *gin.Context) (model.Caller, bool) {
	v, exists := c.Get(CallerKey)
	if !exists {
		return model.Caller{}, false
	}
	caller, ok := v.(model.Caller)
	return caller, ok
}
