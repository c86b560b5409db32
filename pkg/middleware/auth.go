package middleware

import (
	"net/http"
	"strings"

	"blog-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const identityKey = "blog.identity"

// Identity is the caller resolved from a bearer token.
type Identity struct {
	UserID   uint
	Username string
}

// AuthMiddleware rejects requests without a bearer token with 401 and
// requests carrying a malformed, invalid or expired token with 403.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		setIdentity(c, Identity{UserID: claims.UserID, Username: claims.Username})
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the caller when a valid token is present
// and lets every request through otherwise.
func OptionalAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := jwtService.ValidateToken(tokenString); err == nil {
				setIdentity(c, Identity{UserID: claims.UserID, Username: claims.Username})
			}
		}
		c.Next()
	}
}

func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

func CurrentUserID(c *gin.Context) (uint, bool) {
	id, ok := CurrentIdentity(c)
	if !ok || id.UserID == 0 {
		return 0, false
	}
	return id.UserID, true
}

func setIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
