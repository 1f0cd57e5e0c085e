package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-cms/helper"
	"blog-cms/models"
	"blog-cms/services"
)

const currentUserKey = "current_user"

type TokenParser interface {
	Parse(tokenString string) (*services.Claims, error)
}

type UserFinder interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// Authenticate resolves the bearer token into the current user. Requests with
// a missing or unusable token continue anonymously; RequireAuth rejects them
// where a user is needed.
func Authenticate(tokens TokenParser, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.ID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAuth aborts with 401 unless Authenticate found a user.
func RequireAuth(h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			h.SendUnauthorizedError(c, "Not authorized")
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(currentUserKey, user)
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
