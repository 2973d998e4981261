package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mychecklist/pkg/apierrors"
	"mychecklist/pkg/jwtauth"
)

const userIDKey = "userID"

// AuthMiddleware resolves the authenticated user id from the bearer token
// and stores it on the context. Handlers downstream trust this id.
func AuthMiddleware(tokens *jwtauth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgLoginRequired, lang),
			)
			return
		}

		userID, err := tokens.ParseUserID(token)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
			)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}
