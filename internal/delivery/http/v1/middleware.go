package v1

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zenith-todo/zenith-api/internal/services"
)

const userIDCtxKey = "user_id"

// HandleAuthMiddleware requires a valid bearer access token and stores
// the authenticated user id in the request context. The three failure
// modes (absent, malformed/invalid, expired) keep distinct messages
// behind a uniform 401 shape.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		h.logger.Error().Msg("authorization header required")
		abort(c, newUnauthorizedError(errAuthTokenRequired.Error()))
		return
	}

	userID, err := h.tokens.VerifyAccessToken(token)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to verify access token")
		switch {
		case errors.Is(err, services.ErrTokenExpired):
			abort(c, newUnauthorizedError(services.ErrTokenExpired.Error()))
		default:
			abort(c, newUnauthorizedError(services.ErrTokenInvalid.Error()))
		}
		return
	}

	c.Set(userIDCtxKey, userID)
	c.Next()
}

func bearerToken(c *gin.Context) (string, bool) {
	const authHeader = "Authorization"
	header := c.GetHeader(authHeader)
	if header == "" {
		return "", false
	}

	const bearerPrefix = "Bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func userIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get(userIDCtxKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}
