package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zenith-todo/zenith-api/internal/models"
	"github.com/zenith-todo/zenith-api/internal/services"
)

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handlerImpl) HandleRegister(c *gin.Context) {
	var req registerRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	switch {
	case req.Username == "" || req.Email == "" || req.Password == "":
		abort(c, newBadRequestError(errAllFieldsRequired.Error()))
		return
	case len(req.Username) < 3:
		abort(c, newBadRequestError(errUsernameTooShort.Error()))
		return
	case len(req.Password) < 6:
		abort(c, newBadRequestError(errPasswordTooShort.Error()))
		return
	}
	h.logger.Info().
		Str("username", req.Username).
		Msg("register request")

	user, err := h.auth.Register(c, services.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to register user")
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			abort(c, newConflictError(services.ErrUserAlreadyExists.Error()))
		default:
			abort(c, newInternalError(err))
		}
		return
	}

	accessToken, refreshToken, ok := h.issueTokenPair(c, user.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "user registered successfully",
		"user":          newUserResponse(user),
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var req loginRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		abort(c, newBadRequestError(errUsernamePasswordBlank.Error()))
		return
	}

	user, err := h.auth.Login(c, services.LoginParams{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to login")
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			abort(c, newUnauthorizedError(services.ErrInvalidCredentials.Error()))
		default:
			abort(c, newInternalError(err))
		}
		return
	}

	accessToken, refreshToken, ok := h.issueTokenPair(c, user.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "login successful",
		"user":          newUserResponse(user),
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// HandleRefresh exchanges a bearer refresh token for a new access
// token. Access tokens are rejected by their type claim.
func (h *handlerImpl) HandleRefresh(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		h.logger.Error().Msg("refresh token required")
		abort(c, newUnauthorizedError(errAuthTokenRequired.Error()))
		return
	}

	userID, err := h.tokens.VerifyRefreshToken(token)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to verify refresh token")
		switch {
		case errors.Is(err, services.ErrTokenExpired):
			abort(c, newUnauthorizedError(services.ErrTokenExpired.Error()))
		default:
			abort(c, newUnauthorizedError(services.ErrTokenInvalid.Error()))
		}
		return
	}

	accessToken, err := h.tokens.IssueAccessToken(userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to issue access token")
		abort(c, newInternalError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

func (h *handlerImpl) HandleMe(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(errAuthTokenRequired.Error()))
		return
	}

	user, err := h.auth.GetUserByID(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get user")
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			abort(c, newNotFoundError(services.ErrUserNotFound.Error()))
		default:
			abort(c, newInternalError(err))
		}
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *handlerImpl) issueTokenPair(c *gin.Context, userID int64) (accessToken, refreshToken string, ok bool) {
	accessToken, err := h.tokens.IssueAccessToken(userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to issue access token")
		abort(c, newInternalError(err))
		return "", "", false
	}

	refreshToken, err = h.tokens.IssueRefreshToken(userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to issue refresh token")
		abort(c, newInternalError(err))
		return "", "", false
	}

	return accessToken, refreshToken, true
}
