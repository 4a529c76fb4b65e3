package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestBody    = errors.New("invalid request body")
	errAllFieldsRequired     = errors.New("all fields are required")
	errUsernameTooShort      = errors.New("username must be at least 3 characters")
	errPasswordTooShort      = errors.New("password must be at least 6 characters")
	errTitleRequired         = errors.New("title is required")
	errInvalidStatus         = errors.New("invalid status")
	errInvalidPriority       = errors.New("invalid priority")
	errAuthTokenRequired     = errors.New("authorization token required")
	errUsernamePasswordBlank = errors.New("username and password required")
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

// Every failure surfaces as {"error": "<message>"} with the status code.
func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newUnauthorizedError(message string) apiError {
	return newAPIError(http.StatusUnauthorized, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newConflictError(message string) apiError {
	return newAPIError(http.StatusConflict, message)
}

// Unanticipated faults pass the raw error message through with a 500.
func newInternalError(err error) apiError {
	return newAPIError(http.StatusInternalServerError, err.Error())
}
