package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmplhub/catalogd/internal/domain"
)

// errorResponse is the uniform failure envelope.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// statusForError maps pipeline errors onto HTTP statuses. Unknown errors
// are internal failures.
func statusForError(err error) int {
	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.StatusCode {
		case 0:
			// Transport-level failure (DNS, connection refused): the
			// caller supplied an unreachable URL.
			return http.StatusBadRequest
		case http.StatusNotFound:
			return http.StatusNotFound
		case http.StatusTooManyRequests:
			return http.StatusTooManyRequests
		}
		return http.StatusInternalServerError
	}

	var missingErr *domain.MissingFieldsError
	if errors.As(err, &missingErr) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, domain.ErrInvalidURL),
		errors.Is(err, domain.ErrTooManyRedirects),
		errors.Is(err, domain.ErrInvalidComponentType),
		errors.Is(err, domain.ErrPluginsNotSupported):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusRequestTimeout
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrContentTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrScriptNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrLLMRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), errorResponse{Success: false, Error: err.Error()})
}
