// README: HTTP helper utilities for JSON and error mapping.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelsmart/internal/store"
)

const dateLayout = "2006-01-02"

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	writeError(c, http.StatusInternalServerError, "internal error")
}

// parseDate parses a YYYY-MM-DD field, naming it in the error.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.New(field + " must be formatted as YYYY-MM-DD")
	}
	return t, nil
}
