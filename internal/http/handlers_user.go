// README: Booking lookup and user preference handlers.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelsmart/internal/store"
)

// HandleGetBooking handles GET /api/v1/bookings/:id.
func (s *Server) HandleGetBooking(c *gin.Context) {
	if s.bookings == nil {
		writeError(c, http.StatusNotImplemented, "booking storage is not configured")
		return
	}

	booking, err := s.bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, booking)
}

// HandleListBookings handles GET /api/v1/users/:id/bookings.
func (s *Server) HandleListBookings(c *gin.Context) {
	if s.bookings == nil {
		writeError(c, http.StatusNotImplemented, "booking storage is not configured")
		return
	}

	bookings, err := s.bookings.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if bookings == nil {
		bookings = []*store.Booking{}
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": bookings})
}

// HandlePutPreferences handles PUT /api/v1/users/:id/preferences.
func (s *Server) HandlePutPreferences(c *gin.Context) {
	if s.preferences == nil {
		writeError(c, http.StatusNotImplemented, "preference storage is not configured")
		return
	}

	var preferences map[string]any
	if err := c.ShouldBindJSON(&preferences); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	if err := s.preferences.Upsert(c.Request.Context(), c.Param("id"), preferences); err != nil {
		writeStoreError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "saved"})
}

// HandleGetPreferences handles GET /api/v1/users/:id/preferences.
func (s *Server) HandleGetPreferences(c *gin.Context) {
	if s.preferences == nil {
		writeError(c, http.StatusNotImplemented, "preference storage is not configured")
		return
	}

	preferences, err := s.preferences.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"preferences": preferences})
}
