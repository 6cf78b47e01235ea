package handler

import (
	"encoding/json"
	"net/http"

	"staycal/internal/bookings/seed"
	apperrors "staycal/pkg/errors"
	httputil "staycal/pkg/http"
	"staycal/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// The unversioned routes predate the store-backed API and are kept for old
// calendar clients. They serve canned data and never touch the store.

func (h *BookingHandler) registerLegacyRoutes(router *httprouter.Router) {
	router.GET("/bookings", h.legacyList)
	router.PUT("/bookings/:id", h.legacyUpdate)
}

func (h *BookingHandler) legacyList(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	sample := seed.Bookings()
	summaries := make([]model.BookingSummary, 0, len(sample))
	for i := range sample {
		summaries = append(summaries, sample[i].Summary())
	}
	httputil.WriteJSON(w, http.StatusOK, summaries)
}

// legacyUpdate echoes the submitted payload back with the path id stamped on
// it. Old clients only use the response to refresh their local row.
func (h *BookingHandler) legacyUpdate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking.ID = id
	httputil.WriteJSON(w, http.StatusOK, booking)
}
