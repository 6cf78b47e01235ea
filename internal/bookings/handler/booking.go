package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"staycal/internal/bookings/store"
	apperrors "staycal/pkg/errors"
	httputil "staycal/pkg/http"
	"staycal/pkg/logger"
	"staycal/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const defaultOccupancyDays = 14

type BookingHandler struct {
	store *store.BookingStore
	log   *logger.Logger
}

func NewBookingHandler(bookingStore *store.BookingStore, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		store: bookingStore,
		log:   log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.Booking
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking, err := h.store.Add(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, booking)
}

func (h *BookingHandler) GetAll(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, h.store.Bookings())
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	id, err := parseID(ps)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	booking, err := h.store.Get(id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, booking)
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var patch model.BookingUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking, err := h.store.Update(r.Context(), id, &patch)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, booking)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BookingHandler) ReassignRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var body struct {
		Room string `json:"room"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking, err := h.store.ReassignRoom(r.Context(), id, body.Room)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, booking)
}

func (h *BookingHandler) UpdateDates(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var body struct {
		CheckIn  model.Date `json:"check_in"`
		CheckOut model.Date `json:"check_out"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking, err := h.store.UpdateDates(r.Context(), id, body.CheckIn, body.CheckOut)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, booking)
}

func (h *BookingHandler) Unallocated(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	unallocated := h.store.Unallocated()
	if unallocated == nil {
		unallocated = []model.Booking{}
	}
	httputil.WriteSuccess(w, unallocated)
}

func (h *BookingHandler) Occupancy(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	start := model.Date{}
	if startStr := query.Get("start"); startStr != "" {
		parsed, err := model.ParseDate(startStr)
		if err != nil {
			httputil.WriteError(w, apperrors.InvalidInput("invalid start parameter, must be YYYY-MM-DD"))
			return
		}
		start = parsed
	} else {
		now := time.Now().UTC()
		start = model.NewDate(now.Year(), now.Month(), now.Day())
	}

	days := defaultOccupancyDays
	if daysStr := query.Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 || parsed > 366 {
			httputil.WriteError(w, apperrors.InvalidInput("invalid days parameter, must be 1-366"))
			return
		}
		days = parsed
	}

	httputil.WriteSuccess(w, h.store.Occupancy(start, days))
}

func (h *BookingHandler) Rooms(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, h.store.Rooms())
}

func (h *BookingHandler) Status(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"loading": h.store.Loading(),
		"error":   h.store.LastError(),
	})
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/bookings", h.GetAll)
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings/unallocated", h.Unallocated)
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
	router.PATCH("/api/v1/bookings/id/:id", h.Update)
	router.DELETE("/api/v1/bookings/id/:id", h.Delete)
	router.PUT("/api/v1/bookings/id/:id/room", h.ReassignRoom)
	router.PUT("/api/v1/bookings/id/:id/dates", h.UpdateDates)
	router.GET("/api/v1/occupancy", h.Occupancy)
	router.GET("/api/v1/rooms", h.Rooms)
	router.GET("/api/v1/status", h.Status)

	h.registerLegacyRoutes(router)
}

func parseID(ps httprouter.Params) (int64, error) {
	id, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil {
		return 0, apperrors.InvalidInput("invalid booking id: " + ps.ByName("id"))
	}
	return id, nil
}
