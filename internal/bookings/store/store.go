package store

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strconv"
	"sync"

	bookingserrors "staycal/internal/bookings/errors"
	"staycal/internal/bookings/events"
	"staycal/internal/bookings/validator"
	"staycal/pkg/config"
	apperrors "staycal/pkg/errors"
	"staycal/pkg/kafka"
	"staycal/pkg/kv"
	"staycal/pkg/logger"
	"staycal/pkg/model"
	"staycal/pkg/sanitizer"

	"github.com/google/uuid"
)

const (
	defaultTransactionStatus = "completed"
	defaultBaseAmount        = 1000
	defaultTaxAmount         = 100
)

// EventPublisher publishes booking lifecycle events. A nil publisher
// disables eventing without changing store behavior.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// BookingStore owns the ordered booking sequence and the fixed room set.
// Every mutation runs validate, check, mutate, persist under the store
// mutex, so callers always observe a consistent sequence. Persistence is a
// whole-sequence overwrite of one key in the kv collaborator; a write
// failure is recorded in the last-error field but never rolls back the
// in-memory mutation.
type BookingStore struct {
	mu        sync.Mutex
	bookings  []model.Booking
	rooms     []string
	loading   bool
	lastError string

	kv         kv.Store
	storageKey string
	seed       func() []model.Booking
	validator  *validator.BookingValidator
	publisher  EventPublisher
	log        *logger.Logger
}

type Options struct {
	Rooms      []string
	KV         kv.Store
	StorageKey string
	Seed       func() []model.Booking
	Validator  *validator.BookingValidator
	Publisher  EventPublisher
	Log        *logger.Logger
}

func New(opts Options) *BookingStore {
	return &BookingStore{
		rooms:      opts.Rooms,
		kv:         opts.KV,
		storageKey: opts.StorageKey,
		seed:       opts.Seed,
		validator:  opts.Validator,
		publisher:  opts.Publisher,
		log:        opts.Log,
	}
}

// Load repopulates the in-memory sequence from the kv collaborator. On a
// miss or an unreadable payload it falls back to the bundled sample dataset
// and persists the seed, so the next Load round-trips.
func (s *BookingStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	defer func() { s.loading = false }()

	saved, err := s.kv.Get(ctx, s.storageKey)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			s.lastError = apperrors.Persistence("failed to load bookings", err).Error()
			s.log.Error("Failed to read bookings from storage", "key", s.storageKey, "error", err)
			s.bookings = s.seed()
			return
		}
		s.log.Info("No saved bookings, seeding sample dataset", "key", s.storageKey)
		s.seedAndPersist(ctx)
		return
	}

	var bookings []model.Booking
	if err := json.Unmarshal([]byte(saved), &bookings); err != nil {
		s.log.Warn("Saved bookings are unreadable, reseeding", "key", s.storageKey, "error", err)
		s.seedAndPersist(ctx)
		return
	}

	s.bookings = bookings
	s.lastError = ""
	s.log.Info("Bookings loaded", "count", len(s.bookings))
}

// Add creates a booking. The id is one past the current maximum, payment
// metadata is defaulted where absent, and the room type is forced to the
// single supported value regardless of caller input.
func (s *BookingStore) Add(ctx context.Context, input model.Booking) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := input
	candidate.ID = s.nextID()
	candidate.RoomType = config.RoomType
	candidate.CustomerName = sanitizer.NormalizeName(candidate.CustomerName)
	candidate.Room = sanitizer.NormalizeRoom(candidate.Room)
	applyPaymentDefaults(&candidate)

	if err := s.validate(&candidate); err != nil {
		return model.Booking{}, s.fail(err)
	}
	if !s.roomAvailable(candidate.Room, candidate.CheckIn, candidate.CheckOut, 0) {
		return model.Booking{}, s.fail(s.unavailableErr(candidate.Room))
	}

	s.bookings = append(s.bookings, candidate)
	s.lastError = ""
	s.persist(ctx)
	s.publish(ctx, events.TypeBookingCreated, candidate)

	s.log.Info("Booking created",
		"id", candidate.ID,
		"room", candidate.Room,
		"check_in", candidate.CheckIn.String(),
		"check_out", candidate.CheckOut.String(),
	)
	return candidate, nil
}

// Update merges the patch over the stored booking, validates the candidate
// as a whole and re-checks availability excluding the booking itself. The
// booking keeps its position in the sequence.
func (s *BookingStore) Update(ctx context.Context, id int64, patch *model.BookingUpdate) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return model.Booking{}, s.fail(s.notFoundErr(id))
	}

	merged := patch.Apply(s.bookings[index])
	merged.CustomerName = sanitizer.NormalizeName(merged.CustomerName)
	merged.Room = sanitizer.NormalizeRoom(merged.Room)
	if err := s.validate(&merged); err != nil {
		return model.Booking{}, s.fail(err)
	}
	if !s.roomAvailable(merged.Room, merged.CheckIn, merged.CheckOut, id) {
		return model.Booking{}, s.fail(s.unavailableErr(merged.Room))
	}

	s.bookings[index] = merged
	s.lastError = ""
	s.persist(ctx)
	s.publish(ctx, events.TypeBookingUpdated, merged)

	s.log.Info("Booking updated", "id", id, "room", merged.Room)
	return merged, nil
}

// ReassignRoom moves the booking to another room over its existing dates.
func (s *BookingStore) ReassignRoom(ctx context.Context, id int64, newRoom string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.Contains(s.rooms, newRoom) {
		return model.Booking{}, s.fail(s.invalidRoomErr(newRoom))
	}

	index := s.indexOf(id)
	if index < 0 {
		return model.Booking{}, s.fail(s.notFoundErr(id))
	}

	booking := s.bookings[index]
	if !s.roomAvailable(newRoom, booking.CheckIn, booking.CheckOut, id) {
		return model.Booking{}, s.fail(s.unavailableErr(newRoom))
	}

	booking.Room = newRoom
	s.bookings[index] = booking
	s.lastError = ""
	s.persist(ctx)
	s.publish(ctx, events.TypeBookingReassigned, booking)

	s.log.Info("Booking reassigned", "id", id, "room", newRoom)
	return booking, nil
}

// UpdateDates reschedules the booking on its current room.
func (s *BookingStore) UpdateDates(ctx context.Context, id int64, checkIn, checkOut model.Date) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return model.Booking{}, s.fail(s.notFoundErr(id))
	}

	if err := s.validator.ValidateDates(checkIn, checkOut); err != nil {
		return model.Booking{}, s.fail(s.validationErr(err))
	}

	booking := s.bookings[index]
	if !s.roomAvailable(booking.Room, checkIn, checkOut, id) {
		return model.Booking{}, s.fail(s.unavailableErr(booking.Room))
	}

	booking.CheckIn = checkIn
	booking.CheckOut = checkOut
	s.bookings[index] = booking
	s.lastError = ""
	s.persist(ctx)
	s.publish(ctx, events.TypeBookingRescheduled, booking)

	s.log.Info("Booking rescheduled",
		"id", id,
		"check_in", checkIn.String(),
		"check_out", checkOut.String(),
	)
	return booking, nil
}

// Delete removes the booking. An unknown id is an error, not a no-op.
func (s *BookingStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return s.fail(s.notFoundErr(id))
	}

	deleted := s.bookings[index]
	s.bookings = append(s.bookings[:index], s.bookings[index+1:]...)
	s.lastError = ""
	s.persist(ctx)
	s.publish(ctx, events.TypeBookingDeleted, deleted)

	s.log.Info("Booking deleted", "id", id)
	return nil
}

// Get returns the booking with the given id.
func (s *BookingStore) Get(id int64) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return model.Booking{}, s.notFoundErr(id)
	}
	return s.bookings[index], nil
}

// Bookings returns a copy of the sequence in insertion order.
func (s *BookingStore) Bookings() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.bookings)
}

// Unallocated returns the bookings whose room is empty or no longer part of
// the room set. Computed from current state on every call.
func (s *BookingStore) Unallocated() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var unallocated []model.Booking
	for _, booking := range s.bookings {
		if booking.Room == "" || !slices.Contains(s.rooms, booking.Room) {
			unallocated = append(unallocated, booking)
		}
	}
	return unallocated
}

// Rooms returns the configured room set in display order.
func (s *BookingStore) Rooms() []string {
	return slices.Clone(s.rooms)
}

func (s *BookingStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *BookingStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// CheckRoomAvailability reports whether the room is free for the half-open
// range [checkIn, checkOut), ignoring the booking with excludeID (pass 0 to
// exclude nothing). Two ranges conflict iff a_in < b_out && a_out > b_in,
// so back-to-back stays never conflict.
func (s *BookingStore) CheckRoomAvailability(room string, checkIn, checkOut model.Date, excludeID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.roomAvailable(room, checkIn, checkOut, excludeID)
}

func (s *BookingStore) roomAvailable(room string, checkIn, checkOut model.Date, excludeID int64) bool {
	for _, booking := range s.bookings {
		if booking.ID == excludeID {
			continue
		}
		if booking.Room != room {
			continue
		}
		if checkIn.Before(booking.CheckOut) && checkOut.After(booking.CheckIn) {
			return false
		}
	}
	return true
}

// --- Helpers ---

func (s *BookingStore) seedAndPersist(ctx context.Context) {
	s.bookings = s.seed()
	s.lastError = ""
	s.persist(ctx)
}

// persist overwrites the whole serialized sequence under the fixed key.
// Failures are recorded, never propagated: the in-memory state is already
// mutated and stays authoritative.
func (s *BookingStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.bookings)
	if err != nil {
		s.lastError = apperrors.Persistence("failed to serialize bookings", err).Error()
		s.log.Error("Failed to serialize bookings", "error", err)
		return
	}

	if err := s.kv.Set(ctx, s.storageKey, string(data)); err != nil {
		s.lastError = apperrors.Persistence("failed to save bookings", err).Error()
		s.log.Error("Failed to save bookings", "key", s.storageKey, "error", err)
	}
}

func (s *BookingStore) publish(ctx context.Context, eventType string, booking model.Booking) {
	if s.publisher == nil {
		return
	}

	event := events.NewBookingEvent(eventType, booking)
	payload, err := event.Marshal()
	if err != nil {
		s.log.Warn("Failed to encode booking event", "type", eventType, "id", booking.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:       strconv.FormatInt(booking.ID, 10),
		Value:     payload,
		Timestamp: event.OccurredAt,
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.log.Warn("Failed to publish booking event", "type", eventType, "id", booking.ID, "error", err)
	}
}

func (s *BookingStore) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		return s.validationErr(err)
	}
	return nil
}

func (s *BookingStore) nextID() int64 {
	var maxID int64
	for _, booking := range s.bookings {
		if booking.ID > maxID {
			maxID = booking.ID
		}
	}
	return maxID + 1
}

func (s *BookingStore) indexOf(id int64) int {
	for i, booking := range s.bookings {
		if booking.ID == id {
			return i
		}
	}
	return -1
}

func (s *BookingStore) fail(err error) error {
	s.lastError = err.Error()
	s.log.Warn("Booking operation rejected", "error", err)
	return err
}

func (s *BookingStore) notFoundErr(id int64) error {
	appErr := apperrors.NotFound("Booking", id)
	appErr.Err = bookingserrors.ErrNotFound
	return appErr
}

func (s *BookingStore) invalidRoomErr(room string) error {
	appErr := apperrors.InvalidRoom(room)
	appErr.Err = bookingserrors.ErrInvalidRoom
	return appErr
}

func (s *BookingStore) unavailableErr(room string) error {
	appErr := apperrors.RoomUnavailable(room)
	appErr.Err = bookingserrors.ErrRoomUnavailable
	return appErr
}

func (s *BookingStore) validationErr(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.Validation(verrs[0].Message, map[string]any{
			"field": verrs[0].Field,
		})
	}
	return apperrors.Validation(err.Error(), nil)
}

func applyPaymentDefaults(booking *model.Booking) {
	if booking.TransactionID == "" {
		booking.TransactionID = "TXN-" + uuid.NewString()
	}
	if booking.TransactionStatus == "" {
		booking.TransactionStatus = defaultTransactionStatus
	}
	if booking.BaseAmount == 0 {
		booking.BaseAmount = defaultBaseAmount
	}
	if booking.TaxAmount == 0 {
		booking.TaxAmount = defaultTaxAmount
	}
	if booking.TotalAmount == 0 {
		booking.TotalAmount = booking.BaseAmount + booking.TaxAmount
	}
}
