// Package events defines the booking lifecycle event payloads published to
// Kafka after successful store mutations.
package events

import (
	"encoding/json"
	"time"

	"staycal/pkg/model"
)

const (
	TypeBookingCreated     = "booking.created"
	TypeBookingUpdated     = "booking.updated"
	TypeBookingDeleted     = "booking.deleted"
	TypeBookingReassigned  = "booking.reassigned"
	TypeBookingRescheduled = "booking.rescheduled"
)

// BookingEvent carries the booking state after the mutation. Deleted events
// carry the last known state.
type BookingEvent struct {
	Type       string        `json:"type"`
	BookingID  int64         `json:"booking_id"`
	Booking    model.Booking `json:"booking"`
	OccurredAt time.Time     `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		Booking:    booking,
		OccurredAt: time.Now().UTC(),
	}
}

func (e BookingEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}
