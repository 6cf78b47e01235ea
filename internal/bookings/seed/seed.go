// Package seed bundles the sample dataset the store falls back to when the
// key-value collaborator has no saved bookings or the payload is unreadable.
package seed

import (
	_ "embed"
	"encoding/json"

	"staycal/pkg/model"
)

//go:embed bookings.json
var sampleBookings []byte

// Bookings returns a fresh copy of the bundled sample dataset. The payload
// is compiled into the binary, so a decode failure is a build defect.
func Bookings() []model.Booking {
	var bookings []model.Booking
	if err := json.Unmarshal(sampleBookings, &bookings); err != nil {
		panic("seed: bundled bookings.json is invalid: " + err.Error())
	}
	return bookings
}
