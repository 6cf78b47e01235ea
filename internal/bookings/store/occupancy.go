package store

import (
	"slices"

	"staycal/pkg/model"
)

// RoomOccupancy maps room id to date (YYYY-MM-DD) to the occupying booking
// id. A zero id means the room is vacant on that date; real booking ids
// start at 1.
type RoomOccupancy map[string]map[string]int64

// Occupancy reports which booking holds each room on each date in
// [start, start+days-1]. A booking occupies [check_in, check_out): the
// checkout date itself stays free because the guest departs that day.
//
// This is a report over current state, not an invariant check: if the
// sequence ever holds an overlapping pair, the later-inserted booking wins.
func (s *BookingStore) Occupancy(start model.Date, days int) RoomOccupancy {
	s.mu.Lock()
	defer s.mu.Unlock()

	occupancy := make(RoomOccupancy, len(s.rooms))
	for _, room := range s.rooms {
		dates := make(map[string]int64, days)
		for i := 0; i < days; i++ {
			dates[start.AddDays(i).String()] = 0
		}
		occupancy[room] = dates
	}

	end := start.AddDays(days)
	for _, booking := range s.bookings {
		if !slices.Contains(s.rooms, booking.Room) {
			continue
		}
		for date := booking.CheckIn; date.Before(booking.CheckOut); date = date.AddDays(1) {
			if date.Before(start) || !date.Before(end) {
				continue
			}
			occupancy[booking.Room][date.String()] = booking.ID
		}
	}

	return occupancy
}
