package validator

import (
	"testing"
	"time"

	"staycal/pkg/logger"
	"staycal/pkg/model"
)

func newTestValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	return NewBookingValidator([]string{"101", "102", "103", "104", "105"}, log)
}

func validBooking() model.Booking {
	return model.Booking{
		ID:           1,
		CustomerName: "Steve Smith",
		Room:         "101",
		RoomType:     "deluxe",
		CheckIn:      model.NewDate(2025, time.May, 1),
		CheckOut:     model.NewDate(2025, time.May, 3),
	}
}

func TestValidate(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		mutate    func(*model.Booking)
		wantField string
	}{
		{
			name:   "valid booking passes",
			mutate: func(b *model.Booking) {},
		},
		{
			name:      "missing customer name",
			mutate:    func(b *model.Booking) { b.CustomerName = "" },
			wantField: "CustomerName",
		},
		{
			name:      "missing room",
			mutate:    func(b *model.Booking) { b.Room = "" },
			wantField: "Room",
		},
		{
			name:      "room outside configured set",
			mutate:    func(b *model.Booking) { b.Room = "501" },
			wantField: "Room",
		},
		{
			name:      "unsupported room type",
			mutate:    func(b *model.Booking) { b.RoomType = "suite" },
			wantField: "RoomType",
		},
		{
			name:      "missing check_in",
			mutate:    func(b *model.Booking) { b.CheckIn = model.Date{} },
			wantField: "CheckIn",
		},
		{
			name:      "missing check_out",
			mutate:    func(b *model.Booking) { b.CheckOut = model.Date{} },
			wantField: "CheckOut",
		},
		{
			name: "check_out before check_in",
			mutate: func(b *model.Booking) {
				b.CheckIn = model.NewDate(2025, time.May, 5)
				b.CheckOut = model.NewDate(2025, time.May, 1)
			},
			wantField: "CheckOut",
		},
		{
			name: "check_out equal to check_in",
			mutate: func(b *model.Booking) {
				b.CheckOut = b.CheckIn
			},
			wantField: "CheckOut",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := validBooking()
			tt.mutate(&booking)

			err := v.Validate(&booking)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid booking, got: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected validation error on %s, got nil", tt.wantField)
			}
			verrs, ok := err.(ValidationErrors)
			if !ok {
				t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
			}
			if verrs[0].Field != tt.wantField {
				t.Errorf("first failing field = %s, want %s", verrs[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidateDates(t *testing.T) {
	v := newTestValidator()

	in := model.NewDate(2025, time.May, 1)
	out := model.NewDate(2025, time.May, 3)

	if err := v.ValidateDates(in, out); err != nil {
		t.Errorf("valid pair rejected: %v", err)
	}
	if err := v.ValidateDates(out, in); err == nil {
		t.Errorf("inverted pair accepted")
	}
	if err := v.ValidateDates(in, in); err == nil {
		t.Errorf("zero-night pair accepted")
	}
	if err := v.ValidateDates(model.Date{}, out); err == nil {
		t.Errorf("missing check_in accepted")
	}
}
