package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"staycal/pkg/config"
	"staycal/pkg/logger"
	"staycal/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// BookingValidator checks booking candidates against the configured room
// set. Rules beyond struct tags: the room must be one of the configured
// rooms, the room type must be the single supported value, and the
// check-out date must be strictly after check-in.
type BookingValidator struct {
	validate *validator.Validate
	rooms    []string
	logger   *logger.Logger
}

func NewBookingValidator(rooms []string, log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		rooms:    rooms,
		logger:   log,
	}
}

func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if booking.CheckIn.IsZero() {
		return ValidationErrors{
			ValidationError{Field: "CheckIn", Message: "check_in is required"},
		}
	}
	if booking.CheckOut.IsZero() {
		return ValidationErrors{
			ValidationError{Field: "CheckOut", Message: "check_out is required"},
		}
	}
	if !booking.CheckOut.After(booking.CheckIn) {
		return ValidationErrors{
			ValidationError{Field: "CheckOut", Message: "check_out must be after check_in"},
		}
	}

	if !slices.Contains(v.rooms, booking.Room) {
		return ValidationErrors{
			ValidationError{Field: "Room", Message: fmt.Sprintf("room %s is not a configured room", booking.Room)},
		}
	}

	if booking.RoomType != config.RoomType {
		return ValidationErrors{
			ValidationError{Field: "RoomType", Message: fmt.Sprintf("only %s room type is supported", config.RoomType)},
		}
	}

	return nil
}

// ValidateDates checks a date pair on its own, for reschedule requests that
// never touch the rest of the booking.
func (v *BookingValidator) ValidateDates(checkIn, checkOut model.Date) error {
	if checkIn.IsZero() {
		return ValidationErrors{
			ValidationError{Field: "CheckIn", Message: "check_in is required"},
		}
	}
	if checkOut.IsZero() {
		return ValidationErrors{
			ValidationError{Field: "CheckOut", Message: "check_out is required"},
		}
	}
	if !checkOut.After(checkIn) {
		return ValidationErrors{
			ValidationError{Field: "CheckOut", Message: "check_out must be after check_in"},
		}
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
