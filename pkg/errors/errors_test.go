package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("redis connection refused")
	wrapped := Wrap(originalErr, CodePersistence, "failed to save bookings", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if wrapped.Code != CodePersistence {
		t.Errorf("expected code %s, got %s", CodePersistence, wrapped.Code)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "booking not found",
			},
			expected: "NOT_FOUND: booking not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodePersistence,
				Message: "failed to save bookings",
				Err:     errors.New("connection refused"),
			},
			expected: "PERSISTENCE_ERROR: failed to save bookings (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Wrap(originalErr, CodeInternal, "wrapped", http.StatusInternalServerError)

	if errors.Unwrap(appErr) != originalErr {
		t.Errorf("Unwrap() should return original error")
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("Booking", 42)

	if err.Code != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, err.Code)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if err.Message != "Booking not found" {
		t.Errorf("expected message 'Booking not found', got %s", err.Message)
	}
	if err.Details["id"] != int64(42) {
		t.Errorf("expected id 42, got %v", err.Details["id"])
	}
}

func TestValidation(t *testing.T) {
	details := map[string]any{"field": "check_out"}
	err := Validation("check-out must be after check-in", details)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
	if err.Details["field"] != "check_out" {
		t.Errorf("expected field 'check_out', got %v", err.Details["field"])
	}
}

func TestInvalidRoom(t *testing.T) {
	err := InvalidRoom("501")

	if err.Code != CodeInvalidRoom {
		t.Errorf("expected code %s, got %s", CodeInvalidRoom, err.Code)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
	if err.Details["room"] != "501" {
		t.Errorf("expected room '501', got %v", err.Details["room"])
	}
}

func TestRoomUnavailable(t *testing.T) {
	err := RoomUnavailable("101")

	if err.Code != CodeRoomUnavailable {
		t.Errorf("expected code %s, got %s", CodeRoomUnavailable, err.Code)
	}
	if err.HTTPStatus != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, err.HTTPStatus)
	}
	if err.Message != "room 101 is not available for the selected dates" {
		t.Errorf("unexpected message: %s", err.Message)
	}
}

func TestPersistence(t *testing.T) {
	cause := errors.New("write failed")
	err := Persistence("failed to save bookings", cause)

	if err.Code != CodePersistence {
		t.Errorf("expected code %s, got %s", CodePersistence, err.Code)
	}
	if err.Err != cause {
		t.Errorf("expected wrapped cause to be preserved")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NotFound("Booking", 1)
	regularErr := errors.New("regular error")

	if !IsAppError(appErr) {
		t.Errorf("IsAppError() should return true for AppError")
	}
	if IsAppError(regularErr) {
		t.Errorf("IsAppError() should return false for regular error")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Booking", 1)
	regularErr := errors.New("regular error")

	if AsAppError(appErr) != appErr {
		t.Errorf("AsAppError() should return same AppError")
	}

	coerced := AsAppError(regularErr)
	if coerced.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap regular error as internal error")
	}
	if coerced.Err != regularErr {
		t.Errorf("AsAppError() should wrap the original error")
	}
}
