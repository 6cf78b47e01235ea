package model

// Booking reserves one room for a customer over the half-open date range
// [check_in, check_out). A booking whose room is empty, or no longer part of
// the configured room set, is unallocated and exempt from overlap checks
// until it gets a room again.
type Booking struct {
	ID                int64   `json:"id" bson:"id"`
	CustomerName      string  `json:"customer_name" bson:"customer_name" validate:"required"`
	Room              string  `json:"room" bson:"room" validate:"required"`
	RoomType          string  `json:"room_type" bson:"room_type"`
	CheckIn           Date    `json:"check_in" bson:"check_in"`
	CheckOut          Date    `json:"check_out" bson:"check_out"`
	TransactionID     string  `json:"transaction_id" bson:"transaction_id"`
	TransactionStatus string  `json:"transaction_status" bson:"transaction_status"`
	BaseAmount        float64 `json:"base_amount" bson:"base_amount"`
	TaxAmount         float64 `json:"tax_amount" bson:"tax_amount"`
	TotalAmount       float64 `json:"total_amount" bson:"total_amount"`
}

// BookingUpdate is a partial patch: nil fields keep the stored value.
type BookingUpdate struct {
	CustomerName      *string  `json:"customer_name,omitempty"`
	Room              *string  `json:"room,omitempty"`
	RoomType          *string  `json:"room_type,omitempty"`
	CheckIn           *Date    `json:"check_in,omitempty"`
	CheckOut          *Date    `json:"check_out,omitempty"`
	TransactionID     *string  `json:"transaction_id,omitempty"`
	TransactionStatus *string  `json:"transaction_status,omitempty"`
	BaseAmount        *float64 `json:"base_amount,omitempty"`
	TaxAmount         *float64 `json:"tax_amount,omitempty"`
	TotalAmount       *float64 `json:"total_amount,omitempty"`
}

// BookingSummary is the trimmed shape the legacy calendar endpoint returns.
type BookingSummary struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
	Room         string `json:"room"`
	CheckIn      Date   `json:"check_in"`
	CheckOut     Date   `json:"check_out"`
}

// Apply merges the patch over a copy of the booking and returns the candidate.
// The booking identity never changes through a patch.
func (u *BookingUpdate) Apply(b Booking) Booking {
	if u.CustomerName != nil {
		b.CustomerName = *u.CustomerName
	}
	if u.Room != nil {
		b.Room = *u.Room
	}
	if u.RoomType != nil {
		b.RoomType = *u.RoomType
	}
	if u.CheckIn != nil {
		b.CheckIn = *u.CheckIn
	}
	if u.CheckOut != nil {
		b.CheckOut = *u.CheckOut
	}
	if u.TransactionID != nil {
		b.TransactionID = *u.TransactionID
	}
	if u.TransactionStatus != nil {
		b.TransactionStatus = *u.TransactionStatus
	}
	if u.BaseAmount != nil {
		b.BaseAmount = *u.BaseAmount
	}
	if u.TaxAmount != nil {
		b.TaxAmount = *u.TaxAmount
	}
	if u.TotalAmount != nil {
		b.TotalAmount = *u.TotalAmount
	}
	return b
}

func (b *Booking) Summary() BookingSummary {
	return BookingSummary{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Room:         b.Room,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
	}
}
