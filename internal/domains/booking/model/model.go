package model

import (
	"time"

	"campground/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldCampsiteID      = "campsite_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldStatus          = "status"
	FieldOccupants       = "occupants"
	FieldVehicles        = "vehicles"
	FieldTotalPriceCents = "total_price_cents"
	FieldNotes           = "notes"
	FieldCreatedBy       = "created_by"
)

type Booking struct {
	ID              string    `db:"id"`
	CampsiteID      string    `db:"campsite_id"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	Status          string    `db:"status"`
	Occupants       int       `db:"occupants"`
	Vehicles        int       `db:"vehicles"`
	TotalPriceCents int64     `db:"total_price_cents"`
	Notes           string    `db:"notes"`
	model.Metadata
}
