package model

import "campground/shared/model"

const (
	TableName  = "campsites"
	EntityName = "campsite"

	FieldID             = "id"
	FieldName           = "name"
	FieldDescription    = "description"
	FieldBasePriceCents = "base_price_cents"
	FieldAvailableSlots = "available_slots"
	FieldMaxOccupants   = "max_occupants"
	FieldHasPower       = "has_power"
	FieldHasWater       = "has_water"
	FieldImage          = "image"
	FieldActive         = "active"
)

type Campsite struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	Description    string `db:"description"`
	BasePriceCents int64  `db:"base_price_cents"`
	AvailableSlots int    `db:"available_slots"`
	MaxOccupants   int    `db:"max_occupants"`
	HasPower       bool   `db:"has_power"`
	HasWater       bool   `db:"has_water"`
	Image          string `db:"image"`
	Active         bool   `db:"active"`
	model.Metadata
}
