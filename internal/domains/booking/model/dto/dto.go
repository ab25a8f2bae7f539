package dto

import (
	"campground/internal/domains/booking/model"
	"campground/shared"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	gModel "campground/shared/model"
	"campground/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CampsiteID string `json:"campsite_id" validate:"required"`
	CheckIn    string `json:"check_in"    validate:"required,dateonly"`
	CheckOut   string `json:"check_out"   validate:"required,dateonly"`
	Occupants  int    `json:"occupants"   validate:"required,min=1"`
	Vehicles   int    `json:"vehicles"    validate:"omitempty,min=0"`
	Notes      string `json:"notes"       validate:"omitempty,max=1000"`
}

func (c *CreateBookingRequest) ToModel(user string, totalPriceCents int64) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:              uuid.NewString(),
		CampsiteID:      c.CampsiteID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Status:          constant.BookingStatusConfirmed,
		Occupants:       c.Occupants,
		Vehicles:        c.Vehicles,
		TotalPriceCents: totalPriceCents,
		Notes:           c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type CreateBookingResponse struct {
	ID              string `json:"id"`
	CampsiteID      string `json:"campsite_id"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Status          string `json:"status"`
	Nights          int    `json:"nights"`
	TotalPriceCents int64  `json:"total_price_cents"`
}

func (r *CreateBookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CampsiteID = model.CampsiteID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Status = model.Status
	r.Nights = shared.NightsBetween(model.CheckIn, model.CheckOut)
	r.TotalPriceCents = model.TotalPriceCents
}

type UpdateBookingRequest struct {
	Occupants *int   `db:"occupants" json:"occupants" validate:"omitempty,min=1"`
	Vehicles  *int   `db:"vehicles"  json:"vehicles"  validate:"omitempty,min=0"`
	Notes     string `db:"notes"     json:"notes"     validate:"omitempty,max=1000"`
	Status    string `db:"status"    json:"status"    validate:"omitempty,oneof=pending confirmed cancelled"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	CampsiteID      string `json:"campsite_id"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Status          string `json:"status"`
	Occupants       int    `json:"occupants"`
	Vehicles        int    `json:"vehicles"`
	TotalPriceCents int64  `json:"total_price_cents"`
	Notes           string `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CampsiteID = model.CampsiteID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Status = model.Status
	r.Occupants = model.Occupants
	r.Vehicles = model.Vehicles
	r.TotalPriceCents = model.TotalPriceCents
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	CampsiteID   string   `json:"campsite_id"`
	CheckIn      string   `json:"check_in"`
	CheckOut     string   `json:"check_out"`
	Available    bool     `json:"available"`
	SoldOutDates []string `json:"sold_out_dates"`
}
