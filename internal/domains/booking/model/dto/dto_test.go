package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campground/internal/domains/booking/model"
	"campground/internal/domains/booking/model/dto"
	"campground/shared/constant"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		CampsiteID: "campsite-id",
		CheckIn:    "2025-07-10",
		CheckOut:   "2025-07-13",
		Occupants:  4,
		Vehicles:   1,
		Notes:      "arriving late",
	}

	booking, err := req.ToModel("user-id", 7500)

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "campsite-id", booking.CampsiteID)
	assert.Equal(t, constant.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 4, booking.Occupants)
	assert.Equal(t, int64(7500), booking.TotalPriceCents)
	assert.Equal(t, "user-id", booking.CreatedBy)
	assert.Equal(t, "2025-07-10", booking.CheckIn.Format(constant.DateOnlyFormat))
	assert.Equal(t, "2025-07-13", booking.CheckOut.Format(constant.DateOnlyFormat))
}

func TestCreateBookingRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		CampsiteID: "campsite-id",
		CheckIn:    "July 10th",
		CheckOut:   "2025-07-13",
		Occupants:  2,
	}

	_, err := req.ToModel("user-id", 0)

	assert.Error(t, err)
}

func TestCreateBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:              "booking-id",
		CampsiteID:      "campsite-id",
		CheckIn:         time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
		Status:          constant.BookingStatusConfirmed,
		TotalPriceCents: 7500,
	}

	var res dto.CreateBookingResponse
	res.FromModel(booking)

	assert.Equal(t, "booking-id", res.ID)
	assert.Equal(t, "2025-07-10", res.CheckIn)
	assert.Equal(t, "2025-07-13", res.CheckOut)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, int64(7500), res.TotalPriceCents)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "booking-1", CheckIn: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC), CheckOut: time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)},
		{ID: "booking-2", CheckIn: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), CheckOut: time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC)},
	}

	var res dto.GetBookingsResponse
	res.FromModels(models, 12, 10)

	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, "booking-1", res.Bookings[0].ID)
}
