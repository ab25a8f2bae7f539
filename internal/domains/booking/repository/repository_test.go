package repository_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campground/internal/domains/booking/repository"
	"campground/shared/constant"
)

func TestNightOccupancyFilter(t *testing.T) {
	night := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	filter := repository.NightOccupancyFilter("campsite-id", night)

	clause, args := filter.GetWhereClause()

	// The stay holds the night when it starts on or before it and ends after it.
	assert.Contains(t, clause, "bookings.campsite_id = :campsite_id")
	assert.Contains(t, clause, "bookings.check_in <= :check_in")
	assert.Contains(t, clause, "bookings.check_out > :check_out")
	assert.Contains(t, clause, "bookings.status IN (:status_0, :status_1)")
	assert.Equal(t, strings.Count(clause, "AND"), 3)

	assert.Equal(t, "campsite-id", args["campsite_id"])
	assert.Equal(t, "2025-07-10", args["check_in"])
	assert.Equal(t, "2025-07-10", args["check_out"])
	assert.Equal(t, constant.BookingStatusPending, args["status_0"])
	assert.Equal(t, constant.BookingStatusConfirmed, args["status_1"])
}

func TestNightOccupancyFilter_ExcludesCancelled(t *testing.T) {
	filter := repository.NightOccupancyFilter("campsite-id", time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))

	_, args := filter.GetWhereClause()

	for _, status := range args {
		assert.NotEqual(t, constant.BookingStatusCancelled, status)
	}
}
