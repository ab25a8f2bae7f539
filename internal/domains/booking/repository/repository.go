package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campground/infras/otel"
	"campground/infras/postgres"
	"campground/internal/domains/booking/model"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	"campground/shared/failure"
	"campground/shared/logger"
	gRepo "campground/shared/repository"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertWithCapacityCheck(ctx context.Context, booking model.Booking, capacity int) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// NightOccupancyFilter matches every booking that occupies the campsite on the
// given night: the stay starts on or before the night and ends after it, and
// only pending or confirmed bookings hold a slot.
func NightOccupancyFilter(campsiteID string, night time.Time) gDto.FilterGroup {
	day := night.Format(constant.DateOnlyFormat)

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCampsiteID,
				Operator: gDto.FilterOperatorEq,
				Value:    campsiteID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{constant.BookingStatusPending, constant.BookingStatusConfirmed},
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLessEq,
				Value:    day,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreater,
				Value:    day,
				Table:    model.TableName,
			},
		},
	}
}

// InsertWithCapacityCheck writes the booking inside a single SERIALIZABLE
// transaction that re-counts occupancy for every night of the stay before the
// insert, so the availability decision and the write cannot be interleaved by
// a concurrent booking. The database trigger on bookings is the final
// backstop; its raise maps to the same conflict reason here.
func (repo *repositoryImpl) InsertWithCapacityCheck(ctx context.Context, booking model.Booking, capacity int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertWithCapacityCheck")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.BeginSerializable(ctx)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back booking transaction")
			}
		}
	}()

	for night := booking.CheckIn; night.Before(booking.CheckOut); night = night.AddDate(0, 0, 1) {
		count, countErr := repo.CountTx(ctx, tx, NightOccupancyFilter(booking.CampsiteID, night))
		if countErr != nil {
			err = fmt.Errorf("failed to count occupancy: %w", countErr)

			return err
		}

		if count >= capacity {
			err = failure.ConflictWithReason(
				"campsite is fully booked for the requested dates",
				constant.BookingReasonNoCapacity,
				[]string{night.Format(constant.DateOnlyFormat)},
			)

			return err
		}
	}

	if insertErr := repo.InsertTx(ctx, tx, booking); insertErr != nil {
		err = classifyBookingError(insertErr)

		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		err = classifyBookingError(commitErr)

		return err
	}

	return nil
}

// classifyBookingError maps Postgres error codes onto typed conflict reasons.
// Error identity comes from pq error codes, never from message text.
func classifyBookingError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation, constant.PqErrorCodeExclusionViolation:
			return failure.ConflictWithReason("booking overlaps an existing reservation", constant.BookingReasonOverlap, nil)
		case constant.PqErrorCodeRaiseException:
			return failure.ConflictWithReason("campsite is fully booked for the requested dates", constant.BookingReasonNoCapacity, nil)
		case constant.PqErrorCodeSerializationFail:
			return failure.ConflictWithReason("booking could not be completed, please retry", constant.BookingReasonFailed, nil)
		}
	}

	return fmt.Errorf("failed to insert booking: %w", err)
}
