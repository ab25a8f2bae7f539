package service

import (
	"context"
	"fmt"
	"time"

	"campground/config"
	"campground/infras/kafka"
	"campground/infras/otel"
	"campground/internal/domains/booking/model"
	"campground/internal/domains/booking/model/dto"
	"campground/internal/domains/booking/repository"
	campsiteModel "campground/internal/domains/campsite/model"
	campsiteRepo "campground/internal/domains/campsite/repository"
	"campground/shared"
	"campground/shared/cache"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	"campground/shared/failure"
	"campground/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	CheckAvailability(ctx context.Context, campsiteID string, checkIn, checkOut time.Time, capacity int) (bool, []string, error)
	Availability(ctx context.Context, campsiteID, checkIn, checkOut string) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	campsiteRepo campsiteRepo.Campsite
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
}

func New(repo repository.Booking, campsiteRepo campsiteRepo.Campsite, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafkaClient kafka.Client) Booking {
	return &serviceImpl{
		repo:         repo,
		campsiteRepo: campsiteRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafkaClient,
	}
}

type bookingEvent struct {
	BookingID       string `json:"booking_id"`
	CampsiteID      string `json:"campsite_id"`
	UserID          string `json:"user_id"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Status          string `json:"status"`
	TotalPriceCents int64  `json:"total_price_cents"`
	OccurredAt      string `json:"occurred_at"`
}

func newBookingEvent(booking model.Booking) bookingEvent {
	return bookingEvent{
		BookingID:       booking.ID,
		CampsiteID:      booking.CampsiteID,
		UserID:          booking.CreatedBy,
		CheckIn:         booking.CheckIn.Format(constant.DateOnlyFormat),
		CheckOut:        booking.CheckOut.Format(constant.DateOnlyFormat),
		Status:          booking.Status,
		TotalPriceCents: booking.TotalPriceCents,
		OccurredAt:      timezone.Format(timezone.Now(), constant.DateFormat),
	}
}

// CheckAvailability walks every night of [checkIn, checkOut) and counts the
// bookings occupying the campsite on that night. A night is sold out when the
// count reaches capacity. The whole range is always scanned so the caller gets
// the complete set of sold-out nights, and any query error aborts the check
// rather than pass for availability.
func (s *serviceImpl) CheckAvailability(ctx context.Context, campsiteID string, checkIn, checkOut time.Time, capacity int) (ok bool, soldOutDates []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	soldOutDates = []string{}

	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		count, err := s.repo.Count(ctx, repository.NightOccupancyFilter(campsiteID, night))
		if err != nil {
			log.Error().Err(err).Str("campsite_id", campsiteID).Msg("failed to count occupancy")

			return false, nil, fmt.Errorf("failed to count occupancy: %w", err)
		}

		if count >= capacity {
			soldOutDates = append(soldOutDates, night.Format(constant.DateOnlyFormat))
		}
	}

	return len(soldOutDates) == 0, soldOutDates, nil
}

func (s *serviceImpl) Availability(ctx context.Context, campsiteID, checkIn, checkOut string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkInDate, checkOutDate, err := s.parseStayDates(checkIn, checkOut)
	if err != nil {
		return res, err
	}

	campsite, err := s.loadActiveCampsite(ctx, campsiteID)
	if err != nil {
		return res, err
	}

	ok, soldOutDates, err := s.CheckAvailability(ctx, campsiteID, checkInDate, checkOutDate, campsite.AvailableSlots)
	if err != nil {
		return res, err
	}

	return dto.AvailabilityResponse{
		CampsiteID:   campsiteID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Available:    ok,
		SoldOutDates: soldOutDates,
	}, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	checkIn, checkOut, err := s.parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	campsite, err := s.loadActiveCampsite(ctx, req.CampsiteID)
	if err != nil {
		return res, err
	}

	if req.Occupants > campsite.MaxOccupants {
		return res, failure.BadRequestFromString(fmt.Sprintf("campsite allows at most %d occupants", campsite.MaxOccupants)) // nolint:wrapcheck
	}

	ok, soldOutDates, err := s.CheckAvailability(ctx, req.CampsiteID, checkIn, checkOut, campsite.AvailableSlots)
	if err != nil {
		return res, err
	}

	if !ok {
		return res, failure.ConflictWithReason( // nolint:wrapcheck
			"campsite is fully booked for the requested dates",
			constant.BookingReasonNoCapacity,
			soldOutDates,
		)
	}

	nights := shared.NightsBetween(checkIn, checkOut)
	totalPriceCents := campsite.BasePriceCents * int64(nights)

	booking, err := req.ToModel(user, totalPriceCents)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.InsertWithCapacityCheck(ctx, booking, campsite.AvailableSlots); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishBookingEvent(c, constant.KafkaTopicBookingConfirmed, booking)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	// Deferred closure so the final err value is the one traced
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Cancel flips the booking to cancelled, freeing its nights immediately since
// occupancy only counts pending and confirmed rows. Owners may cancel their
// own bookings, admins anyone's.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.CreatedBy != user && role != constant.RoleAdmin {
		return failure.ResourceRestrictedError
	}

	if booking.Status == constant.BookingStatusCancelled {
		return failure.BadRequestFromString("booking is already cancelled") // nolint:wrapcheck
	}

	statusUpdate := dto.UpdateBookingRequest{Status: constant.BookingStatusCancelled}

	updatedFields := shared.TransformFields(statusUpdate, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = constant.BookingStatusCancelled

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishBookingEvent(c, constant.KafkaTopicBookingCancelled, booking)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	// Deferred closure so the final err value is the one traced
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) parseStayDates(checkIn, checkOut string) (checkInDate, checkOutDate time.Time, err error) {
	checkInDate, err = timezone.Parse(constant.DateOnlyFormat, checkIn)
	if err != nil {
		return checkInDate, checkOutDate, failure.BadRequestFromString("check_in must be a valid YYYY-MM-DD date") // nolint:wrapcheck
	}

	checkOutDate, err = timezone.Parse(constant.DateOnlyFormat, checkOut)
	if err != nil {
		return checkInDate, checkOutDate, failure.BadRequestFromString("check_out must be a valid YYYY-MM-DD date") // nolint:wrapcheck
	}

	if !checkInDate.Before(checkOutDate) {
		return checkInDate, checkOutDate, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	if maxNights := s.cfg.Booking.MaxStayNights; maxNights > 0 && shared.NightsBetween(checkInDate, checkOutDate) > maxNights {
		return checkInDate, checkOutDate, failure.BadRequestFromString(fmt.Sprintf("stay cannot exceed %d nights", maxNights)) // nolint:wrapcheck
	}

	return checkInDate, checkOutDate, nil
}

func (s *serviceImpl) loadActiveCampsite(ctx context.Context, campsiteID string) (campsiteModel.Campsite, error) {
	campsite, err := s.campsiteRepo.Get(ctx, shared.FilterByID(campsiteID, campsiteModel.FieldID, campsiteModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get campsite")

		return campsite, fmt.Errorf("failed to get campsite: %w", err)
	}

	if campsite.ID == constant.Empty {
		return campsite, failure.NotFound("campsite not found") // nolint:wrapcheck
	}

	if !campsite.Active {
		return campsite, failure.BadRequestFromString("campsite is not available for booking") // nolint:wrapcheck
	}

	return campsite, nil
}

func (s *serviceImpl) publishBookingEvent(ctx context.Context, topic string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key:   booking.ID,
		Value: newBookingEvent(booking),
	}

	if err := s.kafka.SendMessages(ctx, topic, message); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("booking_id", booking.ID).Msg("failed to publish booking event")
	}
}
