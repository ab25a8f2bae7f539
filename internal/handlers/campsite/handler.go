package campsite

import (
	"net/http"

	"campground/infras/otel"
	bookingService "campground/internal/domains/booking/service"
	"campground/internal/domains/campsite/model"
	"campground/internal/domains/campsite/model/dto"
	"campground/internal/domains/campsite/service"
	"campground/shared"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	"campground/shared/validator"
	"campground/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Campsite
	bookingService bookingService.Booking
	otel           otel.Otel
}

func New(service service.Campsite, bookingService bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		bookingService: bookingService,
		otel:           otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/campsites", func(r chi.Router) {
		r.Post("/", handler.CreateCampsite)
		r.Get("/", handler.GetCampsites)
		r.Get("/{id}", handler.GetCampsiteByID)
		r.Get("/{id}/availability", handler.GetAvailability)
		r.Patch("/{id}", handler.UpdateCampsite)
		r.Delete("/{id}", handler.DeleteCampsite)
	})
}

// CreateCampsite handles the creation of a new campsite.
// @Summary Create a new campsite
// @Description Create a new campsite with the provided details.
// @Tags Campsite
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Campsite name"
// @Param description formData string false "Campsite description"
// @Param base_price_cents formData integer true "Price per night in cents"
// @Param available_slots formData integer true "Number of identical pitches"
// @Param max_occupants formData integer true "Maximum occupants per pitch"
// @Param has_power formData boolean false "Power hookup available"
// @Param has_water formData boolean false "Water hookup available"
// @Param active formData boolean false "Campsite active status"
// @Param image formData file false "Campsite image"
// @Success 201 {object} response.Message "Campsite created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites [post]
// @Security BearerAuth
func (handler *Handler) CreateCampsite(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCampsite")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateCampsiteRequest{
		Name:        request.FormValue("name"),
		Description: request.FormValue("description"),
	}

	if priceStr := request.FormValue("base_price_cents"); priceStr != "" {
		if p, err := shared.ConvertStringToInt(priceStr); err == nil {
			req.BasePriceCents = int64(p)
		}
	}

	if slotsStr := request.FormValue("available_slots"); slotsStr != "" {
		if s, err := shared.ConvertStringToInt(slotsStr); err == nil {
			req.AvailableSlots = s
		}
	}

	if occStr := request.FormValue("max_occupants"); occStr != "" {
		if o, err := shared.ConvertStringToInt(occStr); err == nil {
			req.MaxOccupants = o
		}
	}

	if powerStr := request.FormValue("has_power"); powerStr != "" {
		req.HasPower = shared.ConvertStringToBool(powerStr)
	}

	if waterStr := request.FormValue("has_water"); waterStr != "" {
		req.HasWater = shared.ConvertStringToBool(waterStr)
	}

	if activeStr := request.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create campsite")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Campsite created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Campsite created successfully")
}

// GetCampsites retrieves all campsites based on query parameters.
// @Summary Get all campsites
// @Description Retrieve all campsites with optional filtering and pagination.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param has_power query boolean false "Filter by power hookup"
// @Param has_water query boolean false "Filter by water hookup"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetCampsitesResponse] "List of campsites"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites [get]
func (handler *Handler) GetCampsites(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCampsites")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}

	if hasPower := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldHasPower)); hasPower != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldHasPower,
			Operator: gDto.FilterOperatorEq,
			Value:    *hasPower,
			Table:    model.TableName,
		})
	}

	if hasWater := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldHasWater)); hasWater != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldHasWater,
			Operator: gDto.FilterOperatorEq,
			Value:    *hasWater,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	campsites, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get campsites")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Campsites retrieved successfully")

	response.WithJSON(w, http.StatusOK, campsites)
}

// GetCampsiteByID retrieves a campsite by its ID.
// @Summary Get a campsite by ID
// @Description Retrieve a campsite by its unique identifier.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param id path string true "Campsite ID"
// @Success 200 {object} response.Data[dto.CampsiteResponse] "Campsite details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites/{id} [get]
func (handler *Handler) GetCampsiteByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCampsiteByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	campsite, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get campsite by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Campsite retrieved successfully")

	response.WithJSON(w, http.StatusOK, campsite)
}

// GetAvailability reports per-night availability for a campsite over a stay range.
// @Summary Check campsite availability
// @Description Check whether a campsite has a free pitch for every night of the requested stay.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param id path string true "Campsite ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	checkIn := r.URL.Query().Get("check_in")
	checkOut := r.URL.Query().Get("check_out")

	availability, err := handler.bookingService.Availability(ctx, id, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check campsite availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Campsite availability checked successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// UpdateCampsite updates an existing campsite by its ID.
// @Summary Update a campsite by ID
// @Description Update the details of an existing campsite.
// @Tags Campsite
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Campsite ID"
// @Param name formData string false "Campsite name"
// @Param description formData string false "Campsite description"
// @Param base_price_cents formData integer false "Price per night in cents"
// @Param available_slots formData integer false "Number of identical pitches"
// @Param max_occupants formData integer false "Maximum occupants per pitch"
// @Param has_power formData boolean false "Power hookup available"
// @Param has_water formData boolean false "Water hookup available"
// @Param active formData boolean false "Campsite active status"
// @Param image formData file false "Campsite image"
// @Success 200 {object} response.Message "Campsite updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCampsite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCampsite")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateCampsiteRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	if priceStr := r.FormValue("base_price_cents"); priceStr != "" {
		if p, err := shared.ConvertStringToInt(priceStr); err == nil {
			price := int64(p)
			req.BasePriceCents = &price
		}
	}

	if slotsStr := r.FormValue("available_slots"); slotsStr != "" {
		if s, err := shared.ConvertStringToInt(slotsStr); err == nil {
			req.AvailableSlots = &s
		}
	}

	if occStr := r.FormValue("max_occupants"); occStr != "" {
		if o, err := shared.ConvertStringToInt(occStr); err == nil {
			req.MaxOccupants = &o
		}
	}

	if powerStr := r.FormValue("has_power"); powerStr != "" {
		req.HasPower = shared.ConvertStringToBool(powerStr)
	}

	if waterStr := r.FormValue("has_water"); waterStr != "" {
		req.HasWater = shared.ConvertStringToBool(waterStr)
	}

	if activeStr := r.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update campsite")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Campsite updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Campsite updated successfully")
}

// DeleteCampsite deletes a campsite by its ID.
// @Summary Delete a campsite by ID
// @Description Delete a campsite using its unique identifier.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param id path string true "Campsite ID"
// @Success 200 {object} response.Message "Campsite deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCampsite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCampsite")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete campsite")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Campsite deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Campsite deleted successfully")
}
