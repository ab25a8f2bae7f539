package dto

import (
	"mime/multipart"

	"campground/internal/domains/campsite/model"
	"campground/shared"
	gDto "campground/shared/dto"
	gModel "campground/shared/model"
	"campground/shared/timezone"

	"github.com/google/uuid"
)

type CreateCampsiteRequest struct {
	Name           string                `json:"name"             validate:"required,max=100"`
	Description    string                `json:"description"      validate:"omitempty,max=2000"`
	BasePriceCents int64                 `json:"base_price_cents" validate:"required,min=0"`
	AvailableSlots int                   `json:"available_slots"  validate:"required,min=1"`
	MaxOccupants   int                   `json:"max_occupants"    validate:"required,min=1"`
	HasPower       *bool                 `json:"has_power"        validate:"omitempty"`
	HasWater       *bool                 `json:"has_water"        validate:"omitempty"`
	Image          *multipart.FileHeader `json:"image"            validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile      multipart.File        `json:"-"`
	Active         *bool                 `json:"active"           validate:"omitempty"`
}

func (c *CreateCampsiteRequest) ToModel(user string, imageURL string) model.Campsite {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	hasPower := false
	if c.HasPower != nil {
		hasPower = *c.HasPower
	}

	hasWater := false
	if c.HasWater != nil {
		hasWater = *c.HasWater
	}

	return model.Campsite{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Description:    c.Description,
		BasePriceCents: c.BasePriceCents,
		AvailableSlots: c.AvailableSlots,
		MaxOccupants:   c.MaxOccupants,
		HasPower:       hasPower,
		HasWater:       hasWater,
		Image:          imageURL,
		Active:         active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCampsiteRequest struct {
	Name           string                `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Description    string                `db:"description"      json:"description"      validate:"omitempty,max=2000"`
	BasePriceCents *int64                `db:"base_price_cents" json:"base_price_cents" validate:"omitempty,min=0"`
	AvailableSlots *int                  `db:"available_slots"  json:"available_slots"  validate:"omitempty,min=1"`
	MaxOccupants   *int                  `db:"max_occupants"    json:"max_occupants"    validate:"omitempty,min=1"`
	HasPower       *bool                 `db:"has_power"        json:"has_power"        validate:"omitempty"`
	HasWater       *bool                 `db:"has_water"        json:"has_water"        validate:"omitempty"`
	Image          *multipart.FileHeader `json:"image"          validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile      multipart.File        `json:"-"`
	Active         *bool                 `db:"active"           json:"active"           validate:"omitempty"`
}

type CampsiteResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	BasePriceCents int64  `json:"base_price_cents"`
	AvailableSlots int    `json:"available_slots"`
	MaxOccupants   int    `json:"max_occupants"`
	HasPower       bool   `json:"has_power"`
	HasWater       bool   `json:"has_water"`
	Image          string `json:"image"`
	Active         bool   `json:"active"`
	gDto.Metadata
}

func (r *CampsiteResponse) FromModel(model model.Campsite) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.BasePriceCents = model.BasePriceCents
	r.AvailableSlots = model.AvailableSlots
	r.MaxOccupants = model.MaxOccupants
	r.HasPower = model.HasPower
	r.HasWater = model.HasWater
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCampsitesResponse struct {
	Campsites []CampsiteResponse `json:"campsites"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCampsitesResponse) FromModels(models []model.Campsite, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Campsites = make([]CampsiteResponse, len(models))
	for i, mod := range models {
		r.Campsites[i].FromModel(mod)
	}
}
