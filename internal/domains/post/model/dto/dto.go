package dto

import (
	"mime/multipart"
	"regexp"
	"strings"
	"time"

	"campground/internal/domains/post/model"
	"campground/shared"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	gModel "campground/shared/model"
	"campground/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowers the title and collapses everything outside [a-z0-9] into
// single hyphens.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")

	return strings.Trim(slug, "-")
}

type CreatePostRequest struct {
	Title      string                `json:"title"      validate:"required,max=200"`
	Slug       string                `json:"slug"       validate:"omitempty,max=200"`
	Excerpt    string                `json:"excerpt"    validate:"omitempty,max=500"`
	Content    string                `json:"content"    validate:"required"`
	Tags       []string              `json:"tags"       validate:"omitempty,dive,max=50"`
	Published  *bool                 `json:"published"  validate:"omitempty"`
	CoverImage *multipart.FileHeader `json:"cover_image" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	CoverFile  multipart.File        `json:"-"`
}

func (c *CreatePostRequest) ToModel(user string, coverImageURL string) model.Post {
	slug := c.Slug
	if slug == constant.Empty {
		slug = Slugify(c.Title)
	}

	published := false
	if c.Published != nil {
		published = *c.Published
	}

	var publishedAt *time.Time
	if published {
		now := timezone.Now()
		publishedAt = &now
	}

	return model.Post{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Slug:        slug,
		Excerpt:     c.Excerpt,
		Content:     c.Content,
		CoverImage:  coverImageURL,
		Tags:        pq.StringArray(c.Tags),
		Published:   published,
		PublishedAt: publishedAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePostRequest struct {
	Title      string                `db:"title"     json:"title"     validate:"omitempty,max=200"`
	Slug       string                `db:"slug"      json:"slug"      validate:"omitempty,max=200"`
	Excerpt    string                `db:"excerpt"   json:"excerpt"   validate:"omitempty,max=500"`
	Content    string                `db:"content"   json:"content"   validate:"omitempty"`
	Tags       []string              `json:"tags"      validate:"omitempty,dive,max=50"`
	Published  *bool                 `db:"published" json:"published" validate:"omitempty"`
	CoverImage *multipart.FileHeader `json:"cover_image" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	CoverFile  multipart.File        `json:"-"`
}

type PostResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	CoverImage  string   `json:"cover_image"`
	Tags        []string `json:"tags"`
	Published   bool     `json:"published"`
	PublishedAt string   `json:"published_at,omitempty"`
	gDto.Metadata
}

func (r *PostResponse) FromModel(model model.Post) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Excerpt = model.Excerpt
	r.Content = model.Content
	r.CoverImage = model.CoverImage
	r.Tags = model.Tags
	r.Published = model.Published

	if model.PublishedAt != nil {
		r.PublishedAt = timezone.Format(*model.PublishedAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetPostsResponse struct {
	Posts     []PostResponse `json:"posts"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetPostsResponse) FromModels(models []model.Post, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Posts = make([]PostResponse, len(models))
	for i, mod := range models {
		r.Posts[i].FromModel(mod)
	}
}
