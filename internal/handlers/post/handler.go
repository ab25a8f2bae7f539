package post

import (
	"net/http"
	"strings"

	"campground/infras/otel"
	"campground/internal/domains/post/model"
	"campground/internal/domains/post/model/dto"
	"campground/internal/domains/post/service"
	"campground/shared"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	"campground/shared/validator"
	"campground/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Post
	otel    otel.Otel
}

func New(service service.Post, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/posts", func(r chi.Router) {
		r.Post("/", handler.CreatePost)
		r.Get("/", handler.GetPosts)
		r.Get("/slug/{slug}", handler.GetPostBySlug)
		r.Get("/{id}", handler.GetPostByID)
		r.Patch("/{id}", handler.UpdatePost)
		r.Delete("/{id}", handler.DeletePost)
	})
}

// parseTags splits a comma-separated form value into trimmed tag names.
func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))

	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

// CreatePost handles the creation of a new post.
// @Summary Create a new post
// @Description Create a new post with the provided details.
// @Tags Post
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Post title"
// @Param slug formData string false "Post slug, generated from the title when omitted"
// @Param excerpt formData string false "Post excerpt"
// @Param content formData string true "Post content"
// @Param tags formData string false "Comma-separated tags"
// @Param published formData boolean false "Publish immediately"
// @Param cover_image formData file false "Post cover image"
// @Success 201 {object} response.Message "Post created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts [post]
// @Security BearerAuth
func (handler *Handler) CreatePost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePost")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreatePostRequest{
		Title:   request.FormValue("title"),
		Slug:    request.FormValue("slug"),
		Excerpt: request.FormValue("excerpt"),
		Content: request.FormValue("content"),
		Tags:    parseTags(request.FormValue("tags")),
	}

	if publishedStr := request.FormValue("published"); publishedStr != "" {
		req.Published = shared.ConvertStringToBool(publishedStr)
	}

	file, fileHeader, err := request.FormFile("cover_image")
	if err == nil {
		req.CoverImage = fileHeader
		req.CoverFile = file

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
		log.Error().Err(err).Msg("failed to create post")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Post created successfully")
}

// GetPosts retrieves all posts based on query parameters.
// @Summary Get all posts
// @Description Retrieve all posts with optional filtering and pagination.
// @Tags Post
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param tag query string false "Filter by tag"
// @Param published query boolean false "Filter by published status"
// @Success 200 {object} response.Data[dto.GetPostsResponse] "List of posts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts [get]
func (handler *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPosts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	title := r.URL.Query().Get(model.FieldTitle)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    title,
				Table:    model.TableName,
			},
		},
	}

	if tag := r.URL.Query().Get("tag"); tag != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "tag",
			Field:    ":tag = ANY(" + model.TableName + "." + model.FieldTags + ")",
			Operator: gDto.FilterPlainQuery,
			Value:    tag,
		})
	}

	if published := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldPublished)); published != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPublished,
			Operator: gDto.FilterOperatorEq,
			Value:    *published,
			Table:    model.TableName,
		})
	}

	posts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get posts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Posts retrieved successfully")

	response.WithJSON(w, http.StatusOK, posts)
}

// GetPostBySlug retrieves a post by its slug.
// @Summary Get a post by slug
// @Description Retrieve a post by its URL slug.
// @Tags Post
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Data[dto.PostResponse] "Post details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/slug/{slug} [get]
func (handler *Handler) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostBySlug")
	defer scope.End()

	slug := chi.URLParam(r, "slug")

	post, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get post by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post retrieved successfully")

	response.WithJSON(w, http.StatusOK, post)
}

// GetPostByID retrieves a post by its ID.
// @Summary Get a post by ID
// @Description Retrieve a post by its unique identifier.
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Data[dto.PostResponse] "Post details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/{id} [get]
func (handler *Handler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	post, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get post by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post retrieved successfully")

	response.WithJSON(w, http.StatusOK, post)
}

// UpdatePost updates an existing post by its ID.
// @Summary Update a post by ID
// @Description Update the details of an existing post.
// @Tags Post
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Post ID"
// @Param title formData string false "Post title"
// @Param slug formData string false "Post slug"
// @Param excerpt formData string false "Post excerpt"
// @Param content formData string false "Post content"
// @Param tags formData string false "Comma-separated tags"
// @Param published formData boolean false "Published status"
// @Param cover_image formData file false "Post cover image"
// @Success 200 {object} response.Message "Post updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdatePostRequest{
		Title:   r.FormValue("title"),
		Slug:    r.FormValue("slug"),
		Excerpt: r.FormValue("excerpt"),
		Content: r.FormValue("content"),
		Tags:    parseTags(r.FormValue("tags")),
	}

	if publishedStr := r.FormValue("published"); publishedStr != "" {
		req.Published = shared.ConvertStringToBool(publishedStr)
	}

	file, fileHeader, err := r.FormFile("cover_image")
	if err == nil {
		req.CoverImage = fileHeader
		req.CoverFile = file

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
		log.Error().Err(err).Msg("failed to update post")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Post updated successfully")
}

// DeletePost deletes a post by its ID.
// @Summary Delete a post by ID
// @Description Delete a post using its unique identifier.
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Message "Post deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete post")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Post deleted successfully")
}
