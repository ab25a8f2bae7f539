package service

import (
	"context"
	"fmt"
	"strings"

	"campground/config"
	"campground/infras/otel"
	"campground/infras/s3"
	"campground/internal/domains/post/model"
	"campground/internal/domains/post/model/dto"
	"campground/internal/domains/post/repository"
	"campground/shared"
	"campground/shared/cache"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	"campground/shared/failure"
	"campground/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPost    = "post:get"
	cacheGetAllPost = "post:gets"
	cacheCountPost  = "post:count"
	cacheSlugPost   = "post:slug"
)

type Post interface {
	Create(ctx context.Context, req dto.CreatePostRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPostsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PostResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.PostResponse, error)
	Update(ctx context.Context, req dto.UpdatePostRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Post
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Post, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Post {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func slugFilter(slug string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSlug,
				Operator: gDto.FilterOperatorEq,
				Value:    slug,
				Table:    model.TableName,
			},
		},
	}
}

func coverFilename(originalName string) string {
	filename := uuid.NewString()

	parts := strings.Split(originalName, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	return filename
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePostRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	slug := req.Slug
	if slug == constant.Empty {
		slug = dto.Slugify(req.Title)
	}

	exists, err := s.repo.Exist(ctx, slugFilter(slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to check slug uniqueness")

		return fmt.Errorf("failed to check slug uniqueness: %w", err)
	}

	if exists {
		return failure.Conflict("a post with this slug already exists") // nolint:wrapcheck
	}

	coverImageURL := constant.Empty
	var uploadedObjectName string
	if req.CoverImage != nil {
		bucketName := s.cfg.External.S3.BucketName
		filename := coverFilename(req.CoverImage.Filename)

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.CoverFile, req.CoverImage, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload cover image to S3")

			return fmt.Errorf("failed to upload cover image: %w", err)
		}
		coverImageURL = url
		uploadedObjectName = filename
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, coverImageURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, uploadedObjectName)
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPost)
		shared.InvalidateCaches(c, s.cache, cacheCountPost)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPostsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPost, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for posts")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count posts")

		return res, fmt.Errorf("failed to count posts: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get posts")

		return res, fmt.Errorf("failed to get posts: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save posts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPost, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for post count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count posts")

		return total, fmt.Errorf("failed to count posts: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save post count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPost, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for post")

		return res, nil
	}

	post, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get post")

		return res, fmt.Errorf("failed to get post: %w", err)
	}

	if post.ID == constant.Empty {
		return res, failure.NotFound("post not found") // nolint:wrapcheck
	}

	res.FromModel(post)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save post to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheSlugPost, slug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for post slug")

		return res, nil
	}

	post, err := s.repo.Get(ctx, slugFilter(slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to get post by slug")

		return res, fmt.Errorf("failed to get post by slug: %w", err)
	}

	if post.ID == constant.Empty {
		return res, failure.NotFound("post not found") // nolint:wrapcheck
	}

	res.FromModel(post)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save post to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePostRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	currentPost, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check post existence")

		return err
	}

	if currentPost.ID == constant.Empty {
		log.Error().Msg("post not found")

		return failure.NotFound("post not found")
	}

	if req.Slug != constant.Empty && req.Slug != currentPost.Slug {
		exists, err := s.repo.Exist(ctx, slugFilter(req.Slug))
		if err != nil {
			log.Error().Err(err).Msg("failed to check slug uniqueness")

			return fmt.Errorf("failed to check slug uniqueness: %w", err)
		}

		if exists {
			return failure.Conflict("a post with this slug already exists") // nolint:wrapcheck
		}
	}

	return s.updateInternal(ctx, req, currentPost, user, filter)
}

func (s *serviceImpl) updateInternal(ctx context.Context, req dto.UpdatePostRequest, currentPost model.Post, user string, filter gDto.FilterGroup) error {
	coverImageURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.CoverImage != nil {
		filename := coverFilename(req.CoverImage.Filename)

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.CoverFile, req.CoverImage, filename)
		if err != nil {
			return fmt.Errorf("failed to upload cover image: %w", err)
		}
		coverImageURL = url
		uploadedObjectName = filename
	}

	updatedFields := shared.TransformFields(req, user)
	if coverImageURL != constant.Empty {
		updatedFields[model.FieldCoverImage] = coverImageURL
	}

	if req.Tags != nil {
		updatedFields[model.FieldTags] = pq.StringArray(req.Tags)
	}

	// Flipping published on stamps the publication time once.
	if req.Published != nil && *req.Published && !currentPost.Published {
		updatedFields[model.FieldPublishedAt] = timezone.Now()
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update post")

		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update post: %w", err)
	}

	if coverImageURL != constant.Empty && currentPost.CoverImage != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, currentPost.CoverImage)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPost, currentPost.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete post cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheSlugPost, currentPost.Slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete post slug cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPost)
		shared.InvalidateCaches(c, s.cache, cacheCountPost)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	post, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get post for deletion")

		return fmt.Errorf("failed to get post: %w", err)
	}

	if post.ID == constant.Empty {
		log.Error().Msg("post not found")

		return failure.NotFound("post not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete post")

		return fmt.Errorf("failed to delete post: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPost, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete post cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheSlugPost, post.Slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete post slug cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPost)
		shared.InvalidateCaches(c, s.cache, cacheCountPost)

		if post.CoverImage != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName

			objectName := s.s3.GetObjectNameFromURL(bucketName, post.CoverImage)
			if objectName != constant.Empty {
				if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
					log.Error().Err(err).Msg("failed to delete cover image from S3")
				}
			}
		}
	}()

	return nil
}
