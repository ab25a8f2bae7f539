package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campground/config"
	"campground/infras/otel/mocks"
	s3Mocks "campground/infras/s3/mocks"
	postMocks "campground/internal/domains/post/mocks"
	"campground/internal/domains/post/model"
	"campground/internal/domains/post/model/dto"
	"campground/internal/domains/post/service"
	cacheMocks "campground/shared/cache/mocks"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	gModel "campground/shared/model"
	"campground/shared/timezone"
)

type postTestDeps struct {
	repo  *postMocks.MockPost
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Post
}

func newPostTestDeps(t *testing.T) postTestDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := postMocks.NewMockPost(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "campground-test"

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return postTestDeps{
		repo:  mockRepo,
		cache: mockCache,
		s3:    mockS3,
		svc:   service.New(mockRepo, cfg, mockCache, mockOtel, mockS3),
	}
}

func storedPost() model.Post {
	return model.Post{
		ID:        "post-id",
		Title:     "Five Hikes Near the River",
		Slug:      "five-hikes-near-the-river",
		Content:   "Lace up your boots.",
		Tags:      []string{"hiking", "summer"},
		Published: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin",
			ModifiedBy: "admin",
		},
	}
}

func coverHeader() *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "cover.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
		Size:     2048,
	}
}

func TestPostService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	validReq := dto.CreatePostRequest{
		Title:   "Five Hikes Near the River",
		Content: "Lace up your boots.",
		Tags:    []string{"hiking"},
	}

	t.Run("successful creation derives the slug from the title", func(t *testing.T) {
		deps := newPostTestDeps(t)

		deps.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		deps.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, post model.Post) error {
				assert.Equal(t, "five-hikes-near-the-river", post.Slug)
				assert.Equal(t, "admin-id", post.CreatedBy)

				return nil
			})

		err := deps.svc.Create(ctx, validReq)

		assert.NoError(t, err)
	})

	t.Run("explicit slug wins over the title", func(t *testing.T) {
		deps := newPostTestDeps(t)

		req := validReq
		req.Slug = "river-hikes"

		deps.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		deps.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, post model.Post) error {
				assert.Equal(t, "river-hikes", post.Slug)

				return nil
			})

		err := deps.svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("duplicate slug is rejected", func(t *testing.T) {
		deps := newPostTestDeps(t)

		deps.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := deps.svc.Create(ctx, validReq)

		assert.Error(t, err)
	})

	t.Run("cover upload error aborts creation", func(t *testing.T) {
		deps := newPostTestDeps(t)

		req := validReq
		req.CoverImage = coverHeader()

		deps.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		deps.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("upload error"))

		err := deps.svc.Create(ctx, req)

		assert.Error(t, err)
	})

	t.Run("insert error removes the uploaded cover", func(t *testing.T) {
		deps := newPostTestDeps(t)

		req := validReq
		req.CoverImage = coverHeader()

		deps.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		deps.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/post/cover.png", nil)

		deps.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("insert error"))

		deps.s3.EXPECT().
			DeleteFile(gomock.Any(), "campground-test", model.EntityName, gomock.Any()).
			Return(nil)

		err := deps.svc.Create(ctx, req)

		assert.Error(t, err)
	})
}

func TestPostService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache hit", func(t *testing.T) {
		deps := newPostTestDeps(t)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := deps.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
	})

	t.Run("cache miss loads from repository", func(t *testing.T) {
		deps := newPostTestDeps(t)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		deps.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Post{storedPost()}, nil)

		deps.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		result, err := deps.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalData)
		assert.Len(t, result.Posts, 1)
		assert.Equal(t, "five-hikes-near-the-river", result.Posts[0].Slug)
	})
}

func TestPostService_GetBySlug(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(deps postTestDeps)
		wantErr   bool
		wantSlug  string
	}{
		{
			name: "cache hit",
			setupMock: func(deps postTestDeps) {
				deps.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(deps postTestDeps) {
				deps.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedPost(), nil)

				deps.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantSlug: "five-hikes-near-the-river",
		},
		{
			name: "post not found",
			setupMock: func(deps postTestDeps) {
				deps.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Post{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newPostTestDeps(t)
			tt.setupMock(deps)

			result, err := deps.svc.GetBySlug(context.Background(), "five-hikes-near-the-river")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantSlug != "" {
					assert.Equal(t, tt.wantSlug, result.Slug)
				}
			}
		})
	}
}

func TestPostService_Update(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	t.Run("successful update", func(t *testing.T) {
		deps := newPostTestDeps(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedPost(), nil)

		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := deps.svc.Update(ctx, dto.UpdatePostRequest{Title: "Updated Title"}, "post-id")

		assert.NoError(t, err)
	})

	t.Run("post not found", func(t *testing.T) {
		deps := newPostTestDeps(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Post{}, nil)

		err := deps.svc.Update(ctx, dto.UpdatePostRequest{Title: "Updated Title"}, "nonexistent-id")

		assert.Error(t, err)
	})

	t.Run("changing to a taken slug is rejected", func(t *testing.T) {
		deps := newPostTestDeps(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedPost(), nil)

		deps.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := deps.svc.Update(ctx, dto.UpdatePostRequest{Slug: "taken-slug"}, "post-id")

		assert.Error(t, err)
	})

	t.Run("publishing stamps the publication time", func(t *testing.T) {
		deps := newPostTestDeps(t)

		draft := storedPost()
		draft.Published = false

		published := true

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(draft, nil)

		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldPublishedAt)

				return nil
			})

		err := deps.svc.Update(ctx, dto.UpdatePostRequest{Published: &published}, "post-id")

		assert.NoError(t, err)
	})
}

func TestPostService_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		deps := newPostTestDeps(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedPost(), nil)

		deps.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := deps.svc.Delete(context.Background(), "post-id")

		assert.NoError(t, err)
	})

	t.Run("post not found", func(t *testing.T) {
		deps := newPostTestDeps(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Post{}, nil)

		err := deps.svc.Delete(context.Background(), "nonexistent-id")

		assert.Error(t, err)
	})

	t.Run("delete error", func(t *testing.T) {
		deps := newPostTestDeps(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedPost(), nil)

		deps.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(errors.New("delete error"))

		err := deps.svc.Delete(context.Background(), "post-id")

		assert.Error(t, err)
	})
}
