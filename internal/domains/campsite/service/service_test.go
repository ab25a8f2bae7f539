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
	campsiteMocks "campground/internal/domains/campsite/mocks"
	"campground/internal/domains/campsite/model"
	"campground/internal/domains/campsite/model/dto"
	"campground/internal/domains/campsite/service"
	cacheMocks "campground/shared/cache/mocks"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	gModel "campground/shared/model"
	"campground/shared/timezone"
)

type campsiteTestDeps struct {
	repo  *campsiteMocks.MockCampsite
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Campsite
}

func newCampsiteTestDeps(t *testing.T) campsiteTestDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := campsiteMocks.NewMockCampsite(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "campground-test"

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return campsiteTestDeps{
		repo:  mockRepo,
		cache: mockCache,
		s3:    mockS3,
		svc:   service.New(mockRepo, cfg, mockCache, mockOtel, mockS3),
	}
}

func imageHeader() *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "pitch.jpg",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
		Size:     1024,
	}
}

func storedCampsite() model.Campsite {
	return model.Campsite{
		ID:             "campsite-id",
		Name:           "Riverside Pitch",
		BasePriceCents: 2500,
		AvailableSlots: 2,
		MaxOccupants:   6,
		Active:         true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin",
			ModifiedBy: "admin",
		},
	}
}

func TestCampsiteService_Create(t *testing.T) {
	validReq := dto.CreateCampsiteRequest{
		Name:           "Riverside Pitch",
		BasePriceCents: 2500,
		AvailableSlots: 2,
		MaxOccupants:   6,
	}

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	t.Run("successful creation without image", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		deps.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, campsite model.Campsite) error {
				assert.Equal(t, "Riverside Pitch", campsite.Name)
				assert.True(t, campsite.Active)
				assert.Equal(t, "admin-id", campsite.CreatedBy)

				return nil
			})

		err := deps.svc.Create(ctx, validReq)

		assert.NoError(t, err)
	})

	t.Run("successful creation with image", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		req := validReq
		req.Image = imageHeader()

		deps.s3.EXPECT().
			UploadFile(gomock.Any(), "campground-test", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/campsite/pitch.jpg", nil)

		deps.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, campsite model.Campsite) error {
				assert.Equal(t, "https://cdn.example.com/campsite/pitch.jpg", campsite.Image)

				return nil
			})

		err := deps.svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("upload error aborts creation", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		req := validReq
		req.Image = imageHeader()

		deps.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("upload error"))

		err := deps.svc.Create(ctx, req)

		assert.Error(t, err)
	})

	t.Run("insert error removes the uploaded image", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		req := validReq
		req.Image = imageHeader()

		deps.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/campsite/pitch.jpg", nil)

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

func TestCampsiteService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache hit", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := deps.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
	})

	t.Run("cache miss loads from repository", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		deps.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Campsite{storedCampsite()}, nil)

		deps.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		result, err := deps.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalData)
		assert.Len(t, result.Campsites, 1)
	})

	t.Run("count error", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := deps.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestCampsiteService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(deps campsiteTestDeps)
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func(deps campsiteTestDeps) {
				deps.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(deps campsiteTestDeps) {
				deps.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedCampsite(), nil)

				deps.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "campsite-id",
		},
		{
			name: "campsite not found",
			setupMock: func(deps campsiteTestDeps) {
				deps.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Campsite{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func(deps campsiteTestDeps) {
				deps.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Campsite{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newCampsiteTestDeps(t)
			tt.setupMock(deps)

			result, err := deps.svc.Get(context.Background(), "campsite-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestCampsiteService_Update(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	newName := "Updated Pitch"
	req := dto.UpdateCampsiteRequest{Name: newName}

	t.Run("successful update", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedCampsite(), nil)

		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := deps.svc.Update(ctx, req, "campsite-id")

		assert.NoError(t, err)
	})

	t.Run("campsite not found", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Campsite{}, nil)

		err := deps.svc.Update(ctx, req, "nonexistent-id")

		assert.Error(t, err)
	})

	t.Run("replacing the image deletes the old object", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		existing := storedCampsite()
		existing.Image = "https://cdn.example.com/campsite/old.jpg"

		withImage := req
		withImage.Image = imageHeader()

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		deps.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/campsite/new.jpg", nil)

		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		deps.s3.EXPECT().
			GetObjectNameFromURL("campground-test", existing.Image).
			Return("old.jpg")

		deps.s3.EXPECT().
			DeleteFile(gomock.Any(), "campground-test", model.EntityName, "old.jpg").
			Return(nil)

		err := deps.svc.Update(ctx, withImage, "campsite-id")

		assert.NoError(t, err)
	})

	t.Run("update error", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedCampsite(), nil)

		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("update error"))

		err := deps.svc.Update(ctx, req, "campsite-id")

		assert.Error(t, err)
	})
}

func TestCampsiteService_Delete(t *testing.T) {
	t.Run("successful deletion removes the stored image", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		existing := storedCampsite()
		existing.Image = "https://cdn.example.com/campsite/pitch.jpg"

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		deps.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		deps.s3.EXPECT().
			GetObjectNameFromURL("campground-test", existing.Image).
			Return("pitch.jpg")

		deps.s3.EXPECT().
			DeleteFile(gomock.Any(), "campground-test", model.EntityName, "pitch.jpg").
			Return(nil)

		err := deps.svc.Delete(context.Background(), "campsite-id")

		assert.NoError(t, err)
	})

	t.Run("campsite not found", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Campsite{}, nil)

		err := deps.svc.Delete(context.Background(), "nonexistent-id")

		assert.Error(t, err)
	})

	t.Run("delete error", func(t *testing.T) {
		deps := newCampsiteTestDeps(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedCampsite(), nil)

		deps.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(errors.New("delete error"))

		err := deps.svc.Delete(context.Background(), "campsite-id")

		assert.Error(t, err)
	})
}
