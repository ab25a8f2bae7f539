package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campground/internal/domains/post/model"
	"campground/internal/domains/post/model/dto"
	"campground/shared/constant"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "simple title",
			title:    "Five Hikes Near the River",
			expected: "five-hikes-near-the-river",
		},
		{
			name:     "punctuation collapses into dashes",
			title:    "Campfire Cooking: Tips & Tricks!",
			expected: "campfire-cooking-tips-tricks",
		},
		{
			name:     "leading and trailing separators are trimmed",
			title:    "  Welcome to the Campground  ",
			expected: "welcome-to-the-campground",
		},
		{
			name:     "numbers survive",
			title:    "Top 10 Campsites of 2025",
			expected: "top-10-campsites-of-2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dto.Slugify(tt.title))
		})
	}
}

func TestCreatePostRequest_ToModel(t *testing.T) {
	t.Run("derives slug and defaults to draft", func(t *testing.T) {
		req := dto.CreatePostRequest{
			Title:   "Five Hikes Near the River",
			Content: "Lace up your boots.",
			Tags:    []string{"hiking", "summer"},
		}

		post := req.ToModel("author-id", "")

		assert.NotEmpty(t, post.ID)
		assert.Equal(t, "five-hikes-near-the-river", post.Slug)
		assert.False(t, post.Published)
		assert.Nil(t, post.PublishedAt)
		assert.Equal(t, []string{"hiking", "summer"}, []string(post.Tags))
		assert.Equal(t, "author-id", post.CreatedBy)
	})

	t.Run("published posts get a publication time", func(t *testing.T) {
		published := true
		req := dto.CreatePostRequest{
			Title:     "Opening Weekend",
			Content:   "Gates open at nine.",
			Published: &published,
		}

		post := req.ToModel("author-id", "https://cdn.example.com/post/cover.png")

		assert.True(t, post.Published)
		assert.NotNil(t, post.PublishedAt)
		assert.Equal(t, "https://cdn.example.com/post/cover.png", post.CoverImage)
	})
}

func TestPostResponse_FromModel(t *testing.T) {
	post := model.Post{
		ID:        "post-id",
		Title:     "Five Hikes Near the River",
		Slug:      "five-hikes-near-the-river",
		Content:   "Lace up your boots.",
		Tags:      []string{"hiking"},
		Published: false,
	}

	var res dto.PostResponse
	res.FromModel(post)

	assert.Equal(t, post.ID, res.ID)
	assert.Equal(t, post.Slug, res.Slug)
	assert.Equal(t, []string{"hiking"}, res.Tags)
	assert.Equal(t, constant.Empty, res.PublishedAt)
}
