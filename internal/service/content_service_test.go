package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

func TestCreateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("classifies and rolls up readiness in one pass", func(t *testing.T) {
		env := newTestEnv(leadershipAward())

		response, err := env.content.CreateContent(ctx, &models.CreateContentRequest{
			Kind:           "document",
			Title:          "Annual plan",
			AnalyzableText: "Our leadership team shares a clear vision.",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, response.Item.ID)
		assert.NotEmpty(t, response.Item.TextHash)
		require.Len(t, response.Assignments, 1)
		assert.Equal(t, "leadership", response.Assignments[0].AwardKey)

		status, err := env.readinessRepo.GetByAwardKey(ctx, "leadership")
		require.NoError(t, err)
		require.NotNil(t, status)
		assert.Equal(t, 1, status.TotalItems)
		assert.True(t, status.IsReady)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		env := newTestEnv(leadershipAward())
		_, err := env.content.CreateContent(ctx, &models.CreateContentRequest{
			Kind:  "meeting",
			Title: "Weekly sync",
		})
		assert.ErrorIs(t, err, ErrInvalidKind)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		env := newTestEnv(leadershipAward())
		_, err := env.content.CreateContent(ctx, &models.CreateContentRequest{
			Kind:  "document",
			Title: "   ",
		})
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("fetches text from the extraction service when absent", func(t *testing.T) {
		env := newTestEnv(leadershipAward())
		env.extraction.texts["file-1"] = "leadership vision statement"

		fileID := "file-1"
		response, err := env.content.CreateContent(ctx, &models.CreateContentRequest{
			Kind:         "document",
			Title:        "Uploaded plan",
			SourceFileID: &fileID,
		})
		require.NoError(t, err)

		assert.Equal(t, "leadership vision statement", response.Item.AnalyzableText)
		require.Len(t, response.Assignments, 1)
	})

	t.Run("extraction failure surfaces as a gateway error", func(t *testing.T) {
		env := newTestEnv(leadershipAward())
		env.extraction.err = errors.New("boom")

		fileID := "file-1"
		_, err := env.content.CreateContent(ctx, &models.CreateContentRequest{
			Kind:         "document",
			Title:        "Uploaded plan",
			SourceFileID: &fileID,
		})
		assert.ErrorIs(t, err, ErrExtractionFailed)
	})
}

func TestUpdateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("unchanged text skips reclassification", func(t *testing.T) {
		env := newTestEnv(leadershipAward())

		created, err := env.content.CreateContent(ctx, &models.CreateContentRequest{
			Kind:           "document",
			Title:          "Annual plan",
			AnalyzableText: "our leadership team shares a clear vision",
		})
		require.NoError(t, err)
		originalCreatedAt := created.Assignments[0].CreatedAt

		category := "governance"
		updated, err := env.content.UpdateContent(ctx, created.Item.ID, &models.UpdateContentRequest{
			Category: &category,
		})
		require.NoError(t, err)

		assert.Equal(t, "governance", updated.Item.Category)
		require.Len(t, updated.Assignments, 1)
		// Assignment rows were not rewritten.
		assert.Equal(t, originalCreatedAt, updated.Assignments[0].CreatedAt)
	})

	t.Run("changed text reclassifies", func(t *testing.T) {
		env := newTestEnv(leadershipAward(), serviceAward())

		created, err := env.content.CreateContent(ctx, &models.CreateContentRequest{
			Kind:           "document",
			Title:          "Plan",
			AnalyzableText: "our leadership team shares a clear vision",
		})
		require.NoError(t, err)

		text := "volunteer service hours documented for the local food bank"
		updated, err := env.content.UpdateContent(ctx, created.Item.ID, &models.UpdateContentRequest{
			AnalyzableText: &text,
		})
		require.NoError(t, err)

		require.Len(t, updated.Assignments, 1)
		assert.Equal(t, "community-service", updated.Assignments[0].AwardKey)

		// The award the item left was rolled up again.
		status, err := env.readinessRepo.GetByAwardKey(ctx, "leadership")
		require.NoError(t, err)
		require.NotNil(t, status)
		assert.Equal(t, 0, status.TotalItems)
	})

	t.Run("unknown id", func(t *testing.T) {
		env := newTestEnv(leadershipAward())
		title := "New title"
		_, err := env.content.UpdateContent(ctx, uuid.New().String(), &models.UpdateContentRequest{Title: &title})
		assert.ErrorIs(t, err, ErrContentNotFound)
	})
}

func TestDeleteContent(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the item and refreshes readiness", func(t *testing.T) {
		env := newTestEnv(leadershipAward())

		created, err := env.content.CreateContent(ctx, &models.CreateContentRequest{
			Kind:           "document",
			Title:          "Annual plan",
			AnalyzableText: "our leadership team shares a clear vision",
		})
		require.NoError(t, err)

		require.NoError(t, env.content.DeleteContent(ctx, created.Item.ID))

		item, err := env.contentRepo.GetByID(ctx, created.Item.ID)
		require.NoError(t, err)
		assert.Nil(t, item)

		status, err := env.readinessRepo.GetByAwardKey(ctx, "leadership")
		require.NoError(t, err)
		require.NotNil(t, status)
		assert.Equal(t, 0, status.TotalItems)
		assert.False(t, status.IsReady)
	})

	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv(leadershipAward())
		assert.ErrorIs(t, env.content.DeleteContent(ctx, "nope"), ErrInvalidContentID)
	})
}

func TestListContent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(leadershipAward())

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := env.content.CreateContent(ctx, &models.CreateContentRequest{
			Kind:  "document",
			Title: title,
		})
		require.NoError(t, err)
	}
	_, err := env.content.CreateContent(ctx, &models.CreateContentRequest{
		Kind:  "event",
		Title: "Games night",
	})
	require.NoError(t, err)

	t.Run("filters by kind", func(t *testing.T) {
		response, err := env.content.ListContent(ctx, "event", 1, 20)
		require.NoError(t, err)
		assert.Equal(t, 1, response.Total)
		require.Len(t, response.Items, 1)
		assert.Equal(t, "Games night", response.Items[0].Title)
	})

	t.Run("paginates", func(t *testing.T) {
		response, err := env.content.ListContent(ctx, "document", 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, response.Total)
		require.Len(t, response.Items, 1)
		assert.Equal(t, "Third", response.Items[0].Title)
	})

	t.Run("rejects unknown kind filter", func(t *testing.T) {
		_, err := env.content.ListContent(ctx, "meeting", 1, 20)
		assert.ErrorIs(t, err, ErrInvalidKind)
	})

	t.Run("clamps page and limit", func(t *testing.T) {
		response, err := env.content.ListContent(ctx, "", -3, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, response.Page)
		assert.Equal(t, 20, response.Limit)
	})
}
