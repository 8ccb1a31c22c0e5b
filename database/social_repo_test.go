package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maatiworld/maati-world-backend/models"
)

func TestLikeCountRoundTrip(t *testing.T) {
	repo := NewLikeRepo(newTestDB(t))
	blogID := uuid.New()
	userID := uuid.New()

	count, err := repo.Count(blogID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	liked, err := repo.HasUserLiked(blogID, &userID)
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = repo.Add(blogID, &userID)
	require.NoError(t, err)

	count, err = repo.Count(blogID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	liked, err = repo.HasUserLiked(blogID, &userID)
	require.NoError(t, err)
	assert.True(t, liked)

	require.NoError(t, repo.Remove(blogID, &userID))

	count, err = repo.Count(blogID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	liked, err = repo.HasUserLiked(blogID, &userID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestAnonymousLikesMatchOnlyAnonymousRows(t *testing.T) {
	repo := NewLikeRepo(newTestDB(t))
	blogID := uuid.New()
	userID := uuid.New()

	_, err := repo.Add(blogID, nil)
	require.NoError(t, err)
	_, err = repo.Add(blogID, &userID)
	require.NoError(t, err)

	liked, err := repo.HasUserLiked(blogID, nil)
	require.NoError(t, err)
	assert.True(t, liked)

	// Removing the anonymous like leaves the named viewer's like intact
	require.NoError(t, repo.Remove(blogID, nil))

	liked, err = repo.HasUserLiked(blogID, nil)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err := repo.Count(blogID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCommentsAscendingByCreation(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepo(db)
	blogID := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Insert out of order to prove the ordering comes from the query
	for _, c := range []models.Comment{
		{BlogID: blogID, Content: "second", CreatedAt: base.Add(time.Minute)},
		{BlogID: blogID, Content: "third", CreatedAt: base.Add(2 * time.Minute)},
		{BlogID: blogID, Content: "first", CreatedAt: base},
	} {
		comment := c
		require.NoError(t, db.Create(&comment).Error)
	}

	comments, err := repo.FindByBlog(blogID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
	assert.Equal(t, "third", comments[2].Content)
}

func TestCommentAddAndDelete(t *testing.T) {
	repo := NewCommentRepo(newTestDB(t))
	blogID := uuid.New()

	comment, err := repo.Add(blogID, "nice post", nil)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, comment.ID)

	require.NoError(t, repo.Delete(comment.ID))

	comments, err := repo.FindByBlog(blogID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestFeedbackNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewFeedbackRepo(db)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	older := models.Feedback{Name: "Ana", Email: "ana@example.com", Message: "older", CreatedAt: base}
	newer := models.Feedback{Name: "Ben", Email: "ben@example.com", Message: "newer", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	feedback, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, feedback, 2)
	assert.Equal(t, "newer", feedback[0].Message)
	assert.Equal(t, "older", feedback[1].Message)

	require.NoError(t, repo.Delete(newer.ID))
	feedback, err = repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, feedback, 1)
}
