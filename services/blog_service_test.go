package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/maatiworld/maati-world-backend/database"
	"github.com/maatiworld/maati-world-backend/media"
	"github.com/maatiworld/maati-world-backend/models"
)

// fakeMediaStore records calls and optionally fails deletes.
type fakeMediaStore struct {
	deleted   []string
	deleteErr error
}

func (f *fakeMediaStore) Upload(ctx context.Context, fileName string, content []byte, folder string) (*media.Descriptor, error) {
	return &media.Descriptor{
		FileID: "file-id",
		URL:    fmt.Sprintf("https://media.example.com%s/%s", folder, fileName),
		Name:   fileName,
	}, nil
}

func (f *fakeMediaStore) Delete(ctx context.Context, fileID string) error {
	f.deleted = append(f.deleted, fileID)
	return f.deleteErr
}

func newTestService(t *testing.T) (*BlogService, *database.BlogRepo, *fakeMediaStore) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Blog{}))

	repo := database.NewBlogRepo(db)
	store := &fakeMediaStore{}
	return NewBlogService(repo, store), repo, store
}

func TestCreateAssignsDistinctSlugs(t *testing.T) {
	service, _, _ := newTestService(t)

	var slugs []string
	for i := 0; i < 3; i++ {
		blog, err := service.Create(&models.Blog{Title: "My Great Post"})
		require.NoError(t, err)
		slugs = append(slugs, blog.Slug)
	}

	assert.Equal(t, []string{"my-great-post", "my-great-post-1", "my-great-post-2"}, slugs)
}

func TestCreateRequiresTitle(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.Create(&models.Blog{})
	require.Error(t, err)
}

func TestCreateFallsBackWhenTitleHasNoSlugChars(t *testing.T) {
	service, _, _ := newTestService(t)

	blog, err := service.Create(&models.Blog{Title: "!!!"})
	require.NoError(t, err)
	assert.Equal(t, "post", blog.Slug)
}

func TestUpdateRederivesSlugOnTitleChange(t *testing.T) {
	service, _, _ := newTestService(t)

	blog, err := service.Create(&models.Blog{Title: "Original Title"})
	require.NoError(t, err)

	updated, err := service.Update(blog.ID, map[string]any{"title": "Brand New Title"})
	require.NoError(t, err)
	assert.Equal(t, "brand-new-title", updated.Slug)

	// An unchanged title keeps the slug stable
	same, err := service.Update(blog.ID, map[string]any{
		"title":   "Brand New Title",
		"excerpt": "changed",
	})
	require.NoError(t, err)
	assert.Equal(t, "brand-new-title", same.Slug)
}

func TestDeleteRemovesRowEvenWhenImageCleanupFails(t *testing.T) {
	service, repo, store := newTestService(t)
	store.deleteErr = errors.New("media store unavailable")

	cover := "https://media.example.com/Blogger/cover-abc123"
	blog, err := service.Create(&models.Blog{Title: "Doomed Post", CoverImage: &cover})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), blog.ID))

	_, err = repo.FindByID(blog.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, []string{"cover-abc123"}, store.deleted)
}

func TestDeleteSkipsMediaCallWithoutCoverImage(t *testing.T) {
	service, repo, store := newTestService(t)

	blog, err := service.Create(&models.Blog{Title: "Plain Post"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), blog.ID))

	_, err = repo.FindByID(blog.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, store.deleted)
}

func TestUploadCoverUsesBlogFolder(t *testing.T) {
	service, _, _ := newTestService(t)

	descriptor, err := service.UploadCover(context.Background(), "cover.png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/Blogger/cover.png", descriptor.URL)

	_, err = service.UploadCover(context.Background(), "", []byte("png-bytes"))
	require.Error(t, err)

	_, err = service.UploadCover(context.Background(), "cover.png", nil)
	require.Error(t, err)
}
