package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/maatiworld/maati-world-backend/database"
	"github.com/maatiworld/maati-world-backend/errs"
	"github.com/maatiworld/maati-world-backend/media"
	"github.com/maatiworld/maati-world-backend/models"
)

// slugRetryLimit bounds the conflict-retry loop on create. Hitting it
// means something other than slug collisions is wrong with the insert.
const slugRetryLimit = 50

// BlogService layers slug assignment and cover-image lifecycle on top of
// the blog repository.
type BlogService struct {
	blogs  *database.BlogRepo
	media  media.Store
	logger zerolog.Logger
}

func NewBlogService(blogs *database.BlogRepo, mediaStore media.Store) *BlogService {
	return &BlogService{
		blogs:  blogs,
		media:  mediaStore,
		logger: log.With().Str("serviceName", "blogService").Logger(),
	}
}

// Create derives a unique slug from the blog's title and inserts the row.
// The slug is picked against a pre-scan of existing slugs; if a concurrent
// writer still wins the same slug, the store's unique index rejects the
// insert and the next suffix is tried.
func (s *BlogService) Create(blog *models.Blog) (*models.Blog, error) {
	if blog.Title == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}

	base := Slugify(blog.Title)
	if base == "" {
		base = "post"
	}

	taken, err := s.blogs.Slugs(uuid.Nil)
	if err != nil {
		return nil, err
	}
	blog.Slug = UniqueSlug(base, taken)

	for attempt := 0; attempt < slugRetryLimit; attempt++ {
		err = s.blogs.Add(blog)
		if err == nil {
			return blog, nil
		}
		if !errs.IsUniqueViolation(err) {
			return nil, err
		}
		blog.ID = uuid.Nil
		blog.Slug = NextSlug(base, blog.Slug)
	}
	return nil, err
}

// Update applies the named field updates. When the title changes, the
// slug is re-derived and uniquified against every other post's slug.
func (s *BlogService) Update(id uuid.UUID, updates map[string]any) (*models.Blog, error) {
	existing, err := s.blogs.FindByID(id)
	if err != nil {
		return nil, err
	}

	if title, ok := updates["title"].(string); ok && title != existing.Title {
		if title == "" {
			return nil, errs.NewMissingRequiredFieldError("title")
		}
		base := Slugify(title)
		if base == "" {
			base = "post"
		}
		taken, err := s.blogs.Slugs(id)
		if err != nil {
			return nil, err
		}
		updates["slug"] = UniqueSlug(base, taken)
	}

	return s.blogs.Update(id, updates)
}

// Delete removes the blog row, then best-effort deletes its cover image
// from the media store. The row deletion is the authoritative action;
// a failed image cleanup is logged and swallowed, leaving an orphaned
// media object as an accepted residual cost.
func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	blog, err := s.blogs.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.blogs.Delete(id); err != nil {
		return err
	}

	if blog.CoverImage != nil && *blog.CoverImage != "" {
		fileID := media.FileIDFromURL(*blog.CoverImage)
		if fileID == "" {
			return nil
		}
		if err := s.media.Delete(ctx, fileID); err != nil {
			s.logger.Warn().
				Err(err).
				Str("blogId", id.String()).
				Str("fileId", fileID).
				Msg("Failed to delete cover image from media store")
		}
	}

	return nil
}

// UploadCover stores a cover image under the blog media folder and
// returns the adapter's descriptor, including the public URL.
func (s *BlogService) UploadCover(ctx context.Context, fileName string, content []byte) (*media.Descriptor, error) {
	if fileName == "" {
		return nil, errs.NewMissingRequiredFieldError("fileName")
	}
	if len(content) == 0 {
		return nil, errs.NewMissingRequiredFieldError("file")
	}
	return s.media.Upload(ctx, fileName, content, media.BlogFolder)
}
