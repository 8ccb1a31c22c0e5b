package database

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maatiworld/maati-world-backend/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindPublished returns all published blogs, newest first.
func (r *BlogRepo) FindPublished() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&blogs).Error
	return blogs, err
}

// FindAll returns every blog regardless of published state, newest first.
// Admin use only.
func (r *BlogRepo) FindAll() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

// FindBySlug returns the published blog matching slug. An unpublished
// match is invisible here and reported the same as no match at all.
func (r *BlogRepo) FindBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.
		Where("slug = ?", slug).
		Where("published = ?", true).
		First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindByID returns a blog by its ID in any published state.
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Slugs returns every slug currently in use, excluding the blog with
// excludeID when it is non-nil. Used for client-side slug derivation.
func (r *BlogRepo) Slugs(excludeID uuid.UUID) (map[string]struct{}, error) {
	q := r.db.Model(&models.Blog{})
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}

	var slugs []string
	if err := q.Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		taken[s] = struct{}{}
	}
	return taken, nil
}

// Add inserts a new blog into the database.
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// Update applies the named column updates to the blog with the given id
// and returns the refreshed row.
func (r *BlogRepo) Update(id uuid.UUID, updates map[string]any) (*models.Blog, error) {
	if err := r.db.Model(&models.Blog{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes a blog row by id.
func (r *BlogRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Blog{}, "id = ?", id).Error
}

// Search returns published blogs whose title or excerpt contains query,
// case-insensitively, newest first.
func (r *BlogRepo) Search(query string) ([]*models.Blog, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var blogs []*models.Blog
	err := r.db.
		Where("published = ?", true).
		Where("(lower(title) LIKE ? OR lower(excerpt) LIKE ?)", pattern, pattern).
		Order("created_at DESC").
		Find(&blogs).Error
	return blogs, err
}
