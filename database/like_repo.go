package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maatiworld/maati-world-backend/models"
)

type LikeRepo struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db}
}

// byViewer scopes a query to one (blog, viewer) pair. SQL equality never
// matches NULL, so the anonymous viewer needs an explicit IS NULL branch.
func (r *LikeRepo) byViewer(blogID uuid.UUID, userID *uuid.UUID) *gorm.DB {
	q := r.db.Where("blog_id = ?", blogID)
	if userID == nil {
		return q.Where("user_id IS NULL")
	}
	return q.Where("user_id = ?", *userID)
}

// Add inserts a like row. No uniqueness pre-check happens here; callers
// are expected to consult HasUserLiked first.
func (r *LikeRepo) Add(blogID uuid.UUID, userID *uuid.UUID) (*models.Like, error) {
	like := models.Like{BlogID: blogID, UserID: userID}
	if err := r.db.Create(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

// Remove deletes the like rows matching the (blog, viewer) pair.
func (r *LikeRepo) Remove(blogID uuid.UUID, userID *uuid.UUID) error {
	return r.byViewer(blogID, userID).Delete(&models.Like{}).Error
}

// Count returns the number of likes for a blog.
func (r *LikeRepo) Count(blogID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("blog_id = ?", blogID).Count(&count).Error
	return count, err
}

// HasUserLiked reports whether the viewer already has a like row for the
// blog. A missing row is false; any other failure propagates.
func (r *LikeRepo) HasUserLiked(blogID uuid.UUID, userID *uuid.UUID) (bool, error) {
	var like models.Like
	err := r.byViewer(blogID, userID).Select("id").First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
