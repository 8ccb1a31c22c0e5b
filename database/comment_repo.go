package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maatiworld/maati-world-backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByBlog returns the comments for a blog in ascending creation order,
// oldest first.
func (r *CommentRepo) FindByBlog(blogID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.
		Where("blog_id = ?", blogID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// Add inserts a comment and returns the stored row.
func (r *CommentRepo) Add(blogID uuid.UUID, content string, userID *uuid.UUID) (*models.Comment, error) {
	comment := models.Comment{BlogID: blogID, Content: content, UserID: userID}
	if err := r.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment by id.
func (r *CommentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}
