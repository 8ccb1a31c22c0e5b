package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maatiworld/maati-world-backend/models"
)

type FeedbackRepo struct {
	db *gorm.DB
}

func NewFeedbackRepo(db *gorm.DB) *FeedbackRepo {
	return &FeedbackRepo{db}
}

// Add inserts a feedback submission into the database.
func (r *FeedbackRepo) Add(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// FindAll returns every feedback submission, newest first, for admin review.
func (r *FeedbackRepo) FindAll() ([]*models.Feedback, error) {
	var feedback []*models.Feedback
	err := r.db.Order("created_at DESC").Find(&feedback).Error
	return feedback, err
}

// Delete removes a feedback submission by id.
func (r *FeedbackRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Feedback{}, "id = ?", id).Error
}
