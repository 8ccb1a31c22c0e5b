package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultAuthor is shown for posts saved without an author name.
const DefaultAuthor = "Aurora Team"

// Blog represents a published or draft article.
type Blog struct {
	ID         uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Title      string                      `json:"title" gorm:"type:text;not null"`
	Slug       string                      `json:"slug" gorm:"type:text;not null;uniqueIndex:idx_blogs_slug"`
	Excerpt    string                      `json:"excerpt" gorm:"type:text"`
	Content    string                      `json:"content" gorm:"type:text"`
	CoverImage *string                     `json:"coverImage,omitempty" gorm:"type:text"`
	Author     *string                     `json:"author,omitempty" gorm:"type:text"`
	Published  bool                        `json:"published" gorm:"not null;default:false"`
	Tags       datatypes.JSONSlice[string] `json:"tags,omitempty"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

// BeforeCreate assigns an ID so inserts work the same with or without a
// database-side uuid default.
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// AuthorName returns the author, falling back to DefaultAuthor when absent.
func (b *Blog) AuthorName() string {
	if b.Author == nil || *b.Author == "" {
		return DefaultAuthor
	}
	return *b.Author
}
