package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a viewer-authored remark on a post. Comments are never
// edited, only created and deleted.
type Comment struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	BlogID    uuid.UUID  `json:"blogId" gorm:"type:uuid;not null;index:idx_comments_blog_id"`
	UserID    *uuid.UUID `json:"userId,omitempty" gorm:"type:uuid"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"createdAt"`

	Blog Blog `json:"-" gorm:"foreignKey:BlogID;references:ID;constraint:OnDelete:CASCADE"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
