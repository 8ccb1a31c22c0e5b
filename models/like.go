package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like marks a single (blog, viewer) affinity. A nil UserID is the
// anonymous viewer.
type Like struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	BlogID    uuid.UUID  `json:"blogId" gorm:"type:uuid;not null;index:idx_likes_blog_id"`
	UserID    *uuid.UUID `json:"userId,omitempty" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"createdAt"`

	Blog Blog `json:"-" gorm:"foreignKey:BlogID;references:ID;constraint:OnDelete:CASCADE"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
