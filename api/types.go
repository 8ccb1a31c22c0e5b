package api

import (
	"github.com/google/uuid"

	"github.com/maatiworld/maati-world-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler     authHandler
	blogHandler     blogHandler
	socialHandler   socialHandler
	feedbackHandler feedbackHandler
	mediaHandler    mediaHandler
}

// BlogCollection wraps a list of blogs with its total for list endpoints.
type BlogCollection struct {
	Blogs []*models.Blog `json:"blogs"`
	Total int            `json:"total"`
}

// CreateBlogRequest is the payload for creating a post. The slug is
// derived server-side from the title and never accepted from the client.
type CreateBlogRequest struct {
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage *string  `json:"coverImage"`
	Author     *string  `json:"author"`
	Published  bool     `json:"published"`
	Tags       []string `json:"tags"`
}

// UpdateBlogRequest carries partial updates; nil fields are untouched.
type UpdateBlogRequest struct {
	Title      *string   `json:"title"`
	Excerpt    *string   `json:"excerpt"`
	Content    *string   `json:"content"`
	CoverImage *string   `json:"coverImage"`
	Author     *string   `json:"author"`
	Published  *bool     `json:"published"`
	Tags       *[]string `json:"tags"`
}

// LikeRequest identifies the viewer acting on a like. A nil UserID is the
// anonymous viewer.
type LikeRequest struct {
	UserID *uuid.UUID `json:"userId"`
}

// LikeStatus is the joined result of the likes count and the viewer's own
// like state for a post.
type LikeStatus struct {
	Count int64 `json:"count"`
	Liked bool  `json:"liked"`
}

// CreateCommentRequest is the payload for submitting a comment.
type CreateCommentRequest struct {
	Content string     `json:"content"`
	UserID  *uuid.UUID `json:"userId"`
}

// CreateFeedbackRequest is the contact-form payload.
type CreateFeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// LoginRequest is the admin sign-in payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the minted admin bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}
