package api

import (
	"github.com/maatiworld/maati-world-backend/database"
	"github.com/maatiworld/maati-world-backend/media"
	"github.com/maatiworld/maati-world-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, mediaStore media.Store, cfg map[string]string) *routeHandlers {
	blogService := services.NewBlogService(db.BlogRepo(), mediaStore)

	return &routeHandlers{
		authHandler:     newAuthHandler(cfg),
		blogHandler:     newBlogHandler(db.BlogRepo(), blogService),
		socialHandler:   newSocialHandler(db.LikeRepo(), db.CommentRepo()),
		feedbackHandler: newFeedbackHandler(db.FeedbackRepo()),
		mediaHandler:    newMediaHandler(cfg),
	}
}
