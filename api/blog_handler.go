package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/maatiworld/maati-world-backend/database"
	"github.com/maatiworld/maati-world-backend/errs"
	"github.com/maatiworld/maati-world-backend/models"
	"github.com/maatiworld/maati-world-backend/services"
)

// maxCoverImageSize caps cover uploads at 10MB.
const maxCoverImageSize = 10 << 20

type blogHandler struct {
	responder   Responder
	logger      zerolog.Logger
	blogRepo    *database.BlogRepo
	blogService *services.BlogService
}

func newBlogHandler(blogRepo *database.BlogRepo, blogService *services.BlogService) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		blogRepo:    blogRepo,
		blogService: blogService,
	}
}

// listPublished returns every published blog, newest first.
func (h blogHandler) listPublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogRepo.FindPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find published blogs", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, BlogCollection{Blogs: blogs, Total: len(blogs)})
	}
}

// listAll returns all blogs including drafts. Admin use only.
func (h blogHandler) listAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blogs", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, BlogCollection{Blogs: blogs, Total: len(blogs)})
	}
}

// search returns published blogs whose title or excerpt matches q.
func (h blogHandler) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("q"))
			return
		}

		blogs, err := h.blogRepo.Search(query)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("search blogs", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, BlogCollection{Blogs: blogs, Total: len(blogs)})
	}
}

// getBySlug returns one published blog by slug. An unpublished post is a
// 404 here even when its slug matches.
func (h blogHandler) getBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blog, err := h.blogRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// create inserts a new blog. Slug derivation and uniqueness live in the
// service layer.
func (h blogHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload CreateBlogRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		blog := &models.Blog{
			Title:      payload.Title,
			Excerpt:    payload.Excerpt,
			Content:    payload.Content,
			CoverImage: payload.CoverImage,
			Author:     payload.Author,
			Published:  payload.Published,
			Tags:       datatypes.NewJSONSlice(payload.Tags),
		}

		created, err := h.blogService.Create(blog)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog", "blog", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// update applies a partial update to an existing blog.
func (h blogHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := h.parseBlogID(w, r)
		if !ok {
			return
		}

		var payload UpdateBlogRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		updates := payload.toUpdates()
		if len(updates) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("no fields to update"))
			return
		}

		updated, err := h.blogService.Update(blogID, updates)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog", "blog", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// delete removes a blog and best-effort cleans up its cover image.
func (h blogHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := h.parseBlogID(w, r)
		if !ok {
			return
		}

		if err := h.blogService.Delete(r.Context(), blogID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog", "blog", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog deleted successfully",
		})
	}
}

// uploadCover stores a cover image through the media adapter and returns
// its descriptor.
func (h blogHandler) uploadCover() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxCoverImageSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, maxCoverImageSize))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read uploaded file"))
			return
		}

		descriptor, err := h.blogService.UploadCover(r.Context(), header.Filename, content)
		if err != nil {
			h.logger.Error().Err(err).Str("fileName", header.Filename).Msg("Cover upload failed")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to upload cover image", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, descriptor)
	}
}

func (h blogHandler) parseBlogID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	blogIDStr := chi.URLParam(r, "blogID")
	if blogIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing blogID"))
		return uuid.Nil, false
	}

	blogID, err := uuid.Parse(blogIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
		return uuid.Nil, false
	}
	return blogID, true
}

// toUpdates converts the request's set fields to named column updates.
func (p UpdateBlogRequest) toUpdates() map[string]any {
	updates := make(map[string]any)
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Excerpt != nil {
		updates["excerpt"] = *p.Excerpt
	}
	if p.Content != nil {
		updates["content"] = *p.Content
	}
	if p.CoverImage != nil {
		updates["cover_image"] = *p.CoverImage
	}
	if p.Author != nil {
		updates["author"] = *p.Author
	}
	if p.Published != nil {
		updates["published"] = *p.Published
	}
	if p.Tags != nil {
		updates["tags"] = datatypes.NewJSONSlice(*p.Tags)
	}
	return updates
}
