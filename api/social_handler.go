package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/maatiworld/maati-world-backend/database"
	"github.com/maatiworld/maati-world-backend/errs"
)

type socialHandler struct {
	responder   Responder
	logger      zerolog.Logger
	likeRepo    *database.LikeRepo
	commentRepo *database.CommentRepo
}

func newSocialHandler(likeRepo *database.LikeRepo, commentRepo *database.CommentRepo) socialHandler {
	logger := log.With().Str("handlerName", "socialHandler").Logger()

	return socialHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
	}
}

// getLikeStatus returns the likes count for a post and whether the given
// viewer has liked it. The two reads are independent, so they are issued
// concurrently and joined before responding.
func (h socialHandler) getLikeStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := h.parseID(w, r, "blogID")
		if !ok {
			return
		}

		userID, ok := h.parseViewerQuery(w, r)
		if !ok {
			return
		}

		var status LikeStatus
		g := new(errgroup.Group)
		g.Go(func() error {
			count, err := h.likeRepo.Count(blogID)
			status.Count = count
			return err
		})
		g.Go(func() error {
			liked, err := h.likeRepo.HasUserLiked(blogID, userID)
			status.Liked = liked
			return err
		})
		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load like status", "likes", err))
			return
		}

		h.responder.WriteJSON(w, status)
	}
}

// addLike records a like for the (blog, viewer) pair. The caller is
// expected to have consulted getLikeStatus first; no uniqueness check
// happens here.
func (h socialHandler) addLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := h.parseID(w, r, "blogID")
		if !ok {
			return
		}

		var payload LikeRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
				return
			}
		}

		like, err := h.likeRepo.Add(blogID, payload.UserID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create like", "like", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, like)
	}
}

// removeLike deletes the like rows for the (blog, viewer) pair.
func (h socialHandler) removeLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := h.parseID(w, r, "blogID")
		if !ok {
			return
		}

		userID, ok := h.parseViewerQuery(w, r)
		if !ok {
			return
		}

		if err := h.likeRepo.Remove(blogID, userID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete like", "like", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "like removed",
		})
	}
}

// getComments returns a post's comments in ascending creation order.
func (h socialHandler) getComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := h.parseID(w, r, "blogID")
		if !ok {
			return
		}

		comments, err := h.commentRepo.FindByBlog(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comments", "comments", err))
			return
		}

		h.responder.WriteJSON(w, comments)
	}
}

// addComment records a comment on a post. Empty content is rejected
// before any store round-trip.
func (h socialHandler) addComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := h.parseID(w, r, "blogID")
		if !ok {
			return
		}

		var payload CreateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}

		comment, err := h.commentRepo.Add(blogID, payload.Content, payload.UserID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create comment", "comment", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, comment)
	}
}

// deleteComment removes a comment by id. Admin action.
func (h socialHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, ok := h.parseID(w, r, "commentID")
		if !ok {
			return
		}

		if err := h.commentRepo.Delete(commentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete comment", "comment", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}

func (h socialHandler) parseID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, param)
	if idStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing "+param))
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid "+param))
		return uuid.Nil, false
	}
	return id, true
}

// parseViewerQuery reads the optional userId query parameter. Absence is
// the anonymous viewer, not an error.
func (h socialHandler) parseViewerQuery(w http.ResponseWriter, r *http.Request) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		return nil, true
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid userId"))
		return nil, false
	}
	return &userID, true
}
