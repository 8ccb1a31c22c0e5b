package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/maatiworld/maati-world-backend/database"
	"github.com/maatiworld/maati-world-backend/errs"
	"github.com/maatiworld/maati-world-backend/models"
)

type feedbackHandler struct {
	responder    Responder
	logger       zerolog.Logger
	feedbackRepo *database.FeedbackRepo
}

func newFeedbackHandler(feedbackRepo *database.FeedbackRepo) feedbackHandler {
	logger := log.With().Str("handlerName", "feedbackHandler").Logger()

	return feedbackHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		feedbackRepo: feedbackRepo,
	}
}

// create records a contact-form submission. All three fields are required
// and checked before any store call.
func (h feedbackHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload CreateFeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		for field, value := range map[string]string{
			"name":    payload.Name,
			"email":   payload.Email,
			"message": payload.Message,
		} {
			if value == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field))
				return
			}
		}

		feedback := &models.Feedback{
			Name:    payload.Name,
			Email:   payload.Email,
			Message: payload.Message,
		}
		if err := h.feedbackRepo.Add(feedback); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create feedback", "feedback", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, feedback)
	}
}

// list returns all feedback submissions newest-first for admin review.
func (h feedbackHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feedback, err := h.feedbackRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find feedback", "feedback", err))
			return
		}

		h.responder.WriteJSON(w, feedback)
	}
}

// delete removes a feedback submission by id.
func (h feedbackHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feedbackIDStr := chi.URLParam(r, "feedbackID")
		if feedbackIDStr == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing feedbackID"))
			return
		}

		feedbackID, err := uuid.Parse(feedbackIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid feedbackID"))
			return
		}

		if err := h.feedbackRepo.Delete(feedbackID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete feedback", "feedback", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "feedback deleted successfully",
		})
	}
}
