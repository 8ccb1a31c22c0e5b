package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/maatiworld/maati-world-backend/config"
	"github.com/maatiworld/maati-world-backend/errs"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	adminEmail    string
	adminPassword string
	secret        []byte
}

func newAuthHandler(cfg map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		adminEmail:    config.GetString(cfg, "ADMIN_EMAIL", ""),
		adminPassword: config.GetString(cfg, "ADMIN_PASSWORD", ""),
		secret:        []byte(config.GetString(cfg, "JWT_SECRET", "")),
	}
}

// login checks the admin credentials and mints a bearer token for the
// editor session.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if h.adminEmail == "" || h.adminPassword == "" {
			h.responder.WriteError(w, errs.NewInternalError("admin credentials are not configured"))
			return
		}

		emailOK := subtle.ConstantTimeCompare([]byte(payload.Email), []byte(h.adminEmail)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(payload.Password), []byte(h.adminPassword)) == 1
		if !emailOK || !passwordOK {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		token, err := generateAdminToken(h.secret, payload.Email)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign admin token")
			h.responder.WriteError(w, errs.NewInternalError("failed to create session"))
			return
		}

		h.responder.WriteJSON(w, LoginResponse{Token: token})
	}
}
