package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/maatiworld/maati-world-backend/config"
	"github.com/maatiworld/maati-world-backend/media"
)

type mediaHandler struct {
	responder  Responder
	logger     zerolog.Logger
	publicKey  string
	privateKey string
}

func newMediaHandler(cfg map[string]string) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		publicKey:  config.GetString(cfg, "IMAGEKIT_PUBLIC_KEY", ""),
		privateKey: config.GetString(cfg, "IMAGEKIT_PRIVATE_KEY", ""),
	}
}

// signature issues a time-boxed upload credential for client-side
// uploaders that talk to the media service directly. No authentication;
// the route is explicitly open.
func (h mediaHandler) signature() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		credential, err := media.MintCredential(h.privateKey, h.publicKey)
		if err != nil {
			h.logger.Error().Err(err).Msg("Error generating upload signature")
			w.WriteHeader(http.StatusInternalServerError)
			h.responder.WriteJSON(w, map[string]string{"error": "Failed to generate signature"})
			return
		}

		h.responder.WriteJSON(w, credential)
	}
}
