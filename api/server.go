package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/maatiworld/maati-world-backend/config"
	"github.com/maatiworld/maati-world-backend/database"
	"github.com/maatiworld/maati-world-backend/media"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db database.Database, mediaStore media.Store) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "3002")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router := newRouter(db, mediaStore, c)

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

func newRouter(db database.Database, mediaStore media.Store, c map[string]string) *chi.Mux {
	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	handlers := initializeHandlers(db, mediaStore, c)

	secret := []byte(config.GetString(c, "JWT_SECRET", ""))
	authMiddleware := newAuthMiddleware(secret)

	acceptedOrigins := strings.Split(config.GetString(c, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
