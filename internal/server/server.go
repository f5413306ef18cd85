package server

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/caloria-app/backend/config"
	"github.com/caloria-app/backend/internal/api"
	"github.com/caloria-app/backend/internal/router"
	"github.com/caloria-app/backend/internal/service"
	"github.com/caloria-app/backend/internal/store"
)

// Server represents the HTTP server
type Server struct {
	http  *http.Server
	store store.ProfileStore
}

// New creates a new server instance wired to the configured profile store
// and AI services.
func New(cfg *config.Config) (*Server, error) {
	profileStore, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	diary := service.NewDiaryService(profileStore)

	diaryHandler := api.NewDiaryHandler(diary)
	assistantHandler := api.NewAssistantHandler(service.NewAssistantService(cfg), diary)
	analysisHandler := api.NewAnalysisHandler(service.NewVisionService(cfg))

	engine := router.SetupRouter(diaryHandler, assistantHandler, analysisHandler)

	return &Server{
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: engine,
		},
		store: profileStore,
	}, nil
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and closes the profile store.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.http.Shutdown(ctx)

	if closer, ok := s.store.(io.Closer); ok {
		if closeErr := closer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	return err
}
