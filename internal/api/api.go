package api

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/avasek/userdeck/internal/api/handler"
	"github.com/avasek/userdeck/internal/config"
	"github.com/avasek/userdeck/internal/service"
)

// Server is the HTTP surface of userdeck.
type Server struct {
	ctx       context.Context
	cfg       *config.Config
	ginEngine *gin.Engine
	svc       *service.UserService
}

// New creates the API server. The context controls the server lifetime:
// when it is cancelled, the server shuts down gracefully.
func New(ctx context.Context, cfg *config.Config, svc *service.UserService) *Server {
	return &Server{
		ctx:       ctx,
		cfg:       cfg,
		ginEngine: gin.Default(),
		svc:       svc,
	}
}

func (s *Server) setupRoutes() {
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))

	h := handler.New(s.svc, s.cfg)

	// Uploaded profile pictures are served under the storage root's base
	// name, so the recorded image paths double as URL paths.
	root := s.cfg.Storage.Root
	s.ginEngine.Static("/"+filepath.Base(root), root)

	api := s.ginEngine.Group("/api")
	api.POST("/users", h.CreateUser)
	api.GET("/users/:id", h.GetUser)
	api.GET("/users/:id/profile", h.GetProfile)
	api.PUT("/users/:id/profile", h.UpdateProfile)
	api.POST("/users/:id/profile/picture", h.AddProfilePicture)
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.setupRoutes()

	srv := &http.Server{
		Addr:    s.cfg.Listen,
		Handler: s.ginEngine,
	}

	go func() {
		<-s.ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("failed to shut down API server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
