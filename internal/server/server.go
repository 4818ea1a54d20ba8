// Package server exposes timetable generation over HTTP.
package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ukaji3/timetable-go/internal/config"
)

// Server is the HTTP server for timetable generation.
type Server struct {
	router    *gin.Engine
	cfg       *config.AppConfig
	log       *slog.Logger
	downloads *downloadStore
}

// NewServer creates the server and its routes.
func NewServer(cfg *config.AppConfig, log *slog.Logger) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:    gin.New(),
		cfg:       cfg,
		log:       log,
		downloads: newDownloadStore(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestLogger())

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.POST("/timetable", s.handleGenerate)
		api.GET("/timetable/download/:token", s.handleDownload)
	}
}

// Handler returns the HTTP handler, for use with httptest or a custom http.Server.
func (s *Server) Handler() *gin.Engine {
	return s.router
}

// Run starts serving on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
