// Package httpapi exposes the note and credential services over an HTTP JSON
// API. The identity middleware authenticates each request exactly once;
// handlers read the resulting identity from the request context.
package httpapi

import (
	"time"

	"github.com/alexsk87/notehub/internal/logging"
	"github.com/alexsk87/notehub/internal/server/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	users     *services.UserService
	notes     *services.NoteService
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(l logging.Logger, us *services.UserService, ns *services.NoteService, secretKey string) *Server {
	return &Server{
		users:     us,
		notes:     ns,
		logger:    l.With("module", "httpapi"),
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	api := r.Group("/api", s.identityMiddleware())
	api.POST("/signup", s.handleSignUp)
	api.POST("/signin", s.handleSignIn)
	api.GET("/me", s.handleMe)
	api.GET("/notes", s.handleListNotes)
	api.GET("/notes/:id", s.handleGetNote)
	api.POST("/notes", s.handleNewNote)
	api.PUT("/notes/:id", s.handleUpdateNote)
	api.DELETE("/notes/:id", s.handleDeleteNote)

	return r
}
