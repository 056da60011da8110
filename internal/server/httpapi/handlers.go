package httpapi

import (
	"net/http"
	"time"

	"github.com/alexsk87/notehub/internal/common"
	"github.com/alexsk87/notehub/internal/server/auth"
	"github.com/alexsk87/notehub/internal/server/models"
	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type noteRequest struct {
	Content string `json:"content"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toNoteResponse(n *models.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		Content:   n.Content,
		AuthorID:  n.AuthorID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (s *Server) handleSignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, common.ErrorValidation)
		return
	}

	token, err := s.users.SignUp(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "username", req.Username)
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (s *Server) handleSignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, common.ErrorValidation)
		return
	}

	login := req.Username
	if login == "" {
		login = req.Email
	}

	token, err := s.users.SignIn(c.Request.Context(), login, req.Password)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) handleMe(c *gin.Context) {
	identity := auth.IdentityFromContext(c.Request.Context())
	user, err := s.users.Profile(c.Request.Context(), identity)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}

func (s *Server) handleListNotes(c *gin.Context) {
	all, err := s.notes.List(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	result := make([]noteResponse, 0, len(all))
	for _, n := range all {
		result = append(result, toNoteResponse(n))
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetNote(c *gin.Context) {
	note, err := s.notes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNoteResponse(note))
}

func (s *Server) handleNewNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, common.ErrorValidation)
		return
	}

	identity := auth.IdentityFromContext(c.Request.Context())
	note, err := s.notes.Create(c.Request.Context(), identity, req.Content)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toNoteResponse(note))
}

func (s *Server) handleUpdateNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, common.ErrorValidation)
		return
	}

	identity := auth.IdentityFromContext(c.Request.Context())
	note, err := s.notes.Update(c.Request.Context(), identity, c.Param("id"), req.Content)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toNoteResponse(note))
}

func (s *Server) handleDeleteNote(c *gin.Context) {
	identity := auth.IdentityFromContext(c.Request.Context())
	if err := s.notes.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
