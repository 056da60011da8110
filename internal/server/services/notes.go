package services

import (
	"context"
	"strings"

	"github.com/alexsk87/notehub/internal/common"
	"github.com/alexsk87/notehub/internal/server/auth"
	"github.com/alexsk87/notehub/internal/server/models"
	"github.com/alexsk87/notehub/internal/server/repositories/notes"
	"github.com/google/uuid"
)

// NoteService orchestrates note queries and mutations. Every mutation checks,
// in order: authentication, existence, ownership. A missing note therefore
// reports not-found even to a non-owner.
type NoteService struct {
	repo notes.Repository
}

func NewNoteService(repo notes.Repository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) List(ctx context.Context) ([]*models.Note, error) {
	return s.repo.List(ctx)
}

func (s *NoteService) Get(ctx context.Context, id string) (*models.Note, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new note owned by the authenticated identity.
func (s *NoteService) Create(ctx context.Context, identity auth.Identity, content string) (*models.Note, error) {
	if !identity.Authenticated() {
		return nil, common.ErrorUnauthenticated
	}

	// Content is stored verbatim; only effectively-empty input is rejected.
	if strings.TrimSpace(content) == "" {
		return nil, common.ErrorValidation
	}

	note := &models.Note{
		ID:       uuid.NewString(),
		Content:  content,
		AuthorID: identity.UserID,
	}

	return s.repo.Create(ctx, note)
}

// Update replaces the note's content. Last writer wins; two concurrent
// updates are not serialized here.
func (s *NoteService) Update(ctx context.Context, identity auth.Identity, id, content string) (*models.Note, error) {
	if !identity.Authenticated() {
		return nil, common.ErrorUnauthenticated
	}

	if strings.TrimSpace(content) == "" {
		return nil, common.ErrorValidation
	}

	if err := s.guardOwner(ctx, identity, id); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, content)
}

// Delete removes the note. A missing id reports common.ErrorNotFound.
func (s *NoteService) Delete(ctx context.Context, identity auth.Identity, id string) error {
	if !identity.Authenticated() {
		return common.ErrorUnauthenticated
	}

	if err := s.guardOwner(ctx, identity, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

// guardOwner loads the note and enforces ownership. Existence is checked
// strictly before ownership.
func (s *NoteService) guardOwner(ctx context.Context, identity auth.Identity, id string) error {
	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if note.AuthorID != identity.UserID {
		return common.ErrorForbidden
	}
	return nil
}
