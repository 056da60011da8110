package services

import (
	"context"
	"testing"
	"time"

	"github.com/alexsk87/notehub/internal/common"
	"github.com/alexsk87/notehub/internal/server/auth"
	"github.com/alexsk87/notehub/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotesRepo struct {
	byID map[string]*models.Note
}

func newFakeNotesRepo() *fakeNotesRepo {
	return &fakeNotesRepo{byID: make(map[string]*models.Note)}
}

func (f *fakeNotesRepo) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	n := *note
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	f.byID[n.ID] = &n
	return &n, nil
}

func (f *fakeNotesRepo) GetByID(ctx context.Context, id string) (*models.Note, error) {
	n, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return n, nil
}

func (f *fakeNotesRepo) List(ctx context.Context) ([]*models.Note, error) {
	var result []*models.Note
	for _, n := range f.byID {
		result = append(result, n)
	}
	return result, nil
}

func (f *fakeNotesRepo) Update(ctx context.Context, id string, content string) (*models.Note, error) {
	n, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	n.Content = content
	n.UpdatedAt = time.Now()
	return n, nil
}

func (f *fakeNotesRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

var (
	alice = auth.Identity{UserID: "user-alice"}
	bob   = auth.Identity{UserID: "user-bob"}
	anon  = auth.Identity{}
)

func TestNoteCreate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotesRepo()
	svc := NewNoteService(repo)

	note, err := svc.Create(ctx, alice, "hi")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, note.AuthorID)
	assert.Equal(t, "hi", note.Content)

	_, err = svc.Create(ctx, anon, "hi")
	assert.ErrorIs(t, err, common.ErrorUnauthenticated)

	_, err = svc.Create(ctx, alice, "   ")
	assert.ErrorIs(t, err, common.ErrorValidation)

	// Whitespace inside and around real content is kept as written.
	verbatim, err := svc.Create(ctx, alice, "  two  words \n")
	require.NoError(t, err)
	assert.Equal(t, "  two  words \n", verbatim.Content)
}

func TestNoteUpdate_OwnershipStateMachine(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotesRepo()
	svc := NewNoteService(repo)

	note, err := svc.Create(ctx, alice, "hi")
	require.NoError(t, err)

	_, err = svc.Update(ctx, anon, note.ID, "hacked")
	assert.ErrorIs(t, err, common.ErrorUnauthenticated)

	_, err = svc.Update(ctx, bob, note.ID, "hacked")
	assert.ErrorIs(t, err, common.ErrorForbidden)

	// Missing note reports not-found even to a non-owner.
	_, err = svc.Update(ctx, bob, "no-such-id", "hacked")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = svc.Update(ctx, alice, "no-such-id", "hacked")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = svc.Update(ctx, alice, note.ID, " \t ")
	assert.ErrorIs(t, err, common.ErrorValidation)

	updated, err := svc.Update(ctx, alice, note.ID, "hi there ")
	require.NoError(t, err)
	assert.Equal(t, "hi there ", updated.Content, "content is stored verbatim")

	stored, err := repo.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi there ", stored.Content)
	assert.Equal(t, alice.UserID, stored.AuthorID, "authorId is never reassigned")
}

func TestNoteDelete_OwnershipStateMachine(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotesRepo()
	svc := NewNoteService(repo)

	note, err := svc.Create(ctx, alice, "hi")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, anon, note.ID), common.ErrorUnauthenticated)
	assert.ErrorIs(t, svc.Delete(ctx, bob, note.ID), common.ErrorForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, alice, "no-such-id"), common.ErrorNotFound)

	require.NoError(t, svc.Delete(ctx, alice, note.ID))
	_, err = svc.Get(ctx, note.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// Already gone: uniformly not-found.
	assert.ErrorIs(t, svc.Delete(ctx, alice, note.ID), common.ErrorNotFound)
}

func TestNoteQueriesArePublic(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotesRepo()
	svc := NewNoteService(repo)

	note, err := svc.Create(ctx, alice, "hi")
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	got, err := svc.Get(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, got.ID)
}
