package models

import "time"

// Note is a user-authored note. AuthorID is set at creation and never
// reassigned; only that user may update or delete the note.
type Note struct {
	ID        string
	Content   string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
