package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Draft is an unpublished post kept locally per user until it is published to
// the backend. One draft per user, last write wins.
type Draft struct {
	ID        string
	UserID    string
	Title     string
	Slug      string
	Text      string
	UpdatedAt time.Time
}

// SaveDraft upserts the user's draft.
func (s *Storage) SaveDraft(ctx context.Context, userID, title, slug, text string) (*Draft, error) {
	draft := &Draft{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Title:     title,
		Slug:      slug,
		Text:      text,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO drafts (id, user_id, title, slug, text, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			title = excluded.title,
			slug = excluded.slug,
			text = excluded.text,
			updated_at = excluded.updated_at`,
		draft.ID, draft.UserID, draft.Title, draft.Slug, draft.Text, draft.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

// GetDraft returns the user's draft, or nil when none exists.
func (s *Storage) GetDraft(ctx context.Context, userID string) (*Draft, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, slug, text, updated_at
		FROM drafts WHERE user_id = ?`, userID)

	var draft Draft
	err := row.Scan(&draft.ID, &draft.UserID, &draft.Title, &draft.Slug, &draft.Text, &draft.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return &draft, nil
}

// DeleteDraft removes the user's draft, typically after a successful publish.
func (s *Storage) DeleteDraft(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
