package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Comment is an ephemeral, frontend-local comment on a post. The backend has
// no comments endpoint, so these live only in this instance's store.
type Comment struct {
	ID           string
	PostID       string
	AuthorID     string
	AuthorName   string
	AuthorAvatar string
	Text         string
	CreatedAt    time.Time
}

// AddComment stores a comment on a post.
func (s *Storage) AddComment(ctx context.Context, postID, authorID, authorName, authorAvatar, text string) (*Comment, error) {
	comment := &Comment{
		ID:           ulid.Make().String(),
		PostID:       postID,
		AuthorID:     authorID,
		AuthorName:   authorName,
		AuthorAvatar: authorAvatar,
		Text:         text,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (id, post_id, author_id, author_name, author_avatar, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		comment.ID, comment.PostID, comment.AuthorID, comment.AuthorName,
		comment.AuthorAvatar, comment.Text, comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return comment, nil
}

// ListComments returns a post's comments, newest first.
func (s *Storage) ListComments(ctx context.Context, postID string) ([]Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, post_id, author_id, author_name, author_avatar, text, created_at
		FROM comments WHERE post_id = ?
		ORDER BY created_at DESC`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.AuthorName, &c.AuthorAvatar, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
