package storage

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Storage {
	t.Helper()
	store, cleanup, err := NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return store
}

func TestDraftUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := gofakeit.UUID()

	_, err := store.SaveDraft(ctx, userID, "First title", "first-title", "first body")
	require.NoError(t, err)

	// A second save replaces the first; one draft per user.
	_, err = store.SaveDraft(ctx, userID, "Second title", "second-title", "second body")
	require.NoError(t, err)

	draft, err := store.GetDraft(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, "Second title", draft.Title)
	assert.Equal(t, "second-title", draft.Slug)
	assert.Equal(t, "second body", draft.Text)
}

func TestGetDraftMissing(t *testing.T) {
	store := newTestStore(t)

	draft, err := store.GetDraft(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, draft)
}

func TestDeleteDraft(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := gofakeit.UUID()

	_, err := store.SaveDraft(ctx, userID, "Title", "title", "body")
	require.NoError(t, err)
	require.NoError(t, store.DeleteDraft(ctx, userID))

	draft, err := store.GetDraft(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, draft)

	// Deleting again is a no-op.
	assert.NoError(t, store.DeleteDraft(ctx, userID))
}

func TestCommentsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	postID := gofakeit.UUID()

	first, err := store.AddComment(ctx, postID, "u1", "Ada", "", "first comment")
	require.NoError(t, err)
	second, err := store.AddComment(ctx, postID, "u2", "Grace", "", "second comment")
	require.NoError(t, err)

	comments, err := store.ListComments(ctx, postID)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, second.ID, comments[0].ID)
	assert.Equal(t, first.ID, comments[1].ID)
}

func TestCommentsScopedToPost(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddComment(ctx, "post-a", "u1", "Ada", "", "on a")
	require.NoError(t, err)
	_, err = store.AddComment(ctx, "post-b", "u1", "Ada", "", "on b")
	require.NoError(t, err)

	comments, err := store.ListComments(ctx, "post-a")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "on a", comments[0].Text)
}
