package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readersbay/bookclub/internal/jsonstore"
	"github.com/readersbay/bookclub/pkg/types"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	store, err := jsonstore.Open(t.TempDir(), nil)
	require.NoError(t, err)

	require.NoError(t, store.SaveBooks([]types.Book{
		{ID: 1, Title: "Dune", Author: "Frank Herbert", Genre: "sci-fi", Year: 1965},
	}))
	require.NoError(t, store.SaveUsers([]types.User{
		{ID: 1, Name: "ana", Password: "pw"},
		{ID: 2, Name: "bo", Password: "pw"},
	}))

	return Load(store, nil)
}

func TestLoadReadsAllCollections(t *testing.T) {
	app := newTestApp(t)

	assert.Len(t, app.Users, 2)
	assert.Len(t, app.Books, 1)
	assert.Empty(t, app.Reviews)
	assert.Empty(t, app.Shares)
}

func TestLoadEmptyDataDir(t *testing.T) {
	store, err := jsonstore.Open(t.TempDir(), nil)
	require.NoError(t, err)

	app := Load(store, nil)
	assert.Empty(t, app.Users)
	assert.Empty(t, app.Books)
}

func TestSubmitReviewKeepsStateAndStoreInStep(t *testing.T) {
	app := newTestApp(t)

	first, err := app.SubmitReview(1, 1, 5, "great")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := app.SubmitReview(1, 1, 3, "meh")
	require.NoError(t, err)
	assert.Equal(t, 1, second.ID, "edit keeps the id")
	assert.Equal(t, 3, second.Rating)

	require.Len(t, app.Reviews, 1)

	// A fresh App over the same data dir sees the persisted edit.
	reloaded := Load(app.Store(), nil)
	require.Len(t, reloaded.Reviews, 1)
	assert.Equal(t, "meh", reloaded.Reviews[0].Text)
}

func TestSubmitReviewRejectionLeavesStateUntouched(t *testing.T) {
	app := newTestApp(t)

	_, err := app.SubmitReview(1, 1, 0, "x")
	assert.ErrorIs(t, err, types.ErrInvalidRating)
	assert.Empty(t, app.Reviews)
}

func TestRecommendAndInbox(t *testing.T) {
	app := newTestApp(t)

	sh, err := app.Recommend(1, 1, 2, "read this")
	require.NoError(t, err)
	assert.Equal(t, 1, sh.ID)

	inbox := app.Inbox(2)
	require.Len(t, inbox, 1)
	assert.Equal(t, "read this", inbox[0].Note)
	assert.Empty(t, app.Inbox(1), "sender's inbox stays empty")

	_, err = app.Recommend(1, 1, 1, "")
	assert.ErrorIs(t, err, types.ErrSelfShare)
	assert.Len(t, app.Shares, 1)
}

func TestRegisterThenLogin(t *testing.T) {
	app := newTestApp(t)

	user, err := app.Register("Carla", "nueva")
	require.NoError(t, err)
	assert.Equal(t, 3, user.ID)
	assert.Len(t, app.Users, 3)

	got, sess, err := app.Login("carla", "nueva")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, sess.Token)
}

func TestFindBook(t *testing.T) {
	app := newTestApp(t)

	book, err := app.FindBook(1)
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)

	_, err = app.FindBook(42)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
