// Package state owns the application's in-memory collections and wires
// the services around them.
package state

import (
	"go.uber.org/zap"

	"github.com/readersbay/bookclub/internal/auth"
	"github.com/readersbay/bookclub/internal/catalog"
	"github.com/readersbay/bookclub/internal/jsonstore"
	"github.com/readersbay/bookclub/internal/review"
	"github.com/readersbay/bookclub/internal/share"
	"github.com/readersbay/bookclub/pkg/types"
)

// App holds the four collections and the services that operate on them.
// One App exists per process run: the collections load once at startup
// and every committing action rewrites its store file. Reads go through
// the exported fields; mutations go through the App methods so the
// owned slice and the store stay in step.
type App struct {
	Users   []types.User
	Books   []types.Book
	Reviews []types.Review
	Shares  []types.Share

	store     *jsonstore.Store
	authSvc   *auth.Service
	reviewSvc *review.Service
	shareSvc  *share.Service
	logger    *zap.Logger
}

// Load builds an App by reading all four collections from the store.
// Missing or damaged stores load as empty collections, so Load itself
// cannot fail.
func Load(store *jsonstore.Store, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{
		Users:     store.LoadUsers(),
		Books:     store.LoadBooks(),
		Reviews:   store.LoadReviews(),
		Shares:    store.LoadShares(),
		store:     store,
		authSvc:   auth.NewService(store, logger),
		reviewSvc: review.NewService(store, logger),
		shareSvc:  share.NewService(store, logger),
		logger:    logger,
	}
	logger.Info("state loaded",
		zap.String("data_dir", store.DataDir()),
		zap.Int("users", len(app.Users)),
		zap.Int("books", len(app.Books)),
		zap.Int("reviews", len(app.Reviews)),
		zap.Int("shares", len(app.Shares)))
	return app
}

// Store exposes the underlying store, mainly for catalog curation.
func (a *App) Store() *jsonstore.Store {
	return a.store
}

// Login verifies credentials against the loaded members.
func (a *App) Login(name, password string) (types.User, auth.Session, error) {
	return a.authSvc.Login(a.Users, name, password)
}

// Register creates a member and keeps the owned collection current.
func (a *App) Register(name, password string) (types.User, error) {
	updated, user, err := a.authSvc.Register(a.Users, name, password)
	if err != nil {
		return types.User{}, err
	}
	a.Users = updated
	return user, nil
}

// SubmitReview records or edits the user's review of a book and keeps
// the owned collection current.
func (a *App) SubmitReview(bookID, userID, rating int, text string) (types.Review, error) {
	updated, err := a.reviewSvc.Submit(a.Reviews, bookID, userID, rating, text)
	if err != nil {
		return types.Review{}, err
	}
	a.Reviews = updated
	return a.Reviews[review.FindIndex(a.Reviews, bookID, userID)], nil
}

// Recommend shares a book with another member and keeps the owned
// collection current.
func (a *App) Recommend(bookID, fromID, toID int, note string) (types.Share, error) {
	updated, err := a.shareSvc.Recommend(a.Shares, a.Users, bookID, fromID, toID, note)
	if err != nil {
		return types.Share{}, err
	}
	a.Shares = updated
	return a.Shares[len(a.Shares)-1], nil
}

// FindBook looks up a catalog entry by id.
func (a *App) FindBook(id int) (types.Book, error) {
	return catalog.FindByID(a.Books, id)
}

// Inbox returns the shares addressed to one member.
func (a *App) Inbox(userID int) []types.Share {
	return share.ForRecipient(a.Shares, userID)
}
