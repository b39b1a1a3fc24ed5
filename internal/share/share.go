// Package share implements directed book recommendations between
// members, including the inbox view for recipients.
package share

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/readersbay/bookclub/internal/jsonstore"
	"github.com/readersbay/bookclub/pkg/types"
)

// Service creates and persists shares. Queries that need no store are
// package functions.
type Service struct {
	store  *jsonstore.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService returns a Service bound to the store. A nil logger
// disables logging.
func NewService(store *jsonstore.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// Recommend records a book recommendation from one member to another
// and persists the collection. Self-recommendation is rejected with
// ErrSelfShare; an unknown recipient with ErrNotFound. On rejection the
// collection is returned unchanged. The new share gets
// id = max(existing)+1 (1 when empty) and today's date.
func (s *Service) Recommend(shares []types.Share, users []types.User, bookID, fromID, toID int, note string) ([]types.Share, error) {
	if fromID == toID {
		return shares, types.ErrSelfShare
	}
	if !userExists(users, toID) {
		return shares, fmt.Errorf("recipient %d: %w", toID, types.ErrNotFound)
	}

	rec := types.Share{
		ID:         nextID(shares),
		FromUserID: fromID,
		ToUserID:   toID,
		BookID:     bookID,
		Date:       s.now().Format(types.DateLayout),
		Note:       note,
	}
	shares = append(shares, rec)

	if err := s.store.SaveShares(shares); err != nil {
		return shares, fmt.Errorf("saving shares: %w", err)
	}
	s.logger.Info("book recommended",
		zap.Int("id", rec.ID),
		zap.Int("book_id", bookID),
		zap.Int("from_user_id", fromID),
		zap.Int("to_user_id", toID))
	return shares, nil
}

// ForBook returns the shares that recommend one book, in input order.
func ForBook(shares []types.Share, bookID int) []types.Share {
	var results []types.Share
	for _, sh := range shares {
		if sh.BookID == bookID {
			results = append(results, sh)
		}
	}
	return results
}

// ForRecipient returns the shares addressed to one member, in input
// order. This feeds the recipient's inbox.
func ForRecipient(shares []types.Share, userID int) []types.Share {
	var results []types.Share
	for _, sh := range shares {
		if sh.ToUserID == userID {
			results = append(results, sh)
		}
	}
	return results
}

func userExists(users []types.User, id int) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// nextID returns max(existing ids)+1, or 1 for an empty collection.
func nextID(shares []types.Share) int {
	maxID := 0
	for _, sh := range shares {
		if sh.ID > maxID {
			maxID = sh.ID
		}
	}
	return maxID + 1
}
