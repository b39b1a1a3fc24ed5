// Package review implements review submission and rating aggregation.
package review

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/readersbay/bookclub/internal/jsonstore"
	"github.com/readersbay/bookclub/pkg/types"
)

// Service submits and persists reviews. Queries that need no store are
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

// FindIndex returns the position of the review the user holds for the
// book, or -1 when the user has not reviewed it.
func FindIndex(reviews []types.Review, bookID, userID int) int {
	for i, r := range reviews {
		if r.BookID == bookID && r.UserID == userID {
			return i
		}
	}
	return -1
}

// ForBook returns the reviews for one book in input order.
func ForBook(reviews []types.Review, bookID int) []types.Review {
	var results []types.Review
	for _, r := range reviews {
		if r.BookID == bookID {
			results = append(results, r)
		}
	}
	return results
}

// AverageRating returns the arithmetic mean of the ratings, rounded to
// one decimal place half away from zero. An empty slice averages to 0.
func AverageRating(reviews []types.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}

// Submit records a user's review of a book and persists the collection.
// A rating outside [1,5] is rejected with ErrInvalidRating and the
// collection is returned unchanged. When the user already reviewed the
// book, the existing record is overwritten in place (rating, text,
// date; the id is kept). Otherwise a new record is appended with
// id = max(existing)+1, or 1 for an empty collection.
func (s *Service) Submit(reviews []types.Review, bookID, userID, rating int, text string) ([]types.Review, error) {
	if !types.ValidRating(rating) {
		return reviews, fmt.Errorf("rating %d: %w", rating, types.ErrInvalidRating)
	}

	today := s.now().Format(types.DateLayout)
	if i := FindIndex(reviews, bookID, userID); i >= 0 {
		reviews[i].Rating = rating
		reviews[i].Text = text
		reviews[i].Date = today
		s.logger.Info("review updated",
			zap.Int("id", reviews[i].ID),
			zap.Int("book_id", bookID),
			zap.Int("user_id", userID))
	} else {
		rec := types.Review{
			ID:     nextID(reviews),
			BookID: bookID,
			UserID: userID,
			Rating: rating,
			Text:   text,
			Date:   today,
		}
		reviews = append(reviews, rec)
		s.logger.Info("review created",
			zap.Int("id", rec.ID),
			zap.Int("book_id", bookID),
			zap.Int("user_id", userID))
	}

	if err := s.store.SaveReviews(reviews); err != nil {
		return reviews, fmt.Errorf("saving reviews: %w", err)
	}
	return reviews, nil
}

// nextID returns max(existing ids)+1, or 1 for an empty collection.
func nextID(reviews []types.Review) int {
	maxID := 0
	for _, r := range reviews {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}
