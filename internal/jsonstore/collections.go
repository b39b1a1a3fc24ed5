package jsonstore

import "github.com/readersbay/bookclub/pkg/types"

// LoadUsers reads users.json. Missing or corrupt stores load as empty.
func (s *Store) LoadUsers() []types.User {
	return readCollection[types.User](s, UsersFile)
}

// SaveUsers rewrites users.json with the full collection.
func (s *Store) SaveUsers(users []types.User) error {
	return writeCollection(s, UsersFile, users)
}

// LoadBooks reads books.json.
func (s *Store) LoadBooks() []types.Book {
	return readCollection[types.Book](s, BooksFile)
}

// SaveBooks rewrites books.json with the full collection.
func (s *Store) SaveBooks(books []types.Book) error {
	return writeCollection(s, BooksFile, books)
}

// LoadReviews reads reviews.json.
func (s *Store) LoadReviews() []types.Review {
	return readCollection[types.Review](s, ReviewsFile)
}

// SaveReviews rewrites reviews.json with the full collection.
func (s *Store) SaveReviews(reviews []types.Review) error {
	return writeCollection(s, ReviewsFile, reviews)
}

// LoadShares reads shares.json.
func (s *Store) LoadShares() []types.Share {
	return readCollection[types.Share](s, SharesFile)
}

// SaveShares rewrites shares.json with the full collection.
func (s *Store) SaveShares(shares []types.Share) error {
	return writeCollection(s, SharesFile, shares)
}
