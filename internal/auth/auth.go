// Package auth implements login, registration, and session issuance for
// club members.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readersbay/bookclub/internal/jsonstore"
	"github.com/readersbay/bookclub/pkg/types"
)

// Session is a logged-in member's handle for the lifetime of one
// process run. The token is opaque; nothing about sessions persists.
type Session struct {
	Token    string
	UserID   int
	IssuedAt time.Time
}

// Service verifies credentials and registers members.
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

// Login matches the name case-insensitively and the password verbatim.
// Both failure modes collapse into ErrInvalidCredentials so a caller
// cannot probe which half was wrong.
func (s *Service) Login(users []types.User, name, password string) (types.User, Session, error) {
	for _, u := range users {
		if strings.EqualFold(u.Name, name) && u.Password == password {
			sess := Session{
				Token:    uuid.NewString(),
				UserID:   u.ID,
				IssuedAt: s.now(),
			}
			s.logger.Info("login", zap.Int("user_id", u.ID))
			return u, sess, nil
		}
	}
	return types.User{}, Session{}, types.ErrInvalidCredentials
}

// Register creates a new member and persists the collection. Name and
// password are required; the name must be free case-insensitively. The
// new user gets id = max(existing)+1, or 1 for an empty collection.
func (s *Service) Register(users []types.User, name, password string) ([]types.User, types.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return users, types.User{}, types.ErrEmptyField
	}
	if _, err := FindUserByName(users, name); err == nil {
		return users, types.User{}, fmt.Errorf("%q: %w", name, types.ErrNameTaken)
	}

	user := types.User{ID: nextID(users), Name: name, Password: password}
	users = append(users, user)

	if err := s.store.SaveUsers(users); err != nil {
		return users, types.User{}, fmt.Errorf("saving users: %w", err)
	}
	s.logger.Info("user registered", zap.Int("user_id", user.ID), zap.String("name", user.Name))
	return users, user, nil
}

// FindUserByID returns the member with the given id.
// Returns ErrNotFound if nobody carries it.
func FindUserByID(users []types.User, id int) (types.User, error) {
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return types.User{}, fmt.Errorf("user %d: %w", id, types.ErrNotFound)
}

// FindUserByName returns the member with the given name, matched
// case-insensitively.
func FindUserByName(users []types.User, name string) (types.User, error) {
	for _, u := range users {
		if strings.EqualFold(u.Name, name) {
			return u, nil
		}
	}
	return types.User{}, fmt.Errorf("user %q: %w", name, types.ErrNotFound)
}

// nextID returns max(existing ids)+1, or 1 for an empty collection.
func nextID(users []types.User) int {
	maxID := 0
	for _, u := range users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}
