package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readersbay/bookclub/internal/jsonstore"
	"github.com/readersbay/bookclub/pkg/types"
)

var testUsers = []types.User{
	{ID: 1, Name: "Ana", Password: "secret"},
	{ID: 4, Name: "bo", Password: "hunter2"},
}

func newTestService(t *testing.T) (*Service, *jsonstore.Store) {
	t.Helper()
	store, err := jsonstore.Open(t.TempDir(), nil)
	require.NoError(t, err)
	return NewService(store, nil), store
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		loginAs  string
		password string
		wantID   int
		wantErr  bool
	}{
		{name: "exact match", loginAs: "Ana", password: "secret", wantID: 1},
		{name: "name is case-insensitive", loginAs: "ana", password: "secret", wantID: 1},
		{name: "password is verbatim", loginAs: "Ana", password: "SECRET", wantErr: true},
		{name: "unknown name", loginAs: "nadie", password: "secret", wantErr: true},
		{name: "empty credentials", loginAs: "", password: "", wantErr: true},
	}

	svc, _ := newTestService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, sess, err := svc.Login(testUsers, tt.loginAs, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrInvalidCredentials)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
			assert.Equal(t, tt.wantID, sess.UserID)
			assert.NotEmpty(t, sess.Token)
			assert.False(t, sess.IssuedAt.IsZero())
		})
	}
}

func TestLoginTokensAreUnique(t *testing.T) {
	svc, _ := newTestService(t)

	_, first, err := svc.Login(testUsers, "ana", "secret")
	require.NoError(t, err)
	_, second, err := svc.Login(testUsers, "ana", "secret")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestRegister(t *testing.T) {
	svc, store := newTestService(t)

	users, user, err := svc.Register(testUsers, "Carla", "pw")
	require.NoError(t, err)

	assert.Equal(t, 5, user.ID, "id is max(existing)+1")
	assert.Equal(t, "Carla", user.Name)
	require.Len(t, users, 3)
	assert.Equal(t, users, store.LoadUsers())
}

func TestRegisterEmptyCollection(t *testing.T) {
	svc, _ := newTestService(t)

	_, user, err := svc.Register(nil, "primera", "pw")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	svc, store := newTestService(t)

	users, _, err := svc.Register(testUsers, "ANA", "pw")
	assert.ErrorIs(t, err, types.ErrNameTaken, "names are unique case-insensitively")
	assert.Len(t, users, len(testUsers), "collection unchanged on rejection")
	assert.Empty(t, store.LoadUsers(), "nothing persisted on rejection")
}

func TestRegisterRejectsEmptyFields(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Register(testUsers, "", "pw")
	assert.ErrorIs(t, err, types.ErrEmptyField)

	_, _, err = svc.Register(testUsers, "nueva", "")
	assert.ErrorIs(t, err, types.ErrEmptyField)

	_, _, err = svc.Register(testUsers, "   ", "pw")
	assert.ErrorIs(t, err, types.ErrEmptyField, "whitespace-only name is empty")
}

func TestFindUserByID(t *testing.T) {
	user, err := FindUserByID(testUsers, 4)
	require.NoError(t, err)
	assert.Equal(t, "bo", user.Name)

	_, err = FindUserByID(testUsers, 999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestFindUserByName(t *testing.T) {
	user, err := FindUserByName(testUsers, "BO")
	require.NoError(t, err)
	assert.Equal(t, 4, user.ID)

	_, err = FindUserByName(testUsers, "nadie")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
