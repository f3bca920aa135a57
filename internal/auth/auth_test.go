package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"driver_service/internal/auth"
	"driver_service/internal/lib/jwt"
	"driver_service/internal/models"
	"driver_service/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (s *fakeUserStore) SaveUser(_ context.Context, user models.User) (models.User, error) {
	if _, ok := s.users[user.Email]; ok {
		return models.User{}, storage.ErrUserExists
	}

	user.ID = bson.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.Email] = user

	return user, nil
}

func (s *fakeUserStore) UserByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return models.User{}, storage.ErrUserNotFound
	}

	return user, nil
}

func newTestAuth(t *testing.T) (*auth.Auth, *fakeUserStore, *jwt.Manager) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, 720*time.Hour)
	store := newFakeUserStore()

	return auth.New(log, store, store, tokens), store, tokens
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()

	svc, store, tokens := newTestAuth(t)

	user, pair, err := svc.Register(context.Background(), "a@b.com", "abcde", "A", "1")
	require.NoError(t, err)

	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "a@b.com", user.Email)

	stored := store.users["a@b.com"]
	assert.NotEqual(t, []byte("abcde"), stored.PassHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(stored.PassHash, []byte("abcde")))

	// both tokens resolve to the registered user
	uid, err := tokens.ParseAccessToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), uid)

	uid, err = tokens.ParseRefreshToken(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), uid)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestAuth(t)

	_, _, err := svc.Register(context.Background(), "a@b.com", "abcde", "A", "1")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "a@b.com", "fghij", "B", "2")
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
	assert.Len(t, store.users, 1)
}

func TestLogin_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, _, tokens := newTestAuth(t)

	registered, _, err := svc.Register(context.Background(), "a@b.com", "abcde", "A", "1")
	require.NoError(t, err)

	user, pair, err := svc.Login(context.Background(), "a@b.com", "abcde")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	uid, err := tokens.ParseAccessToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.Hex(), uid)
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuth(t)

	_, _, err := svc.Register(context.Background(), "a@b.com", "abcde", "A", "1")
	require.NoError(t, err)

	_, _, wrongPass := svc.Login(context.Background(), "a@b.com", "wrong")
	_, _, noUser := svc.Login(context.Background(), "missing@b.com", "whatever")

	assert.ErrorIs(t, wrongPass, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, auth.ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), noUser.Error())
}

func TestRefresh_RotatesPair(t *testing.T) {
	t.Parallel()

	svc, _, tokens := newTestAuth(t)

	registered, pair, err := svc.Register(context.Background(), "a@b.com", "abcde", "A", "1")
	require.NoError(t, err)

	rotated, err := svc.Refresh(pair.Refresh)
	require.NoError(t, err)

	assert.NotEqual(t, pair.Refresh, rotated.Refresh)

	uid, err := tokens.ParseAccessToken(rotated.Access)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.Hex(), uid)
}

func TestRefresh_RejectsBadTokensUniformly(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuth(t)

	expired := jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, -1*time.Second)
	expiredToken, err := expired.NewRefreshToken("u1")
	require.NoError(t, err)

	_, errExpired := svc.Refresh(expiredToken)
	_, errGarbage := svc.Refresh("not.a.jwt")

	assert.ErrorIs(t, errExpired, auth.ErrInvalidRefreshToken)
	assert.ErrorIs(t, errGarbage, auth.ErrInvalidRefreshToken)
	assert.Equal(t, errExpired.Error(), errGarbage.Error())
}
