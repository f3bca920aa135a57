package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"driver_service/internal/lib/jwt"
	sl "driver_service/internal/lib/logger"
	"driver_service/internal/models"
	"driver_service/internal/storage"
)

var (
	ErrEmailTaken          = errors.New("email already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

type UserSaver interface {
	SaveUser(ctx context.Context, user models.User) (models.User, error)
}

type UserProvider interface {
	UserByEmail(ctx context.Context, email string) (models.User, error)
}

// Auth orchestrates registration, login and the refresh-token rotation.
// Tokens are stateless bearer values: nothing is persisted per session,
// so a refresh token stays valid until natural expiry.
type Auth struct {
	log         *slog.Logger
	usrSaver    UserSaver
	usrProvider UserProvider
	tokens      *jwt.Manager
}

func New(
	log *slog.Logger,
	userSaver UserSaver,
	userProvider UserProvider,
	tokens *jwt.Manager,
) *Auth {
	return &Auth{
		log:         log,
		usrSaver:    userSaver,
		usrProvider: userProvider,
		tokens:      tokens,
	}
}

// Register creates a user with a freshly hashed password and issues both
// tokens. A matching email yields ErrEmailTaken without touching the
// store.
func (a *Auth) Register(
	ctx context.Context,
	email, password, fullName, phone string,
) (models.User, jwt.Pair, error) {
	const op = "auth.Register"

	log := a.log.With(slog.String("op", op))

	_, err := a.usrProvider.UserByEmail(ctx, email)
	if err == nil {
		log.Warn("email already taken")
		return models.User{}, jwt.Pair{}, ErrEmailTaken
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		log.Error("failed to check existing user", sl.Err(err))
		return models.User{}, jwt.Pair{}, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Email:    email,
		FullName: fullName,
		Phone:    phone,
	}

	if err := user.SetPassword(password); err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return models.User{}, jwt.Pair{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err = a.usrSaver.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("email already taken")
			return models.User{}, jwt.Pair{}, ErrEmailTaken
		}

		log.Error("failed to save user", sl.Err(err))
		return models.User{}, jwt.Pair{}, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := a.tokens.NewPair(user.ID.Hex())
	if err != nil {
		log.Error("failed to issue tokens", sl.Err(err))
		return models.User{}, jwt.Pair{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.String("uid", user.ID.Hex()))

	return user, pair, nil
}

// Login verifies the credentials and issues both tokens. Unknown email
// and wrong password collapse into the same error on purpose.
func (a *Auth) Login(
	ctx context.Context,
	email, password string,
) (models.User, jwt.Pair, error) {
	const op = "auth.Login"

	log := a.log.With(slog.String("op", op))

	user, err := a.usrProvider.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found")
			return models.User{}, jwt.Pair{}, ErrInvalidCredentials
		}

		log.Error("failed to get user", sl.Err(err))
		return models.User{}, jwt.Pair{}, fmt.Errorf("%s: %w", op, err)
	}

	if !user.CheckPassword(password) {
		log.Warn("password mismatch")
		return models.User{}, jwt.Pair{}, ErrInvalidCredentials
	}

	pair, err := a.tokens.NewPair(user.ID.Hex())
	if err != nil {
		log.Error("failed to issue tokens", sl.Err(err))
		return models.User{}, jwt.Pair{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in", slog.String("uid", user.ID.Hex()))

	return user, pair, nil
}

// Refresh verifies the presented refresh token and rotates the full pair.
// Expired and malformed tokens are indistinguishable to the caller.
func (a *Auth) Refresh(refreshToken string) (jwt.Pair, error) {
	const op = "auth.Refresh"

	log := a.log.With(slog.String("op", op))

	userID, err := a.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		log.Warn("refresh token rejected", sl.Err(err))
		return jwt.Pair{}, ErrInvalidRefreshToken
	}

	pair, err := a.tokens.NewPair(userID)
	if err != nil {
		log.Error("failed to issue tokens", sl.Err(err))
		return jwt.Pair{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("tokens refreshed", slog.String("uid", userID))

	return pair, nil
}
