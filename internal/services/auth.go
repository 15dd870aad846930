package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/notes-service/internal/logger"
	"github.com/sbilibin2017/notes-service/internal/models"
	"github.com/sbilibin2017/notes-service/internal/validation"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already taken")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, phone, passwordHash string) (uuid.UUID, error)
}

// SessionCreator issues session tokens for authenticated users.
type SessionCreator interface {
	Create(ctx context.Context, userID uuid.UUID, remember bool) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionCreator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionCreator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
	}
}

// Register validates the submitted registration fields and creates the user.
// Validation failures come back as field-keyed errors and nothing is
// committed. On success the new user is logged in immediately and the session
// token is returned.
func (svc *AuthService) Register(ctx context.Context, username, password, passwordConfirm, email, phone string) (string, validation.FieldErrors, error) {
	fieldErrs := validation.FieldErrors{}

	if err := validation.CheckPasswords(password, passwordConfirm); err != nil {
		fieldErrs.Add("password_confirm", err)
	}
	if err := validation.CheckPhone(phone); err != nil {
		fieldErrs.Add("phone", err)
	}

	// Uniqueness is checked against the lowercased username
	username = validation.NormalizeUsername(username)
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		logger.Log.Infow("username already taken", "username", username)
		fieldErrs.Add("username", ErrUserAlreadyExists)
	}

	if !fieldErrs.Empty() {
		return "", fieldErrs, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	userID, err := svc.writer.Save(ctx, username, email, phone, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	// Log the new user in right away
	token, err := svc.sessions.Create(ctx, userID, false)
	if err != nil {
		logger.Log.Errorw("failed to create session", "err", err)
		return "", nil, err
	}

	return token, nil, nil
}

// Login authenticates a user and returns a session token. The remember flag
// controls the session lifetime: true keeps the session alive until explicit
// logout, false ties it to the configured TTL and the browser session.
func (svc *AuthService) Login(ctx context.Context, username, password string, remember bool) (string, error) {
	username = validation.NormalizeUsername(username)

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.sessions.Create(ctx, user.UserID, remember)
	if err != nil {
		logger.Log.Errorw("failed to create session", "err", err)
		return "", err
	}

	return token, nil
}
