// Package sessions implements the server-side session registry on Redis.
// A session token is a signed JWT whose sid claim points at a Redis key,
// so logout revokes the session even when the token itself has not expired.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/notes-service/internal/jwt"
	"github.com/sbilibin2017/notes-service/internal/logger"
)

// ErrSessionNotFound is returned when a token references a session that was
// never created or has been revoked or expired.
var ErrSessionNotFound = errors.New("session not found or revoked")

// rememberCookieMaxAge bounds the remember-me cookie lifetime on the client.
// The session itself lives in Redis until logout.
const rememberCookieMaxAge = 365 * 24 * time.Hour

// Store keeps sessions in Redis keyed by session id.
type Store struct {
	client *redis.Client
	jwt    *jwt.JWT
	ttl    time.Duration // session lifetime when remember is false
}

// New creates a session store. ttl applies to sessions created without the
// remember flag; remembered sessions are stored without expiration.
func New(client *redis.Client, j *jwt.JWT, ttl time.Duration) *Store {
	return &Store{
		client: client,
		jwt:    j,
		ttl:    ttl,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Create registers a new session for the user and returns its signed token.
// remember=true keeps the session alive until explicit logout; otherwise the
// session expires after the configured ttl.
func (s *Store) Create(ctx context.Context, userID uuid.UUID, remember bool) (string, error) {
	sessionID := uuid.NewString()

	ttl := s.ttl
	if remember {
		ttl = 0 // no expiration, revoked only by Destroy
	}

	token, err := s.jwt.Generate(ctx, userID, sessionID, ttl)
	if err != nil {
		return "", err
	}

	key := sessionKey(sessionID)
	err = s.client.Set(ctx, key, userID.String(), ttl).Err()

	logger.Log.Infow(
		"key", key,
		"remember", remember,
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return token, nil
}

// Resolve validates the token and returns the user id of the live session
// it references. A revoked or expired session yields ErrSessionNotFound.
func (s *Store) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	claims, err := s.jwt.GetClaims(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}

	key := sessionKey(claims.SessionID)
	val, err := s.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return uuid.Nil, ErrSessionNotFound
		}
		return uuid.Nil, err
	}

	// The stored user id must match the token claim
	if val != claims.UserID.String() {
		return uuid.Nil, ErrSessionNotFound
	}

	return claims.UserID, nil
}

// Destroy revokes the session referenced by the token. Destroying an already
// revoked session is not an error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	claims, err := s.jwt.GetClaims(ctx, token)
	if err != nil {
		return err
	}

	key := sessionKey(claims.SessionID)
	err = s.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	return err
}

// GetTokenFromRequest extracts the session token from the request.
func (s *Store) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return s.jwt.GetTokenFromRequest(ctx, r)
}

// Cookie builds the session cookie for a freshly issued token.
// remember=true makes the cookie persistent; otherwise it is a browser-session
// cookie that disappears when the client closes.
func Cookie(token string, remember bool) *http.Cookie {
	c := &http.Cookie{
		Name:     jwt.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if remember {
		c.MaxAge = int(rememberCookieMaxAge.Seconds())
	}
	return c
}

// ExpiredCookie builds a cookie that clears the session token on the client.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     jwt.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
