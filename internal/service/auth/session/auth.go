package session_auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/kinolog/core/internal/model"
)

// Session-token auth boundary. Real identity issuance lives outside this
// service; here a shared code plus a known user id is exchanged for a
// session token kept in the cache.

var (
	ErrWrongCode   = errors.New("wrong code")
	ErrUnknownUser = errors.New("unknown user")
	ErrNoSession   = errors.New("no active session")
	ErrInternal    = errors.New("internal error")
)

type SessionCache interface {
	Set(key string, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
}

type UserResolver interface {
	ByID(ctx context.Context, id model.UserID) (model.User, error)
}

type Service struct {
	secret       string
	sessionCache SessionCache
	users        UserResolver
	ttl          time.Duration
}

func New(
	secret string,
	sessionCache SessionCache,
	users UserResolver,
	ttl time.Duration,
) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Service{
		secret:       secret,
		sessionCache: sessionCache,
		users:        users,
		ttl:          ttl,
	}
}

func (s *Service) Start(ctx context.Context, code string, userID model.UserID) (string, error) {
	if code != s.secret {
		return "", ErrWrongCode
	}

	if _, err := s.users.ByID(ctx, userID); err != nil {
		return "", ErrUnknownUser
	}

	token := uuid.New().String()
	if err := s.sessionCache.Set(token, strconv.FormatInt(userID, 10), s.ttl); err != nil {
		return "", errors.Join(ErrInternal, err)
	}

	return token, nil
}

// Resolve maps a session token to the acting user id.
func (s *Service) Resolve(token string) (model.UserID, error) {
	if token == "" {
		return 0, ErrNoSession
	}

	val, err := s.sessionCache.Get(token)
	if err != nil {
		return 0, errors.Join(ErrInternal, err)
	}
	if val == "" {
		return 0, ErrNoSession
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, errors.Join(ErrInternal, err)
	}

	return userID, nil
}

func (s *Service) End(token string) error {
	if token == "" {
		return nil
	}
	return s.sessionCache.Delete(token)
}
