package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"family_tasks/internal/domain"
	"family_tasks/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// UserStore is the part of the storage layer the auth service needs.
type UserStore interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error)
}

// Session is an established login: the signed token plus its expiry.
type Session struct {
	ID        string
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	users    UserStore
	sessions SessionStore
	tokens   *TokenSigner
	ttl      time.Duration
	cost     int
}

func NewAuthService(users UserStore, sessions SessionStore, tokens *TokenSigner, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		ttl:      ttl,
		cost:     bcrypt.DefaultCost,
	}
}

// CreateUser hashes the password and stores the account without opening a session.
func (s *AuthService) CreateUser(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.users.CreateUser(ctx, domain.NewUser{Username: creds.Username, PasswordHash: string(hash)})
}

func (s *AuthService) Register(ctx context.Context, creds domain.Credentials) (*domain.User, *Session, error) {
	u, err := s.CreateUser(ctx, creds)
	if err != nil {
		return nil, nil, err
	}
	sess, err := s.open(ctx, u.ID)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("user registered", "user_id", u.ID, "username", u.Username)
	return u, sess, nil
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.User, *Session, error) {
	u, err := s.users.GetUserByUsername(ctx, creds.Username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds.Password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := s.open(ctx, u.ID)
	if err != nil {
		return nil, nil, err
	}
	return u, sess, nil
}

// Authenticate verifies the token signature, then the server-side session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*TokenClaims, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	userID, err := s.sessions.Lookup(ctx, claims.SessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if userID != claims.UserID {
		return nil, ErrUnauthorized
	}
	return &claims, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetUser(ctx, userID)
}

func (s *AuthService) open(ctx context.Context, userID int64) (*Session, error) {
	sid, err := s.sessions.Create(ctx, userID, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	token, err := s.tokens.Sign(sid, userID, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}
	return &Session{ID: sid, UserID: userID, Token: token, ExpiresAt: s.tokens.now().Add(s.ttl)}, nil
}
