package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/bookshop-service/internal/auth"
	"github.com/spec-kit/bookshop-service/internal/config"
	"github.com/spec-kit/bookshop-service/internal/domain"
	"github.com/spec-kit/bookshop-service/internal/events"
	"github.com/spec-kit/bookshop-service/internal/repository"
	apperrors "github.com/spec-kit/bookshop-service/pkg/util/errorutil"
)

// Messages surfaced by registration and login.
const (
	MsgCredentialsRequired = "Username and password required"
	MsgUserExists          = "User already exists"
	MsgRegisterFailed      = "Error registering user"
	MsgInvalidCredentials  = "Invalid credentials"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	hasher     *auth.PasswordHasher
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger

	dummyOnce sync.Once
	dummyHash string
}

// AuthDependencies encapsulates requirements for auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		hasher:     auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Register creates a new identity with a bcrypt hashed password. Surrounding
// whitespace is stripped from the username; the password is used verbatim.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError(MsgCredentialsRequired, nil)
	}
	if s.users.Exists(ctx, username) {
		return nil, apperrors.NewConflict(MsgUserExists, nil)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperrors.NewInternalError(err, MsgRegisterFailed)
	}

	identity := &domain.Identity{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, identity); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, apperrors.NewConflict(MsgUserExists, nil)
		}
		return nil, apperrors.NewInternalError(err, MsgRegisterFailed)
	}

	s.publishEvent(ctx, events.Event{Type: events.EventUserRegistered, Actor: username})
	return identity, nil
}

// Login verifies credentials and issues a bearer token. Unknown users and wrong
// passwords fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Token, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, apperrors.NewValidationError(MsgCredentialsRequired, nil)
	}

	identity, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// unknown users still pay for one bcrypt comparison
			_ = s.hasher.Compare(s.dummy(), password)
			return "", nil, apperrors.NewUnauthorized(MsgInvalidCredentials)
		}
		return "", nil, apperrors.NewInternalError(err)
	}

	if err := s.hasher.Compare(identity.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return "", nil, apperrors.NewUnauthorized(MsgInvalidCredentials)
		}
		return "", nil, apperrors.NewInternalError(err)
	}

	token, meta, err := s.tokenMgr.GenerateToken(identity.Username)
	if err != nil {
		return "", nil, apperrors.NewInternalError(err)
	}
	return token, meta, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(uuid.NewString())
		if err != nil {
			s.logger.Warn("dummy hash generation failed", zap.Error(err))
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func (s *AuthService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
