package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
	"github.com/sbilibin2017/gw-health-tracker/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrMissingCredentials = errors.New("missing username or password")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (int64, error)
}

// SessionStore binds session ids to user ids.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, userID int64) error
	Get(ctx context.Context, sessionID string) (int64, error)
	Delete(ctx context.Context, sessionID string) error
}

// TokenIssuer signs and parses session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID int64, username, sessionID string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles registration, login and sessions.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
	tokens   TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStore, tokens TokenIssuer) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareWithDummyHash spends the same bcrypt work for unknown usernames
// as for known ones.
func compareWithDummyHash(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Register creates a new user with a bcrypt-hashed password.
// Surrounding whitespace is stripped from the username before it is stored.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.UserDB, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Infow("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	id, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrUserConflict) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &models.UserDB{ID: id, Username: username, PasswordHash: string(hashedPassword)}, nil
}

// Verify checks the credentials. Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (svc *AuthService) Verify(ctx context.Context, username, password string) (*models.UserDB, error) {
	username = strings.TrimSpace(username)
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		compareWithDummyHash(password)
		logger.Log.Infow("login failed", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login failed", "username", username)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login verifies the credentials, opens a session and returns its signed token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.Verify(ctx, username, password)
	if err != nil {
		return "", err
	}

	sessionID := uuid.NewString()
	if err := svc.sessions.Save(ctx, sessionID, user.ID); err != nil {
		logger.Log.Errorw("failed to save session", "userID", user.ID, "err", err)
		return "", err
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Username, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	return token, nil
}

// Authenticate resolves a session token into the session it belongs to.
// Invalid or expired tokens and closed sessions yield ErrUnauthenticated.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Infow("invalid session token", "err", err)
		return nil, ErrUnauthenticated
	}

	userID, err := svc.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		logger.Log.Errorw("failed to load session", "sessionID", claims.SessionID, "err", err)
		return nil, err
	}
	if userID != claims.UserID {
		logger.Log.Warnw("session bound to another user", "sessionID", claims.SessionID)
		return nil, ErrUnauthenticated
	}

	return &models.Session{ID: claims.SessionID, UserID: userID, Username: claims.Username}, nil
}

// Logout closes the session.
func (svc *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := svc.sessions.Delete(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "sessionID", sessionID, "err", err)
		return err
	}
	return nil
}

// ListUsers returns every registered user.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}
