package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/repository"
	"github.com/abdelrhman445/learn-video-vercel/pkg/helpers"
)

// AuthService implements registration, login and token resolution over the
// credential store.
type AuthService struct {
	Users    repository.UserRepository
	JWT      *helpers.JWTManager
	Activity *Recorder
	Logger   *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, activity *Recorder, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Activity: activity, Logger: logger}
}

// Session is a freshly issued token with its expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Register creates a new account with the base user role and issues a token.
// Emails are stored lowercased so uniqueness is case-insensitive.
func (s *AuthService) Register(ctx context.Context, name, email, password string, meta RequestMeta) (*entity.User, Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if existing, err := s.Users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, Session{}, ErrDuplicateEmail
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, Session{}, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, Session{}, err
	}
	u := &entity.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
		Active:       true,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		// Concurrent registration of the same email races past the lookup;
		// the unique index is the authority.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Session{}, ErrDuplicateEmail
		}
		return nil, Session{}, err
	}

	s.Activity.Record(ctx, u.ID, entity.ActionRegister, entity.TargetUser, map[string]any{"email": u.Email}, meta)

	sess, err := s.issue(u)
	if err != nil {
		return nil, Session{}, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	return u, sess, nil
}

// Login validates credentials and issues a token. Unknown email, deactivated
// account and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string, meta RequestMeta) (*entity.User, Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Session{}, ErrInvalidCredentials
		}
		return nil, Session{}, err
	}
	if !u.Active || !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, Session{}, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.Users.UpdateLastLogin(ctx, u.ID, now); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("last_login update failed")
	} else {
		u.LastLogin = &now
	}

	s.Activity.Record(ctx, u.ID, entity.ActionLogin, entity.TargetUser, map[string]any{"email": u.Email}, meta)

	sess, err := s.issue(u)
	if err != nil {
		return nil, Session{}, err
	}
	return u, sess, nil
}

// Authenticate resolves a bearer token to a live user. It loads the user on
// every call, so deactivating an account takes effect on the next request
// even while the token itself is still unexpired.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	uid, err := s.JWT.Verify(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	u, err := s.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !u.Active {
		return nil, ErrUnauthorized
	}
	return u, nil
}

func (s *AuthService) issue(u *entity.User) (Session, error) {
	token, exp, err := s.JWT.Issue(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token issue failed")
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: exp}, nil
}
