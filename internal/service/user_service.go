package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"estate-catalog/internal/domain"
	"estate-catalog/internal/repository"
)

var (
	// ErrDuplicateUser is returned when registering an already-taken username.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// session is persisted as a bare username reference. The role is re-resolved
// against the live registry on every use, so a session survives credential and
// role edits and picks up the new role.
type session struct {
	Username string `json:"username"`
}

// UserService keeps the user registry and the single active session, each
// under its own storage key.
type UserService struct {
	binding repository.Binding
	logger  *logrus.Logger
	users   []domain.User
	session *session
}

// NewUserService loads the registry and session. On first run the registry is
// seeded with a single admin account.
func NewUserService(ctx context.Context, binding repository.Binding, logger *logrus.Logger, adminUsername, adminCredential string) *UserService {
	seed := []domain.User{{
		Username:   adminUsername,
		Credential: adminCredential,
		Role:       domain.RoleAdmin,
	}}
	return &UserService{
		binding: binding,
		logger:  logger,
		users:   repository.Load(ctx, logger, binding, keyUsers, seed),
		session: repository.Load[*session](ctx, logger, binding, keySession, nil),
	}
}

// Register appends a new account with role user. Usernames are unique under
// case-sensitive exact match.
func (s *UserService) Register(ctx context.Context, username, credential string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username is required")
	}
	if credential == "" {
		return errors.New("credential is required")
	}

	for _, u := range s.users {
		if u.Username == username {
			return ErrDuplicateUser
		}
	}

	s.users = append(s.users, domain.User{
		Username:   username,
		Credential: credential,
		Role:       domain.RoleUser,
	})
	repository.Save(ctx, s.logger, s.binding, keyUsers, s.users)
	s.logger.WithField("username", username).Debug("user registered")
	return nil
}

// Login binds the session to the account matching both username and
// credential exactly. On failure the session is left unchanged.
func (s *UserService) Login(ctx context.Context, username, credential string) error {
	for _, u := range s.users {
		if u.Username == username && u.Credential == credential {
			s.session = &session{Username: username}
			s.persistSession(ctx)
			return nil
		}
	}
	return ErrInvalidCredentials
}

// Logout clears the session unconditionally.
func (s *UserService) Logout(ctx context.Context) {
	s.session = nil
	s.persistSession(ctx)
}

// CurrentRole resolves the session against the live registry. Absent or
// dangling sessions read as anonymous.
func (s *UserService) CurrentRole() domain.Role {
	if s.session == nil {
		return domain.RoleAnonymous
	}
	for _, u := range s.users {
		if u.Username == s.session.Username {
			return u.Role
		}
	}
	return domain.RoleAnonymous
}

// CurrentUsername returns the session's username, empty when anonymous.
func (s *UserService) CurrentUsername() string {
	if s.session == nil {
		return ""
	}
	return s.session.Username
}

func (s *UserService) persistSession(ctx context.Context) {
	repository.Save(ctx, s.logger, s.binding, keySession, s.session)
}
