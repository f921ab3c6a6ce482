package service

import (
	"context"
	"errors"
	"strings"

	"bookstore/internal/domain"
	"bookstore/internal/repository"
)

var (
	// ErrMissingCredentials indicates username or password was absent on registration.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrUserAlreadyExists is returned when the chosen username is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUnknownUsername indicates no account matches the submitted username.
	// Kept distinct from ErrWrongPassword: the login contract exposes which
	// half of the credential pair failed, enumeration side channel included.
	ErrUnknownUsername = errors.New("unknown username")
	// ErrWrongPassword indicates the account exists but the password did not verify.
	ErrWrongPassword = errors.New("wrong password")
	// ErrMissingFields indicates a required field was absent on an admin insert.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidRole is returned when a role outside the accepted set is submitted.
	ErrInvalidRole = errors.New("invalid role")
	// ErrUserNotFound indicates the referenced user id does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// UserService covers registration, login and the admin user management surface.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Search(ctx context.Context, term string) ([]domain.User, error)
	CreateUser(ctx context.Context, username, email, password, role string) (int64, error)
	UpdateUser(ctx context.Context, id int64, username, email, role string) error
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	users  repository.UserRepository
	hasher PasswordHasher
}

func NewUserService(users repository.UserRepository, hasher PasswordHasher) UserService {
	return &userService{
		users:  users,
		hasher: hasher,
	}
}

func (s *userService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Email:        optionalEmail(email),
		Role:         domain.RoleUser,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "already exists") {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, ErrUnknownUsername
		}
		return nil, err
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}

	return sanitizeUser(user), nil
}

func (s *userService) Search(ctx context.Context, term string) ([]domain.User, error) {
	users, err := s.users.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// CreateUser is the admin insert path. It hashes the password like Register
// does and rejects roles outside the accepted set.
func (s *userService) CreateUser(ctx context.Context, username, email, password, role string) (int64, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return 0, ErrMissingFields
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return 0, ErrInvalidRole
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Email:        &email,
		Role:         role,
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "already exists") {
			return 0, ErrUserAlreadyExists
		}
		return 0, err
	}
	return id, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, username, email, role string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrMissingFields
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return ErrInvalidRole
	}

	if err := s.users.Update(ctx, id, username, optionalEmail(email), role); err != nil {
		switch {
		case strings.Contains(strings.ToLower(err.Error()), "not found"):
			return ErrUserNotFound
		case strings.Contains(strings.ToLower(err.Error()), "already exists"):
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func optionalEmail(email string) *string {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	return &email
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
