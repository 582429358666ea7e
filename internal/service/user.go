package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/repository"
)

// User service errors.
var (
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailInvalid       = errors.New("email format is invalid")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserService handles registration and login.
type UserService struct {
	users     UserStore
	jwtSecret []byte
	tokenTTL  time.Duration
	metrics   metrics.Recorder

	// dummyHash is verified against when the email is unknown so that
	// login latency does not reveal whether an account exists.
	dummyHash string
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, jwtSecret []byte, tokenTTL time.Duration, recorder metrics.Recorder) (*UserService, error) {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	dummyHash, err := auth.HashPassword("taskdeck-dummy-credential")
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}

	return &UserService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		metrics:   recorder,
		dummyHash: dummyHash,
	}, nil
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new user and immediately issues an identity token,
// so a fresh registration is logged in without a second round trip.
// The password is stored only as an argon2id hash.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	if input.Name == "" {
		return nil, "", ErrNameRequired
	}
	if input.Email == "" {
		return nil, "", ErrEmailRequired
	}
	if !emailRegex.MatchString(input.Email) {
		return nil, "", ErrEmailInvalid
	}
	if input.Password == "" {
		return nil, "", ErrPasswordRequired
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, "", ErrEmailExists
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := auth.IssueToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, token, nil
}

// Login verifies credentials and issues an identity token. Unknown email
// and wrong password both return ErrInvalidCredentials; a dummy hash is
// verified on the unknown-email path to keep the timing comparable.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_, _ = auth.VerifyPassword(password, s.dummyHash)
			s.metrics.IncLoginFailed()
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !match {
		s.metrics.IncLoginFailed()
		return "", ErrInvalidCredentials
	}

	token, err := auth.IssueToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncLoginSucceeded()

	return token, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}
