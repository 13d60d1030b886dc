package sessions

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"resume-review/internal/shared/auth"
	"resume-review/internal/users"
)

var ErrInvalidCredentials = errInvalidCredentials{}

type errInvalidCredentials struct{}

func (errInvalidCredentials) Error() string { return "invalid email or password" }

var ErrWeakPassword = errWeakPassword{}

type errWeakPassword struct{}

func (errWeakPassword) Error() string { return "password must be at least 8 characters" }

var ErrInvalidEmail = errInvalidEmail{}

type errInvalidEmail struct{}

func (errInvalidEmail) Error() string { return "a valid email address is required" }

const minPasswordLength = 8

// State is the current session snapshot delivered to observers.
type State struct {
	Authenticated bool
	User          users.User
}

// Service issues and verifies sessions backed by the users repo. It also
// fans out sign-in and sign-out transitions to registered observers.
type Service struct {
	Users users.Repo

	mu        sync.Mutex
	state     State
	observers map[int]func(State)
	nextObs   int
}

func NewService(repo users.Repo) *Service {
	return &Service{Users: repo, observers: make(map[int]func(State))}
}

type Session struct {
	Token string
	User  users.User
}

// Signup registers a new account and signs the user in.
func (s *Service) Signup(ctx context.Context, email, password string) (Session, error) {
	email = NormalizeEmail(email)
	if !strings.Contains(email, "@") {
		return Session{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return Session{}, ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, err
	}
	user, err := s.Users.Create(ctx, users.User{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return Session{}, err
	}
	return s.open(user)
}

// Login verifies credentials and signs the user in. A missing account and a
// wrong password both return ErrInvalidCredentials so callers cannot probe
// which emails are registered.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = NormalizeEmail(email)
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.open(user)
}

// Logout clears the session state and notifies observers. Issued tokens stay
// valid until they expire; the server keeps no revocation list.
func (s *Service) Logout() {
	s.setState(State{})
}

// Current returns the latest session state seen by this process.
func (s *Service) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Observe registers fn for session transitions. fn is called immediately with
// the current state, then once per subsequent transition until the returned
// unsubscribe function is called.
func (s *Service) Observe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	current := s.state
	s.mu.Unlock()

	fn(current)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Service) open(user users.User) (Session, error) {
	token, err := auth.SignToken(auth.Claims{UserID: user.ID, Email: user.Email})
	if err != nil {
		return Session{}, err
	}
	s.setState(State{Authenticated: true, User: user})
	return Session{Token: token, User: user}, nil
}

func (s *Service) setState(state State) {
	s.mu.Lock()
	s.state = state
	fns := make([]func(State), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

// NormalizeEmail lowercases and trims an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
