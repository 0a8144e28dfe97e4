package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage keys shared with the web client.
const (
	KeyUser  = "fitapp_user"
	KeyAdmin = "adminAuth"
)

// Demo credentials accepted by the consumer and admin logins.
const (
	DemoEmail     = "demo@fitapp.com"
	DemoPassword  = "123456"
	AdminEmail    = "admin@fitapp.com"
	AdminPassword = "admin123"
)

const minPasswordLen = 6

var (
	// ErrInvalidCredentials is a plain mismatch against the demo credentials.
	ErrInvalidCredentials = errors.New("email ou senha incorretos")
	ErrInvalidInput       = errors.New("invalid registration data")
)

// User is the session object kept under KeyUser.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	XP          int       `json:"xp"`
	Level       int       `json:"level"`
	MemberSince time.Time `json:"memberSince"`
}

// Admin is the session object kept under KeyAdmin.
type Admin struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Storage is the subset of a localStorage-like store sessions need.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// Service handles the consumer and admin sessions.
type Service struct {
	store Storage
	now   func() time.Time
}

// NewService returns an auth service backed by store.
func NewService(store Storage, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Login checks the demo credentials and stores the demo user.
func (s *Service) Login(email, password string) (User, error) {
	if normalizeEmail(email) != DemoEmail || password != DemoPassword {
		return User{}, ErrInvalidCredentials
	}
	u := User{
		ID:          uuid.NewString(),
		Name:        "Usuário Demo",
		Email:       DemoEmail,
		XP:          2450,
		Level:       12,
		MemberSince: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	return u, s.write(KeyUser, u)
}

// Register creates a fresh level 1 user and stores it as the session.
func (s *Service) Register(name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" {
		return User{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return User{}, fmt.Errorf("%w: invalid email %q", ErrInvalidInput, email)
	}
	if len(password) < minPasswordLen {
		return User{}, fmt.Errorf("%w: password must have at least %d characters", ErrInvalidInput, minPasswordLen)
	}
	u := User{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Level:       1,
		MemberSince: s.now(),
	}
	return u, s.write(KeyUser, u)
}

// Logout clears the consumer session.
func (s *Service) Logout() error {
	return s.store.RemoveItem(KeyUser)
}

// CurrentUser returns the stored user; false when logged out or the value is corrupt.
func (s *Service) CurrentUser() (User, bool, error) {
	var u User
	ok, err := s.read(KeyUser, &u)
	if !ok || err != nil || u.Email == "" {
		return User{}, false, err
	}
	return u, true, nil
}

// AdminLogin checks the admin credentials and stores the admin session.
func (s *Service) AdminLogin(email, password string) (Admin, error) {
	if normalizeEmail(email) != AdminEmail || password != AdminPassword {
		return Admin{}, ErrInvalidCredentials
	}
	a := Admin{Email: AdminEmail, Role: "admin"}
	return a, s.write(KeyAdmin, a)
}

// AdminLogout clears the admin session.
func (s *Service) AdminLogout() error {
	return s.store.RemoveItem(KeyAdmin)
}

// CurrentAdmin returns the stored admin session, if any.
func (s *Service) CurrentAdmin() (Admin, bool, error) {
	var a Admin
	ok, err := s.read(KeyAdmin, &a)
	if !ok || err != nil || a.Role != "admin" {
		return Admin{}, false, err
	}
	return a, true, nil
}

func (s *Service) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.SetItem(key, string(data))
}

// read reports false without error for corrupt values.
func (s *Service) read(key string, v any) (bool, error) {
	raw, ok, err := s.store.GetItem(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, nil
	}
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
