package app

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrAuthentication = errors.New("authentication failed")
)

type Service struct {
	store     CredentialStore
	adminPass string
}

func NewService(store CredentialStore, adminPass string) *Service {
	return &Service{store: store, adminPass: adminPass}
}

// Register appends a credential pair. Duplicate usernames are allowed. The
// store format is whitespace-separated, so neither field may be empty or
// contain whitespace.
func (s *Service) Register(ctx context.Context, username, password string) error {
	if !validField(username) || !validField(password) {
		return ErrInvalidInput
	}
	return s.store.Append(ctx, username, password)
}

// Login succeeds when some stored pair matches both fields exactly.
func (s *Service) Login(ctx context.Context, username, password string) error {
	ok, err := s.store.Match(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAuthentication
	}
	return nil
}

// VerifyAdmin gates the admin menu with the configured shared password.
func (s *Service) VerifyAdmin(password string) error {
	if password != s.adminPass {
		return ErrAuthentication
	}
	return nil
}

func validField(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t\r\n")
}
