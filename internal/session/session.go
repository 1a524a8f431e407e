// Package session models the console session as an explicit state machine
// instead of nested menu loops, so Logout/Back/Exit semantics are testable
// without driving a console.
package session

import "errors"

type State int

const (
	LoggedOut State = iota
	UserSession
	AdminSession
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged-out"
	case UserSession:
		return "user"
	case AdminSession:
		return "admin"
	default:
		return "unknown"
	}
}

var ErrInvalidTransition = errors.New("invalid session transition")

// Session tracks who is interacting with the simulator. Exactly one session
// exists per process.
type Session struct {
	state State
	user  string
}

func New() *Session {
	return &Session{state: LoggedOut}
}

func (s *Session) State() State { return s.state }

// User returns the authenticated username; empty outside UserSession.
func (s *Session) User() string { return s.user }

func (s *Session) Login(username string) error {
	if s.state != LoggedOut {
		return ErrInvalidTransition
	}
	s.state = UserSession
	s.user = username
	return nil
}

func (s *Session) Logout() error {
	if s.state != UserSession {
		return ErrInvalidTransition
	}
	s.state = LoggedOut
	s.user = ""
	return nil
}

func (s *Session) EnterAdmin() error {
	if s.state != LoggedOut {
		return ErrInvalidTransition
	}
	s.state = AdminSession
	return nil
}

func (s *Session) LeaveAdmin() error {
	if s.state != AdminSession {
		return ErrInvalidTransition
	}
	s.state = LoggedOut
	return nil
}
