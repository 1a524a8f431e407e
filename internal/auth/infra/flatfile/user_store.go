// Package flatfile keeps user credentials as one "username password" line
// per registration, appended on success and scanned linearly on login.
package flatfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

type UserStore struct {
	path string
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

func (s *UserStore) Append(ctx context.Context, username, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s %s\n", username, password); err != nil {
		return fmt.Errorf("append user: %w", err)
	}
	return nil
}

// Match reports whether any stored pair equals both fields exactly. A missing
// file is an empty store, not an error.
func (s *UserStore) Match(ctx context.Context, username, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		if fields[0] == username && fields[1] == password {
			return true, nil
		}
	}
	if err := sc.Err(); err != nil {
		return false, fmt.Errorf("read users file: %w", err)
	}
	return false, nil
}
