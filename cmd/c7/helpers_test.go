package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/context7"
	main "github.com/fwojciec/context7/cmd/c7"
	"github.com/fwojciec/context7/lipgloss"
	"github.com/fwojciec/context7/mock"
)

// testDeps returns Dependencies writing plain text to the returned buffers.
func testDeps(session context7.Session) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: lipgloss.NewConsole(stdout),
		Stderr: lipgloss.NewConsole(stderr),
		Dialer: &mock.Dialer{
			DialFn: func(ctx context.Context) (context7.Session, error) {
				return session, nil
			},
		},
	}
	return deps, stdout, stderr
}

// trackClose returns a CloseFn that records it was called.
func trackClose(closed *bool) func() error {
	return func() error {
		*closed = true
		return nil
	}
}

// hasLine reports whether some line of s contains every part.
func hasLine(t *testing.T, s string, parts ...string) bool {
	t.Helper()
	for _, line := range strings.Split(s, "\n") {
		ok := true
		for _, p := range parts {
			if !strings.Contains(line, p) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
