package mock

import (
	"context"

	"github.com/fwojciec/context7"
)

var _ context7.Session = (*Session)(nil)

// Session is a mock implementation of context7.Session.
type Session struct {
	ResolveLibraryIDFn func(ctx context.Context, name string) (any, error)
	GetLibraryDocsFn   func(ctx context.Context, req context7.DocsRequest) (any, error)
	ListToolsFn        func(ctx context.Context) ([]any, error)
	CloseFn            func() error
}

func (s *Session) ResolveLibraryID(ctx context.Context, name string) (any, error) {
	return s.ResolveLibraryIDFn(ctx, name)
}

func (s *Session) GetLibraryDocs(ctx context.Context, req context7.DocsRequest) (any, error) {
	return s.GetLibraryDocsFn(ctx, req)
}

func (s *Session) ListTools(ctx context.Context) ([]any, error) {
	return s.ListToolsFn(ctx)
}

// Close calls CloseFn when set and otherwise succeeds, so tests that do
// not care about teardown need not stub it.
func (s *Session) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

var _ context7.Dialer = (*Dialer)(nil)

// Dialer is a mock implementation of context7.Dialer.
type Dialer struct {
	DialFn func(ctx context.Context) (context7.Session, error)
}

func (d *Dialer) Dial(ctx context.Context) (context7.Session, error) {
	return d.DialFn(ctx)
}
