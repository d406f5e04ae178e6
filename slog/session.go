package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/context7"
)

// Ensure LoggingDialer implements context7.Dialer.
var _ context7.Dialer = (*LoggingDialer)(nil)

// LoggingDialer wraps a Dialer with debug logging. Sessions it returns are
// wrapped in LoggingSession.
type LoggingDialer struct {
	next   context7.Dialer
	logger *slog.Logger
}

// NewLoggingDialer creates a new LoggingDialer.
func NewLoggingDialer(next context7.Dialer, logger *slog.Logger) *LoggingDialer {
	return &LoggingDialer{next: next, logger: logger}
}

// Dial delegates to the wrapped dialer and logs the connection attempt.
func (d *LoggingDialer) Dial(ctx context.Context) (_ context7.Session, err error) {
	defer func(begin time.Time) {
		d.logger.Debug("dial",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	session, err := d.next.Dial(ctx)
	if err != nil {
		return nil, err
	}
	return NewLoggingSession(session, d.logger), nil
}

// Ensure LoggingSession implements context7.Session.
var _ context7.Session = (*LoggingSession)(nil)

// LoggingSession wraps a Session with debug logging.
type LoggingSession struct {
	next   context7.Session
	logger *slog.Logger
}

// NewLoggingSession creates a new LoggingSession.
func NewLoggingSession(next context7.Session, logger *slog.Logger) *LoggingSession {
	return &LoggingSession{next: next, logger: logger}
}

// ResolveLibraryID logs the library name and delegates to the wrapped session.
func (s *LoggingSession) ResolveLibraryID(ctx context.Context, name string) (result any, err error) {
	defer func(begin time.Time) {
		id, _ := context7.ResolvedLibraryID(result)
		s.logger.Debug("resolve",
			"library", name,
			"libraryId", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ResolveLibraryID(ctx, name)
}

// GetLibraryDocs logs the request and delegates to the wrapped session.
func (s *LoggingSession) GetLibraryDocs(ctx context.Context, req context7.DocsRequest) (result any, err error) {
	defer func(begin time.Time) {
		bytes := 0
		if err == nil {
			bytes = len(context7.Content(result))
		}
		s.logger.Debug("docs",
			"library", req.Library(),
			"query", req.Query,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GetLibraryDocs(ctx, req)
}

// ListTools logs the number of tools and delegates to the wrapped session.
func (s *LoggingSession) ListTools(ctx context.Context) (tools []any, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("tools",
			"count", len(tools),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListTools(ctx)
}

// Close logs session teardown and delegates to the wrapped session.
func (s *LoggingSession) Close() (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("close",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Close()
}
