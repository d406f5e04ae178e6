package mock

import (
	"context"

	"github.com/fwojciec/context7"
)

var _ context7.DocsWriter = (*DocsWriter)(nil)

// DocsWriter is a mock implementation of context7.DocsWriter.
type DocsWriter struct {
	WriteDocsFn func(ctx context.Context, library, content string) (string, error)
}

func (w *DocsWriter) WriteDocs(ctx context.Context, library, content string) (string, error) {
	return w.WriteDocsFn(ctx, library, content)
}

var _ context7.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of context7.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
