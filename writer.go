package context7

import "context"

// DocsWriter saves fetched documentation.
type DocsWriter interface {
	// WriteDocs stores content for the named library and returns the
	// location it was written to.
	WriteDocs(ctx context.Context, library string, content string) (string, error)
}

// Limiter paces successive requests to the documentation service.
type Limiter interface {
	// Wait blocks until the next request may proceed.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context) error
}
