package mcp

import (
	"context"
	"io"

	"github.com/fwojciec/context7"
)

// Ensure Dialer implements context7.Dialer at compile time.
var _ context7.Dialer = (*Dialer)(nil)

// Dialer opens Client sessions from a context7.Config.
type Dialer struct {
	Config context7.Config

	// Stderr receives the server subprocess's stderr. Nil discards it.
	Stderr io.Writer

	// Options are applied to every Client after Stderr.
	Options []Option
}

// NewDialer returns a Dialer for cfg.
func NewDialer(cfg context7.Config) *Dialer {
	return &Dialer{Config: cfg}
}

// Dial opens a new session. The caller owns the session and must Close it.
func (d *Dialer) Dial(ctx context.Context) (context7.Session, error) {
	opts := []Option{WithStderr(d.Stderr)}
	opts = append(opts, d.Options...)

	client := NewClient(d.Config.APIKey, d.Config.ServerCommand, opts...)
	if err := client.Open(ctx); err != nil {
		return nil, err
	}
	return client, nil
}
