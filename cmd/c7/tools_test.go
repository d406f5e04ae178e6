package main_test

import (
	"context"
	"errors"
	"testing"

	main "github.com/fwojciec/context7/cmd/c7"
	"github.com/fwojciec/context7/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints tool table", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{
			ListToolsFn: func(_ context.Context) ([]any, error) {
				return []any{
					map[string]any{"name": "resolve-library-id", "description": "Resolves a package name"},
					map[string]any{"name": "get-library-docs", "description": "Fetches documentation"},
				}, nil
			},
		}
		deps, stdout, _ := testDeps(session)

		err := (&main.ToolsCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Available Context7 MCP Tools")
		assert.True(t, hasLine(t, output, "Tool Name", "Description"), output)
		assert.True(t, hasLine(t, output, "resolve-library-id", "Resolves a package name"), output)
		assert.True(t, hasLine(t, output, "get-library-docs", "Fetches documentation"), output)
	})

	t.Run("substitutes missing fields", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{
			ListToolsFn: func(_ context.Context) ([]any, error) {
				return []any{
					map[string]any{"inputSchema": map[string]any{"type": "object"}},
					"bare-tool",
				}, nil
			},
		}
		deps, stdout, _ := testDeps(session)

		err := (&main.ToolsCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.True(t, hasLine(t, output, "Unknown", "No description"), output)
		assert.True(t, hasLine(t, output, "bare-tool"), output)
	})

	t.Run("returns list error", func(t *testing.T) {
		t.Parallel()

		closed := false
		session := &mock.Session{
			ListToolsFn: func(_ context.Context) ([]any, error) {
				return nil, errors.New("connection closed")
			},
			CloseFn: trackClose(&closed),
		}
		deps, _, _ := testDeps(session)

		err := (&main.ToolsCmd{}).Run(deps)

		require.Error(t, err)
		assert.True(t, closed)
	})
}
