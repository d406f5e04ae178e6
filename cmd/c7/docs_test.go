package main_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/context7"
	main "github.com/fwojciec/context7/cmd/c7"
	"github.com/fwojciec/context7/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints content in panel", func(t *testing.T) {
		t.Parallel()

		closed := false
		session := &mock.Session{
			GetLibraryDocsFn: func(_ context.Context, req context7.DocsRequest) (any, error) {
				assert.Equal(t, context7.DocsRequest{LibraryName: "react"}, req)
				return map[string]any{"content": "useState lets you add state."}, nil
			},
			CloseFn: trackClose(&closed),
		}
		deps, stdout, _ := testDeps(session)

		cmd := &main.DocsCmd{LibraryName: "react"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "📚 Documentation: react")
		assert.True(t, hasLine(t, output, "│", "useState lets you add state."), output)
		assert.True(t, closed)
	})

	t.Run("passes library ID and query", func(t *testing.T) {
		t.Parallel()

		var got context7.DocsRequest
		session := &mock.Session{
			GetLibraryDocsFn: func(_ context.Context, req context7.DocsRequest) (any, error) {
				got = req
				return map[string]any{"content": "hooks"}, nil
			},
		}
		deps, stdout, _ := testDeps(session)

		cmd := &main.DocsCmd{LibraryID: "/vercel/next.js/v14", Query: "hooks"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, context7.DocsRequest{LibraryID: "/vercel/next.js/v14", Query: "hooks"}, got)
		assert.Contains(t, stdout.String(), "📚 Documentation: /vercel/next.js/v14")
	})

	t.Run("falls back to stringified result", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{
			GetLibraryDocsFn: func(_ context.Context, _ context7.DocsRequest) (any, error) {
				return map[string]any{"snippets": float64(3)}, nil
			},
		}
		deps, stdout, _ := testDeps(session)

		cmd := &main.DocsCmd{LibraryID: "/facebook/react"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `{"snippets":3}`)
	})

	t.Run("prints JSON with --json", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{
			GetLibraryDocsFn: func(_ context.Context, _ context7.DocsRequest) (any, error) {
				return map[string]any{"content": "docs"}, nil
			},
		}
		deps, stdout, _ := testDeps(session)

		cmd := &main.DocsCmd{LibraryID: "/facebook/react", JSON: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "{\n  \"content\": \"docs\"\n}\n", stdout.String())
	})

	t.Run("writes content to output file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "react-docs.txt")
		require.NoError(t, os.WriteFile(path, []byte("stale content from an earlier run"), 0644))
		session := &mock.Session{
			GetLibraryDocsFn: func(_ context.Context, _ context7.DocsRequest) (any, error) {
				return map[string]any{"content": "# React\n\nFresh docs.", "tokens": float64(42)}, nil
			},
		}
		deps, stdout, _ := testDeps(session)

		cmd := &main.DocsCmd{LibraryName: "react", Output: path}
		err := cmd.Run(deps)

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# React\n\nFresh docs.", string(content))
		assert.Equal(t, "Documentation saved to: "+path+"\n", stdout.String())
	})

	t.Run("writes JSON to output file with --json", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "react-docs.json")
		session := &mock.Session{
			GetLibraryDocsFn: func(_ context.Context, _ context7.DocsRequest) (any, error) {
				return map[string]any{"content": "docs"}, nil
			},
		}
		deps, stdout, _ := testDeps(session)

		cmd := &main.DocsCmd{LibraryName: "react", Output: path, JSON: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"content\": \"docs\"\n}", string(content))
		assert.Contains(t, stdout.String(), path)
	})

	t.Run("requires library name or ID without dialing", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(nil)
		deps.Dialer = &mock.Dialer{
			DialFn: func(ctx context.Context) (context7.Session, error) {
				t.Fatal("Dial should not be called")
				return nil, nil
			},
		}

		cmd := &main.DocsCmd{Query: "hooks"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, context7.EINVALID, context7.ErrorCode(err))
		assert.Contains(t, context7.ErrorMessage(err), "--library-id")
	})

	t.Run("returns resolution error", func(t *testing.T) {
		t.Parallel()

		closed := false
		session := &mock.Session{
			GetLibraryDocsFn: func(_ context.Context, req context7.DocsRequest) (any, error) {
				return nil, context7.Errorf(context7.EINVALID, "could not resolve library name: %s", req.LibraryName)
			},
			CloseFn: trackClose(&closed),
		}
		deps, _, _ := testDeps(session)

		cmd := &main.DocsCmd{LibraryName: "nonexistent-lib"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, context7.ErrorMessage(err), "nonexistent-lib")
		assert.True(t, closed)
	})
}
