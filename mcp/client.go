// Package mcp talks to the Context7 MCP server using the Model Context
// Protocol Go SDK. The server runs as a subprocess speaking MCP over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fwojciec/context7"
	"github.com/mattn/go-shellwords"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Ensure Client implements context7.Session at compile time.
var _ context7.Session = (*Client)(nil)

// Client is a scoped connection to the Context7 MCP server.
// Open must succeed before any other method is used, and Close must be
// called once the Client is no longer needed. Client is not safe for
// concurrent use.
type Client struct {
	apiKey        string
	serverCommand string
	transport     mcp.Transport
	stderr        io.Writer

	session *mcp.ClientSession
}

// Option configures a Client.
type Option func(*Client)

// WithTransport connects over t instead of launching the server command.
func WithTransport(t mcp.Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithStderr forwards the server subprocess's stderr to w.
func WithStderr(w io.Writer) Option {
	return func(c *Client) {
		c.stderr = w
	}
}

// NewClient returns a Client for the given API key and server command.
// An empty apiKey falls back to the CONTEXT7_API_KEY environment variable.
// An empty serverCommand launches the published server with DefaultArgs.
func NewClient(apiKey, serverCommand string, opts ...Option) *Client {
	if apiKey == "" {
		apiKey = os.Getenv(context7.APIKeyEnv)
	}
	c := &Client{
		apiKey:        apiKey,
		serverCommand: serverCommand,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultArgs returns the program and arguments of the published server.
// apiKey is passed as a single argument, never re-parsed.
func DefaultArgs(apiKey string) []string {
	args := strings.Fields(context7.DefaultServerCommand)
	if apiKey != "" {
		args = append(args, "--api-key", apiKey)
	}
	return args
}

// ParseCommand splits a user-supplied launch command into program and
// arguments using shell quoting rules. Environment variables are expanded.
func ParseCommand(line string) ([]string, error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = true
	args, err := parser.Parse(line)
	if err != nil {
		return nil, context7.Errorf(context7.EINVALID, "invalid server command %q: %s", line, err)
	}
	if len(args) == 0 {
		return nil, context7.Errorf(context7.EINVALID, "server command is empty")
	}
	return args, nil
}

// APIKey returns the resolved API key.
func (c *Client) APIKey() string {
	return c.apiKey
}

// ServerCommand returns the launch command for display. The API key is
// never included.
func (c *Client) ServerCommand() string {
	if c.serverCommand == "" {
		return context7.DefaultServerCommand
	}
	return c.serverCommand
}

// Args returns the program and arguments used to launch the server.
func (c *Client) Args() ([]string, error) {
	if c.serverCommand == "" {
		return DefaultArgs(c.apiKey), nil
	}
	return ParseCommand(c.serverCommand)
}

// Open launches the server and establishes an MCP session.
func (c *Client) Open(ctx context.Context) error {
	if c.session != nil {
		return context7.Errorf(context7.ECONFLICT, "client already connected")
	}

	transport := c.transport
	if transport == nil {
		args, err := c.Args()
		if err != nil {
			return err
		}
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stderr = c.stderr
		transport = &mcp.CommandTransport{Command: cmd}
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "c7", Version: context7.Version}, nil)
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to MCP server %q: %w", c.ServerCommand(), err)
	}
	c.session = session
	return nil
}

// Close ends the session and stops the server subprocess.
// Close is a no-op on a Client that is not connected.
func (c *Client) Close() error {
	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

// ResolveLibraryID calls resolve-library-id for name and returns the
// decoded result unmodified.
func (c *Client) ResolveLibraryID(ctx context.Context, name string) (any, error) {
	if c.session == nil {
		return nil, errNotConnected()
	}
	return c.callTool(ctx, context7.ToolResolveLibraryID, map[string]any{"libraryName": name})
}

// GetLibraryDocs calls get-library-docs, resolving req.LibraryName first
// when no library ID is given.
func (c *Client) GetLibraryDocs(ctx context.Context, req context7.DocsRequest) (any, error) {
	if c.session == nil {
		return nil, errNotConnected()
	}

	libraryID := req.LibraryID
	if libraryID == "" && req.LibraryName != "" {
		resolved, err := c.ResolveLibraryID(ctx, req.LibraryName)
		if err != nil {
			return nil, err
		}
		id, ok := context7.ResolvedLibraryID(resolved)
		if !ok {
			return nil, context7.Errorf(context7.EINVALID, "could not resolve library name: %s", req.LibraryName)
		}
		libraryID = id
	}

	if libraryID == "" {
		return nil, context7.Errorf(context7.EINVALID, "either library ID or library name must be provided")
	}

	return c.callTool(ctx, context7.ToolGetLibraryDocs, docsArguments(libraryID, req.Query))
}

// ListTools returns every tool the server advertises, following pagination.
func (c *Client) ListTools(ctx context.Context) ([]any, error) {
	if c.session == nil {
		return nil, errNotConnected()
	}

	var tools []any
	params := &mcp.ListToolsParams{}
	for {
		res, err := c.session.ListTools(ctx, params)
		if err != nil {
			return nil, err
		}
		for _, tool := range res.Tools {
			p, err := normalize(tool)
			if err != nil {
				return nil, err
			}
			tools = append(tools, p)
		}
		if res.NextCursor == "" {
			return tools, nil
		}
		params = &mcp.ListToolsParams{Cursor: res.NextCursor}
	}
}

func (c *Client) callTool(ctx context.Context, name string, args map[string]any) (any, error) {
	res, err := c.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return nil, err
	}
	return DecodeResult(res)
}

func docsArguments(libraryID, query string) map[string]any {
	args := map[string]any{"libraryId": libraryID}
	if query != "" {
		args["query"] = query
	}
	return args
}

func errNotConnected() error {
	return context7.Errorf(context7.EINTERNAL, "client not connected: call Open first")
}

// DecodeResult converts a tool result into an untyped payload.
// Structured content wins; otherwise text blocks are joined and decoded as
// JSON when they hold an object or array, or wrapped as {"content": text}.
// A result flagged as an error becomes a Go error carrying its text.
func DecodeResult(res *mcp.CallToolResult) (any, error) {
	text := joinText(res.Content)

	if res.IsError {
		if text == "" {
			text = "tool call failed"
		}
		return nil, errors.New(text)
	}

	if res.StructuredContent != nil {
		return normalize(res.StructuredContent)
	}

	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var v any
		if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
			return v, nil
		}
	}
	return map[string]any{"content": text}, nil
}

func joinText(content []mcp.Content) string {
	var parts []string
	for _, c := range content {
		if tc, ok := c.(*mcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// normalize round-trips v through JSON so payloads only hold plain maps,
// slices and scalars.
func normalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return out, nil
}
