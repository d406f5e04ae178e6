package context7

import (
	"context"
	"io"
)

// DefaultServerCommand launches the published Context7 MCP server.
const DefaultServerCommand = "npx -y @upstash/context7-mcp"

// APIKeyEnv is the environment variable consulted when no API key is given.
const APIKeyEnv = "CONTEXT7_API_KEY"

// Tool names exposed by the Context7 MCP server.
const (
	ToolResolveLibraryID = "resolve-library-id"
	ToolGetLibraryDocs   = "get-library-docs"
)

// Config holds the settings needed to reach the documentation service.
type Config struct {
	// APIKey is optional. The free tier works without one.
	APIKey string `yaml:"api_key"`

	// ServerCommand overrides DefaultServerCommand.
	ServerCommand string `yaml:"server_command"`
}

// Merge fills empty fields of c from other.
func (c *Config) Merge(other Config) {
	if c.APIKey == "" {
		c.APIKey = other.APIKey
	}
	if c.ServerCommand == "" {
		c.ServerCommand = other.ServerCommand
	}
}

// DocsRequest describes a documentation lookup. LibraryID takes precedence;
// LibraryName is resolved to an ID when LibraryID is empty.
type DocsRequest struct {
	LibraryID   string `json:"libraryId,omitempty"`
	LibraryName string `json:"libraryName,omitempty"`
	Query       string `json:"query,omitempty"`
}

// Validate returns an error if the request names no library.
func (r *DocsRequest) Validate() error {
	if r.LibraryID == "" && r.LibraryName == "" {
		return Errorf(EINVALID, "either library ID or library name must be provided")
	}
	return nil
}

// Library returns the library name if set, otherwise the library ID.
func (r *DocsRequest) Library() string {
	if r.LibraryName != "" {
		return r.LibraryName
	}
	return r.LibraryID
}

// DocsService looks up libraries and documentation.
// Results are opaque payloads; see Field and Content.
type DocsService interface {
	// ResolveLibraryID maps a library name to a Context7 library ID.
	ResolveLibraryID(ctx context.Context, name string) (any, error)

	// GetLibraryDocs fetches documentation for a library.
	// Returns EINVALID if the request names no library or the name
	// cannot be resolved.
	GetLibraryDocs(ctx context.Context, req DocsRequest) (any, error)

	// ListTools returns the catalog of tools offered by the service.
	ListTools(ctx context.Context) ([]any, error)
}

// Session is a live connection to the documentation service.
// Close must be called on every exit path once Dial succeeds.
type Session interface {
	DocsService
	io.Closer
}

// Dialer opens sessions against the documentation service.
type Dialer interface {
	Dial(ctx context.Context) (Session, error)
}
