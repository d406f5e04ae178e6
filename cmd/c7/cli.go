package main

import (
	"context"

	"github.com/fwojciec/context7"
	"github.com/fwojciec/context7/lipgloss"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  *lipgloss.Console
	Stderr  *lipgloss.Console
	Dialer  context7.Dialer
	Writer  context7.DocsWriter
	Limiter context7.Limiter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIKey        string `name:"api-key" env:"CONTEXT7_API_KEY" help:"Context7 API key (or set CONTEXT7_API_KEY env var)"`
	ServerCommand string `name:"server-command" help:"Custom MCP server command"`
	Config        string `name:"config" default:"${config_path}" help:"Config file with default settings (or set C7_CONFIG env var)"`
	Verbose       bool   `short:"v" help:"Log MCP calls and server output to stderr"`

	Resolve ResolveCmd `cmd:"" help:"Resolve a library name to a Context7-compatible library ID."`
	Docs    DocsCmd    `cmd:"" help:"Get documentation for a library."`
	Tools   ToolsCmd   `cmd:"" help:"List all available tools from the Context7 MCP server."`
	Batch   BatchCmd   `cmd:"" help:"Fetch documentation for several libraries into a directory."`
	Version VersionCmd `cmd:"" help:"Show the version of Context7 CLI."`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	LibraryName string `arg:"" name:"library_name" help:"Library or package name"`
	JSON        bool   `name:"json" help:"Output as JSON"`
}

// Help implements kong.HelpProvider.
func (c *ResolveCmd) Help() string {
	return `Examples:

  c7 resolve react
  c7 resolve @upstash/redis`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	LibraryName string `arg:"" optional:"" name:"library_name" help:"Library name, resolved to an ID first"`
	LibraryID   string `name:"library-id" help:"Library ID in format '/org/project' or '/org/project/version'"`
	Query       string `short:"q" help:"Search query to filter documentation"`
	JSON        bool   `name:"json" help:"Output as JSON"`
	Output      string `short:"o" placeholder:"PATH" help:"Save output to file"`
}

// Help implements kong.HelpProvider.
func (c *DocsCmd) Help() string {
	return `Examples:

  c7 docs react
  c7 docs --library-id /facebook/react/18.0.0
  c7 docs react --query "hooks"
  c7 docs react --output react-docs.txt`
}

// ToolsCmd is the "tools" subcommand.
type ToolsCmd struct{}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Libraries []string `arg:"" name:"library_name" help:"Library names to fetch"`
	Dir       string   `short:"d" default:"docs_output" help:"Directory to save documentation files"`
	Query     string   `short:"q" help:"Search query to filter documentation"`
	Rate      float64  `default:"0" help:"Maximum libraries fetched per second (0 for no limit)"`
}

// Help implements kong.HelpProvider.
func (c *BatchCmd) Help() string {
	return `Libraries are fetched one at a time. A failure is reported and the
remaining libraries are still fetched.

Examples:

  c7 batch react vue express
  c7 batch @upstash/redis fastapi --dir docs --rate 0.5`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}
