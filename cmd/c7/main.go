package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/context7"
	"github.com/fwojciec/context7/fs"
	"github.com/fwojciec/context7/lipgloss"
	"github.com/fwojciec/context7/mcp"
	"github.com/fwojciec/context7/rate"
	c7slog "github.com/fwojciec/context7/slog"
	"github.com/fwojciec/context7/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	os.Exit(m.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// Main represents the program.
type Main struct {
	// Default config file path. Set before calling Run().
	ConfigPath string

	// Dialer replaces the MCP dialer. Used for end-to-end testing.
	Dialer context7.Dialer

	// Config resolved from flags, environment and the config file.
	Config context7.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: yaml.DefaultConfigPath(),
	}
}

// Execute runs the CLI and returns the process exit code. Errors are
// reported on stderr as "Error: <message>".
func (m *Main) Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := m.Run(ctx, args, stdout, stderr); err != nil {
		lipgloss.Detect(stderr).Error(context7.ErrorMessage(err))
		return 1
	}
	return 0
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: lipgloss.Detect(stdout),
		Stderr: lipgloss.Detect(stderr),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("c7"),
		kong.Description(description),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"config_path": m.ConfigPath},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'c7 --help' to see available commands")
	}

	// Help is printed by the parser; a missing required argument after
	// --help is not an error.
	if wantsHelp(args) {
		_, _ = parser.Parse(args)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cmd := ""
	if node := kongCtx.Selected(); node != nil {
		cmd = node.Name
	}

	// version never touches the service or the config file.
	if cmd == "version" {
		return kongCtx.Run(deps)
	}

	fileCfg, err := yaml.LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	m.Config = context7.Config{APIKey: cli.APIKey, ServerCommand: cli.ServerCommand}
	m.Config.Merge(fileCfg)

	deps.Dialer = m.Dialer
	if deps.Dialer == nil {
		dialer := mcp.NewDialer(m.Config)
		if cli.Verbose {
			dialer.Stderr = stderr
		}
		deps.Dialer = dialer
	}
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Dialer = c7slog.NewLoggingDialer(deps.Dialer, logger)
	}

	if cmd == "batch" {
		deps.Writer = fs.NewWriter(cli.Batch.Dir)
		deps.Limiter = rate.NewLimiter(cli.Batch.Rate)
	}

	return kongCtx.Run(deps)
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "--help", "-h":
			return true
		}
	}
	return len(args) == 1 && args[0] == "help"
}

const description = `Context7 CLI - Access up-to-date library documentation from your terminal.

Get started by resolving a library or fetching docs:

  c7 resolve react
  c7 docs react
  c7 docs --library-id /facebook/react/18.0.0`
