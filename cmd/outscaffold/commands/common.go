package commands

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/outscaffold/internal/config"
	"git.home.luguber.info/inful/outscaffold/internal/layout"
	"git.home.luguber.info/inful/outscaffold/internal/logfields"
)

// Global carries the output streams and logger shared by all commands.
type Global struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Layout  string           `short:"l" help:"Layout file (YAML); the built-in layout is used when empty"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Create CreateCmd `cmd:"" default:"withargs" help:"Create the output directory layout (default)"`
	Plan   PlanCmd   `cmd:"" help:"Show which directories would be created without creating them"`
	Init   InitCmd   `cmd:"" help:"Write the built-in layout to a file for editing"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(g.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

// LoadLayout resolves the layout from --layout or falls back to the built-in one.
func LoadLayout(g *Global, root *CLI) (*layout.Layout, error) {
	if root.Layout == "" {
		return config.Default().Build()
	}
	cfg, err := config.Load(root.Layout)
	if err != nil {
		return nil, err
	}
	g.Logger.Debug("Loaded layout file", logfields.LayoutFile(root.Layout))
	return cfg.Build()
}
