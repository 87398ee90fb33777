package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/isseis/go-hilite/internal/cmdcommon"
	"github.com/isseis/go-hilite/internal/config"
	"github.com/isseis/go-hilite/internal/highlight"
	"github.com/isseis/go-hilite/internal/logging"
	"github.com/isseis/go-hilite/internal/stream"
	"github.com/isseis/go-hilite/internal/terminal"
	"github.com/spf13/cobra"
)

const programName = "hilite"

const hiliteLongDescription = `Highlight the parts of each line of standard input matched by PATTERNS.

Every pattern gets its own color from the palette. Where matches overlap,
the pattern given last wins. A single pattern colors each of its capturing
groups differently unless --no-vary-groups is given.
`

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

type rootCmdOptions struct {
	ctx        context.Context
	streams    streams
	runID      string
	configPath string
	options    config.Options

	// stdoutFile is checked for a terminal under --color=auto
	stdoutFile *os.File
}

func newRootCommand(o *rootCmdOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           programName + " [flags] PATTERN...",
		Short:         "Color the matches of regular expressions in a stream",
		Long:          hiliteLongDescription,
		Args:          requirePatterns,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       cmdcommon.Version,
		RunE:          o.run,
	}
	cmd.SetVersionTemplate(cmdcommon.VersionString(programName) + "\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errInvalidArguments, err)
	})

	// Registered before cobra adds its own so that -h stays --no-highlight
	cmd.Flags().Bool("help", false, "Show this help")
	cmd.Flags().Bool("version", false, "Print version information")
	cmd.Flags().StringVar(&o.configPath, "config", "", "Path to the config file (default $"+config.EnvConfigPath+" or ~/.config/hilite/config.toml)")
	config.RegisterFlags(cmd.Flags())

	return cmd
}

func (o *rootCmdOptions) run(cmd *cobra.Command, args []string) error {
	path, required := config.ResolvePath(o.configPath)
	loaded, err := config.LoadFile(path, required, &o.options)
	if err != nil {
		return err
	}
	if err := o.options.ApplyFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := o.options.Validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if o.options.Debug {
		level = slog.LevelDebug
	}
	if _, err := logging.Setup(logging.LoggerConfig{
		Level:  level,
		RunID:  o.runID,
		Writer: o.streams.err,
	}); err != nil {
		return err
	}
	if loaded {
		slog.Debug("Loaded config file", "path", path)
	}

	opts, err := o.options.HighlightOptions(!o.colorEnabled())
	if err != nil {
		return err
	}
	h, err := highlight.New(args, opts)
	if err != nil {
		return err
	}
	slog.Debug("Patterns compiled",
		"count", len(h.Patterns()),
		"engine", string(opts.Compile.Engine),
		"mode", opts.Mode.String(),
		"plain", opts.Plain)

	_, err = stream.Run(o.ctx, o.streams.in, o.streams.out, h, o.options.StreamOptions())
	return err
}

// colorEnabled resolves --color against the terminal standard output is
// attached to.
func (o *rootCmdOptions) colorEnabled() bool {
	mode, _ := config.ParseColorMode(string(o.options.Color))
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	stdout := o.stdoutFile
	if stdout == nil {
		stdout = os.Stdout
	}
	caps := terminal.NewCapabilities(terminal.Options{
		DetectorOptions: terminal.DetectorOptions{Stream: stdout},
	})
	enabled := caps.SupportsColor()
	if caps.HasExplicitUserPreference() {
		slog.Debug("Color decided by environment", "color", enabled)
	}
	return enabled
}

func requirePatterns(cmd *cobra.Command, args []string) error {
	if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
		return fmt.Errorf("%w: at least one PATTERN is required", errInvalidArguments)
	}
	return nil
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, s streams) int {
	o := &rootCmdOptions{
		ctx:     ctx,
		streams: s,
		runID:   logging.GenerateRunID(),
		options: config.Default(),
	}

	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}

	cmd := newRootCommand(o)
	cmd.SetArgs(args)
	cmd.SetIn(s.in)
	cmd.SetOut(s.out)
	cmd.SetErr(s.err)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return logging.HandleFatalError(s.err, toFatalError(err, o.runID), o.options.Debug)
	}
	return 0
}
