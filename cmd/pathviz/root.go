package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/render"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	gridPath   string
	verbose    bool
	noColor    bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "pathviz",
		Short: "Watch BFS, DFS, Dijkstra and A* explore a grid one step at a time",
		Long: `pathviz loads a grid layout and runs a path search over it step by step.

Layout alphabet:
  .  empty       #  wall        S  start      E  end
  ~  trap (default weight)      1-9  trap with that weight`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVarP(&opts.gridPath, "grid", "g", "", "grid layout file (overrides the config grid)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newRunCmd(opts),
		newCompareCmd(opts),
		newAlgorithmsCmd(opts),
	)
	return cmd
}

// load reads the configuration and builds the logger.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.gridPath != "" {
		cfg.Grid = ""
		cfg.GridFile = o.gridPath
	}
	o.cfg = cfg
	o.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, o.verbose)
	slog.SetDefault(o.logger)
	return nil
}

// renderer picks plain glyphs unless out is a color-capable terminal.
func (o *rootOptions) renderer(out io.Writer, layout render.Layout) *render.Renderer {
	if o.noColor || !isTerminal(out) {
		return render.New(layout, render.WithPlain())
	}
	return render.New(layout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newLogger returns a text logger at level; verbose forces debug.
func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
