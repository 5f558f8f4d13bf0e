package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathviz/driver"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

// Escape sequences used to redraw frames in place on a terminal.
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
)

type runOptions struct {
	algorithm   string
	speed       int
	metricsAddr string
	quiet       bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search, printing a frame per step",
		Example: `  pathviz run --grid maze.txt
  pathviz run --grid maze.txt --algorithm dijkstra --speed 10
  pathviz run -c pathviz.yaml --metrics-addr :9090 --quiet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.apply(cmd, root); err != nil {
				return err
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), root, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "bfs, dfs, dijkstra or astar")
	cmd.Flags().IntVarP(&opts.speed, "speed", "s", driver.DefaultSpeed, "1 (500ms per step) to 10 (50ms per step)")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only the final summary")
	return cmd
}

// apply lets explicitly set flags override the loaded configuration.
func (o *runOptions) apply(cmd *cobra.Command, root *rootOptions) error {
	if cmd.Flags().Changed("algorithm") {
		a, err := search.ParseAlgorithm(o.algorithm)
		if err != nil {
			return err
		}
		root.cfg.Algorithm = a
	}
	if cmd.Flags().Changed("speed") {
		root.cfg.Speed = o.speed
	}
	if cmd.Flags().Changed("metrics-addr") {
		root.cfg.MetricsAddr = o.metricsAddr
	}
	return root.cfg.Validate()
}

func runSearch(ctx context.Context, out io.Writer, root *rootOptions, opts *runOptions) error {
	cfg, logger := root.cfg, root.logger
	grid, err := cfg.BuildGrid()
	if err != nil {
		return err
	}
	r := root.renderer(out, grid)
	redraw := isTerminal(out)

	engine, err := search.NewEngine(grid, cfg.Algorithm, search.WithLogger(logger))
	if err != nil {
		return err
	}
	var noPath string
	engine.OnNoPath(func(msg string) { noPath = msg })

	driverOpts := []driver.Option{driver.WithSpeed(cfg.Speed), driver.WithLogger(logger)}
	if !opts.quiet {
		driverOpts = append(driverOpts, driver.WithFrameSink(func(s search.Snapshot) {
			if redraw {
				_, _ = io.WriteString(out, cursorHome+clearScreen)
			}
			fprintln(out, r.Frame(s))
			fprintln(out, r.Stats(s))
			if !redraw {
				fprintln(out)
			}
		}))
	}
	drv, err := driver.New(engine, driverOpts...)
	if err != nil {
		return err
	}

	if err := engine.Begin(); err != nil {
		if errors.Is(err, search.ErrMissingEndpoints) {
			fprintln(out, noPath)
			return nil
		}
		return err
	}
	if !opts.quiet {
		fprintln(out, r.Grid())
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)
	if cfg.MetricsAddr != "" {
		ln, err := net.Listen("tcp", cfg.MetricsAddr)
		if err != nil {
			return fmt.Errorf("metrics listener: %w", err)
		}
		g.Go(func() error { return serveMetrics(gctx, ln, logger) })
	}
	g.Go(func() error {
		defer cancel()
		return drv.Run(gctx)
	})

	err = g.Wait()
	interrupted := ctx.Err() != nil
	if err != nil && !(interrupted && errors.Is(err, context.Canceled)) {
		return err
	}

	res := engine.Results()
	switch {
	case interrupted:
		fprintln(out, fmt.Sprintf("%s: interrupted after %d steps", res.Algorithm, res.TotalSteps))
	case res.Success:
		fprintln(out, r.Summary(res))
	default:
		fprintln(out, r.Summary(res))
		fprintln(out, explainNoPath(grid, noPath))
	}
	logger.Debug("pathviz: run finished",
		slog.String("run_id", res.RunID),
		slog.Bool("success", res.Success),
	)
	return nil
}

// explainNoPath reports why start and end are disconnected.
func explainNoPath(g *gridgraph.Grid, msg string) string {
	start, _ := g.StartCell()
	end, _ := g.EndCell()
	if g.Reachable(start, end) {
		return msg
	}
	return fmt.Sprintf("%s: start %v and end %v lie in different regions (%d regions in total)",
		msg, start, end, len(g.ConnectedComponents()))
}
