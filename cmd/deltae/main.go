// Command deltae computes the color difference between two batch files.
//
//	deltae -metric CIE2000 -src measured.json -ref reference.json -out distances.json.zst
//
// Batch files hold {"rows", "cols", "data"} documents where data is the
// row-major list of triplets. Files ending in .zst or .lz4 are compressed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/hupe1980/deltae"
	"github.com/hupe1980/deltae/codec"
	"github.com/hupe1980/deltae/distance"
	"github.com/hupe1980/deltae/model"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type config struct {
	metric    distance.Metric
	src       string
	ref       string
	out       string
	workers   int
	codec     codec.Codec
	logFormat string
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("deltae", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg       config
		metric    = fs.String("metric", distance.MetricCIE2000.String(), "metric: "+metricList())
		codecName = fs.String("codec", codec.Default.Name(), "codec for reading and writing: "+strings.Join(codec.Names(), ", "))
	)
	fs.StringVar(&cfg.src, "src", "", "source (measured) batch file")
	fs.StringVar(&cfg.ref, "ref", "", "reference batch file")
	fs.StringVar(&cfg.out, "out", "", "optional output file for the distance batch")
	fs.IntVar(&cfg.workers, "workers", runtime.GOMAXPROCS(0), "number of parallel workers")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text, json")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	m, err := distance.ParseMetric(*metric)
	if err != nil {
		return nil, err
	}
	cfg.metric = m

	c, ok := codec.ByName(*codecName)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", *codecName)
	}
	cfg.codec = c

	if cfg.src == "" || cfg.ref == "" {
		return nil, errors.New("both -src and -ref are required")
	}
	if cfg.workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", cfg.workers)
	}
	if cfg.logFormat != "text" && cfg.logFormat != "json" {
		return nil, fmt.Errorf("unknown log format %q", cfg.logFormat)
	}

	return &cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "deltae:", err)
		}
		return 2
	}

	logger := newLogger(cfg, stderr)

	if err := compute(ctx, cfg, logger, stdout); err != nil {
		fmt.Fprintln(stderr, "deltae:", err)
		return 1
	}
	return 0
}

func compute(ctx context.Context, cfg *config, logger *deltae.Logger, stdout io.Writer) error {
	var src, ref model.Batch
	if err := codec.ReadFile(cfg.src, &src, cfg.codec); err != nil {
		return err
	}
	if err := codec.ReadFile(cfg.ref, &ref, cfg.codec); err != nil {
		return err
	}

	calc := deltae.New(
		deltae.WithLogger(logger),
		deltae.WithWorkers(cfg.workers),
	)

	out, err := calc.Distance(ctx, src, ref, cfg.metric)
	if err != nil {
		return err
	}

	summary := deltae.Summarize(out)
	logger.LogSummary(ctx, cfg.metric, summary)

	fmt.Fprintf(stdout, "metric:  %s\n", cfg.metric)
	fmt.Fprintf(stdout, "shape:   %s\n", out.Shape())
	fmt.Fprintf(stdout, "summary: %s\n", summary)

	if cfg.out != "" {
		if err := codec.WriteFile(cfg.out, out, cfg.codec); err != nil {
			return err
		}
		logger.InfoContext(ctx, "distances written", "path", cfg.out)
	}
	return nil
}

func newLogger(cfg *config, stderr io.Writer) *deltae.Logger {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.logFormat == "json" {
		return deltae.NewLogger(slog.NewJSONHandler(stderr, opts))
	}
	return deltae.NewLogger(slog.NewTextHandler(stderr, opts))
}

func metricList() string {
	names := make([]string, 0, distance.NumMetrics)
	for _, m := range distance.Metrics() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}
