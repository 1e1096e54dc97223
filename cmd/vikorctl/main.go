package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/logger"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/vikor"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/workspace"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var errUsage = errors.New("usage")

type cliOptions struct {
	problemPath string
	format      string
	verbose     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			slog.Error("vikorctl failed", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(logger.NewLogger(stderr, level))

	problem, err := workspace.LoadProblem(opts.problemPath)
	if err != nil {
		return fmt.Errorf("load problem: %w", err)
	}

	w, err := problem.Build()
	if err != nil {
		return fmt.Errorf("build problem: %w", err)
	}

	in := w.Input()
	slog.Debug("problem loaded",
		slog.String("file", opts.problemPath),
		slog.Int("alternatives", in.Config.NumAlternatives),
		slog.Int("criteria", in.Config.NumCriteria),
		slog.Int("experts", in.Config.NumExperts))

	res, err := w.Calculate()
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}

	for _, d := range res.Diagnostics {
		slog.Warn("degenerate input", slog.String("kind", d.Kind), slog.String("stage", d.Stage),
			slog.Int("index", d.Index), slog.String("message", d.Message))
	}

	if opts.format == formatJSON {
		return writeJSON(stdout, res)
	}

	return writeTable(stdout, in.Config, res)
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("vikorctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.problemPath, "problem", "", "YAML problem file")
	fs.StringVar(&opts.format, "format", formatTable, "Output format: table or json")
	fs.BoolVar(&opts.verbose, "v", false, "Log debug output to stderr")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: vikorctl -problem FILE [-format table|json]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, errUsage
	}

	opts.problemPath = strings.TrimSpace(opts.problemPath)
	if opts.problemPath == "" {
		fs.Usage()
		return opts, errUsage
	}

	if opts.format != formatTable && opts.format != formatJSON {
		fs.Usage()
		return opts, errUsage
	}

	return opts, nil
}

func writeJSON(out io.Writer, res vikor.Results) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(res)
}

func writeTable(out io.Writer, cfg vikor.Config, res vikor.Results) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "v = %.2f\n\n", cfg.V)

	fmt.Fprintln(tw, "RANK\tALTERNATIVE\tQ\tS\tR")
	for rank, alt := range res.RankedByQ {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%.4f\n", rank+1, alt.AltLabel, alt.Q, alt.S, alt.R)
	}

	fmt.Fprintf(tw, "\nby S:\t%s\n", joinLabels(res.RankedByS))
	fmt.Fprintf(tw, "by R:\t%s\n", joinLabels(res.RankedByR))
	fmt.Fprintf(tw, "by Q:\t%s\n", joinLabels(res.RankedByQ))

	c := res.Compromise
	fmt.Fprintf(tw, "\nacceptable advantage:\t%t\t(%.4f vs DQ %.4f)\n", c.AcceptableAdvantage, c.Advantage, c.Threshold)
	fmt.Fprintf(tw, "acceptable stability:\t%t\n", c.AcceptableStability)
	fmt.Fprintf(tw, "compromise set:\t%s\n", joinLabels(c.Set))

	if len(res.Diagnostics) > 0 {
		fmt.Fprintf(tw, "\ndiagnostics:\t%d\n", len(res.Diagnostics))
	}

	return tw.Flush()
}

func joinLabels(alts []vikor.RankedAlternative) string {
	labels := make([]string, len(alts))
	for i, alt := range alts {
		labels[i] = alt.AltLabel
	}

	return strings.Join(labels, ", ")
}
