package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/profile"
	"gopkg.in/yaml.v2"

	"github.com/nlitsme/expressionfinder/pkg/ops"
	"github.com/nlitsme/expressionfinder/pkg/search"
	"github.com/nlitsme/expressionfinder/pkg/tree"
)

func main() {
	cfg := search.DefaultConfig()

	var (
		configPath   = flag.String("config", "", "YAML config file with search defaults")
		reverse      = flag.Bool("r", false, "use descending (reverse) order of numbers")
		digit        = flag.Int("d", 0, "with -n: use N copies of digit D instead of 1..9")
		count        = flag.Int("n", 0, "with -d: use N copies of digit D instead of 1..9")
		targetStr    = flag.String("t", "", "report only results within tolerance of TARGET")
		tolerance    = flag.Float64("tolerance", cfg.Tolerance, "match window around the target")
		opsList      = flag.String("ops", strings.Join(cfg.Operators, ","), "comma separated binary operations ("+strings.Join(ops.BinaryNames(), ", ")+")")
		format       = flag.String("format", "text", "final report format (text, json)")
		showProgress = flag.Bool("progress", false, "log each tree shape with its lap time")
		verbose      = flag.Bool("v", false, "debug logging")
		profileMode  = flag.String("profile", "", "enable profiling mode, one of [cpu, mem, trace]")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.ProfilePath("."), profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.ProfilePath("."), profile.MemProfile).Stop()
	case "trace":
		defer profile.Start(profile.ProfilePath("."), profile.TraceProfile).Stop()
	default:
		// don't profile
	}

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			slog.Error("reading config file", "path", *configPath, "error", err)
			os.Exit(1)
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			slog.Error("parsing config file", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}

	// Flags given on the command line override config file values.
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "r":
			cfg.Reverse = *reverse
		case "d":
			cfg.Digit = *digit
		case "n":
			cfg.Count = *count
		case "tolerance":
			cfg.Tolerance = *tolerance
		case "ops":
			cfg.Operators = splitList(*opsList)
		case "t":
			v, err := strconv.ParseFloat(*targetStr, 64)
			if err != nil {
				flagErr = fmt.Errorf("invalid target %q: %w", *targetStr, err)
				return
			}
			cfg.Target = &v
		}
	})
	if flagErr != nil {
		slog.Error("bad flag", "error", flagErr)
		os.Exit(1)
	}

	if *showProgress {
		last := time.Now()
		cfg.Progress = func(shape string) {
			now := time.Now()
			slog.Info("shape", "expr", shape, "lap", now.Sub(last))
			last = now
		}
	}

	eng, err := search.New(cfg)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	operands := eng.Operands()
	slog.Debug("starting search",
		"operands", operands,
		"operators", cfg.Operators,
		"shapes", tree.ShapeCount(len(operands)))

	report := eng.Run(os.Stdout)

	switch *format {
	case "json":
		if err := search.WriteJSONReport(os.Stdout, report); err != nil {
			slog.Error("writing JSON report", "error", err)
			os.Exit(1)
		}
	default:
		search.WriteTextReport(os.Stderr, report)
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
