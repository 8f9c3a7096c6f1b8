// Command linkage reads 3-D integer points, one "x,y,z" triple per line, and
// answers a clustering query over them.
//
//	linkage sizes points.txt         # product of the three largest components after 1000 pops
//	linkage bottleneck points.txt    # product of the X coordinates of the bottleneck edge
//	linkage pairs points.txt         # greedy k-d tree pairings, one per line
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/TrevorS/linkage"
)

type options struct {
	Query    string `arg:"positional,required" help:"sizes, bottleneck or pairs"`
	Input    string `arg:"positional,required" help:"file of x,y,z lines, or - for stdin"`
	Budget   int    `arg:"--budget" help:"frontier pops for the sizes query"`
	Top      int    `arg:"--top" help:"number of largest components to multiply"`
	LeafSize int    `arg:"--leaf-size" help:"maximum points per k-d tree leaf"`
	Frontier string `arg:"--frontier" help:"frontier implementation: heap or llrb"`
	Workers  int    `arg:"--workers" help:"goroutines for the pairwise distance build (0 = all CPUs)"`
	Rounds   int    `arg:"--rounds" help:"maximum pairing rounds (0 = until exhausted)"`
	Verbose  bool   `arg:"-v,--verbose" help:"log debug records to stderr"`
}

func (options) Description() string {
	return "greedy single-linkage clustering of 3-D integer points"
}

func main() {
	opts := options{
		Budget:   linkage.DefaultMergeBudget,
		Top:      linkage.DefaultTopComponents,
		LeafSize: linkage.DefaultLeafSize,
		Frontier: string(linkage.FrontierHeap),
	}
	arg.MustParse(&opts)

	logger := newLogger(opts.Verbose)
	defer logger.Sync()

	if err := run(opts, os.Stdout, logger); err != nil {
		log.Fatal(err)
	}
}

// newLogger writes JSON records to stderr.
func newLogger(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(config), zapcore.Lock(os.Stderr), level)
	return zap.New(core, zap.AddCaller())
}

func readPoints(path string) ([]linkage.Point, error) {
	if path == "-" {
		return linkage.ParsePoints(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	points, err := linkage.ParsePoints(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return points, nil
}

func buildConfig(opts options, logger *zap.Logger) (linkage.Config, error) {
	frontier, err := linkage.ParseFrontierKind(opts.Frontier)
	if err != nil {
		return linkage.Config{}, err
	}
	cfg := linkage.DefaultConfig()
	cfg.MergeBudget = opts.Budget
	cfg.TopComponents = opts.Top
	cfg.LeafSize = opts.LeafSize
	cfg.Frontier = frontier
	cfg.Workers = opts.Workers
	cfg.PairingRounds = opts.Rounds
	cfg.Logger = logger
	return cfg, nil
}

func run(opts options, w io.Writer, logger *zap.Logger) error {
	switch opts.Query {
	case "sizes", "bottleneck", "pairs":
	default:
		return fmt.Errorf("unknown query %q (want sizes, bottleneck or pairs)", opts.Query)
	}
	cfg, err := buildConfig(opts, logger)
	if err != nil {
		return err
	}
	points, err := readPoints(opts.Input)
	if err != nil {
		return err
	}
	logger.Info("points loaded",
		zap.String("input", opts.Input),
		zap.String("count", humanize.Comma(int64(len(points)))),
		zap.String("pairs", humanize.Comma(int64(len(points))*int64(len(points)-1)/2)))

	start := time.Now()
	defer func() {
		logger.Info("query done", zap.String("query", opts.Query), zap.Duration("elapsed", time.Since(start)))
	}()

	switch opts.Query {
	case "sizes":
		r, err := linkage.ClusterSizes(points, cfg)
		if err != nil {
			return err
		}
		logger.Debug("components",
			zap.Int("count", len(r.Sizes)),
			zap.Int("pops", r.Pops),
			zap.Int("merges", r.Merges))
		fmt.Fprintln(w, r.Product)
	case "bottleneck":
		r, err := linkage.Bottleneck(points, cfg)
		if err != nil {
			return err
		}
		if !r.Found {
			fmt.Fprintln(w, 0)
			return nil
		}
		a, b := r.Endpoints(points)
		logger.Debug("bottleneck edge",
			zap.Stringer("a", a),
			zap.Stringer("b", b),
			zap.Int64("distance", r.Edge.Distance),
			zap.String("pops", humanize.Comma(int64(r.Pops))))
		fmt.Fprintln(w, a.X*b.X)
	case "pairs":
		r, err := linkage.GreedyPairs(points, cfg)
		if err != nil {
			return err
		}
		for _, p := range r.Pairs {
			fmt.Fprintf(w, "%v %v %d\n", p.A, p.B, p.Distance)
		}
	}
	return nil
}
