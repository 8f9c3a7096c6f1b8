package linkage

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Config controls both clustering strategies.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// MergeBudget is K, the number of frontier pops the bounded query
	// performs. Redundant pops (both endpoints already connected) count
	// toward the budget. Must be >= 0; 0 means the default. Default: 1000.
	MergeBudget int

	// TopComponents is how many of the largest component sizes the bounded
	// query multiplies together. Must be >= 0; 0 means the default.
	// Default: 3.
	TopComponents int

	// LeafSize is the maximum number of points in a k-d tree leaf. Only used
	// by GreedyPairs. Must be >= 1 once defaulted. Default: 1.
	LeafSize int

	// Frontier selects the Distance Frontier implementation used by the
	// exhaustive strategy. Default: FrontierHeap.
	Frontier FrontierKind

	// Workers controls the number of goroutines computing pairwise
	// distances. The drain loop is always sequential. 0 means use
	// runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// PairingRounds caps the number of rounds GreedyPairs runs. 0 means run
	// until no unexcluded pair remains. Default: 0.
	PairingRounds int

	// Logger receives debug records about frontier and tree construction.
	// Default: a no-op logger.
	Logger *zap.Logger
}

// Defaults applied by applyDefaults.
const (
	DefaultMergeBudget   = 1000
	DefaultTopComponents = 3
	DefaultLeafSize      = 1
)

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		MergeBudget:   DefaultMergeBudget,
		TopComponents: DefaultTopComponents,
		LeafSize:      DefaultLeafSize,
		Frontier:      FrontierHeap,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.MergeBudget < 0 {
		return fmt.Errorf("linkage: MergeBudget must be >= 0, got %d", cfg.MergeBudget)
	}
	if cfg.TopComponents < 0 {
		return fmt.Errorf("linkage: TopComponents must be >= 0, got %d", cfg.TopComponents)
	}
	if cfg.LeafSize < 1 {
		return fmt.Errorf("linkage: LeafSize must be >= 1, got %d", cfg.LeafSize)
	}
	switch cfg.Frontier {
	case FrontierHeap, FrontierLLRB:
		// valid
	default:
		return fmt.Errorf("linkage: invalid Frontier %q", cfg.Frontier)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("linkage: Workers must be >= 0, got %d", cfg.Workers)
	}
	if cfg.PairingRounds < 0 {
		return fmt.Errorf("linkage: PairingRounds must be >= 0, got %d", cfg.PairingRounds)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MergeBudget == 0 {
		cfg.MergeBudget = DefaultMergeBudget
	}
	if cfg.TopComponents == 0 {
		cfg.TopComponents = DefaultTopComponents
	}
	if cfg.LeafSize == 0 {
		cfg.LeafSize = DefaultLeafSize
	}
	if cfg.Frontier == "" {
		cfg.Frontier = FrontierHeap
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}

// prepare defaults and validates cfg, then validates the input points.
func prepare(points []Point, cfg *Config) error {
	applyDefaults(cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}
	return ValidatePoints(points)
}
