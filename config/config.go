package config

import (
	"fmt"

	"github.com/cutstock2d/cutstock2d/bnb"
	"github.com/cutstock2d/cutstock2d/pricing"
)

// Defaults mirror bnb.DefaultParams and pricing.Knapsack; kept here as the
// single source of truth for the zero-value Config.
const (
	DefaultMaxNodes           = 100
	DefaultMaxCGIter          = 100
	DefaultEpsilon            = 1e-6
	DefaultReducedCostEpsilon = 1e-6
)

// DefaultPricingMethod is the backend used when no WithPricingMethod option
// is supplied.
var DefaultPricingMethod = pricing.Knapsack

// Config holds the solver-wide limits and the pricing backend selector.
// Fields are unexported; build one with New and a chain of Options.
type Config struct {
	maxNodes      int
	maxCGIter     int
	epsilon       float64
	rcEpsilon     float64
	pricingMethod pricing.Method
	outputDir     string
	logPrefix     string
}

// Option configures a Config at construction.
type Option func(*Config)

// WithMaxNodes sets the branch-and-bound node budget. Panics if n <= 0.
func WithMaxNodes(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("config: MaxNodes must be positive, got %d", n))
	}

	return func(c *Config) { c.maxNodes = n }
}

// WithMaxCGIter sets the per-node column-generation iteration budget.
// Panics if n <= 0.
func WithMaxCGIter(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("config: MaxCGIter must be positive, got %d", n))
	}

	return func(c *Config) { c.maxCGIter = n }
}

// WithEpsilon sets the integrality tolerance used for rounding and
// fractionality tests. Panics if eps <= 0.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic(fmt.Sprintf("config: Epsilon must be positive, got %v", eps))
	}

	return func(c *Config) { c.epsilon = eps }
}

// WithReducedCostEpsilon sets the tolerance a pricing subproblem's optimum
// must exceed its threshold by to count as an improving column. Panics if
// eps <= 0.
func WithReducedCostEpsilon(eps float64) Option {
	if eps <= 0 {
		panic(fmt.Sprintf("config: ReducedCostEpsilon must be positive, got %v", eps))
	}

	return func(c *Config) { c.rcEpsilon = eps }
}

// WithPricingMethod selects the pricing backend (knapsack, arcflow, or dp).
func WithPricingMethod(m pricing.Method) Option {
	return func(c *Config) { c.pricingMethod = m }
}

// WithOutputDir sets the directory report.FileWriter writes Stock_<k>.txt
// files into.
func WithOutputDir(dir string) Option {
	return func(c *Config) { c.outputDir = dir }
}

// WithLogPrefix sets the cutlog file-sink prefix; the empty string (the
// default) disables the file sink.
func WithLogPrefix(prefix string) Option {
	return func(c *Config) { c.logPrefix = prefix }
}

// New builds a Config applying opts over the package defaults.
func New(opts ...Option) Config {
	c := Config{
		maxNodes:      DefaultMaxNodes,
		maxCGIter:     DefaultMaxCGIter,
		epsilon:       DefaultEpsilon,
		rcEpsilon:     DefaultReducedCostEpsilon,
		pricingMethod: DefaultPricingMethod,
		outputDir:     ".",
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Params projects the solver limits onto bnb.Params.
func (c Config) Params() bnb.Params {
	return bnb.Params{
		MaxNodes:  c.maxNodes,
		MaxCGIter: c.maxCGIter,
		Epsilon:   c.epsilon,
		RCEpsilon: c.rcEpsilon,
	}
}

// Pricer constructs the Pricer selected by WithPricingMethod.
func (c Config) Pricer() (pricing.Pricer, error) {
	return pricing.New(c.pricingMethod)
}

// OutputDir is the directory report output is written to.
func (c Config) OutputDir() string { return c.outputDir }

// LogPrefix is the cutlog file-sink prefix.
func (c Config) LogPrefix() string { return c.logPrefix }

// PricingMethod is the configured pricing backend, for display/logging.
func (c Config) PricingMethod() pricing.Method { return c.pricingMethod }
