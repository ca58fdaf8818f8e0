package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cutstock2d/cutstock2d/config"
	"github.com/cutstock2d/cutstock2d/pricing"
)

func TestNew_Defaults(t *testing.T) {
	c := config.New()
	p := c.Params()

	assert.Equal(t, config.DefaultMaxNodes, p.MaxNodes)
	assert.Equal(t, config.DefaultMaxCGIter, p.MaxCGIter)
	assert.Equal(t, config.DefaultEpsilon, p.Epsilon)
	assert.Equal(t, config.DefaultReducedCostEpsilon, p.RCEpsilon)
	assert.Equal(t, pricing.Knapsack, c.PricingMethod())
	assert.Equal(t, ".", c.OutputDir())
	assert.Equal(t, "", c.LogPrefix())
}

func TestNew_AppliesOptions(t *testing.T) {
	c := config.New(
		config.WithMaxNodes(50),
		config.WithMaxCGIter(25),
		config.WithEpsilon(1e-4),
		config.WithReducedCostEpsilon(1e-3),
		config.WithPricingMethod(pricing.ArcFlow),
		config.WithOutputDir("/tmp/out"),
		config.WithLogPrefix("/tmp/out/run"),
	)
	p := c.Params()

	assert.Equal(t, 50, p.MaxNodes)
	assert.Equal(t, 25, p.MaxCGIter)
	assert.Equal(t, 1e-4, p.Epsilon)
	assert.Equal(t, 1e-3, p.RCEpsilon)
	assert.Equal(t, pricing.ArcFlow, c.PricingMethod())
	assert.Equal(t, "/tmp/out", c.OutputDir())
	assert.Equal(t, "/tmp/out/run", c.LogPrefix())
}

func TestWithMaxNodes_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { config.WithMaxNodes(0) })
	assert.Panics(t, func() { config.WithMaxNodes(-1) })
}

func TestWithMaxCGIter_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { config.WithMaxCGIter(0) })
}

func TestWithEpsilon_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { config.WithEpsilon(0) })
	assert.Panics(t, func() { config.WithEpsilon(-1e-6) })
}

func TestWithReducedCostEpsilon_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { config.WithReducedCostEpsilon(0) })
}

func TestPricer_BuildsSelectedBackend(t *testing.T) {
	c := config.New(config.WithPricingMethod(pricing.DP))
	p, err := c.Pricer()

	assert.NoError(t, err)
	assert.NotNil(t, p)
}
