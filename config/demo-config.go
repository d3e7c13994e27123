package config

import (
	"flag"
	"time"

	"github.com/pkg/errors"
)

var ErrUnknownScenario = errors.New("unknown scenario")

var Scenarios = []string{"build", "splice", "alias", "cycle", "stress", "all"}

type DemoConfig struct {
	Scenario         string
	Nodes            int
	ProgressInterval time.Duration
	Debug            bool
}

func NewDemoConfig() *DemoConfig {
	return &DemoConfig{
		Scenario:         "all",
		Nodes:            1000,
		ProgressInterval: 50 * time.Millisecond,
		Debug:            false,
	}
}

// Bind registers flags overriding the config values on fs.
func (c *DemoConfig) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "Scenario to run (build, splice, alias, cycle, stress, all)")
	fs.IntVar(&c.Nodes, "nodes", c.Nodes, "Number of nodes the stress scenario inserts")
	fs.DurationVar(&c.ProgressInterval, "progress-interval", c.ProgressInterval, "Redraw interval of the stress progress line")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug output")
}

func (c *DemoConfig) Validate() error {
	found := false
	for _, s := range Scenarios {
		if s == c.Scenario {
			found = true
			break
		}
	}
	if !found {
		return errors.Wrapf(ErrUnknownScenario, "'%s'", c.Scenario)
	}
	if c.Nodes < 0 {
		return errors.Errorf("nodes must not be negative, got %d", c.Nodes)
	}
	if c.ProgressInterval <= 0 {
		return errors.Errorf("progress interval must be positive, got %s", c.ProgressInterval)
	}
	return nil
}
