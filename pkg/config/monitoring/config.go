package monitoring

import "github.com/spf13/pflag"

type Config struct {
	Port             int    `default:"6601"`
	URLPrefix        string `fig:"urlPrefix"`
	MetricEnabled    bool   `fig:"metricEnabled"`
	ProfilingEnabled bool   `fig:"profilingEnabled"`
	// SlotsEnabled serves the table state as JSON on /slots.
	SlotsEnabled bool `fig:"slotsEnabled"`
}

func (c *Config) IsEnabled() bool { return c.MetricEnabled || c.ProfilingEnabled || c.SlotsEnabled }

func (c *Config) WithFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Port, "monitoring.port", c.Port, "Monitoring server port")
	fs.BoolVar(&c.MetricEnabled, "monitoring.metrics", c.MetricEnabled, "Serve prometheus metrics")
	fs.BoolVar(&c.ProfilingEnabled, "monitoring.pprof", c.ProfilingEnabled, "Serve pprof")
	fs.BoolVar(&c.SlotsEnabled, "monitoring.slots", c.SlotsEnabled, "Serve the table state on /slots")
}
