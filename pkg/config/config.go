package config

import (
	"errors"

	"github.com/kkyr/fig"
	"github.com/spf13/pflag"

	"github.com/giongto35/gldispatch/pkg/config/monitoring"
)

type Config struct {
	Log struct {
		Debug   bool
		NoColor bool `fig:"noColor"`
	}
	Backend Backend
	Trace   Trace
	// Monitoring also serves the live trace stream on /trace.
	Monitoring monitoring.Config
}

type Backend struct {
	// Name is a registered backend or auto. Auto never picks noop.
	Name string `default:"auto"`
	// Fallback stubs every slot the backend left empty with the noop
	// implementation, turning faults into logged zero-result calls.
	Fallback bool
	GL       struct {
		Context string `default:"compat"`
		Major   int
		Minor   int
	}
	Window struct {
		Width  int `default:"1"`
		Height int `default:"1"`
	}
}

type Trace struct {
	Enabled bool
	// Log writes every call at debug level.
	Log bool
	// Entries limits logging and streaming to these entry points.
	Entries []string
}

// allows custom config path
var configPath string

// NewConfig loads the config file, then the environment. Without a file
// the defaults and the environment are used. Flags go on top with WithFlags.
func NewConfig() (conf Config, err error) {
	err = LoadConfig(&conf, configPath)
	if errors.Is(err, fig.ErrFileNotFound) && configPath == "" {
		conf = Config{}
		err = LoadConfigEnv(&conf)
	}
	return
}

func (c *Config) WithFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.Log.Debug, "debug", "d", c.Log.Debug, "Verbose logging")
	fs.StringVarP(&c.Backend.Name, "backend", "b", c.Backend.Name, "GL backend: auto, native, noop")
	fs.BoolVar(&c.Backend.Fallback, "fallback", c.Backend.Fallback, "Stub missing entry points with noop")
	fs.StringVar(&c.Backend.GL.Context, "gl.context", c.Backend.GL.Context, "GL profile: compat, core, es")
	fs.BoolVar(&c.Trace.Enabled, "trace", c.Trace.Enabled, "Record calls through the table")
	fs.BoolVar(&c.Trace.Log, "trace.log", c.Trace.Log, "Log every traced call")
	fs.StringSliceVar(&c.Trace.Entries, "trace.entries", c.Trace.Entries, "Only log/stream these entry points")
	c.Monitoring.WithFlags(fs)
}

// ConfigPath registers the --conf flag. It must be parsed before NewConfig.
func ConfigPath(fs *pflag.FlagSet) {
	fs.StringVarP(&configPath, "conf", "c", "", "Set custom configuration file path")
}
