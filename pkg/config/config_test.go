package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefaults(t *testing.T) {
	var conf Config
	if err := LoadConfigEnv(&conf); err != nil {
		t.Fatal(err)
	}
	if conf.Backend.Name != "auto" || conf.Backend.GL.Context != "compat" {
		t.Errorf("backend defaults %+v", conf.Backend)
	}
	if conf.Monitoring.Port != 6601 {
		t.Errorf("monitoring port %v", conf.Monitoring.Port)
	}
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("GLDISPATCH_BACKEND_NAME", "noop")
	t.Setenv("GLDISPATCH_TRACE_ENABLED", "true")
	t.Setenv("GLDISPATCH_BACKEND_GL_MAJOR", "3")

	var conf Config
	if err := LoadConfigEnv(&conf); err != nil {
		t.Fatal(err)
	}
	if conf.Backend.Name != "noop" || !conf.Trace.Enabled || conf.Backend.GL.Major != 3 {
		t.Errorf("env not applied: %+v", conf)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "backend:\n  name: native\n  fallback: true\ntrace:\n  entries: [Clear, Flush]\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	var conf Config
	if err := LoadConfig(&conf, dir); err != nil {
		t.Fatal(err)
	}
	if conf.Backend.Name != "native" || !conf.Backend.Fallback {
		t.Errorf("file not applied: %+v", conf.Backend)
	}
	if len(conf.Trace.Entries) != 2 || conf.Trace.Entries[1] != "Flush" {
		t.Errorf("entries %v", conf.Trace.Entries)
	}
}

func TestFlagsOverride(t *testing.T) {
	var conf Config
	if err := LoadConfigEnv(&conf); err != nil {
		t.Fatal(err)
	}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	conf.WithFlags(fs)
	if err := fs.Parse([]string{"-b", "noop", "--trace", "--trace.entries=Clear,Flush", "--monitoring.port=9000"}); err != nil {
		t.Fatal(err)
	}
	if conf.Backend.Name != "noop" || !conf.Trace.Enabled || len(conf.Trace.Entries) != 2 || conf.Monitoring.Port != 9000 {
		t.Errorf("flags not applied: %+v", conf)
	}
	if conf.Backend.GL.Context != "compat" {
		t.Errorf("unset flag clobbered the config: %q", conf.Backend.GL.Context)
	}
}

func TestMonitoringFlags(t *testing.T) {
	tests := []struct {
		args    []string
		enabled bool
		check   func(c Config) bool
	}{
		{args: nil, check: func(c Config) bool { return !c.Monitoring.SlotsEnabled }},
		{args: []string{"--monitoring.slots"}, enabled: true, check: func(c Config) bool { return c.Monitoring.SlotsEnabled }},
		{args: []string{"--monitoring.metrics"}, enabled: true, check: func(c Config) bool { return c.Monitoring.MetricEnabled }},
		{args: []string{"--monitoring.pprof"}, enabled: true, check: func(c Config) bool { return c.Monitoring.ProfilingEnabled }},
	}
	for _, test := range tests {
		var conf Config
		if err := LoadConfigEnv(&conf); err != nil {
			t.Fatal(err)
		}
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		conf.WithFlags(fs)
		if err := fs.Parse(test.args); err != nil {
			t.Fatalf("%v: %v", test.args, err)
		}
		if !test.check(conf) {
			t.Errorf("%v not applied: %+v", test.args, conf.Monitoring)
		}
		if conf.Monitoring.IsEnabled() != test.enabled {
			t.Errorf("%v: enabled %v", test.args, conf.Monitoring.IsEnabled())
		}
	}
}
