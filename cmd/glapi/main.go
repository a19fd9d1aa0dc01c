// Command glapi builds a dispatch table from the configured backend and
// serves its state, call metrics and a live call trace.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"

	"github.com/giongto35/gldispatch/pkg/backend"
	"github.com/giongto35/gldispatch/pkg/backend/native"
	"github.com/giongto35/gldispatch/pkg/backend/noop"
	"github.com/giongto35/gldispatch/pkg/config"
	"github.com/giongto35/gldispatch/pkg/dispatch"
	"github.com/giongto35/gldispatch/pkg/glapi"
	"github.com/giongto35/gldispatch/pkg/logger"
	"github.com/giongto35/gldispatch/pkg/monitoring"
	xos "github.com/giongto35/gldispatch/pkg/os"
	"github.com/giongto35/gldispatch/pkg/service"
	"github.com/giongto35/gldispatch/pkg/thread"
	"github.com/giongto35/gldispatch/pkg/trace"
)

var Version = "?"

func main() { thread.Wrap(run) }

func run() {
	// --conf has to be known before the file is loaded
	pre := flag.NewFlagSet("conf", flag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.Usage = func() {}
	config.ConfigPath(pre)
	_ = pre.Parse(os.Args[1:])

	conf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	conf.WithFlags(flag.CommandLine)
	config.ConfigPath(flag.CommandLine)
	list := flag.BoolP("list", "l", false, "Print the entry point registry and exit")
	flag.Parse()

	if *list {
		printRegistry()
		return
	}

	log := logger.NewConsole(conf.Log.Debug, "gl", conf.Log.NoColor)
	log.Info().Msgf("version %s", Version)
	log.Debug().Msgf("config: %+v", conf)

	if err := serve(conf, log); err != nil {
		log.Error().Err(err).Msg("glapi")
		os.Exit(1)
	}
}

func serve(conf config.Config, log *logger.Logger) error {
	b, err := backend.Open(conf.Backend.Name, backend.Options{
		Log:     log,
		Context: conf.Backend.GL.Context,
		Major:   conf.Backend.GL.Major,
		Minor:   conf.Backend.GL.Minor,
		Width:   conf.Backend.Window.Width,
		Height:  conf.Backend.Window.Height,
	})
	if err != nil {
		return err
	}
	var services service.Group
	services.Add(b)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := services.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	disp := glapi.NewTable()
	bound, err := b.Populate(disp)
	if err != nil {
		return err
	}
	log.Info().Msgf("%v backend bound %d of %d entry points", b.Name(), bound, glapi.Count)

	if b.Name() == native.Name {
		info := native.GLInfo(disp)
		log.Info().Str("vendor", info.Vendor).Str("renderer", info.Renderer).Msgf("GL %v", info.Version)
	}

	if conf.Backend.Fallback && b.Name() != noop.Name {
		if n := disp.Fill(noop.New(log).Table()); n > 0 {
			log.Warn().Msgf("%d entry points fall back to noop", n)
		}
	}

	var routes []monitoring.Route
	if conf.Monitoring.SlotsEnabled {
		routes = append(routes, monitoring.Route{Pattern: "/slots", Handler: monitoring.SlotsHandler(disp)})
	}

	if conf.Trace.Enabled {
		tr, stream, err := newTracer(conf, log)
		if err != nil {
			return err
		}
		services.Add(stream)
		traced := tr.Wrap(disp)
		log.Info().Msgf("tracing %d entry points", traced.Bound())
		disp = traced
		routes = append(routes,
			monitoring.Route{Pattern: "/trace", Handler: stream},
			monitoring.Route{Pattern: "/calls", Handler: monitoring.JSONHandler(func() any { return tr.Report(stream) })},
		)
	}

	if conf.Monitoring.IsEnabled() || conf.Trace.Enabled {
		mon, err := monitoring.New(conf.Monitoring, log, routes...)
		if err != nil {
			return err
		}
		services.Add(mon)
	}

	logUnbound(disp, log)

	services.Start()
	<-xos.ExpectTermination()
	return nil
}

func newTracer(conf config.Config, log *logger.Logger) (*trace.Tracer, *trace.Stream, error) {
	stream := trace.NewStream(log.Extend(log.With().Str("m", "trace")))
	opts := []trace.Option{trace.WithSink(stream), trace.WithEntries(conf.Trace.Entries...)}
	if conf.Trace.Log {
		opts = append(opts, trace.WithSink(trace.LogSink(log.Extend(log.With().Str("m", "call")))))
	}
	if conf.Monitoring.MetricEnabled {
		m, err := trace.NewMetrics(prometheus.DefaultRegisterer)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, trace.WithMetrics(m))
	}
	tr := trace.New(opts...)
	if unknown := tr.Unknown(); len(unknown) > 0 {
		log.Warn().Strs("entries", unknown).Msg("trace entries match no entry point, they are not streamed")
	}
	return tr, stream, nil
}

func logUnbound(disp *dispatch.Table, log *logger.Logger) {
	unbound := disp.Unbound()
	if len(unbound) == 0 {
		return
	}
	names := make([]string, len(unbound))
	for i, o := range unbound {
		names[i] = glapi.Name(o)
	}
	log.Debug().Msgf("unbound: %v", strings.Join(names, " "))
}

func printRegistry() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, e := range glapi.Entries() {
		aliases := strings.Join(glapi.Aliases(e.Offset()), ",")
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.Offset(), e.Name(), glapi.Signature(e.Offset()), aliases)
	}
	_ = w.Flush()
}
