// Command glgen regenerates the dispatch offsets, typed accessors and
// backend bindings from the XML entry point registry.
package main

import (
	"context"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/giongto35/gldispatch/pkg/glgen"
	"github.com/giongto35/gldispatch/pkg/logger"
	xos "github.com/giongto35/gldispatch/pkg/os"
)

var Version = "?"

func main() {
	var conf glgen.Config
	flag.StringVar(&conf.In, "in", "api/gl_API.xml", "entry point registry")
	flag.StringVar(&conf.ABI, "abi", "api/abi.txt", "published offsets, empty to skip the check")
	flag.StringVar(&conf.Out, "out", ".", "module root to write into")
	flag.StringVar(&conf.Module, "module", "github.com/giongto35/gldispatch", "import path of the module")
	flag.BoolVar(&conf.UpdateABI, "update-abi", false, "publish new entry points to the ABI file")
	watch := flag.Bool("watch", false, "regenerate whenever the registry changes")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	log := logger.NewConsole(*debug, "gen", false)
	log.Debug().Msgf("glgen %s", Version)

	gen := glgen.New(conf, log)
	if !*watch {
		if _, err := gen.Run(); err != nil {
			log.Error().Err(err).Msg("generate")
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-xos.ExpectTermination()
		cancel()
	}()
	if err := gen.Watch(ctx); err != nil {
		log.Error().Err(err).Msg("watch")
		os.Exit(1)
	}
}
