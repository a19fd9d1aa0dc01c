package trace

import "github.com/giongto35/gldispatch/pkg/logger"

// LogSink writes every call to log at debug level.
func LogSink(log *logger.Logger) Sink {
	return SinkFunc(func(c Call) {
		log.Debug().
			Uint64("seq", c.Seq).
			Int("offset", int(c.Offset)).
			Strs("args", c.Args).
			Msg(c.Name)
	})
}
