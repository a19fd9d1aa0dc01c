package trace

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/giongto35/gldispatch/pkg/dispatch"
	"github.com/giongto35/gldispatch/pkg/glapi"
)

// Metrics exports call counts as gldispatch_calls_total{entry}.
type Metrics struct {
	calls *prometheus.CounterVec
	// children are resolved on first use so idle entries stay out of the output
	byOffset [glapi.Count]atomic.Pointer[prometheus.Counter]
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gldispatch",
			Name:      "calls_total",
			Help:      "GL calls made through a traced dispatch table.",
		}, []string{"entry"}),
	}
	if err := reg.Register(m.calls); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) inc(off dispatch.Offset) {
	c := m.byOffset[off].Load()
	if c == nil {
		counter := m.calls.WithLabelValues(glapi.Name(off))
		m.byOffset[off].Store(&counter)
		c = &counter
	}
	(*c).Inc()
}
