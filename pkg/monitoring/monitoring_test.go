package monitoring

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/giongto35/gldispatch/pkg/config/monitoring"
	"github.com/giongto35/gldispatch/pkg/glapi"
	"github.com/giongto35/gldispatch/pkg/logger"
)

func TestSlotsHandler(t *testing.T) {
	disp := glapi.NewTable()
	glapi.SetClear(disp, func(uint32) {})

	tests := []struct {
		url   string
		slots int
	}{
		{url: "/slots", slots: 0},
		{url: "/slots?all", slots: glapi.Count},
	}
	for _, test := range tests {
		rec := httptest.NewRecorder()
		SlotsHandler(disp).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, test.url, nil))

		var st TableState
		if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
			t.Fatal(err)
		}
		if st.Size != glapi.Count || st.Bound != 1 || len(st.Unbound) != glapi.Count-1 {
			t.Errorf("%v: got size %d bound %d unbound %d", test.url, st.Size, st.Bound, len(st.Unbound))
		}
		if len(st.Slots) != test.slots {
			t.Errorf("%v: %d slots listed", test.url, len(st.Slots))
		}
		if test.slots > 0 && !st.Slots[glapi.OffsetClear].Bound {
			t.Errorf("Clear should be bound")
		}
	}
}

func TestServer(t *testing.T) {
	disp := glapi.NewTable()
	conf := monitoring.Config{Port: 0, URLPrefix: "/gl", MetricEnabled: true, SlotsEnabled: true}
	m, err := New(conf, logger.Default(), Route{Pattern: "/slots", Handler: SlotsHandler(disp)})
	if err != nil {
		t.Fatal(err)
	}
	m.Run()
	defer func() { _ = m.Shutdown(context.Background()) }()

	for _, path := range []string{"/gl/slots", "/gl/metrics"} {
		resp, err := http.Get("http://" + m.Addr() + path)
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%v: status %v", path, resp.StatusCode)
		}
		if path == "/gl/slots" && !strings.Contains(string(body), `"size":`) {
			t.Errorf("%v: %s", path, body)
		}
	}
}
