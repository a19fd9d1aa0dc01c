package monitoring

import (
	"encoding/json"
	"net/http"

	"github.com/giongto35/gldispatch/pkg/dispatch"
	"github.com/giongto35/gldispatch/pkg/glapi"
)

type (
	SlotState struct {
		Offset    dispatch.Offset `json:"offset"`
		Name      string          `json:"name"`
		Signature string          `json:"signature"`
		Bound     bool            `json:"bound"`
	}
	TableState struct {
		Size    int         `json:"size"`
		Bound   int         `json:"bound"`
		Unbound []string    `json:"unbound"`
		Slots   []SlotState `json:"slots,omitempty"`
	}
)

// State snapshots disp. With all set every slot is listed.
func State(disp *dispatch.Table, all bool) TableState {
	st := TableState{Size: disp.Len(), Bound: disp.Bound(), Unbound: []string{}}
	for _, o := range disp.Unbound() {
		st.Unbound = append(st.Unbound, glapi.Name(o))
	}
	if all {
		for _, e := range glapi.Entries() {
			st.Slots = append(st.Slots, SlotState{
				Offset:    e.Offset(),
				Name:      e.Name(),
				Signature: glapi.Signature(e.Offset()),
				Bound:     e.Bound(disp),
			})
		}
	}
	return st
}

// SlotsHandler serves State as JSON, ?all lists every slot.
func SlotsHandler(disp *dispatch.Table) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, all := r.URL.Query()["all"]
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(State(disp, all))
	})
}

// JSONHandler serves whatever get returns at request time.
func JSONHandler(get func() any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(get())
	})
}
