package thread

import "testing"

func TestMainWithoutWrap(t *testing.T) {
	value := 0
	Main(func() { value = 1 })
	if value != 1 {
		t.Errorf("wrong value %v", value)
	}
}

func TestMainInsideWrap(t *testing.T) {
	value := 0
	Wrap(func() {
		Main(func() { value++ })
		Main(func() { value++ })
	})
	if value != 2 {
		t.Errorf("wrong value %v", value)
	}
}
