package viewport

import "testing"

func TestNewDefaults(t *testing.T) {
	eng := New((&recordAlloc{}).alloc)
	if eng == nil {
		t.Fatal("New returned nil")
	}

	// Virtual Y points up unless WithYAxisDown is given.
	if !eng.Camera().YUp() {
		t.Error("default camera orientation is not Y up")
	}
	// A default BaseConfig is supplied when no config option is given.
	if _, ok := eng.LiveConfig().(*BaseConfig); !ok {
		t.Errorf("default live config is %T, want *BaseConfig", eng.LiveConfig())
	}
	if eng.direct {
		t.Error("frame cache disabled without WithDirectRendering")
	}
}

func TestWithYAxisDown(t *testing.T) {
	eng := New((&recordAlloc{}).alloc, WithYAxisDown())
	if eng.Camera().YUp() {
		t.Error("WithYAxisDown camera still reports Y up")
	}
}

func TestWithConfig(t *testing.T) {
	cfg := NewBaseConfig()
	cfg.ZoomToCursor = true

	eng := New((&recordAlloc{}).alloc, WithConfig(cfg))
	if eng.LiveConfig() != Config(cfg) {
		t.Error("WithConfig did not install the given live config")
	}

	// A nil config falls back to the defaults.
	eng = New((&recordAlloc{}).alloc, WithConfig(nil))
	if eng.LiveConfig() == nil {
		t.Fatal("WithConfig(nil) left the live config nil")
	}
}

func TestWithDirectRendering(t *testing.T) {
	eng := New((&recordAlloc{}).alloc, WithDirectRendering())
	if !eng.direct {
		t.Error("WithDirectRendering did not disable the frame cache")
	}
}
