package streammgr

import (
	"errors"
	"testing"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/memorymgr"
	"github.com/justyntemme/akgo/pkg/native"
	"github.com/justyntemme/akgo/pkg/native/sim"
	"github.com/justyntemme/akgo/pkg/settings"
)

func start(t *testing.T) *sim.Engine {
	t.Helper()
	e := sim.New(nil)
	native.Use(e)
	if err := memorymgr.Init(settings.DefaultMemSettings()); err != nil {
		t.Fatalf("memorymgr.Init: %v", err)
	}
	t.Cleanup(func() {
		memorymgr.Term()
		native.Reset()
	})
	return e
}

func TestInitDefault(t *testing.T) {
	e := start(t)

	device := settings.DefaultDeviceSettings()
	device.UseStreamCache = false
	if err := InitDefault(settings.DefaultStreamMgrSettings(), device, "banks/Windows"); err != nil {
		t.Fatalf("InitDefault: %v", err)
	}
	defer TermDefault()

	if got := e.BasePath(); got != "banks/Windows" {
		t.Errorf("Expected base path banks/Windows, got %q", got)
	}
	if !e.DeviceSettings().UseStreamCache {
		t.Error("Expected the stream cache to be forced on")
	}

	if err := SetCurrentLanguage("English(US)"); err != nil {
		t.Fatalf("SetCurrentLanguage: %v", err)
	}
	if got := e.Language(); got != "English(US)" {
		t.Errorf("Expected English(US), got %q", got)
	}
}

func TestInitFailures(t *testing.T) {
	t.Run("NoMemoryManager", func(t *testing.T) {
		native.Use(sim.New(nil))
		defer native.Reset()
		if err := Init(settings.DefaultStreamMgrSettings()); !errors.Is(err, ak.Fail) {
			t.Errorf("Expected Fail, got %v", err)
		}
	})

	t.Run("BadDevice", func(t *testing.T) {
		start(t)
		device := settings.DefaultDeviceSettings()
		device.Granularity = 0
		err := InitDefault(settings.DefaultStreamMgrSettings(), device, "banks")
		defer TermDefault()
		if !errors.Is(err, ak.InvalidParameter) {
			t.Errorf("Expected InvalidParameter, got %v", err)
		}
	})

	t.Run("LanguageWithoutManager", func(t *testing.T) {
		start(t)
		if err := SetCurrentLanguage("French(France)"); !errors.Is(err, ak.StreamMgrNotInitialized) {
			t.Errorf("Expected StreamMgrNotInitialized, got %v", err)
		}
	})
}
