package bootstrap

import (
	"errors"
	"slices"
	"testing"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
	"github.com/justyntemme/akgo/pkg/native/sim"
)

// spatialFails is a sim engine whose spatial audio module cannot start.
type spatialFails struct {
	*sim.Engine
}

func (spatialFails) SpatialInit(*native.SpatialAudioInitSettings) ak.Result {
	return ak.InsufficientMemory
}

func useSim(t *testing.T, e native.Engine) {
	t.Helper()
	native.Use(e)
	t.Cleanup(native.Reset)
}

func TestStartStop(t *testing.T) {
	e := sim.New(nil)
	useSim(t, e)

	s, err := Start(Config{
		BankPath:      "banks",
		Language:      "English(US)",
		PluginDLLPath: "plugins",
		Banks:         []string{"Init.bnk", "TheBank.bnk"},
		Music:         true,
		Spatial:       true,
		Communication: true,
		AppName:       "bootstrap test",
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	want := []string{"memorymgr", "streammgr", "soundengine", "musicengine", "spatialaudio", "communication"}
	if got := s.Started(); !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if e.BasePath() != "banks" || e.Language() != "English(US)" || e.PluginDLLPath() != "plugins" {
		t.Errorf("Unexpected configuration %q %q %q", e.BasePath(), e.Language(), e.PluginDLLPath())
	}
	if !e.IsBankLoaded(sim.BankID("TheBank.bnk")) {
		t.Error("Expected TheBank.bnk to be loaded")
	}
	if comm, up := e.CommSettings(); !up || comm.AppName() != "bootstrap test" {
		t.Errorf("Expected communication as %q, got %q (up %v)", "bootstrap test", comm.AppName(), up)
	}

	if _, err := Start(Config{BankPath: "banks"}); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("Expected ErrAlreadyStarted, got %v", err)
	}

	s.Stop()
	if e.IsInitialized() || e.MemIsInitialized() || e.BasePath() != "" {
		t.Error("Expected every stage to be stopped")
	}
	if len(s.Started()) != 0 {
		t.Errorf("Expected no running stages, got %v", s.Started())
	}
	s.Stop()

	again, err := Start(Config{BankPath: "banks"})
	if err != nil {
		t.Fatalf("Expected a restart after Stop, got %v", err)
	}
	again.Stop()
}

func TestMinimalStack(t *testing.T) {
	e := sim.New(nil)
	useSim(t, e)

	s, err := Start(Config{BankPath: "banks"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	if got := s.Started(); !slices.Equal(got, []string{"memorymgr", "streammgr", "soundengine"}) {
		t.Errorf("Unexpected stages %v", got)
	}
	if e.MusicInitialized() {
		t.Error("Expected the music engine to stay down")
	}
}

func TestStartUnwinds(t *testing.T) {
	tests := []struct {
		name   string
		engine func() native.Engine
		cfg    Config
		want   error
	}{
		{
			name:   "SpatialFails",
			engine: func() native.Engine { return spatialFails{sim.New(nil)} },
			cfg:    Config{BankPath: "banks", Music: true, Spatial: true, Communication: true},
			want:   ak.InsufficientMemory,
		},
		{
			name:   "MissingBank",
			engine: func() native.Engine { return sim.New(nil) },
			cfg:    Config{BankPath: "banks", Banks: []string{"Missing.bnk"}},
			want:   ak.FileNotFound,
		},
		{
			name:   "BadLanguage",
			engine: func() native.Engine { return sim.New(nil) },
			cfg:    Config{BankPath: "banks", Language: "Eng\x00lish"},
			want:   ak.InvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.engine()
			useSim(t, e)

			s, err := Start(tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if s != nil {
				t.Error("Expected no stack on failure")
			}
			if e.IsInitialized() || e.MemIsInitialized() {
				t.Error("Expected started stages to be unwound")
			}

			native.Use(sim.New(nil))
			s, err = Start(Config{BankPath: "banks"})
			if err != nil {
				t.Fatalf("Expected Start to work after a failed start, got %v", err)
			}
			s.Stop()
		})
	}
}

func TestStartWithoutBackend(t *testing.T) {
	native.Reset()
	if _, err := Start(Config{BankPath: "banks"}); !errors.Is(err, native.ErrNoBackend) {
		t.Errorf("Expected ErrNoBackend, got %v", err)
	}
}
