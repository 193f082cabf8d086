// Package bootstrap starts and stops the engine subsystems in the order the
// engine requires: memory, streaming, sound, then the optional music,
// spatial audio and communication modules. Stop runs the same stages in
// reverse.
package bootstrap

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/justyntemme/akgo/pkg/communication"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/memorymgr"
	"github.com/justyntemme/akgo/pkg/musicengine"
	"github.com/justyntemme/akgo/pkg/native"
	"github.com/justyntemme/akgo/pkg/settings"
	"github.com/justyntemme/akgo/pkg/soundengine"
	"github.com/justyntemme/akgo/pkg/spatialaudio"
	"github.com/justyntemme/akgo/pkg/streammgr"
)

// ErrAlreadyStarted is returned by Start while a Stack is running.
var ErrAlreadyStarted = errors.New("bootstrap: engine already started")

// Config selects what Start brings up. Settings not named here use the
// engine defaults.
type Config struct {
	// BankPath is the directory holding the generated SoundBanks.
	BankPath string
	// Language selects the localized bank folder. Empty keeps the engine
	// default.
	Language string
	// PluginDLLPath is where the engine looks for plug-in libraries.
	PluginDLLPath string
	// Banks are loaded, in order, once the sound engine is up.
	Banks []string

	Music         bool
	Spatial       bool
	Communication bool
	// AppName is announced to the authoring tool. Empty uses the
	// executable name.
	AppName string
}

type stage struct {
	name string
	stop func()
}

// Stack is a running engine. Stop it exactly once.
type Stack struct {
	stages []stage
}

var (
	mu      sync.Mutex
	running *Stack
)

// Start brings the engine up. When a stage fails, the stages already
// started are stopped again before the error is returned.
func Start(cfg Config) (*Stack, error) {
	mu.Lock()
	defer mu.Unlock()

	if running != nil {
		return nil, ErrAlreadyStarted
	}
	if !native.Registered() {
		return nil, fmt.Errorf("bootstrap: %w", native.ErrNoBackend)
	}

	s := &Stack{}
	if err := s.start(cfg); err != nil {
		debug.Error("bootstrap: %v", err)
		s.unwind()
		return nil, err
	}
	running = s
	debug.Info("bootstrap: started %v", s.Started())
	return s, nil
}

func (s *Stack) start(cfg Config) error {
	if err := memorymgr.Init(settings.DefaultMemSettings()); err != nil {
		return fmt.Errorf("bootstrap: memory manager: %w", err)
	}
	s.push("memorymgr", memorymgr.Term)

	if err := streammgr.InitDefault(settings.DefaultStreamMgrSettings(), settings.DefaultDeviceSettings(), cfg.BankPath); err != nil {
		// The stream manager may exist without its device.
		streammgr.TermDefault()
		return fmt.Errorf("bootstrap: stream manager: %w", err)
	}
	s.push("streammgr", streammgr.TermDefault)

	if cfg.Language != "" {
		if err := streammgr.SetCurrentLanguage(cfg.Language); err != nil {
			return fmt.Errorf("bootstrap: language %q: %w", cfg.Language, err)
		}
	}

	is, err := settings.DefaultInitSettings().WithPluginDLLPath(cfg.PluginDLLPath)
	if err != nil {
		return fmt.Errorf("bootstrap: plug-in path: %w", err)
	}
	if err := soundengine.Init(is, settings.DefaultPlatformInitSettings()); err != nil {
		return fmt.Errorf("bootstrap: sound engine: %w", err)
	}
	s.push("soundengine", soundengine.Term)

	for _, bank := range cfg.Banks {
		if _, err := soundengine.LoadBank(bank); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
	}

	if cfg.Music {
		if err := musicengine.Init(settings.DefaultMusicSettings()); err != nil {
			return fmt.Errorf("bootstrap: music engine: %w", err)
		}
		s.push("musicengine", musicengine.Term)
	}
	if cfg.Spatial {
		if err := spatialaudio.Init(settings.DefaultSpatialAudioInitSettings()); err != nil {
			return fmt.Errorf("bootstrap: spatial audio: %w", err)
		}
		s.push("spatialaudio", spatialaudio.Term)
	}
	if cfg.Communication {
		comm := settings.DefaultCommSettings()
		if cfg.AppName != "" {
			comm.SetAppNetworkName(cfg.AppName)
		}
		if err := communication.Init(comm); err != nil {
			return fmt.Errorf("bootstrap: communication: %w", err)
		}
		s.push("communication", communication.Term)
	}
	return nil
}

func (s *Stack) push(name string, stop func()) {
	s.stages = append(s.stages, stage{name: name, stop: stop})
}

func (s *Stack) unwind() {
	for i := len(s.stages) - 1; i >= 0; i-- {
		s.stages[i].stop()
	}
	s.stages = nil
}

// Started lists the running stages in start order.
func (s *Stack) Started() []string {
	names := make([]string, len(s.stages))
	for i, st := range s.stages {
		names[i] = st.name
	}
	return names
}

// Stop terminates every stage in reverse start order. Stopping a stopped
// Stack does nothing.
func (s *Stack) Stop() {
	mu.Lock()
	defer mu.Unlock()

	if len(s.stages) == 0 {
		return
	}
	stopped := s.Started()
	slices.Reverse(stopped)
	s.unwind()
	if running == s {
		running = nil
	}
	debug.Info("bootstrap: stopped %v", stopped)
}
