// Package appconfig loads the TOML configuration of the example programs:
// which engine backend to use, how to start it and what to play.
package appconfig

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/bootstrap"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/native"
	"github.com/justyntemme/akgo/pkg/native/dynamic"
	"github.com/justyntemme/akgo/pkg/native/sim"
)

// SimBackend selects the simulated engine instead of a bridge library.
const SimBackend = "sim"

// ErrInvalid is returned for configurations that cannot be run.
var ErrInvalid = errors.New("appconfig: invalid configuration")

// Config is the content of an example's configuration file.
type Config struct {
	// Backend is SimBackend or the path of the engine bridge library.
	Backend string `toml:"backend"`
	// Catalog is an optional TOML catalog for the simulated engine.
	Catalog  string `toml:"catalog"`
	LogLevel string `toml:"log_level"`
	// LogFile, when set, receives the log instead of stderr.
	LogFile string `toml:"log_file"`

	BankPath      string   `toml:"bank_path"`
	Language      string   `toml:"language"`
	PluginDLLPath string   `toml:"plugin_dll_path"`
	Banks         []string `toml:"banks"`
	Music         bool     `toml:"music"`
	Spatial       bool     `toml:"spatial"`
	Communication bool     `toml:"communication"`
	AppName       string   `toml:"app_name"`

	Event Event `toml:"event"`
}

// Event is what the example posts.
type Event struct {
	Name       string          `toml:"name"`
	GameObject ak.GameObjectID `toml:"game_object"`
	Listener   ak.GameObjectID `toml:"listener"`
	// Callbacks names the callback types to subscribe to, for example
	// "MusicSyncBeat | MusicSyncBar".
	Callbacks string `toml:"callbacks"`
	// FrameRate is how many times per second the game loop renders.
	FrameRate int `toml:"frame_rate"`
}

// Default returns the configuration that plays the looping segment of the
// simulated engine's default catalog.
func Default() *Config {
	return &Config{
		Backend:  SimBackend,
		LogLevel: "info",
		BankPath: "banks",
		Language: "English(US)",
		Banks:    []string{"Init.bnk", "TheBank.bnk"},
		Music:    true,
		AppName:  "akgo",
		Event: Event{
			Name:       "PlayLooping",
			GameObject: 100,
			Listener:   1,
			FrameRate:  60,
		},
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("appconfig: %w", err)
	}
	return c, c.check(md)
}

// Decode reads a configuration from r over the defaults.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	md, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		return nil, fmt.Errorf("appconfig: %w", err)
	}
	return c, c.check(md)
}

func (c *Config) check(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %s", ErrInvalid, undecoded[0])
	}
	return c.Validate()
}

// Validate checks the fields that cannot be left to the engine.
func (c *Config) Validate() error {
	switch {
	case c.Backend == "":
		return fmt.Errorf("%w: no backend", ErrInvalid)
	case c.BankPath == "":
		return fmt.Errorf("%w: no bank_path", ErrInvalid)
	case c.Event.Name == "":
		return fmt.Errorf("%w: no event name", ErrInvalid)
	case c.Event.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate %d", ErrInvalid, c.Event.FrameRate)
	case c.Event.GameObject == c.Event.Listener:
		return fmt.Errorf("%w: game object and listener share id %d", ErrInvalid, c.Event.GameObject)
	case ak.IsReservedGameObject(c.Event.GameObject) || ak.IsReservedGameObject(c.Event.Listener):
		return fmt.Errorf("%w: reserved game object id", ErrInvalid)
	}
	if _, err := c.Callbacks(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := debug.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Callbacks returns the parsed callback subscription.
func (c *Config) Callbacks() (ak.CallbackType, error) {
	return ak.ParseCallbackType(c.Event.Callbacks)
}

// ApplyLogging sets the level of the package logger and, with log_file,
// sends it to that file. The returned function restores the previous
// logger.
func (c *Config) ApplyLogging() (restore func() error, err error) {
	level, err := debug.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.LogFile == "" {
		prev := debug.Default().Level()
		debug.SetLevel(level)
		return func() error { debug.SetLevel(prev); return nil }, nil
	}

	l, f, err := debug.OpenFile(c.LogFile, c.AppName, debug.DefaultFlags)
	if err != nil {
		return nil, err
	}
	l.SetLevel(level)
	prev := debug.SetDefault(l)
	return func() error {
		debug.SetDefault(prev)
		return f.Close()
	}, nil
}

// Bootstrap returns the start configuration of the engine.
func (c *Config) Bootstrap() bootstrap.Config {
	return bootstrap.Config{
		BankPath:      c.BankPath,
		Language:      c.Language,
		PluginDLLPath: c.PluginDLLPath,
		Banks:         c.Banks,
		Music:         c.Music,
		Spatial:       c.Spatial,
		Communication: c.Communication,
		AppName:       c.AppName,
	}
}

// OpenBackend creates the configured engine and registers it with
// native.Use. The returned close function releases it once the engine is
// stopped.
func (c *Config) OpenBackend() (native.Engine, func() error, error) {
	if c.Backend == SimBackend {
		var catalog *sim.Catalog
		if c.Catalog != "" {
			var err error
			if catalog, err = sim.LoadCatalog(c.Catalog); err != nil {
				return nil, nil, err
			}
		}
		e := sim.New(catalog)
		native.Use(e)
		return e, func() error { native.Reset(); return nil }, nil
	}

	lib, err := dynamic.Open(c.Backend)
	if err != nil {
		return nil, nil, err
	}
	native.Use(lib)
	return lib, func() error {
		native.Reset()
		return lib.Close()
	}, nil
}
