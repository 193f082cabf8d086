package sim

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/justyntemme/akgo/pkg/ak"
)

// ErrInvalidCatalog is returned for catalogs the engine cannot play.
var ErrInvalidCatalog = errors.New("sim: invalid catalog")

// Catalog is the authored content the simulated engine knows about: the
// banks with their events and the game syncs they reference.
type Catalog struct {
	Banks          []Bank          `toml:"bank"`
	GameParameters []GameParameter `toml:"game_parameter"`
	SwitchGroups   []SyncGroup     `toml:"switch_group"`
	StateGroups    []SyncGroup     `toml:"state_group"`
	Triggers       []string        `toml:"triggers"`
}

// Bank is a SoundBank file and the events packaged in it.
type Bank struct {
	Name   string  `toml:"name"`
	Events []Event `toml:"event"`
}

// Event is an authored event. A zero LengthMs ends the event on the first
// rendered frame. Tempo > 0 makes the event a music segment that produces
// music sync callbacks.
type Event struct {
	Name          string     `toml:"name"`
	LengthMs      int32      `toml:"length_ms"`
	Looping       bool       `toml:"looping"`
	Tempo         float32    `toml:"tempo"`
	BeatsPerBar   int        `toml:"beats_per_bar"`
	AudioNodeID   uint32     `toml:"audio_node_id"`
	MediaID       uint32     `toml:"media_id"`
	Streaming     bool       `toml:"streaming"`
	Channels      uint8      `toml:"channels"`
	PlaylistID    uint32     `toml:"playlist_id"`
	PlaylistItems uint32     `toml:"playlist_items"`
	Markers       []Cue      `toml:"marker"`
	UserCues      []Cue      `toml:"user_cue"`
	Notes         []MIDINote `toml:"note"`
	// Stops lists events whose instances on the same game object this
	// event stops.
	Stops []string `toml:"stops"`
}

// Cue is a named point inside one pass of an event.
type Cue struct {
	AtMs int32  `toml:"at_ms"`
	Name string `toml:"name"`
	ID   uint32 `toml:"id"`
}

// MIDINote produces a note-on at AtMs and a note-off LengthMs later.
type MIDINote struct {
	AtMs     int32 `toml:"at_ms"`
	LengthMs int32 `toml:"length_ms"`
	Channel  uint8 `toml:"channel"`
	Note     uint8 `toml:"note"`
	Velocity uint8 `toml:"velocity"`
}

// GameParameter is an RTPC with its authored default.
type GameParameter struct {
	Name    string       `toml:"name"`
	Default ak.RtpcValue `toml:"default"`
	Min     ak.RtpcValue `toml:"min"`
	Max     ak.RtpcValue `toml:"max"`
}

// SyncGroup is a switch or state group. The first state is the default.
type SyncGroup struct {
	Name   string   `toml:"name"`
	States []string `toml:"states"`
}

// BankID is the ID the engine assigns to a bank loaded by file name.
func BankID(name string) ak.BankID {
	return ak.HashName(strings.TrimSuffix(name, ".bnk"))
}

// ParseCatalog decodes a TOML catalog. Unknown keys are rejected.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, fmt.Errorf("sim: decode catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s", ErrInvalidCatalog, undecoded[0])
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalog reads a TOML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	var c Catalog
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, fmt.Errorf("sim: load catalog %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %s", ErrInvalidCatalog, path, undecoded[0])
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks names, hash collisions and event timing.
func (c *Catalog) Validate() error {
	ids := make(map[ak.UniqueID]string)
	claim := func(kind, name string) error {
		if name == "" {
			return fmt.Errorf("%w: %s without a name", ErrInvalidCatalog, kind)
		}
		id := ak.HashName(name)
		if other, ok := ids[id]; ok && !strings.EqualFold(other, name) {
			return fmt.Errorf("%w: %s %q collides with %q", ErrInvalidCatalog, kind, name, other)
		}
		ids[id] = name
		return nil
	}

	banks := make(map[ak.BankID]bool)
	events := make(map[string]bool)
	for _, b := range c.Banks {
		if b.Name == "" {
			return fmt.Errorf("%w: bank without a name", ErrInvalidCatalog)
		}
		if banks[BankID(b.Name)] {
			return fmt.Errorf("%w: duplicate bank %q", ErrInvalidCatalog, b.Name)
		}
		banks[BankID(b.Name)] = true
		for _, ev := range b.Events {
			if err := claim("event", ev.Name); err != nil {
				return err
			}
			if err := ev.validate(); err != nil {
				return err
			}
			events[strings.ToLower(ev.Name)] = true
		}
	}
	for _, b := range c.Banks {
		for _, ev := range b.Events {
			for _, s := range ev.Stops {
				if !events[strings.ToLower(s)] {
					return fmt.Errorf("%w: event %q stops unknown event %q", ErrInvalidCatalog, ev.Name, s)
				}
			}
		}
	}
	for _, p := range c.GameParameters {
		if err := claim("game parameter", p.Name); err != nil {
			return err
		}
		if p.Max < p.Min {
			return fmt.Errorf("%w: game parameter %q has max < min", ErrInvalidCatalog, p.Name)
		}
	}
	for _, groups := range [][]SyncGroup{c.SwitchGroups, c.StateGroups} {
		for _, g := range groups {
			if err := claim("group", g.Name); err != nil {
				return err
			}
			if len(g.States) == 0 {
				return fmt.Errorf("%w: group %q has no states", ErrInvalidCatalog, g.Name)
			}
			for _, s := range g.States {
				if s == "" {
					return fmt.Errorf("%w: group %q has an unnamed state", ErrInvalidCatalog, g.Name)
				}
			}
		}
	}
	for _, t := range c.Triggers {
		if err := claim("trigger", t); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Event) validate() error {
	switch {
	case ev.LengthMs < 0:
		return fmt.Errorf("%w: event %q has a negative length", ErrInvalidCatalog, ev.Name)
	case ev.Looping && ev.LengthMs == 0:
		return fmt.Errorf("%w: looping event %q needs a length", ErrInvalidCatalog, ev.Name)
	case ev.Tempo < 0:
		return fmt.Errorf("%w: event %q has a negative tempo", ErrInvalidCatalog, ev.Name)
	case ev.BeatsPerBar < 0:
		return fmt.Errorf("%w: event %q has a negative time signature", ErrInvalidCatalog, ev.Name)
	}
	for _, cues := range [][]Cue{ev.Markers, ev.UserCues} {
		for _, c := range cues {
			if c.AtMs < 0 || (ev.LengthMs > 0 && c.AtMs >= ev.LengthMs) {
				return fmt.Errorf("%w: event %q has cue %q outside the event", ErrInvalidCatalog, ev.Name, c.Name)
			}
		}
	}
	for _, n := range ev.Notes {
		if n.AtMs < 0 || n.LengthMs < 0 || n.Note > 127 || n.Velocity > 127 || n.Channel > 15 {
			return fmt.Errorf("%w: event %q has an invalid MIDI note", ErrInvalidCatalog, ev.Name)
		}
	}
	return nil
}

func (ev *Event) isMusic() bool { return ev.Tempo > 0 }

func (ev *Event) beatsPerBar() int {
	if ev.BeatsPerBar == 0 {
		return 4
	}
	return ev.BeatsPerBar
}

func (ev *Event) channels() uint8 {
	if ev.Channels == 0 {
		return 2
	}
	return ev.Channels
}

// DefaultCatalog is the content the tests and examples use: an init bank and
// one bank holding a looping 120 BPM music segment in 4/4, a one-shot with a
// marker and a MIDI note, a playlist and a stop event.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Banks: []Bank{
			{Name: "Init.bnk"},
			{
				Name: "TheBank.bnk",
				Events: []Event{
					{
						Name:        "PlayLooping",
						LengthMs:    8000,
						Looping:     true,
						Tempo:       120,
						BeatsPerBar: 4,
						AudioNodeID: 1001,
						MediaID:     2001,
						Streaming:   true,
						Markers:     []Cue{{AtMs: 0, Name: "LoopStart", ID: 1}},
						UserCues:    []Cue{{AtMs: 4000, Name: "Halfway"}},
					},
					{Name: "StopLooping", Stops: []string{"PlayLooping"}},
					{
						Name:        "PlayOneShot",
						LengthMs:    500,
						AudioNodeID: 1002,
						MediaID:     2002,
						Markers:     []Cue{{AtMs: 250, Name: "Impact", ID: 7}},
						Notes:       []MIDINote{{AtMs: 0, LengthMs: 200, Channel: 0, Note: 60, Velocity: 100}},
					},
					{
						Name:          "PlayPlaylist",
						LengthMs:      4000,
						Tempo:         90,
						BeatsPerBar:   3,
						PlaylistID:    3001,
						PlaylistItems: 3,
					},
				},
			},
		},
		GameParameters: []GameParameter{
			{Name: "Doppler", Default: 0, Min: -1, Max: 1},
			{Name: "Volume", Default: 100, Min: 0, Max: 100},
		},
		SwitchGroups: []SyncGroup{{Name: "Surface", States: []string{"Grass", "Stone", "Wood"}}},
		StateGroups:  []SyncGroup{{Name: "GameState", States: []string{"Menu", "InGame"}}},
		Triggers:     []string{"Stinger"},
	}
}
