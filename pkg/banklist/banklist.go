// Package banklist reads the SoundBank listings the authoring tool writes
// next to each bank (Init.txt, TheBank.txt, ...) and turns them into Go
// constants, so game code can post events and set game syncs by numeric ID.
//
// A listing is a sequence of sections. A section line starts with the
// resource type followed by a tab; the entry lines after it start with a
// tab and carry the ID, the name and, for switches and states, the group.
package banklist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/justyntemme/akgo/pkg/ak"
)

// ErrMalformed is returned for listings that do not follow the layout.
var ErrMalformed = errors.New("banklist: malformed listing")

// Kind is the resource type of an entry.
type Kind int

const (
	Event Kind = iota
	DialogueEvent
	SwitchGroup
	Switch
	StateGroup
	State
	GameParameter
	Trigger
	AudioBus
	AuxBus
	AudioDevice
)

var kindInfo = [...]struct {
	section string
	prefix  string
	comment string
}{
	Event:         {"Event", "Event", "Events"},
	DialogueEvent: {"Dialogue Event", "DialogueEvent", "Dialogue events"},
	SwitchGroup:   {"Switch Group", "SwitchGroup", "Switch groups"},
	Switch:        {"Switch", "Switch", "Switches, prefixed with their group"},
	StateGroup:    {"State Group", "StateGroup", "State groups"},
	State:         {"State", "State", "States, prefixed with their group"},
	GameParameter: {"Game Parameter", "GameParameter", "Game parameters"},
	Trigger:       {"Trigger", "Trigger", "Triggers"},
	AudioBus:      {"Audio Bus", "Bus", "Audio busses"},
	AuxBus:        {"Auxiliary Bus", "AuxBus", "Auxiliary busses"},
	AudioDevice:   {"Audio Devices", "AudioDevice", "Audio devices"},
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindInfo) {
		return kindInfo[k].section
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Grouped reports whether entries of k belong to a group.
func (k Kind) Grouped() bool {
	return k == Switch || k == State
}

func kindOf(section string) (Kind, bool) {
	for k, info := range kindInfo {
		if info.section == section {
			return Kind(k), true
		}
	}
	return 0, false
}

// Entry is one resource of a listing.
type Entry struct {
	Kind  Kind
	ID    ak.UniqueID
	Name  string
	Group string
}

// Listing is the content of one bank's listing file.
type Listing struct {
	// Bank is the bank file name, for example "Init.bnk".
	Bank    string
	Entries []Entry
}

// Parse reads the entries of a listing. Sections of types that have no
// Kind, such as the bank's media, are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	var (
		entries []Entry
		kind    Kind
		keep    bool
		line    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}

		if !strings.HasPrefix(text, "\t") {
			section, _, ok := strings.Cut(text, "\t")
			if !ok {
				return nil, fmt.Errorf("%w: line %d: section %q without columns", ErrMalformed, line, text)
			}
			kind, keep = kindOf(section)
			continue
		}
		if !keep {
			continue
		}

		cols := strings.Split(text[1:], "\t")
		if len(cols) < 2 {
			return nil, fmt.Errorf("%w: line %d: missing name", ErrMalformed, line)
		}
		id, err := strconv.ParseUint(cols[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: id %q: %v", ErrMalformed, line, cols[0], err)
		}
		e := Entry{Kind: kind, ID: ak.UniqueID(id), Name: cols[1]}
		if kind.Grouped() {
			if len(cols) < 3 || cols[2] == "" {
				return nil, fmt.Errorf("%w: line %d: %s %q without a group", ErrMalformed, line, kind, e.Name)
			}
			e.Group = cols[2]
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("banklist: read: %w", err)
	}
	return entries, nil
}

// ParseFile reads the listing at path. The bank name is derived from the
// file name.
func ParseFile(path string) (Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return Listing{}, fmt.Errorf("banklist: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return Listing{}, fmt.Errorf("%s: %w", path, err)
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Listing{Bank: stem + ".bnk", Entries: entries}, nil
}

// Discover returns the listings of a generated bank directory: Init.txt
// and the listings of the first language folder. Directories holding one
// folder per platform are searched under the current platform's folder.
func Discover(dir string) ([]string, error) {
	if sub := filepath.Join(dir, platformDir); isDir(sub) {
		dir = sub
	}
	paths := []string{filepath.Join(dir, "Init.txt")}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("banklist: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		langDir := filepath.Join(dir, e.Name())
		files, err := os.ReadDir(langDir)
		if err != nil {
			return nil, fmt.Errorf("banklist: %w", err)
		}
		for _, f := range files {
			if !f.IsDir() && filepath.Ext(f.Name()) == ".txt" {
				paths = append(paths, filepath.Join(langDir, f.Name()))
			}
		}
		break
	}
	return paths, nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
