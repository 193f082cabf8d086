package ak

import (
	"fmt"
	"strings"
)

// CallbackType is the bitmask of callback categories a post subscribes to,
// and the single bit the engine raises when it invokes a callback.
type CallbackType uint32

const (
	EndOfEvent                     CallbackType = 0x0001
	EndOfDynamicSequenceItem       CallbackType = 0x0002
	Marker                         CallbackType = 0x0004
	Duration                       CallbackType = 0x0008
	SpeakerVolumeMatrix            CallbackType = 0x0010
	Starvation                     CallbackType = 0x0020
	MusicPlaylistSelect            CallbackType = 0x0040
	MusicPlayStarted               CallbackType = 0x0080
	MusicSyncBeat                  CallbackType = 0x0100
	MusicSyncBar                   CallbackType = 0x0200
	MusicSyncEntry                 CallbackType = 0x0400
	MusicSyncExit                  CallbackType = 0x0800
	MusicSyncGrid                  CallbackType = 0x1000
	MusicSyncUserCue               CallbackType = 0x2000
	MusicSyncPoint                 CallbackType = 0x4000
	MIDIEvent                      CallbackType = 0x10000
	EnableGetSourcePlayPosition    CallbackType = 0x100000
	EnableGetMusicPlayPosition     CallbackType = 0x200000
	EnableGetSourceStreamBuffering CallbackType = 0x400000

	// MusicSyncAll subscribes to every music sync point.
	MusicSyncAll = MusicSyncBeat | MusicSyncBar | MusicSyncEntry | MusicSyncExit |
		MusicSyncGrid | MusicSyncUserCue | MusicSyncPoint

	// CallbackBits is every bit the engine may raise.
	CallbackBits = EndOfEvent | EndOfDynamicSequenceItem | Marker | Duration |
		SpeakerVolumeMatrix | Starvation | MusicPlaylistSelect | MusicPlayStarted |
		MusicSyncAll | MIDIEvent | EnableGetSourcePlayPosition |
		EnableGetMusicPlayPosition | EnableGetSourceStreamBuffering
)

var callbackNames = []struct {
	bit  CallbackType
	name string
}{
	{EndOfEvent, "EndOfEvent"},
	{EndOfDynamicSequenceItem, "EndOfDynamicSequenceItem"},
	{Marker, "Marker"},
	{Duration, "Duration"},
	{SpeakerVolumeMatrix, "SpeakerVolumeMatrix"},
	{Starvation, "Starvation"},
	{MusicPlaylistSelect, "MusicPlaylistSelect"},
	{MusicPlayStarted, "MusicPlayStarted"},
	{MusicSyncBeat, "MusicSyncBeat"},
	{MusicSyncBar, "MusicSyncBar"},
	{MusicSyncEntry, "MusicSyncEntry"},
	{MusicSyncExit, "MusicSyncExit"},
	{MusicSyncGrid, "MusicSyncGrid"},
	{MusicSyncUserCue, "MusicSyncUserCue"},
	{MusicSyncPoint, "MusicSyncPoint"},
	{MIDIEvent, "MIDIEvent"},
	{EnableGetSourcePlayPosition, "EnableGetSourcePlayPosition"},
	{EnableGetMusicPlayPosition, "EnableGetMusicPlayPosition"},
	{EnableGetSourceStreamBuffering, "EnableGetSourceStreamBuffering"},
}

// Has reports whether any bit of flags is set in c.
func (c CallbackType) Has(flags CallbackType) bool {
	return c&flags != 0
}

// Valid reports whether c lies within CallbackBits.
func (c CallbackType) Valid() bool {
	return c&^CallbackBits == 0
}

func (c CallbackType) String() string {
	if c == 0 {
		return "None"
	}
	if !c.Valid() {
		return fmt.Sprintf("<UnknownCallbackType:%d>", uint32(c))
	}
	var parts []string
	for _, n := range callbackNames {
		if c&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, " | ")
}

// ParseCallbackType parses names joined by "|" as written by String, plus
// "MusicSyncAll". Names are case-insensitive.
func ParseCallbackType(s string) (CallbackType, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "None") {
		return 0, nil
	}
	var c CallbackType
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		bit, ok := callbackByName(part)
		if !ok {
			return 0, fmt.Errorf("ak: unknown callback type %q: %w", part, InvalidParameter)
		}
		c |= bit
	}
	return c, nil
}

func callbackByName(name string) (CallbackType, bool) {
	if strings.EqualFold(name, "MusicSyncAll") {
		return MusicSyncAll, true
	}
	for _, n := range callbackNames {
		if strings.EqualFold(n.name, name) {
			return n.bit, true
		}
	}
	return 0, false
}
