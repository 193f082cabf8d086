// Package midi decodes the MIDI records the audio engine attaches to MIDI
// event callbacks.
package midi

import (
	"encoding/binary"
	"fmt"
)

// EventType is the status byte of a MIDI record with the channel nibble cleared.
type EventType uint8

const (
	EventTypeInvalid           EventType = 0x00
	EventTypeNoteOff           EventType = 0x80
	EventTypeNoteOn            EventType = 0x90
	EventTypeNoteAftertouch    EventType = 0xA0
	EventTypeController        EventType = 0xB0
	EventTypeProgramChange     EventType = 0xC0
	EventTypeChannelAftertouch EventType = 0xD0
	EventTypePitchBend         EventType = 0xE0
	EventTypeSysex             EventType = 0xF0
	EventTypeEscape            EventType = 0xF7
	EventTypeWwiseCmd          EventType = 0xFE
	EventTypeMeta              EventType = 0xFF
)

func (t EventType) String() string {
	switch t {
	case EventTypeNoteOff:
		return "NoteOff"
	case EventTypeNoteOn:
		return "NoteOn"
	case EventTypeNoteAftertouch:
		return "NoteAftertouch"
	case EventTypeController:
		return "Controller"
	case EventTypeProgramChange:
		return "ProgramChange"
	case EventTypeChannelAftertouch:
		return "ChannelAftertouch"
	case EventTypePitchBend:
		return "PitchBend"
	case EventTypeWwiseCmd:
		return "WwiseCmd"
	}
	return fmt.Sprintf("EventType(0x%02X)", uint8(t))
}

// Raw mirrors the engine's MIDI record: type and channel bytes, then an
// 8-byte parameter union aligned to 4.
type Raw struct {
	Type    byte
	Channel byte
	_       [2]byte
	Param   [8]byte
}

// Event is a decoded MIDI record.
type Event interface {
	Type() EventType
	Channel() uint8
	String() string
}

// BaseEvent carries the channel shared by every event.
type BaseEvent struct {
	EventChannel uint8
}

func (e BaseEvent) Channel() uint8 {
	return e.EventChannel
}

type NoteOn struct {
	BaseEvent
	NoteNumber uint8
	Velocity   uint8
}

func (e NoteOn) Type() EventType { return EventTypeNoteOn }

func (e NoteOn) String() string {
	return fmt.Sprintf("NoteOn{ch:%d, note:%d, vel:%d}", e.EventChannel, e.NoteNumber, e.Velocity)
}

type NoteOff struct {
	BaseEvent
	NoteNumber uint8
	Velocity   uint8
}

func (e NoteOff) Type() EventType { return EventTypeNoteOff }

func (e NoteOff) String() string {
	return fmt.Sprintf("NoteOff{ch:%d, note:%d, vel:%d}", e.EventChannel, e.NoteNumber, e.Velocity)
}

type NoteAftertouch struct {
	BaseEvent
	NoteNumber uint8
	Value      uint8
}

func (e NoteAftertouch) Type() EventType { return EventTypeNoteAftertouch }

func (e NoteAftertouch) String() string {
	return fmt.Sprintf("NoteAftertouch{ch:%d, note:%d, val:%d}", e.EventChannel, e.NoteNumber, e.Value)
}

type Controller struct {
	BaseEvent
	CC    uint8
	Value uint8
}

func (e Controller) Type() EventType { return EventTypeController }

func (e Controller) String() string {
	return fmt.Sprintf("CC{ch:%d, ctrl:%d, val:%d}", e.EventChannel, e.CC, e.Value)
}

// Common controller numbers.
const (
	CCModWheel    uint8 = 1
	CCVolume      uint8 = 7
	CCPan         uint8 = 10
	CCExpression  uint8 = 11
	CCSustain     uint8 = 64
	CCAllSoundOff uint8 = 120
	CCAllNotesOff uint8 = 123
)

type ProgramChange struct {
	BaseEvent
	Program uint8
}

func (e ProgramChange) Type() EventType { return EventTypeProgramChange }

func (e ProgramChange) String() string {
	return fmt.Sprintf("ProgramChange{ch:%d, prog:%d}", e.EventChannel, e.Program)
}

type ChannelAftertouch struct {
	BaseEvent
	Value uint8
}

func (e ChannelAftertouch) Type() EventType { return EventTypeChannelAftertouch }

func (e ChannelAftertouch) String() string {
	return fmt.Sprintf("ChannelAftertouch{ch:%d, val:%d}", e.EventChannel, e.Value)
}

type PitchBend struct {
	BaseEvent
	LSB uint8
	MSB uint8
}

func (e PitchBend) Type() EventType { return EventTypePitchBend }

// Value returns the 14-bit bend centred on zero, in [-8192, 8191].
func (e PitchBend) Value() int16 {
	return int16(uint16(e.MSB&0x7F)<<7|uint16(e.LSB&0x7F)) - 8192
}

// NormalizedValue returns Value scaled to [-1, 1).
func (e PitchBend) NormalizedValue() float64 {
	return float64(e.Value()) / 8192.0
}

func (e PitchBend) String() string {
	return fmt.Sprintf("PitchBend{ch:%d, val:%d}", e.EventChannel, e.Value())
}

// Engine command codes carried by WwiseCmd.
const (
	CmdPlay        uint16 = 0
	CmdStop        uint16 = 1
	CmdPause       uint16 = 2
	CmdResume      uint16 = 3
	CmdSeekMs      uint16 = 4
	CmdSeekSamples uint16 = 5
)

// WwiseCmd is an engine transport command embedded in the MIDI stream.
type WwiseCmd struct {
	BaseEvent
	Cmd uint16
	Arg uint32
}

func (e WwiseCmd) Type() EventType { return EventTypeWwiseCmd }

func (e WwiseCmd) IsPlay() bool        { return e.Cmd == CmdPlay }
func (e WwiseCmd) IsStop() bool        { return e.Cmd == CmdStop }
func (e WwiseCmd) IsPause() bool       { return e.Cmd == CmdPause }
func (e WwiseCmd) IsResume() bool      { return e.Cmd == CmdResume }
func (e WwiseCmd) IsSeekMs() bool      { return e.Cmd == CmdSeekMs }
func (e WwiseCmd) IsSeekSamples() bool { return e.Cmd == CmdSeekSamples }

// IsSeek reports either seek form.
func (e WwiseCmd) IsSeek() bool { return e.IsSeekMs() || e.IsSeekSamples() }

// IsKnown reports whether Cmd is one of the documented commands.
func (e WwiseCmd) IsKnown() bool { return e.Cmd <= CmdSeekSamples }

func (e WwiseCmd) String() string {
	return fmt.Sprintf("WwiseCmd{ch:%d, cmd:%d, arg:%d}", e.EventChannel, e.Cmd, e.Arg)
}

// Generic is any record whose type has no dedicated decoding.
type Generic struct {
	BaseEvent
	RawType EventType
	Param1  uint8
	Param2  uint8
}

func (e Generic) Type() EventType { return e.RawType }

func (e Generic) String() string {
	return fmt.Sprintf("Generic{type:0x%02X, ch:%d, p1:%d, p2:%d}", uint8(e.RawType), e.EventChannel, e.Param1, e.Param2)
}

// Decode converts a raw record into its typed event.
func Decode(r Raw) Event {
	base := BaseEvent{EventChannel: r.Channel}
	p := r.Param
	switch EventType(r.Type) {
	case EventTypeNoteOn:
		return NoteOn{BaseEvent: base, NoteNumber: p[0], Velocity: p[1]}
	case EventTypeNoteOff:
		return NoteOff{BaseEvent: base, NoteNumber: p[0], Velocity: p[1]}
	case EventTypeNoteAftertouch:
		return NoteAftertouch{BaseEvent: base, NoteNumber: p[0], Value: p[1]}
	case EventTypeController:
		return Controller{BaseEvent: base, CC: p[0], Value: p[1]}
	case EventTypeProgramChange:
		return ProgramChange{BaseEvent: base, Program: p[0]}
	case EventTypeChannelAftertouch:
		return ChannelAftertouch{BaseEvent: base, Value: p[0]}
	case EventTypePitchBend:
		return PitchBend{BaseEvent: base, LSB: p[0], MSB: p[1]}
	case EventTypeWwiseCmd:
		return WwiseCmd{
			BaseEvent: base,
			Cmd:       binary.NativeEndian.Uint16(p[0:2]),
			Arg:       binary.NativeEndian.Uint32(p[4:8]),
		}
	}
	return Generic{BaseEvent: base, RawType: EventType(r.Type), Param1: p[0], Param2: p[1]}
}

// Encode is the inverse of Decode for the typed variants.
func Encode(e Event) Raw {
	r := Raw{Type: byte(e.Type()), Channel: e.Channel()}
	switch v := e.(type) {
	case NoteOn:
		r.Param[0], r.Param[1] = v.NoteNumber, v.Velocity
	case NoteOff:
		r.Param[0], r.Param[1] = v.NoteNumber, v.Velocity
	case NoteAftertouch:
		r.Param[0], r.Param[1] = v.NoteNumber, v.Value
	case Controller:
		r.Param[0], r.Param[1] = v.CC, v.Value
	case ProgramChange:
		r.Param[0] = v.Program
	case ChannelAftertouch:
		r.Param[0] = v.Value
	case PitchBend:
		r.Param[0], r.Param[1] = v.LSB, v.MSB
	case WwiseCmd:
		binary.NativeEndian.PutUint16(r.Param[0:2], v.Cmd)
		binary.NativeEndian.PutUint32(r.Param[4:8], v.Arg)
	case Generic:
		r.Param[0], r.Param[1] = v.Param1, v.Param2
	}
	return r
}

// IsNoteOn reports a note-on with non-zero velocity.
func IsNoteOn(e Event) bool {
	n, ok := e.(NoteOn)
	return ok && n.Velocity > 0
}

// IsNoteOff reports a note-off, or a note-on with zero velocity.
func IsNoteOff(e Event) bool {
	switch n := e.(type) {
	case NoteOff:
		return true
	case NoteOn:
		return n.Velocity == 0
	}
	return false
}

// NoteNumberToName returns the scientific pitch name, e.g. 60 is "C4".
func NoteNumberToName(note uint8) string {
	noteNames := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	octave := int(note/12) - 1
	return fmt.Sprintf("%s%d", noteNames[note%12], octave)
}
