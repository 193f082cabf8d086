package midi

import (
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want Event
	}{
		{"NoteOn", Raw{Type: 0x90, Channel: 2, Param: [8]byte{60, 100}}, NoteOn{BaseEvent{2}, 60, 100}},
		{"NoteOff", Raw{Type: 0x80, Channel: 1, Param: [8]byte{72, 0}}, NoteOff{BaseEvent{1}, 72, 0}},
		{"NoteAftertouch", Raw{Type: 0xA0, Param: [8]byte{64, 30}}, NoteAftertouch{BaseEvent{0}, 64, 30}},
		{"Controller", Raw{Type: 0xB0, Param: [8]byte{CCModWheel, 100}}, Controller{BaseEvent{0}, CCModWheel, 100}},
		{"ProgramChange", Raw{Type: 0xC0, Channel: 9, Param: [8]byte{5}}, ProgramChange{BaseEvent{9}, 5}},
		{"ChannelAftertouch", Raw{Type: 0xD0, Param: [8]byte{42}}, ChannelAftertouch{BaseEvent{0}, 42}},
		{"PitchBend", Raw{Type: 0xE0, Param: [8]byte{0x00, 0x40}}, PitchBend{BaseEvent{0}, 0x00, 0x40}},
		{"Generic", Raw{Type: 0xF0, Param: [8]byte{1, 2}}, Generic{BaseEvent{0}, EventTypeSysex, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.raw)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDecodeWwiseCmd(t *testing.T) {
	raw := Encode(WwiseCmd{BaseEvent: BaseEvent{3}, Cmd: CmdSeekMs, Arg: 1500})
	if raw.Type != 0xFE {
		t.Fatalf("Expected type 0xFE, got 0x%02X", raw.Type)
	}

	cmd, ok := Decode(raw).(WwiseCmd)
	if !ok {
		t.Fatalf("Expected WwiseCmd, got %T", Decode(raw))
	}
	if cmd.Cmd != CmdSeekMs || cmd.Arg != 1500 || cmd.Channel() != 3 {
		t.Errorf("Unexpected command %v", cmd)
	}
	if !cmd.IsSeekMs() || !cmd.IsSeek() || cmd.IsSeekSamples() || cmd.IsPlay() {
		t.Error("Seek predicates returned the wrong answer")
	}
	if !cmd.IsKnown() {
		t.Error("Expected seek to be a known command")
	}
}

func TestWwiseCmdPredicates(t *testing.T) {
	tests := []struct {
		cmd                                 uint16
		play, stop, pause, resume, seek, ok bool
	}{
		{CmdPlay, true, false, false, false, false, true},
		{CmdStop, false, true, false, false, false, true},
		{CmdPause, false, false, true, false, false, true},
		{CmdResume, false, false, false, true, false, true},
		{CmdSeekSamples, false, false, false, false, true, true},
		{42, false, false, false, false, false, false},
	}

	for _, tt := range tests {
		c := WwiseCmd{Cmd: tt.cmd}
		if c.IsPlay() != tt.play || c.IsStop() != tt.stop || c.IsPause() != tt.pause ||
			c.IsResume() != tt.resume || c.IsSeek() != tt.seek || c.IsKnown() != tt.ok {
			t.Errorf("Unexpected predicates for command %d", tt.cmd)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	events := []Event{
		NoteOn{BaseEvent{0}, 60, 100},
		NoteOff{BaseEvent{15}, 61, 12},
		Controller{BaseEvent{1}, CCSustain, 127},
		PitchBend{BaseEvent{0}, 0x7F, 0x7F},
		WwiseCmd{BaseEvent{0}, CmdStop, 0},
	}

	for _, e := range events {
		if got := Decode(Encode(e)); got != e {
			t.Errorf("Expected %v, got %v", e, got)
		}
	}
}

func TestNotePredicates(t *testing.T) {
	tests := []struct {
		event    Event
		on, off  bool
	}{
		{NoteOn{NoteNumber: 60, Velocity: 100}, true, false},
		{NoteOn{NoteNumber: 60, Velocity: 0}, false, true},
		{NoteOff{NoteNumber: 60, Velocity: 64}, false, true},
		{Controller{CC: CCVolume}, false, false},
	}

	for _, tt := range tests {
		if IsNoteOn(tt.event) != tt.on {
			t.Errorf("IsNoteOn(%v) = %v, want %v", tt.event, !tt.on, tt.on)
		}
		if IsNoteOff(tt.event) != tt.off {
			t.Errorf("IsNoteOff(%v) = %v, want %v", tt.event, !tt.off, tt.off)
		}
	}
}

func TestPitchBendValue(t *testing.T) {
	tests := []struct {
		lsb, msb uint8
		value    int16
	}{
		{0x00, 0x40, 0},
		{0x7F, 0x7F, 8191},
		{0x00, 0x00, -8192},
		{0x00, 0x60, 4096},
	}

	for _, tt := range tests {
		e := PitchBend{LSB: tt.lsb, MSB: tt.msb}
		if e.Value() != tt.value {
			t.Errorf("Expected %d, got %d", tt.value, e.Value())
		}
	}

	if n := (PitchBend{LSB: 0, MSB: 0}).NormalizedValue(); n != -1.0 {
		t.Errorf("Expected -1.0, got %f", n)
	}
}

func TestNoteNumberToName(t *testing.T) {
	tests := []struct {
		note uint8
		name string
	}{
		{60, "C4"},  // Middle C
		{69, "A4"},  // A440
		{0, "C-1"},  // Lowest MIDI note
		{127, "G9"}, // Highest MIDI note
		{61, "C#4"},
		{70, "A#4"},
	}

	for _, tt := range tests {
		name := NoteNumberToName(tt.note)
		if name != tt.name {
			t.Errorf("For note %d, expected name %s, got %s", tt.note, tt.name, name)
		}
	}
}

func TestEventTypeString(t *testing.T) {
	if EventTypeWwiseCmd.String() != "WwiseCmd" {
		t.Errorf("Expected WwiseCmd, got %s", EventTypeWwiseCmd)
	}
	if EventType(0xF1).String() != "EventType(0xF1)" {
		t.Errorf("Unexpected name %s", EventType(0xF1))
	}
}
