// Package native declares the audio engine's C ABI as seen by Go: callback
// record layouts, flattened settings records and the Engine interface every
// backend implements. Nothing here is safe to use directly from application
// code; the service packages wrap it.
package native

import (
	"unsafe"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/midi"
)

// CallbackFunc is the trampoline signature. kind holds exactly one callback
// bit and info points at the record selected by that bit. Every record starts
// with CallbackInfo.
type CallbackFunc func(kind uint32, info unsafe.Pointer)

// CallbackInfo is the prefix shared by every callback record.
type CallbackInfo struct {
	Cookie    uintptr
	GameObjID uint64
}

type EventCallbackInfo struct {
	CallbackInfo
	PlayingID uint32
	EventID   uint32
}

type MIDIEventCallbackInfo struct {
	EventCallbackInfo
	MIDIEvent midi.Raw
}

type MarkerCallbackInfo struct {
	EventCallbackInfo
	Identifier uint32
	Position   uint32
	Label      *byte
	LabelSize  uint32
}

type DurationCallbackInfo struct {
	EventCallbackInfo
	Duration          float32
	EstimatedDuration float32
	AudioNodeID       uint32
	MediaID           uint32
	Streaming         bool
}

type DynamicSequenceItemCallbackInfo struct {
	CallbackInfo
	PlayingID   uint32
	AudioNodeID uint32
	CustomInfo  uintptr
}

type SpeakerVolumeMatrixCallbackInfo struct {
	EventCallbackInfo
	Volumes               uintptr
	InputConfig           uint32
	OutputConfig          uint32
	BaseVolume            uintptr
	EmitterListenerVolume uintptr
	Context               uintptr
	MixerContext          uintptr
}

type MusicPlaylistCallbackInfo struct {
	EventCallbackInfo
	PlaylistID        uint32
	NumPlaylistItems  uint32
	PlaylistSelection uint32
	PlaylistItemDone  uint32
}

type MusicSyncCallbackInfo struct {
	CallbackInfo
	PlayingID     uint32
	SegmentInfo   ak.SegmentInfo
	MusicSyncType uint32
	UserCueName   *byte
}

// RTPC value scopes as the engine encodes them.
const (
	RTPCScopeDefault int32 = iota
	RTPCScopeGlobal
	RTPCScopeGameObject
	RTPCScopePlayingID
	RTPCScopeUnavailable
)
