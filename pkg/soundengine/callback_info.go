package soundengine

import (
	"sync/atomic"
	"unsafe"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/midi"
	"github.com/justyntemme/akgo/pkg/native"
)

// CallbackFunc receives every callback of one post, on the engine's audio
// thread.
type CallbackFunc func(info CallbackInfo)

// CallbackInfo is the decoded payload of one callback. The concrete type is
// one of DefaultInfo, MusicSyncInfo, DynamicSequenceItemInfo, EventInfo,
// DurationInfo, MarkerInfo, MIDIInfo, *MusicPlaylistInfo or
// SpeakerMatrixVolumeInfo.
type CallbackInfo interface {
	GameObjectID() ak.GameObjectID
	// Type is the callback bit the engine raised.
	Type() ak.CallbackType
	callbackInfo()
}

// DefaultInfo is raised for callback bits that carry no payload of their
// own.
type DefaultInfo struct {
	Object ak.GameObjectID
	Kind   ak.CallbackType
}

// MusicSyncInfo is raised for every MusicSync* bit.
type MusicSyncInfo struct {
	Object      ak.GameObjectID
	PlayingID   ak.PlayingID
	SegmentInfo ak.SegmentInfo
	SyncType    ak.CallbackType
	// UserCueName is empty unless SyncType is MusicSyncUserCue.
	UserCueName string
}

// DynamicSequenceItemInfo is raised when a dynamic sequence item starts or
// ends.
type DynamicSequenceItemInfo struct {
	Object      ak.GameObjectID
	PlayingID   ak.PlayingID
	AudioNodeID ak.UniqueID
}

// EventInfo is raised for EndOfEvent, MusicPlayStarted and Starvation.
type EventInfo struct {
	Object    ak.GameObjectID
	Kind      ak.CallbackType
	PlayingID ak.PlayingID
	EventID   ak.UniqueID
}

// DurationInfo is raised with the duration of each source an event plays.
type DurationInfo struct {
	Object            ak.GameObjectID
	PlayingID         ak.PlayingID
	EventID           ak.UniqueID
	Duration          float32
	EstimatedDuration float32
	AudioNodeID       ak.UniqueID
	MediaID           ak.UniqueID
	Streaming         bool
}

// MarkerInfo is raised when playback crosses a marker in a source.
type MarkerInfo struct {
	Object     ak.GameObjectID
	PlayingID  ak.PlayingID
	EventID    ak.UniqueID
	Identifier uint32
	// Position is in sample frames from the start of the source.
	Position uint32
	Label    string
}

// MIDIInfo carries one MIDI event played by the post.
type MIDIInfo struct {
	Object    ak.GameObjectID
	PlayingID ak.PlayingID
	EventID   ak.UniqueID
	Event     midi.Event
}

// MusicPlaylistInfo lets the callback choose the next playlist item.
// Selection and ItemDone hold the engine's proposal; SetSelection and
// SetItemDone overwrite it. Writes only reach the engine while the callback
// is running.
type MusicPlaylistInfo struct {
	Object     ak.GameObjectID
	PlayingID  ak.PlayingID
	EventID    ak.UniqueID
	PlaylistID ak.UniqueID
	NumItems   uint32
	Selection  uint32
	ItemDone   uint32

	record atomic.Pointer[native.MusicPlaylistCallbackInfo]
}

// SetSelection picks the playlist item to play next.
func (p *MusicPlaylistInfo) SetSelection(index uint32) {
	p.Selection = index
	if r := p.record.Load(); r != nil {
		r.PlaylistSelection = index
	}
}

// SetItemDone changes the item the engine reports as finished.
func (p *MusicPlaylistInfo) SetItemDone(index uint32) {
	p.ItemDone = index
	if r := p.record.Load(); r != nil {
		r.PlaylistItemDone = index
	}
}

// detach cuts the link to the engine record once the callback returned.
func (p *MusicPlaylistInfo) detach() {
	p.record.Store(nil)
}

// SpeakerMatrixVolumeInfo is raised while the engine mixes a voice, once
// per frame.
type SpeakerMatrixVolumeInfo struct {
	Object       ak.GameObjectID
	PlayingID    ak.PlayingID
	EventID      ak.UniqueID
	InputConfig  ak.ChannelConfig
	OutputConfig ak.ChannelConfig
}

func (i DefaultInfo) GameObjectID() ak.GameObjectID             { return i.Object }
func (i MusicSyncInfo) GameObjectID() ak.GameObjectID           { return i.Object }
func (i DynamicSequenceItemInfo) GameObjectID() ak.GameObjectID { return i.Object }
func (i EventInfo) GameObjectID() ak.GameObjectID               { return i.Object }
func (i DurationInfo) GameObjectID() ak.GameObjectID            { return i.Object }
func (i MarkerInfo) GameObjectID() ak.GameObjectID              { return i.Object }
func (i MIDIInfo) GameObjectID() ak.GameObjectID                { return i.Object }
func (i *MusicPlaylistInfo) GameObjectID() ak.GameObjectID      { return i.Object }
func (i SpeakerMatrixVolumeInfo) GameObjectID() ak.GameObjectID { return i.Object }

func (i DefaultInfo) Type() ak.CallbackType             { return i.Kind }
func (i MusicSyncInfo) Type() ak.CallbackType           { return i.SyncType }
func (i DynamicSequenceItemInfo) Type() ak.CallbackType { return ak.EndOfDynamicSequenceItem }
func (i EventInfo) Type() ak.CallbackType               { return i.Kind }
func (i DurationInfo) Type() ak.CallbackType            { return ak.Duration }
func (i MarkerInfo) Type() ak.CallbackType              { return ak.Marker }
func (i MIDIInfo) Type() ak.CallbackType                { return ak.MIDIEvent }
func (i *MusicPlaylistInfo) Type() ak.CallbackType      { return ak.MusicPlaylistSelect }
func (i SpeakerMatrixVolumeInfo) Type() ak.CallbackType { return ak.SpeakerVolumeMatrix }

func (DefaultInfo) callbackInfo()             {}
func (MusicSyncInfo) callbackInfo()           {}
func (DynamicSequenceItemInfo) callbackInfo() {}
func (EventInfo) callbackInfo()               {}
func (DurationInfo) callbackInfo()            {}
func (MarkerInfo) callbackInfo()              {}
func (MIDIInfo) callbackInfo()                {}
func (*MusicPlaylistInfo) callbackInfo()      {}
func (SpeakerMatrixVolumeInfo) callbackInfo() {}

// decode narrows the engine record at info to the payload selected by
// kind. kind must lie within CallbackBits. Strings are copied out.
func decode(kind ak.CallbackType, info unsafe.Pointer) CallbackInfo {
	obj := ak.GameObjectID((*native.CallbackInfo)(info).GameObjID)

	switch {
	case kind&ak.MusicSyncAll != 0:
		r := (*native.MusicSyncCallbackInfo)(info)
		return MusicSyncInfo{
			Object:      obj,
			PlayingID:   ak.PlayingID(r.PlayingID),
			SegmentInfo: r.SegmentInfo,
			SyncType:    ak.CallbackType(r.MusicSyncType),
			UserCueName: native.GoString(r.UserCueName),
		}

	case kind&ak.EndOfDynamicSequenceItem != 0:
		r := (*native.DynamicSequenceItemCallbackInfo)(info)
		return DynamicSequenceItemInfo{
			Object:      obj,
			PlayingID:   ak.PlayingID(r.PlayingID),
			AudioNodeID: ak.UniqueID(r.AudioNodeID),
		}

	case kind&(ak.EndOfEvent|ak.MusicPlayStarted|ak.Starvation) != 0:
		r := (*native.EventCallbackInfo)(info)
		return EventInfo{
			Object:    obj,
			Kind:      kind,
			PlayingID: ak.PlayingID(r.PlayingID),
			EventID:   ak.UniqueID(r.EventID),
		}

	case kind&ak.Duration != 0:
		r := (*native.DurationCallbackInfo)(info)
		return DurationInfo{
			Object:            obj,
			PlayingID:         ak.PlayingID(r.PlayingID),
			EventID:           ak.UniqueID(r.EventID),
			Duration:          r.Duration,
			EstimatedDuration: r.EstimatedDuration,
			AudioNodeID:       ak.UniqueID(r.AudioNodeID),
			MediaID:           ak.UniqueID(r.MediaID),
			Streaming:         r.Streaming,
		}

	case kind&ak.Marker != 0:
		r := (*native.MarkerCallbackInfo)(info)
		return MarkerInfo{
			Object:     obj,
			PlayingID:  ak.PlayingID(r.PlayingID),
			EventID:    ak.UniqueID(r.EventID),
			Identifier: r.Identifier,
			Position:   r.Position,
			Label:      native.GoString(r.Label),
		}

	case kind&ak.MIDIEvent != 0:
		r := (*native.MIDIEventCallbackInfo)(info)
		return MIDIInfo{
			Object:    obj,
			PlayingID: ak.PlayingID(r.PlayingID),
			EventID:   ak.UniqueID(r.EventID),
			Event:     midi.Decode(r.MIDIEvent),
		}

	case kind&ak.MusicPlaylistSelect != 0:
		r := (*native.MusicPlaylistCallbackInfo)(info)
		p := &MusicPlaylistInfo{
			Object:     obj,
			PlayingID:  ak.PlayingID(r.PlayingID),
			EventID:    ak.UniqueID(r.EventID),
			PlaylistID: ak.UniqueID(r.PlaylistID),
			NumItems:   r.NumPlaylistItems,
			Selection:  r.PlaylistSelection,
			ItemDone:   r.PlaylistItemDone,
		}
		p.record.Store(r)
		return p

	case kind&ak.SpeakerVolumeMatrix != 0:
		r := (*native.SpeakerVolumeMatrixCallbackInfo)(info)
		return SpeakerMatrixVolumeInfo{
			Object:       obj,
			PlayingID:    ak.PlayingID(r.PlayingID),
			EventID:      ak.UniqueID(r.EventID),
			InputConfig:  ak.ChannelConfig(r.InputConfig),
			OutputConfig: ak.ChannelConfig(r.OutputConfig),
		}
	}
	return DefaultInfo{Object: obj, Kind: kind}
}
