package native

import (
	"unsafe"

	"github.com/justyntemme/akgo/pkg/ak"
)

// Engine is one bridge entry point per method. Name forms take NUL-terminated
// 8-bit strings and paths take OS strings; both stay owned by the caller and
// are only valid for the duration of the call.
type Engine interface {
	// Memory manager.
	MemGetDefaultSettings(s *MemSettings)
	MemInit(s *MemSettings) ak.Result
	MemIsInitialized() bool
	MemTerm()

	// Stream manager and default device.
	StreamGetDefaultSettings(s *StreamMgrSettings)
	StreamGetDefaultDeviceSettings(s *DeviceSettings)
	// StreamCreate reports whether a stream manager was created.
	StreamCreate(s *StreamMgrSettings) bool
	StreamInitDefault(device *DeviceSettings, basePath *OSChar) ak.Result
	StreamTermDefault()
	StreamSetCurrentLanguage(language *OSChar) ak.Result

	// Sound engine lifecycle.
	GetDefaultInitSettings(s *InitSettings)
	GetDefaultPlatformInitSettings(s *PlatformInitSettings)
	Init(s *InitSettings, p *PlatformInitSettings) ak.Result
	IsInitialized() bool
	Term()
	RenderAudio(allowSyncRender bool) ak.Result

	// Game objects and listeners.
	RegisterGameObj(obj ak.GameObjectID) ak.Result
	RegisterGameObjName(obj ak.GameObjectID, name *byte) ak.Result
	UnregisterGameObj(obj ak.GameObjectID) ak.Result
	UnregisterAllGameObj() ak.Result
	SetPosition(obj ak.GameObjectID, pos *ak.Transform) ak.Result
	SetDefaultListeners(listeners *ak.GameObjectID, n uint32) ak.Result
	SetListeners(obj ak.GameObjectID, listeners *ak.GameObjectID, n uint32) ak.Result

	// Playback.
	StopAll(obj ak.GameObjectID)
	StopPlayingID(id ak.PlayingID, fadeMs ak.TimeMs, curve ak.Curve)
	PostEventID(event ak.UniqueID, obj ak.GameObjectID, flags uint32, cb CallbackFunc, cookie uintptr, playingID ak.PlayingID) ak.PlayingID
	PostEventName(event *byte, obj ak.GameObjectID, flags uint32, cb CallbackFunc, cookie uintptr, playingID ak.PlayingID) ak.PlayingID
	CancelEventCallback(id ak.PlayingID)
	GetSourcePlayPosition(id ak.PlayingID, pos *ak.TimeMs, extrapolate bool) ak.Result

	// Banks.
	LoadBankName(name *byte, out *ak.BankID) ak.Result
	LoadBankID(id ak.BankID) ak.Result
	UnloadBankName(name *byte) ak.Result
	UnloadBankID(id ak.BankID) ak.Result
	ClearBanks() ak.Result
	GetIDFromString(name *byte) ak.UniqueID

	// Game syncs.
	SetRTPCValue(id ak.RtpcID, value ak.RtpcValue, obj ak.GameObjectID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result
	SetRTPCValueName(name *byte, value ak.RtpcValue, obj ak.GameObjectID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result
	SetRTPCValueByPlayingID(id ak.RtpcID, value ak.RtpcValue, pid ak.PlayingID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result
	SetRTPCValueByPlayingIDName(name *byte, value ak.RtpcValue, pid ak.PlayingID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result
	ResetRTPCValue(id ak.RtpcID, obj ak.GameObjectID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result
	ResetRTPCValueName(name *byte, obj ak.GameObjectID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result
	SetSwitch(group ak.SwitchGroupID, state ak.SwitchStateID, obj ak.GameObjectID) ak.Result
	SetSwitchName(group, state *byte, obj ak.GameObjectID) ak.Result
	SetState(group ak.StateGroupID, state ak.StateID) ak.Result
	SetStateName(group, state *byte) ak.Result
	PostTrigger(id ak.TriggerID, obj ak.GameObjectID) ak.Result
	PostTriggerName(name *byte, obj ak.GameObjectID) ak.Result

	// Queries. GetListeners takes the capacity in *n and returns the count;
	// a nil out only counts.
	GetPosition(obj ak.GameObjectID, out *ak.Transform) ak.Result
	GetListeners(obj ak.GameObjectID, out *ak.GameObjectID, n *uint32) ak.Result
	GetListenerPosition(listener ak.GameObjectID, out *ak.Transform) ak.Result
	GetRTPCValue(id ak.RtpcID, obj ak.GameObjectID, pid ak.PlayingID, value *ak.RtpcValue, scope *int32) ak.Result
	GetRTPCValueName(name *byte, obj ak.GameObjectID, pid ak.PlayingID, value *ak.RtpcValue, scope *int32) ak.Result
	GetSwitch(group ak.SwitchGroupID, obj ak.GameObjectID, out *ak.SwitchStateID) ak.Result
	GetSwitchName(group *byte, obj ak.GameObjectID, out *ak.SwitchStateID) ak.Result
	GetState(group ak.StateGroupID, out *ak.StateID) ak.Result
	GetStateName(group *byte, out *ak.StateID) ak.Result
	IsGameObjectActive(obj ak.GameObjectID) bool

	// Music engine.
	MusicGetDefaultSettings(s *MusicSettings)
	MusicInit(s *MusicSettings) ak.Result
	MusicTerm()
	GetPlayingSegmentInfo(id ak.PlayingID, out *ak.SegmentInfo, extrapolate bool) ak.Result

	// Communication. Release builds of the engine have no such module.
	CommGetDefaultSettings(s *CommSettings)
	CommInit(s *CommSettings) ak.Result
	CommTerm()

	// Spatial audio.
	SpatialGetDefaultSettings(s *SpatialAudioInitSettings)
	SpatialInit(s *SpatialAudioInitSettings) ak.Result
	SpatialTerm()
	SpatialRegisterListener(obj ak.GameObjectID) ak.Result
	SpatialUnregisterListener(obj ak.GameObjectID) ak.Result
	SetGameObjectRadius(obj ak.GameObjectID, outer, inner float32) ak.Result
	SetRoom(room ak.GameObjectID, params *RoomParams, name *byte) ak.Result
	RemoveRoom(room ak.GameObjectID) ak.Result
	SetGameObjectInRoom(obj, room ak.GameObjectID) ak.Result
	SetPortal(portal ak.PortalID, params *PortalParams, name *byte) ak.Result
	RemovePortal(portal ak.PortalID) ak.Result
	SetPortalObstructionAndOcclusion(portal ak.PortalID, obstruction, occlusion float32) ak.Result
	// SetGeometry copies the three arrays before returning.
	SetGeometry(id ak.GeometrySetID, params *GeometryParams, vertices *ak.Vector, numVertices uint16,
		triangles *Triangle, numTriangles uint16, surfaces *Surface, numSurfaces uint16) ak.Result
	RemoveGeometry(id ak.GeometrySetID) ak.Result
	SetImageSource(src ak.ImageSourceID, params *ImageSourceParams, name *byte, auxBus ak.AuxBusID, room ak.RoomID, obj ak.GameObjectID) ak.Result
	RemoveImageSource(src ak.ImageSourceID, auxBus ak.AuxBusID, obj ak.GameObjectID) ak.Result
	ClearImageSources(auxBus ak.AuxBusID, obj ak.GameObjectID) ak.Result
}

// GoStringN copies n bytes from an engine buffer.
func GoStringN(p *byte, n uint32) string {
	if p == nil || n == 0 {
		return ""
	}
	return string(unsafe.Slice(p, n))
}

// BytePtr returns the address of b's first byte, or nil when b is empty.
func BytePtr(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}
