//go:build darwin || linux || freebsd || windows

// Package dynamic loads the akbridge shared library at run time and exposes
// it as a native.Engine. The library is the C shim in c/akbridge.cpp linked
// against the engine SDK; no cgo is involved on the Go side.
package dynamic

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/native"
)

// ErrSymbolMissing is returned by Open when the library lacks a bridge entry point.
var ErrSymbolMissing = errors.New("dynamic: bridge symbol missing")

// Library is a loaded bridge library.
type Library struct {
	path   string
	handle uintptr

	cbMu      sync.Mutex
	callbacks map[uintptr]uintptr

	memGetDefaultSettings func(*native.MemSettings)
	memInit               func(*native.MemSettings) ak.Result
	memIsInitialized      func() bool
	memTerm               func()

	streamGetDefaultSettings       func(*native.StreamMgrSettings)
	streamGetDefaultDeviceSettings func(*native.DeviceSettings)
	streamCreate                   func(*native.StreamMgrSettings) bool
	streamInitDefault              func(*native.DeviceSettings, *native.OSChar) ak.Result
	streamTermDefault              func()
	streamSetCurrentLanguage       func(*native.OSChar) ak.Result

	getDefaultInitSettings         func(*native.InitSettings)
	getDefaultPlatformInitSettings func(*native.PlatformInitSettings)
	initEngine                     func(*native.InitSettings, *native.PlatformInitSettings) ak.Result
	isInitialized                  func() bool
	term                           func()
	renderAudio                    func(bool) ak.Result

	registerGameObj      func(uint64) ak.Result
	registerGameObjName  func(uint64, *byte) ak.Result
	unregisterGameObj    func(uint64) ak.Result
	unregisterAllGameObj func() ak.Result
	setPosition          func(uint64, *ak.Transform) ak.Result
	setDefaultListeners  func(*ak.GameObjectID, uint32) ak.Result
	setListeners         func(uint64, *ak.GameObjectID, uint32) ak.Result

	stopAll               func(uint64)
	stopPlayingID         func(uint32, int32, int32)
	postEventID           func(uint32, uint64, uint32, uintptr, uintptr, uint32) uint32
	postEventName         func(*byte, uint64, uint32, uintptr, uintptr, uint32) uint32
	cancelEventCallback   func(uint32)
	getSourcePlayPosition func(uint32, *ak.TimeMs, bool) ak.Result

	loadBankName    func(*byte, *ak.BankID) ak.Result
	loadBankID      func(uint32) ak.Result
	unloadBankName  func(*byte) ak.Result
	unloadBankID    func(uint32) ak.Result
	clearBanks      func() ak.Result
	getIDFromString func(*byte) uint32

	setRTPCValue                func(uint32, float32, uint64, int32, int32, bool) ak.Result
	setRTPCValueName            func(*byte, float32, uint64, int32, int32, bool) ak.Result
	setRTPCValueByPlayingID     func(uint32, float32, uint32, int32, int32, bool) ak.Result
	setRTPCValueByPlayingIDName func(*byte, float32, uint32, int32, int32, bool) ak.Result
	resetRTPCValue              func(uint32, uint64, int32, int32, bool) ak.Result
	resetRTPCValueName          func(*byte, uint64, int32, int32, bool) ak.Result
	setSwitch                   func(uint32, uint32, uint64) ak.Result
	setSwitchName               func(*byte, *byte, uint64) ak.Result
	setState                    func(uint32, uint32) ak.Result
	setStateName                func(*byte, *byte) ak.Result
	postTrigger                 func(uint32, uint64) ak.Result
	postTriggerName             func(*byte, uint64) ak.Result

	getPosition         func(uint64, *ak.Transform) ak.Result
	getListeners        func(uint64, *ak.GameObjectID, *uint32) ak.Result
	getListenerPosition func(uint64, *ak.Transform) ak.Result
	getRTPCValue        func(uint32, uint64, uint32, *float32, *int32) ak.Result
	getRTPCValueName    func(*byte, uint64, uint32, *float32, *int32) ak.Result
	getSwitch           func(uint32, uint64, *uint32) ak.Result
	getSwitchName       func(*byte, uint64, *uint32) ak.Result
	getState            func(uint32, *uint32) ak.Result
	getStateName        func(*byte, *uint32) ak.Result
	isGameObjectActive  func(uint64) bool

	musicGetDefaultSettings func(*native.MusicSettings)
	musicInit               func(*native.MusicSettings) ak.Result
	musicTerm               func()
	getPlayingSegmentInfo   func(uint32, *ak.SegmentInfo, bool) ak.Result

	commGetDefaultSettings func(*native.CommSettings)
	commInit               func(*native.CommSettings) ak.Result
	commTerm               func()

	spatialGetDefaultSettings func(*native.SpatialAudioInitSettings)
	spatialInit               func(*native.SpatialAudioInitSettings) ak.Result
	spatialTerm               func()
	spatialRegisterListener   func(uint64) ak.Result
	spatialUnregisterListener func(uint64) ak.Result
	setGameObjectRadius       func(uint64, float32, float32) ak.Result
	setRoom                   func(uint64, *native.RoomParams, *byte) ak.Result
	removeRoom                func(uint64) ak.Result
	setGameObjectInRoom       func(uint64, uint64) ak.Result
	setPortal                 func(uint64, *native.PortalParams, *byte) ak.Result
	removePortal              func(uint64) ak.Result
	setPortalObstruction      func(uint64, float32, float32) ak.Result
	setGeometry               func(uint64, *native.GeometryParams, *ak.Vector, uint16, *native.Triangle, uint16, *native.Surface, uint16) ak.Result
	removeGeometry            func(uint64) ak.Result
	setImageSource            func(uint32, *native.ImageSourceParams, *byte, uint32, uint64, uint64) ak.Result
	removeImageSource         func(uint32, uint32, uint64) ak.Result
	clearImageSources         func(uint32, uint64) ak.Result
}

// Open loads the bridge library at path and binds every entry point.
func Open(path string) (*Library, error) {
	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("dynamic: open %s: %w", path, err)
	}

	l := &Library{
		path:      path,
		handle:    handle,
		callbacks: make(map[uintptr]uintptr),
	}
	if err := l.bind(); err != nil {
		closeLibrary(handle)
		return nil, err
	}

	debug.Info("Loaded engine bridge %s", path)
	return l, nil
}

// Path returns the file the library was loaded from.
func (l *Library) Path() string { return l.path }

// Close unloads the library. The engine must be terminated first.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	return err
}

type symbol struct {
	name string
	fptr any
}

func (l *Library) symbols() []symbol {
	return []symbol{
		{"akb_mem_get_default_settings", &l.memGetDefaultSettings},
		{"akb_mem_init", &l.memInit},
		{"akb_mem_is_initialized", &l.memIsInitialized},
		{"akb_mem_term", &l.memTerm},

		{"akb_stream_get_default_settings", &l.streamGetDefaultSettings},
		{"akb_stream_get_default_device_settings", &l.streamGetDefaultDeviceSettings},
		{"akb_stream_create", &l.streamCreate},
		{"akb_stream_init_default", &l.streamInitDefault},
		{"akb_stream_term_default", &l.streamTermDefault},
		{"akb_stream_set_current_language", &l.streamSetCurrentLanguage},

		{"akb_get_default_init_settings", &l.getDefaultInitSettings},
		{"akb_get_default_platform_init_settings", &l.getDefaultPlatformInitSettings},
		{"akb_init", &l.initEngine},
		{"akb_is_initialized", &l.isInitialized},
		{"akb_term", &l.term},
		{"akb_render_audio", &l.renderAudio},

		{"akb_register_game_obj", &l.registerGameObj},
		{"akb_register_game_obj_name", &l.registerGameObjName},
		{"akb_unregister_game_obj", &l.unregisterGameObj},
		{"akb_unregister_all_game_obj", &l.unregisterAllGameObj},
		{"akb_set_position", &l.setPosition},
		{"akb_set_default_listeners", &l.setDefaultListeners},
		{"akb_set_listeners", &l.setListeners},

		{"akb_stop_all", &l.stopAll},
		{"akb_stop_playing_id", &l.stopPlayingID},
		{"akb_post_event_id", &l.postEventID},
		{"akb_post_event_name", &l.postEventName},
		{"akb_cancel_event_callback", &l.cancelEventCallback},
		{"akb_get_source_play_position", &l.getSourcePlayPosition},

		{"akb_load_bank_name", &l.loadBankName},
		{"akb_load_bank_id", &l.loadBankID},
		{"akb_unload_bank_name", &l.unloadBankName},
		{"akb_unload_bank_id", &l.unloadBankID},
		{"akb_clear_banks", &l.clearBanks},
		{"akb_get_id_from_string", &l.getIDFromString},

		{"akb_set_rtpc_value", &l.setRTPCValue},
		{"akb_set_rtpc_value_name", &l.setRTPCValueName},
		{"akb_set_rtpc_value_by_playing_id", &l.setRTPCValueByPlayingID},
		{"akb_set_rtpc_value_by_playing_id_name", &l.setRTPCValueByPlayingIDName},
		{"akb_reset_rtpc_value", &l.resetRTPCValue},
		{"akb_reset_rtpc_value_name", &l.resetRTPCValueName},
		{"akb_set_switch", &l.setSwitch},
		{"akb_set_switch_name", &l.setSwitchName},
		{"akb_set_state", &l.setState},
		{"akb_set_state_name", &l.setStateName},
		{"akb_post_trigger", &l.postTrigger},
		{"akb_post_trigger_name", &l.postTriggerName},

		{"akb_get_position", &l.getPosition},
		{"akb_get_listeners", &l.getListeners},
		{"akb_get_listener_position", &l.getListenerPosition},
		{"akb_get_rtpc_value", &l.getRTPCValue},
		{"akb_get_rtpc_value_name", &l.getRTPCValueName},
		{"akb_get_switch", &l.getSwitch},
		{"akb_get_switch_name", &l.getSwitchName},
		{"akb_get_state", &l.getState},
		{"akb_get_state_name", &l.getStateName},
		{"akb_is_game_object_active", &l.isGameObjectActive},

		{"akb_music_get_default_settings", &l.musicGetDefaultSettings},
		{"akb_music_init", &l.musicInit},
		{"akb_music_term", &l.musicTerm},
		{"akb_get_playing_segment_info", &l.getPlayingSegmentInfo},

		{"akb_comm_get_default_settings", &l.commGetDefaultSettings},
		{"akb_comm_init", &l.commInit},
		{"akb_comm_term", &l.commTerm},

		{"akb_spatial_get_default_settings", &l.spatialGetDefaultSettings},
		{"akb_spatial_init", &l.spatialInit},
		{"akb_spatial_term", &l.spatialTerm},
		{"akb_spatial_register_listener", &l.spatialRegisterListener},
		{"akb_spatial_unregister_listener", &l.spatialUnregisterListener},
		{"akb_set_game_object_radius", &l.setGameObjectRadius},
		{"akb_set_room", &l.setRoom},
		{"akb_remove_room", &l.removeRoom},
		{"akb_set_game_object_in_room", &l.setGameObjectInRoom},
		{"akb_set_portal", &l.setPortal},
		{"akb_remove_portal", &l.removePortal},
		{"akb_set_portal_obstruction_and_occlusion", &l.setPortalObstruction},
		{"akb_set_geometry", &l.setGeometry},
		{"akb_remove_geometry", &l.removeGeometry},
		{"akb_set_image_source", &l.setImageSource},
		{"akb_remove_image_source", &l.removeImageSource},
		{"akb_clear_image_sources", &l.clearImageSources},
	}
}

func (l *Library) bind() error {
	for _, s := range l.symbols() {
		addr, err := lookupSymbol(l.handle, s.name)
		if err != nil || addr == 0 {
			return fmt.Errorf("%w: %s in %s", ErrSymbolMissing, s.name, l.path)
		}
		purego.RegisterFunc(s.fptr, addr)
	}
	return nil
}

// callbackPtr converts a trampoline to a C function pointer. purego keeps a
// finite callback table, so each distinct Go function is converted once.
func (l *Library) callbackPtr(cb native.CallbackFunc) uintptr {
	if cb == nil {
		return 0
	}
	key := reflect.ValueOf(cb).Pointer()

	l.cbMu.Lock()
	defer l.cbMu.Unlock()
	if ptr, ok := l.callbacks[key]; ok {
		return ptr
	}
	ptr := purego.NewCallback(func(kind uintptr, info uintptr) {
		cb(uint32(kind), unsafe.Pointer(info))
	})
	l.callbacks[key] = ptr
	return ptr
}

var _ native.Engine = (*Library)(nil)

func (l *Library) MemGetDefaultSettings(s *native.MemSettings) { l.memGetDefaultSettings(s) }
func (l *Library) MemInit(s *native.MemSettings) ak.Result     { return l.memInit(s) }
func (l *Library) MemIsInitialized() bool                      { return l.memIsInitialized() }
func (l *Library) MemTerm()                                    { l.memTerm() }

func (l *Library) StreamGetDefaultSettings(s *native.StreamMgrSettings) {
	l.streamGetDefaultSettings(s)
}

func (l *Library) StreamGetDefaultDeviceSettings(s *native.DeviceSettings) {
	l.streamGetDefaultDeviceSettings(s)
}

func (l *Library) StreamCreate(s *native.StreamMgrSettings) bool { return l.streamCreate(s) }

func (l *Library) StreamInitDefault(device *native.DeviceSettings, basePath *native.OSChar) ak.Result {
	return l.streamInitDefault(device, basePath)
}

func (l *Library) StreamTermDefault() { l.streamTermDefault() }

func (l *Library) StreamSetCurrentLanguage(language *native.OSChar) ak.Result {
	return l.streamSetCurrentLanguage(language)
}

func (l *Library) GetDefaultInitSettings(s *native.InitSettings) { l.getDefaultInitSettings(s) }

func (l *Library) GetDefaultPlatformInitSettings(s *native.PlatformInitSettings) {
	l.getDefaultPlatformInitSettings(s)
}

func (l *Library) Init(s *native.InitSettings, p *native.PlatformInitSettings) ak.Result {
	return l.initEngine(s, p)
}

func (l *Library) IsInitialized() bool                  { return l.isInitialized() }
func (l *Library) Term()                                { l.term() }
func (l *Library) RenderAudio(allowSync bool) ak.Result { return l.renderAudio(allowSync) }

func (l *Library) RegisterGameObj(obj ak.GameObjectID) ak.Result {
	return l.registerGameObj(uint64(obj))
}

func (l *Library) RegisterGameObjName(obj ak.GameObjectID, name *byte) ak.Result {
	return l.registerGameObjName(uint64(obj), name)
}

func (l *Library) UnregisterGameObj(obj ak.GameObjectID) ak.Result {
	return l.unregisterGameObj(uint64(obj))
}

func (l *Library) UnregisterAllGameObj() ak.Result { return l.unregisterAllGameObj() }

func (l *Library) SetPosition(obj ak.GameObjectID, pos *ak.Transform) ak.Result {
	return l.setPosition(uint64(obj), pos)
}

func (l *Library) SetDefaultListeners(listeners *ak.GameObjectID, n uint32) ak.Result {
	return l.setDefaultListeners(listeners, n)
}

func (l *Library) SetListeners(obj ak.GameObjectID, listeners *ak.GameObjectID, n uint32) ak.Result {
	return l.setListeners(uint64(obj), listeners, n)
}

func (l *Library) StopAll(obj ak.GameObjectID) { l.stopAll(uint64(obj)) }

func (l *Library) StopPlayingID(id ak.PlayingID, fadeMs ak.TimeMs, curve ak.Curve) {
	l.stopPlayingID(uint32(id), fadeMs, int32(curve))
}

func (l *Library) PostEventID(event ak.UniqueID, obj ak.GameObjectID, flags uint32, cb native.CallbackFunc, cookie uintptr, playingID ak.PlayingID) ak.PlayingID {
	return ak.PlayingID(l.postEventID(uint32(event), uint64(obj), flags, l.callbackPtr(cb), cookie, uint32(playingID)))
}

func (l *Library) PostEventName(event *byte, obj ak.GameObjectID, flags uint32, cb native.CallbackFunc, cookie uintptr, playingID ak.PlayingID) ak.PlayingID {
	return ak.PlayingID(l.postEventName(event, uint64(obj), flags, l.callbackPtr(cb), cookie, uint32(playingID)))
}

func (l *Library) CancelEventCallback(id ak.PlayingID) { l.cancelEventCallback(uint32(id)) }

func (l *Library) GetSourcePlayPosition(id ak.PlayingID, pos *ak.TimeMs, extrapolate bool) ak.Result {
	return l.getSourcePlayPosition(uint32(id), pos, extrapolate)
}

func (l *Library) LoadBankName(name *byte, out *ak.BankID) ak.Result { return l.loadBankName(name, out) }
func (l *Library) LoadBankID(id ak.BankID) ak.Result                 { return l.loadBankID(uint32(id)) }
func (l *Library) UnloadBankName(name *byte) ak.Result               { return l.unloadBankName(name) }
func (l *Library) UnloadBankID(id ak.BankID) ak.Result               { return l.unloadBankID(uint32(id)) }
func (l *Library) ClearBanks() ak.Result                             { return l.clearBanks() }

func (l *Library) GetIDFromString(name *byte) ak.UniqueID {
	return ak.UniqueID(l.getIDFromString(name))
}

func (l *Library) SetRTPCValue(id ak.RtpcID, value ak.RtpcValue, obj ak.GameObjectID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result {
	return l.setRTPCValue(uint32(id), value, uint64(obj), ms, int32(curve), bypass)
}

func (l *Library) SetRTPCValueName(name *byte, value ak.RtpcValue, obj ak.GameObjectID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result {
	return l.setRTPCValueName(name, value, uint64(obj), ms, int32(curve), bypass)
}

func (l *Library) SetRTPCValueByPlayingID(id ak.RtpcID, value ak.RtpcValue, pid ak.PlayingID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result {
	return l.setRTPCValueByPlayingID(uint32(id), value, uint32(pid), ms, int32(curve), bypass)
}

func (l *Library) SetRTPCValueByPlayingIDName(name *byte, value ak.RtpcValue, pid ak.PlayingID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result {
	return l.setRTPCValueByPlayingIDName(name, value, uint32(pid), ms, int32(curve), bypass)
}

func (l *Library) ResetRTPCValue(id ak.RtpcID, obj ak.GameObjectID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result {
	return l.resetRTPCValue(uint32(id), uint64(obj), ms, int32(curve), bypass)
}

func (l *Library) ResetRTPCValueName(name *byte, obj ak.GameObjectID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result {
	return l.resetRTPCValueName(name, uint64(obj), ms, int32(curve), bypass)
}

func (l *Library) SetSwitch(group ak.SwitchGroupID, state ak.SwitchStateID, obj ak.GameObjectID) ak.Result {
	return l.setSwitch(uint32(group), uint32(state), uint64(obj))
}

func (l *Library) SetSwitchName(group, state *byte, obj ak.GameObjectID) ak.Result {
	return l.setSwitchName(group, state, uint64(obj))
}

func (l *Library) SetState(group ak.StateGroupID, state ak.StateID) ak.Result {
	return l.setState(uint32(group), uint32(state))
}

func (l *Library) SetStateName(group, state *byte) ak.Result { return l.setStateName(group, state) }

func (l *Library) PostTrigger(id ak.TriggerID, obj ak.GameObjectID) ak.Result {
	return l.postTrigger(uint32(id), uint64(obj))
}

func (l *Library) PostTriggerName(name *byte, obj ak.GameObjectID) ak.Result {
	return l.postTriggerName(name, uint64(obj))
}

func (l *Library) GetPosition(obj ak.GameObjectID, out *ak.Transform) ak.Result {
	return l.getPosition(uint64(obj), out)
}

func (l *Library) GetListeners(obj ak.GameObjectID, out *ak.GameObjectID, n *uint32) ak.Result {
	return l.getListeners(uint64(obj), out, n)
}

func (l *Library) GetListenerPosition(listener ak.GameObjectID, out *ak.Transform) ak.Result {
	return l.getListenerPosition(uint64(listener), out)
}

func (l *Library) GetRTPCValue(id ak.RtpcID, obj ak.GameObjectID, pid ak.PlayingID, value *ak.RtpcValue, scope *int32) ak.Result {
	return l.getRTPCValue(uint32(id), uint64(obj), uint32(pid), value, scope)
}

func (l *Library) GetRTPCValueName(name *byte, obj ak.GameObjectID, pid ak.PlayingID, value *ak.RtpcValue, scope *int32) ak.Result {
	return l.getRTPCValueName(name, uint64(obj), uint32(pid), value, scope)
}

func (l *Library) GetSwitch(group ak.SwitchGroupID, obj ak.GameObjectID, out *ak.SwitchStateID) ak.Result {
	return l.getSwitch(uint32(group), uint64(obj), (*uint32)(out))
}

func (l *Library) GetSwitchName(group *byte, obj ak.GameObjectID, out *ak.SwitchStateID) ak.Result {
	return l.getSwitchName(group, uint64(obj), (*uint32)(out))
}

func (l *Library) GetState(group ak.StateGroupID, out *ak.StateID) ak.Result {
	return l.getState(uint32(group), (*uint32)(out))
}

func (l *Library) GetStateName(group *byte, out *ak.StateID) ak.Result {
	return l.getStateName(group, (*uint32)(out))
}

func (l *Library) IsGameObjectActive(obj ak.GameObjectID) bool {
	return l.isGameObjectActive(uint64(obj))
}

func (l *Library) MusicGetDefaultSettings(s *native.MusicSettings) { l.musicGetDefaultSettings(s) }
func (l *Library) MusicInit(s *native.MusicSettings) ak.Result     { return l.musicInit(s) }
func (l *Library) MusicTerm()                                      { l.musicTerm() }

func (l *Library) GetPlayingSegmentInfo(id ak.PlayingID, out *ak.SegmentInfo, extrapolate bool) ak.Result {
	return l.getPlayingSegmentInfo(uint32(id), out, extrapolate)
}

func (l *Library) CommGetDefaultSettings(s *native.CommSettings) { l.commGetDefaultSettings(s) }
func (l *Library) CommInit(s *native.CommSettings) ak.Result     { return l.commInit(s) }
func (l *Library) CommTerm()                                     { l.commTerm() }

func (l *Library) SpatialGetDefaultSettings(s *native.SpatialAudioInitSettings) {
	l.spatialGetDefaultSettings(s)
}

func (l *Library) SpatialInit(s *native.SpatialAudioInitSettings) ak.Result { return l.spatialInit(s) }
func (l *Library) SpatialTerm()                                             { l.spatialTerm() }

func (l *Library) SpatialRegisterListener(obj ak.GameObjectID) ak.Result {
	return l.spatialRegisterListener(uint64(obj))
}

func (l *Library) SpatialUnregisterListener(obj ak.GameObjectID) ak.Result {
	return l.spatialUnregisterListener(uint64(obj))
}

func (l *Library) SetGameObjectRadius(obj ak.GameObjectID, outer, inner float32) ak.Result {
	return l.setGameObjectRadius(uint64(obj), outer, inner)
}

func (l *Library) SetRoom(room ak.GameObjectID, params *native.RoomParams, name *byte) ak.Result {
	return l.setRoom(uint64(room), params, name)
}

func (l *Library) RemoveRoom(room ak.GameObjectID) ak.Result { return l.removeRoom(uint64(room)) }

func (l *Library) SetGameObjectInRoom(obj, room ak.GameObjectID) ak.Result {
	return l.setGameObjectInRoom(uint64(obj), uint64(room))
}

func (l *Library) SetPortal(portal ak.PortalID, params *native.PortalParams, name *byte) ak.Result {
	return l.setPortal(uint64(portal), params, name)
}

func (l *Library) RemovePortal(portal ak.PortalID) ak.Result { return l.removePortal(uint64(portal)) }

func (l *Library) SetPortalObstructionAndOcclusion(portal ak.PortalID, obstruction, occlusion float32) ak.Result {
	return l.setPortalObstruction(uint64(portal), obstruction, occlusion)
}

func (l *Library) SetGeometry(id ak.GeometrySetID, params *native.GeometryParams, vertices *ak.Vector, numVertices uint16,
	triangles *native.Triangle, numTriangles uint16, surfaces *native.Surface, numSurfaces uint16) ak.Result {
	return l.setGeometry(uint64(id), params, vertices, numVertices, triangles, numTriangles, surfaces, numSurfaces)
}

func (l *Library) RemoveGeometry(id ak.GeometrySetID) ak.Result { return l.removeGeometry(uint64(id)) }

func (l *Library) SetImageSource(src ak.ImageSourceID, params *native.ImageSourceParams, name *byte, auxBus ak.AuxBusID, room ak.RoomID, obj ak.GameObjectID) ak.Result {
	return l.setImageSource(uint32(src), params, name, uint32(auxBus), uint64(room), uint64(obj))
}

func (l *Library) RemoveImageSource(src ak.ImageSourceID, auxBus ak.AuxBusID, obj ak.GameObjectID) ak.Result {
	return l.removeImageSource(uint32(src), uint32(auxBus), uint64(obj))
}

func (l *Library) ClearImageSources(auxBus ak.AuxBusID, obj ak.GameObjectID) ak.Result {
	return l.clearImageSources(uint32(auxBus), uint64(obj))
}
