package sim

import (
	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
)

// OutdoorRoom is the room every game object starts in.
const OutdoorRoom = ak.GameObjectID(^uint64(0))

type room struct {
	name   string
	params native.RoomParams
}

func (e *Engine) MusicGetDefaultSettings(s *native.MusicSettings) {
	*s = native.MusicSettings{StreamingLookAheadRatio: 1}
}

func (e *Engine) MusicInit(s *native.MusicSettings) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case !e.initialized:
		return ak.NotInitialized
	case e.musicInit:
		return ak.AlreadyInitialized
	case s.StreamingLookAheadRatio <= 0:
		return ak.InvalidParameter
	}
	e.music = *s
	e.musicInit = true
	return ak.Success
}

func (e *Engine) MusicTerm() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.musicInit = false
}

// MusicInitialized reports whether the music engine is up.
func (e *Engine) MusicInitialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.musicInit
}

func (e *Engine) CommGetDefaultSettings(s *native.CommSettings) {
	*s = native.CommSettings{
		DiscoveryBroadcastPort: 24024,
		CommandPort:            0,
		InitSystemLib:          true,
	}
}

func (e *Engine) CommInit(s *native.CommSettings) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case !e.initialized:
		return ak.NotInitialized
	case e.commInit:
		return ak.AlreadyInitialized
	case s.DiscoveryBroadcastPort == 0:
		return ak.InvalidParameter
	}
	e.comm = *s
	e.commInit = true
	return ak.Success
}

func (e *Engine) CommTerm() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.commInit = false
}

// CommSettings returns the settings communication was initialised with and
// whether it is up.
func (e *Engine) CommSettings() (native.CommSettings, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.comm, e.commInit
}

func (e *Engine) SpatialGetDefaultSettings(s *native.SpatialAudioInitSettings) {
	*s = native.SpatialAudioInitSettings{
		MaxSoundPropagationDepth:                  8,
		MovementThreshold:                         1,
		NumberOfPrimaryRays:                       35,
		MaxReflectionOrder:                        2,
		MaxPathLength:                             10000,
		CPULimitPercentage:                        0,
		EnableDiffractionOnReflection:             true,
		EnableGeometricDiffractionAndTransmission: true,
		CalcEmitterVirtualPosition:                true,
	}
}

func (e *Engine) SpatialInit(s *native.SpatialAudioInitSettings) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case !e.initialized:
		return ak.NotInitialized
	case e.spatialInit:
		return ak.AlreadyInitialized
	case s.MaxReflectionOrder > 4 || s.MaxPathLength <= 0 || s.CPULimitPercentage < 0 || s.CPULimitPercentage > 100:
		return ak.InvalidParameter
	}
	e.spatial = *s
	e.spatialInit = true
	return ak.Success
}

func (e *Engine) SpatialTerm() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spatialInit = false
	e.clearSpatialWorld()
}

func (e *Engine) SpatialRegisterListener(obj ak.GameObjectID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	if _, ok := e.objects[obj]; !ok {
		return ak.IDNotFound
	}
	e.spatialListeners[obj] = true
	return ak.Success
}

func (e *Engine) SpatialUnregisterListener(obj ak.GameObjectID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	if !e.spatialListeners[obj] {
		return ak.IDNotFound
	}
	delete(e.spatialListeners, obj)
	return ak.Success
}

// SpatialListener reports whether obj is the spatial audio listener.
func (e *Engine) SpatialListener(obj ak.GameObjectID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.spatialListeners[obj]
}

func (e *Engine) SetGameObjectRadius(obj ak.GameObjectID, outer, inner float32) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	o, ok := e.objects[obj]
	if !ok {
		return ak.IDNotFound
	}
	if outer < 0 || inner < 0 || inner > outer {
		return ak.InvalidParameter
	}
	o.outerRadius, o.innerRadius = outer, inner
	return ak.Success
}

func (e *Engine) SetRoom(id ak.GameObjectID, params *native.RoomParams, name *byte) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	if params == nil || params.ReverbLevel < 0 || params.ReverbLevel > 1 ||
		params.TransmissionLoss < 0 || params.TransmissionLoss > 1 {
		return ak.InvalidParameter
	}
	e.rooms[id] = room{name: native.GoString(name), params: *params}
	return ak.Success
}

func (e *Engine) RemoveRoom(id ak.GameObjectID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	if _, ok := e.rooms[id]; !ok {
		return ak.IDNotFound
	}
	delete(e.rooms, id)
	for _, o := range e.objects {
		if o.room == id {
			o.room = OutdoorRoom
		}
	}
	return ak.Success
}

func (e *Engine) SetGameObjectInRoom(obj, roomID ak.GameObjectID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	o, ok := e.objects[obj]
	if !ok {
		return ak.IDNotFound
	}
	if _, ok := e.rooms[roomID]; !ok && roomID != OutdoorRoom {
		return ak.IDNotFound
	}
	o.room = roomID
	return ak.Success
}

// Room returns the name of a room added with SetRoom.
func (e *Engine) Room(id ak.GameObjectID) (string, native.RoomParams, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.rooms[id]
	return r.name, r.params, ok
}

// GameObjectRoom returns the room obj was placed in.
func (e *Engine) GameObjectRoom(obj ak.GameObjectID) (ak.GameObjectID, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	o, ok := e.objects[obj]
	if !ok {
		return 0, false
	}
	return o.room, true
}

// GameObjectRadius returns the radii set with SetGameObjectRadius.
func (e *Engine) GameObjectRadius(obj ak.GameObjectID) (outer, inner float32, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	o, ok := e.objects[obj]
	if !ok {
		return 0, 0, false
	}
	return o.outerRadius, o.innerRadius, true
}
