// Package spatialaudio wraps the spatial audio module: its listener, emitter
// radii, rooms and the portals connecting them, geometry sets and
// reflection image sources. Rooms and portals share the game object ID
// space.
package spatialaudio

import (
	"fmt"
	"runtime"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/native"
)

// OutdoorRoomID is the room every game object starts in. It may be passed
// to SetRoom to give the outdoors its own parameters.
const OutdoorRoomID ak.GameObjectID = ^ak.GameObjectID(0)

// IDs from firstReservedID up to OutdoorRoomID, exclusive, belong to the
// engine.
const firstReservedID = OutdoorRoomID - 32

// RoomParams describes a room. Front and Up must be orthonormal.
type RoomParams struct {
	Front              ak.Vector
	Up                 ak.Vector
	ReverbAuxBus       ak.AuxBusID
	ReverbLevel        float32
	TransmissionLoss   float32
	AuxSendLevelToSelf float32
	KeepRegistered     bool
	GeometryID         uint64
	// Name shows up in the profiler. It may be empty.
	Name string
}

// DefaultRoomParams returns a room facing +Z with full reverb and full
// transmission loss.
func DefaultRoomParams() RoomParams {
	return RoomParams{
		Front:            ak.Vector{Z: 1},
		Up:               ak.Vector{Y: 1},
		ReverbLevel:      1,
		TransmissionLoss: 1,
	}
}

func (p RoomParams) record() native.RoomParams {
	return native.RoomParams{
		Front:              p.Front,
		Up:                 p.Up,
		ReverbAuxBus:       uint32(p.ReverbAuxBus),
		ReverbLevel:        p.ReverbLevel,
		TransmissionLoss:   p.TransmissionLoss,
		AuxSendLevelToSelf: p.AuxSendLevelToSelf,
		KeepRegistered:     p.KeepRegistered,
		GeometryID:         p.GeometryID,
	}
}

// Init starts spatial audio. The sound engine must be up.
func Init(s native.SpatialAudioInitSettings) error {
	if err := ak.Check(native.Current().SpatialInit(&s)); err != nil {
		return fmt.Errorf("spatialaudio: init: %w", err)
	}
	debug.Info("spatialaudio: initialised")
	return nil
}

// Term stops spatial audio and drops its rooms and listener.
func Term() {
	native.Current().SpatialTerm()
	debug.Info("spatialaudio: terminated")
}

// RegisterListener makes obj the spatial audio listener, replacing any
// previous one.
func RegisterListener(obj ak.GameObjectID) error {
	if err := ak.Check(native.Current().SpatialRegisterListener(obj)); err != nil {
		return fmt.Errorf("spatialaudio: register listener %d: %w", obj, err)
	}
	return nil
}

// UnregisterListener clears obj as the spatial audio listener.
func UnregisterListener(obj ak.GameObjectID) error {
	if err := ak.Check(native.Current().SpatialUnregisterListener(obj)); err != nil {
		return fmt.Errorf("spatialaudio: unregister listener %d: %w", obj, err)
	}
	return nil
}

// SetGameObjectRadius sets the spread radii of an emitter.
func SetGameObjectRadius(obj ak.GameObjectID, outer, inner float32) error {
	if err := ak.Check(native.Current().SetGameObjectRadius(obj, outer, inner)); err != nil {
		return fmt.Errorf("spatialaudio: set radius of %d: %w", obj, err)
	}
	return nil
}

// SetRoom adds or updates a room.
func SetRoom(id ak.GameObjectID, params RoomParams) error {
	if reserved(id) {
		return fmt.Errorf("spatialaudio: set room %d: reserved id: %w", id, ak.InvalidParameter)
	}
	name, err := native.CString(params.Name)
	if err != nil {
		return fmt.Errorf("spatialaudio: set room %d: %w", id, err)
	}
	rec := params.record()
	r := native.Current().SetRoom(id, &rec, &name[0])
	runtime.KeepAlive(name)
	if err := ak.Check(r); err != nil {
		return fmt.Errorf("spatialaudio: set room %d: %w", id, err)
	}
	return nil
}

// RemoveRoom removes a room. Game objects inside it move outdoors.
func RemoveRoom(id ak.GameObjectID) error {
	if reserved(id) {
		return fmt.Errorf("spatialaudio: remove room %d: reserved id: %w", id, ak.InvalidParameter)
	}
	if err := ak.Check(native.Current().RemoveRoom(id)); err != nil {
		return fmt.Errorf("spatialaudio: remove room %d: %w", id, err)
	}
	return nil
}

// SetGameObjectInRoom places obj inside room.
func SetGameObjectInRoom(obj, room ak.GameObjectID) error {
	if err := ak.Check(native.Current().SetGameObjectInRoom(obj, room)); err != nil {
		return fmt.Errorf("spatialaudio: put %d in room %d: %w", obj, room, err)
	}
	return nil
}

func reserved(id ak.GameObjectID) bool {
	return id >= firstReservedID && id < OutdoorRoomID
}
