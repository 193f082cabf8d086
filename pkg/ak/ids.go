// Package ak holds the identifier, result and value types shared by every
// engine wrapper.
package ak

// Engine identifier types.
type (
	// GameObjectID addresses an application-side emitter or listener.
	GameObjectID uint64
	// PlayingID identifies one accepted event post and all of its callbacks.
	PlayingID uint32
	// UniqueID is the engine's 32-bit object identifier.
	UniqueID uint32
	// GeometrySetID names a set of spatial audio geometry.
	GeometrySetID uint64
	// ImageSourceID names a reflection image source within one aux bus and
	// game object.
	ImageSourceID uint32

	BankID        = UniqueID
	RtpcID        = UniqueID
	SwitchGroupID = UniqueID
	SwitchStateID = UniqueID
	StateGroupID  = UniqueID
	StateID       = UniqueID
	TriggerID     = UniqueID
	AuxBusID      = UniqueID
	// Rooms and portals share the game object ID space.
	RoomID   = GameObjectID
	PortalID = GameObjectID

	// TimeMs is a duration in milliseconds.
	TimeMs = int32
	// RtpcValue is the scalar carried by a game parameter.
	RtpcValue = float32
)

const (
	// InvalidGameObject means "no object" or "all objects" depending on the call.
	InvalidGameObject GameObjectID = ^GameObjectID(0)
	// TransportGameObject is reserved by the engine for its transport object.
	TransportGameObject GameObjectID = ^GameObjectID(0) - 1

	InvalidPlayingID PlayingID = 0
	InvalidUniqueID  UniqueID  = 0
	InvalidRtpcID    RtpcID    = InvalidUniqueID
	InvalidBankID    BankID    = InvalidUniqueID
	InvalidAuxBusID  AuxBusID  = InvalidUniqueID
)

// IsReservedGameObject reports whether id collides with an engine sentinel.
func IsReservedGameObject(id GameObjectID) bool {
	return id == InvalidGameObject || id == TransportGameObject
}
