// Package query reads sound engine state back: positions, listeners and
// current game sync values. Queries may wait for the audio thread and
// should stay off time-critical paths.
package query

import (
	"fmt"
	"runtime"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
)

// RTPCScope is where a game parameter value comes from.
type RTPCScope int32

const (
	ScopeDefault     RTPCScope = RTPCScope(native.RTPCScopeDefault)
	ScopeGlobal      RTPCScope = RTPCScope(native.RTPCScopeGlobal)
	ScopeGameObject  RTPCScope = RTPCScope(native.RTPCScopeGameObject)
	ScopePlayingID   RTPCScope = RTPCScope(native.RTPCScopePlayingID)
	ScopeUnavailable RTPCScope = RTPCScope(native.RTPCScopeUnavailable)
)

func (s RTPCScope) String() string {
	switch s {
	case ScopeDefault:
		return "Default"
	case ScopeGlobal:
		return "Global"
	case ScopeGameObject:
		return "GameObject"
	case ScopePlayingID:
		return "PlayingID"
	case ScopeUnavailable:
		return "Unavailable"
	default:
		return fmt.Sprintf("RTPCScope(%d)", int32(s))
	}
}

// RTPCValue is a game parameter value and the scope it was found in.
// Value is meaningless when Scope is ScopeUnavailable.
type RTPCValue struct {
	Scope RTPCScope
	Value ak.RtpcValue
}

func GetPosition(obj ak.GameObjectID) (ak.SoundPosition, error) {
	var pos ak.SoundPosition
	if err := ak.Check(native.Current().GetPosition(obj, &pos)); err != nil {
		return ak.NewTransform(), fmt.Errorf("query: position of %d: %w", obj, err)
	}
	return pos, nil
}

// GetListenersCount returns how many listeners obj is heard through.
func GetListenersCount(obj ak.GameObjectID) (int, error) {
	var n uint32
	if err := ak.Check(native.Current().GetListeners(obj, nil, &n)); err != nil {
		return 0, fmt.Errorf("query: listeners of %d: %w", obj, err)
	}
	return int(n), nil
}

// GetListeners returns up to limit listeners of obj.
func GetListeners(obj ak.GameObjectID, limit int) ([]ak.GameObjectID, error) {
	if limit <= 0 {
		return nil, nil
	}
	out := make([]ak.GameObjectID, limit)
	n := uint32(limit)
	if err := ak.Check(native.Current().GetListeners(obj, &out[0], &n)); err != nil {
		return nil, fmt.Errorf("query: listeners of %d: %w", obj, err)
	}
	return out[:n], nil
}

func GetListenerPosition(listener ak.GameObjectID) (ak.ListenerPosition, error) {
	var pos ak.ListenerPosition
	if err := ak.Check(native.Current().GetListenerPosition(listener, &pos)); err != nil {
		return ak.NewTransform(), fmt.Errorf("query: position of listener %d: %w", listener, err)
	}
	return pos, nil
}

// GetRTPCValue looks the game parameter up starting at scope and falling
// back towards the authored default. Pass ak.InvalidGameObject and
// ak.InvalidPlayingID for the scopes that do not apply.
func GetRTPCValue(id ak.ID, obj ak.GameObjectID, playingID ak.PlayingID, scope RTPCScope) (RTPCValue, error) {
	var value ak.RtpcValue
	raw := int32(scope)

	var res ak.Result
	if id.IsName() {
		name, err := native.CString(id.NameValue())
		if err != nil {
			return RTPCValue{Scope: ScopeUnavailable}, fmt.Errorf("query: rtpc value: %w", err)
		}
		res = native.Current().GetRTPCValueName(&name[0], obj, playingID, &value, &raw)
		runtime.KeepAlive(name)
	} else {
		res = native.Current().GetRTPCValue(id.NumericValue(), obj, playingID, &value, &raw)
	}
	if err := ak.Check(res); err != nil {
		return RTPCValue{Scope: ScopeUnavailable}, fmt.Errorf("query: rtpc value of %s: %w", id, err)
	}
	return RTPCValue{Scope: RTPCScope(raw), Value: value}, nil
}

// GetSwitch returns the current state of a switch group on obj.
func GetSwitch(group ak.ID, obj ak.GameObjectID) (ak.SwitchStateID, error) {
	var state ak.SwitchStateID
	var res ak.Result
	if group.IsName() {
		name, err := native.CString(group.NameValue())
		if err != nil {
			return ak.InvalidUniqueID, fmt.Errorf("query: switch: %w", err)
		}
		res = native.Current().GetSwitchName(&name[0], obj, &state)
		runtime.KeepAlive(name)
	} else {
		res = native.Current().GetSwitch(group.NumericValue(), obj, &state)
	}
	if err := ak.Check(res); err != nil {
		return ak.InvalidUniqueID, fmt.Errorf("query: switch %s on %d: %w", group, obj, err)
	}
	return state, nil
}

// GetState returns the current state of a global state group.
func GetState(group ak.ID) (ak.StateID, error) {
	var state ak.StateID
	var res ak.Result
	if group.IsName() {
		name, err := native.CString(group.NameValue())
		if err != nil {
			return ak.InvalidUniqueID, fmt.Errorf("query: state: %w", err)
		}
		res = native.Current().GetStateName(&name[0], &state)
		runtime.KeepAlive(name)
	} else {
		res = native.Current().GetState(group.NumericValue(), &state)
	}
	if err := ak.Check(res); err != nil {
		return ak.InvalidUniqueID, fmt.Errorf("query: state %s: %w", group, err)
	}
	return state, nil
}

// IsGameObjectActive reports whether anything is playing on obj.
func IsGameObjectActive(obj ak.GameObjectID) bool {
	return native.Current().IsGameObjectActive(obj)
}
