package gamesyncs

import (
	"fmt"
	"runtime"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
)

// SetSwitch sets the switch group of obj to state. group and state must
// both be names or both be numeric IDs.
func SetSwitch(group, state ak.ID, obj ak.GameObjectID) error {
	if group.IsName() != state.IsName() {
		return fmt.Errorf("gamesyncs: set switch %s to %s: mixed name and id: %w", group, state, ak.InvalidParameter)
	}
	var res ak.Result
	if group.IsName() {
		g, s, err := cstrings(group, state)
		if err != nil {
			return fmt.Errorf("gamesyncs: set switch: %w", err)
		}
		res = native.Current().SetSwitchName(&g[0], &s[0], obj)
		runtime.KeepAlive(g)
		runtime.KeepAlive(s)
	} else {
		res = native.Current().SetSwitch(group.NumericValue(), state.NumericValue(), obj)
	}
	if err := ak.Check(res); err != nil {
		return fmt.Errorf("gamesyncs: set switch %s to %s on game object %d: %w", group, state, obj, err)
	}
	return nil
}

// SetState sets the global state group to state. group and state must both
// be names or both be numeric IDs.
func SetState(group, state ak.ID) error {
	if group.IsName() != state.IsName() {
		return fmt.Errorf("gamesyncs: set state %s to %s: mixed name and id: %w", group, state, ak.InvalidParameter)
	}
	var res ak.Result
	if group.IsName() {
		g, s, err := cstrings(group, state)
		if err != nil {
			return fmt.Errorf("gamesyncs: set state: %w", err)
		}
		res = native.Current().SetStateName(&g[0], &s[0])
		runtime.KeepAlive(g)
		runtime.KeepAlive(s)
	} else {
		res = native.Current().SetState(group.NumericValue(), state.NumericValue())
	}
	if err := ak.Check(res); err != nil {
		return fmt.Errorf("gamesyncs: set state %s to %s: %w", group, state, err)
	}
	return nil
}

// PostTrigger fires a trigger on obj, or on every game object when obj is
// ak.InvalidGameObject.
func PostTrigger(trigger ak.ID, obj ak.GameObjectID) error {
	var res ak.Result
	if trigger.IsName() {
		name, err := native.CString(trigger.NameValue())
		if err != nil {
			return fmt.Errorf("gamesyncs: post trigger: %w", err)
		}
		res = native.Current().PostTriggerName(&name[0], obj)
		runtime.KeepAlive(name)
	} else {
		res = native.Current().PostTrigger(trigger.NumericValue(), obj)
	}
	if err := ak.Check(res); err != nil {
		return fmt.Errorf("gamesyncs: post trigger %s on game object %d: %w", trigger, obj, err)
	}
	return nil
}

func cstrings(a, b ak.ID) ([]byte, []byte, error) {
	ca, err := native.CString(a.NameValue())
	if err != nil {
		return nil, nil, err
	}
	cb, err := native.CString(b.NameValue())
	if err != nil {
		return nil, nil, err
	}
	return ca, cb, nil
}
