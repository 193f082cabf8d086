package soundengine

import (
	"fmt"
	"runtime"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
)

// RegisterGameObj makes obj addressable by posts, positions and game syncs.
func RegisterGameObj(obj ak.GameObjectID) error {
	if err := ak.Check(native.Current().RegisterGameObj(obj)); err != nil {
		return fmt.Errorf("soundengine: register game object %d: %w", obj, err)
	}
	return nil
}

// RegisterGameObjWithName is RegisterGameObj with a name shown in the
// authoring tool's profiler.
func RegisterGameObjWithName(obj ak.GameObjectID, name string) error {
	b, err := native.CString(name)
	if err != nil {
		return fmt.Errorf("soundengine: register game object %d: %w", obj, err)
	}
	r := native.Current().RegisterGameObjName(obj, &b[0])
	runtime.KeepAlive(b)
	if err := ak.Check(r); err != nil {
		return fmt.Errorf("soundengine: register game object %d (%s): %w", obj, name, err)
	}
	return nil
}

// UnregisterGameObj stops everything playing on obj and forgets it.
func UnregisterGameObj(obj ak.GameObjectID) error {
	return ak.Check(native.Current().UnregisterGameObj(obj))
}

func UnregisterAllGameObj() error {
	return ak.Check(native.Current().UnregisterAllGameObj())
}

// SetPosition moves obj.
func SetPosition(obj ak.GameObjectID, pos ak.SoundPosition) error {
	return ak.Check(native.Current().SetPosition(obj, &pos))
}

// SetDefaultListeners sets the listeners of every game object that has no
// listeners of its own.
func SetDefaultListeners(listeners ...ak.GameObjectID) error {
	return ak.Check(native.Current().SetDefaultListeners(listenerPtr(listeners), uint32(len(listeners))))
}

// SetListeners overrides the default listeners for obj.
func SetListeners(obj ak.GameObjectID, listeners ...ak.GameObjectID) error {
	return ak.Check(native.Current().SetListeners(obj, listenerPtr(listeners), uint32(len(listeners))))
}

func listenerPtr(ids []ak.GameObjectID) *ak.GameObjectID {
	if len(ids) == 0 {
		return nil
	}
	return &ids[0]
}
