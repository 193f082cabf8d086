package sim

import (
	"slices"
	"unsafe"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
)

type gameObject struct {
	name      string
	position  ak.Transform
	listeners []ak.GameObjectID
	// ownListeners is set once SetListeners overrides the defaults.
	ownListeners bool
	rtpc         map[ak.RtpcID]ak.RtpcValue
	switches     map[ak.SwitchGroupID]ak.SwitchStateID
	triggers     map[ak.TriggerID]int
	outerRadius  float32
	innerRadius  float32
	room         ak.GameObjectID
}

func newGameObject(name string) *gameObject {
	return &gameObject{
		name:     name,
		position: ak.NewTransform(),
		rtpc:     make(map[ak.RtpcID]ak.RtpcValue),
		switches: make(map[ak.SwitchGroupID]ak.SwitchStateID),
		triggers: make(map[ak.TriggerID]int),
		room:     OutdoorRoom,
	}
}

// listenerSlice reads n IDs from an engine array argument.
func listenerSlice(p *ak.GameObjectID, n uint32) []ak.GameObjectID {
	if p == nil || n == 0 {
		return nil
	}
	return slices.Clone(unsafe.Slice(p, n))
}

func (e *Engine) RegisterGameObj(obj ak.GameObjectID) ak.Result {
	return e.register(obj, "")
}

func (e *Engine) RegisterGameObjName(obj ak.GameObjectID, name *byte) ak.Result {
	return e.register(obj, native.GoString(name))
}

func (e *Engine) register(obj ak.GameObjectID, name string) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	if ak.IsReservedGameObject(obj) {
		return ak.InvalidParameter
	}
	if o, ok := e.objects[obj]; ok {
		if name != "" {
			o.name = name
		}
		return ak.Success
	}
	e.objects[obj] = newGameObject(name)
	return ak.Success
}

func (e *Engine) UnregisterGameObj(obj ak.GameObjectID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	if obj == ak.InvalidGameObject {
		e.unregisterAll()
		return ak.Success
	}
	if _, ok := e.objects[obj]; !ok {
		return ak.IDNotFound
	}
	e.unregister(obj)
	return ak.Success
}

func (e *Engine) UnregisterAllGameObj() ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	e.unregisterAll()
	return ak.Success
}

// unregister stops everything playing on obj and forgets it. Callers hold mu.
func (e *Engine) unregister(obj ak.GameObjectID) {
	for _, inst := range e.playing {
		if inst.obj == obj {
			inst.stop(e.now)
		}
	}
	delete(e.objects, obj)
	delete(e.spatialListeners, obj)
	e.defaultListeners = slices.DeleteFunc(e.defaultListeners, func(l ak.GameObjectID) bool { return l == obj })
	for _, o := range e.objects {
		o.listeners = slices.DeleteFunc(o.listeners, func(l ak.GameObjectID) bool { return l == obj })
	}
}

func (e *Engine) unregisterAll() {
	for id := range e.objects {
		e.unregister(id)
	}
}

// GameObjectName returns the name obj was registered with.
func (e *Engine) GameObjectName(obj ak.GameObjectID) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	o, ok := e.objects[obj]
	if !ok {
		return "", false
	}
	return o.name, true
}

func (e *Engine) SetPosition(obj ak.GameObjectID, pos *ak.Transform) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	o, ok := e.objects[obj]
	if !ok {
		return ak.IDNotFound
	}
	if pos == nil {
		return ak.InvalidParameter
	}
	o.position = *pos
	return ak.Success
}

func (e *Engine) SetDefaultListeners(listeners *ak.GameObjectID, n uint32) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	ids := listenerSlice(listeners, n)
	for _, l := range ids {
		if _, ok := e.objects[l]; !ok {
			return ak.IDNotFound
		}
	}
	e.defaultListeners = ids
	return ak.Success
}

func (e *Engine) SetListeners(obj ak.GameObjectID, listeners *ak.GameObjectID, n uint32) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	o, ok := e.objects[obj]
	if !ok {
		return ak.IDNotFound
	}
	ids := listenerSlice(listeners, n)
	for _, l := range ids {
		if _, ok := e.objects[l]; !ok {
			return ak.IDNotFound
		}
	}
	o.listeners = ids
	o.ownListeners = true
	return ak.Success
}

func (e *Engine) GetPosition(obj ak.GameObjectID, out *ak.Transform) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	o, ok := e.objects[obj]
	if !ok {
		return ak.IDNotFound
	}
	*out = o.position
	return ak.Success
}

func (e *Engine) GetListeners(obj ak.GameObjectID, out *ak.GameObjectID, n *uint32) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	o, ok := e.objects[obj]
	if !ok {
		return ak.IDNotFound
	}
	listeners := e.defaultListeners
	if o.ownListeners {
		listeners = o.listeners
	}
	if out != nil {
		copy(unsafe.Slice(out, *n), listeners)
		if uint32(len(listeners)) < *n {
			*n = uint32(len(listeners))
		}
		return ak.Success
	}
	*n = uint32(len(listeners))
	return ak.Success
}

func (e *Engine) GetListenerPosition(listener ak.GameObjectID, out *ak.Transform) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	o, ok := e.objects[listener]
	if !ok {
		return ak.IDNotFound
	}
	if !e.isListener(listener) {
		return ak.Fail
	}
	*out = o.position
	return ak.Success
}

// isListener reports whether any object hears through id. Callers hold mu.
func (e *Engine) isListener(id ak.GameObjectID) bool {
	if slices.Contains(e.defaultListeners, id) || e.spatialListeners[id] {
		return true
	}
	for _, o := range e.objects {
		if slices.Contains(o.listeners, id) {
			return true
		}
	}
	return false
}

func (e *Engine) IsGameObjectActive(obj ak.GameObjectID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, inst := range e.playing {
		if inst.obj == obj && !inst.ended {
			return true
		}
	}
	return false
}
