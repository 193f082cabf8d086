package sim

import (
	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
)

func (e *Engine) SetRTPCValue(id ak.RtpcID, value ak.RtpcValue, obj ak.GameObjectID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	if ms < 0 {
		return ak.InvalidParameter
	}
	value = e.clampRTPC(id, value)
	if obj == ak.InvalidGameObject {
		e.globalRTPC[id] = value
		return ak.Success
	}
	o, ok := e.objects[obj]
	if !ok {
		return ak.IDNotFound
	}
	o.rtpc[id] = value
	return ak.Success
}

func (e *Engine) SetRTPCValueName(name *byte, value ak.RtpcValue, obj ak.GameObjectID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result {
	return e.SetRTPCValue(e.GetIDFromString(name), value, obj, ms, curve, bypass)
}

func (e *Engine) SetRTPCValueByPlayingID(id ak.RtpcID, value ak.RtpcValue, pid ak.PlayingID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	if ms < 0 {
		return ak.InvalidParameter
	}
	if _, ok := e.playing[pid]; !ok {
		return ak.PlayingIDNotFound
	}
	values, ok := e.playingRTPC[pid]
	if !ok {
		values = make(map[ak.RtpcID]ak.RtpcValue)
		e.playingRTPC[pid] = values
	}
	values[id] = e.clampRTPC(id, value)
	return ak.Success
}

func (e *Engine) SetRTPCValueByPlayingIDName(name *byte, value ak.RtpcValue, pid ak.PlayingID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result {
	return e.SetRTPCValueByPlayingID(e.GetIDFromString(name), value, pid, ms, curve, bypass)
}

func (e *Engine) ResetRTPCValue(id ak.RtpcID, obj ak.GameObjectID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	if obj == ak.InvalidGameObject {
		delete(e.globalRTPC, id)
		return ak.Success
	}
	o, ok := e.objects[obj]
	if !ok {
		return ak.IDNotFound
	}
	delete(o.rtpc, id)
	return ak.Success
}

func (e *Engine) ResetRTPCValueName(name *byte, obj ak.GameObjectID, ms ak.TimeMs, curve ak.Curve, bypass bool) ak.Result {
	return e.ResetRTPCValue(e.GetIDFromString(name), obj, ms, curve, bypass)
}

// clampRTPC limits value to the authored range. Callers hold mu.
func (e *Engine) clampRTPC(id ak.RtpcID, value ak.RtpcValue) ak.RtpcValue {
	p, ok := e.gameParams[id]
	if !ok || p.Min == p.Max {
		return value
	}
	return min(max(value, p.Min), p.Max)
}

func (e *Engine) GetRTPCValue(id ak.RtpcID, obj ak.GameObjectID, pid ak.PlayingID, value *ak.RtpcValue, scope *int32) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	param, known := e.gameParams[id]

	requested := *scope
	if requested == native.RTPCScopePlayingID {
		if v, ok := e.playingRTPC[pid][id]; ok {
			*value = v
			return ak.Success
		}
		inst, ok := e.playing[pid]
		if !ok {
			*scope = native.RTPCScopeUnavailable
			return ak.PlayingIDNotFound
		}
		obj = inst.obj
		requested = native.RTPCScopeGameObject
	}
	if requested == native.RTPCScopeGameObject {
		o, ok := e.objects[obj]
		if !ok {
			*scope = native.RTPCScopeUnavailable
			return ak.IDNotFound
		}
		if v, ok := o.rtpc[id]; ok {
			*value = v
			*scope = native.RTPCScopeGameObject
			return ak.Success
		}
		requested = native.RTPCScopeGlobal
	}
	if requested == native.RTPCScopeGlobal {
		if v, ok := e.globalRTPC[id]; ok {
			*value = v
			*scope = native.RTPCScopeGlobal
			return ak.Success
		}
	}
	if !known {
		*scope = native.RTPCScopeUnavailable
		return ak.IDNotFound
	}
	*value = param.Default
	*scope = native.RTPCScopeDefault
	return ak.Success
}

func (e *Engine) GetRTPCValueName(name *byte, obj ak.GameObjectID, pid ak.PlayingID, value *ak.RtpcValue, scope *int32) ak.Result {
	return e.GetRTPCValue(e.GetIDFromString(name), obj, pid, value, scope)
}

func (e *Engine) SetSwitch(group ak.SwitchGroupID, state ak.SwitchStateID, obj ak.GameObjectID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	o, ok := e.objects[obj]
	if !ok {
		return ak.IDNotFound
	}
	o.switches[group] = state
	return ak.Success
}

func (e *Engine) SetSwitchName(group, state *byte, obj ak.GameObjectID) ak.Result {
	return e.SetSwitch(e.GetIDFromString(group), e.GetIDFromString(state), obj)
}

func (e *Engine) GetSwitch(group ak.SwitchGroupID, obj ak.GameObjectID, out *ak.SwitchStateID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	o, ok := e.objects[obj]
	if !ok {
		return ak.IDNotFound
	}
	if s, ok := o.switches[group]; ok {
		*out = s
		return ak.Success
	}
	g, ok := e.switchGroups[group]
	if !ok {
		return ak.IDNotFound
	}
	*out = ak.HashName(g.States[0])
	return ak.Success
}

func (e *Engine) GetSwitchName(group *byte, obj ak.GameObjectID, out *ak.SwitchStateID) ak.Result {
	return e.GetSwitch(e.GetIDFromString(group), obj, out)
}

func (e *Engine) SetState(group ak.StateGroupID, state ak.StateID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	e.states[group] = state
	return ak.Success
}

func (e *Engine) SetStateName(group, state *byte) ak.Result {
	return e.SetState(e.GetIDFromString(group), e.GetIDFromString(state))
}

func (e *Engine) GetState(group ak.StateGroupID, out *ak.StateID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	if s, ok := e.states[group]; ok {
		*out = s
		return ak.Success
	}
	g, ok := e.stateGroups[group]
	if !ok {
		return ak.IDNotFound
	}
	*out = ak.HashName(g.States[0])
	return ak.Success
}

func (e *Engine) GetStateName(group *byte, out *ak.StateID) ak.Result {
	return e.GetState(e.GetIDFromString(group), out)
}

func (e *Engine) PostTrigger(id ak.TriggerID, obj ak.GameObjectID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	if obj == ak.InvalidGameObject {
		for _, o := range e.objects {
			o.triggers[id]++
		}
		return ak.Success
	}
	o, ok := e.objects[obj]
	if !ok {
		return ak.IDNotFound
	}
	o.triggers[id]++
	return ak.Success
}

func (e *Engine) PostTriggerName(name *byte, obj ak.GameObjectID) ak.Result {
	return e.PostTrigger(e.GetIDFromString(name), obj)
}

// TriggerCount returns how many times the trigger was posted on obj.
func (e *Engine) TriggerCount(id ak.TriggerID, obj ak.GameObjectID) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	o, ok := e.objects[obj]
	if !ok {
		return 0
	}
	return o.triggers[id]
}
