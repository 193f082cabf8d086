// Package gamesyncs sets game parameters (RTPCs), switches and states and
// posts triggers.
package gamesyncs

import (
	"fmt"
	"runtime"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
)

// RTPC describes one game parameter change. Without a target it applies
// globally; a playing ID takes precedence over a game object.
type RTPC struct {
	id        ak.ID
	value     ak.RtpcValue
	obj       ak.GameObjectID
	playingID ak.PlayingID
	interpMs  ak.TimeMs
	curve     ak.Curve
	bypass    bool
}

// NewRTPC prepares a global, immediate, linear change of id to value.
func NewRTPC(id ak.ID, value ak.RtpcValue) RTPC {
	return RTPC{
		id:        id,
		value:     value,
		obj:       ak.InvalidGameObject,
		playingID: ak.InvalidPlayingID,
		curve:     ak.CurveLinear,
	}
}

// WithValue replaces the value to set.
func (r RTPC) WithValue(value ak.RtpcValue) RTPC {
	r.value = value
	return r
}

// ForTarget scopes the change to one game object.
func (r RTPC) ForTarget(obj ak.GameObjectID) RTPC {
	r.obj = obj
	return r
}

// ForPlayingID scopes the change to the voices of one post.
func (r RTPC) ForPlayingID(id ak.PlayingID) RTPC {
	r.playingID = id
	return r
}

// WithInterpMillis slews to the new value over ms milliseconds.
func (r RTPC) WithInterpMillis(ms ak.TimeMs) RTPC {
	r.interpMs = ms
	return r
}

// WithInterpCurve selects the curve used by WithInterpMillis.
func (r RTPC) WithInterpCurve(c ak.Curve) RTPC {
	r.curve = c
	return r
}

// BypassDesignerInterp ignores the slew authored on the game parameter.
func (r RTPC) BypassDesignerInterp(bypass bool) RTPC {
	r.bypass = bypass
	return r
}

// Set applies the change.
func (r RTPC) Set() error {
	e := native.Current()
	var res ak.Result
	switch {
	case r.playingID != ak.InvalidPlayingID && r.id.IsName():
		name, err := native.CString(r.id.NameValue())
		if err != nil {
			return fmt.Errorf("gamesyncs: set rtpc: %w", err)
		}
		res = e.SetRTPCValueByPlayingIDName(&name[0], r.value, r.playingID, r.interpMs, r.curve, r.bypass)
		runtime.KeepAlive(name)
	case r.playingID != ak.InvalidPlayingID:
		res = e.SetRTPCValueByPlayingID(r.id.NumericValue(), r.value, r.playingID, r.interpMs, r.curve, r.bypass)
	case r.id.IsName():
		name, err := native.CString(r.id.NameValue())
		if err != nil {
			return fmt.Errorf("gamesyncs: set rtpc: %w", err)
		}
		res = e.SetRTPCValueName(&name[0], r.value, r.obj, r.interpMs, r.curve, r.bypass)
		runtime.KeepAlive(name)
	default:
		res = e.SetRTPCValue(r.id.NumericValue(), r.value, r.obj, r.interpMs, r.curve, r.bypass)
	}
	if err := ak.Check(res); err != nil {
		return fmt.Errorf("gamesyncs: set rtpc %s: %w", r.id, err)
	}
	return nil
}

// Reset returns the game parameter to its authored default. The engine has
// no per-post reset, so a change scoped to a playing ID cannot be reset.
func (r RTPC) Reset() error {
	if r.playingID != ak.InvalidPlayingID {
		return fmt.Errorf("gamesyncs: reset rtpc %s on playing id %d: %w", r.id, r.playingID, ak.InvalidParameter)
	}
	e := native.Current()
	var res ak.Result
	if r.id.IsName() {
		name, err := native.CString(r.id.NameValue())
		if err != nil {
			return fmt.Errorf("gamesyncs: reset rtpc: %w", err)
		}
		res = e.ResetRTPCValueName(&name[0], r.obj, r.interpMs, r.curve, r.bypass)
		runtime.KeepAlive(name)
	} else {
		res = e.ResetRTPCValue(r.id.NumericValue(), r.obj, r.interpMs, r.curve, r.bypass)
	}
	if err := ak.Check(res); err != nil {
		return fmt.Errorf("gamesyncs: reset rtpc %s: %w", r.id, err)
	}
	return nil
}
