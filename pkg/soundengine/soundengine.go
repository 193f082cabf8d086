// Package soundengine wraps the sound engine: its lifecycle, game objects,
// banks and event posting.
//
// Events are posted through PostEvent. A post may carry a Go closure that
// the engine calls on its own audio thread with a decoded CallbackInfo for
// every subscribed callback. The closure is released after the end of the
// event, which every callback post receives.
//
// The sound engine needs the memory and stream managers running and must be
// terminated before them.
package soundengine

import (
	"fmt"
	"runtime"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/native"
	"github.com/justyntemme/akgo/pkg/settings"
)

// Init starts the sound engine.
func Init(s settings.InitSettings, platform native.PlatformInitSettings) error {
	r := native.Current().Init(s.Record(), &platform)
	runtime.KeepAlive(&s)
	if err := ak.Check(r); err != nil {
		return fmt.Errorf("soundengine: init: %w", err)
	}
	debug.Info("soundengine: initialised")
	return nil
}

// IsInitialized reports whether the sound engine is running.
func IsInitialized() bool {
	return native.Current().IsInitialized()
}

// Term stops the sound engine. No callback runs once Term returns;
// closures of events still playing are released without an end of event.
func Term() {
	native.Current().Term()
	if n := releaseAllBoxes(); n > 0 {
		debug.Info("soundengine: released %d pending callbacks", n)
	}
	debug.Info("soundengine: terminated")
}

// RenderAudio processes the command queue and, when allowSyncRender is set
// and the engine has no audio thread of its own, renders one frame.
func RenderAudio(allowSyncRender bool) error {
	return ak.Check(native.Current().RenderAudio(allowSyncRender))
}

// GetIDFromString hashes name the way the engine does for every name
// form.
func GetIDFromString(name string) (ak.UniqueID, error) {
	b, err := native.CString(name)
	if err != nil {
		return ak.InvalidUniqueID, fmt.Errorf("soundengine: id from string: %w", err)
	}
	id := native.Current().GetIDFromString(&b[0])
	runtime.KeepAlive(b)
	return id, nil
}

// StopAll stops every event on every game object.
func StopAll() {
	native.Current().StopAll(ak.InvalidGameObject)
}

// StopAllOn stops every event playing on obj.
func StopAllOn(obj ak.GameObjectID) {
	native.Current().StopAll(obj)
}

// StopPlayingID stops one post, fading out over fade milliseconds.
func StopPlayingID(id ak.PlayingID, fade ak.TimeMs, curve ak.Curve) {
	native.Current().StopPlayingID(id, fade, curve)
}

// GetSourcePlayPosition returns the playback position of a post made with
// EnableGetSourcePlayPosition.
func GetSourcePlayPosition(id ak.PlayingID, extrapolate bool) (ak.TimeMs, error) {
	var pos ak.TimeMs
	if err := ak.Check(native.Current().GetSourcePlayPosition(id, &pos, extrapolate)); err != nil {
		return 0, fmt.Errorf("soundengine: play position of %d: %w", id, err)
	}
	return pos, nil
}
