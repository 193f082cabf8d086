// Package musicengine drives the interactive music engine. It starts after
// the sound engine and stops before it.
package musicengine

import (
	"fmt"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/native"
)

// Init starts the music engine.
func Init(s native.MusicSettings) error {
	if err := ak.Check(native.Current().MusicInit(&s)); err != nil {
		return fmt.Errorf("musicengine: init: %w", err)
	}
	debug.Info("musicengine: initialised")
	return nil
}

func Term() {
	native.Current().MusicTerm()
	debug.Info("musicengine: terminated")
}

// GetPlayingSegmentInfo returns the segment position and grid of a post
// made with EnableGetMusicPlayPosition.
func GetPlayingSegmentInfo(id ak.PlayingID, extrapolate bool) (ak.SegmentInfo, error) {
	var info ak.SegmentInfo
	if err := ak.Check(native.Current().GetPlayingSegmentInfo(id, &info, extrapolate)); err != nil {
		return ak.SegmentInfo{}, fmt.Errorf("musicengine: segment info of %d: %w", id, err)
	}
	return info, nil
}
