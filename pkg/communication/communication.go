//go:build !akrelease

// Package communication connects the engine to the authoring tool for live
// profiling. Release builds of the engine ship without it; build with the
// akrelease tag to compile Init and Term down to no-ops.
package communication

import (
	"fmt"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/native"
)

// Enabled reports whether this build talks to the authoring tool.
const Enabled = true

// Init opens the discovery and command ports. The sound engine must be up.
func Init(s native.CommSettings) error {
	if err := ak.Check(native.Current().CommInit(&s)); err != nil {
		return fmt.Errorf("communication: init: %w", err)
	}
	debug.Info("communication: listening as %q on discovery port %d", s.AppName(), s.DiscoveryBroadcastPort)
	return nil
}

func Term() {
	native.Current().CommTerm()
	debug.Info("communication: terminated")
}
