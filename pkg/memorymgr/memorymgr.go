// Package memorymgr drives the engine's memory manager, the first subsystem
// to start and the last to stop.
package memorymgr

import (
	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/native"
)

// Init starts the memory manager.
func Init(s native.MemSettings) error {
	if err := ak.Check(native.Current().MemInit(&s)); err != nil {
		return err
	}
	debug.Info("memorymgr: initialised")
	return nil
}

func IsInitialized() bool {
	return native.Current().MemIsInitialized()
}

// Term stops the memory manager. Every other subsystem must be down.
func Term() {
	native.Current().MemTerm()
	debug.Info("memorymgr: terminated")
}
