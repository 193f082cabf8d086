package native

import (
	"errors"
	"sync"
)

// ErrNoBackend is the panic value of Current when no engine was registered.
var ErrNoBackend = errors.New("native: no engine backend registered; call native.Use with a bridge library or the sim engine")

var (
	backend   Engine
	backendMu sync.RWMutex
)

// Use registers the process-wide engine backend.
func Use(e Engine) {
	backendMu.Lock()
	defer backendMu.Unlock()
	backend = e
}

// Current returns the registered backend and panics with ErrNoBackend when
// there is none.
func Current() Engine {
	backendMu.RLock()
	defer backendMu.RUnlock()
	if backend == nil {
		panic(ErrNoBackend)
	}
	return backend
}

// Registered reports whether a backend is in place.
func Registered() bool {
	backendMu.RLock()
	defer backendMu.RUnlock()
	return backend != nil
}

// Reset forgets the registered backend.
func Reset() {
	Use(nil)
}
