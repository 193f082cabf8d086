//go:build darwin || linux || freebsd

package dynamic

import (
	"runtime"

	"github.com/ebitengine/purego"
)

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}

// DefaultLibraryName is the file name the bridge is built as on this OS.
func DefaultLibraryName() string {
	if runtime.GOOS == "darwin" {
		return "libakbridge.dylib"
	}
	return "libakbridge.so"
}
