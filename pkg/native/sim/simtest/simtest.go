// Package simtest brings the simulated engine up for wrapper tests.
package simtest

import (
	"runtime"
	"testing"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
	"github.com/justyntemme/akgo/pkg/native/sim"
)

// GameObject is registered by Start.
const GameObject ak.GameObjectID = 100

// Start installs a simulated engine as the backend and initialises the
// memory manager, the default streaming device rooted at "banks" and the
// sound engine. Both default banks are loaded and GameObject is registered.
// Everything is torn down when the test ends.
func Start(t testing.TB) *sim.Engine {
	t.Helper()
	e := sim.New(nil)
	native.Use(e)

	var mem native.MemSettings
	e.MemGetDefaultSettings(&mem)
	must(t, "MemInit", e.MemInit(&mem))

	var stm native.StreamMgrSettings
	e.StreamGetDefaultSettings(&stm)
	if !e.StreamCreate(&stm) {
		t.Fatal("StreamCreate failed")
	}
	var dev native.DeviceSettings
	e.StreamGetDefaultDeviceSettings(&dev)
	base, err := native.NewOSString("banks")
	if err != nil {
		t.Fatalf("NewOSString: %v", err)
	}
	must(t, "StreamInitDefault", e.StreamInitDefault(&dev, base.Ptr()))

	var is native.InitSettings
	var ps native.PlatformInitSettings
	e.GetDefaultInitSettings(&is)
	e.GetDefaultPlatformInitSettings(&ps)
	must(t, "Init", e.Init(&is, &ps))

	t.Cleanup(func() {
		e.Term()
		e.StreamTermDefault()
		e.MemTerm()
		native.Reset()
	})

	var id ak.BankID
	for _, bank := range []string{"Init.bnk", "TheBank.bnk"} {
		name, _ := native.CString(bank)
		must(t, "LoadBank "+bank, e.LoadBankName(&name[0], &id))
		runtime.KeepAlive(name)
	}
	must(t, "RegisterGameObj", e.RegisterGameObj(GameObject))
	return e
}

// Render runs frames synchronous audio frames.
func Render(t testing.TB, e *sim.Engine, frames int) {
	t.Helper()
	for i := 0; i < frames; i++ {
		must(t, "RenderAudio", e.RenderAudio(true))
	}
}

func must(t testing.TB, op string, r ak.Result) {
	t.Helper()
	if r != ak.Success {
		t.Fatalf("%s: %v", op, r)
	}
}
