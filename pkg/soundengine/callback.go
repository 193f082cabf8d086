package soundengine

import (
	"unsafe"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/native"
)

// trampoline is the single native callback of every post. It runs on the
// engine's audio thread.
func trampoline(kind uint32, info unsafe.Pointer) {
	bits := ak.CallbackType(kind)
	if !bits.Valid() {
		debug.Fatal("soundengine: engine raised callback bits %#x outside CallbackBits", kind)
	}
	defer debug.Start("soundengine.callback")()

	cookie := (*native.CallbackInfo)(info).Cookie
	b := lookupBox(cookie)
	if b == nil {
		debug.Warn("soundengine: %s callback for unknown cookie %d", bits, cookie)
		return
	}

	payload := decode(bits, info)
	invoke(b, payload)
	if p, ok := payload.(*MusicPlaylistInfo); ok {
		p.detach()
	}

	if bits&ak.EndOfEvent != 0 {
		releaseBox(cookie)
	}
}

// invoke runs the closure and contains its panics.
func invoke(b *box, info CallbackInfo) {
	defer func() {
		if r := recover(); r != nil {
			debug.Error("soundengine: %s callback panicked: %v", info.Type(), r)
		}
	}()
	b.fn(info)
}

// CancelEventCallback stops the closure of a post from being called again
// and releases it. Playback itself is unaffected.
func CancelEventCallback(id ak.PlayingID) {
	native.Current().CancelEventCallback(id)
	releasePlaying(id)
}
