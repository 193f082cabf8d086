package soundengine

import (
	"sync"

	"github.com/justyntemme/akgo/pkg/ak"
)

// box holds the closure of one accepted post. The engine only ever sees
// its cookie.
type box struct {
	fn        CallbackFunc
	playingID ak.PlayingID
}

var (
	// Boxes indexed by cookie
	boxes      = make(map[uintptr]*box)
	byPlaying  = make(map[ak.PlayingID]uintptr)
	boxesMu    sync.RWMutex
	nextCookie uintptr = 1
)

// registerBox stores fn and returns its cookie. A playing ID override is
// reserved for the box at once; it fails when a live box already holds it.
func registerBox(fn CallbackFunc, override ak.PlayingID) (uintptr, bool) {
	boxesMu.Lock()
	defer boxesMu.Unlock()

	if override != ak.InvalidPlayingID {
		if _, busy := byPlaying[override]; busy {
			return 0, false
		}
	}
	cookie := nextCookie
	nextCookie++
	if nextCookie == 0 {
		nextCookie = 1
	}
	boxes[cookie] = &box{fn: fn, playingID: override}
	if override != ak.InvalidPlayingID {
		byPlaying[override] = cookie
	}
	return cookie, true
}

// bindPlayingID records the playing ID an accepted post returned. A box the
// trampoline already released stays released.
func bindPlayingID(cookie uintptr, id ak.PlayingID) {
	boxesMu.Lock()
	defer boxesMu.Unlock()

	b, ok := boxes[cookie]
	if !ok {
		return
	}
	if b.playingID != id && byPlaying[b.playingID] == cookie {
		delete(byPlaying, b.playingID)
	}
	b.playingID = id
	byPlaying[id] = cookie
}

func lookupBox(cookie uintptr) *box {
	boxesMu.RLock()
	defer boxesMu.RUnlock()

	return boxes[cookie]
}

// releaseBox drops the box and reports whether it was still registered.
func releaseBox(cookie uintptr) bool {
	boxesMu.Lock()
	defer boxesMu.Unlock()

	b, ok := boxes[cookie]
	if !ok {
		return false
	}
	delete(boxes, cookie)
	if byPlaying[b.playingID] == cookie {
		delete(byPlaying, b.playingID)
	}
	return true
}

func releasePlaying(id ak.PlayingID) bool {
	boxesMu.RLock()
	cookie, ok := byPlaying[id]
	boxesMu.RUnlock()
	if !ok {
		return false
	}
	return releaseBox(cookie)
}

func releaseAllBoxes() int {
	boxesMu.Lock()
	defer boxesMu.Unlock()

	n := len(boxes)
	clear(boxes)
	clear(byPlaying)
	return n
}

// PendingCallbacks returns how many posted callbacks have not seen their
// end of event yet.
func PendingCallbacks() int {
	boxesMu.RLock()
	defer boxesMu.RUnlock()

	return len(boxes)
}
