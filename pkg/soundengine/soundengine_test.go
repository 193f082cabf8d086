package soundengine

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/memorymgr"
	"github.com/justyntemme/akgo/pkg/midi"
	"github.com/justyntemme/akgo/pkg/native"
	"github.com/justyntemme/akgo/pkg/native/sim"
	"github.com/justyntemme/akgo/pkg/settings"
	"github.com/justyntemme/akgo/pkg/streammgr"
)

// recordingEngine remembers the flags of every post that reaches the
// engine.
type recordingEngine struct {
	*sim.Engine
	mu    sync.Mutex
	posts []uint32
}

func (r *recordingEngine) PostEventID(event ak.UniqueID, obj ak.GameObjectID, flags uint32, cb native.CallbackFunc, cookie uintptr, pid ak.PlayingID) ak.PlayingID {
	r.record(flags)
	return r.Engine.PostEventID(event, obj, flags, cb, cookie, pid)
}

func (r *recordingEngine) PostEventName(event *byte, obj ak.GameObjectID, flags uint32, cb native.CallbackFunc, cookie uintptr, pid ak.PlayingID) ak.PlayingID {
	r.record(flags)
	return r.Engine.PostEventName(event, obj, flags, cb, cookie, pid)
}

func (r *recordingEngine) record(flags uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, flags)
}

func (r *recordingEngine) postedFlags() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uint32(nil), r.posts...)
}

// startStack brings the engine up the way an application does and
// registers game object 100 with both test banks loaded.
func startStack(t *testing.T) *recordingEngine {
	t.Helper()
	e := &recordingEngine{Engine: sim.New(nil)}
	native.Use(e)

	if err := memorymgr.Init(settings.DefaultMemSettings()); err != nil {
		t.Fatalf("memorymgr.Init: %v", err)
	}
	if err := streammgr.InitDefault(settings.DefaultStreamMgrSettings(), settings.DefaultDeviceSettings(), "banks"); err != nil {
		t.Fatalf("streammgr.InitDefault: %v", err)
	}
	if err := Init(settings.DefaultInitSettings(), settings.DefaultPlatformInitSettings()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() {
		Term()
		streammgr.TermDefault()
		memorymgr.Term()
		native.Reset()
	})

	for _, bank := range []string{"Init.bnk", "TheBank.bnk"} {
		if _, err := LoadBank(bank); err != nil {
			t.Fatalf("LoadBank(%s): %v", bank, err)
		}
	}
	if err := RegisterGameObj(100); err != nil {
		t.Fatalf("RegisterGameObj: %v", err)
	}
	return e
}

func render(t *testing.T, frames int) {
	t.Helper()
	for i := 0; i < frames; i++ {
		if err := RenderAudio(true); err != nil {
			t.Fatalf("RenderAudio: %v", err)
		}
	}
}

// collector records every payload a closure receives.
type collector struct {
	mu    sync.Mutex
	infos []CallbackInfo
}

func (c *collector) callback(info CallbackInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.infos = append(c.infos, info)
}

func (c *collector) count(kind ak.CallbackType) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, info := range c.infos {
		if info.Type() == kind {
			n++
		}
	}
	return n
}

func (c *collector) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.infos)
}

func (c *collector) all() []CallbackInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CallbackInfo(nil), c.infos...)
}

func TestPostWithoutCallback(t *testing.T) {
	startStack(t)

	id, err := PostEventByName(100, "PlayLooping").Post()
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if id == ak.InvalidPlayingID {
		t.Error("Expected a non-zero playing ID")
	}
	if n := PendingCallbacks(); n != 0 {
		t.Errorf("Expected no pending callbacks, got %d", n)
	}
}

func TestMusicCallbacks(t *testing.T) {
	startStack(t)
	c := &collector{}

	_, err := PostEventByName(100, "PlayLooping").
		Flags(ak.MusicSyncBeat | ak.MusicSyncBar).
		PostWithCallback(c.callback)
	if err != nil {
		t.Fatalf("PostWithCallback: %v", err)
	}
	if n := PendingCallbacks(); n != 1 {
		t.Errorf("Expected 1 pending callback, got %d", n)
	}

	// 4 bars at 120 BPM.
	render(t, 375)
	if n := c.count(ak.MusicSyncBar); n < 4 {
		t.Errorf("Expected at least 4 bars, got %d", n)
	}
	if n := c.count(ak.MusicSyncBeat); n < 16 {
		t.Errorf("Expected at least 16 beats, got %d", n)
	}
	for _, info := range c.all() {
		ms, ok := info.(MusicSyncInfo)
		if !ok {
			t.Fatalf("Expected MusicSyncInfo, got %T", info)
		}
		if ms.Object != 100 || ms.SegmentInfo.Tempo() != 120 {
			t.Errorf("Unexpected payload %+v", ms)
		}
	}

	StopAll()
	render(t, 2)
	if n := c.count(ak.EndOfEvent); n != 1 {
		t.Errorf("Expected exactly 1 EndOfEvent, got %d", n)
	}
	infos := c.all()
	if _, ok := infos[len(infos)-1].(EventInfo); !ok {
		t.Errorf("Expected EventInfo last, got %T", infos[len(infos)-1])
	}
	if n := PendingCallbacks(); n != 0 {
		t.Errorf("Expected the closure to be released, got %d pending", n)
	}
}

func TestFlagAugmentation(t *testing.T) {
	e := startStack(t)

	tests := []struct {
		name  string
		flags ak.CallbackType
	}{
		{"NoFlags", 0},
		{"MarkerOnly", ak.Marker},
		{"AlreadySet", ak.EndOfEvent | ak.Duration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &collector{}
			if _, err := PostEventByName(100, "PlayOneShot").Flags(tt.flags).PostWithCallback(c.callback); err != nil {
				t.Fatalf("PostWithCallback: %v", err)
			}
			posts := e.postedFlags()
			last := ak.CallbackType(posts[len(posts)-1])
			if last != tt.flags|ak.EndOfEvent {
				t.Errorf("Expected flags %v, got %v", tt.flags|ak.EndOfEvent, last)
			}
			render(t, 30)
			if n := c.count(ak.EndOfEvent); n != 1 {
				t.Errorf("Expected 1 EndOfEvent, got %d", n)
			}
		})
	}

	if _, err := PostEventByName(100, "PlayOneShot").Flags(ak.Marker).Post(); err != nil {
		t.Fatalf("Post: %v", err)
	}
	posts := e.postedFlags()
	if last := ak.CallbackType(posts[len(posts)-1]); last != ak.Marker {
		t.Errorf("Expected Post to pass flags unchanged, got %v", last)
	}
	if n := PendingCallbacks(); n != 0 {
		t.Errorf("Expected no pending callbacks, got %d", n)
	}
}

func TestPostRejected(t *testing.T) {
	startStack(t)

	tests := []struct {
		name string
		post PostEvent
	}{
		{"EmptyName", PostEventByName(100, "")},
		{"UnknownEvent", PostEventByName(100, "DoesNotExist")},
		{"UnknownID", PostEventByID(100, 12345)},
		{"UnregisteredObject", PostEventByName(7, "PlayLooping")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.post.Post(); !errors.Is(err, ak.Fail) {
				t.Errorf("Expected ak.Fail, got %v", err)
			}

			c := &collector{}
			id, err := tt.post.PostWithCallback(c.callback)
			if !errors.Is(err, ak.Fail) {
				t.Errorf("Expected ak.Fail, got %v", err)
			}
			if id != ak.InvalidPlayingID {
				t.Errorf("Expected InvalidPlayingID, got %d", id)
			}
			if n := PendingCallbacks(); n != 0 {
				t.Errorf("Expected the closure to be released, got %d pending", n)
			}
			render(t, 3)
			if n := c.len(); n != 0 {
				t.Errorf("Expected no callbacks, got %d", n)
			}
		})
	}
}

func TestInteriorNUL(t *testing.T) {
	e := startStack(t)
	before := len(e.postedFlags())

	c := &collector{}
	if _, err := PostEventByName(100, "Play\x00Looping").PostWithCallback(c.callback); !errors.Is(err, ak.InvalidParameter) {
		t.Errorf("Expected InvalidParameter, got %v", err)
	}
	if _, err := PostEventByName(100, "Play\x00Looping").Post(); !errors.Is(err, ak.InvalidParameter) {
		t.Errorf("Expected InvalidParameter, got %v", err)
	}
	if n := len(e.postedFlags()); n != before {
		t.Errorf("Expected the engine not to be contacted, got %d posts", n-before)
	}
	if n := PendingCallbacks(); n != 0 {
		t.Errorf("Expected no pending callbacks, got %d", n)
	}

	if _, err := LoadBank("Init\x00.bnk"); !errors.Is(err, ak.InvalidParameter) {
		t.Errorf("Expected InvalidParameter from LoadBank, got %v", err)
	}
	if err := RegisterGameObjWithName(5, "a\x00b"); !errors.Is(err, ak.InvalidParameter) {
		t.Errorf("Expected InvalidParameter from RegisterGameObjWithName, got %v", err)
	}
	if _, err := GetIDFromString("x\x00"); !errors.Is(err, ak.InvalidParameter) {
		t.Errorf("Expected InvalidParameter from GetIDFromString, got %v", err)
	}
}

func TestIDDispatch(t *testing.T) {
	e := startStack(t)

	byName, err := PostEventByName(100, "PlayLooping").Post()
	if err != nil {
		t.Fatalf("Post by name: %v", err)
	}
	id, _ := GetIDFromString("PlayLooping")
	if id != ak.HashName("PlayLooping") {
		t.Errorf("Expected %d, got %d", ak.HashName("PlayLooping"), id)
	}
	byID, err := PostEventByID(100, id).Post()
	if err != nil {
		t.Fatalf("Post by ID: %v", err)
	}
	if got := e.Playing(); len(got) != 2 || got[0] != byName || got[1] != byID {
		t.Errorf("Expected both posts playing, got %v", got)
	}

	bank, err := LoadBank("TheBank.bnk")
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if err := UnloadBankByID(bank); err != nil {
		t.Errorf("UnloadBankByID: %v", err)
	}
	if err := UnloadBank("TheBank.bnk"); err != nil {
		t.Errorf("UnloadBank: %v", err)
	}
	if e.IsBankLoaded(bank) {
		t.Error("Expected TheBank to be unloaded")
	}
	if err := LoadBankByID(bank); err != nil {
		t.Errorf("LoadBankByID: %v", err)
	}
	if !e.IsBankLoaded(bank) {
		t.Error("Expected TheBank to be loaded by ID")
	}
}

func TestPlayingIDOverride(t *testing.T) {
	startStack(t)
	id, err := PostEventByName(100, "PlayLooping").PlayingID(777).Post()
	if err != nil || id != 777 {
		t.Errorf("Expected playing ID 777, got %d (%v)", id, err)
	}
	if _, err := PostEventByName(100, "PlayLooping").PlayingID(777).Post(); !errors.Is(err, ak.Fail) {
		t.Errorf("Expected a busy playing ID to be rejected, got %v", err)
	}
}

// joiningEngine accepts every post of an overridden playing ID, the way
// the engine does when a post joins an instance already playing.
type joiningEngine struct {
	*sim.Engine
	posts int
}

func (j *joiningEngine) PostEventName(event *byte, obj ak.GameObjectID, flags uint32, cb native.CallbackFunc, cookie uintptr, pid ak.PlayingID) ak.PlayingID {
	j.posts++
	if pid != ak.InvalidPlayingID {
		return pid
	}
	return j.Engine.PostEventName(event, obj, flags, cb, cookie, pid)
}

func TestPlayingIDOverrideWithCallback(t *testing.T) {
	rec := startStack(t)
	j := &joiningEngine{Engine: rec.Engine}
	native.Use(j)
	defer native.Use(rec)

	fn := func(CallbackInfo) {}
	id, err := PostEventByName(100, "PlayLooping").PlayingID(777).PostWithCallback(fn)
	if err != nil || id != 777 {
		t.Fatalf("Expected playing ID 777, got %d (%v)", id, err)
	}
	if _, err := PostEventByName(100, "PlayLooping").PlayingID(777).PostWithCallback(fn); !errors.Is(err, ak.InvalidParameter) {
		t.Errorf("Expected InvalidParameter for a playing ID with a callback, got %v", err)
	}
	if j.posts != 1 {
		t.Errorf("Expected the second post to stop before the engine, got %d posts", j.posts)
	}
	if p := PendingCallbacks(); p != 1 {
		t.Errorf("Expected one pending callback, got %d", p)
	}

	CancelEventCallback(777)
	if p := PendingCallbacks(); p != 0 {
		t.Errorf("Expected cancel to release the callback, got %d pending", p)
	}
	if _, err := PostEventByName(100, "PlayLooping").PlayingID(777).PostWithCallback(fn); err != nil {
		t.Errorf("Expected the released playing ID to be usable again, got %v", err)
	}
	CancelEventCallback(777)
}

func TestRejectedOverrideFreesPlayingID(t *testing.T) {
	startStack(t)
	fn := func(CallbackInfo) {}
	if _, err := PostEventByName(100, "Missing").PlayingID(900).PostWithCallback(fn); !errors.Is(err, ak.Fail) {
		t.Fatalf("Expected the engine to reject an unknown event, got %v", err)
	}
	if p := PendingCallbacks(); p != 0 {
		t.Errorf("Expected no pending callbacks, got %d", p)
	}
	id, err := PostEventByName(100, "PlayLooping").PlayingID(900).PostWithCallback(fn)
	if err != nil || id != 900 {
		t.Errorf("Expected playing ID 900 to be free, got %d (%v)", id, err)
	}
}

func TestPayloadsOwnStrings(t *testing.T) {
	startStack(t)
	c := &collector{}
	if _, err := PostEventByName(100, "PlayOneShot").Flags(ak.Marker | ak.MIDIEvent | ak.Duration).PostWithCallback(c.callback); err != nil {
		t.Fatalf("PostWithCallback: %v", err)
	}
	cues := &collector{}
	if _, err := PostEventByName(100, "PlayLooping").Flags(ak.MusicSyncUserCue).PostWithCallback(cues.callback); err != nil {
		t.Fatalf("PostWithCallback: %v", err)
	}
	render(t, 200)

	var marker *MarkerInfo
	var notes []midi.Event
	for _, info := range c.all() {
		switch v := info.(type) {
		case MarkerInfo:
			marker = &v
		case MIDIInfo:
			notes = append(notes, v.Event)
		case DurationInfo:
			if v.Duration != 500 || v.AudioNodeID != 1002 || v.MediaID != 2002 {
				t.Errorf("Unexpected duration %+v", v)
			}
		}
	}
	if marker == nil || marker.Label != "Impact" || marker.Identifier != 7 {
		t.Errorf("Expected marker Impact, got %+v", marker)
	}
	if len(notes) != 2 || !midi.IsNoteOn(notes[0]) || !midi.IsNoteOff(notes[1]) {
		t.Errorf("Expected note on then off, got %v", notes)
	}

	infos := cues.all()
	if len(infos) == 0 {
		t.Fatal("Expected a user cue")
	}
	if cue := infos[0].(MusicSyncInfo); cue.UserCueName != "Halfway" || cue.SyncType != ak.MusicSyncUserCue {
		t.Errorf("Expected user cue Halfway, got %+v", cue)
	}
}

func TestPanicContained(t *testing.T) {
	startStack(t)
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	defer debug.SetOutput(os.Stderr)

	calls := 0
	_, err := PostEventByName(100, "PlayLooping").Flags(ak.MusicSyncBar).PostWithCallback(func(CallbackInfo) {
		calls++
		panic("closure failure")
	})
	if err != nil {
		t.Fatalf("PostWithCallback: %v", err)
	}
	render(t, 100)
	StopAll()
	render(t, 1)

	if calls != 3 {
		t.Errorf("Expected 3 invocations, got %d", calls)
	}
	if n := PendingCallbacks(); n != 0 {
		t.Errorf("Expected the closure to be released after a panic, got %d pending", n)
	}
	if !strings.Contains(buf.String(), "closure failure") {
		t.Errorf("Expected the panic to be logged, got %q", buf.String())
	}
}

func TestTrampolineMalformedBits(t *testing.T) {
	rec := native.EventCallbackInfo{}
	defer func() {
		if recover() == nil {
			t.Error("Expected bits outside CallbackBits to be fatal")
		}
	}()
	trampoline(0x80000000, unsafe.Pointer(&rec))
}

func TestTrampolineUnknownCookie(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	defer debug.SetOutput(os.Stderr)

	rec := native.EventCallbackInfo{CallbackInfo: native.CallbackInfo{Cookie: 1 << 40}}
	trampoline(uint32(ak.EndOfEvent), unsafe.Pointer(&rec))
	if !strings.Contains(buf.String(), "unknown cookie") {
		t.Errorf("Expected a warning, got %q", buf.String())
	}
}

func TestTrampolineReleasesOnce(t *testing.T) {
	calls := 0
	cookie, _ := registerBox(func(CallbackInfo) { calls++ }, ak.InvalidPlayingID)
	rec := native.EventCallbackInfo{CallbackInfo: native.CallbackInfo{Cookie: cookie}}

	trampoline(uint32(ak.EndOfEvent), unsafe.Pointer(&rec))
	trampoline(uint32(ak.EndOfEvent), unsafe.Pointer(&rec))
	if calls != 1 {
		t.Errorf("Expected the closure to run once, got %d", calls)
	}
	if lookupBox(cookie) != nil {
		t.Error("Expected the box to be released")
	}
}

func TestPlaylistWriteBack(t *testing.T) {
	e := startStack(t)
	var kept *MusicPlaylistInfo
	id, err := PostEventByName(100, "PlayPlaylist").Flags(ak.MusicPlaylistSelect).PostWithCallback(func(info CallbackInfo) {
		if p, ok := info.(*MusicPlaylistInfo); ok {
			if p.NumItems != 3 || p.PlaylistID != 3001 {
				t.Errorf("Unexpected playlist %+v", p)
			}
			p.SetSelection(2)
			p.SetItemDone(1)
			kept = p
		}
	})
	if err != nil {
		t.Fatalf("PostWithCallback: %v", err)
	}
	render(t, 1)

	choice, ok := e.Playlist(id)
	if !ok || choice.Selection != 2 || choice.ItemDone != 1 {
		t.Errorf("Expected selection 2 and item done 1, got %+v", choice)
	}

	if kept == nil {
		t.Fatal("Expected a playlist callback")
	}
	kept.SetSelection(0)
	if kept.Selection != 0 {
		t.Errorf("Expected the copy to change, got %d", kept.Selection)
	}
	if kept.record.Load() != nil {
		t.Error("Expected the payload to be detached from the engine record")
	}
}

func TestTermStopsCallbacks(t *testing.T) {
	startStack(t)
	c := &collector{}
	if _, err := PostEventByName(100, "PlayLooping").Flags(ak.MusicSyncBeat).PostWithCallback(c.callback); err != nil {
		t.Fatalf("PostWithCallback: %v", err)
	}
	render(t, 50)

	Term()
	n := c.len()
	if n == 0 {
		t.Fatal("Expected beats before term")
	}
	if err := RenderAudio(true); !errors.Is(err, ak.NotInitialized) {
		t.Errorf("Expected NotInitialized after term, got %v", err)
	}
	if got := c.len(); got != n {
		t.Errorf("Expected no callbacks after term, got %d more", got-n)
	}
	if p := PendingCallbacks(); p != 0 {
		t.Errorf("Expected term to release every closure, got %d", p)
	}
	if IsInitialized() {
		t.Error("Expected the engine to be down")
	}
}

func TestCancelEventCallback(t *testing.T) {
	startStack(t)
	c := &collector{}
	id, err := PostEventByName(100, "PlayLooping").Flags(ak.MusicSyncBeat).PostWithCallback(c.callback)
	if err != nil {
		t.Fatalf("PostWithCallback: %v", err)
	}
	render(t, 1)
	n := c.len()

	CancelEventCallback(id)
	if p := PendingCallbacks(); p != 0 {
		t.Errorf("Expected the closure to be released, got %d", p)
	}
	render(t, 50)
	StopAll()
	render(t, 1)
	if got := c.len(); got != n {
		t.Errorf("Expected no callbacks after cancel, got %d more", got-n)
	}
}

func TestStopPlayingID(t *testing.T) {
	startStack(t)
	c := &collector{}
	id, _ := PostEventByName(100, "PlayLooping").PostWithCallback(c.callback)
	render(t, 1)
	StopPlayingID(id, 0, ak.CurveLinear)
	render(t, 1)
	if n := c.count(ak.EndOfEvent); n != 1 {
		t.Errorf("Expected EndOfEvent, got %d", n)
	}
}

func TestMailbox(t *testing.T) {
	startStack(t)
	m := NewMailbox()
	if _, err := PostEventByName(100, "PlayOneShot").Flags(ak.Marker).PostWithCallback(m.Callback()); err != nil {
		t.Fatalf("PostWithCallback: %v", err)
	}
	render(t, 30)

	if n := m.Len(); n != 2 {
		t.Errorf("Expected 2 queued payloads, got %d", n)
	}
	infos := m.Drain()
	if len(infos) != 2 || infos[0].Type() != ak.Marker || infos[1].Type() != ak.EndOfEvent {
		t.Errorf("Expected marker then end of event, got %v", infos)
	}
	if again := m.Drain(); again != nil {
		t.Errorf("Expected an empty mailbox, got %v", again)
	}
}

func TestGameObjects(t *testing.T) {
	e := startStack(t)

	if err := RegisterGameObjWithName(1, "Listener"); err != nil {
		t.Fatalf("RegisterGameObjWithName: %v", err)
	}
	if err := SetDefaultListeners(1); err != nil {
		t.Fatalf("SetDefaultListeners: %v", err)
	}
	for _, x := range []float32{0, 3} {
		if err := SetPosition(100, ak.TransformAt(ak.Vector{X: x})); err != nil {
			t.Fatalf("SetPosition: %v", err)
		}
	}
	var pos ak.Transform
	e.GetPosition(100, &pos)
	if pos.Position != (ak.Vector{X: 3}) {
		t.Errorf("Expected (3,0,0), got %v", pos.Position)
	}

	if err := SetListeners(100); err != nil {
		t.Errorf("SetListeners: %v", err)
	}
	if err := SetListeners(100, 42); !errors.Is(err, ak.IDNotFound) {
		t.Errorf("Expected IDNotFound for an unknown listener, got %v", err)
	}
	if err := RegisterGameObj(ak.InvalidGameObject); !errors.Is(err, ak.InvalidParameter) {
		t.Errorf("Expected InvalidParameter for a reserved ID, got %v", err)
	}
	if err := UnregisterGameObj(1); err != nil {
		t.Errorf("UnregisterGameObj: %v", err)
	}
	if err := UnregisterAllGameObj(); err != nil {
		t.Errorf("UnregisterAllGameObj: %v", err)
	}
	if _, err := PostEventByName(100, "PlayLooping").Post(); err == nil {
		t.Error("Expected posts on an unregistered object to fail")
	}
}

func TestBankErrors(t *testing.T) {
	startStack(t)
	if _, err := LoadBank("Missing.bnk"); !errors.Is(err, ak.FileNotFound) {
		t.Errorf("Expected FileNotFound, got %v", err)
	}
	if err := UnloadBank("Missing.bnk"); !errors.Is(err, ak.UnknownBankID) {
		t.Errorf("Expected UnknownBankID, got %v", err)
	}
	if err := ClearBanks(); err != nil {
		t.Errorf("ClearBanks: %v", err)
	}
	if _, err := PostEventByName(100, "PlayLooping").Post(); !errors.Is(err, ak.Fail) {
		t.Errorf("Expected posts to fail without banks, got %v", err)
	}
}

func TestSourcePlayPosition(t *testing.T) {
	startStack(t)
	id, _ := PostEventByName(100, "PlayLooping").Flags(ak.EnableGetSourcePlayPosition).Post()
	render(t, 47)
	pos, err := GetSourcePlayPosition(id, false)
	if err != nil {
		t.Fatalf("GetSourcePlayPosition: %v", err)
	}
	if pos != 1002 {
		t.Errorf("Expected 1002 ms, got %d", pos)
	}
	if _, err := GetSourcePlayPosition(9999, false); !errors.Is(err, ak.PlayingIDNotFound) {
		t.Errorf("Expected PlayingIDNotFound, got %v", err)
	}
}

func TestBuilder(t *testing.T) {
	p := NewPostEvent(5, ak.Name("Hit"))
	q := p.Flags(ak.Marker).AddFlags(ak.Duration).PlayingID(9)

	if p.CallbackFlags() != 0 {
		t.Errorf("Expected the original to be unchanged, got %v", p.CallbackFlags())
	}
	if q.CallbackFlags() != ak.Marker|ak.Duration {
		t.Errorf("Expected Marker | Duration, got %v", q.CallbackFlags())
	}
	if q.Flags(ak.Starvation).CallbackFlags() != ak.Starvation {
		t.Error("Expected Flags to replace")
	}
	if q.GameObjectID() != 5 || q.EventID().NameValue() != "Hit" || q.playingID != 9 {
		t.Errorf("Unexpected builder %+v", q)
	}
}
