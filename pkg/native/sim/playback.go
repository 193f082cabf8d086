package sim

import (
	"math"
	"slices"
	"sort"
	"sync/atomic"
	"unsafe"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/midi"
	"github.com/justyntemme/akgo/pkg/native"
)

// PlaylistChoice is what a playlist-select callback left in the record.
type PlaylistChoice struct {
	PlaylistID uint32
	Selection  uint32
	ItemDone   uint32
}

type instance struct {
	pid     ak.PlayingID
	eventID ak.UniqueID
	event   *Event
	obj     ak.GameObjectID
	flags   ak.CallbackType
	cb      native.CallbackFunc
	cookie  uintptr
	start   uint64

	stopping bool
	stopAt   uint64
	started  bool
	ended    bool

	cancelled atomic.Bool
}

func (i *instance) stop(at uint64) {
	if i.ended {
		return
	}
	if !i.stopping || at < i.stopAt {
		i.stopping = true
		i.stopAt = at
	}
}

// delivery is one callback raised during a frame.
type delivery struct {
	at       float64
	inst     *instance
	kind     ak.CallbackType
	record   unsafe.Pointer
	text     []byte
	playlist *native.MusicPlaylistCallbackInfo
}

func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

func (e *Engine) PostEventID(event ak.UniqueID, obj ak.GameObjectID, flags uint32, cb native.CallbackFunc, cookie uintptr, playingID ak.PlayingID) ak.PlayingID {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.InvalidPlayingID
	}
	ev, ok := e.events[event]
	if !ok || !e.eventAvailable(event) {
		debug.Warn("sim: event %d is not loaded", event)
		return ak.InvalidPlayingID
	}
	if _, ok := e.objects[obj]; !ok {
		debug.Warn("sim: game object %d is not registered", obj)
		return ak.InvalidPlayingID
	}
	if !ak.CallbackType(flags).Valid() {
		return ak.InvalidPlayingID
	}

	pid := playingID
	if pid == ak.InvalidPlayingID {
		pid = e.allocPlayingID()
	} else if _, busy := e.playing[pid]; busy {
		return ak.InvalidPlayingID
	}

	for _, name := range ev.Stops {
		target := ak.HashName(name)
		for _, inst := range e.playing {
			if inst.obj == obj && inst.eventID == target {
				inst.stop(e.now)
			}
		}
	}

	e.playing[pid] = &instance{
		pid:     pid,
		eventID: event,
		event:   ev,
		obj:     obj,
		flags:   ak.CallbackType(flags),
		cb:      cb,
		cookie:  cookie,
		start:   e.now,
	}
	return pid
}

func (e *Engine) PostEventName(event *byte, obj ak.GameObjectID, flags uint32, cb native.CallbackFunc, cookie uintptr, playingID ak.PlayingID) ak.PlayingID {
	if event == nil {
		return ak.InvalidPlayingID
	}
	return e.PostEventID(e.GetIDFromString(event), obj, flags, cb, cookie, playingID)
}

// allocPlayingID returns the next free playing ID. Callers hold mu.
func (e *Engine) allocPlayingID() ak.PlayingID {
	for {
		e.nextPlayingID++
		if e.nextPlayingID == ak.InvalidPlayingID {
			continue
		}
		if _, busy := e.playing[e.nextPlayingID]; !busy {
			return e.nextPlayingID
		}
	}
}

func (e *Engine) StopAll(obj ak.GameObjectID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, inst := range e.playing {
		if obj == ak.InvalidGameObject || inst.obj == obj {
			inst.stop(e.now)
		}
	}
}

func (e *Engine) StopPlayingID(id ak.PlayingID, fadeMs ak.TimeMs, curve ak.Curve) {
	e.mu.Lock()
	defer e.mu.Unlock()
	inst, ok := e.playing[id]
	if !ok {
		return
	}
	fade := uint64(0)
	if fadeMs > 0 {
		fade = uint64(e.samplesAt(float64(fadeMs)))
	}
	inst.stop(e.now + fade)
}

func (e *Engine) CancelEventCallback(id ak.PlayingID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if inst, ok := e.playing[id]; ok {
		inst.cancelled.Store(true)
	}
}

func (e *Engine) GetSourcePlayPosition(id ak.PlayingID, pos *ak.TimeMs, extrapolate bool) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	inst, ok := e.playing[id]
	if !ok {
		return ak.PlayingIDNotFound
	}
	if !inst.flags.Has(ak.EnableGetSourcePlayPosition) {
		return ak.Fail
	}
	*pos = e.msAt(uint64(e.passPosition(inst)))
	return ak.Success
}

func (e *Engine) GetPlayingSegmentInfo(id ak.PlayingID, out *ak.SegmentInfo, extrapolate bool) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	*out = ak.SegmentInfo{}
	inst, ok := e.playing[id]
	if !ok {
		return ak.PlayingIDNotFound
	}
	if !inst.event.isMusic() || !inst.flags.Has(ak.EnableGetMusicPlayPosition) {
		return ak.Fail
	}
	*out = e.segmentInfo(inst.event, e.passPosition(inst))
	return ak.Success
}

// Playlist returns the selection the last playlist callback of id left.
func (e *Engine) Playlist(id ak.PlayingID) (PlaylistChoice, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.playlists[id]
	return c, ok
}

// Playing returns the playing IDs currently alive, in ascending order.
func (e *Engine) Playing() []ak.PlayingID {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]ak.PlayingID, 0, len(e.playing))
	for id := range e.playing {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// passPosition is the position inside the current pass, in samples.
// Callers hold mu.
func (e *Engine) passPosition(inst *instance) float64 {
	elapsed := float64(e.now - inst.start)
	length := e.samplesAt(float64(inst.event.LengthMs))
	if length == 0 {
		return 0
	}
	if inst.event.Looping {
		return math.Mod(elapsed, length)
	}
	return min(elapsed, length)
}

// segmentInfo describes a music event at pos samples into its pass.
// Callers hold mu.
func (e *Engine) segmentInfo(ev *Event, pos float64) ak.SegmentInfo {
	beat := 60 / ev.Tempo
	bar := beat * float32(ev.beatsPerBar())
	return ak.SegmentInfo{
		CurrentPosition: ak.TimeMs(pos * 1000 / float64(e.platform.SampleRate)),
		ActiveDuration:  ev.LengthMs,
		BeatDuration:    beat,
		BarDuration:     bar,
		GridDuration:    bar,
	}
}

// advance moves the engine one frame forward and collects the callbacks
// of that frame in delivery order.
func (e *Engine) advance() []delivery {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return nil
	}
	from := e.now
	to := from + uint64(e.settings.NumSamplesPerFrame)

	pids := make([]ak.PlayingID, 0, len(e.playing))
	for pid := range e.playing {
		pids = append(pids, pid)
	}
	slices.Sort(pids)

	var out []delivery
	for _, pid := range pids {
		inst := e.playing[pid]
		out = e.schedule(out, inst, from, to)
		if inst.ended {
			delete(e.playing, pid)
			delete(e.playingRTPC, pid)
		}
	}
	e.now = to
	sort.SliceStable(out, func(i, j int) bool { return out[i].at < out[j].at })
	return out
}

// schedule appends the callbacks inst raises in [from, to). Callers hold mu.
func (e *Engine) schedule(out []delivery, inst *instance, from, to uint64) []delivery {
	ev := inst.event
	lo := float64(from - inst.start)
	hi := float64(to - inst.start)
	length := e.samplesAt(float64(ev.LengthMs))

	end := math.Inf(1)
	natural := false
	if !ev.Looping {
		end = length
		natural = true
	}
	if inst.stopping {
		if s := float64(inst.stopAt) - float64(inst.start); s < end {
			end = s
			natural = false
		}
	}
	end = max(end, lo)
	limit := min(hi, end)

	emit := func(t float64, kind ak.CallbackType, record unsafe.Pointer, text []byte) {
		out = append(out, delivery{at: float64(inst.start) + t, inst: inst, kind: kind, record: record, text: text})
	}
	wants := func(kind ak.CallbackType) bool {
		return inst.cb != nil && inst.flags.Has(kind)
	}
	base := native.CallbackInfo{Cookie: inst.cookie, GameObjID: uint64(inst.obj)}
	evInfo := native.EventCallbackInfo{CallbackInfo: base, PlayingID: uint32(inst.pid), EventID: uint32(inst.eventID)}
	musicSync := func(t, passStart float64, kind ak.CallbackType, cue string) {
		if !wants(kind) {
			return
		}
		rec := &native.MusicSyncCallbackInfo{
			CallbackInfo:  base,
			PlayingID:     uint32(inst.pid),
			SegmentInfo:   e.segmentInfo(ev, t-passStart),
			MusicSyncType: uint32(kind),
		}
		var text []byte
		if kind == ak.MusicSyncUserCue {
			text = cString(cue)
			rec.UserCueName = &text[0]
		}
		emit(t, kind, unsafe.Pointer(rec), text)
	}

	if !inst.started && lo == 0 && limit > 0 {
		if ev.isMusic() && wants(ak.MusicPlayStarted) {
			rec := evInfo
			emit(0, ak.MusicPlayStarted, unsafe.Pointer(&rec), nil)
		}
		if wants(ak.Duration) {
			emit(0, ak.Duration, unsafe.Pointer(&native.DurationCallbackInfo{
				EventCallbackInfo: evInfo,
				Duration:          float32(ev.LengthMs),
				EstimatedDuration: float32(ev.LengthMs),
				AudioNodeID:       ev.AudioNodeID,
				MediaID:           ev.MediaID,
				Streaming:         ev.Streaming,
			}), nil)
		}
		if ev.PlaylistItems > 0 && wants(ak.MusicPlaylistSelect) {
			rec := &native.MusicPlaylistCallbackInfo{
				EventCallbackInfo: evInfo,
				PlaylistID:        ev.PlaylistID,
				NumPlaylistItems:  ev.PlaylistItems,
			}
			emit(0, ak.MusicPlaylistSelect, unsafe.Pointer(rec), nil)
			out[len(out)-1].playlist = rec
		}
		if wants(ak.SpeakerVolumeMatrix) {
			emit(0, ak.SpeakerVolumeMatrix, unsafe.Pointer(&native.SpeakerVolumeMatrixCallbackInfo{
				EventCallbackInfo: evInfo,
				InputConfig:       uint32(ak.NewChannelConfig(ev.channels(), 1, 1<<ev.channels()-1)),
				OutputConfig:      uint32(ak.NewChannelConfig(2, 1, 0x3)),
			}), nil)
		}
		if ev.isMusic() {
			musicSync(0, 0, ak.MusicSyncEntry, "")
		}
	}
	inst.started = true

	if length > 0 && limit > lo {
		first, last := 0, 0
		if ev.Looping {
			first = int(lo / length)
			last = int(math.Ceil(limit/length)) - 1
		}
		for k := first; k <= last; k++ {
			passStart := float64(k) * length
			in := func(t float64) bool { return t >= lo && t < limit && t < passStart+length }

			// The previous pass ends where this one starts.
			if k > 0 && passStart >= lo && passStart < limit && wants(ak.EndOfDynamicSequenceItem) {
				emit(passStart, ak.EndOfDynamicSequenceItem, unsafe.Pointer(&native.DynamicSequenceItemCallbackInfo{
					CallbackInfo: base,
					PlayingID:    uint32(inst.pid),
					AudioNodeID:  ev.AudioNodeID,
				}), nil)
			}

			if ev.isMusic() {
				beat := e.samplesAt(60000 / float64(ev.Tempo))
				bpb := ev.beatsPerBar()
				n := int(math.Ceil(max(lo-passStart, 0) / beat))
				for ; ; n++ {
					t := passStart + float64(n)*beat
					if t >= limit || t >= passStart+length {
						break
					}
					if n%bpb == 0 {
						musicSync(t, passStart, ak.MusicSyncBar, "")
						musicSync(t, passStart, ak.MusicSyncGrid, "")
					}
					musicSync(t, passStart, ak.MusicSyncBeat, "")
				}
				for _, c := range ev.UserCues {
					if t := passStart + e.samplesAt(float64(c.AtMs)); in(t) {
						musicSync(t, passStart, ak.MusicSyncUserCue, c.Name)
						musicSync(t, passStart, ak.MusicSyncPoint, "")
					}
				}
			}
			for _, m := range ev.Markers {
				t := passStart + e.samplesAt(float64(m.AtMs))
				if !in(t) || !wants(ak.Marker) {
					continue
				}
				label := cString(m.Name)
				emit(t, ak.Marker, unsafe.Pointer(&native.MarkerCallbackInfo{
					EventCallbackInfo: evInfo,
					Identifier:        m.ID,
					Position:          uint32(t - passStart),
					Label:             &label[0],
					LabelSize:         uint32(len(label)),
				}), label)
			}
			if wants(ak.MIDIEvent) {
				for _, n := range ev.Notes {
					on := passStart + e.samplesAt(float64(n.AtMs))
					off := on + e.samplesAt(float64(n.LengthMs))
					if in(on) {
						emit(on, ak.MIDIEvent, unsafe.Pointer(&native.MIDIEventCallbackInfo{
							EventCallbackInfo: evInfo,
							MIDIEvent:         midi.Encode(midi.NoteOn{BaseEvent: midi.BaseEvent{EventChannel: n.Channel}, NoteNumber: n.Note, Velocity: n.Velocity}),
						}), nil)
					}
					if in(off) {
						emit(off, ak.MIDIEvent, unsafe.Pointer(&native.MIDIEventCallbackInfo{
							EventCallbackInfo: evInfo,
							MIDIEvent:         midi.Encode(midi.NoteOff{BaseEvent: midi.BaseEvent{EventChannel: n.Channel}, NoteNumber: n.Note}),
						}), nil)
					}
				}
			}
		}
	}

	if end < hi {
		if natural {
			if ev.isMusic() {
				musicSync(end, 0, ak.MusicSyncExit, "")
			}
			if wants(ak.EndOfDynamicSequenceItem) {
				emit(end, ak.EndOfDynamicSequenceItem, unsafe.Pointer(&native.DynamicSequenceItemCallbackInfo{
					CallbackInfo: base,
					PlayingID:    uint32(inst.pid),
					AudioNodeID:  ev.AudioNodeID,
				}), nil)
			}
		}
		if wants(ak.EndOfEvent) {
			rec := evInfo
			emit(end, ak.EndOfEvent, unsafe.Pointer(&rec), nil)
		}
		inst.ended = true
	}
	return out
}

// deliver raises the collected callbacks on the audio goroutine. Engine
// strings are wiped once the callback returns.
func (e *Engine) deliver(ds []delivery) {
	for _, d := range ds {
		if d.inst.cancelled.Load() {
			continue
		}
		d.inst.cb(uint32(d.kind), d.record)
		clear(d.text)
		if d.playlist != nil {
			e.mu.Lock()
			e.playlists[d.inst.pid] = PlaylistChoice{
				PlaylistID: d.playlist.PlaylistID,
				Selection:  d.playlist.PlaylistSelection,
				ItemDone:   d.playlist.PlaylistItemDone,
			}
			e.mu.Unlock()
		}
	}
}
