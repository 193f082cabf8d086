// Package sim is an in-process audio engine that implements native.Engine
// without the SDK. It keeps the engine's observable contract: a strict
// init/term stack, a command queue drained by RenderAudio, callbacks raised
// on an engine-owned goroutine with the SDK's record layouts, and result
// codes for every misuse. It renders no audio.
package sim

import (
	"sync"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/native"
)

var _ native.Engine = (*Engine)(nil)

// Engine is a simulated engine instance. Register it with native.Use.
type Engine struct {
	mu sync.Mutex

	catalog      *Catalog
	events       map[ak.UniqueID]*Event
	eventBanks   map[ak.UniqueID][]ak.BankID
	banks        map[ak.BankID]*Bank
	gameParams   map[ak.RtpcID]*GameParameter
	switchGroups map[ak.SwitchGroupID]*SyncGroup
	stateGroups  map[ak.StateGroupID]*SyncGroup
	triggers     map[ak.TriggerID]string

	memInit     bool
	mem         native.MemSettings
	streamMgr   bool
	deviceInit  bool
	device      native.DeviceSettings
	basePath    string
	language    string
	initialized bool
	settings    native.InitSettings
	platform    native.PlatformInitSettings
	pluginPath  string
	musicInit   bool
	music       native.MusicSettings
	commInit    bool
	comm        native.CommSettings
	spatialInit bool
	spatial     native.SpatialAudioInitSettings

	objects          map[ak.GameObjectID]*gameObject
	defaultListeners []ak.GameObjectID
	spatialListeners map[ak.GameObjectID]bool
	rooms            map[ak.GameObjectID]room
	portals          map[ak.PortalID]*portal
	geometry         map[ak.GeometrySetID]*Geometry
	imageSources     map[imageSourceKey]ImageSource
	loaded           map[ak.BankID]int
	globalRTPC       map[ak.RtpcID]ak.RtpcValue
	playingRTPC      map[ak.PlayingID]map[ak.RtpcID]ak.RtpcValue
	states           map[ak.StateGroupID]ak.StateID
	playing          map[ak.PlayingID]*instance
	playlists        map[ak.PlayingID]PlaylistChoice
	nextPlayingID    ak.PlayingID
	now              uint64

	frames chan chan struct{}
	quit   chan struct{}
	wg     sync.WaitGroup
}

// New returns an engine playing the given catalog. A nil catalog means
// DefaultCatalog.
func New(c *Catalog) *Engine {
	if c == nil {
		c = DefaultCatalog()
	}
	e := &Engine{
		catalog:      c,
		events:       make(map[ak.UniqueID]*Event),
		eventBanks:   make(map[ak.UniqueID][]ak.BankID),
		banks:        make(map[ak.BankID]*Bank),
		gameParams:   make(map[ak.RtpcID]*GameParameter),
		switchGroups: make(map[ak.SwitchGroupID]*SyncGroup),
		stateGroups:  make(map[ak.StateGroupID]*SyncGroup),
		triggers:     make(map[ak.TriggerID]string),
	}
	for i := range c.Banks {
		b := &c.Banks[i]
		id := BankID(b.Name)
		e.banks[id] = b
		for j := range b.Events {
			ev := &b.Events[j]
			eid := ak.HashName(ev.Name)
			e.events[eid] = ev
			e.eventBanks[eid] = append(e.eventBanks[eid], id)
		}
	}
	for i := range c.GameParameters {
		e.gameParams[ak.HashName(c.GameParameters[i].Name)] = &c.GameParameters[i]
	}
	for i := range c.SwitchGroups {
		e.switchGroups[ak.HashName(c.SwitchGroups[i].Name)] = &c.SwitchGroups[i]
	}
	for i := range c.StateGroups {
		e.stateGroups[ak.HashName(c.StateGroups[i].Name)] = &c.StateGroups[i]
	}
	for _, t := range c.Triggers {
		e.triggers[ak.HashName(t)] = t
	}
	e.resetWorld()
	return e
}

// resetWorld drops everything the sound engine owns. Callers hold mu.
func (e *Engine) resetWorld() {
	e.objects = make(map[ak.GameObjectID]*gameObject)
	e.defaultListeners = nil
	e.clearSpatialWorld()
	e.loaded = make(map[ak.BankID]int)
	e.globalRTPC = make(map[ak.RtpcID]ak.RtpcValue)
	e.playingRTPC = make(map[ak.PlayingID]map[ak.RtpcID]ak.RtpcValue)
	e.states = make(map[ak.StateGroupID]ak.StateID)
	e.playing = make(map[ak.PlayingID]*instance)
	e.playlists = make(map[ak.PlayingID]PlaylistChoice)
	e.now = 0
}

// Catalog returns the content the engine was built with.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

func (e *Engine) MemGetDefaultSettings(s *native.MemSettings) {
	*s = native.MemSettings{AllocSizeLimit: 0, DebugLevel: 0}
}

func (e *Engine) MemInit(s *native.MemSettings) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.memInit {
		return ak.AlreadyInitialized
	}
	e.mem = *s
	e.memInit = true
	return ak.Success
}

func (e *Engine) MemIsInitialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.memInit
}

func (e *Engine) MemTerm() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.memInit = false
}

func (e *Engine) StreamGetDefaultSettings(s *native.StreamMgrSettings) {
	*s = native.StreamMgrSettings{}
}

func (e *Engine) StreamGetDefaultDeviceSettings(s *native.DeviceSettings) {
	*s = native.DeviceSettings{
		IOMemorySize:              2 << 20,
		Granularity:               16 << 10,
		TargetAutoStmBufferLength: 380,
		MaxConcurrentIO:           8,
		UseStreamCache:            false,
		MaxCachePinnedBytes:       0xFFFFFFFF,
		SchedulerTypeFlags:        native.SchedulerBlocking,
	}
}

func (e *Engine) StreamCreate(s *native.StreamMgrSettings) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.memInit || e.streamMgr {
		return false
	}
	e.streamMgr = true
	return true
}

func (e *Engine) StreamInitDefault(device *native.DeviceSettings, basePath *native.OSChar) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case !e.streamMgr:
		return ak.StreamMgrNotInitialized
	case e.deviceInit:
		return ak.AlreadyInitialized
	case basePath == nil:
		return ak.InvalidParameter
	case device.Granularity == 0 || device.IOMemorySize < device.Granularity:
		return ak.InvalidParameter
	}
	e.device = *device
	e.basePath = native.GoOSString(basePath)
	e.deviceInit = true
	return ak.Success
}

func (e *Engine) StreamTermDefault() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.deviceInit = false
	e.streamMgr = false
	e.basePath = ""
}

func (e *Engine) StreamSetCurrentLanguage(language *native.OSChar) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.streamMgr {
		return ak.StreamMgrNotInitialized
	}
	if language == nil {
		return ak.InvalidParameter
	}
	e.language = native.GoOSString(language)
	return ak.Success
}

// BasePath returns the bank location the default device was opened on.
func (e *Engine) BasePath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.basePath
}

// Language returns the current language set on the stream manager.
func (e *Engine) Language() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.language
}

// DeviceSettings returns the settings the default device was opened with.
func (e *Engine) DeviceSettings() native.DeviceSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.device
}

func (e *Engine) GetDefaultInitSettings(s *native.InitSettings) {
	*s = native.InitSettings{
		MaxNumPaths:                 255,
		CommandQueueSize:            256 << 10,
		EnableGameSyncPreparation:   false,
		ContinuousPlaybackLookAhead: 1,
		NumSamplesPerFrame:          1024,
		MonitorQueuePoolSize:        64 << 10,
		BankReadBufferSize:          32 << 10,
		DebugOutOfRangeCheckEnabled: false,
		DebugOutOfRangeLimit:        16,
	}
}

func (e *Engine) GetDefaultPlatformInitSettings(s *native.PlatformInitSettings) {
	*s = native.PlatformInitSettings{
		SampleRate:        48000,
		NumRefillsInVoice: 4,
	}
}

func (e *Engine) Init(s *native.InitSettings, p *native.PlatformInitSettings) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.initialized:
		return ak.AlreadyInitialized
	case !e.memInit:
		return ak.MemManagerNotInitialized
	case !e.streamMgr:
		return ak.StreamMgrNotInitialized
	case s == nil || p == nil:
		return ak.InvalidParameter
	case s.NumSamplesPerFrame == 0 || s.NumSamplesPerFrame&(s.NumSamplesPerFrame-1) != 0:
		return ak.InvalidParameter
	case p.SampleRate == 0:
		return ak.InvalidParameter
	}
	e.settings = *s
	e.platform = *p
	e.pluginPath = native.GoOSString(s.PluginDLLPath)
	e.resetWorld()
	e.nextPlayingID = 0
	e.frames = make(chan chan struct{})
	e.quit = make(chan struct{})
	e.wg.Add(1)
	go e.audioLoop(e.frames, e.quit)
	e.initialized = true
	debug.Info("sim: engine initialised at %d Hz, %d samples per frame", p.SampleRate, s.NumSamplesPerFrame)
	return ak.Success
}

func (e *Engine) IsInitialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// Term stops the audio goroutine and drops every playing instance without
// raising further callbacks.
func (e *Engine) Term() {
	e.mu.Lock()
	if !e.initialized {
		e.mu.Unlock()
		return
	}
	e.initialized = false
	close(e.quit)
	e.mu.Unlock()

	e.wg.Wait()

	e.mu.Lock()
	defer e.mu.Unlock()
	dropped := len(e.playing)
	e.resetWorld()
	e.musicInit = false
	e.spatialInit = false
	e.commInit = false
	debug.Info("sim: engine terminated, %d playing instances dropped", dropped)
}

// InitSettings returns the settings the engine was initialised with.
func (e *Engine) InitSettings() native.InitSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// PluginDLLPath returns the plug-in path given at Init.
func (e *Engine) PluginDLLPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pluginPath
}

// RenderAudio advances the engine by one frame and returns once every
// callback of that frame was delivered.
func (e *Engine) RenderAudio(allowSyncRender bool) ak.Result {
	e.mu.Lock()
	if !e.initialized {
		e.mu.Unlock()
		return ak.NotInitialized
	}
	frames, quit := e.frames, e.quit
	e.mu.Unlock()

	done := make(chan struct{})
	select {
	case frames <- done:
	case <-quit:
		return ak.NotInitialized
	}
	<-done
	return ak.Success
}

// Now returns the engine time in milliseconds.
func (e *Engine) Now() ak.TimeMs {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.msAt(e.now)
}

// FrameDuration returns the time one RenderAudio call advances, in
// milliseconds.
func (e *Engine) FrameDuration() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.platform.SampleRate == 0 {
		return 0
	}
	return float64(e.settings.NumSamplesPerFrame) * 1000 / float64(e.platform.SampleRate)
}

func (e *Engine) audioLoop(frames <-chan chan struct{}, quit <-chan struct{}) {
	defer e.wg.Done()
	for {
		select {
		case <-quit:
			return
		case done := <-frames:
			e.deliver(e.advance())
			close(done)
		}
	}
}

// samplesAt converts a position in milliseconds to samples. Callers hold mu.
func (e *Engine) samplesAt(ms float64) float64 {
	return ms * float64(e.platform.SampleRate) / 1000
}

// msAt converts samples to milliseconds. Callers hold mu.
func (e *Engine) msAt(samples uint64) ak.TimeMs {
	if e.platform.SampleRate == 0 {
		return 0
	}
	return ak.TimeMs(samples * 1000 / uint64(e.platform.SampleRate))
}
