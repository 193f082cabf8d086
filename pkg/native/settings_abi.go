package native

import (
	"bytes"

	"github.com/justyntemme/akgo/pkg/ak"
)

// Settings records are the flattened forms declared in c/akbridge.h. The
// bridge copies them into and out of the engine's own structures. Field order
// and widths must match the header.

type MemSettings struct {
	AllocSizeLimit uint64
	DebugLevel     uint32
}

type StreamMgrSettings struct {
	MemorySize uint32
}

// Scheduler flags for DeviceSettings.SchedulerTypeFlags.
const (
	SchedulerBlocking        uint32 = 1
	SchedulerDeferredLinedUp uint32 = 2
)

type DeviceSettings struct {
	IOMemorySize              uint32
	Granularity               uint32
	TargetAutoStmBufferLength float32
	MaxConcurrentIO           uint32
	UseStreamCache            bool
	MaxCachePinnedBytes       uint32
	SchedulerTypeFlags        uint32
}

type InitSettings struct {
	MaxNumPaths                 uint32
	CommandQueueSize            uint32
	EnableGameSyncPreparation   bool
	ContinuousPlaybackLookAhead uint32
	NumSamplesPerFrame          uint32
	MonitorQueuePoolSize        uint32
	BankReadBufferSize          uint32
	DebugOutOfRangeCheckEnabled bool
	DebugOutOfRangeLimit        float32
	// PluginDLLPath points at a NUL-terminated OS string, or is nil.
	PluginDLLPath *OSChar
}

type PlatformInitSettings struct {
	SampleRate        uint32
	NumRefillsInVoice uint16
	AudioAPI          uint32
}

type MusicSettings struct {
	StreamingLookAheadRatio float32
}

// AppNetworkNameSize is the fixed size of CommSettings.AppNetworkName,
// including the terminating NUL.
const AppNetworkNameSize = 64

type CommSettings struct {
	DiscoveryBroadcastPort uint16
	CommandPort            uint16
	InitSystemLib          bool
	AppNetworkName         [AppNetworkNameSize]byte
}

// SetAppNetworkName stores name truncated to 63 bytes, NUL padded.
func (c *CommSettings) SetAppNetworkName(name string) {
	c.AppNetworkName = [AppNetworkNameSize]byte{}
	copy(c.AppNetworkName[:AppNetworkNameSize-1], name)
}

// AppName returns the stored application network name.
func (c *CommSettings) AppName() string {
	n := bytes.IndexByte(c.AppNetworkName[:], 0)
	if n < 0 {
		n = len(c.AppNetworkName)
	}
	return string(c.AppNetworkName[:n])
}

type SpatialAudioInitSettings struct {
	MaxSoundPropagationDepth                  uint32
	MovementThreshold                         float32
	NumberOfPrimaryRays                       uint32
	MaxReflectionOrder                        uint32
	MaxPathLength                             float32
	CPULimitPercentage                        float32
	EnableDiffractionOnReflection             bool
	EnableGeometricDiffractionAndTransmission bool
	CalcEmitterVirtualPosition                bool
}

type RoomParams struct {
	Front              ak.Vector
	Up                 ak.Vector
	ReverbAuxBus       uint32
	ReverbLevel        float32
	TransmissionLoss   float32
	AuxSendLevelToSelf float32
	KeepRegistered     bool
	GeometryID         uint64
}

type PortalParams struct {
	Transform  ak.Transform
	HalfWidth  float32
	HalfHeight float32
	HalfDepth  float32
	Enabled    bool
	FrontRoom  uint64
	BackRoom   uint64
}

// NoSurface marks a triangle without an acoustic surface.
const NoSurface uint16 = 0xFFFF

// Triangle indexes three vertices of a geometry set and one of its
// surfaces.
type Triangle struct {
	Point0, Point1, Point2 uint16
	Surface                uint16
}

type Surface struct {
	TextureID        uint32
	TransmissionLoss float32
}

type GeometryParams struct {
	Room                             uint64
	EnableDiffraction                bool
	EnableDiffractionOnBoundaryEdges bool
	EnableTriangles                  bool
}

// MaxImageSourceTextures is the length of ImageSourceParams.TextureIDs.
const MaxImageSourceTextures = 4

type ImageSourceParams struct {
	SourcePosition          ak.Vector
	DistanceScalingFactor   float32
	Level                   float32
	Diffraction             float32
	DiffractionEmitterSide  uint8
	DiffractionListenerSide uint8
	NumTextures             uint32
	TextureIDs              [MaxImageSourceTextures]uint32
}
