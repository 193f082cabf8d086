package ak

import "fmt"

// Vector is a 3D vector. Y is up and Z is forward.
type Vector struct {
	X, Y, Z float32
}

// Splat returns the vector {v, v, v}.
func Splat(v float32) Vector {
	return Vector{X: v, Y: v, Z: v}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Transform is a position plus orientation. The layout matches the engine's
// transform record.
type Transform struct {
	Position         Vector
	OrientationFront Vector
	OrientationTop   Vector
}

// SoundPosition is the transform of an emitter.
type SoundPosition = Transform

// ListenerPosition is the transform of a listener.
type ListenerPosition = Transform

// NewTransform returns a transform at the origin facing +Z with +Y up.
func NewTransform() Transform {
	return Transform{
		OrientationFront: Vector{Z: 1},
		OrientationTop:   Vector{Y: 1},
	}
}

// TransformAt returns the default orientation placed at p.
func TransformAt(p Vector) Transform {
	t := NewTransform()
	t.Position = p
	return t
}

// Curve selects an interpolation curve for fades and RTPC slews.
type Curve int32

const (
	CurveLog3 Curve = iota
	CurveSine
	CurveLog1
	CurveInvSCurve
	CurveLinear
	CurveSCurve
	CurveExp1
	CurveSineRecip
	CurveExp3
	CurveConstant
)

var curveNames = [...]string{"Log3", "Sine", "Log1", "InvSCurve", "Linear", "SCurve", "Exp1", "SineRecip", "Exp3", "Constant"}

func (c Curve) String() string {
	if c >= 0 && int(c) < len(curveNames) {
		return curveNames[c]
	}
	return fmt.Sprintf("Curve(%d)", int32(c))
}

// ChannelConfig is the engine's packed channel configuration: 8 bits of
// channel count, 4 bits of configuration type, 20 bits of speaker mask.
type ChannelConfig uint32

// NewChannelConfig packs a channel configuration.
func NewChannelConfig(numChannels uint8, configType uint8, mask uint32) ChannelConfig {
	return ChannelConfig(uint32(numChannels) | uint32(configType&0xF)<<8 | (mask&0xFFFFF)<<12)
}

// NumChannels returns the channel count.
func (c ChannelConfig) NumChannels() uint32 { return uint32(c) & 0xFF }

// ConfigType returns the configuration type (0 anonymous, 1 standard, 2 ambisonic, ...).
func (c ChannelConfig) ConfigType() uint32 { return uint32(c) >> 8 & 0xF }

// ChannelMask returns the speaker bit mask.
func (c ChannelConfig) ChannelMask() uint32 { return uint32(c) >> 12 }

func (c ChannelConfig) String() string {
	return fmt.Sprintf("%dch(type=%d mask=0x%x)", c.NumChannels(), c.ConfigType(), c.ChannelMask())
}

// SegmentInfo describes the playing music segment. Positions are in
// milliseconds, grid values in seconds.
type SegmentInfo struct {
	CurrentPosition        TimeMs
	PreEntryDuration       TimeMs
	ActiveDuration         TimeMs
	PostExitDuration       TimeMs
	RemainingLookAheadTime TimeMs
	BeatDuration           float32
	BarDuration            float32
	GridDuration           float32
	GridOffset             float32
}

// Tempo returns the segment tempo in beats per minute, or 0 when unknown.
func (s SegmentInfo) Tempo() float32 {
	if s.BeatDuration <= 0 {
		return 0
	}
	return 60 / s.BeatDuration
}
