package spatialaudio

import (
	"fmt"
	"runtime"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
)

// ImageSourceParams places one reflection image source for the reflect
// plug-in.
type ImageSourceParams struct {
	SourcePosition        ak.Vector
	DistanceScalingFactor float32
	Level                 float32
	Diffraction           float32
	// Sides of the diffraction edge, 0 for none.
	DiffractionEmitterSide  uint8
	DiffractionListenerSide uint8
	// Textures holds at most native.MaxImageSourceTextures acoustic
	// textures.
	Textures []ak.UniqueID
	Name     string
}

// DefaultImageSourceParams returns an image source at the origin with full
// level.
func DefaultImageSourceParams() ImageSourceParams {
	return ImageSourceParams{DistanceScalingFactor: 1, Level: 1}
}

// SetImageSource adds or updates src on the reflect aux bus auxBus for
// obj. Only an emitter and listener both inside room hear it.
func SetImageSource(src ak.ImageSourceID, params ImageSourceParams, auxBus ak.AuxBusID, room ak.RoomID, obj ak.GameObjectID) error {
	if len(params.Textures) > native.MaxImageSourceTextures {
		return fmt.Errorf("spatialaudio: set image source %d: %d textures: %w", src, len(params.Textures), ak.InvalidParameter)
	}
	name, err := native.CString(params.Name)
	if err != nil {
		return fmt.Errorf("spatialaudio: set image source %d: %w", src, err)
	}
	rec := native.ImageSourceParams{
		SourcePosition:          params.SourcePosition,
		DistanceScalingFactor:   params.DistanceScalingFactor,
		Level:                   params.Level,
		Diffraction:             params.Diffraction,
		DiffractionEmitterSide:  params.DiffractionEmitterSide,
		DiffractionListenerSide: params.DiffractionListenerSide,
		NumTextures:             uint32(len(params.Textures)),
	}
	for i, t := range params.Textures {
		rec.TextureIDs[i] = uint32(t)
	}
	r := native.Current().SetImageSource(src, &rec, &name[0], auxBus, room, obj)
	runtime.KeepAlive(name)
	if err := ak.Check(r); err != nil {
		return fmt.Errorf("spatialaudio: set image source %d: %w", src, err)
	}
	return nil
}

func RemoveImageSource(src ak.ImageSourceID, auxBus ak.AuxBusID, obj ak.GameObjectID) error {
	if err := ak.Check(native.Current().RemoveImageSource(src, auxBus, obj)); err != nil {
		return fmt.Errorf("spatialaudio: remove image source %d: %w", src, err)
	}
	return nil
}

// ClearImageSources removes the image sources of auxBus on obj.
// ak.InvalidAuxBusID and ak.InvalidGameObject match every bus and object.
func ClearImageSources(auxBus ak.AuxBusID, obj ak.GameObjectID) error {
	if err := ak.Check(native.Current().ClearImageSources(auxBus, obj)); err != nil {
		return fmt.Errorf("spatialaudio: clear image sources: %w", err)
	}
	return nil
}
