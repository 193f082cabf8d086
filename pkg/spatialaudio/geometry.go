package spatialaudio

import (
	"fmt"
	"math"
	"runtime"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
)

type (
	// Triangle indexes GeometryParams.Vertices and GeometryParams.Surfaces.
	Triangle = native.Triangle
	// Surface is the acoustic texture and transmission loss shared by
	// triangles.
	Surface = native.Surface
)

// NoSurface is the Triangle.Surface of a triangle without a surface.
const NoSurface = native.NoSurface

// GeometryParams describes a geometry set. The engine copies the slices.
type GeometryParams struct {
	Vertices  []ak.Vector
	Triangles []Triangle
	Surfaces  []Surface
	// Room limits the geometry to one room. OutdoorRoomID makes it global.
	Room                             ak.RoomID
	EnableDiffraction                bool
	EnableDiffractionOnBoundaryEdges bool
	// EnableTriangles is false for a set that only gives a room its shape.
	EnableTriangles bool
}

// DefaultGeometryParams returns an empty global set with triangles enabled.
func DefaultGeometryParams() GeometryParams {
	return GeometryParams{Room: OutdoorRoomID, EnableTriangles: true}
}

// SetGeometry adds or updates a geometry set used for reflection and
// diffraction. Each slice holds at most 65535 elements.
func SetGeometry(id ak.GeometrySetID, params GeometryParams) error {
	for what, n := range map[string]int{
		"vertices":  len(params.Vertices),
		"triangles": len(params.Triangles),
		"surfaces":  len(params.Surfaces),
	} {
		if n > math.MaxUint16 {
			return fmt.Errorf("spatialaudio: set geometry %d: %d %s: %w", id, n, what, ak.InvalidParameter)
		}
	}
	rec := native.GeometryParams{
		Room:                             uint64(params.Room),
		EnableDiffraction:                params.EnableDiffraction,
		EnableDiffractionOnBoundaryEdges: params.EnableDiffractionOnBoundaryEdges,
		EnableTriangles:                  params.EnableTriangles,
	}
	r := native.Current().SetGeometry(id, &rec,
		first(params.Vertices), uint16(len(params.Vertices)),
		first(params.Triangles), uint16(len(params.Triangles)),
		first(params.Surfaces), uint16(len(params.Surfaces)))
	runtime.KeepAlive(params)
	if err := ak.Check(r); err != nil {
		return fmt.Errorf("spatialaudio: set geometry %d: %w", id, err)
	}
	return nil
}

func RemoveGeometry(id ak.GeometrySetID) error {
	if err := ak.Check(native.Current().RemoveGeometry(id)); err != nil {
		return fmt.Errorf("spatialaudio: remove geometry %d: %w", id, err)
	}
	return nil
}

func first[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}
