package sim

import (
	"slices"
	"unsafe"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
)

type portal struct {
	name        string
	params      native.PortalParams
	obstruction float32
	occlusion   float32
}

// Geometry is a geometry set as the engine copied it.
type Geometry struct {
	Params    native.GeometryParams
	Vertices  []ak.Vector
	Triangles []native.Triangle
	Surfaces  []native.Surface
}

type imageSourceKey struct {
	src    ak.ImageSourceID
	auxBus ak.AuxBusID
	obj    ak.GameObjectID
}

// ImageSource is a reflection image source set on one aux bus and game
// object.
type ImageSource struct {
	Name   string
	Room   ak.RoomID
	Params native.ImageSourceParams
}

// clearSpatialWorld drops the listener and every room, portal, geometry set
// and image source. Callers hold mu.
func (e *Engine) clearSpatialWorld() {
	e.spatialListeners = make(map[ak.GameObjectID]bool)
	e.rooms = make(map[ak.GameObjectID]room)
	e.portals = make(map[ak.PortalID]*portal)
	e.geometry = make(map[ak.GeometrySetID]*Geometry)
	e.imageSources = make(map[imageSourceKey]ImageSource)
}

func (e *Engine) knownRoom(id ak.RoomID) bool {
	_, ok := e.rooms[id]
	return ok || id == OutdoorRoom
}

func unit(v float32) bool { return v >= 0 && v <= 1 }

// SetPortal adds or updates a portal. Rooms it connects that were never set
// are created with default parameters.
func (e *Engine) SetPortal(id ak.PortalID, params *native.PortalParams, name *byte) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	if params == nil || params.HalfWidth <= 0 || params.HalfHeight <= 0 || params.HalfDepth <= 0 ||
		params.FrontRoom == params.BackRoom {
		return ak.InvalidParameter
	}
	for _, r := range []ak.RoomID{ak.RoomID(params.FrontRoom), ak.RoomID(params.BackRoom)} {
		if !e.knownRoom(r) {
			e.rooms[r] = room{params: native.RoomParams{
				Front:            ak.Vector{Z: 1},
				Up:               ak.Vector{Y: 1},
				ReverbLevel:      1,
				TransmissionLoss: 1,
			}}
		}
	}
	p, ok := e.portals[id]
	if !ok {
		p = &portal{}
		e.portals[id] = p
	}
	p.name = native.GoString(name)
	p.params = *params
	return ak.Success
}

func (e *Engine) RemovePortal(id ak.PortalID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	if _, ok := e.portals[id]; !ok {
		return ak.IDNotFound
	}
	delete(e.portals, id)
	return ak.Success
}

func (e *Engine) SetPortalObstructionAndOcclusion(id ak.PortalID, obstruction, occlusion float32) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	p, ok := e.portals[id]
	if !ok {
		return ak.IDNotFound
	}
	if !unit(obstruction) || !unit(occlusion) {
		return ak.InvalidParameter
	}
	p.obstruction, p.occlusion = obstruction, occlusion
	return ak.Success
}

// Portal returns a portal set with SetPortal and its obstruction and
// occlusion.
func (e *Engine) Portal(id ak.PortalID) (name string, params native.PortalParams, obstruction, occlusion float32, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, ok := e.portals[id]
	if !ok {
		return "", native.PortalParams{}, 0, 0, false
	}
	return p.name, p.params, p.obstruction, p.occlusion, true
}

func (e *Engine) SetGeometry(id ak.GeometrySetID, params *native.GeometryParams, vertices *ak.Vector, numVertices uint16,
	triangles *native.Triangle, numTriangles uint16, surfaces *native.Surface, numSurfaces uint16) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	if params == nil ||
		(numVertices > 0 && vertices == nil) ||
		(numTriangles > 0 && triangles == nil) ||
		(numSurfaces > 0 && surfaces == nil) {
		return ak.InvalidParameter
	}
	if !e.knownRoom(ak.RoomID(params.Room)) {
		return ak.IDNotFound
	}

	g := &Geometry{
		Params:    *params,
		Vertices:  copyArray(vertices, numVertices),
		Triangles: copyArray(triangles, numTriangles),
		Surfaces:  copyArray(surfaces, numSurfaces),
	}
	for _, t := range g.Triangles {
		if t.Point0 >= numVertices || t.Point1 >= numVertices || t.Point2 >= numVertices {
			return ak.InvalidParameter
		}
		if t.Surface != native.NoSurface && t.Surface >= numSurfaces {
			return ak.InvalidParameter
		}
	}
	for _, s := range g.Surfaces {
		if !unit(s.TransmissionLoss) {
			return ak.InvalidParameter
		}
	}
	e.geometry[id] = g
	return ak.Success
}

func (e *Engine) RemoveGeometry(id ak.GeometrySetID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	if _, ok := e.geometry[id]; !ok {
		return ak.IDNotFound
	}
	delete(e.geometry, id)
	return ak.Success
}

// GeometrySet returns a copy of a geometry set.
func (e *Engine) GeometrySet(id ak.GeometrySetID) (Geometry, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	g, ok := e.geometry[id]
	if !ok {
		return Geometry{}, false
	}
	return Geometry{
		Params:    g.Params,
		Vertices:  slices.Clone(g.Vertices),
		Triangles: slices.Clone(g.Triangles),
		Surfaces:  slices.Clone(g.Surfaces),
	}, true
}

func (e *Engine) SetImageSource(src ak.ImageSourceID, params *native.ImageSourceParams, name *byte, auxBus ak.AuxBusID, roomID ak.RoomID, obj ak.GameObjectID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	if params == nil || params.NumTextures > native.MaxImageSourceTextures || auxBus == ak.InvalidAuxBusID {
		return ak.InvalidParameter
	}
	if _, ok := e.objects[obj]; !ok {
		return ak.IDNotFound
	}
	if !e.knownRoom(roomID) {
		return ak.IDNotFound
	}
	e.imageSources[imageSourceKey{src, auxBus, obj}] = ImageSource{
		Name:   native.GoString(name),
		Room:   roomID,
		Params: *params,
	}
	return ak.Success
}

func (e *Engine) RemoveImageSource(src ak.ImageSourceID, auxBus ak.AuxBusID, obj ak.GameObjectID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	k := imageSourceKey{src, auxBus, obj}
	if _, ok := e.imageSources[k]; !ok {
		return ak.IDNotFound
	}
	delete(e.imageSources, k)
	return ak.Success
}

// ClearImageSources removes the image sources of auxBus on obj.
// InvalidAuxBusID and InvalidGameObject match every bus and object.
func (e *Engine) ClearImageSources(auxBus ak.AuxBusID, obj ak.GameObjectID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.spatialInit {
		return ak.NotInitialized
	}
	for k := range e.imageSources {
		if (auxBus == ak.InvalidAuxBusID || k.auxBus == auxBus) &&
			(obj == ak.InvalidGameObject || k.obj == obj) {
			delete(e.imageSources, k)
		}
	}
	return ak.Success
}

// ImageSourceAt returns an image source set with SetImageSource.
func (e *Engine) ImageSourceAt(src ak.ImageSourceID, auxBus ak.AuxBusID, obj ak.GameObjectID) (ImageSource, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.imageSources[imageSourceKey{src, auxBus, obj}]
	return s, ok
}

// ImageSourceCount returns how many image sources are set.
func (e *Engine) ImageSourceCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.imageSources)
}

// copyArray copies n elements from an engine array argument.
func copyArray[T any](p *T, n uint16) []T {
	if p == nil || n == 0 {
		return nil
	}
	return slices.Clone(unsafe.Slice(p, n))
}
