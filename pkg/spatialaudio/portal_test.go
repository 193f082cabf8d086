package spatialaudio

import (
	"errors"
	"testing"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
	"github.com/justyntemme/akgo/pkg/native/sim/simtest"
	"github.com/justyntemme/akgo/pkg/settings"
)

const (
	bigRoom     ak.RoomID   = 1
	smallRoom   ak.RoomID   = 2
	innerPortal ak.PortalID = 10
)

func doorway() PortalParams {
	p := DefaultPortalParams()
	p.Transform = ak.TransformAt(ak.Vector{Y: 0.75})
	p.Extent = Extent{HalfWidth: 0.5, HalfHeight: 0.75, HalfDepth: 0.375}
	p.Enabled = true
	p.FrontRoom = bigRoom
	p.BackRoom = smallRoom
	p.Name = "InnerPortal"
	return p
}

func TestPortals(t *testing.T) {
	e := startSpatial(t)

	if err := SetRoom(bigRoom, DefaultRoomParams()); err != nil {
		t.Fatalf("SetRoom: %v", err)
	}
	if err := SetPortal(innerPortal, doorway()); err != nil {
		t.Fatalf("SetPortal: %v", err)
	}
	name, rec, _, _, ok := e.Portal(innerPortal)
	if !ok || name != "InnerPortal" || !rec.Enabled || rec.HalfDepth != 0.375 {
		t.Errorf("Unexpected portal %q %+v", name, rec)
	}
	if ak.RoomID(rec.FrontRoom) != bigRoom || ak.RoomID(rec.BackRoom) != smallRoom {
		t.Errorf("Expected rooms %d/%d, got %d/%d", bigRoom, smallRoom, rec.FrontRoom, rec.BackRoom)
	}
	if _, _, ok := e.Room(smallRoom); !ok {
		t.Error("Expected the portal to create the small room")
	}

	if err := SetPortalObstructionAndOcclusion(innerPortal, 0.25, 0.5); err != nil {
		t.Fatalf("SetPortalObstructionAndOcclusion: %v", err)
	}
	if _, _, obs, occ, _ := e.Portal(innerPortal); obs != 0.25 || occ != 0.5 {
		t.Errorf("Expected 0.25/0.5, got %v/%v", obs, occ)
	}

	closed := doorway()
	closed.Enabled = false
	if err := SetPortal(innerPortal, closed); err != nil {
		t.Fatalf("SetPortal update: %v", err)
	}
	if _, rec, obs, _, _ := e.Portal(innerPortal); rec.Enabled || obs != 0.25 {
		t.Errorf("Expected a closed portal keeping its obstruction, got %+v obstruction %v", rec, obs)
	}

	if err := RemovePortal(innerPortal); err != nil {
		t.Fatalf("RemovePortal: %v", err)
	}
	if err := RemovePortal(innerPortal); !errors.Is(err, ak.IDNotFound) {
		t.Errorf("Expected IDNotFound, got %v", err)
	}
	if err := SetPortalObstructionAndOcclusion(innerPortal, 0, 0); !errors.Is(err, ak.IDNotFound) {
		t.Errorf("Expected IDNotFound for a removed portal, got %v", err)
	}

	t.Run("Invalid", func(t *testing.T) {
		flat := doorway()
		flat.Extent.HalfDepth = 0
		sameRoom := doorway()
		sameRoom.BackRoom = bigRoom

		tests := []struct {
			name   string
			id     ak.PortalID
			params PortalParams
		}{
			{"FlatExtent", innerPortal, flat},
			{"SameRoom", innerPortal, sameRoom},
			{"Default", innerPortal, DefaultPortalParams()},
			{"Reserved", OutdoorRoomID - 1, doorway()},
			{"Outdoor", OutdoorRoomID, doorway()},
		}
		for _, tt := range tests {
			if err := SetPortal(tt.id, tt.params); !errors.Is(err, ak.InvalidParameter) {
				t.Errorf("%s: expected InvalidParameter, got %v", tt.name, err)
			}
		}

		if err := SetPortal(innerPortal, doorway()); err != nil {
			t.Fatalf("SetPortal: %v", err)
		}
		if err := SetPortalObstructionAndOcclusion(innerPortal, 1.5, 0); !errors.Is(err, ak.InvalidParameter) {
			t.Errorf("Expected InvalidParameter for obstruction 1.5, got %v", err)
		}
	})
}

func box() GeometryParams {
	g := DefaultGeometryParams()
	g.Vertices = []ak.Vector{{}, {X: 1}, {Y: 1}, {Z: 1}}
	g.Surfaces = []Surface{{TextureID: 7, TransmissionLoss: 0.9}}
	g.Triangles = []Triangle{
		{Point0: 0, Point1: 1, Point2: 2, Surface: 0},
		{Point0: 0, Point1: 2, Point2: 3, Surface: NoSurface},
	}
	return g
}

func TestGeometry(t *testing.T) {
	e := startSpatial(t)

	params := box()
	if err := SetGeometry(3, params); err != nil {
		t.Fatalf("SetGeometry: %v", err)
	}
	params.Vertices[1].X = 50
	g, ok := e.GeometrySet(3)
	if !ok || len(g.Vertices) != 4 || len(g.Triangles) != 2 || len(g.Surfaces) != 1 {
		t.Fatalf("Unexpected geometry %+v", g)
	}
	if g.Vertices[1].X != 1 {
		t.Errorf("Expected the engine to keep its own copy, got X %v", g.Vertices[1].X)
	}
	if !g.Params.EnableTriangles || ak.RoomID(g.Params.Room) != OutdoorRoomID {
		t.Errorf("Unexpected params %+v", g.Params)
	}

	if err := SetRoom(bigRoom, DefaultRoomParams()); err != nil {
		t.Fatalf("SetRoom: %v", err)
	}
	shape := box()
	shape.Room = bigRoom
	shape.EnableTriangles = false
	if err := SetGeometry(4, shape); err != nil {
		t.Fatalf("SetGeometry in room: %v", err)
	}

	if err := RemoveGeometry(3); err != nil {
		t.Fatalf("RemoveGeometry: %v", err)
	}
	if _, ok := e.GeometrySet(3); ok {
		t.Error("Expected the geometry to be removed")
	}
	if err := RemoveGeometry(3); !errors.Is(err, ak.IDNotFound) {
		t.Errorf("Expected IDNotFound, got %v", err)
	}

	t.Run("Invalid", func(t *testing.T) {
		badVertex := box()
		badVertex.Triangles[0].Point2 = 4
		badSurface := box()
		badSurface.Triangles[1].Surface = 1
		badLoss := box()
		badLoss.Surfaces[0].TransmissionLoss = -1
		tooMany := DefaultGeometryParams()
		tooMany.Vertices = make([]ak.Vector, 1<<16)

		tests := []struct {
			name   string
			params GeometryParams
			want   ak.Result
		}{
			{"VertexIndex", badVertex, ak.InvalidParameter},
			{"SurfaceIndex", badSurface, ak.InvalidParameter},
			{"TransmissionLoss", badLoss, ak.InvalidParameter},
			{"TooManyVertices", tooMany, ak.InvalidParameter},
			{"UnknownRoom", GeometryParams{Room: 99}, ak.IDNotFound},
		}
		for _, tt := range tests {
			if err := SetGeometry(5, tt.params); !errors.Is(err, tt.want) {
				t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
			}
		}
		if _, ok := e.GeometrySet(5); ok {
			t.Error("Expected no geometry to be stored after a rejected set")
		}
	})
}

const reflectBus ak.AuxBusID = 0xBEEF

func TestImageSources(t *testing.T) {
	e := startSpatial(t)

	p := DefaultImageSourceParams()
	p.SourcePosition = ak.Vector{X: 100, Z: 40}
	p.Textures = []ak.UniqueID{11, 12}
	p.Name = "Mountain"
	if err := SetImageSource(1, p, reflectBus, OutdoorRoomID, simtest.GameObject); err != nil {
		t.Fatalf("SetImageSource: %v", err)
	}
	src, ok := e.ImageSourceAt(1, reflectBus, simtest.GameObject)
	if !ok || src.Name != "Mountain" || src.Params.NumTextures != 2 || src.Params.TextureIDs[1] != 12 {
		t.Errorf("Unexpected image source %+v", src)
	}
	if src.Params.SourcePosition.X != 100 || src.Params.Level != 1 {
		t.Errorf("Unexpected params %+v", src.Params)
	}

	if err := SetImageSource(2, p, reflectBus, OutdoorRoomID, simtest.GameObject); err != nil {
		t.Fatalf("SetImageSource: %v", err)
	}
	if err := SetImageSource(1, p, reflectBus+1, OutdoorRoomID, simtest.GameObject); err != nil {
		t.Fatalf("SetImageSource on another bus: %v", err)
	}

	if err := RemoveImageSource(2, reflectBus, simtest.GameObject); err != nil {
		t.Fatalf("RemoveImageSource: %v", err)
	}
	if err := RemoveImageSource(2, reflectBus, simtest.GameObject); !errors.Is(err, ak.IDNotFound) {
		t.Errorf("Expected IDNotFound, got %v", err)
	}

	if err := ClearImageSources(reflectBus, ak.InvalidGameObject); err != nil {
		t.Fatalf("ClearImageSources: %v", err)
	}
	if n := e.ImageSourceCount(); n != 1 {
		t.Errorf("Expected the other bus to keep its source, got %d", n)
	}
	if err := ClearImageSources(ak.InvalidAuxBusID, ak.InvalidGameObject); err != nil {
		t.Fatalf("ClearImageSources: %v", err)
	}
	if n := e.ImageSourceCount(); n != 0 {
		t.Errorf("Expected every source cleared, got %d", n)
	}

	t.Run("Invalid", func(t *testing.T) {
		tooMany := DefaultImageSourceParams()
		tooMany.Textures = make([]ak.UniqueID, native.MaxImageSourceTextures+1)

		tests := []struct {
			name   string
			params ImageSourceParams
			bus    ak.AuxBusID
			room   ak.RoomID
			obj    ak.GameObjectID
			want   ak.Result
		}{
			{"TooManyTextures", tooMany, reflectBus, OutdoorRoomID, simtest.GameObject, ak.InvalidParameter},
			{"NoBus", DefaultImageSourceParams(), ak.InvalidAuxBusID, OutdoorRoomID, simtest.GameObject, ak.InvalidParameter},
			{"UnknownObject", DefaultImageSourceParams(), reflectBus, OutdoorRoomID, 555, ak.IDNotFound},
			{"UnknownRoom", DefaultImageSourceParams(), reflectBus, 99, simtest.GameObject, ak.IDNotFound},
		}
		for _, tt := range tests {
			if err := SetImageSource(3, tt.params, tt.bus, tt.room, tt.obj); !errors.Is(err, tt.want) {
				t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
			}
		}
	})
}

func TestTermDropsSpatialWorld(t *testing.T) {
	e := simtest.Start(t)
	if err := Init(settings.DefaultSpatialAudioInitSettings()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := SetPortal(innerPortal, doorway()); err != nil {
		t.Fatalf("SetPortal: %v", err)
	}
	if err := SetGeometry(3, box()); err != nil {
		t.Fatalf("SetGeometry: %v", err)
	}
	Term()

	if _, _, _, _, ok := e.Portal(innerPortal); ok {
		t.Error("Expected Term to drop the portal")
	}
	if _, ok := e.GeometrySet(3); ok {
		t.Error("Expected Term to drop the geometry")
	}
	if err := SetPortal(innerPortal, doorway()); !errors.Is(err, ak.NotInitialized) {
		t.Errorf("Expected NotInitialized after Term, got %v", err)
	}
}
