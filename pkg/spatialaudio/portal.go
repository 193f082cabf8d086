package spatialaudio

import (
	"fmt"
	"runtime"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
)

// Extent holds the half dimensions of a portal around its center, in its
// local right, up and front axes. Every component must be positive.
type Extent struct {
	HalfWidth  float32
	HalfHeight float32
	HalfDepth  float32
}

// PortalParams describes an opening between two rooms. FrontRoom lies in
// the direction of Transform's front vector and BackRoom opposite to it.
type PortalParams struct {
	Transform ak.Transform
	Extent    Extent
	// Enabled is false for a closed door.
	Enabled   bool
	FrontRoom ak.RoomID
	BackRoom  ak.RoomID
	Name      string
}

// DefaultPortalParams returns a closed portal at the origin with both sides
// outdoors. Set at least one room before passing it to SetPortal.
func DefaultPortalParams() PortalParams {
	return PortalParams{
		Transform: ak.NewTransform(),
		FrontRoom: OutdoorRoomID,
		BackRoom:  OutdoorRoomID,
	}
}

func (p PortalParams) record() native.PortalParams {
	return native.PortalParams{
		Transform:  p.Transform,
		HalfWidth:  p.Extent.HalfWidth,
		HalfHeight: p.Extent.HalfHeight,
		HalfDepth:  p.Extent.HalfDepth,
		Enabled:    p.Enabled,
		FrontRoom:  uint64(p.FrontRoom),
		BackRoom:   uint64(p.BackRoom),
	}
}

// SetPortal adds or updates a portal. A room it names that was never set
// is created with default parameters.
func SetPortal(id ak.PortalID, params PortalParams) error {
	if reserved(id) || id == OutdoorRoomID {
		return fmt.Errorf("spatialaudio: set portal %d: reserved id: %w", id, ak.InvalidParameter)
	}
	name, err := native.CString(params.Name)
	if err != nil {
		return fmt.Errorf("spatialaudio: set portal %d: %w", id, err)
	}
	rec := params.record()
	r := native.Current().SetPortal(id, &rec, &name[0])
	runtime.KeepAlive(name)
	if err := ak.Check(r); err != nil {
		return fmt.Errorf("spatialaudio: set portal %d: %w", id, err)
	}
	return nil
}

func RemovePortal(id ak.PortalID) error {
	if err := ak.Check(native.Current().RemovePortal(id)); err != nil {
		return fmt.Errorf("spatialaudio: remove portal %d: %w", id, err)
	}
	return nil
}

// SetPortalObstructionAndOcclusion sets the obstruction and occlusion of
// sound going through a portal, both in [0, 1].
func SetPortalObstructionAndOcclusion(id ak.PortalID, obstruction, occlusion float32) error {
	r := native.Current().SetPortalObstructionAndOcclusion(id, obstruction, occlusion)
	if err := ak.Check(r); err != nil {
		return fmt.Errorf("spatialaudio: set obstruction of portal %d: %w", id, err)
	}
	return nil
}
