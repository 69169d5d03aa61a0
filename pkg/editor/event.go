package editor

import "math"

// Point is a pointer position in nominal screen pixels. The renderer decides
// what a pixel is (terminal renderers synthesize them from character cells);
// the editor only measures distances in them for the drag threshold.
type Point struct {
	X float64
	Y float64
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Handle identifies one of the eight resize handles of a box, named by
// compass direction. Edge handles move one edge; corner handles move two.
// The opposite edge(s) stay fixed for the whole gesture.
type Handle int

// Resize handles.
const (
	HandleN Handle = iota
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

// String returns the compass name of the handle.
func (h Handle) String() string {
	switch h {
	case HandleN:
		return "n"
	case HandleS:
		return "s"
	case HandleE:
		return "e"
	case HandleW:
		return "w"
	case HandleNE:
		return "ne"
	case HandleNW:
		return "nw"
	case HandleSE:
		return "se"
	case HandleSW:
		return "sw"
	}
	return "unknown"
}

// movesLeft reports whether the handle moves the left edge.
func (h Handle) movesLeft() bool { return h == HandleW || h == HandleNW || h == HandleSW }

// movesRight reports whether the handle moves the right edge.
func (h Handle) movesRight() bool { return h == HandleE || h == HandleNE || h == HandleSE }

// movesTop reports whether the handle moves the top edge.
func (h Handle) movesTop() bool { return h == HandleN || h == HandleNE || h == HandleNW }

// movesBottom reports whether the handle moves the bottom edge.
func (h Handle) movesBottom() bool { return h == HandleS || h == HandleSE || h == HandleSW }

// TargetKind tags what a pointer-down hit.
type TargetKind int

// Pointer-down targets.
const (
	// TargetEmpty is a press on empty grid space; it starts a Create.
	TargetEmpty TargetKind = iota

	// TargetBody is a press on a box body; it starts a Pending gesture
	// that becomes a Move once the pointer travels past the threshold.
	TargetBody

	// TargetHandle is a press on a resize handle of the selected box;
	// it starts a Resize immediately.
	TargetHandle
)

// Target describes what a pointer-down landed on. The renderer performs the
// hit test and builds the target; the editor trusts it.
type Target struct {
	Kind   TargetKind
	BoxID  string // set for TargetBody and TargetHandle
	Handle Handle // set for TargetHandle
}

// EmptyTarget returns a target for a press on empty grid space.
func EmptyTarget() Target {
	return Target{Kind: TargetEmpty}
}

// BodyTarget returns a target for a press on the body of the box with id.
func BodyTarget(id string) Target {
	return Target{Kind: TargetBody, BoxID: id}
}

// HandleTarget returns a target for a press on a resize handle of the box
// with id.
func HandleTarget(id string, h Handle) Target {
	return Target{Kind: TargetHandle, BoxID: id, Handle: h}
}
