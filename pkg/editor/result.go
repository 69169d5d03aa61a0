package editor

import "github.com/matzehuels/gridplan/pkg/grid"

// Op identifies which editor operation produced a [Result].
type Op int

// Editor operations.
const (
	OpNone Op = iota
	OpSelect
	OpMove
	OpResize
	OpCreate
	OpDelete
	OpRename
	OpCancel
)

// String returns the lowercase name of the operation.
func (op Op) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpSelect:
		return "select"
	case OpMove:
		return "move"
	case OpResize:
		return "resize"
	case OpCreate:
		return "create"
	case OpDelete:
		return "delete"
	case OpRename:
		return "rename"
	case OpCancel:
		return "cancel"
	}
	return "unknown"
}

// Result reports the outcome of an editor operation. Changed is true only
// when the layout actually differs afterwards; a frozen tick, a discarded
// create, or a no-op drag all report Changed false. Colliding is true when
// the operation was rejected because the candidate overlapped another box.
//
// Results are advisory: the renderer decides what to show and the caller
// decides when to persist. Nothing in the editor is fatal.
type Result struct {
	Op        Op
	Box       grid.Box // the box the operation concerned, when there is one
	Changed   bool
	Colliding bool
}

// GestureKind tags the active gesture reported by [Editor.Gesture].
type GestureKind int

// Gesture kinds.
const (
	GestureMove GestureKind = iota
	GestureResize
	GestureCreate
)

// String returns the lowercase name of the gesture kind.
func (k GestureKind) String() string {
	switch k {
	case GestureMove:
		return "move"
	case GestureResize:
		return "resize"
	case GestureCreate:
		return "create"
	}
	return "unknown"
}

// Gesture is the live visual state of an active gesture, pulled by the
// renderer after each event. Box is the proposed rectangle: for Move and
// Resize it is the last valid configuration (the origin until a first legal
// tick arrives); for Create it is the raw preview, which always tracks the
// pointer. Colliding reports whether the current pointer position proposes
// an illegal rectangle, so the renderer can flash the box or restyle the
// preview.
type Gesture struct {
	Kind      GestureKind
	Box       grid.Box
	Colliding bool
}
