package crop

import (
	"github.com/quizforge/crop-tool-go/domain/geometry"
)

// MinSelectionSize is the smallest allowed selection edge, in displayed pixels.
const MinSelectionSize = 30.0

// HandleMode identifies which of the nine drag affordances started a drag:
// the move surface, four edges or four corners.
type HandleMode int

const (
	HandleNone HandleMode = iota
	HandleMove
	HandleN
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

func (h HandleMode) String() string {
	switch h {
	case HandleMove:
		return "move"
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
	default:
		return "none"
	}
}

// DragState enumerates the engine's finite states.
type DragState int

const (
	StateIdle DragState = iota
	StateDragging
)

func (s DragState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// DragSession is the immutable snapshot taken at drag start. Every Update is
// recomputed from it, never from the previous frame's output, so dropped or
// reordered move events cannot accumulate drift.
type DragSession struct {
	Mode         HandleMode
	StartPointer geometry.Point
	StartRect    geometry.Rect
}

// RectListener is called with each rectangle the engine publishes.
type RectListener func(geometry.Rect)

// DragEngineContract is the engine surface presenters depend on.
type DragEngineContract interface {
	Begin(mode HandleMode, pointer geometry.Point, rect geometry.Rect)
	Update(pointer geometry.Point) geometry.Rect
	End()
	State() DragState
	AddListener(RectListener)
}
