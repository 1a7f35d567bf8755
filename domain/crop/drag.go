package crop

import (
	"log/slog"

	"github.com/quizforge/crop-tool-go/domain/geometry"
)

// DragEngine turns pointer movement into clamped selection rectangles.
//
// All methods run on the UI event thread; the engine is deliberately
// synchronous and holds no goroutines. Begin snapshots the session, Update is
// a pure function of that snapshot plus the current pointer, End discards the
// session. A Begin while dragging simply replaces the session.
type DragEngine struct {
	logger    *slog.Logger
	bounds    geometry.Size
	state     DragState
	session   DragSession
	last      geometry.Rect
	listeners []RectListener
}

// NewDragEngine returns an idle engine clamping against bounds.
func NewDragEngine(bounds geometry.Size, logger *slog.Logger) *DragEngine {
	return &DragEngine{logger: logger, bounds: bounds}
}

// SetBounds replaces the clamp domain, used when a new image is loaded.
func (e *DragEngine) SetBounds(bounds geometry.Size) {
	if e == nil {
		return
	}
	e.bounds = bounds
}

// AddListener registers a callback invoked with every published rectangle.
func (e *DragEngine) AddListener(l RectListener) {
	if e == nil || l == nil {
		return
	}
	e.listeners = append(e.listeners, l)
}

// State returns the current engine state.
func (e *DragEngine) State() DragState {
	if e == nil {
		return StateIdle
	}
	return e.state
}

// Begin starts a drag in the given mode from pointer over rect.
func (e *DragEngine) Begin(mode HandleMode, pointer geometry.Point, rect geometry.Rect) {
	if e == nil || mode == HandleNone {
		return
	}
	e.session = DragSession{Mode: mode, StartPointer: pointer, StartRect: rect}
	e.last = rect
	e.transition(StateDragging)
}

// Update recomputes the rectangle for the current pointer position, publishes
// it to listeners and returns it. Outside a drag it returns the last known
// rectangle unchanged.
func (e *DragEngine) Update(pointer geometry.Point) geometry.Rect {
	if e == nil {
		return geometry.Rect{}
	}
	if e.state != StateDragging {
		return e.last
	}
	r := ApplyDrag(e.session, pointer, e.bounds)
	e.last = r
	for _, l := range e.listeners {
		l(r)
	}
	return r
}

// End finishes the drag and discards the session. The last published
// rectangle remains valid, so abandoning a drag mid-session is safe.
func (e *DragEngine) End() {
	if e == nil || e.state == StateIdle {
		return
	}
	e.session = DragSession{}
	e.transition(StateIdle)
}

func (e *DragEngine) transition(next DragState) {
	prev := e.state
	if prev == next {
		return
	}
	e.state = next
	if e.logger != nil {
		e.logger.Debug("drag state transition", "from", prev.String(), "to", next.String(), "mode", e.session.Mode.String())
	}
}

// ApplyDrag computes the clamped rectangle for a pointer position given a
// session snapshot. It is a pure function and the single source of the drag
// math for all nine modes.
func ApplyDrag(s DragSession, pointer geometry.Point, bounds geometry.Size) geometry.Rect {
	d := pointer.Sub(s.StartPointer)
	switch s.Mode {
	case HandleMove:
		return moveRect(s.StartRect, d, bounds)
	case HandleN:
		return resizeNorth(s.StartRect, d.Y)
	case HandleS:
		return resizeSouth(s.StartRect, d.Y, bounds)
	case HandleE:
		return resizeEast(s.StartRect, d.X, bounds)
	case HandleW:
		return resizeWest(s.StartRect, d.X)
	case HandleNE:
		r := resizeNorth(s.StartRect, d.Y)
		return resizeEast(r, d.X, bounds)
	case HandleNW:
		r := resizeNorth(s.StartRect, d.Y)
		return resizeWest(r, d.X)
	case HandleSE:
		r := resizeSouth(s.StartRect, d.Y, bounds)
		return resizeEast(r, d.X, bounds)
	case HandleSW:
		r := resizeSouth(s.StartRect, d.Y, bounds)
		return resizeWest(r, d.X)
	default:
		return s.StartRect
	}
}

// moveRect translates without resizing; only the position is clamped.
func moveRect(r geometry.Rect, d geometry.Point, bounds geometry.Size) geometry.Rect {
	r.X = geometry.Clamp(r.X+d.X, 0, bounds.Width-r.Width)
	r.Y = geometry.Clamp(r.Y+d.Y, 0, bounds.Height-r.Height)
	return r
}

// resizeEast grows or shrinks the right edge; the left edge is the anchor.
func resizeEast(r geometry.Rect, dx float64, bounds geometry.Size) geometry.Rect {
	r.Width = geometry.Clamp(r.Width+dx, MinSelectionSize, bounds.Width-r.X)
	return r
}

// resizeWest moves the left edge against the fixed right edge. The width is
// clamped first and the position derived from the anchor, so reversing
// direction at a boundary cannot make the rectangle jump.
func resizeWest(r geometry.Rect, dx float64) geometry.Rect {
	right := r.Right()
	r.Width = geometry.Clamp(r.Width-dx, MinSelectionSize, right)
	r.X = right - r.Width
	return r
}

// resizeSouth grows or shrinks the bottom edge; the top edge is the anchor.
func resizeSouth(r geometry.Rect, dy float64, bounds geometry.Size) geometry.Rect {
	r.Height = geometry.Clamp(r.Height+dy, MinSelectionSize, bounds.Height-r.Y)
	return r
}

// resizeNorth moves the top edge against the fixed bottom edge.
func resizeNorth(r geometry.Rect, dy float64) geometry.Rect {
	bottom := r.Bottom()
	r.Height = geometry.Clamp(r.Height-dy, MinSelectionSize, bottom)
	r.Y = bottom - r.Height
	return r
}

// Ensure contract satisfaction
var _ DragEngineContract = (*DragEngine)(nil)
