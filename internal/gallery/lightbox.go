// Package gallery implements the image lightbox viewer state machine for
// project detail pages. It is the reference model of the client-side viewer:
// pure state logic with no I/O, pinned down by its test suite so viewer
// behavior (navigation, zoom, pan, keys) has a single definition.
package gallery

// State identifies the lightbox mode.
type State int

const (
	StateClosed State = iota
	StateIdle
	StateZoomed
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateIdle:
		return "idle"
	case StateZoomed:
		return "zoomed"
	case StateDragging:
		return "dragging"
	}
	return "unknown"
}

const (
	MinScale    = 0.5
	MaxScale    = 4.0
	ZoomStep    = 0.25
	WheelStep   = 0.1
	ToggleScale = 2.0
)

// Offset is the pan translation of a zoomed image, in pixels.
type Offset struct {
	X float64
	Y float64
}

// Lightbox is the viewer over an ordered image list. All transitions are
// synchronous; invalid transitions (navigating while closed, dragging while
// not zoomed) are no-ops.
type Lightbox struct {
	images []string

	state  State
	index  int
	scale  float64
	offset Offset

	dragStart  Offset
	dragOrigin Offset
}

// New creates a closed lightbox over the given images.
func New(images []string) *Lightbox {
	return &Lightbox{
		images: images,
		state:  StateClosed,
		scale:  1.0,
	}
}

func (l *Lightbox) State() State     { return l.state }
func (l *Lightbox) IsOpen() bool     { return l.state != StateClosed }
func (l *Lightbox) Index() int       { return l.index }
func (l *Lightbox) Scale() float64   { return l.scale }
func (l *Lightbox) Offset() Offset   { return l.offset }
func (l *Lightbox) Len() int         { return len(l.images) }

// Current returns the URL of the displayed image, or "" when closed or empty.
func (l *Lightbox) Current() string {
	if l.state == StateClosed || len(l.images) == 0 {
		return ""
	}
	return l.images[l.index]
}

// Open shows the image at index. Out-of-range indexes are a no-op, as is
// opening over an empty image list.
func (l *Lightbox) Open(index int) {
	if index < 0 || index >= len(l.images) {
		return
	}
	l.index = index
	l.state = StateIdle
	l.resetView()
}

// Close dismisses the viewer and discards zoom/pan state.
func (l *Lightbox) Close() {
	l.state = StateClosed
	l.resetView()
}

// Next advances to the following image, wrapping past the end.
func (l *Lightbox) Next() {
	if l.state == StateClosed || len(l.images) == 0 {
		return
	}
	l.setIndex((l.index + 1) % len(l.images))
}

// Prev moves to the preceding image, wrapping before the start.
func (l *Lightbox) Prev() {
	if l.state == StateClosed || len(l.images) == 0 {
		return
	}
	l.setIndex((l.index - 1 + len(l.images)) % len(l.images))
}

// JumpTo selects an image directly (thumbnail strip click).
func (l *Lightbox) JumpTo(index int) {
	if l.state == StateClosed || index < 0 || index >= len(l.images) {
		return
	}
	l.setIndex(index)
}

// setIndex changes the displayed image. Any index change resets the view.
func (l *Lightbox) setIndex(index int) {
	if index == l.index {
		return
	}
	l.index = index
	l.state = StateIdle
	l.resetView()
}

func (l *Lightbox) ZoomIn()  { l.zoomBy(ZoomStep) }
func (l *Lightbox) ZoomOut() { l.zoomBy(-ZoomStep) }

// ZoomWheel applies one scroll-wheel notch; positive delta zooms in.
func (l *Lightbox) ZoomWheel(delta float64) {
	if delta > 0 {
		l.zoomBy(WheelStep)
	} else if delta < 0 {
		l.zoomBy(-WheelStep)
	}
}

func (l *Lightbox) zoomBy(step float64) {
	if l.state == StateClosed {
		return
	}
	l.setScale(l.scale + step)
}

// setScale clamps to [MinScale, MaxScale] and keeps state consistent with the
// resulting scale. Pan offset survives zooming, but dropping back to scale 1
// returns to idle with the image recentered.
func (l *Lightbox) setScale(scale float64) {
	if scale < MinScale {
		scale = MinScale
	}
	if scale > MaxScale {
		scale = MaxScale
	}
	l.scale = scale
	if scale > 1.0 {
		if l.state == StateIdle {
			l.state = StateZoomed
		}
	} else {
		l.state = StateIdle
		l.offset = Offset{}
	}
}

// Reset restores scale 1.0 and centers the image.
func (l *Lightbox) Reset() {
	if l.state == StateClosed {
		return
	}
	l.state = StateIdle
	l.resetView()
}

// ToggleZoom implements double-click: zoom to ToggleScale from the resting
// scale, reset from anywhere else.
func (l *Lightbox) ToggleZoom() {
	if l.state == StateClosed {
		return
	}
	if l.scale == 1.0 {
		l.setScale(ToggleScale)
	} else {
		l.Reset()
	}
}

// StartDrag begins panning from the given pointer position. Dragging is only
// permitted while zoomed in past the resting scale.
func (l *Lightbox) StartDrag(x, y float64) {
	if l.state != StateZoomed || l.scale <= 1.0 {
		return
	}
	l.state = StateDragging
	l.dragStart = Offset{X: x, Y: y}
	l.dragOrigin = l.offset
}

// DragTo pans the image to follow the pointer.
func (l *Lightbox) DragTo(x, y float64) {
	if l.state != StateDragging {
		return
	}
	l.offset = Offset{
		X: l.dragOrigin.X + (x - l.dragStart.X),
		Y: l.dragOrigin.Y + (y - l.dragStart.Y),
	}
}

// EndDrag finishes a pan gesture, keeping the current offset.
func (l *Lightbox) EndDrag() {
	if l.state != StateDragging {
		return
	}
	l.state = StateZoomed
}

// HandleKey processes a keyboard event. Keys are ignored while closed, which
// models the client detaching its key listener when the viewer unmounts.
// Returns true when the key was consumed.
func (l *Lightbox) HandleKey(key string) bool {
	if l.state == StateClosed {
		return false
	}
	switch key {
	case "Escape":
		l.Close()
	case "ArrowRight":
		l.Next()
	case "ArrowLeft":
		l.Prev()
	case "+", "=":
		l.ZoomIn()
	case "-":
		l.ZoomOut()
	case "0":
		l.Reset()
	default:
		return false
	}
	return true
}

func (l *Lightbox) resetView() {
	l.scale = 1.0
	l.offset = Offset{}
}
