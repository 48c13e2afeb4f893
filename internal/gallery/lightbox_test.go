package gallery

import "testing"

func newOpen(t *testing.T, n int) *Lightbox {
	t.Helper()
	images := make([]string, n)
	for i := range images {
		images[i] = "/uploads/img" + string(rune('a'+i)) + ".jpg"
	}
	lb := New(images)
	lb.Open(0)
	return lb
}

func TestOpenClose(t *testing.T) {
	lb := newOpen(t, 3)

	if !lb.IsOpen() {
		t.Fatal("lightbox should be open")
	}
	if lb.State() != StateIdle {
		t.Errorf("expected idle state, got %s", lb.State())
	}
	if lb.Current() == "" {
		t.Error("current image should not be empty while open")
	}

	lb.Close()
	if lb.IsOpen() {
		t.Error("lightbox should be closed")
	}
	if lb.Current() != "" {
		t.Error("current image should be empty while closed")
	}
}

func TestOpenInvalidIndex(t *testing.T) {
	lb := New([]string{"/uploads/a.jpg"})

	lb.Open(-1)
	if lb.IsOpen() {
		t.Error("open with negative index should be a no-op")
	}

	lb.Open(5)
	if lb.IsOpen() {
		t.Error("open past the end should be a no-op")
	}

	empty := New(nil)
	empty.Open(0)
	if empty.IsOpen() {
		t.Error("open over empty image list should be a no-op")
	}
}

func TestNavigationWrapsAround(t *testing.T) {
	lb := newOpen(t, 3)

	lb.Next()
	lb.Next()
	if lb.Index() != 2 {
		t.Fatalf("expected index 2, got %d", lb.Index())
	}
	lb.Next()
	if lb.Index() != 0 {
		t.Errorf("next past the end should wrap to 0, got %d", lb.Index())
	}

	lb.Prev()
	if lb.Index() != 2 {
		t.Errorf("prev before the start should wrap to last, got %d", lb.Index())
	}

	// full cycle in each direction returns to the origin
	for i := 0; i < 3; i++ {
		lb.Next()
	}
	if lb.Index() != 2 {
		t.Errorf("three nexts over three images should return to start, got %d", lb.Index())
	}
}

func TestNavigationIgnoredWhileClosed(t *testing.T) {
	lb := New([]string{"/uploads/a.jpg", "/uploads/b.jpg"})

	lb.Next()
	lb.Prev()
	lb.JumpTo(1)
	if lb.Index() != 0 {
		t.Errorf("navigation while closed should be a no-op, index moved to %d", lb.Index())
	}
}

func TestJumpTo(t *testing.T) {
	lb := newOpen(t, 4)

	lb.JumpTo(3)
	if lb.Index() != 3 {
		t.Errorf("expected index 3, got %d", lb.Index())
	}

	lb.JumpTo(99)
	if lb.Index() != 3 {
		t.Errorf("out-of-range jump should be a no-op, got %d", lb.Index())
	}
}

func TestZoomClamped(t *testing.T) {
	lb := newOpen(t, 2)

	for i := 0; i < 50; i++ {
		lb.ZoomIn()
	}
	if lb.Scale() != MaxScale {
		t.Errorf("expected scale clamped to %v, got %v", MaxScale, lb.Scale())
	}

	for i := 0; i < 50; i++ {
		lb.ZoomOut()
	}
	if lb.Scale() != MinScale {
		t.Errorf("expected scale clamped to %v, got %v", MinScale, lb.Scale())
	}

	for i := 0; i < 100; i++ {
		lb.ZoomWheel(1)
	}
	if lb.Scale() != MaxScale {
		t.Errorf("wheel zoom should clamp to %v, got %v", MaxScale, lb.Scale())
	}
	for i := 0; i < 100; i++ {
		lb.ZoomWheel(-1)
	}
	if lb.Scale() != MinScale {
		t.Errorf("wheel zoom should clamp to %v, got %v", MinScale, lb.Scale())
	}
}

func TestZoomStateTransitions(t *testing.T) {
	lb := newOpen(t, 2)

	lb.ZoomIn()
	if lb.State() != StateZoomed {
		t.Errorf("expected zoomed after zoom in, got %s", lb.State())
	}
	if lb.Scale() != 1.25 {
		t.Errorf("expected scale 1.25, got %v", lb.Scale())
	}

	lb.ZoomOut()
	if lb.State() != StateIdle {
		t.Errorf("expected idle when back at scale 1.0, got %s", lb.State())
	}
}

func TestIndexChangeResetsView(t *testing.T) {
	lb := newOpen(t, 3)

	lb.ZoomIn()
	lb.ZoomIn()
	lb.StartDrag(100, 100)
	lb.DragTo(130, 80)
	lb.EndDrag()

	if lb.Scale() == 1.0 || (lb.Offset() == Offset{}) {
		t.Fatal("precondition failed: expected zoomed, panned state")
	}

	lb.Next()
	if lb.Scale() != 1.0 {
		t.Errorf("index change should reset scale, got %v", lb.Scale())
	}
	if lb.Offset() != (Offset{}) {
		t.Errorf("index change should reset offset, got %+v", lb.Offset())
	}
	if lb.State() != StateIdle {
		t.Errorf("expected idle after index change, got %s", lb.State())
	}

	// JumpTo to the same index keeps the view untouched
	lb.ZoomIn()
	lb.JumpTo(lb.Index())
	if lb.Scale() == 1.0 {
		t.Error("jump to current index should not reset the view")
	}
}

func TestToggleZoom(t *testing.T) {
	lb := newOpen(t, 1)

	lb.ToggleZoom()
	if lb.Scale() != ToggleScale {
		t.Errorf("expected scale %v after toggle from rest, got %v", ToggleScale, lb.Scale())
	}
	if lb.State() != StateZoomed {
		t.Errorf("expected zoomed, got %s", lb.State())
	}

	lb.ToggleZoom()
	if lb.Scale() != 1.0 {
		t.Errorf("expected reset after second toggle, got %v", lb.Scale())
	}

	lb.ZoomOut()
	lb.ToggleZoom()
	if lb.Scale() != 1.0 {
		t.Errorf("toggle from zoomed-out should reset, got %v", lb.Scale())
	}
}

func TestDragOnlyWhenZoomed(t *testing.T) {
	lb := newOpen(t, 2)

	lb.StartDrag(10, 10)
	if lb.State() == StateDragging {
		t.Fatal("drag must not start at resting scale")
	}
	lb.DragTo(50, 50)
	if lb.Offset() != (Offset{}) {
		t.Errorf("drag without zoom should not pan, got %+v", lb.Offset())
	}

	lb.ZoomIn()
	lb.StartDrag(10, 10)
	if lb.State() != StateDragging {
		t.Fatal("drag should start while zoomed")
	}
	lb.DragTo(40, 25)
	if got := lb.Offset(); got.X != 30 || got.Y != 15 {
		t.Errorf("expected offset (30,15), got %+v", got)
	}
	lb.EndDrag()
	if lb.State() != StateZoomed {
		t.Errorf("expected zoomed after drag ends, got %s", lb.State())
	}
	if got := lb.Offset(); got.X != 30 || got.Y != 15 {
		t.Errorf("offset should survive drag end, got %+v", got)
	}

	// second drag accumulates from the kept offset
	lb.StartDrag(0, 0)
	lb.DragTo(-10, 5)
	if got := lb.Offset(); got.X != 20 || got.Y != 20 {
		t.Errorf("expected offset (20,20), got %+v", got)
	}
}

func TestZoomOutWhileDraggingRecenters(t *testing.T) {
	lb := newOpen(t, 2)

	lb.ZoomIn()
	lb.StartDrag(0, 0)
	lb.DragTo(10, 10)
	lb.ZoomOut()

	if lb.State() != StateIdle {
		t.Errorf("expected idle at resting scale, got %s", lb.State())
	}
	if lb.Offset() != (Offset{}) {
		t.Errorf("returning to resting scale should recenter, got %+v", lb.Offset())
	}
}

func TestHandleKey(t *testing.T) {
	lb := newOpen(t, 3)

	if !lb.HandleKey("ArrowRight") || lb.Index() != 1 {
		t.Errorf("ArrowRight should advance, index %d", lb.Index())
	}
	if !lb.HandleKey("ArrowLeft") || lb.Index() != 0 {
		t.Errorf("ArrowLeft should go back, index %d", lb.Index())
	}

	lb.HandleKey("+")
	if lb.Scale() != 1.25 {
		t.Errorf("+ should zoom in, scale %v", lb.Scale())
	}
	lb.HandleKey("-")
	if lb.Scale() != 1.0 {
		t.Errorf("- should zoom out, scale %v", lb.Scale())
	}

	lb.HandleKey("=")
	lb.HandleKey("0")
	if lb.Scale() != 1.0 {
		t.Errorf("0 should reset, scale %v", lb.Scale())
	}

	if lb.HandleKey("x") {
		t.Error("unbound key should not be consumed")
	}

	if !lb.HandleKey("Escape") || lb.IsOpen() {
		t.Error("Escape should close the viewer")
	}
	if lb.HandleKey("ArrowRight") {
		t.Error("keys must be ignored while closed")
	}
}
