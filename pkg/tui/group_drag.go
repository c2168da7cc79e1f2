package tui

// dragThreshold is how many cells of horizontal travel separate a click
// from a drag gesture.
const dragThreshold = 2

// DragState tracks one tab-drag gesture: idle until a press lands on a
// tab, dragging while the button is down, and resolved on release. The
// tab's visual offset is cumulative horizontal travel from the press
// point; it resets to zero on release no matter how the gesture ends.
type DragState struct {
	active bool
	source int
	startX int
	dx     int
	moved  bool
}

// Start arms a gesture on the tab at index source.
func (d *DragState) Start(source, x int) {
	d.active = true
	d.source = source
	d.startX = x
	d.dx = 0
	d.moved = false
}

// Move accumulates horizontal travel. The gesture only counts as a drag
// once the travel passes the click threshold.
func (d *DragState) Move(x int) {
	if !d.active {
		return
	}
	d.dx = x - d.startX
	if d.dx >= dragThreshold || d.dx <= -dragThreshold {
		d.moved = true
	}
}

// Release ends the gesture and resets the visual offset. It reports the
// source index and whether the gesture was a drag rather than a click.
func (d *DragState) Release() (source int, wasDrag bool) {
	source, wasDrag = d.source, d.active && d.moved
	d.active = false
	d.dx = 0
	d.moved = false
	return source, wasDrag
}

// Cancel abandons the gesture without resolving it.
func (d *DragState) Cancel() {
	d.active = false
	d.dx = 0
	d.moved = false
}

func (d *DragState) Active() bool {
	return d.active
}

func (d *DragState) Dragging() bool {
	return d.active && d.moved
}

func (d *DragState) Source() int {
	return d.source
}

func (d *DragState) Offset() int {
	return d.dx
}
