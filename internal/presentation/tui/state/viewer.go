package state

// LookaheadWindow is how close to the end of the loaded posts the
// viewer may get before the next page should be requested.
const LookaheadWindow = 5

// Viewer tracks which post is open in the full-screen viewer. A
// negative index means the viewer is closed.
type Viewer struct {
	index int
}

// NewViewer returns a closed viewer.
func NewViewer() Viewer {
	return Viewer{index: -1}
}

// Index returns the current post index, or -1 when closed.
func (v *Viewer) Index() int { return v.index }

// IsOpen reports whether the viewer is showing a post within total.
func (v *Viewer) IsOpen(total int) bool {
	return v.index >= 0 && v.index < total
}

// Open jumps the viewer to the given post.
func (v *Viewer) Open(index int) {
	if index < 0 {
		return
	}
	v.index = index
}

// Close dismisses the viewer.
func (v *Viewer) Close() { v.index = -1 }

// Next advances to the following post, staying on the last one when
// the end is reached. It reports whether the cursor was inside the
// lookahead window before advancing, meaning more posts should be
// fetched.
func (v *Viewer) Next(total int) bool {
	if v.index < 0 || total == 0 {
		return false
	}
	prefetch := v.index > total-LookaheadWindow
	if v.index < total-1 {
		v.index++
	}
	return prefetch
}

// Previous steps back one post. Going back from the first post closes
// the viewer; Previous reports whether that happened.
func (v *Viewer) Previous() bool {
	if v.index < 0 {
		return false
	}
	v.index--
	return v.index < 0
}
