package state

import "testing"

func TestViewerStartsClosed(t *testing.T) {
	v := NewViewer()
	if v.IsOpen(10) {
		t.Error("Expected new viewer to be closed")
	}
}

func TestViewerOpenAndClose(t *testing.T) {
	v := NewViewer()
	v.Open(3)
	if !v.IsOpen(10) {
		t.Error("Expected viewer to be open")
	}
	if v.Index() != 3 {
		t.Errorf("Index = %d, want 3", v.Index())
	}

	v.Close()
	if v.IsOpen(10) {
		t.Error("Expected viewer to be closed after Close")
	}
}

func TestViewerOpenIgnoresNegativeIndex(t *testing.T) {
	v := NewViewer()
	v.Open(-2)
	if v.IsOpen(10) {
		t.Error("Expected viewer to stay closed for negative index")
	}
}

func TestViewerNextAdvancesAndClamps(t *testing.T) {
	v := NewViewer()
	v.Open(0)

	v.Next(25)
	if v.Index() != 1 {
		t.Errorf("Index = %d, want 1", v.Index())
	}

	v.Open(24)
	v.Next(25)
	if v.Index() != 24 {
		t.Errorf("Expected index to stay at last post, got %d", v.Index())
	}
}

func TestViewerNextSignalsLookahead(t *testing.T) {
	v := NewViewer()

	v.Open(10)
	if v.Next(25) {
		t.Error("Expected no lookahead far from the end")
	}

	// The window is checked against the position before advancing.
	v.Open(20)
	if v.Next(25) {
		t.Error("Expected no lookahead just outside the window")
	}

	v.Open(21)
	if !v.Next(25) {
		t.Error("Expected lookahead near the end")
	}

	v.Open(24)
	if !v.Next(25) {
		t.Error("Expected lookahead at the last post")
	}
}

func TestViewerPreviousClosesAtFirstPost(t *testing.T) {
	v := NewViewer()
	v.Open(1)

	if v.Previous() {
		t.Error("Expected viewer to stay open stepping back to the first post")
	}
	if v.Index() != 0 {
		t.Errorf("Index = %d, want 0", v.Index())
	}

	if !v.Previous() {
		t.Error("Expected viewer to close stepping back from the first post")
	}
	if v.IsOpen(25) {
		t.Error("Expected viewer to be closed")
	}
}

func TestViewerIsOpenBeyondLoadedPosts(t *testing.T) {
	v := NewViewer()
	v.Open(30)
	if v.IsOpen(25) {
		t.Error("Expected viewer index beyond loaded posts to read as closed")
	}
}
