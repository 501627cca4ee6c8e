package logic

// Navigator handles selection and viewport management for a flat list.
// Scroll indicators take one line each and are accounted for in the
// visible window.
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// UpdateState loads the navigator with the current model state and clamps it
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
	n.clamp()
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clamp()
	return n.selectedIndex, n.viewportOffset
}

// MoveUp moves the selection up by one
func (n *Navigator) MoveUp() (int, int) {
	return n.SetSelectedIndex(n.selectedIndex - 1)
}

// MoveDown moves the selection down by one
func (n *Navigator) MoveDown() (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + 1)
}

// PageUp moves the selection up by one viewport
func (n *Navigator) PageUp() (int, int) {
	return n.SetSelectedIndex(n.selectedIndex - n.pageSize())
}

// PageDown moves the selection down by one viewport
func (n *Navigator) PageDown() (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + n.pageSize())
}

// VisibleRange returns the half-open range of items in the viewport
func (n *Navigator) VisibleRange() (start, end int) {
	return n.window(n.viewportOffset)
}

// IsVisible reports whether the item at index is inside the viewport
func (n *Navigator) IsVisible(index int) bool {
	start, end := n.VisibleRange()
	return index >= start && index < end
}

// LastVisible reports whether the final item of the list is in the viewport
func (n *Navigator) LastVisible() bool {
	return n.totalItems > 0 && n.IsVisible(n.totalItems-1)
}

func (n *Navigator) pageSize() int {
	start, end := n.window(n.viewportOffset)
	if end-start < 1 {
		return 1
	}
	return end - start
}

// window computes the items shown for a given offset
func (n *Navigator) window(offset int) (int, int) {
	height := n.viewportHeight
	if offset > 0 {
		height-- // top indicator
	}
	if offset+height < n.totalItems {
		height-- // bottom indicator
	}
	if height < 1 {
		height = 1
	}
	end := offset + height
	if end > n.totalItems {
		end = n.totalItems
	}
	return offset, end
}

// clamp keeps selection in range and scrolls so it stays visible
func (n *Navigator) clamp() {
	if n.viewportHeight < 1 {
		n.viewportHeight = 1
	}
	if n.totalItems == 0 {
		n.selectedIndex = 0
		n.viewportOffset = 0
		return
	}
	if n.selectedIndex >= n.totalItems {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	if n.viewportOffset > n.selectedIndex {
		n.viewportOffset = n.selectedIndex
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}

	// If selected item is below the visible window, scroll down
	for {
		_, end := n.window(n.viewportOffset)
		if n.selectedIndex < end {
			break
		}
		n.viewportOffset++
	}

	// Pull the window back up when rows were removed below it
	for n.viewportOffset > 0 {
		start, end := n.window(n.viewportOffset - 1)
		if end < n.totalItems || n.selectedIndex < start || n.selectedIndex >= end {
			break
		}
		n.viewportOffset--
	}
}
