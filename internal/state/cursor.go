package state

// Cursor is an optional position in an ordered collection whose length is
// supplied by the caller on every move. It also tracks a scroll offset that
// keeps the position inside VisibleRows.
type Cursor struct {
	index    int
	selected bool

	Offset      int // First visible item index
	VisibleRows int // Number of visible rows (0 means unknown)
}

// Index returns the selected index, or false when nothing is selected.
func (c Cursor) Index() (int, bool) {
	return c.index, c.selected
}

// Selected reports whether index is the current position.
func (c Cursor) Selected(index int) bool {
	return c.selected && c.index == index
}

// Select moves to index unconditionally, adjusting offset to keep it visible.
func (c *Cursor) Select(index int) {
	c.index = index
	c.selected = true
	c.follow()
}

// Clear removes the selection.
func (c *Cursor) Clear() {
	c.index = 0
	c.selected = false
	c.Offset = 0
}

// Reset selects the first item and scrolls back to the top.
func (c *Cursor) Reset() {
	c.Offset = 0
	c.Select(0)
}

// Next advances by one, wrapping from the last item to the first. With no
// selection it selects the first item. Returns false if length is zero.
func (c *Cursor) Next(length int) bool {
	if length <= 0 {
		return false
	}
	next := 0
	if c.selected && c.index >= 0 && c.index < length-1 {
		next = c.index + 1
	}
	c.Select(next)
	return true
}

// Prev moves back by one, wrapping from the first item to the last. With no
// selection it selects the last item. Returns false if length is zero.
func (c *Cursor) Prev(length int) bool {
	if length <= 0 {
		return false
	}
	prev := length - 1
	if c.selected && c.index > 0 && c.index < length {
		prev = c.index - 1
	}
	c.Select(prev)
	return true
}

// SetVisibleRows records how many rows the renderer can show and scrolls so
// the selection stays visible.
func (c *Cursor) SetVisibleRows(rows int) {
	if rows < 0 {
		rows = 0
	}
	c.VisibleRows = rows
	c.follow()
}

// VisibleRange returns the start (inclusive) and end (exclusive) indices
// of items that should be rendered.
func (c Cursor) VisibleRange(length int) (start, end int) {
	if c.VisibleRows <= 0 {
		return 0, length
	}
	start = c.Offset
	end = c.Offset + c.VisibleRows
	if end > length {
		end = length
	}
	if start > end {
		start = end
	}
	return start, end
}

func (c *Cursor) follow() {
	if c.index < c.Offset {
		c.Offset = c.index
	}
	if c.VisibleRows > 0 && c.index >= c.Offset+c.VisibleRows {
		c.Offset = c.index - c.VisibleRows + 1
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
}
