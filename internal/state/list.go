package state

import "strings"

// Match reports whether text contains query, ignoring case.
func Match(text, query string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

// List is a selectable, filterable view over a slice it does not own.
type List[T any] struct {
	base     []T
	filtered []T
	query    string
	text     func(T) string

	Cursor Cursor
}

// NewList returns a list over items, searchable by text, with the first item
// selected when there is one.
func NewList[T any](items []T, text func(T) string) *List[T] {
	l := &List[T]{base: items, text: text}
	l.reselect()
	return l
}

// Items returns the current view: the filtered subsequence when a query is
// active, otherwise the base collection.
func (l *List[T]) Items() []T {
	if l.query == "" {
		return l.base
	}
	return l.filtered
}

func (l *List[T]) Len() int {
	return len(l.Items())
}

// Query returns the active filter, empty when unfiltered.
func (l *List[T]) Query() string {
	return l.query
}

// Selected returns the item under the cursor.
func (l *List[T]) Selected() (T, bool) {
	var zero T
	i, ok := l.Cursor.Index()
	items := l.Items()
	if !ok || i < 0 || i >= len(items) {
		return zero, false
	}
	return items[i], true
}

// Next selects the following item, wrapping around. No-op on an empty view.
func (l *List[T]) Next() bool {
	return l.Cursor.Next(l.Len())
}

// Prev selects the preceding item, wrapping around. No-op on an empty view.
func (l *List[T]) Prev() bool {
	return l.Cursor.Prev(l.Len())
}

// Select sets the cursor to index without bounds checking.
func (l *List[T]) Select(index int) {
	l.Cursor.Select(index)
}

// SetFilter replaces the view with items whose text contains query,
// preserving order, then selects the first item (or nothing if the view is
// empty). An empty query restores the base collection.
func (l *List[T]) SetFilter(query string) {
	l.query = query
	l.filtered = nil
	if query != "" {
		q := strings.ToLower(query)
		for _, item := range l.base {
			if strings.Contains(strings.ToLower(l.text(item)), q) {
				l.filtered = append(l.filtered, item)
			}
		}
	}
	l.reselect()
}

// ClearFilter drops an active query. Returns false if there was none.
func (l *List[T]) ClearFilter() bool {
	if l.query == "" {
		return false
	}
	l.SetFilter("")
	return true
}

func (l *List[T]) reselect() {
	if l.Len() == 0 {
		l.Cursor.Clear()
		return
	}
	l.Cursor.Reset()
}
