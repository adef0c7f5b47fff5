package state

import "github.com/monsterdex/monsterdex/internal/monster"

var emptyRecord = &monster.Record{}

// Browser holds everything the monster screen shows: the filterable list,
// the current record and the state of each profile panel.
type Browser struct {
	List        *List[*monster.Record]
	Description Paragraph
	Habitats    Pager
	Quests      Rows
	Weakness    WeaknessPanel
	Drops       DropPanel

	current *monster.Record
}

func recordName(r *monster.Record) string {
	return r.Name.Name
}

// NewBrowser returns a browser over every record of ds with the first one
// selected.
func NewBrowser(ds *monster.Dataset) *Browser {
	b := &Browser{List: NewList(ds.Records(), recordName)}
	b.refresh()
	b.Reset()
	return b
}

// Current returns the selected record, or an empty record when the filter
// matches nothing. Never nil.
func (b *Browser) Current() *monster.Record {
	return b.current
}

// HasSelection reports whether a real record is selected.
func (b *Browser) HasSelection() bool {
	return b.current != emptyRecord
}

// Next selects the following monster and resets the panels.
func (b *Browser) Next() {
	b.Reset()
	b.List.Next()
	b.refresh()
}

// Prev selects the preceding monster and resets the panels.
func (b *Browser) Prev() {
	b.Reset()
	b.List.Prev()
	b.refresh()
}

// Select moves to index in the current view.
func (b *Browser) Select(index int) {
	b.List.Select(index)
	b.refresh()
}

// SetFilter filters the list by name and resets the panels.
func (b *Browser) SetFilter(query string) {
	b.List.SetFilter(query)
	b.refresh()
	b.Reset()
}

// ClearFilter restores the full list and selects the first monster,
// whether or not a query was active.
func (b *Browser) ClearFilter() {
	b.List.SetFilter("")
	b.refresh()
}

// Reset returns every panel to its initial position. The selected monster
// is not changed.
func (b *Browser) Reset() {
	b.Description.Reset()
	b.Habitats.Reset()
	b.Quests.Reset()
	b.Weakness.Reset()
	b.Drops.Reset()
}

// refresh points the panels at the selected record and recomputes every
// length they wrap around.
func (b *Browser) refresh() {
	b.current = emptyRecord
	if rec, ok := b.List.Selected(); ok && rec != nil {
		b.current = rec
	}
	b.Habitats.SetTotal(len(b.current.Habitats))
	b.Quests.SetCount(len(b.current.Quests))
	b.Weakness.Rows.SetCount(len(b.current.Weaknesses.Damage))
	b.Drops.SetCounts(b.current.Drops)
}

// FilterRecords returns the records of ds the monster list would show for
// query, in dataset order.
func FilterRecords(ds *monster.Dataset, query string) []*monster.Record {
	l := NewList(ds.Records(), recordName)
	l.SetFilter(query)
	return l.Items()
}
