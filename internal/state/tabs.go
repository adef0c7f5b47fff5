package state

import "github.com/monsterdex/monsterdex/internal/monster"

// Rows is a cursor over a table whose row count is cached per record.
type Rows struct {
	cursor Cursor
	count  int
}

func (r Rows) Count() int {
	return r.count
}

// SetCount updates the cached row count. The selection is left alone;
// callers reset it when the table changes meaning.
func (r *Rows) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	r.count = n
}

// Index returns the selected row, or false when none is selected.
func (r Rows) Index() (int, bool) {
	return r.cursor.Index()
}

// Selected reports whether row i is highlighted.
func (r Rows) Selected(i int) bool {
	return r.cursor.Selected(i)
}

// Next selects the following row, wrapping. No-op on an empty table.
func (r *Rows) Next() bool {
	return r.cursor.Next(r.count)
}

// Prev selects the preceding row, wrapping. No-op on an empty table.
func (r *Rows) Prev() bool {
	return r.cursor.Prev(r.count)
}

// Reset selects the first row and scrolls to the top.
func (r *Rows) Reset() {
	r.cursor.Reset()
}

func (r *Rows) SetVisibleRows(n int) {
	r.cursor.SetVisibleRows(n)
}

func (r Rows) VisibleRange() (start, end int) {
	return r.cursor.VisibleRange(r.count)
}

// WeaknessTab selects the hitzone view.
type WeaknessTab uint8

const (
	TabWeapon WeaknessTab = iota
	TabElement
)

func (t WeaknessTab) Next() WeaknessTab { return (t + 1) % 2 }

func (t WeaknessTab) String() string {
	if t == TabElement {
		return "Element"
	}
	return "Weapon"
}

// AilmentTab selects between ailment and item effectiveness.
type AilmentTab uint8

const (
	TabAilment AilmentTab = iota
	TabItem
)

func (t AilmentTab) Next() AilmentTab { return (t + 1) % 2 }

func (t AilmentTab) String() string {
	if t == TabItem {
		return "Item"
	}
	return "Ailment"
}

// WeaknessPanel is the state of the weakness panel: which hitzone and
// ailment tabs are shown and which damage row is highlighted.
type WeaknessPanel struct {
	Tab     WeaknessTab
	Ailment AilmentTab
	Rows    Rows
}

// ToggleTab switches weapon/element and returns to the first row.
func (w *WeaknessPanel) ToggleTab() {
	w.Tab = w.Tab.Next()
	w.Rows.Reset()
}

// ToggleAilment switches ailment/item and returns to the first row.
func (w *WeaknessPanel) ToggleAilment() {
	w.Ailment = w.Ailment.Next()
	w.Rows.Reset()
}

func (w *WeaknessPanel) Reset() {
	w.Tab = TabWeapon
	w.Ailment = TabAilment
	w.Rows.Reset()
}

// DropPanel is the state of the material drop panel. The row count depends
// on the active rank and source, so all eight counts are cached.
type DropPanel struct {
	Rank   monster.Rank
	Source monster.Source
	Rows   Rows
	counts [monster.RankCount][monster.SourceCount]int
}

// SetCounts caches the row counts of d and applies the active one.
func (p *DropPanel) SetCounts(d monster.Drops) {
	p.counts = d.Counts()
	p.apply()
}

// Count returns the cached row count for a rank and source.
func (p DropPanel) Count(r monster.Rank, s monster.Source) int {
	return p.counts[r][s]
}

// ToggleRank switches low/high rank and returns to the first row.
func (p *DropPanel) ToggleRank() {
	p.Rank = p.Rank.Next()
	p.apply()
	p.Rows.Reset()
}

// ToggleSource cycles the drop source and returns to the first row.
func (p *DropPanel) ToggleSource() {
	p.Source = p.Source.Next()
	p.apply()
	p.Rows.Reset()
}

func (p *DropPanel) Reset() {
	p.Rank = monster.LowRank
	p.Source = monster.SourceTarget
	p.apply()
	p.Rows.Reset()
}

func (p *DropPanel) apply() {
	p.Rows.SetCount(p.counts[p.Rank][p.Source])
}
