package state

// Pager shows one page at a time out of a total that changes with the
// selected record.
type Pager struct {
	cursor Cursor
	total  int
}

// Current returns the zero-based page being shown.
func (p Pager) Current() int {
	i, _ := p.cursor.Index()
	return i
}

func (p Pager) Total() int {
	return p.total
}

// SetTotal updates the page count, returning to the first page if the
// current one no longer exists.
func (p *Pager) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.total = n
	if p.Current() >= n {
		p.cursor.Reset()
	}
}

// Next shows the following page, wrapping around.
func (p *Pager) Next() bool {
	p.ensure()
	return p.cursor.Next(p.total)
}

// Prev shows the preceding page, wrapping around.
func (p *Pager) Prev() bool {
	p.ensure()
	return p.cursor.Prev(p.total)
}

func (p *Pager) Reset() {
	p.cursor.Reset()
}

// ensure makes the zero value start on the first page.
func (p *Pager) ensure() {
	if _, ok := p.cursor.Index(); !ok {
		p.cursor.Reset()
	}
}
