package state

// Paragraph is the vertical scroll position of a block of wrapped text.
// The renderer reports the content height; the offset never exceeds
// height-2.
type Paragraph struct {
	Offset int
	height int
}

func (p *Paragraph) SetHeight(h int) {
	if h < 0 {
		h = 0
	}
	p.height = h
}

func (p Paragraph) Height() int {
	return p.height
}

func (p Paragraph) maxOffset() int {
	if p.height < 2 {
		return 0
	}
	return p.height - 2
}

// ScrollDown moves one line down. Returns false at the bottom.
func (p *Paragraph) ScrollDown() bool {
	if p.Offset >= p.maxOffset() {
		return false
	}
	p.Offset++
	return true
}

// ScrollUp moves one line up. Returns false at the top.
func (p *Paragraph) ScrollUp() bool {
	if p.Offset <= 0 {
		return false
	}
	p.Offset--
	return true
}

func (p *Paragraph) Reset() {
	p.Offset = 0
}

// Clamp pulls the offset back into range after the height shrinks.
func (p *Paragraph) Clamp() {
	if m := p.maxOffset(); p.Offset > m {
		p.Offset = m
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
