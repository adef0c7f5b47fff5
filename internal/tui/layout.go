package tui

const (
	minWidth  = 80
	minHeight = 24

	searchHeight  = 3
	infoHeight    = 7
	habitatHeight = 8
)

// layout is the geometry of the monster screen for one terminal size. Every
// height includes the panel border.
type layout struct {
	body int // height above the status bar

	listWidth    int
	listHeight   int
	profileWidth int

	leftWidth    int
	nameHeight   int
	descHeight   int
	rightWidth   int
	habitatWidth int
	questWidth   int
	damageWidth  int
	ailmentWidth int
	tablesHeight int
	damageHeight int
	dropsHeight  int
}

func newLayout(width, height int) layout {
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}

	var l layout
	l.body = height - 1

	l.listWidth = max(width/5, 24)
	l.listHeight = l.body - searchHeight
	l.profileWidth = width - l.listWidth

	l.leftWidth = l.profileWidth * 2 / 5
	l.nameHeight = max(l.body*2/5, 6)
	l.descHeight = l.body - l.nameHeight

	l.rightWidth = l.profileWidth - l.leftWidth
	l.habitatWidth = l.rightWidth / 2
	l.questWidth = l.rightWidth - l.habitatWidth

	l.tablesHeight = l.body - infoHeight - habitatHeight
	l.damageHeight = l.tablesHeight / 2
	l.dropsHeight = l.tablesHeight - l.damageHeight
	l.ailmentWidth = max(l.rightWidth*2/5, 22)
	l.damageWidth = l.rightWidth - l.ailmentWidth

	return l
}

// inner returns the content height of a panel of the given outer height.
func inner(height int) int {
	return max(height-2, 0)
}

// Rows shown by each scrolling table, below its column header.
func (l layout) questRows() int  { return inner(habitatHeight) }
func (l layout) damageRows() int { return max(inner(l.damageHeight)-1, 1) }
func (l layout) dropRows() int   { return max(inner(l.dropsHeight)-1, 1) }
func (l layout) listRows() int   { return inner(l.listHeight) }

// descLines is the description area inside its panel.
func (l layout) descLines() int { return inner(l.descHeight) }
func (l layout) descWidth() int { return l.leftWidth - 4 }
