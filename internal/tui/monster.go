package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/monsterdex/monsterdex/internal/monster"
	"github.com/monsterdex/monsterdex/internal/state"
)

// renderMonster draws the monster screen: profile on the left and middle,
// search box and list on the right.
func (m Model) renderMonster() string {
	l := newLayout(m.width, m.height)

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderName(l),
		m.renderDescription(l),
	)
	middle := lipgloss.JoinVertical(lipgloss.Left,
		m.renderInfo(l),
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderHabitat(l), m.renderQuests(l)),
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderDamage(l), m.renderAilments(l)),
		m.renderDrops(l),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderSearch(l),
		m.renderList(l),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, middle, right)
}

func (m Model) renderName(l layout) string {
	b := m.app.Browser
	if !b.HasSelection() {
		msg := mutedStyle.Render(fmt.Sprintf("No monster matches %q", b.List.Query()))
		return renderPanel("", "Monster", msg, l.leftWidth, l.nameHeight, false)
	}

	rec := b.Current()
	lines := []string{
		titleStyle.Render(rec.Name.Name) + "  " + idStyle.Render(fmt.Sprintf("#%d", rec.ID)),
		akaStyle.Render(rec.Name.Aka),
		formatElements(rec.Elements),
		"",
	}

	if art, ok := monster.ReadIcon(m.iconsDir, rec); ok {
		art = StripCursorSequences(strings.TrimRight(art, "\n"))
		lines = append(lines, strings.Split(art, "\n")...)
	} else {
		lines = append(lines, mutedStyle.Render("(no icon)"))
	}

	return renderPanel("", "Monster", strings.Join(lines, "\n"), l.leftWidth, l.nameHeight, false)
}

func formatElements(elements []monster.Element) string {
	if len(elements) == 0 {
		return mutedStyle.Render("No element")
	}
	parts := make([]string, 0, len(elements))
	for _, e := range elements {
		parts = append(parts, elementStyle(e).Render(e.String()))
	}
	return strings.Join(parts, mutedStyle.Render(" · "))
}

// descriptionLines wraps the flavor text and abilities of rec to width.
func descriptionLines(rec *monster.Record, width int) []string {
	var lines []string
	if rec.Desc.Original != "" {
		lines = append(lines, WrapLines(rec.Desc.Original, width)...)
	}
	for _, ability := range rec.Desc.Abilities {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, WrapLines("• "+ability, width)...)
	}
	return lines
}

func (m Model) renderDescription(l layout) string {
	b := m.app.Browser
	lines := descriptionLines(b.Current(), l.descWidth())

	// Trailing blank lines let the viewport scroll as far as the paragraph
	// offset goes.
	vp := viewport.New(l.descWidth(), l.descLines())
	vp.SetContent(strings.Join(lines, "\n") + strings.Repeat("\n", l.descLines()))
	vp.SetYOffset(b.Description.Offset)

	title := "Description"
	if b.Description.Height() > 0 {
		title = fmt.Sprintf("Description %d/%d", b.Description.Offset+1, len(lines))
	}
	return renderPanel("J/K", title, vp.View(), l.leftWidth, l.descHeight, false)
}

func (m Model) renderInfo(l layout) string {
	rec := m.app.Browser.Current()
	info := rec.BasicInfo

	row := func(label, value string) string {
		return labelStyle.Render(FitToWidth(label, 14)) + value
	}
	hazard := func(s fmt.Stringer, none bool) string {
		if none {
			return mutedStyle.Render(s.String())
		}
		return s.String()
	}

	effects := make([]string, 0, len(info.StatusEffects))
	for _, e := range info.StatusEffects {
		effects = append(effects, e.String())
	}
	effectText := mutedStyle.Render("None")
	if len(effects) > 0 {
		effectText = strings.Join(effects, ", ")
	}

	lines := []string{
		row("Type", info.Type),
		row("Roar", hazard(info.Roar, info.Roar == monster.RoarNone)),
		row("Wind Pressure", hazard(info.WindPressure, info.WindPressure == monster.WindNone)),
		row("Tremor", hazard(info.Tremor, info.Tremor == monster.TremorNone)),
		row("Status", effectText),
	}
	return renderPanel("", "Basic Info", strings.Join(lines, "\n"), l.rightWidth, infoHeight, false)
}

func (m Model) renderHabitat(l layout) string {
	b := m.app.Browser
	rec := b.Current()

	if b.Habitats.Total() == 0 {
		return renderPanel("h/l", "Habitat", mutedStyle.Render("No habitat data"), l.habitatWidth, habitatHeight, false)
	}

	page := b.Habitats.Current()
	h := rec.Habitats[page]
	lines := []string{
		titleStyle.Render(h.Region),
		labelStyle.Render("Start ") + formatAreas(h.StartingArea),
		labelStyle.Render("Visit ") + formatAreas(h.VisitedArea),
		labelStyle.Render("Rest  ") + strconv.Itoa(int(h.RestingArea)),
	}
	title := fmt.Sprintf("Habitat %d/%d", page+1, b.Habitats.Total())
	return renderPanel("h/l", title, strings.Join(lines, "\n"), l.habitatWidth, habitatHeight, false)
}

func formatAreas(areas []uint8) string {
	if len(areas) == 0 {
		return mutedStyle.Render("-")
	}
	parts := make([]string, len(areas))
	for i, a := range areas {
		parts[i] = strconv.Itoa(int(a))
	}
	return strings.Join(parts, ", ")
}

func (m Model) renderQuests(l layout) string {
	b := m.app.Browser
	rec := b.Current()
	width := l.questWidth - 4

	if b.Quests.Count() == 0 {
		return renderPanel("n/N", "Quests", mutedStyle.Render("No quests"), l.questWidth, habitatHeight, false)
	}

	var lines []string
	start, end := b.Quests.VisibleRange()
	for i := start; i < end; i++ {
		q := rec.Quests[i]
		stars := fmt.Sprintf("%d★", q.Level)
		line := FitToWidth(stars, 4) + FitCellContent(q.Name, width-4)
		if b.Quests.Selected(i) {
			lines = append(lines, selectedStyle.Render(FitToWidth(line, width)))
			continue
		}
		lines = append(lines, questStyle(q.Type).Render(line))
	}

	title := "Quests"
	if i, ok := b.Quests.Index(); ok {
		title = fmt.Sprintf("%s %s", rec.Quests[i].Type, title)
	}
	return renderPanel("n/N", title, strings.Join(lines, "\n"), l.questWidth, habitatHeight, false)
}

// damageColumns returns the header and value extractor for the active
// hitzone tab.
func damageColumns(tab state.WeaknessTab) ([]string, func(monster.DamageRow) []uint8) {
	if tab == state.TabElement {
		return []string{"Fire", "Watr", "Thdr", "Ice", "Drgn"}, func(r monster.DamageRow) []uint8 {
			e := r.Element
			return []uint8{e.Fire, e.Water, e.Thunder, e.Ice, e.Dragon}
		}
	}
	return []string{"Cut", "Blnt", "Ammo"}, func(r monster.DamageRow) []uint8 {
		w := r.Weapon
		return []uint8{w.Cut, w.Blunt, w.Ammo}
	}
}

func (m Model) renderDamage(l layout) string {
	b := m.app.Browser
	rec := b.Current()
	panel := b.Weakness
	width := l.damageWidth - 4
	title := "Weakness · " + panel.Tab.String()

	if panel.Rows.Count() == 0 {
		return renderPanel("4", title, mutedStyle.Render("No hitzone data"), l.damageWidth, l.damageHeight, false)
	}

	headers, values := damageColumns(panel.Tab)
	const cell = 5
	partWidth := max(width-cell*len(headers), 4)

	var header strings.Builder
	header.WriteString(FitToWidth("Part", partWidth))
	for _, h := range headers {
		header.WriteString(FitToWidth(h, cell))
	}
	lines := []string{headerRowStyle.Render(header.String())}

	start, end := panel.Rows.VisibleRange()
	for i := start; i < end; i++ {
		row := rec.Weaknesses.Damage[i]
		var line strings.Builder
		line.WriteString(FitCellContent(row.Part, partWidth))
		for _, v := range values(row) {
			line.WriteString(FitToWidth(strconv.Itoa(int(v)), cell))
		}
		if panel.Rows.Selected(i) {
			lines = append(lines, selectedStyle.Render(FitToWidth(line.String(), width)))
			continue
		}
		lines = append(lines, line.String())
	}

	return renderPanel("4", title, strings.Join(lines, "\n"), l.damageWidth, l.damageHeight, false)
}

func (m Model) renderAilments(l layout) string {
	b := m.app.Browser
	table := b.Current().Weaknesses.Ailments
	tab := b.Weakness.Ailment
	width := l.ailmentWidth - 4
	nameWidth := max(width-4, 4)

	var lines []string
	if tab == state.TabItem {
		for _, e := range table.Items {
			mark := ineffectiveStyle.Render("✗")
			if e.Effective {
				mark = effectiveStyle.Render("✓")
			}
			lines = append(lines, FitCellContent(e.Item.String(), nameWidth)+" "+mark)
		}
	} else {
		for _, e := range table.Status {
			stars := strings.Repeat("★", int(min(e.Effectiveness, 3)))
			lines = append(lines, FitCellContent(e.Ailment.String(), nameWidth)+" "+effectiveStyle.Render(stars))
		}
	}

	return renderPanel("$", tab.String(), strings.Join(lines, "\n"), l.ailmentWidth, l.damageHeight, false)
}

func (m Model) renderDrops(l layout) string {
	b := m.app.Browser
	panel := b.Drops
	drops := b.Current().Drops.Rank(panel.Rank)
	width := l.rightWidth - 4
	title := fmt.Sprintf("%s · %s", panel.Rank, panel.Source)

	if panel.Rows.Count() == 0 {
		return renderPanel("5/%", title, mutedStyle.Render("No drops"), l.rightWidth, l.dropsHeight, false)
	}

	const pct = 5
	materialWidth := max(width*2/5, 10)
	header := FitToWidth("Material", materialWidth) + "Chance"
	lines := []string{headerRowStyle.Render(FitToWidth(header, width))}

	start, end := panel.Rows.VisibleRange()
	for i := start; i < end; i++ {
		row, ok := drops.Row(panel.Source, i)
		if !ok {
			continue
		}
		chances := make([]string, 0, len(row.Chances))
		for _, c := range row.Chances {
			p := FitToWidth(fmt.Sprintf("%d%%", c.Percentage), pct)
			if c.Part != "" {
				p = c.Part + " " + p
			}
			chances = append(chances, p)
		}
		line := FitCellContent(row.Material, materialWidth) + strings.Join(chances, " ")
		if panel.Rows.Selected(i) {
			lines = append(lines, selectedStyle.Render(FitToWidth(line, width)))
			continue
		}
		lines = append(lines, line)
	}

	return renderPanel("5/%", title, strings.Join(lines, "\n"), l.rightWidth, l.dropsHeight, false)
}

func (m Model) renderSearch(l layout) string {
	editing := m.app.Mode == state.ModeEditing
	return renderPanel("/", "Search", m.app.Input.View(), l.listWidth, searchHeight, editing)
}

func (m Model) renderList(l layout) string {
	list := m.app.Browser.List
	items := list.Items()
	width := l.listWidth - 4
	title := fmt.Sprintf("Monsters %d/%d", len(items), m.dataset.Len())

	if len(items) == 0 {
		return renderPanel("", title, mutedStyle.Render("No matches"), l.listWidth, l.listHeight, m.app.Mode == state.ModeNormal)
	}

	var lines []string
	start, end := list.Cursor.VisibleRange(len(items))
	for i := start; i < end; i++ {
		rec := items[i]
		id := FitToWidth(strconv.Itoa(int(rec.ID)), 4)
		dot := elementStyle(rec.PrimaryElement()).Render("●")
		name := FitCellContent(rec.Name.Name, width-6)
		if list.Cursor.Selected(i) {
			lines = append(lines, idSelectedStyle.Render(id)+selectedStyle.Render(FitToWidth(name, width-5))+dot)
			continue
		}
		lines = append(lines, idStyle.Render(id)+name+" "+dot)
	}

	return renderPanel("", title, strings.Join(lines, "\n"), l.listWidth, l.listHeight, m.app.Mode == state.ModeNormal)
}
