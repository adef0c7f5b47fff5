package monster

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is one monster entry. Records are never mutated after load.
type Record struct {
	ID         uint16      `json:"id" yaml:"id"`
	Name       Name        `json:"name" yaml:"name"`
	IconCode   string      `json:"icon_code" yaml:"icon_code"`
	Elements   []Element   `json:"elements" yaml:"elements"`
	Desc       Description `json:"desc" yaml:"desc"`
	BasicInfo  BasicInfo   `json:"basic_info" yaml:"basic_info"`
	Quests     []Quest     `json:"quest_list" yaml:"quest_list"`
	Habitats   []Habitat   `json:"habitats" yaml:"habitats"`
	Weaknesses Weaknesses  `json:"weaknesses" yaml:"weaknesses"`
	Drops      Drops       `json:"drops" yaml:"drops"`
}

// Name holds the display name and the monster's epithet.
type Name struct {
	Name string `json:"name" yaml:"name"`
	Aka  string `json:"aka" yaml:"aka"`
}

// Description is the flavor text plus one line per notable ability.
type Description struct {
	Original  string   `json:"original" yaml:"original"`
	Abilities []string `json:"desc" yaml:"desc"`
}

type BasicInfo struct {
	Type          string         `json:"type" yaml:"type"`
	Roar          Roar           `json:"roar" yaml:"roar"`
	WindPressure  WindPressure   `json:"wind_pressure" yaml:"wind_pressure"`
	Tremor        Tremor         `json:"tremor" yaml:"tremor"`
	StatusEffects []StatusEffect `json:"status_effect" yaml:"status_effect"`
}

type Quest struct {
	Type  QuestType `json:"quest_type" yaml:"quest_type"`
	Level uint8     `json:"level" yaml:"level"`
	Name  string    `json:"name" yaml:"name"`
}

// Habitat lists the numbered areas of one region a monster roams.
type Habitat struct {
	Region       string  `json:"region" yaml:"region"`
	StartingArea []uint8 `json:"starting_area" yaml:"starting_area"`
	VisitedArea  []uint8 `json:"visited_area" yaml:"visited_area"`
	RestingArea  uint8   `json:"resting_area" yaml:"resting_area"`
}

type Weaknesses struct {
	Damage   []DamageRow  `json:"dmg_data" yaml:"dmg_data"`
	Ailments AilmentTable `json:"ailment_data" yaml:"ailment_data"`
}

// DamageRow holds hitzone multipliers for one body part.
type DamageRow struct {
	Part    string        `json:"monster_part" yaml:"monster_part"`
	Weapon  WeaponDamage  `json:"weapon" yaml:"weapon"`
	Element ElementDamage `json:"element" yaml:"element"`
}

type WeaponDamage struct {
	Cut   uint8 `json:"cut_damage" yaml:"cut_damage"`
	Blunt uint8 `json:"blunt_damage" yaml:"blunt_damage"`
	Ammo  uint8 `json:"ammo_damage" yaml:"ammo_damage"`
}

type ElementDamage struct {
	Fire    uint8 `json:"fire_damage" yaml:"fire_damage"`
	Water   uint8 `json:"water_damage" yaml:"water_damage"`
	Thunder uint8 `json:"thunder_damage" yaml:"thunder_damage"`
	Ice     uint8 `json:"ice_damage" yaml:"ice_damage"`
	Dragon  uint8 `json:"dragon_damage" yaml:"dragon_damage"`
}

// TableSize is the fixed number of ailment and item entries per monster.
const TableSize = 6

// AilmentTable always carries exactly TableSize ailments and items. Short
// source lists are padded with zero entries and long ones are truncated.
type AilmentTable struct {
	Status [TableSize]AilmentEffect `json:"status" yaml:"status"`
	Items  [TableSize]ItemEffect    `json:"items" yaml:"items"`
}

type AilmentEffect struct {
	Ailment       Ailment `json:"ailment" yaml:"ailment"`
	Effectiveness uint8   `json:"eff" yaml:"eff"`
}

type ItemEffect struct {
	Item      Item `json:"item" yaml:"item"`
	Effective bool `json:"is_effective" yaml:"is_effective"`
}

// ailmentTableWire is the variable-length form found in data files.
type ailmentTableWire struct {
	Status []AilmentEffect `json:"status" yaml:"status"`
	Items  []ItemEffect    `json:"items" yaml:"items"`
}

func (t *AilmentTable) fill(w ailmentTableWire) {
	*t = AilmentTable{}
	copy(t.Status[:], w.Status)
	copy(t.Items[:], w.Items)
}

func (t *AilmentTable) UnmarshalJSON(data []byte) error {
	var w ailmentTableWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	t.fill(w)
	return nil
}

func (t *AilmentTable) UnmarshalYAML(node *yaml.Node) error {
	var w ailmentTableWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	t.fill(w)
	return nil
}

// Drops holds material drops for both ranks.
type Drops struct {
	LowRank  MaterialDrops `json:"low_rank" yaml:"low_rank"`
	HighRank MaterialDrops `json:"high_rank" yaml:"high_rank"`
}

// Rank selects low or high rank drops.
type Rank uint8

const (
	LowRank Rank = iota
	HighRank
)

// RankCount is the number of ranks.
const RankCount = 2

func (r Rank) Next() Rank { return (r + 1) % RankCount }

func (r Rank) String() string {
	if r == HighRank {
		return "High Rank"
	}
	return "Low Rank"
}

// Source is the way a material is obtained.
type Source uint8

const (
	SourceTarget Source = iota
	SourceBrokenPart
	SourceWoundDestroy
	SourceCarve
)

// SourceCount is the number of drop sources.
const SourceCount = 4

func (s Source) Next() Source { return (s + 1) % SourceCount }

func (s Source) String() string {
	switch s {
	case SourceBrokenPart:
		return "Broken Part"
	case SourceWoundDestroy:
		return "Wound Destroy"
	case SourceCarve:
		return "Carve"
	default:
		return "Target Rewards"
	}
}

// Rank returns the drops for r.
func (d Drops) Rank(r Rank) MaterialDrops {
	if r == HighRank {
		return d.HighRank
	}
	return d.LowRank
}

// Count returns the number of rows for one rank and source.
func (d Drops) Count(r Rank, s Source) int {
	return d.Rank(r).Count(s)
}

// Counts returns the row count of all eight rank and source categories.
func (d Drops) Counts() [RankCount][SourceCount]int {
	var out [RankCount][SourceCount]int
	for r := Rank(0); r < RankCount; r++ {
		for s := Source(0); s < SourceCount; s++ {
			out[r][s] = d.Count(r, s)
		}
	}
	return out
}

type MaterialDrops struct {
	Target       []MaterialDrop `json:"target" yaml:"target"`
	BrokenPart   []PartDrop     `json:"broken_part" yaml:"broken_part"`
	WoundDestroy []MaterialDrop `json:"wound_destroy" yaml:"wound_destroy"`
	Carve        []PartDrop     `json:"carve" yaml:"carve"`
}

func (m MaterialDrops) Count(s Source) int {
	switch s {
	case SourceBrokenPart:
		return len(m.BrokenPart)
	case SourceWoundDestroy:
		return len(m.WoundDestroy)
	case SourceCarve:
		return len(m.Carve)
	default:
		return len(m.Target)
	}
}

// Row returns row i of source s flattened to a material and its per-part
// chances. Plain drops report a single chance with an empty part.
func (m MaterialDrops) Row(s Source, i int) (PartDrop, bool) {
	if i < 0 || i >= m.Count(s) {
		return PartDrop{}, false
	}
	switch s {
	case SourceBrokenPart:
		return m.BrokenPart[i], true
	case SourceCarve:
		return m.Carve[i], true
	case SourceWoundDestroy:
		d := m.WoundDestroy[i]
		return PartDrop{Material: d.Material, Chances: []PartChance{{Percentage: d.Percentage}}}, true
	default:
		d := m.Target[i]
		return PartDrop{Material: d.Material, Chances: []PartChance{{Percentage: d.Percentage}}}, true
	}
}

type MaterialDrop struct {
	Material   string `json:"material" yaml:"material"`
	Percentage uint8  `json:"percentage" yaml:"percentage"`
}

// PartDrop is a material whose chance depends on the body part involved.
type PartDrop struct {
	Material string       `json:"material" yaml:"material"`
	Chances  []PartChance `json:"carve" yaml:"carve"`
}

type PartChance struct {
	Part       string `json:"part" yaml:"part"`
	Percentage uint8  `json:"percentage" yaml:"percentage"`
}

// ParseRank accepts "low"/"lr" and "high"/"hr".
func ParseRank(s string) (Rank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "low", "lr":
		return LowRank, nil
	case "high", "hr":
		return HighRank, nil
	}
	return LowRank, fmt.Errorf("unknown rank %q: want low or high", s)
}

// ParseSource accepts the snake_case source names used on the command line.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "target":
		return SourceTarget, nil
	case "broken_part", "broken-part", "broken":
		return SourceBrokenPart, nil
	case "wound_destroy", "wound-destroy", "wound":
		return SourceWoundDestroy, nil
	case "carve":
		return SourceCarve, nil
	}
	return SourceTarget, fmt.Errorf("unknown drop source %q: want target, broken_part, wound_destroy or carve", s)
}

// Key returns the snake_case name of s.
func (s Source) Key() string {
	return [...]string{"target", "broken_part", "wound_destroy", "carve"}[s%SourceCount]
}

// Summary is the short form of a record used in listings.
type Summary struct {
	ID       uint16    `json:"id"`
	Name     string    `json:"name"`
	Aka      string    `json:"aka,omitempty"`
	Type     string    `json:"type,omitempty"`
	Elements []Element `json:"elements,omitempty"`
}

func (r *Record) Summary() Summary {
	return Summary{
		ID:       r.ID,
		Name:     r.Name.Name,
		Aka:      r.Name.Aka,
		Type:     r.BasicInfo.Type,
		Elements: r.Elements,
	}
}

// PrimaryElement returns the first listed element, or ElementNone.
func (r *Record) PrimaryElement() Element {
	if len(r.Elements) == 0 {
		return ElementNone
	}
	return r.Elements[0]
}

// DropTable lists the rows of one rank and source.
type DropTable struct {
	Rank   string     `json:"rank"`
	Source string     `json:"source"`
	Rows   []PartDrop `json:"rows"`
}

// Table flattens one rank and source into rows.
func (d Drops) Table(r Rank, s Source) DropTable {
	m := d.Rank(r)
	t := DropTable{Rank: r.String(), Source: s.Key(), Rows: make([]PartDrop, 0, m.Count(s))}
	for i := 0; i < m.Count(s); i++ {
		row, _ := m.Row(s, i)
		t.Rows = append(t.Rows, row)
	}
	return t
}
