package monster

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/monsterdex/monsterdex/internal/logging"
)

var (
	// decodeMu serializes ReportFallbacks so each load gets its own tally.
	decodeMu sync.Mutex

	tallyMu sync.Mutex
	tally   map[string]int
)

// ReportFallbacks runs decode and logs every unrecognized enum value it met
// as a single warning for source.
func ReportFallbacks(source string, decode func() error) error {
	decodeMu.Lock()
	defer decodeMu.Unlock()

	tallyMu.Lock()
	tally = make(map[string]int)
	tallyMu.Unlock()

	err := decode()

	tallyMu.Lock()
	counts := tally
	tally = nil
	tallyMu.Unlock()

	if len(counts) == 0 {
		return err
	}
	total := 0
	values := make([]string, 0, len(counts))
	for v, n := range counts {
		total += n
		values = append(values, fmt.Sprintf("%s x%d", v, n))
	}
	slices.Sort(values)
	logging.Logger.Warn("unrecognized values replaced by fallbacks",
		"source", source, "count", total, "values", strings.Join(values, ", "))
	return err
}

// unrecognized records s for the current load, or logs it directly when
// nothing is being loaded.
func (t enumTable) unrecognized(s string, fallback int) {
	tallyMu.Lock()
	defer tallyMu.Unlock()
	if tally != nil {
		tally[t.kind+"="+s]++
		return
	}
	logging.Logger.Warn("unrecognized value, using fallback",
		"kind", t.kind, "value", s, "fallback", t.labels[fallback])
}

// enumTable maps wire keys (lowercase) to display labels for a closed enum.
// The position of an entry is the enum's numeric value.
type enumTable struct {
	kind   string
	keys   []string
	labels []string
}

// parse returns the index of s in the table, or fallback when s is not a
// known key.
func (t enumTable) parse(s string, fallback int) int {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, k := range t.keys {
		if k == key {
			return i
		}
	}
	t.unrecognized(s, fallback)
	return fallback
}

func (t enumTable) label(i int) string {
	if i < 0 || i >= len(t.labels) {
		return "Unknown"
	}
	return t.labels[i]
}

func (t enumTable) key(i int) string {
	if i < 0 || i >= len(t.keys) {
		return ""
	}
	return t.keys[i]
}

// Element is an elemental affinity of a monster.
type Element uint8

const (
	ElementNone Element = iota
	ElementFire
	ElementWater
	ElementThunder
	ElementIce
	ElementDragon
	ElementPoison
)

var elements = enumTable{
	kind:   "element",
	keys:   []string{"none", "fire", "water", "thunder", "ice", "dragon", "poison"},
	labels: []string{"None", "Fire", "Water", "Thunder", "Ice", "Dragon", "Poison"},
}

// ParseElement parses an element name; unknown names yield ElementNone.
func ParseElement(s string) Element { return Element(elements.parse(s, int(ElementNone))) }

func (e Element) String() string                { return elements.label(int(e)) }
func (e Element) MarshalText() ([]byte, error)  { return []byte(elements.key(int(e))), nil }
func (e *Element) UnmarshalText(b []byte) error { *e = ParseElement(string(b)); return nil }

// Roar is the strength of a monster's roar.
type Roar uint8

const (
	RoarNone Roar = iota
	RoarWeak
	RoarStrong
)

var roars = enumTable{
	kind:   "roar",
	keys:   []string{"none", "weak", "strong"},
	labels: []string{"None", "Weak", "Strong"},
}

// ParseRoar parses a roar strength; unknown values yield RoarNone.
func ParseRoar(s string) Roar { return Roar(roars.parse(s, int(RoarNone))) }

func (r Roar) String() string                { return roars.label(int(r)) }
func (r Roar) MarshalText() ([]byte, error)  { return []byte(roars.key(int(r))), nil }
func (r *Roar) UnmarshalText(b []byte) error { *r = ParseRoar(string(b)); return nil }

// WindPressure is the strength of the wind a monster produces.
type WindPressure uint8

const (
	WindNone WindPressure = iota
	WindMinor
	WindWeak
	WindStrong
)

var windPressures = enumTable{
	kind:   "wind pressure",
	keys:   []string{"none", "minor", "weak", "strong"},
	labels: []string{"None", "Minor", "Weak", "Strong"},
}

// ParseWindPressure parses a wind pressure strength; unknown values yield WindNone.
func ParseWindPressure(s string) WindPressure {
	return WindPressure(windPressures.parse(s, int(WindNone)))
}

func (w WindPressure) String() string               { return windPressures.label(int(w)) }
func (w WindPressure) MarshalText() ([]byte, error) { return []byte(windPressures.key(int(w))), nil }
func (w *WindPressure) UnmarshalText(b []byte) error {
	*w = ParseWindPressure(string(b))
	return nil
}

// Tremor is the strength of the ground tremor a monster causes.
type Tremor uint8

const (
	TremorNone Tremor = iota
	TremorMinor
	TremorWeak
	TremorStrong
)

var tremors = enumTable{
	kind:   "tremor",
	keys:   []string{"none", "minor", "weak", "strong"},
	labels: []string{"None", "Minor", "Weak", "Strong"},
}

// ParseTremor parses a tremor strength; unknown values yield TremorNone.
func ParseTremor(s string) Tremor { return Tremor(tremors.parse(s, int(TremorNone))) }

func (t Tremor) String() string                { return tremors.label(int(t)) }
func (t Tremor) MarshalText() ([]byte, error)  { return []byte(tremors.key(int(t))), nil }
func (t *Tremor) UnmarshalText(b []byte) error { *t = ParseTremor(string(b)); return nil }

// QuestType categorizes a quest a monster appears in.
type QuestType uint8

const (
	QuestAssignments QuestType = iota
	QuestOptional
	QuestEvent
	QuestArena
)

var questTypes = enumTable{
	kind:   "quest type",
	keys:   []string{"assignments", "optional", "event", "arena"},
	labels: []string{"Assignments", "Optional", "Event", "Arena"},
}

// ParseQuestType parses a quest category; unknown values yield QuestOptional.
func ParseQuestType(s string) QuestType { return QuestType(questTypes.parse(s, int(QuestOptional))) }

func (q QuestType) String() string                { return questTypes.label(int(q)) }
func (q QuestType) MarshalText() ([]byte, error)  { return []byte(questTypes.key(int(q))), nil }
func (q *QuestType) UnmarshalText(b []byte) error { *q = ParseQuestType(string(b)); return nil }

// Ailment is a status ailment a monster can be inflicted with.
type Ailment uint8

const (
	AilmentStun Ailment = iota
	AilmentPoison
	AilmentParalysis
	AilmentSleep
	AilmentBlast
	AilmentExhaust
)

var ailments = enumTable{
	kind:   "ailment",
	keys:   []string{"stun", "poison", "paralysis", "sleep", "blast", "exhaust"},
	labels: []string{"Stun", "Poison", "Paralysis", "Sleep", "Blast", "Exhaust"},
}

// ParseAilment parses an ailment name; unknown names yield AilmentStun.
func ParseAilment(s string) Ailment { return Ailment(ailments.parse(s, int(AilmentStun))) }

func (a Ailment) String() string                { return ailments.label(int(a)) }
func (a Ailment) MarshalText() ([]byte, error)  { return []byte(ailments.key(int(a))), nil }
func (a *Ailment) UnmarshalText(b []byte) error { *a = ParseAilment(string(b)); return nil }

// Item is a hunting item a monster may be vulnerable to.
type Item uint8

const (
	ItemFlashpod Item = iota
	ItemPitfall
	ItemShock
	ItemMeats
	ItemSonicpod
	ItemDungpod
)

var items = enumTable{
	kind:   "item",
	keys:   []string{"flashpod", "pitfall", "shock", "meats", "sonicpod", "dungpod"},
	labels: []string{"Flashpod", "Pitfall", "Shock", "Meats", "Sonicpod", "Dungpod"},
}

// ParseItem parses an item name; unknown names yield ItemFlashpod.
func ParseItem(s string) Item { return Item(items.parse(s, int(ItemFlashpod))) }

func (i Item) String() string                { return items.label(int(i)) }
func (i Item) MarshalText() ([]byte, error)  { return []byte(items.key(int(i))), nil }
func (i *Item) UnmarshalText(b []byte) error { *i = ParseItem(string(b)); return nil }

// StatusEffect is a status a monster can inflict on hunters.
type StatusEffect uint8

const (
	EffectNone StatusEffect = iota
	EffectFireblight
	EffectBlastblight
	EffectWaterblight
	EffectThunderblight
	EffectIceblight
	EffectFrostblight
	EffectDragonblight
	EffectFrenzy
	EffectSleep
	EffectPoison
	EffectParalysis
	EffectStench
	EffectDefenseDown
	EffectBleeding
	EffectFlash
	EffectMinorBubbleblight
	EffectMajorBubbleblight
	EffectWebbed
	EffectNotRegistered
)

var statusEffects = enumTable{
	kind: "status effect",
	keys: []string{
		"none", "fireblight", "blastblight", "waterblight", "thunderblight",
		"iceblight", "frostblight", "dragonblight", "frenzy", "sleep", "poison",
		"paralysis", "stench", "defense down", "bleeding", "flash",
		"minor bubbleblight", "major bubbleblight", "webbed", "not registered",
	},
	labels: []string{
		"None", "Fireblight", "Blastblight", "Waterblight", "Thunderblight",
		"Iceblight", "Frostblight", "Dragonblight", "Frenzy", "Sleep", "Poison",
		"Paralysis", "Stench", "Defense Down", "Bleeding", "Flash",
		"Minor Bubble Blight", "Major Bubble Blight", "Webbed", "Not Registered",
	},
}

// ParseStatusEffect parses a status effect name. "none" yields EffectNone and
// anything unknown yields EffectNotRegistered.
func ParseStatusEffect(s string) StatusEffect {
	return StatusEffect(statusEffects.parse(s, int(EffectNotRegistered)))
}

func (e StatusEffect) String() string { return statusEffects.label(int(e)) }
func (e StatusEffect) MarshalText() ([]byte, error) {
	return []byte(statusEffects.key(int(e))), nil
}
func (e *StatusEffect) UnmarshalText(b []byte) error {
	*e = ParseStatusEffect(string(b))
	return nil
}
