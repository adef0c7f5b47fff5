package state

import (
	"testing"

	"github.com/monsterdex/monsterdex/internal/monster"
)

// named returns bare records called names, with ids in order.
func named(names ...string) []monster.Record {
	records := make([]monster.Record, len(names))
	for i, n := range names {
		records[i] = monster.Record{ID: uint16(i + 1), Name: monster.Name{Name: n}}
	}
	return records
}

func newDataset(t *testing.T, records []monster.Record) *monster.Dataset {
	t.Helper()
	ds, err := monster.New(records)
	if err != nil {
		t.Fatalf("monster.New() error = %v", err)
	}
	return ds
}

func partDrops(n int) []monster.PartDrop {
	drops := make([]monster.PartDrop, n)
	for i := range drops {
		drops[i] = monster.PartDrop{Material: "Material", Chances: []monster.PartChance{{Part: "Tail", Percentage: 20}}}
	}
	return drops
}

// richRecord has a distinct length for every panel.
func richRecord(id uint16, name string) monster.Record {
	return monster.Record{
		ID:       id,
		Name:     monster.Name{Name: name},
		Quests:   make([]monster.Quest, 4),
		Habitats: make([]monster.Habitat, 3),
		Weaknesses: monster.Weaknesses{
			Damage: make([]monster.DamageRow, 6),
		},
		Drops: monster.Drops{
			LowRank: monster.MaterialDrops{
				Target:     make([]monster.MaterialDrop, 2),
				BrokenPart: partDrops(5),
			},
			HighRank: monster.MaterialDrops{
				Target:     make([]monster.MaterialDrop, 7),
				BrokenPart: partDrops(3),
			},
		},
	}
}

func selectedName(b *Browser) string {
	return b.Current().Name.Name
}

func rowIndex(r Rows) int {
	i, _ := r.Index()
	return i
}
