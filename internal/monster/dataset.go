package monster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyDataset is returned when a dataset has no records.
	ErrEmptyDataset = errors.New("dataset contains no monsters")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate monster id")
)

// Dataset is the immutable, ordered collection of records loaded at startup.
// Every consumer shares the same record pointers.
type Dataset struct {
	records []*Record
	byID    map[uint16]*Record
}

// New builds a dataset from records, keeping their order.
func New(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &Dataset{
		records: make([]*Record, len(records)),
		byID:    make(map[uint16]*Record, len(records)),
	}
	for i := range records {
		rec := &records[i]
		if prev, ok := ds.byID[rec.ID]; ok {
			return nil, fmt.Errorf("%w %d (%s and %s)", ErrDuplicateID, rec.ID, prev.Name.Name, rec.Name.Name)
		}
		ds.byID[rec.ID] = rec
		ds.records[i] = rec
	}
	return ds, nil
}

// Records returns the records in load order. Callers must not modify the slice.
func (d *Dataset) Records() []*Record {
	return d.records
}

func (d *Dataset) Len() int {
	return len(d.records)
}

func (d *Dataset) ByID(id uint16) (*Record, bool) {
	rec, ok := d.byID[id]
	return rec, ok
}

// Lookup finds a record by decimal id, name or epithet (case-insensitive).
func (d *Dataset) Lookup(ref string) (*Record, bool) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseUint(ref, 10, 16); err == nil {
		if rec, ok := d.byID[uint16(id)]; ok {
			return rec, true
		}
	}
	for _, rec := range d.records {
		if strings.EqualFold(rec.Name.Name, ref) {
			return rec, true
		}
	}
	for _, rec := range d.records {
		if rec.Name.Aka != "" && strings.EqualFold(rec.Name.Aka, ref) {
			return rec, true
		}
	}
	return nil, false
}
