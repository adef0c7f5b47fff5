package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/monsterdex/monsterdex/internal/logging"
	"github.com/monsterdex/monsterdex/internal/monster"
	"github.com/monsterdex/monsterdex/internal/store"
)

// loadError is returned when no usable dataset could be loaded.
type loadError struct {
	source string
	err    error
}

func (e *loadError) Error() string {
	return fmt.Sprintf("failed to load dataset from %s: %v", e.source, e.err)
}

func (e *loadError) Unwrap() error {
	return e.err
}

// loadDataset reads the dataset named by --data or data.file, falling back
// to the bundled sample.
func loadDataset(ctx context.Context) (*monster.Dataset, error) {
	if err := setup(); err != nil {
		return nil, err
	}

	source := cfg.Data.File
	var (
		ds  *monster.Dataset
		err error
	)
	switch {
	case source == "":
		source = "bundled sample"
		ds, err = monster.Default()
	case store.IsDatabasePath(source):
		// Opening a missing database would create an empty one.
		if _, err = os.Stat(source); err == nil {
			ds, err = store.ReadFile(ctx, source)
		}
	default:
		ds, err = monster.ReadFile(source)
	}
	if err != nil {
		logging.Logger.Error("dataset load failed", "source", source, "error", err)
		return nil, &loadError{source: source, err: err}
	}

	logging.Logger.Info("dataset loaded", "source", source, "monsters", ds.Len())
	return ds, nil
}

// lookupMonster resolves a name, alias or id against ds.
func lookupMonster(ds *monster.Dataset, ref string) (*monster.Record, error) {
	rec, ok := ds.Lookup(ref)
	if !ok {
		return nil, fmt.Errorf("monster not found: %s", ref)
	}
	return rec, nil
}
