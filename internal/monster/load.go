package monster

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/monsters.json
var defaultData []byte

// Format is a dataset file encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported dataset file %q: want .json, .yaml or .yml", path)
}

// DecodeRecords reads a list of records without building a dataset.
func DecodeRecords(r io.Reader, format Format) ([]Record, error) {
	var records []Record
	err := ReportFallbacks(format.String(), func() error {
		switch format {
		case FormatYAML:
			if err := yaml.NewDecoder(r).Decode(&records); err != nil && err != io.EOF {
				return fmt.Errorf("failed to decode yaml dataset: %w", err)
			}
		default:
			if err := json.NewDecoder(r).Decode(&records); err != nil {
				return fmt.Errorf("failed to decode json dataset: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Decode reads records and builds a dataset from them.
func Decode(r io.Reader, format Format) (*Dataset, error) {
	records, err := DecodeRecords(r, format)
	if err != nil {
		return nil, err
	}
	return New(records)
}

// ReadRecordsFile decodes a JSON or YAML file into records.
func ReadRecordsFile(path string) ([]Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return DecodeRecords(f, format)
}

// ReadFile loads a dataset from a JSON or YAML file.
func ReadFile(path string) (*Dataset, error) {
	records, err := ReadRecordsFile(path)
	if err != nil {
		return nil, err
	}
	return New(records)
}

// Default returns the dataset bundled with the binary.
func Default() (*Dataset, error) {
	return Decode(bytes.NewReader(defaultData), FormatJSON)
}
