package monster

import (
	"os"
	"path/filepath"
)

// IconPath returns where the ANSI art for rec lives under dir.
func IconPath(dir string, rec *Record) string {
	if dir == "" || rec == nil || rec.IconCode == "" {
		return ""
	}
	return filepath.Join(dir, rec.IconCode)
}

// ReadIcon returns the icon art for rec, or false if there is none.
func ReadIcon(dir string, rec *Record) (string, bool) {
	path := IconPath(dir, rec)
	if path == "" {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}
