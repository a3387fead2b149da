package jobnumber

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DirStore reads the latest issued job number from a directory of
// saved BOM workbooks, where each file is named "<jobnumber>.xlsx".
// The filename is the record: nothing else persists the number.
type DirStore struct {
	Dir string
}

// Latest returns the stem of the most recently modified workbook in
// the directory. A missing or empty directory means no number has been
// issued yet. Recency is by file modification time, which matches
// creation order because saved BOMs are never rewritten.
func (s DirStore) Latest() (string, bool, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}

	var latest string
	var latestMod time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xlsx") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return "", false, err
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = entry.Name()
			latestMod = info.ModTime()
		}
	}
	if latest == "" {
		return "", false, nil
	}
	return strings.TrimSuffix(latest, filepath.Ext(latest)), true, nil
}
