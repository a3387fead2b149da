package jobnumber

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeWorkbook(t *testing.T, dir, name string, mod time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("stub"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func TestDirStoreLatestByModTime(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2023, time.June, 1, 10, 0, 0, 0, time.UTC)
	writeWorkbook(t, dir, "23-24_0000001.xlsx", base)
	writeWorkbook(t, dir, "23-24_0000003.xlsx", base.Add(2*time.Hour))
	writeWorkbook(t, dir, "23-24_0000002.xlsx", base.Add(time.Hour))

	got, ok, err := DirStore{Dir: dir}.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a latest workbook")
	}
	if got != "23-24_0000003" {
		t.Errorf("expected 23-24_0000003, got %s", got)
	}
}

func TestDirStoreIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2023, time.June, 1, 10, 0, 0, 0, time.UTC)
	writeWorkbook(t, dir, "23-24_0000001.xlsx", base)
	writeWorkbook(t, dir, "notes.txt", base.Add(time.Hour))
	if err := os.Mkdir(filepath.Join(dir, "archive.xlsx"), 0755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := DirStore{Dir: dir}.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != "23-24_0000001" {
		t.Errorf("expected 23-24_0000001, got %q (ok=%v)", got, ok)
	}
}

func TestDirStoreEmptyDirectory(t *testing.T) {
	_, ok, err := DirStore{Dir: t.TempDir()}.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("empty directory should have no latest workbook")
	}
}

func TestDirStoreMissingDirectory(t *testing.T) {
	_, ok, err := DirStore{Dir: filepath.Join(t.TempDir(), "nope")}.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("missing directory should have no latest workbook")
	}
}

func TestGeneratorWithDirStore(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2023, time.June, 1, 10, 0, 0, 0, time.UTC)
	writeWorkbook(t, dir, "23-24_0000007.xlsx", base)

	g := Generator{Latest: DirStore{Dir: dir}.Latest}
	got, err := g.Next(time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if got != "23-24_0000008" {
		t.Errorf("expected 23-24_0000008, got %s", got)
	}
}
