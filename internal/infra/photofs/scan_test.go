package photofs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/benbenti/PhotoID/internal/domain"
)

func TestScanGroupsByIdentity(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"Ann_001.jpg",
		"Ann_002.jpg",
		"nested/Bob_001.jpg",
		"notes.txt", // wrong extension
	})

	idx, err := Scan([]string{root}, Options{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	ids := idx.Identities()
	if len(ids) != 2 || ids[0] != "Ann" || ids[1] != "Bob" {
		t.Fatalf("expected [Ann Bob], got %v", ids)
	}
	ann, err := idx.Photos("Ann")
	if err != nil {
		t.Fatalf("photos: %v", err)
	}
	if len(ann) != 2 {
		t.Fatalf("expected 2 Ann photos, got %v", ann)
	}
	if len(idx.Skipped) != 0 {
		t.Fatalf("unexpected skipped files: %v", idx.Skipped)
	}
}

func TestScanMergesMultipleRoots(t *testing.T) {
	root1 := t.TempDir()
	root2 := t.TempDir()
	writeFiles(t, root1, []string{"Ann_001.jpg"})
	writeFiles(t, root2, []string{"Ann_101.jpg", "Cleo_001.jpg"})

	idx, err := Scan([]string{root1, root2}, Options{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("expected 2 identities, got %v", idx.Identities())
	}
	ann, err := idx.Photos("Ann")
	if err != nil {
		t.Fatalf("photos: %v", err)
	}
	if len(ann) != 2 {
		t.Fatalf("expected Ann photos from both roots, got %v", ann)
	}
}

func TestScanIncludeExcludeFilters(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"keep/Ann_001.jpg",
		"keep/ToBeSorted/Bob_001.jpg",
		"other/Cleo_001.jpg",
	})

	idx, err := Scan([]string{root}, Options{
		Include: []string{"keep"},
		Exclude: []string{"ToBeSorted"},
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if idx.Len() != 1 || idx.Identities()[0] != "Ann" {
		t.Fatalf("filters not applied, got %v", idx.Identities())
	}
}

func TestScanSkipsUnclassifiableFilenames(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"Ann_001.jpg",
		"noseparator.jpg",
		"_leading.jpg",
	})

	idx, err := Scan([]string{root}, Options{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if idx.Len() != 1 {
		t.Fatalf("expected only Ann indexed, got %v", idx.Identities())
	}
	if len(idx.Skipped) != 2 {
		t.Fatalf("expected 2 skipped files, got %v", idx.Skipped)
	}
}

func TestScanEveryIdentityHasPhotos(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{"Ann_001.jpg", "Bob_001.jpg"})

	idx, err := Scan([]string{root}, Options{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	for _, id := range idx.Identities() {
		photos, err := idx.Photos(id)
		if err != nil || len(photos) == 0 {
			t.Fatalf("identity %s has no photos: %v", id, err)
		}
	}
	if _, err := idx.Photos("Nobody"); !errors.Is(err, domain.ErrNoPhotos) {
		t.Fatalf("expected ErrNoPhotos, got %v", err)
	}
}

func TestScanEmptyFolderReportsNoIdentities(t *testing.T) {
	if _, err := Scan([]string{t.TempDir()}, Options{}); !errors.Is(err, domain.ErrNoIdentities) {
		t.Fatalf("expected ErrNoIdentities, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		want string
		ok   bool
	}{
		{"photos/Ann_001.jpg", "Ann", true},
		{"Ann_left_flank.jpg", "Ann", true},
		{"noseparator.jpg", "", false},
		{"_leading.jpg", "", false},
	}
	for _, c := range cases {
		got, ok := Classify(c.path)
		if got != c.want || ok != c.ok {
			t.Fatalf("Classify(%q) = %q,%v want %q,%v", c.path, got, ok, c.want, c.ok)
		}
	}
}

func writeFiles(t *testing.T, root string, names []string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}
