package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesAllSections(t *testing.T) {
	raw := `
photos:
  folders: ["/photos/awaji", "/photos/osaka"]
  exclude: ["ToBeSorted"]
  extensions: [".JPG"]
quiz:
  questions: 30
results:
  previous: "old.csv"
  save_table: "QuizzScore.csv"
  save_figure: "QuizzResultsFig.png"
render:
  font: "/fonts/DejaVuSans.ttf"
log:
  level: "debug"
`
	path := filepath.Join(t.TempDir(), "photoid.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Photos.Folders) != 2 || cfg.Photos.Folders[0] != "/photos/awaji" {
		t.Fatalf("folders not parsed: %v", cfg.Photos.Folders)
	}
	if cfg.Quiz.Questions != 30 {
		t.Fatalf("questions not parsed: %d", cfg.Quiz.Questions)
	}
	if cfg.Results.SaveFigure != "QuizzResultsFig.png" {
		t.Fatalf("save_figure not parsed: %q", cfg.Results.SaveFigure)
	}
	if cfg.Render.Font == "" || cfg.Log.Level != "debug" {
		t.Fatalf("render/log sections not parsed: %+v", cfg)
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing optional config must not error: %v", err)
	}
	if len(cfg.Photos.Folders) != 0 {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadOptionalBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photoid.yaml")
	if err := os.WriteFile(path, []byte("photos: ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadOptional(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFallbackHelpers(t *testing.T) {
	if got := Questions(0, 0, 20); got != 20 {
		t.Fatalf("Questions fallback = %d, want 20", got)
	}
	if got := Questions(5, 30, 20); got != 5 {
		t.Fatalf("Questions flag = %d, want 5", got)
	}
	if got := String("", "from-config"); got != "from-config" {
		t.Fatalf("String = %q", got)
	}
	if got := Strings([]string{"a"}, []string{"b"}); got[0] != "a" {
		t.Fatalf("Strings = %v", got)
	}
}
