package main

import (
	"os"
	"path/filepath"
	"testing"
)

// newRunConfig готовит глобальный cfg для прямого вызова relocate
func newRunConfig(t *testing.T, srcDir, dstDir string, media MediaType) {
	t.Helper()
	cfg = &AppConfig{
		SrcDir: srcDir,
		DstDir: dstDir,
		Media:  media,
	}
	bar = nil
}

func TestParseMediaChoice(t *testing.T) {
	tests := []struct {
		choice  string
		want    MediaType
		wantErr bool
	}{
		{"1", MediaImages, false},
		{"2", MediaVideos, false},
		{"3", MediaUnknown, true},
		{"", MediaUnknown, true},
		{"images", MediaUnknown, true},
		{"12", MediaUnknown, true},
	}
	for _, tt := range tests {
		got, err := parseMediaChoice(tt.choice)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseMediaChoice(%q) error = %v, wantErr %v", tt.choice, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMediaChoice(%q) = %v, want %v", tt.choice, got, tt.want)
		}
	}
}

func TestCheckPreconditions(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		newRunConfig(t, filepath.Join(t.TempDir(), "absent"), t.TempDir(), MediaImages)
		if err := checkPreconditions(); err == nil {
			t.Error("want error for missing source")
		}
	})

	t.Run("source is a file", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "file.jpg")
		writeFile(t, file, "x")
		newRunConfig(t, file, t.TempDir(), MediaImages)
		if err := checkPreconditions(); err == nil {
			t.Error("want error for non-directory source")
		}
	})

	t.Run("same source and destination", func(t *testing.T) {
		dir := t.TempDir()
		newRunConfig(t, dir, dir, MediaImages)
		if err := checkPreconditions(); err == nil {
			t.Error("want error for equivalent source and destination")
		}
	})

	t.Run("creates missing destination", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "deep", "nested", "dst")
		newRunConfig(t, t.TempDir(), dst, MediaImages)
		if err := checkPreconditions(); err != nil {
			t.Fatalf("checkPreconditions: %v", err)
		}
		info, err := os.Stat(dst)
		if err != nil || !info.IsDir() {
			t.Errorf("destination not created: %v", err)
		}
	})
}

func TestRelocateFlattensTree(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	writeFile(t, filepath.Join(srcDir, "a.jpg"), "a")
	writeFile(t, filepath.Join(srcDir, "b.txt"), "b")
	if err := os.MkdirAll(filepath.Join(srcDir, "sub"), 0o777); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(srcDir, "sub", "c.png"), "c")

	newRunConfig(t, srcDir, dstDir, MediaImages)
	if err := relocate(); err != nil {
		t.Fatalf("relocate: %v", err)
	}

	if cfg.MovedCount != 2 || cfg.SkippedCount != 0 {
		t.Errorf("moved=%d skipped=%d, want moved=2 skipped=0", cfg.MovedCount, cfg.SkippedCount)
	}
	if got := readFile(t, filepath.Join(dstDir, "a.jpg")); got != "a" {
		t.Errorf("a.jpg content = %q", got)
	}
	// структура источника сплющена
	if got := readFile(t, filepath.Join(dstDir, "c.png")); got != "c" {
		t.Errorf("c.png content = %q", got)
	}
	if got := readFile(t, filepath.Join(srcDir, "b.txt")); got != "b" {
		t.Errorf("b.txt should stay in source, got %q", got)
	}
	if _, err := os.Stat(filepath.Join(srcDir, "a.jpg")); !os.IsNotExist(err) {
		t.Error("a.jpg still present in source")
	}
}

func TestRelocateResolvesCollision(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	writeFile(t, filepath.Join(srcDir, "a.jpg"), "incoming")
	writeFile(t, filepath.Join(dstDir, "a.jpg"), "existing")

	newRunConfig(t, srcDir, dstDir, MediaImages)
	if err := relocate(); err != nil {
		t.Fatalf("relocate: %v", err)
	}

	if cfg.MovedCount != 1 || cfg.SkippedCount != 0 {
		t.Errorf("moved=%d skipped=%d, want moved=1 skipped=0", cfg.MovedCount, cfg.SkippedCount)
	}
	if got := readFile(t, filepath.Join(dstDir, "a.jpg")); got != "existing" {
		t.Errorf("existing a.jpg overwritten: %q", got)
	}
	if got := readFile(t, filepath.Join(dstDir, "a_1.jpg")); got != "incoming" {
		t.Errorf("a_1.jpg content = %q, want %q", got, "incoming")
	}
	if len(cfg.RenamedList) != 1 {
		t.Errorf("renamed list = %v, want one entry", cfg.RenamedList)
	}
}

func TestRelocateSelectsRequestedCategory(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	writeFile(t, filepath.Join(srcDir, "clip.MP4"), "video")
	writeFile(t, filepath.Join(srcDir, "photo.jpg"), "image")

	newRunConfig(t, srcDir, dstDir, MediaVideos)
	if err := relocate(); err != nil {
		t.Fatalf("relocate: %v", err)
	}

	if cfg.MovedCount != 1 {
		t.Errorf("moved=%d, want 1", cfg.MovedCount)
	}
	if got := readFile(t, filepath.Join(dstDir, "clip.MP4")); got != "video" {
		t.Errorf("clip.MP4 content = %q", got)
	}
	if got := readFile(t, filepath.Join(srcDir, "photo.jpg")); got != "image" {
		t.Error("photo.jpg moved on a videos run")
	}
}

func TestCountTargets(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "a.jpg"), "a")
	writeFile(t, filepath.Join(srcDir, "b.txt"), "b")
	if err := os.MkdirAll(filepath.Join(srcDir, "sub"), 0o777); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(srcDir, "sub", "c.PNG"), "c")

	got, err := countTargets(srcDir, MediaImages)
	if err != nil {
		t.Fatalf("countTargets: %v", err)
	}
	if got != 2 {
		t.Errorf("countTargets = %d, want 2", got)
	}
}
