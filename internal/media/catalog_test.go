package media

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func relPaths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = filepath.ToSlash(f.RelPath)
	}
	return out
}

func TestDiscover_TopLevelOnly(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.mp3", "a.mp4", "notes.txt", "sub/deep.wav")

	files, err := Discover(dir, false, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	got := relPaths(files)
	want := []string{"a.mp4", "b.mp3"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	if files[0].Type != TypeVideo || files[1].Type != TypeAudio {
		t.Errorf("classification wrong: %+v", files)
	}
}

func TestDiscover_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "top.mp3", "sub/deep.wav", "sub/inner/clip.mkv", "sub/readme.md")

	files, err := Discover(dir, true, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), relPaths(files))
	}

	// Lexicographic by absolute path, so stable across runs.
	for i := 1; i < len(files); i++ {
		if files[i-1].Path >= files[i].Path {
			t.Errorf("files not sorted: %v", relPaths(files))
		}
	}
}

func TestDiscover_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.mp3", "b.wav", "c.mp4")

	tests := []struct {
		name   string
		filter []string
		want   int
	}{
		{"dotless", []string{"mp3"}, 1},
		{"with dot", []string{".mp3", ".wav"}, 2},
		{"mixed case", []string{"MP4"}, 1},
		{"empty filter means all", nil, 3},
		{"filter of unsupported ext", []string{"txt"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := Discover(dir, false, tt.filter)
			if err != nil {
				t.Fatalf("Discover: %v", err)
			}
			if len(files) != tt.want {
				t.Errorf("got %d files, want %d", len(files), tt.want)
			}
		})
	}
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), false, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestDiscover_RootIsFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.mp3")

	_, err := Discover(filepath.Join(dir, "a.mp3"), false, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Type
		ok   bool
	}{
		{"a.mp3", TypeAudio, true},
		{"A.WAV", TypeAudio, true},
		{"b.mkv", TypeVideo, true},
		{"c.m4v", TypeVideo, true},
		{"d.txt", "", false},
		{"noext", "", false},
	}

	for _, tt := range tests {
		got, ok := Classify(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}
