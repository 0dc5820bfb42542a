package contentpack

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
}

func fixturePack(t *testing.T) (quotesPath, videoDir, audioDir string) {
	t.Helper()
	dir := t.TempDir()

	quotesPath = filepath.Join(dir, "quotes.json")
	writeFixture(t, quotesPath, `[
		{"text": "The obstacle is the way.", "author": "Marcus Aurelius"},
		{"text": "We suffer more in imagination than in reality.", "author": "Seneca"},
		{"text": ""},
		{"text": "No man is free who is not master of himself.", "author": "Epictetus"}
	]`)

	videoDir = filepath.Join(dir, "videos")
	audioDir = filepath.Join(dir, "audio")
	for _, d := range []string{videoDir, audioDir} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatalf("Failed to create %s: %v", d, err)
		}
	}
	writeFixture(t, filepath.Join(videoDir, "waves.mp4"), "v")
	writeFixture(t, filepath.Join(videoDir, "forest.mp4"), "v")
	writeFixture(t, filepath.Join(audioDir, "calm.mp3"), "a")

	return quotesPath, videoDir, audioDir
}

func TestLoad(t *testing.T) {
	quotesPath, videoDir, audioDir := fixturePack(t)

	pack, err := Load(quotesPath, videoDir, audioDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(pack.Quotes) != 3 {
		t.Errorf("Expected 3 usable quotes (empty text skipped), got %d", len(pack.Quotes))
	}
	if pack.Quotes[0].Attribution != "Marcus Aurelius" {
		t.Errorf("Unexpected attribution %q", pack.Quotes[0].Attribution)
	}
	if len(pack.Videos) != 2 {
		t.Errorf("Expected 2 videos, got %d", len(pack.Videos))
	}
	if len(pack.Songs) != 1 {
		t.Errorf("Expected 1 song, got %d", len(pack.Songs))
	}
}

func TestLoad_Errors(t *testing.T) {
	quotesPath, videoDir, audioDir := fixturePack(t)
	emptyDir := t.TempDir()

	tests := []struct {
		name                string
		quotes, video, audio string
	}{
		{"missing quotes file", filepath.Join(emptyDir, "nope.json"), videoDir, audioDir},
		{"empty video library", quotesPath, emptyDir, audioDir},
		{"empty audio library", quotesPath, videoDir, emptyDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.quotes, tt.video, tt.audio); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoad_InvalidQuotes(t *testing.T) {
	_, videoDir, audioDir := fixturePack(t)
	dir := t.TempDir()

	invalid := filepath.Join(dir, "broken.json")
	writeFixture(t, invalid, `{"not": "an array"}`)
	if _, err := Load(invalid, videoDir, audioDir); err == nil {
		t.Error("Expected error for non-array quotes file")
	}

	garbage := filepath.Join(dir, "garbage.json")
	writeFixture(t, garbage, `{{{{`)
	if _, err := Load(garbage, videoDir, audioDir); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestAssign(t *testing.T) {
	quotesPath, videoDir, audioDir := fixturePack(t)
	pack, err := Load(quotesPath, videoDir, audioDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assignments := pack.Assign(5, 42)
	if len(assignments) != 5 {
		t.Fatalf("Expected 5 assignments, got %d", len(assignments))
	}

	// Round-robin: with 2 videos, consecutive assignments alternate.
	if assignments[0].Video == assignments[1].Video {
		t.Error("Expected consecutive assignments to rotate through the video library")
	}
	if assignments[0].Video != assignments[2].Video {
		t.Error("Expected the rotation to wrap after the library is exhausted")
	}

	for i, a := range assignments {
		if a.Quote.Text == "" || a.Video.Path == "" || a.Song.Path == "" {
			t.Errorf("Assignment %d incomplete: %+v", i, a)
		}
	}
}

func TestAssign_Reproducible(t *testing.T) {
	quotesPath, videoDir, audioDir := fixturePack(t)
	pack, err := Load(quotesPath, videoDir, audioDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	first := pack.Assign(4, 7)
	second := pack.Assign(4, 7)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Assignment %d differs across runs with the same seed", i)
		}
	}
}
