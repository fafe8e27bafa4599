package romloader

import (
	"testing"
)

// 7z archives cannot be written with the decode-only library, so these
// tests cover the failure paths and format detection.

func TestExtractFrom7zMissingFile(t *testing.T) {
	if _, _, err := extractFrom7z("/nonexistent/game.7z", SNESExtensions); err == nil {
		t.Error("missing file must not extract")
	}
}

func TestExtractFrom7zRejectsNonArchive(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"plain text", []byte("not a 7z file")},
		{"empty", nil},
		{"truncated signature", magic7z[:3]},
		{"signature with garbage", append(append([]byte{}, magic7z...), make([]byte, 100)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "game.7z", tt.data)
			if _, _, err := extractFrom7z(path, SNESExtensions); err == nil {
				t.Error("invalid archive must not extract")
			}
		})
	}
}

func TestLoadRoutes7zToExtractor(t *testing.T) {
	path := writeFile(t, "game.dat", append(append([]byte{}, magic7z...), []byte("junk")...))
	if _, _, err := Load(path, SNESExtensions); err == nil {
		t.Error("fake archive must not load")
	}
}
