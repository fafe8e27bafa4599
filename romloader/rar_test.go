package romloader

import (
	"testing"
)

// RAR archives cannot be written with the decode-only library, so
// these tests cover the failure paths and format detection.

func TestExtractFromRARMissingFile(t *testing.T) {
	if _, _, err := extractFromRAR("/nonexistent/game.rar", SNESExtensions); err == nil {
		t.Error("missing file must not extract")
	}
}

func TestExtractFromRARRejectsNonArchive(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"plain text", []byte("not a rar file")},
		{"empty", nil},
		{"truncated signature", magicRAR[:2]},
		{"signature only", magicRAR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "game.rar", tt.data)
			if _, _, err := extractFromRAR(path, SNESExtensions); err == nil {
				t.Error("invalid archive must not extract")
			}
		})
	}
}

func TestExtractFromRARCorruptBody(t *testing.T) {
	// Valid RAR5 signature followed by garbage.
	data := append(append([]byte{}, magicRAR...), 0x1a, 0x07, 0x01, 0x00)
	data = append(data, make([]byte, 100)...)
	path := writeFile(t, "game.rar", data)

	// The decoder may panic instead of erroring on mangled input.
	defer func() {
		if r := recover(); r != nil {
			t.Logf("decoder panicked on corrupt archive: %v", r)
		}
	}()
	if _, _, err := extractFromRAR(path, SNESExtensions); err == nil {
		t.Error("corrupt archive must not extract")
	}
}

func TestLoadRoutesRARToExtractor(t *testing.T) {
	// Signature routing happens before the decoder sees the file, so a
	// fake archive reaches the extractor and fails there.
	path := writeFile(t, "game.dat", append(append([]byte{}, magicRAR...), []byte("junk")...))
	if _, _, err := Load(path, SNESExtensions); err == nil {
		t.Error("fake archive must not load")
	}
}
