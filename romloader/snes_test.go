package romloader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestHasCopierHeader(t *testing.T) {
	testCases := []struct {
		name     string
		size     int
		expected bool
	}{
		{"bare 256KB image", 256 * 1024, false},
		{"headered 256KB image", 256*1024 + 512, true},
		{"bare 1MB image", 1024 * 1024, false},
		{"headered 1MB image", 1024*1024 + 512, true},
		{"header alone", 512, false},
		{"empty", 0, false},
		{"odd size", 256*1024 + 100, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rom := make([]byte, tc.size)
			if got := HasCopierHeader(rom); got != tc.expected {
				t.Errorf("HasCopierHeader(len %d) = %v, want %v", tc.size, got, tc.expected)
			}
		})
	}
}

func TestStripCopierHeader(t *testing.T) {
	rom := make([]byte, 32768+512)
	for i := range rom {
		rom[i] = byte(i)
	}

	stripped := StripCopierHeader(rom)
	if len(stripped) != 32768 {
		t.Fatalf("stripped length = %d, want 32768", len(stripped))
	}
	if !bytes.Equal(stripped, rom[512:]) {
		t.Error("stripped data does not match ROM body")
	}

	// Unheadered image passes through untouched.
	bare := make([]byte, 32768)
	if got := StripCopierHeader(bare); len(got) != 32768 {
		t.Errorf("bare image length changed to %d", len(got))
	}
}

func TestLoadCartridgeStripsHeader(t *testing.T) {
	rom := make([]byte, 32768+512)
	for i := range rom {
		rom[i] = byte(i % 251)
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "game.smc")
	if err := os.WriteFile(path, rom, 0644); err != nil {
		t.Fatal(err)
	}

	data, name, err := LoadCartridge(path)
	if err != nil {
		t.Fatalf("LoadCartridge failed: %v", err)
	}
	if name != "game.smc" {
		t.Errorf("name = %q, want game.smc", name)
	}
	if len(data) != 32768 {
		t.Errorf("data length = %d, want 32768 after header strip", len(data))
	}
	if !bytes.Equal(data, rom[512:]) {
		t.Error("data does not match ROM body")
	}
}

func TestLoadCartridgeRejectsEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "empty.sfc")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadCartridge(path); err == nil {
		t.Error("LoadCartridge accepted an empty file")
	}
}
