package romloader

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

// sfcImage builds a cartridge image of the given number of 32KB banks,
// filled with a recognizable pattern.
func sfcImage(banks int) []byte {
	rom := make([]byte, banks*32768)
	for i := range rom {
		rom[i] = byte(i % 251)
	}
	return rom
}

// headered prepends the 512-byte copier header some dumps carry.
func headered(rom []byte) []byte {
	return append(make([]byte, copierHeaderSize), rom...)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// writeZip builds a .zip holding the given entries in order.
func writeZip(t *testing.T, entries map[string][]byte, order []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create zip: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, name := range order {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
		if _, err := fw.Write(entries[name]); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return path
}

func writeGzip(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create gzip: %v", err)
	}
	defer f.Close()

	w := gzip.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("failed to write gzip: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close gzip: %v", err)
	}
	return path
}

func writeTarGz(t *testing.T, entries map[string][]byte, order []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.tar.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create tar.gz: %v", err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	for _, name := range order {
		if err := tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0644,
			Size:     int64(len(entries[name])),
			Typeflag: tar.TypeReg,
		}); err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
		if _, err := tw.Write(entries[name]); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRawImage(t *testing.T) {
	for _, ext := range SNESExtensions {
		rom := sfcImage(8)
		path := writeFile(t, "game"+ext, rom)

		data, name, err := Load(path, SNESExtensions)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", ext, err)
		}
		if !bytes.Equal(data, rom) {
			t.Errorf("%s: data does not match the written image", ext)
		}
		if name != "game"+ext {
			t.Errorf("%s: name = %q, want game%s", ext, name, ext)
		}
	}
}

func TestLoadFromZip(t *testing.T) {
	rom := sfcImage(8)
	path := writeZip(t, map[string][]byte{"game.sfc": rom}, []string{"game.sfc"})

	data, name, err := Load(path, SNESExtensions)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(data, rom) {
		t.Error("extracted data does not match the image")
	}
	if name != "game.sfc" {
		t.Errorf("name = %q, want game.sfc", name)
	}
}

func TestLoadFromZipSkipsExtras(t *testing.T) {
	// Release bundles usually pack the dump with text files; only the
	// cartridge image comes out.
	rom := sfcImage(4)
	path := writeZip(t, map[string][]byte{
		"readme.txt":          []byte("dumped 1997"),
		"sets/game (U).sfc":   rom,
		"sets/game (U).patch": []byte("ips"),
	}, []string{"readme.txt", "sets/game (U).sfc", "sets/game (U).patch"})

	data, name, err := Load(path, SNESExtensions)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(data, rom) {
		t.Error("extracted data does not match the image")
	}
	if name != "game (U).sfc" {
		t.Errorf("name = %q, want base name without the directory", name)
	}
}

func TestLoadCartridgeFromZipStripsCopierHeader(t *testing.T) {
	// A headered .smc dump inside a zip: extraction keeps the header,
	// LoadCartridge strips it.
	rom := sfcImage(8)
	path := writeZip(t, map[string][]byte{"game.smc": headered(rom)}, []string{"game.smc"})

	data, name, err := LoadCartridge(path)
	if err != nil {
		t.Fatalf("LoadCartridge failed: %v", err)
	}
	if name != "game.smc" {
		t.Errorf("name = %q, want game.smc", name)
	}
	if !bytes.Equal(data, rom) {
		t.Error("copier header not stripped from archived dump")
	}
}

func TestLoadFromGzip(t *testing.T) {
	rom := sfcImage(8)
	path := writeGzip(t, "game.sfc.gz", rom)

	data, name, err := Load(path, SNESExtensions)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(data, rom) {
		t.Error("decompressed data does not match the image")
	}
	if name != "game.sfc" {
		t.Errorf("name = %q, want game.sfc (without .gz)", name)
	}
}

func TestLoadFromTarGz(t *testing.T) {
	rom := sfcImage(8)
	path := writeTarGz(t, map[string][]byte{
		"notes.txt": []byte("x"),
		"game.fig":  rom,
	}, []string{"notes.txt", "game.fig"})

	data, name, err := Load(path, SNESExtensions)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(data, rom) {
		t.Error("extracted data does not match the image")
	}
	if name != "game.fig" {
		t.Errorf("name = %q, want game.fig", name)
	}
}

func TestLoadNoImageInArchive(t *testing.T) {
	path := writeZip(t, map[string][]byte{"readme.txt": []byte("hello")}, []string{"readme.txt"})
	if _, _, err := Load(path, SNESExtensions); err != ErrNoROMFile {
		t.Errorf("err = %v, want ErrNoROMFile", err)
	}
}

func TestLoadOversizedImage(t *testing.T) {
	// Compresses tightly, inflates past the cap.
	path := writeGzip(t, "huge.sfc.gz", make([]byte, maxROMSize+1))
	if _, _, err := Load(path, SNESExtensions); err == nil {
		t.Error("oversized image must not load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load("/nonexistent/game.sfc", SNESExtensions); err == nil {
		t.Error("missing file must not load")
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeFile(t, "game.xyz", sfcImage(1))
	if _, _, err := Load(path, SNESExtensions); err == nil {
		t.Error("unrecognized extension must not load")
	}
}

func TestDetectFormatBySignature(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   formatType
	}{
		{"zip", magicZIP, formatZIP},
		{"empty zip", magicZIPEnd, formatZIP},
		{"7z", magic7z, format7z},
		{"gzip", magicGzip, formatGzip},
		{"rar", magicRAR, formatRAR},
		{"none", []byte{0x00, 0x01}, formatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The extension-free path forces signature detection.
			if got := detectFormat(tt.header, "file.dat", SNESExtensions); got != tt.want {
				t.Errorf("detectFormat = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDetectFormatByExtension(t *testing.T) {
	tests := []struct {
		path string
		want formatType
	}{
		{"game.sfc", formatRaw},
		{"game.SMC", formatRaw},
		{"game.fig", formatRaw},
		{"game.zip", formatZIP},
		{"game.7z", format7z},
		{"game.gz", formatGzip},
		{"game.tgz", formatGzip},
		{"game.tar.gz", formatGzip},
		{"game.rar", formatRAR},
		{"game.RAR", formatRAR},
		{"game.nes", formatUnknown},
	}
	for _, tt := range tests {
		if got := detectFormat(nil, tt.path, SNESExtensions); got != tt.want {
			t.Errorf("detectFormat(%s) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestIsROMFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"game.sfc", true},
		{"game.SFC", true},
		{"game.smc", true},
		{"Game (U) [!].fig", true},
		{"game.sfc.bak", false},
		{"readme.txt", false},
		{"game", false},
	}
	for _, tt := range tests {
		if got := isROMFile(tt.name, SNESExtensions); got != tt.want {
			t.Errorf("isROMFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
