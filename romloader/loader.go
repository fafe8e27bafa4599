// Package romloader loads cartridge images from disk, extracting them
// from ZIP, 7z, RAR, gzip, and tar.gz archives as needed.
package romloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxROMSize caps extracted images. The largest licensed SNES
// cartridge is 6MB; 8MB leaves room for a copier header and padding.
const maxROMSize = 8 * 1024 * 1024

var (
	// ErrNoROMFile means the archive held no file with a cartridge
	// extension.
	ErrNoROMFile = errors.New("no ROM file found in archive")

	// ErrUnsupportedFormat means the file is neither a known archive
	// nor a raw image with a recognized extension.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrFileTooLarge means the image exceeds maxROMSize.
	ErrFileTooLarge = errors.New("file exceeds maximum size limit")
)

type formatType int

const (
	formatUnknown formatType = iota
	formatRaw
	formatZIP
	format7z
	formatGzip
	formatRAR
)

var (
	magicZIP    = []byte{0x50, 0x4B, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4B, 0x05, 0x06} // empty zip
	magic7z     = []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}
	magicGzip   = []byte{0x1F, 0x8B}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21} // "Rar!"
)

// magicTable maps file signatures to formats. Checked in order; the
// two-byte gzip magic goes last so longer signatures win.
var magicTable = []struct {
	magic  []byte
	format formatType
}{
	{magicZIP, formatZIP},
	{magicZIPEnd, formatZIP},
	{magic7z, format7z},
	{magicRAR, formatRAR},
	{magicGzip, formatGzip},
}

var archiveExtensions = map[string]formatType{
	".zip": formatZIP,
	".7z":  format7z,
	".gz":  formatGzip,
	".tgz": formatGzip,
	".rar": formatRAR,
}

// Load reads a cartridge image from path. Archives are detected by
// signature first, extension second, and the first file inside with a
// matching extension is extracted. A non-archive file must carry one
// of the given extensions itself.
//
// Returns the image bytes and its display name (base name only).
func Load(path string, extensions []string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return nil, "", fmt.Errorf("failed to read file header: %w", err)
	}

	switch detectFormat(header[:n], path, extensions) {
	case formatRaw:
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, "", fmt.Errorf("failed to seek file: %w", err)
		}
		return readEntry(path, f)
	case formatZIP:
		return extractFromZIP(path, extensions)
	case format7z:
		return extractFrom7z(path, extensions)
	case formatGzip:
		return extractFromGzip(path, extensions)
	case formatRAR:
		return extractFromRAR(path, extensions)
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// detectFormat classifies a file by signature, then by extension.
func detectFormat(header []byte, path string, extensions []string) formatType {
	for _, entry := range magicTable {
		if len(header) >= len(entry.magic) && bytes.HasPrefix(header, entry.magic) {
			return entry.format
		}
	}

	lower := strings.ToLower(path)
	ext := filepath.Ext(lower)
	if format, ok := archiveExtensions[ext]; ok {
		return format
	}
	if strings.HasSuffix(lower, ".tar.gz") {
		return formatGzip
	}
	for _, romExt := range extensions {
		if ext == strings.ToLower(romExt) {
			return formatRaw
		}
	}
	return formatUnknown
}

// isROMFile reports whether name carries one of the cartridge
// extensions, case-insensitively.
func isROMFile(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// readEntry reads one image under the size cap and pairs it with its
// display name.
func readEntry(name string, r io.Reader) ([]byte, string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxROMSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(data) > maxROMSize {
		return nil, "", fmt.Errorf("%s: %w", name, ErrFileTooLarge)
	}
	return data, filepath.Base(name), nil
}
