package romloader

import (
	"archive/zip"
	"fmt"
)

// extractFromZIP returns the first cartridge image found in a ZIP
// archive. Dumps inside archives often keep their copier headers;
// those ride along here and are stripped by LoadCartridge.
func extractFromZIP(path string, extensions []string) ([]byte, string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open zip: %w", err)
	}
	defer archive.Close()

	for _, entry := range archive.File {
		if entry.FileInfo().IsDir() || !isROMFile(entry.Name, extensions) {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s in archive: %w", entry.Name, err)
		}
		data, name, err := readEntry(entry.Name, rc)
		rc.Close()
		return data, name, err
	}
	return nil, "", ErrNoROMFile
}
