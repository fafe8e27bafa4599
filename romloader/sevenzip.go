package romloader

import (
	"fmt"

	"github.com/bodgit/sevenzip"
)

// extractFrom7z returns the first cartridge image found in a 7z
// archive.
func extractFrom7z(path string, extensions []string) ([]byte, string, error) {
	archive, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open 7z: %w", err)
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
