package romloader

import (
	"fmt"
	"io"

	"github.com/nwaples/rardecode/v2"
)

// extractFromRAR returns the first cartridge image found in a RAR
// archive. RAR is read as a stream, so entries are walked in archive
// order.
func extractFromRAR(path string, extensions []string) ([]byte, string, error) {
	archive, err := rardecode.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open rar: %w", err)
	}
	defer archive.Close()

	for {
		header, err := archive.Next()
		if err == io.EOF {
			return nil, "", ErrNoROMFile
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to read rar entry: %w", err)
		}
		if header.IsDir || !isROMFile(header.Name, extensions) {
			continue
		}
		return readEntry(header.Name, archive)
	}
}
