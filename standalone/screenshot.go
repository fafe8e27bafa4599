package standalone

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/OpenEmu/BSNES-Core/standalone/storage"
)

// ScreenshotManager saves the filtered frame the core just rendered.
// Capture runs on the emulation goroutine, inside the same frame
// callback that wrote the pixels, so the image matches exactly what is
// about to reach the display.
type ScreenshotManager struct {
	exportDir   string
	contentPath string
}

// NewScreenshotManager creates a screenshot manager. exportDir is the
// configured export directory; contentPath is the loaded ROM's path,
// whose directory serves as the fallback when exportDir is empty.
func NewScreenshotManager(exportDir, contentPath string) *ScreenshotManager {
	return &ScreenshotManager{
		exportDir:   exportDir,
		contentPath: contentPath,
	}
}

// SetExportDir updates the configured export directory.
func (m *ScreenshotManager) SetExportDir(dir string) {
	m.exportDir = dir
}

// Capture writes an XRGB8888 frame to a timestamped PNG in the export
// directory and returns its path.
func (m *ScreenshotManager) Capture(pixels []uint32, width, height int) (string, error) {
	if width <= 0 || height <= 0 || len(pixels) < width*height {
		return "", fmt.Errorf("invalid screenshot frame %dx%d", width, height)
	}

	dir := resolveExportDir(m.exportDir, m.contentPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	fullPath := filepath.Join(dir, screenshotFilename(time.Now()))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			row[x*4] = byte(p >> 16)
			row[x*4+1] = byte(p >> 8)
			row[x*4+2] = byte(p)
			row[x*4+3] = 0xFF
		}
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}

	return fullPath, nil
}

// screenshotFilename builds the timestamped filename for a capture.
func screenshotFilename(t time.Time) string {
	return "screenshot-" + t.Format("20060102-150405") + ".png"
}

// resolveExportDir picks the directory exported files land in: the
// configured export path, or the loaded ROM's directory when none is
// configured.
func resolveExportDir(exportDir, contentPath string) string {
	return storage.ResolvePath(exportDir, "", contentPath)
}
