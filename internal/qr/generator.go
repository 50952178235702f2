package qr

import (
	"fmt"
	"image/color"
	"os"
	"path"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	// qrSubdir is the directory under the static root holding generated
	// images; the returned relative paths are rooted here.
	qrSubdir = "qrcodes"

	// modulePixels is the rendered size of one QR module. Visual parameters
	// are fixed in this version; they are not user-configurable.
	modulePixels = 8
)

// Generator renders QR code PNGs into a static directory, one file per
// product key. Regenerating a key overwrites its previous image.
type Generator struct {
	staticDir string
}

// NewGenerator creates a generator writing under staticDir/qrcodes.
func NewGenerator(staticDir string) *Generator {
	return &Generator{staticDir: staticDir}
}

// Generate encodes url into a PNG stored at the deterministic path for
// productKey and returns the path relative to the static root, e.g.
// "qrcodes/ors.png". Encoding or write failures are returned to the caller
// and fail only the request that triggered them.
func (g *Generator) Generate(url, productKey string) (string, error) {
	dir := filepath.Join(g.staticDir, qrSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create QR directory: %w", err)
	}

	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR content: %w", err)
	}
	code.ForegroundColor = color.Black
	code.BackgroundColor = color.White

	filename := productKey + ".png"
	// Negative size renders each module at modulePixels pixels.
	if err := code.WriteFile(-modulePixels, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("failed to write QR image: %w", err)
	}

	return path.Join(qrSubdir, filename), nil
}
