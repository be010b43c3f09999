// Package export turns rendered frames into image artifacts: single
// PNG captures and animated GIF recordings of a run.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/crawley-dev/physics-toy/internal/sim"
)

// FrameToImage copies a texture into an image. The buffer layout is
// already exactly image.RGBA's Pix layout.
func FrameToImage(data sim.TextureData) (*image.RGBA, error) {
	w, h := data.Size.X, data.Size.Y
	if len(data.Buf) != 4*w*h {
		return nil, fmt.Errorf("buffer length %d does not match %dx%d", len(data.Buf), w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, data.Buf)
	return img, nil
}

// SavePNG writes one frame capture.
func SavePNG(path string, data sim.TextureData) error {
	img, err := FrameToImage(data)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
