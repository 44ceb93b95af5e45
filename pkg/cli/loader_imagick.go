//go:build imagick

package cli

import (
	"fmt"

	"github.com/Fepozopo/img2num/pkg/img2num"
	"gopkg.in/gographics/imagick.v3/imagick"
)

// DecodeRgba8 reads path from disk via ImageMagick's MagickWand, giving
// the CLI decode support for formats the standard library doesn't ship
// decoders for (TIFF, WEBP, HEIC, PSD, ...). Built only under the
// imagick tag; the default build uses loader.go's stdlib decoders.
func DecodeRgba8(path string) (*img2num.Rgba8, error) {
	imagick.Initialize()
	defer imagick.Terminate()

	mw := imagick.NewMagickWand()
	defer mw.Destroy()

	if err := mw.ReadImage(path); err != nil {
		return nil, fmt.Errorf("imagick: read %s: %w", path, err)
	}
	if err := mw.AutoOrientImage(); err != nil {
		return nil, fmt.Errorf("imagick: auto-orient %s: %w", path, err)
	}

	w := int(mw.GetImageWidth())
	h := int(mw.GetImageHeight())
	pixels, err := mw.ExportImagePixels(0, 0, uint(w), uint(h), "RGBA", imagick.PIXEL_CHAR)
	if err != nil {
		return nil, fmt.Errorf("imagick: export pixels for %s: %w", path, err)
	}
	raw, ok := pixels.([]byte)
	if !ok || len(raw) != w*h*4 {
		return nil, fmt.Errorf("imagick: unexpected pixel buffer for %s", path)
	}

	out := img2num.NewRgba8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			out.Set(x, y, raw[i], raw[i+1], raw[i+2], raw[i+3])
		}
	}
	return out, nil
}
