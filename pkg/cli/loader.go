//go:build !imagick

package cli

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/Fepozopo/img2num/pkg/img2num"
	"github.com/Fepozopo/img2num/pkg/stdimg"
)

// DecodeRgba8 reads path from disk and decodes it into an *img2num.Rgba8
// buffer using the standard library's image decoders (png, jpeg, gif,
// registered via their package init functions) plus EXIF auto-orientation
// for JPEG. This is the default build; the imagick build tag swaps in
// loader_imagick.go for broader format coverage.
func DecodeRgba8(path string) (*img2num.Rgba8, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	orientation := 1
	if len(b) >= 3 && bytes.Equal(b[:3], []byte{0xFF, 0xD8, 0xFF}) {
		if o, oerr := extractJPEGOrientation(b); oerr == nil && o >= 1 && o <= 8 {
			orientation = o
		}
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if orientation != 1 {
		img = stdimg.AutoOrient(img, orientation)
	}
	return nrgbaToRgba8(stdimg.ToNRGBA(img)), nil
}
