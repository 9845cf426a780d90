// Package imgio is the decoding collaborator: it reads an on-disk raster
// into the minimal BinaryImage/GrayImage shapes that skeleton and
// heightmap consume, independent of source format.
package imgio

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/jfechete/ncgen/nclog"
	"github.com/jfechete/ncgen/ncerr"
)

// Decode opens path and decodes it via the standard image registry. PNG,
// JPEG and GIF are registered by the stdlib blank imports above; BMP and
// TIFF are registered by golang.org/x/image, extending the format set
// beyond what the standard library covers on its own.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ncerr.WithContext(ncerr.ErrIoFailure, "open image %q", path)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, ncerr.WithContext(ncerr.ErrIoFailure, "decode image %q", path)
	}
	nclog.Logger().Debug("decoded image", "path", path, "format", format, "bounds", img.Bounds())
	return img, nil
}
