package viz

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"

	"github.com/jfechete/ncgen/config"
	"github.com/jfechete/ncgen/ncerr"
)

// BuildGIF assembles frames into an animated GIF, quantizing each frame to
// the standard web-safe palette and spacing them at cfg.GIFFPS frames per
// second. gif.GIF's Delay field is in hundredths of a second, so the
// per-frame delay is 100/cfg.GIFFPS.
func BuildGIF(frames []*image.RGBA, cfg config.Config) *gif.GIF {
	delay := 100 / cfg.GIFFPS
	if delay < 1 {
		delay = 1
	}
	out := &gif.GIF{LoopCount: 0}
	for _, f := range frames {
		paletted := image.NewPaletted(f.Bounds(), palette.WebSafe)
		draw.FloydSteinberg.Draw(paletted, f.Bounds(), f, image.Point{})
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
	}
	return out
}

// Export encodes frames (e.g. those returned by ApplyPath) as an animated
// GIF and writes it to path.
func Export(path string, frames []*image.RGBA, cfg config.Config) error {
	if len(frames) == 0 {
		return ncerr.WithContext(ncerr.ErrInvalidArgument, "no frames to export")
	}
	f, err := os.Create(path)
	if err != nil {
		return ncerr.WithContext(ncerr.ErrIoFailure, "create gif %q", path)
	}
	defer f.Close()

	if err := gif.EncodeAll(f, BuildGIF(frames, cfg)); err != nil {
		return ncerr.WithContext(ncerr.ErrIoFailure, "encode gif %q", path)
	}
	return nil
}
