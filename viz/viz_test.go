package viz_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/jfechete/ncgen/config"
	"github.com/jfechete/ncgen/geom"
	"github.com/jfechete/ncgen/viz"
)

func TestStampPointSinglePixel(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	viz.StampPoint(dst, geom.NewPoint(2, 2), 1, color.RGBA{R: 255, A: 255})
	got := dst.RGBAAt(2, 2)
	if got.R != 255 || got.A != 255 {
		t.Errorf("pixel at (2,2) = %v, want opaque red", got)
	}
}

func TestStampPointDiscCoversCenter(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 11, 11))
	viz.StampPoint(dst, geom.NewPoint(5, 5), 5, color.RGBA{G: 255, A: 255})
	got := dst.RGBAAt(5, 5)
	if got.G != 255 {
		t.Errorf("disc center not stamped: %v", got)
	}
}

func TestApplyPathProducesFramesAndStampsStart(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 8, 8))
	p := geom.NewPath([]geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(1, 0), geom.NewPoint(2, 0),
	})
	cfg := config.Default()
	cfg.MaxGIFLineFrames = 2
	frames := viz.ApplyPath(bg, &p, color.RGBA{B: 255, A: 255}, color.RGBA{R: 255, A: 255}, cfg)
	if len(frames) == 0 {
		t.Fatal("expected at least one frame")
	}
	first := frames[0].RGBAAt(0, 0)
	if first.R != 255 {
		t.Errorf("start vertex not stamped with start color: %v", first)
	}
}

func TestExportWritesGIFFile(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 4, 4))
	p := geom.NewPath([]geom.Point{geom.NewPoint(0, 0), geom.NewPoint(1, 1)})
	cfg := config.Default()
	frames := viz.ApplyPath(bg, &p, color.RGBA{B: 255, A: 255}, color.RGBA{R: 255, A: 255}, cfg)
	out := filepath.Join(t.TempDir(), "preview.gif")
	if err := viz.Export(out, frames, cfg); err != nil {
		t.Fatalf("Export: %v", err)
	}
}

func TestExportRejectsNoFrames(t *testing.T) {
	if err := viz.Export(filepath.Join(t.TempDir(), "x.gif"), nil, config.Default()); err == nil {
		t.Fatal("expected error exporting zero frames")
	}
}
