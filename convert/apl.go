package convert

import (
	"image"

	"github.com/kovidgoyal/go-parallel"
	"github.com/kovidgoyal/itur"
	"github.com/kovidgoyal/itur/lut"
)

// linear8 returns the fastest available 8 bit code to linear light mapping
// for the transfer curve, using the shared lookup tables for the built in
// curve families.
func linear8(t itur.TransferFunction) func(uint8) float32 {
	switch t.(type) {
	case itur.Transfer601709:
		return lut.From8Bit601709
	case itur.Transfer2020:
		return lut.From8Bit2020
	}
	return func(v uint8) float32 { return float32(t.ToLinear(float64(v) / 255)) }
}

// AveragePictureLevel returns the mean linear light luminance of img under
// the standard's transfer curve and primaries, on a scale where video black
// is 0 and reference white is 1. Fully transparent pixels count as black;
// alpha is otherwise ignored.
func AveragePictureLevel(img image.Image, s itur.RGBStandard) (float64, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return 0, nil
	}
	red, green, blue := s.Space().Primaries()
	wr, wg, wb := red.LuminanceY, green.LuminanceY, blue.LuminanceY
	toLinear := linear8(s.Transfer())
	rowsums := make([]float64, height)
	var f func(start, limit int)
	switch src := img.(type) {
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
				_ = row[4*(width-1)]
				var sum float64
				for range width {
					if row[3] != 0 {
						sum += wr*float64(toLinear(row[0])) + wg*float64(toLinear(row[1])) + wb*float64(toLinear(row[2]))
					}
					row = row[4:]
				}
				rowsums[y] = sum
			}
		}
	case *image.RGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
				_ = row[4*(width-1)]
				var sum float64
				for range width {
					if a := row[3]; a != 0 {
						r := toLinear(unpremultiply8(row[0], a))
						g := toLinear(unpremultiply8(row[1], a))
						bl := toLinear(unpremultiply8(row[2], a))
						sum += wr*float64(r) + wg*float64(g) + wb*float64(bl)
					}
					row = row[4:]
				}
				rowsums[y] = sum
			}
		}
	case *image.Gray:
		wsum := wr + wg + wb
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
				_ = row[width-1]
				var sum float64
				for x := range width {
					sum += wsum * float64(toLinear(row[x]))
				}
				rowsums[y] = sum
			}
		}
	default:
		lin := s.Transfer().ToLinear
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				var sum float64
				for x := range width {
					r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
					if a != 0 {
						sum += wr * lin(float64(unpremultiply(r, a))/65535)
						sum += wg * lin(float64(unpremultiply(g, a))/65535)
						sum += wb * lin(float64(unpremultiply(bl, a))/65535)
					}
				}
				rowsums[y] = sum
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, height); err != nil {
		return 0, err
	}
	var total float64
	for _, s := range rowsums {
		total += s
	}
	return total / float64(width*height), nil
}
