package convert

import (
	"fmt"
	"image"

	"github.com/kovidgoyal/go-parallel"
	"github.com/kovidgoyal/itur"
)

var _ = fmt.Print

func unpremultiply8(r, a uint8) uint8 {
	return uint8((uint16(r) * 0xff) / uint16(a))
}

func unpremultiply(r, a uint32) uint16 {
	return uint16((r * 0xffff) / a)
}

// rowReader fills dst with 3*width gamma encoded RGB values from row y of
// the source, normalized to [0,1] with alpha removed. Fully transparent
// pixels read as black.
type rowReader func(y int, dst []float64)

func readerFor(img image.Image) rowReader {
	b := img.Bounds()
	width := b.Dx()
	switch src := img.(type) {
	case *image.NRGBA:
		return func(y int, dst []float64) {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			_ = row[4*(width-1)]
			for range width {
				dst[0] = float64(row[0]) / 255
				dst[1] = float64(row[1]) / 255
				dst[2] = float64(row[2]) / 255
				row = row[4:]
				dst = dst[3:]
			}
		}
	case *image.NRGBA64:
		return func(y int, dst []float64) {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			_ = row[8*(width-1)]
			for range width {
				dst[0] = float64(uint16(row[0])<<8|uint16(row[1])) / 65535
				dst[1] = float64(uint16(row[2])<<8|uint16(row[3])) / 65535
				dst[2] = float64(uint16(row[4])<<8|uint16(row[5])) / 65535
				row = row[8:]
				dst = dst[3:]
			}
		}
	case *image.RGBA:
		return func(y int, dst []float64) {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			_ = row[4*(width-1)]
			for range width {
				if a := row[3]; a == 0 {
					dst[0], dst[1], dst[2] = 0, 0, 0
				} else {
					dst[0] = float64(unpremultiply8(row[0], a)) / 255
					dst[1] = float64(unpremultiply8(row[1], a)) / 255
					dst[2] = float64(unpremultiply8(row[2], a)) / 255
				}
				row = row[4:]
				dst = dst[3:]
			}
		}
	case *image.Gray:
		return func(y int, dst []float64) {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			_ = row[width-1]
			for x := range width {
				g := float64(row[x]) / 255
				dst[0], dst[1], dst[2] = g, g, g
				dst = dst[3:]
			}
		}
	default:
		return func(y int, dst []float64) {
			for x := range width {
				r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				if a == 0 {
					dst[0], dst[1], dst[2] = 0, 0, 0
				} else {
					dst[0] = float64(unpremultiply(r, a)) / 65535
					dst[1] = float64(unpremultiply(g, a)) / 65535
					dst[2] = float64(unpremultiply(bl, a)) / 65535
				}
				dst = dst[3:]
			}
		}
	}
}

// chromaBox averages the full resolution difference samples covered by
// chroma sample (cx, cy), truncating the box at the right and bottom edges.
func chromaBox(ub, vb []float32, width, height int, sub Subsampling, cx, cy int) (u, v float64) {
	x0, y0, x1, y1 := cx, cy, cx+1, cy+1
	switch sub {
	case Sub422:
		x0, x1 = 2*cx, min(2*cx+2, width)
	case Sub420:
		x0, x1 = 2*cx, min(2*cx+2, width)
		y0, y1 = 2*cy, min(2*cy+2, height)
	}
	var su, sv float64
	for y := y0; y < y1; y++ {
		row := y * width
		for x := x0; x < x1; x++ {
			su += float64(ub[row+x])
			sv += float64(vb[row+x])
		}
	}
	n := float64((x1 - x0) * (y1 - y0))
	return su / n, sv / n
}

// differencePlanes runs the luma pass: it writes a quantized luma code for
// every pixel through sink and returns the full resolution difference
// samples for the chroma pass.
func differencePlanes(img image.Image, o options, sink func(x, y int, yq uint16)) (ub, vb []float32, err error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	ub = make([]float32, width*height)
	vb = make([]float32, width*height)
	if width == 0 || height == 0 {
		return ub, vb, nil
	}
	read := readerFor(img)
	d := o.standard.Difference()
	wr, wg, wb := d.LumaWeights()
	f := func(start, limit int) {
		dst := make([]float64, 3*width)
		for y := start; y < limit; y++ {
			read(y, dst)
			row := dst
			urow := ub[y*width:]
			vrow := vb[y*width:]
			for x := range width {
				r, g, bl := row[0], row[1], row[2]
				yy := wr*r + wg*g + wb*bl
				yq, _, _ := o.levels.QuantizeYUV(yy, 0, 0)
				sink(x, y, yq)
				urow[x] = float32(d.NormBlue(bl - yy))
				vrow[x] = float32(d.NormRed(r - yy))
				row = row[3:]
			}
		}
	}
	if err = parallel.Run_in_parallel_over_range(0, f, 0, height); err != nil {
		return nil, nil, err
	}
	return ub, vb, nil
}

func encodeYCbCr(img image.Image, o options) (*image.YCbCr, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	ans := image.NewYCbCr(image.Rect(0, 0, width, height), o.sub.Ratio())
	ub, vb, err := differencePlanes(img, o, func(x, y int, yq uint16) {
		ans.Y[y*ans.YStride+x] = uint8(yq)
	})
	if err != nil {
		return nil, err
	}
	cw, ch := o.sub.chromaSize(width, height)
	f := func(start, limit int) {
		for cy := start; cy < limit; cy++ {
			crow := cy * ans.CStride
			for cx := range cw {
				u, v := chromaBox(ub, vb, width, height, o.sub, cx, cy)
				_, cbq, crq := o.levels.QuantizeYUV(0, u, v)
				ans.Cb[crow+cx] = uint8(cbq)
				ans.Cr[crow+cx] = uint8(crq)
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, ch); err != nil {
		return nil, err
	}
	return ans, nil
}

func encodePlanes(img image.Image, o options) (*Planes, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	cw, ch := o.sub.chromaSize(width, height)
	ans := &Planes{
		Y: make([]uint16, width*height), Cb: make([]uint16, cw*ch), Cr: make([]uint16, cw*ch),
		Width: width, Height: height, CWidth: cw, CHeight: ch,
		Subsampling: o.sub, Levels: o.levels,
	}
	ub, vb, err := differencePlanes(img, o, func(x, y int, yq uint16) {
		ans.Y[y*width+x] = yq
	})
	if err != nil {
		return nil, err
	}
	f := func(start, limit int) {
		for cy := start; cy < limit; cy++ {
			crow := cy * cw
			for cx := range cw {
				u, v := chromaBox(ub, vb, width, height, o.sub, cx, cy)
				_, cbq, crq := o.levels.QuantizeYUV(0, u, v)
				ans.Cb[crow+cx] = cbq
				ans.Cr[crow+cx] = crq
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, ch); err != nil {
		return nil, err
	}
	return ans, nil
}

func decodeYCbCr(img *image.YCbCr, o options) (*image.NRGBA, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	ans := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return ans, nil
	}
	d := o.standard.Difference()
	wr, wg, wb := d.LumaWeights()
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			drow := ans.Pix[ans.Stride*y:]
			_ = drow[4*(width-1)]
			for x := range width {
				yq := img.Y[img.YOffset(b.Min.X+x, b.Min.Y+y)]
				ci := img.COffset(b.Min.X+x, b.Min.Y+y)
				ya, u, v := o.levels.DequantizeYUV(uint16(yq), uint16(img.Cb[ci]), uint16(img.Cr[ci]))
				bl := ya + d.DenormBlue(u)
				r := ya + d.DenormRed(v)
				g := (ya - wr*r - wb*bl) / wg
				rq, gq, bq := itur.Full8.QuantizeRGB(r, g, bl)
				drow[0], drow[1], drow[2], drow[3] = uint8(rq), uint8(gq), uint8(bq), 0xff
				drow = drow[4:]
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, height); err != nil {
		return nil, err
	}
	return ans, nil
}

func decodePlanes(p *Planes, o options) (*image.NRGBA64, error) {
	width, height := p.Width, p.Height
	ans := image.NewNRGBA64(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return ans, nil
	}
	d := o.standard.Difference()
	wr, wg, wb := d.LumaWeights()
	full16 := itur.Levels{Bits: 16, Full: true}
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			drow := ans.Pix[ans.Stride*y:]
			_ = drow[8*(width-1)]
			for x := range width {
				ci := p.COffset(x, y)
				ya, u, v := p.Levels.DequantizeYUV(p.Y[y*width+x], p.Cb[ci], p.Cr[ci])
				bl := ya + d.DenormBlue(u)
				r := ya + d.DenormRed(v)
				g := (ya - wr*r - wb*bl) / wg
				rq, gq, bq := full16.QuantizeRGB(r, g, bl)
				s := drow[0:8:8]
				s[0] = uint8(rq >> 8)
				s[1] = uint8(rq)
				s[2] = uint8(gq >> 8)
				s[3] = uint8(gq)
				s[4] = uint8(bq >> 8)
				s[5] = uint8(bq)
				s[6] = 0xff
				s[7] = 0xff
				drow = drow[8:]
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, height); err != nil {
		return nil, err
	}
	return ans, nil
}
