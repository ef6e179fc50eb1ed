package frameio

import (
	"bytes"
	"image"
	"image/draw"

	"github.com/rwcarlsen/goexif/exif"
	exif_tiff "github.com/rwcarlsen/goexif/tiff"
)

// orientation is the EXIF flag that specifies the transformation needed to
// display an image the way it was shot.
type orientation int

const (
	orientationUnspecified orientation = iota
	orientationNormal
	orientationFlipH
	orientationRotate180
	orientationFlipV
	orientationTranspose
	orientationRotate270
	orientationTransverse
	orientationRotate90
)

// orientationOf extracts the EXIF orientation tag from encoded image data.
// Only JPEG and TIFF carry EXIF; everything else reports unspecified.
func orientationOf(data []byte) orientation {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil || x == nil {
		return orientationUnspecified
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil || tag == nil || tag.Format() != exif_tiff.IntVal {
		return orientationUnspecified
	}
	if v, err := tag.Int(0); err == nil && v > 0 && v < 9 {
		return orientation(v)
	}
	return orientationUnspecified
}

func (s *Sequence) applyOrientation(o orientation) {
	for _, f := range s.Frames {
		f.Image = fixOrientation(f.Image, o)
	}
	switch o {
	case orientationTranspose, orientationRotate270, orientationTransverse, orientationRotate90:
		s.Width, s.Height = s.Height, s.Width
	}
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Rect, img, b.Min, draw.Src)
	return n
}

// remap builds a dw×dh image whose pixel (dx, dy) is source pixel f(dx, dy).
func remap(src *image.NRGBA, dw, dh int, f func(dx, dy int) (sx, sy int)) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	for dy := 0; dy < dh; dy++ {
		drow := dst.Pix[dy*dst.Stride:]
		for dx := 0; dx < dw; dx++ {
			sx, sy := f(dx, dy)
			si := sy*src.Stride + 4*sx
			copy(drow[4*dx:4*dx+4], src.Pix[si:si+4])
		}
	}
	return dst
}

// fixOrientation applies the transform the orientation flag calls for.
// Rotations are in the screen coordinate sense, so rotate90 turns the top
// right corner into the top left.
func fixOrientation(img image.Image, o orientation) image.Image {
	if o <= orientationNormal {
		return img
	}
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	switch o {
	case orientationFlipH:
		return remap(src, w, h, func(dx, dy int) (int, int) { return w - 1 - dx, dy })
	case orientationRotate180:
		return remap(src, w, h, func(dx, dy int) (int, int) { return w - 1 - dx, h - 1 - dy })
	case orientationFlipV:
		return remap(src, w, h, func(dx, dy int) (int, int) { return dx, h - 1 - dy })
	case orientationTranspose:
		return remap(src, h, w, func(dx, dy int) (int, int) { return dy, dx })
	case orientationRotate270:
		return remap(src, h, w, func(dx, dy int) (int, int) { return dy, h - 1 - dx })
	case orientationTransverse:
		return remap(src, h, w, func(dx, dy int) (int, int) { return w - 1 - dy, h - 1 - dx })
	case orientationRotate90:
		return remap(src, h, w, func(dx, dy int) (int, int) { return w - 1 - dy, dx })
	}
	return img
}
