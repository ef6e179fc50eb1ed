// Package convert applies the broadcast video encodings to whole images:
// planar Y'CbCr in both directions, at 8 bits through the standard library
// image.YCbCr type and at up to 16 bits through the Planes type, with
// optional chroma subsampling.
//
// Pixel values are taken to be gamma encoded in the chosen standard already;
// only the luma/chroma arithmetic and the quantization are applied here, the
// same convention the standard library color.RGBToYCbCr follows.
package convert

import (
	"errors"
	"fmt"
	"image"

	"github.com/kovidgoyal/itur"
)

var _ = fmt.Print

// Subsampling selects how many chroma samples are stored per luma sample.
type Subsampling int

const (
	Sub444 Subsampling = iota // one chroma sample per pixel
	Sub422                    // chroma halved horizontally
	Sub420                    // chroma halved in both directions
)

func (s Subsampling) String() string {
	switch s {
	case Sub422:
		return "4:2:2"
	case Sub420:
		return "4:2:0"
	}
	return "4:4:4"
}

// Ratio returns the equivalent standard library subsample ratio.
func (s Subsampling) Ratio() image.YCbCrSubsampleRatio {
	switch s {
	case Sub422:
		return image.YCbCrSubsampleRatio422
	case Sub420:
		return image.YCbCrSubsampleRatio420
	}
	return image.YCbCrSubsampleRatio444
}

func (s Subsampling) chromaSize(width, height int) (cw, ch int) {
	switch s {
	case Sub422:
		return (width + 1) / 2, height
	case Sub420:
		return (width + 1) / 2, (height + 1) / 2
	}
	return width, height
}

// ErrUnsupportedSubsampling means the subsampling name or ratio is not one
// of 4:4:4, 4:2:2 or 4:2:0.
var ErrUnsupportedSubsampling = errors.New("convert: unsupported chroma subsampling")

// ParseSubsampling parses a subsampling name such as "420" or "4:2:0".
func ParseSubsampling(s string) (Subsampling, error) {
	switch s {
	case "444", "4:4:4":
		return Sub444, nil
	case "422", "4:2:2":
		return Sub422, nil
	case "420", "4:2:0":
		return Sub420, nil
	}
	return Sub444, fmt.Errorf("%w: %q", ErrUnsupportedSubsampling, s)
}

// ErrUnsupportedLevels means the quantization level bit depth does not fit
// the requested output sample type.
var ErrUnsupportedLevels = errors.New("convert: unsupported level bit depth")

type options struct {
	standard itur.YUVStandard
	levels   itur.Levels
	sub      Subsampling
}

var defaultOptions = options{standard: itur.BT709, levels: itur.Studio8, sub: Sub444}

// Option sets an optional parameter for the conversion functions.
type Option func(*options)

// Standard returns an Option that selects the encoding standard. The default
// is BT.709.
func Standard(s itur.YUVStandard) Option {
	return func(o *options) {
		o.standard = s
	}
}

// Levels returns an Option that selects the quantization levels. The default
// is 8-bit studio range.
func Levels(l itur.Levels) Option {
	return func(o *options) {
		o.levels = l
	}
}

// Subsample returns an Option that selects the chroma subsampling used when
// encoding. The default is 4:4:4. Chroma is box averaged over each
// subsampled footprint before quantization.
func Subsample(s Subsampling) Option {
	return func(o *options) {
		o.sub = s
	}
}

func makeOptions(opts []Option) options {
	o := defaultOptions
	for _, option := range opts {
		option(&o)
	}
	return o
}

// ToYCbCr converts img to a planar Y'CbCr image. Only 8-bit levels fit the
// standard library image type; use ToPlanes for deeper code words.
func ToYCbCr(img image.Image, opts ...Option) (*image.YCbCr, error) {
	o := makeOptions(opts)
	if o.levels.Bits != 0 && o.levels.Bits != 8 {
		return nil, fmt.Errorf("%w: %v does not fit image.YCbCr", ErrUnsupportedLevels, o.levels)
	}
	return encodeYCbCr(img, o)
}

// FromYCbCr converts a planar Y'CbCr image back to 8-bit full range RGB.
// The standard and levels options describe how img was encoded; the chroma
// subsampling is taken from img itself, so any standard library ratio can be
// decoded.
func FromYCbCr(img *image.YCbCr, opts ...Option) (*image.NRGBA, error) {
	o := makeOptions(opts)
	if o.levels.Bits != 0 && o.levels.Bits != 8 {
		return nil, fmt.Errorf("%w: %v does not fit image.YCbCr", ErrUnsupportedLevels, o.levels)
	}
	return decodeYCbCr(img, o)
}

// Planes holds Y'CbCr code values as tightly packed planes at up to 16 bits
// per sample. Rows carry no padding: the Y plane is Width*Height samples and
// each chroma plane CWidth*CHeight.
type Planes struct {
	Y, Cb, Cr       []uint16
	Width, Height   int
	CWidth, CHeight int
	Subsampling     Subsampling
	Levels          itur.Levels
}

// YOffset returns the index in Y of the sample for pixel (x, y).
func (p *Planes) YOffset(x, y int) int { return y*p.Width + x }

// COffset returns the index in Cb and Cr of the chroma sample covering pixel
// (x, y).
func (p *Planes) COffset(x, y int) int {
	switch p.Subsampling {
	case Sub422:
		return y*p.CWidth + x/2
	case Sub420:
		return (y/2)*p.CWidth + x/2
	}
	return y*p.CWidth + x
}

// ToPlanes converts img to planar code values at 8 to 16 bits per sample.
func ToPlanes(img image.Image, opts ...Option) (*Planes, error) {
	o := makeOptions(opts)
	if o.levels.Bits != 0 && (o.levels.Bits < 8 || o.levels.Bits > 16) {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedLevels, o.levels.Bits)
	}
	return encodePlanes(img, o)
}

// FromPlanes converts planar code values back to 16-bit full range RGB. The
// levels and subsampling are taken from p; the standard option selects the
// decoding arithmetic.
func FromPlanes(p *Planes, opts ...Option) (*image.NRGBA64, error) {
	o := makeOptions(opts)
	return decodePlanes(p, o)
}
