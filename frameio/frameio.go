// Package frameio decodes still images and animations into a uniform frame
// sequence that the conversion functions can consume. GIF and animated PNG
// keep their timing and compositing metadata; JPEG, BMP, TIFF and WEBP
// stills decode to single frame sequences with EXIF auto-orientation.
package frameio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/kettek/apng"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var _ = fmt.Print

// Frame is one image of a decoded sequence.
type Frame struct {
	Number      uint // 1 based position in the sequence
	X, Y        int  // placement of this frame on the canvas
	Image       image.Image
	Delay       time.Duration // how long this frame stays on screen
	ComposeOnto uint          // frame to composite onto, 0 means a blank canvas
	Replace     bool          // plain pixel replacement instead of alpha blending when compositing
}

// Sequence is a decoded image or animation.
type Sequence struct {
	Frames        []*Frame
	Width, Height int  // canvas size
	LoopCount     uint // 0 means loop forever, 1 means play once, ...
	// DefaultImage is the static stand-in of an animated PNG whose first
	// frame is not part of the animation.
	DefaultImage image.Image
}

// ErrUnsupportedFormat means the input is not in any supported image format.
var ErrUnsupportedFormat = errors.New("frameio: unsupported image format")

type decodeConfig struct {
	autoOrientation bool
}

var defaultDecodeConfig = decodeConfig{autoOrientation: true}

// DecodeOption sets an optional parameter for the Decode and Open functions.
type DecodeOption func(*decodeConfig)

// AutoOrientation returns a DecodeOption that sets the auto-orientation
// mode. If enabled, images are transformed after decoding according to the
// EXIF orientation tag when one is present. Enabled by default.
func AutoOrientation(enabled bool) DecodeOption {
	return func(c *decodeConfig) {
		c.autoOrientation = enabled
	}
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// DecodeAll reads a still image or animation from r, including all frames.
func DecodeAll(r io.Reader, opts ...DecodeOption) (*Sequence, error) {
	cfg := defaultDecodeConfig
	for _, option := range opts {
		option(&cfg)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	ans := &Sequence{}
	switch {
	case bytes.HasPrefix(data, []byte("GIF8")):
		g, err := gif.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		ans.populateFromGIF(g)
	case bytes.HasPrefix(data, pngMagic):
		p, err := apng.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		ans.populateFromAPNG(&p)
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			if errors.Is(err, image.ErrFormat) {
				return nil, ErrUnsupportedFormat
			}
			return nil, err
		}
		b := img.Bounds()
		ans.Width, ans.Height = b.Dx(), b.Dy()
		ans.Frames = []*Frame{{Number: 1, Image: normalizeOrigin(img)}}
	}
	if cfg.autoOrientation {
		if o := orientationOf(data); o > orientationNormal {
			ans.applyOrientation(o)
		}
	}
	return ans, nil
}

// Decode reads a single image from r: the default image of an animation if
// it has one, otherwise the first frame.
func Decode(r io.Reader, opts ...DecodeOption) (image.Image, error) {
	ans, err := DecodeAll(r, opts...)
	if err != nil {
		return nil, err
	}
	if ans.DefaultImage != nil {
		return ans.DefaultImage, nil
	}
	if len(ans.Frames) == 0 {
		return nil, ErrUnsupportedFormat
	}
	return ans.Frames[0].Image, nil
}

// Open loads an image from file.
func Open(filename string, opts ...DecodeOption) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file, opts...)
}

// OpenAll loads an image from file including all animation frames.
func OpenAll(filename string, opts ...DecodeOption) (*Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return DecodeAll(file, opts...)
}

// Delays below two hundredths of a second are treated as a request for the
// de facto default of 100ms, the way browsers play such GIFs.
func gifFrameDelay(hundredths int) time.Duration {
	if hundredths < 2 {
		return 100 * time.Millisecond
	}
	return time.Duration(hundredths) * 10 * time.Millisecond
}

func (s *Sequence) populateFromGIF(g *gif.GIF) {
	s.Width, s.Height = g.Config.Width, g.Config.Height
	prev_disposal := uint8(gif.DisposalBackground)
	var prev_compose_onto uint
	for i, img := range g.Image {
		b := img.Bounds()
		frame := Frame{
			Number: uint(len(s.Frames) + 1), Image: normalizeOrigin(img), X: b.Min.X, Y: b.Min.Y,
			Delay: gifFrameDelay(g.Delay[i]),
		}
		switch prev_disposal {
		case gif.DisposalNone, 0:
			// 0 means no disposal was specified, which players treat as none.
			frame.ComposeOnto = frame.Number - 1
		case gif.DisposalPrevious:
			frame.ComposeOnto = prev_compose_onto
		case gif.DisposalBackground:
			// The GIF spec wants a cleared canvas here, but browsers compose
			// onto the previous frame instead, so follow them.
			frame.ComposeOnto = frame.Number - 1
		}
		prev_disposal, prev_compose_onto = g.Disposal[i], frame.ComposeOnto
		s.Frames = append(s.Frames, &frame)
	}
	if s.Width == 0 || s.Height == 0 {
		s.growToFrames()
	}
	switch {
	case g.LoopCount == 0:
		s.LoopCount = 0
	case g.LoopCount < 0:
		s.LoopCount = 1
	default:
		s.LoopCount = uint(g.LoopCount) + 1
	}
}

func (s *Sequence) populateFromAPNG(p *apng.APNG) {
	s.LoopCount = p.LoopCount
	prev_disposal := apng.DISPOSE_OP_BACKGROUND
	var prev_compose_onto uint
	for _, f := range p.Frames {
		if f.IsDefault {
			s.DefaultImage = f.Image
			continue
		}
		frame := Frame{
			Number: uint(len(s.Frames) + 1), Image: normalizeOrigin(f.Image), X: f.XOffset, Y: f.YOffset,
			Replace: f.BlendOp == apng.BLEND_OP_SOURCE,
			Delay:   time.Duration(float64(time.Second) * f.GetDelay()),
		}
		switch prev_disposal {
		case apng.DISPOSE_OP_NONE:
			frame.ComposeOnto = frame.Number - 1
		case apng.DISPOSE_OP_PREVIOUS:
			frame.ComposeOnto = prev_compose_onto
		}
		prev_disposal, prev_compose_onto = int(f.DisposeOp), frame.ComposeOnto
		s.Frames = append(s.Frames, &frame)
	}
	if s.DefaultImage != nil {
		b := s.DefaultImage.Bounds()
		s.Width, s.Height = b.Dx(), b.Dy()
	} else {
		s.growToFrames()
	}
}

// growToFrames sets the canvas size to cover every frame at its offset.
func (s *Sequence) growToFrames() {
	for _, f := range s.Frames {
		b := f.Image.Bounds()
		s.Width = max(s.Width, f.X+b.Dx())
		s.Height = max(s.Height, f.Y+b.Dy())
	}
}

// normalizeOrigin returns img with its bounds translated to start at the
// origin, so that frame placement is carried only in Frame.X and Frame.Y.
func normalizeOrigin(img image.Image) image.Image {
	b := img.Bounds()
	if b.Min == (image.Point{}) {
		return img
	}
	switch src := img.(type) {
	case *image.Paletted:
		c := *src
		c.Rect = c.Rect.Sub(b.Min)
		return &c
	case *image.NRGBA:
		c := *src
		c.Rect = c.Rect.Sub(b.Min)
		return &c
	case *image.RGBA:
		c := *src
		c.Rect = c.Rect.Sub(b.Min)
		return &c
	}
	d := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(d, d.Rect, img, b.Min, draw.Src)
	return d
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	c := *src
	c.Pix = make([]uint8, len(src.Pix))
	copy(c.Pix, src.Pix)
	return &c
}

// Coalesce flattens the animation so that every frame is a full canvas
// snapshot of the animation at that instant, which is what the conversion
// functions want to consume. Frames become *image.NRGBA.
func (s *Sequence) Coalesce() {
	if len(s.Frames) <= 1 {
		return
	}
	for _, f := range s.Frames {
		b := f.Image.Bounds()
		var canvas *image.NRGBA
		if f.ComposeOnto == 0 {
			canvas = image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
		} else {
			canvas = cloneNRGBA(s.Frames[f.ComposeOnto-1].Image.(*image.NRGBA))
		}
		op := draw.Over
		if f.Replace {
			op = draw.Src
		}
		draw.Draw(canvas, image.Rect(f.X, f.Y, f.X+b.Dx(), f.Y+b.Dy()), f.Image, b.Min, op)
		f.Image = canvas
		f.X, f.Y = 0, 0
		f.ComposeOnto = 0
		f.Replace = true
	}
}
