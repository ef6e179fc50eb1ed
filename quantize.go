package itur

import (
	"fmt"
	"math"
)

// QuantizationFunction maps analog signal values onto integer code words.
// This is the only layer that clamps: codes always fit the policy's word
// size no matter how far out of range the analog input is.
type QuantizationFunction interface {
	// QuantizeYUV maps Y' in [0,1] and U,V in [-0.5,0.5] onto code words.
	QuantizeYUV(y, u, v float64) (yq, cb, cr uint16)
	// QuantizeRGB maps gamma encoded R'G'B' in [0,1] onto code words, using
	// the luma code range for every channel.
	QuantizeRGB(r, g, b float64) (rq, gq, bq uint16)
}

// Dequantizer is implemented by quantization policies that can also map code
// words back to analog values.
type Dequantizer interface {
	DequantizeYUV(yq, cb, cr uint16) (y, u, v float64)
	DequantizeRGB(rq, gq, bq uint16) (r, g, b float64)
}

// Levels quantizes per the BT.601/BT.709/BT.2020 digital coding conventions
// at a given code word size. The zero value is 8-bit studio range.
//
// Studio (limited) range places black at 16<<(Bits-8) and nominal white at
// 235<<(Bits-8), with chroma spanning 224<<(Bits-8) codes around a center of
// 128<<(Bits-8). Full range spreads the signal over the whole code space.
type Levels struct {
	Bits int  // code word size in bits, 8 to 16; 0 means 8
	Full bool // full range instead of studio swing
}

var (
	Studio8  = Levels{Bits: 8}
	Studio10 = Levels{Bits: 10}
	Studio12 = Levels{Bits: 12}
	Full8    = Levels{Bits: 8, Full: true}
)

func (l Levels) bits() int {
	if l.Bits == 0 {
		return 8
	}
	return l.Bits
}

// Max returns the highest code word, (1<<Bits)-1.
func (l Levels) Max() uint16 {
	return uint16((1 << l.bits()) - 1)
}

func (l Levels) String() string {
	r := "studio"
	if l.Full {
		r = "full"
	}
	return fmt.Sprintf("%d-bit %s range", l.bits(), r)
}

func (l Levels) QuantizeYUV(y, u, v float64) (yq, cb, cr uint16) {
	bits := l.bits()
	limit := float64(int(1<<bits) - 1)
	if l.Full {
		mid := float64(int(1 << (bits - 1)))
		return code(y*limit, limit), code(u*limit+mid, limit), code(v*limit+mid, limit)
	}
	k := float64(int(1 << (bits - 8)))
	return code((219*y+16)*k, limit), code((224*u+128)*k, limit), code((224*v+128)*k, limit)
}

func (l Levels) QuantizeRGB(r, g, b float64) (rq, gq, bq uint16) {
	bits := l.bits()
	limit := float64(int(1<<bits) - 1)
	if l.Full {
		return code(r*limit, limit), code(g*limit, limit), code(b*limit, limit)
	}
	k := float64(int(1 << (bits - 8)))
	return code((219*r+16)*k, limit), code((219*g+16)*k, limit), code((219*b+16)*k, limit)
}

func (l Levels) DequantizeYUV(yq, cb, cr uint16) (y, u, v float64) {
	bits := l.bits()
	if l.Full {
		limit := float64(int(1<<bits) - 1)
		mid := float64(int(1 << (bits - 1)))
		return float64(yq) / limit, (float64(cb) - mid) / limit, (float64(cr) - mid) / limit
	}
	k := float64(int(1 << (bits - 8)))
	y = (float64(yq)/k - 16) / 219
	u = (float64(cb)/k - 128) / 224
	v = (float64(cr)/k - 128) / 224
	return
}

func (l Levels) DequantizeRGB(rq, gq, bq uint16) (r, g, b float64) {
	bits := l.bits()
	if l.Full {
		limit := float64(int(1<<bits) - 1)
		return float64(rq) / limit, float64(gq) / limit, float64(bq) / limit
	}
	k := float64(int(1 << (bits - 8)))
	return (float64(rq)/k - 16) / 219, (float64(gq)/k - 16) / 219, (float64(bq)/k - 16) / 219
}

// code rounds to the nearest code word and clamps to [0, limit].
func code(x, limit float64) uint16 {
	x = math.Round(x)
	if x < 0 {
		return 0
	}
	if x > limit {
		return uint16(limit)
	}
	return uint16(x)
}

var (
	_ QuantizationFunction = Levels{}
	_ Dequantizer          = Levels{}
)
