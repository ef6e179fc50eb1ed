// Package lut provides lookup tables for the transfer curves, for code that
// converts whole images and cannot afford a pow per sample. Tables are built
// once on first use and shared.
package lut

import (
	"math"
	"sync"

	"github.com/kovidgoyal/itur"
)

// Encoding tables use a 12 bit index over [0,1]: dense enough that decoding
// an 8 bit code and re-encoding it through the table is exact for every code.
const encodeIndexBits = 12

// Build8BitToLinear tabulates toLinear for every 8 bit encoded value.
func Build8BitToLinear(toLinear func(float64) float64) []float32 {
	ans := make([]float32, 256)
	for i := range ans {
		ans[i] = float32(toLinear(float64(i) / 255))
	}
	return ans
}

// Build16BitToLinear tabulates toLinear for every 16 bit encoded value.
func Build16BitToLinear(toLinear func(float64) float64) []float32 {
	ans := make([]float32, 65536)
	for i := range ans {
		ans[i] = float32(toLinear(float64(i) / 65535))
	}
	return ans
}

// BuildLinearTo8Bit tabulates fromLinear over the encode index.
func BuildLinearTo8Bit(fromLinear func(float64) float64) []uint8 {
	ans := make([]uint8, 1<<encodeIndexBits)
	last := float64(len(ans) - 1)
	for i := range ans {
		ans[i] = uint8(math.Round(255 * fromLinear(float64(i)/last)))
	}
	return ans
}

// BuildLinearTo16Bit tabulates fromLinear over a 16 bit index.
func BuildLinearTo16Bit(fromLinear func(float64) float64) []uint16 {
	ans := make([]uint16, 65536)
	for i := range ans {
		ans[i] = uint16(math.Round(65535 * fromLinear(float64(i)/65535)))
	}
	return ans
}

// NormalizedTo12Bit clips v to [0,1] and scales it to an encode table index.
func NormalizedTo12Bit(v float32) int {
	return int(math.Round(float64(max(0, min(v, 1))) * (1<<encodeIndexBits - 1)))
}

// NormalizedTo16Bit clips v to [0,1] and scales it to a 16 bit table index.
func NormalizedTo16Bit(v float32) int {
	return int(math.Round(float64(max(0, min(v, 1))) * 65535))
}

var (
	from8Bit601709  = sync.OnceValue(func() []float32 { return Build8BitToLinear(itur.ToLinear601709[float64]) })
	to8Bit601709    = sync.OnceValue(func() []uint8 { return BuildLinearTo8Bit(itur.FromLinear601709[float64]) })
	from16Bit601709 = sync.OnceValue(func() []float32 { return Build16BitToLinear(itur.ToLinear601709[float64]) })
	to16Bit601709   = sync.OnceValue(func() []uint16 { return BuildLinearTo16Bit(itur.FromLinear601709[float64]) })

	from8Bit2020  = sync.OnceValue(func() []float32 { return Build8BitToLinear(itur.ToLinear2020[float64]) })
	to8Bit2020    = sync.OnceValue(func() []uint8 { return BuildLinearTo8Bit(itur.FromLinear2020[float64]) })
	from16Bit2020 = sync.OnceValue(func() []float32 { return Build16BitToLinear(itur.ToLinear2020[float64]) })
	to16Bit2020   = sync.OnceValue(func() []uint16 { return BuildLinearTo16Bit(itur.FromLinear2020[float64]) })
)

// From8Bit601709 converts an 8 bit gamma encoded value to linear light under
// the BT.601/BT.709 curve.
func From8Bit601709(v uint8) float32 { return from8Bit601709()[v] }

// To8Bit601709 converts a linear light value to the nearest 8 bit gamma
// encoded value under the BT.601/BT.709 curve, clipping to [0,1].
func To8Bit601709(v float32) uint8 { return to8Bit601709()[NormalizedTo12Bit(v)] }

// From16Bit601709 converts a 16 bit gamma encoded value to linear light
// under the BT.601/BT.709 curve.
func From16Bit601709(v uint16) float32 { return from16Bit601709()[v] }

// To16Bit601709 converts a linear light value to a 16 bit gamma encoded
// value under the BT.601/BT.709 curve, clipping to [0,1]. The table index
// limits accuracy to a few codes; use FromLinear601709 directly when exact
// 16 bit codes matter.
func To16Bit601709(v float32) uint16 { return to16Bit601709()[NormalizedTo16Bit(v)] }

// From8Bit2020 converts an 8 bit gamma encoded value to linear light under
// the BT.2020 curve.
func From8Bit2020(v uint8) float32 { return from8Bit2020()[v] }

// To8Bit2020 converts a linear light value to the nearest 8 bit gamma
// encoded value under the BT.2020 curve, clipping to [0,1].
func To8Bit2020(v float32) uint8 { return to8Bit2020()[NormalizedTo12Bit(v)] }

// From16Bit2020 converts a 16 bit gamma encoded value to linear light under
// the BT.2020 curve.
func From16Bit2020(v uint16) float32 { return from16Bit2020()[v] }

// To16Bit2020 converts a linear light value to a 16 bit gamma encoded value
// under the BT.2020 curve, clipping to [0,1]. Accuracy as To16Bit601709.
func To16Bit2020(v float32) uint16 { return to16Bit2020()[NormalizedTo16Bit(v)] }
