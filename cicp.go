package itur

import (
	"fmt"
)

var _ = fmt.Print

// CodePoints is the ITU-T H.273 / CICP signalling for a standard: the
// (ColourPrimaries, TransferCharacteristics, MatrixCoefficients,
// VideoFullRangeFlag) quadruple carried in codec bitstreams and containers.
type CodePoints struct {
	ColorPrimaries, TransferCharacteristics, MatrixCoefficients, VideoFullRange uint8
}

func (c CodePoints) String() string {
	return fmt.Sprintf("CP%d/TC%d/MC%d/FR%d",
		c.ColorPrimaries, c.TransferCharacteristics, c.MatrixCoefficients, c.VideoFullRange)
}

// CodePoints returns the H.273 values describing s, with the full range flag
// clear. The zero CodePoints (all fields reserved) means s is not one of the
// built-in standards.
func (s Standard) CodePoints() CodePoints {
	switch s {
	case BT601_525:
		return CodePoints{ColorPrimaries: 6, TransferCharacteristics: 6, MatrixCoefficients: 6}
	case BT601_625:
		return CodePoints{ColorPrimaries: 5, TransferCharacteristics: 6, MatrixCoefficients: 5}
	case BT709:
		return CodePoints{ColorPrimaries: 1, TransferCharacteristics: 1, MatrixCoefficients: 1}
	case BT2020:
		return CodePoints{ColorPrimaries: 9, TransferCharacteristics: 14, MatrixCoefficients: 9}
	}
	return CodePoints{}
}

// CodePoints returns the H.273 values for the quantized standard, with the
// full range flag taken from the quantization policy when it is a Levels.
func (s QuantizedStandard) CodePoints() CodePoints {
	std, ok := s.standard.(Standard)
	if !ok {
		return CodePoints{}
	}
	cp := std.CodePoints()
	if cp == (CodePoints{}) {
		return cp
	}
	if l, ok := s.quantization.(Levels); ok && l.Full {
		cp.VideoFullRange = 1
	}
	return cp
}

// Standard returns the built-in standard described by c. The transfer
// characteristic is matched liberally: H.273 values 1, 6, 14 and 15 all name
// the same SDR curve and unspecified (2) is accepted, since in practice
// streams mix them freely within a matrix family.
func (c CodePoints) Standard() (Standard, bool) {
	if !sdrTransfer(c.TransferCharacteristics) {
		return Standard{}, false
	}
	switch {
	case c.MatrixCoefficients == 6 && c.ColorPrimaries == 6:
		return BT601_525, true
	case c.MatrixCoefficients == 5 && c.ColorPrimaries == 5:
		return BT601_625, true
	case c.MatrixCoefficients == 1 && c.ColorPrimaries == 1:
		return BT709, true
	case c.MatrixCoefficients == 9 && c.ColorPrimaries == 9:
		return BT2020, true
	}
	return Standard{}, false
}

func sdrTransfer(tc uint8) bool {
	switch tc {
	case 1, 2, 6, 14, 15:
		return true
	}
	return false
}
