package itur

// RGBSpace describes where an RGB encoding's primaries and reference white
// sit in chromaticity space.
type RGBSpace interface {
	Primaries() (red, green, blue Chromaticity)
	WhitePoint() Chromaticity
}

// RGBStandard is an RGB space together with its transfer characteristic.
type RGBStandard interface {
	Space() RGBSpace
	Transfer() TransferFunction
}

// LumaStandard is the subset needed to encode single channel (luma only)
// signals: a reference white and a transfer characteristic.
type LumaStandard interface {
	WhitePoint() Chromaticity
	Transfer() TransferFunction
}

// YUVStandard adds the color difference policy, fully describing an analog
// Y'UV encoding.
type YUVStandard interface {
	RGBStandard
	Difference() DifferenceFunction
}

// YCbCrStandard pairs an analog standard with the quantization that maps it
// onto digital code values.
type YCbCrStandard interface {
	YUV() YUVStandard
	Quantization() QuantizationFunction
}

// Standard bundles the three per-standard policies. Values are cheap to copy
// and hold no mutable state; the zero value is unusable, start from the
// package level standards or NewStandard.
type Standard struct {
	name       string
	space      RGBSpace
	transfer   TransferFunction
	difference DifferenceFunction
}

// NewStandard composes a space, a transfer curve and a difference policy
// into a standard. All three must be non-nil. This is how the built-in
// standards are assembled, and how hybrids for test signals can be made.
func NewStandard(name string, space RGBSpace, transfer TransferFunction, difference DifferenceFunction) Standard {
	return Standard{name: name, space: space, transfer: transfer, difference: difference}
}

func (s Standard) String() string { return s.name }

func (s Standard) Space() RGBSpace                { return s.space }
func (s Standard) WhitePoint() Chromaticity       { return s.space.WhitePoint() }
func (s Standard) Transfer() TransferFunction     { return s.transfer }
func (s Standard) Difference() DifferenceFunction { return s.difference }

// The four broadcast standards. Treat as read-only.
var (
	BT601_525 = NewStandard("BT.601-525", Space601_525, Transfer601709{}, Difference601{})
	BT601_625 = NewStandard("BT.601-625", Space601_625, Transfer601709{}, Difference601{})
	BT709     = NewStandard("BT.709", Space709, Transfer601709{}, Difference709{})
	BT2020    = NewStandard("BT.2020", Space2020, Transfer2020{}, Difference2020{})
)

var (
	_ RGBStandard  = Standard{}
	_ LumaStandard = Standard{}
	_ YUVStandard  = Standard{}
)

// QuantizedStandard is the second composition level: an analog standard
// paired with a quantization policy.
type QuantizedStandard struct {
	standard     YUVStandard
	quantization QuantizationFunction
}

// Quantized pairs an analog standard with a quantization policy.
func Quantized(s YUVStandard, q QuantizationFunction) QuantizedStandard {
	return QuantizedStandard{standard: s, quantization: q}
}

func (s QuantizedStandard) YUV() YUVStandard                   { return s.standard }
func (s QuantizedStandard) Quantization() QuantizationFunction { return s.quantization }

// RGBToYCbCr encodes gamma encoded R'G'B' into digital code values.
func (s QuantizedStandard) RGBToYCbCr(r, g, b float64) (yq, cb, cr uint16) {
	y, u, v := RGBToYUV(s.standard, r, g, b)
	return s.quantization.QuantizeYUV(y, u, v)
}

// YCbCrToRGB decodes digital code values back to gamma encoded R'G'B'. ok is
// false when the quantization policy has no inverse.
func (s QuantizedStandard) YCbCrToRGB(yq, cb, cr uint16) (r, g, b float64, ok bool) {
	dq, can := s.quantization.(Dequantizer)
	if !can {
		return 0, 0, 0, false
	}
	y, u, v := dq.DequantizeYUV(yq, cb, cr)
	r, g, b = YUVToRGB(s.standard, y, u, v)
	return r, g, b, true
}

var _ YCbCrStandard = QuantizedStandard{}
