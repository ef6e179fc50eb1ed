package itur

import "math"

// Float covers the precisions the transfer curves can be evaluated at. All
// curve constants are untyped so every instantiation rounds them exactly
// once, to its own precision.
type Float interface {
	~float32 | ~float64
}

// BT.2020 transfer constants, to the precision printed in the standard.
// They are chosen so the linear and power segments meet with matching value
// and slope at Beta2020.
const (
	Alpha2020 = 1.09929682680944
	Beta2020  = 0.018053968510807
)

// FromLinear601709 applies the opto-electronic transfer characteristic
// shared by BT.601 and BT.709 to a linear light value. It is defined for
// every input: values below the Rec. 709 breakpoint of 0.018, including all
// negatives, take the 4.5x linear segment. Nothing clamps.
func FromLinear601709[F Float](x F) F {
	if x <= 0.018 {
		return 4.5 * x
	}
	return F(1.099*math.Pow(float64(x), 0.45) - 0.099)
}

// ToLinear601709 inverts FromLinear601709.
func ToLinear601709[F Float](y F) F {
	if y <= 0.081 { // 4.5 * 0.018
		return y / 4.5
	}
	return F(math.Pow((float64(y)+0.099)/1.099, 1/0.45))
}

// FromLinear2020 applies the BT.2020 transfer characteristic (standard
// dynamic range, non-constant luminance) to a linear light value.
func FromLinear2020[F Float](x F) F {
	if x < Beta2020 {
		return 4.5 * x
	}
	return F(Alpha2020*math.Pow(float64(x), 0.45) - (Alpha2020 - 1))
}

// ToLinear2020 inverts FromLinear2020.
func ToLinear2020[F Float](y F) F {
	if y < 4.5*Beta2020 {
		return y / 4.5
	}
	return F(math.Pow((float64(y)+(Alpha2020-1))/Alpha2020, 1/0.45))
}

// TransferFunction is the per-standard transfer policy used when composing
// standards at float64. The generic FromLinear*/ToLinear* functions are the
// primitives; implementations of this interface just pick a curve family.
type TransferFunction interface {
	// FromLinear converts linear light to a gamma encoded electrical value.
	FromLinear(x float64) float64
	// ToLinear inverts FromLinear.
	ToLinear(y float64) float64
}

// Transfer601709 is the transfer characteristic shared by both BT.601
// variants and BT.709.
type Transfer601709 struct{}

func (Transfer601709) FromLinear(x float64) float64 { return FromLinear601709(x) }
func (Transfer601709) ToLinear(y float64) float64   { return ToLinear601709(y) }

// Transfer2020 is the BT.2020 transfer characteristic.
type Transfer2020 struct{}

func (Transfer2020) FromLinear(x float64) float64 { return FromLinear2020(x) }
func (Transfer2020) ToLinear(y float64) float64   { return ToLinear2020(y) }

var (
	_ TransferFunction = Transfer601709{}
	_ TransferFunction = Transfer2020{}
)
