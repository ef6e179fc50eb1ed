package itur

// DifferenceFunction is the per-standard policy for forming luma and for
// scaling the B'-Y' and R'-Y' color difference signals into U and V.
type DifferenceFunction interface {
	// LumaWeights returns the weights applied to gamma encoded R'G'B' when
	// forming Y'.
	LumaWeights() (wr, wg, wb float64)
	// NormBlue scales a raw B'-Y' difference into U.
	NormBlue(d float64) float64
	// DenormBlue inverts NormBlue.
	DenormBlue(u float64) float64
	// NormRed scales a raw R'-Y' difference into V.
	NormRed(d float64) float64
	// DenormRed inverts NormRed.
	DenormRed(v float64) float64
}

// The luma weights and chroma divisors exactly as printed in each standard.
//
// BT.709 is the odd one out: its blue divisor is the standard's rounded
// 1.8556 rather than 2*(1 - LumaBlue709), and its luma weights are not the
// luminances of its primaries (those live in Space709). The divisors that do
// follow the 2*(1 - w) rule are annotated.
const (
	LumaRed601   = 0.2990
	LumaGreen601 = 0.5870
	LumaBlue601  = 0.1140
	NormBlue601  = 1.772 // 2 * (1 - LumaBlue601)
	NormRed601   = 1.402 // 2 * (1 - LumaRed601)

	LumaRed709   = 0.2126
	LumaGreen709 = 0.7152
	LumaBlue709  = 0.07212
	NormBlue709  = 1.8556
	NormRed709   = 1.5748 // 2 * (1 - LumaRed709)

	LumaRed2020   = 0.2627
	LumaGreen2020 = 0.6780
	LumaBlue2020  = 0.0593
	NormBlue2020  = 1.8814 // 2 * (1 - LumaBlue2020)
	NormRed2020   = 1.4746 // 2 * (1 - LumaRed2020)
)

// Difference601 is the BT.601 difference encoding, shared by the 525- and
// 625-line variants.
type Difference601 struct{}

func (Difference601) LumaWeights() (wr, wg, wb float64) {
	return LumaRed601, LumaGreen601, LumaBlue601
}

func (Difference601) NormBlue(d float64) float64   { return d / NormBlue601 }
func (Difference601) DenormBlue(u float64) float64 { return u * NormBlue601 }
func (Difference601) NormRed(d float64) float64    { return d / NormRed601 }
func (Difference601) DenormRed(v float64) float64  { return v * NormRed601 }

// Difference709 is the BT.709 difference encoding.
type Difference709 struct{}

func (Difference709) LumaWeights() (wr, wg, wb float64) {
	return LumaRed709, LumaGreen709, LumaBlue709
}

func (Difference709) NormBlue(d float64) float64   { return d / NormBlue709 }
func (Difference709) DenormBlue(u float64) float64 { return u * NormBlue709 }
func (Difference709) NormRed(d float64) float64    { return d / NormRed709 }
func (Difference709) DenormRed(v float64) float64  { return v * NormRed709 }

// Difference2020 is the BT.2020 difference encoding.
type Difference2020 struct{}

func (Difference2020) LumaWeights() (wr, wg, wb float64) {
	return LumaRed2020, LumaGreen2020, LumaBlue2020
}

func (Difference2020) NormBlue(d float64) float64   { return d / NormBlue2020 }
func (Difference2020) DenormBlue(u float64) float64 { return u * NormBlue2020 }
func (Difference2020) NormRed(d float64) float64    { return d / NormRed2020 }
func (Difference2020) DenormRed(v float64) float64  { return v * NormRed2020 }

var (
	_ DifferenceFunction = Difference601{}
	_ DifferenceFunction = Difference709{}
	_ DifferenceFunction = Difference2020{}
)
