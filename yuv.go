package itur

// Conversions between gamma encoded R'G'B' and analog Y'UV under a given
// standard. These are pure mappings: out-of-range input produces the
// mathematically corresponding out-of-range output, nothing clamps. For
// input in [0,1] the difference channels land in [-0.5, 0.5], except that
// BT.709's rounded divisors overshoot by under 1e-4 at the blue extreme.

// Luma returns the Y' of gamma encoded R'G'B' under s.
func Luma(s YUVStandard, r, g, b float64) float64 {
	wr, wg, wb := s.Difference().LumaWeights()
	return wr*r + wg*g + wb*b
}

// RGBToYUV encodes gamma encoded R'G'B' as analog Y'UV under s.
func RGBToYUV(s YUVStandard, r, g, b float64) (y, u, v float64) {
	d := s.Difference()
	wr, wg, wb := d.LumaWeights()
	y = wr*r + wg*g + wb*b
	u = d.NormBlue(b - y)
	v = d.NormRed(r - y)
	return
}

// YUVToRGB inverts RGBToYUV.
func YUVToRGB(s YUVStandard, y, u, v float64) (r, g, b float64) {
	d := s.Difference()
	wr, wg, wb := d.LumaWeights()
	b = y + d.DenormBlue(u)
	r = y + d.DenormRed(v)
	g = (y - wr*r - wb*b) / wg
	return
}

// LinearRGBToYUV encodes linear light RGB: the standard's transfer curve is
// applied per channel and the result encoded with RGBToYUV.
func LinearRGBToYUV(s YUVStandard, r, g, b float64) (y, u, v float64) {
	t := s.Transfer()
	return RGBToYUV(s, t.FromLinear(r), t.FromLinear(g), t.FromLinear(b))
}

// YUVToLinearRGB decodes analog Y'UV to linear light RGB.
func YUVToLinearRGB(s YUVStandard, y, u, v float64) (r, g, b float64) {
	t := s.Transfer()
	r, g, b = YUVToRGB(s, y, u, v)
	return t.ToLinear(r), t.ToLinear(g), t.ToLinear(b)
}
