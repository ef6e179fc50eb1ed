package itur

// Chromaticity is a CIE 1931 xyY coordinate: the (x, y) chromaticity of a
// primary or white point plus the luminance the standard assigns to it.
type Chromaticity struct {
	X, Y       float64
	LuminanceY float64
}

// Chromaticities locates the red, green and blue primaries and the reference
// white of an RGB space. It is the concrete RGBSpace carried by the built-in
// standards. Deriving RGB<->XYZ matrices from these coordinates is left to
// colorimetry packages; this library only transports them.
type Chromaticities struct {
	Red, Green, Blue, White Chromaticity
}

func (c Chromaticities) Primaries() (red, green, blue Chromaticity) {
	return c.Red, c.Green, c.Blue
}

func (c Chromaticities) WhitePoint() Chromaticity { return c.White }

// D65 is the reference white shared by all four standards.
var D65 = Chromaticity{X: 0.31271, Y: 0.32902, LuminanceY: 1}

var (
	// Space601_525 holds the SMPTE-170M primaries used by 525-line (NTSC
	// countries) BT.601.
	Space601_525 = Chromaticities{
		Red:   Chromaticity{0.630, 0.340, 0.299},
		Green: Chromaticity{0.310, 0.595, 0.587},
		Blue:  Chromaticity{0.155, 0.070, 0.114},
		White: D65,
	}

	// Space601_625 holds the EBU Tech 3213 primaries used by 625-line
	// (PAL/SECAM countries) BT.601.
	Space601_625 = Chromaticities{
		Red:   Chromaticity{0.640, 0.330, 0.299},
		Green: Chromaticity{0.290, 0.600, 0.587},
		Blue:  Chromaticity{0.150, 0.060, 0.114},
		White: D65,
	}

	// Space709 holds the BT.709 primaries. The luminances here are the
	// tristimulus Y of the primaries under D65 and deliberately differ from
	// the rounded luma weights in Difference709.
	Space709 = Chromaticities{
		Red:   Chromaticity{0.640, 0.330, 0.212656},
		Green: Chromaticity{0.300, 0.600, 0.715158},
		Blue:  Chromaticity{0.150, 0.060, 0.072186},
		White: D65,
	}

	// Space2020 holds the BT.2020 wide gamut primaries.
	Space2020 = Chromaticities{
		Red:   Chromaticity{0.708, 0.292, 0.2627},
		Green: Chromaticity{0.170, 0.797, 0.6780},
		Blue:  Chromaticity{0.131, 0.046, 0.0593},
		White: D65,
	}
)
