/*
Package itur implements the color encodings of the ITU-R broadcast video
standards BT.601 (525- and 625-line variants), BT.709 and BT.2020: the
opto-electronic transfer functions, the weighted luma and scaled color
difference encoding to analog Y'UV, and the quantization to digital Y'CbCr
code values.

The analog conversions are pure number mappings. They never clamp, carry no
state and are defined for out-of-range input; range enforcement happens only
at the quantization boundary. A standard is just a bundle of three policies
(primaries, transfer curve, difference scaling) and any combination can be
composed with NewStandard, including hybrids that no broadcast body ever
published.
*/
package itur

import "fmt"

type LibraryVersion struct {
	Major, Minor, Patch uint
}

func (v LibraryVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v LibraryVersion) Equal(o LibraryVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v LibraryVersion) After(o LibraryVersion) bool {
	switch {
	case v.Major == o.Major:
		switch {
		case v.Minor == o.Minor:
			return v.Patch > o.Patch
		case v.Minor > o.Minor:
			return true
		case v.Minor < o.Minor:
			return false
		}
	case v.Major > o.Major:
		return true
	case v.Major < o.Major:
		return false
	}
	return false
}

func (v LibraryVersion) Before(o LibraryVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = LibraryVersion{1, 0, 0}
