package itur

import (
	"math"
	"testing"
)

func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

var transferCases = []struct {
	name       string
	fn         TransferFunction
	breakpoint float64 // end of the linear segment, in linear light
	jointEps   float64 // how closely the two segments meet there
}{
	{"601/709", Transfer601709{}, 0.018, 1e-3},
	{"2020", Transfer2020{}, Beta2020, 1e-8},
}

func TestTransferRoundTrip(t *testing.T) {
	for _, tc := range transferCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for i := range 10001 {
				x := float64(i) / 10000
				y := tc.fn.FromLinear(x)
				back := tc.fn.ToLinear(y)
				if !nearlyEqual(x, back, 1e-9) {
					t.Fatalf("round trip broke at %v: encoded %v, decoded %v", x, y, back)
				}
			}
		})
	}
}

func TestTransferContinuityAtBreakpoint(t *testing.T) {
	for _, tc := range transferCases {
		t.Run(tc.name, func(t *testing.T) {
			below := tc.fn.FromLinear(tc.breakpoint * (1 - 1e-9))
			above := tc.fn.FromLinear(tc.breakpoint * (1 + 1e-9))
			if above < below {
				t.Fatalf("decreasing across %v: %v then %v", tc.breakpoint, below, above)
			}
			if !nearlyEqual(below, above, tc.jointEps) {
				t.Fatalf("jump at %v: %v vs %v", tc.breakpoint, below, above)
			}
		})
	}
}

func TestTransferMonotonic(t *testing.T) {
	for _, tc := range transferCases {
		t.Run(tc.name, func(t *testing.T) {
			prev := tc.fn.FromLinear(0)
			for i := 1; i <= 2000; i++ {
				x := float64(i) / 2000
				cur := tc.fn.FromLinear(x)
				if cur <= prev {
					t.Fatalf("not strictly increasing at %v: %v after %v", x, cur, prev)
				}
				prev = cur
			}
		})
	}
}

func TestTransferEndpoints(t *testing.T) {
	for _, tc := range transferCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn.FromLinear(0); got != 0 {
				t.Fatalf("FromLinear(0) = %v", got)
			}
			if got := tc.fn.ToLinear(0); got != 0 {
				t.Fatalf("ToLinear(0) = %v", got)
			}
			if got := tc.fn.FromLinear(1); !nearlyEqual(got, 1, 1e-12) {
				t.Fatalf("FromLinear(1) = %v", got)
			}
			if got := tc.fn.ToLinear(1); !nearlyEqual(got, 1, 1e-12) {
				t.Fatalf("ToLinear(1) = %v", got)
			}
		})
	}
}

func TestTransferLinearSegment(t *testing.T) {
	if got := FromLinear601709(0.01); !nearlyEqual(got, 0.045, 1e-15) {
		t.Fatalf("FromLinear601709(0.01) = %v, want 0.045", got)
	}
	if got := ToLinear601709(0.045); !nearlyEqual(got, 0.01, 1e-15) {
		t.Fatalf("ToLinear601709(0.045) = %v, want 0.01", got)
	}
	// Totality: negatives stay on the linear segment instead of producing NaN.
	for _, tc := range transferCases {
		if got := tc.fn.FromLinear(-1); !nearlyEqual(got, -4.5, 1e-15) {
			t.Fatalf("%s FromLinear(-1) = %v, want -4.5", tc.name, got)
		}
		if got := tc.fn.ToLinear(tc.fn.FromLinear(-0.3)); !nearlyEqual(got, -0.3, 1e-12) {
			t.Fatalf("%s negative round trip gave %v", tc.name, got)
		}
	}
}

func TestTransferFamiliesDiffer(t *testing.T) {
	a := FromLinear601709(0.5)
	b := FromLinear2020(0.5)
	if math.Abs(a-b) < 1e-6 {
		t.Fatalf("601/709 and 2020 curves coincide at 0.5: %v vs %v", a, b)
	}
}

func TestTransferFloat32(t *testing.T) {
	for i := range 1001 {
		x := float32(i) / 1000
		if back := ToLinear601709(FromLinear601709(x)); math.Abs(float64(back-x)) > 1e-6 {
			t.Fatalf("601/709 float32 round trip broke at %v: got %v", x, back)
		}
		if back := ToLinear2020(FromLinear2020(x)); math.Abs(float64(back-x)) > 1e-6 {
			t.Fatalf("2020 float32 round trip broke at %v: got %v", x, back)
		}
	}
	// The float32 and float64 instantiations evaluate the same curve.
	if f64, f32 := FromLinear601709(0.25), FromLinear601709(float32(0.25)); math.Abs(f64-float64(f32)) > 1e-6 {
		t.Fatalf("precisions disagree: %v vs %v", f64, f32)
	}
}
