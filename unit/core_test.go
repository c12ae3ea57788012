package unit

import (
	"fmt"
	"math"
	"testing"
)

func TestUnits(t *testing.T) {
	units := []string{"sp", "pt", "in", "mm", "cm", "m", "px", "pc"}
	for _, val := range []int{1, 0, -1, 2000} {
		for _, unit := range units {
			a := MustSP(fmt.Sprintf("%d%s", val, unit))
			b, err := a.ToUnit(unit)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(b-float64(val)) > 1e-4 {
				t.Errorf("%v a.ToUnit(%s) = %f, want %d", a, unit, b, val)
			}
		}
	}
}

func TestMillimetersToPoints(t *testing.T) {
	// ISO A4
	testdata := []struct {
		mm   float64
		want float64
	}{
		{210, 595.2756},
		{297, 841.8898},
		{0, 0},
		{25.4, 72},
	}
	for _, tc := range testdata {
		if got := MillimetersToPoints(tc.mm); math.Abs(got-tc.want) > 1e-3 {
			t.Errorf("MillimetersToPoints(%v) = %v, want %v", tc.mm, got, tc.want)
		}
	}
}

func TestCSSPixelsToPoints(t *testing.T) {
	testdata := []struct {
		px   float64
		want float64
	}{
		{4, 3},
		{96, 72},
		{0, 0},
	}
	for _, tc := range testdata {
		if got := CSSPixelsToPoints(tc.px); got != tc.want {
			t.Errorf("CSSPixelsToPoints(%v) = %v, want %v", tc.px, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, 4, 210, 297, 1234.5678} {
		if got := PointsToMillimeters(MillimetersToPoints(v)); math.Abs(got-v) > 1e-9 {
			t.Errorf("mm round trip of %v = %v", v, got)
		}
		if got := PointsToCSSPixels(CSSPixelsToPoints(v)); math.Abs(got-v) > 1e-9 {
			t.Errorf("px round trip of %v = %v", v, got)
		}
	}
}

func TestSpErrors(t *testing.T) {
	for _, str := range []string{"", "12", "1foo", "abcpt"} {
		if _, err := Sp(str); err == nil {
			t.Errorf("Sp(%q) should return an error", str)
		}
	}
}
