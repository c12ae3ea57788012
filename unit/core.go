package unit

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	unitRE *regexp.Regexp
	// ErrConversion signals an error in unit conversion
	ErrConversion = errors.New("Conversion error")
)

func init() {
	unitRE = regexp.MustCompile("(.*?)(sp|mm|cm|in|pt|px|pc|m)")
}

// The unit systems are fixed: there are 25.4 millimeters, 96 CSS pixels and
// 72 DTP points to an inch.
const (
	mmPerInch = 25.4
	pxPerInch = 96.0
	ptPerInch = 72.0
)

// MillimetersToPoints converts a length in millimeters to DTP points.
func MillimetersToPoints(mm float64) float64 {
	return mm / mmPerInch * ptPerInch
}

// PointsToMillimeters converts a length in DTP points to millimeters.
func PointsToMillimeters(pt float64) float64 {
	return pt / ptPerInch * mmPerInch
}

// CSSPixelsToPoints converts a length in CSS pixels (1/96 inch) to DTP
// points.
func CSSPixelsToPoints(px float64) float64 {
	return px / pxPerInch * ptPerInch
}

// PointsToCSSPixels converts a length in DTP points to CSS pixels.
func PointsToCSSPixels(pt float64) float64 {
	return pt / ptPerInch * pxPerInch
}

// Factor is the multiplier to get DTP points from scaled points.
const Factor ScaledPoint = 0xffff

// A ScaledPoint is a 65535th of a DTP point
type ScaledPoint int

func (s ScaledPoint) String() string {
	return fmt.Sprintf("%.5g", float64(s)/float64(Factor))
}

// ToPT returns the unit as a float64 DTP point. 2 * 0xffff returns 2.0
func (s ScaledPoint) ToPT() float64 {
	return float64(s) / float64(Factor)
}

// FromPT converts a float64 DTP point value to ScaledPoint.
func FromPT(pt float64) ScaledPoint {
	return ScaledPoint(math.Round(pt * float64(Factor)))
}

// ToUnit converts the scaled point into the given unit and returns the
// numeric value. Accepted units are the same as in Sp. A (wrapped)
// ErrConversion is returned for an unknown unit.
func (s ScaledPoint) ToUnit(unitstring string) (float64, error) {
	pt := s.ToPT()
	switch strings.ToLower(unitstring) {
	case "sp":
		return float64(s), nil
	case "pt":
		return pt, nil
	case "in":
		return pt / ptPerInch, nil
	case "mm":
		return PointsToMillimeters(pt), nil
	case "cm":
		return PointsToMillimeters(pt) / 10, nil
	case "m":
		return PointsToMillimeters(pt) / 1000, nil
	case "px":
		return PointsToCSSPixels(pt), nil
	case "pc":
		return pt / 12, nil
	default:
		return 0, fmt.Errorf("%w unknown unit %s", ErrConversion, unitstring)
	}
}

// Sp return the unit converted to ScaledPoint. Unit can be a string like
// "1cm" or "12.5in". The units which are interpreted are sp, pt, in, mm, cm,
// m, px and pc. A (wrapped) ErrConversion is returned in case of an error.
func Sp(unit string) (ScaledPoint, error) {
	unit = strings.ToLower(unit)
	m := unitRE.FindAllStringSubmatch(unit, -1)
	if len(m) != 1 {
		return 0, fmt.Errorf("%w len(m) %d", ErrConversion, len(m))
	}
	if len(m[0]) != 3 {
		return 0, fmt.Errorf("%w len(m[0]) %d", ErrConversion, len(m[0]))
	}

	l, err := strconv.ParseFloat(m[0][1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w parse float %s", ErrConversion, m[0][1])
	}
	unitstring := m[0][2]

	switch unitstring {
	case "sp":
		return ScaledPoint(l), nil
	case "pt":
		return FromPT(l), nil
	case "in":
		return FromPT(l * ptPerInch), nil
	case "mm":
		return FromPT(MillimetersToPoints(l)), nil
	case "cm":
		return FromPT(MillimetersToPoints(l * 10)), nil
	case "m":
		return FromPT(MillimetersToPoints(l * 1000)), nil
	case "px":
		return FromPT(CSSPixelsToPoints(l)), nil
	case "pc":
		// pica, 12pt
		return FromPT(l * 12), nil
	default:
		return 0, ErrConversion
	}
}

// MustSP converts the unit to ScaledPoints. In case of an error, the
// function panics.
func MustSP(unit string) ScaledPoint {
	val, err := Sp(unit)
	if err != nil {
		panic(err)
	}
	return val
}
