package ame

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// span is a half-open byte range [start, end) within a data line.
type span struct {
	start, end int
}

// Column layout of one data line, fixed by the mass.mas20 format.
var (
	colN        = span{4, 9}
	colZ        = span{9, 14}
	colElement  = span{20, 23}
	colMexcMean = span{28, 42}
	colMexcUnc  = span{42, 54}
	colBindMean = span{54, 67}
	colBindUnc  = span{68, 78}
	colBetaFlag = span{87, 88}
	colBetaMean = span{81, 94}
	colBetaUnc  = span{94, 105}
	colMassInt  = span{106, 109}
	colMassMean = span{110, 123}
	// The atomic mass uncertainty runs to end of line, because lines
	// don't all have the same length. See parseNuclide.
	colMassUncStart = 123
)

func boundary(line string, i int) bool {
	return i == len(line) || utf8.RuneStart(line[i])
}

// slice returns the trimmed substring of line covered by sp. It fails
// with ErrTooShortLine when the line ends before sp does, and with
// ErrStrIndex when either edge of sp lands inside a multi-byte
// character.
func slice(line string, sp span) (string, error) {
	if len(line) < sp.end {
		return "", ErrTooShortLine
	}
	if !boundary(line, sp.start) || !boundary(line, sp.end) {
		return "", ErrStrIndex
	}
	return strings.TrimSpace(line[sp.start:sp.end]), nil
}

func parseUint(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, &ParseIntError{Err: err}
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseFloatError{Err: err}
	}
	return v, nil
}

// parseValue extracts a mean and its uncertainty from two adjacent
// column ranges. Estimated values are printed with '#' in place of the
// decimal point, in both columns, so every '#' is read as '.'. A '#' in
// the mean column is what marks the value as estimated.
func parseValue(line string, mean, unc span) (Value, error) {
	s, err := slice(line, mean)
	if err != nil {
		return Value{}, err
	}
	estimated := strings.ContainsRune(s, '#')
	m, err := parseFloat(strings.ReplaceAll(s, "#", "."))
	if err != nil {
		return Value{}, err
	}
	s, err = slice(line, unc)
	if err != nil {
		return Value{}, err
	}
	u, err := parseFloat(strings.ReplaceAll(s, "#", "."))
	if err != nil {
		return Value{}, err
	}
	return Value{Mean: m, Uncertainty: u, IsEstimated: estimated}, nil
}

// parseNuclide converts one data line into a Nuclide.
func parseNuclide(line string) (Nuclide, error) {
	var nuc Nuclide

	s, err := slice(line, colN)
	if err != nil {
		return nuc, err
	}
	n, err := parseUint(s, 32)
	if err != nil {
		return nuc, err
	}
	nuc.N = uint32(n)

	s, err = slice(line, colZ)
	if err != nil {
		return nuc, err
	}
	z, err := parseUint(s, 32)
	if err != nil {
		return nuc, err
	}
	nuc.Z = uint32(z)

	nuc.Element, err = slice(line, colElement)
	if err != nil {
		return nuc, err
	}

	nuc.MassExcess, err = parseValue(line, colMexcMean, colMexcUnc)
	if err != nil {
		return nuc, err
	}
	nuc.BindingEnergyPerNucleon, err = parseValue(line, colBindMean, colBindUnc)
	if err != nil {
		return nuc, err
	}

	flag, err := slice(line, colBetaFlag)
	if err != nil {
		return nuc, err
	}
	if flag != "*" {
		beta, err := parseValue(line, colBetaMean, colBetaUnc)
		if err != nil {
			return nuc, err
		}
		nuc.BetaDecayEnergy = &beta
	}

	// The atomic mass is printed in micro-u with the whole-unit digits
	// in their own column, so the fraction and the whole part are read
	// separately and recombined. Whether the mass is an estimate is
	// decided by the fraction column alone.
	frac, err := parseValue(line, colMassMean, span{colMassUncStart, len(line)})
	if err != nil {
		return nuc, err
	}
	s, err = slice(line, colMassInt)
	if err != nil {
		return nuc, err
	}
	whole, err := parseUint(s, 16)
	if err != nil {
		return nuc, err
	}
	nuc.AtomicMass = Value{
		Mean:        float64(whole) + frac.Mean*1e-6,
		Uncertainty: frac.Uncertainty * 1e-6,
		IsEstimated: frac.IsEstimated,
	}

	return nuc, nil
}
