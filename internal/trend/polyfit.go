// Package trend fits polynomial performance trends to measured COP data and
// generates reproducible synthetic observations around a fitted trend.
package trend

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Polynomial is a fitted trend curve. Coefficients are stored in ascending
// order: Coeffs[i] multiplies t^i.
type Polynomial struct {
	Coeffs []float64
}

// Fit computes the least-squares polynomial of the given degree through the
// measurement columns, solving the Vandermonde system by QR decomposition.
//
// The slices must have equal length and at least degree+1 entries; degree
// must be at least 1. The standard field-trend fit is cubic (degree 3).
func Fit(tempsC, cops []float64, degree int) (Polynomial, error) {
	if degree < 1 {
		return Polynomial{}, fmt.Errorf("fit degree %d must be at least 1", degree)
	}
	if len(tempsC) != len(cops) {
		return Polynomial{}, fmt.Errorf("mismatched columns: %d temperatures, %d COP values",
			len(tempsC), len(cops))
	}
	if len(tempsC) < degree+1 {
		return Polynomial{}, fmt.Errorf("degree %d fit needs at least %d points, got %d",
			degree, degree+1, len(tempsC))
	}

	rows, cols := len(tempsC), degree+1
	vandermonde := mat.NewDense(rows, cols, nil)
	for i, t := range tempsC {
		v := 1.0
		for j := 0; j < cols; j++ {
			vandermonde.Set(i, j, v)
			v *= t
		}
	}
	rhs := mat.NewDense(rows, 1, append([]float64(nil), cops...))

	var qr mat.QR
	qr.Factorize(vandermonde)
	var solution mat.Dense
	if err := qr.SolveTo(&solution, false, rhs); err != nil {
		return Polynomial{}, fmt.Errorf("least-squares solve failed: %w", err)
	}

	coeffs := make([]float64, cols)
	for j := range coeffs {
		coeffs[j] = solution.At(j, 0)
	}
	return Polynomial{Coeffs: coeffs}, nil
}

// Eval evaluates the polynomial at t using Horner's method.
func (p Polynomial) Eval(t float64) float64 {
	acc := 0.0
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		acc = acc*t + p.Coeffs[i]
	}
	return acc
}

// Degree returns the polynomial degree, or -1 for an empty polynomial.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// String renders the polynomial as a human-readable formula in t.
func (p Polynomial) String() string {
	if len(p.Coeffs) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, c := range p.Coeffs {
		if i > 0 {
			if c >= 0 {
				b.WriteString(" + ")
			} else {
				b.WriteString(" - ")
				c = -c
			}
		}
		switch i {
		case 0:
			fmt.Fprintf(&b, "%.6g", c)
		case 1:
			fmt.Fprintf(&b, "%.6g*t", c)
		default:
			fmt.Fprintf(&b, "%.6g*t^%d", c, i)
		}
	}
	return b.String()
}
