/*
 * rbss: robust Rabin-Ben-Or secret sharing
 * Copyright (C) 2026 The rbss Authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

// Package polynomial implements modular polynomial evaluation and Lagrange
// interpolation at x=0 over a prime field, grounded on paperback's
// pkg/polynomial (Polynomial.EvaluateMod's Horner's-method loop and
// InterpolateConst's optimised constant-term-only Lagrange formula).
package polynomial

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/rabinbenor/rbss/internal/errs"
)

var (
	// ErrEmptyCoefficients is returned when EvaluateMod is given no
	// coefficients to evaluate.
	ErrEmptyCoefficients = fmt.Errorf("%w: polynomial has no coefficients", errs.ErrDomain)

	// ErrNoPoints is returned when InterpolateAtZero is given no points.
	ErrNoPoints = fmt.Errorf("%w: no points given for interpolation", errs.ErrDomain)

	// ErrInconsistentPoints is returned when two points share an X value but
	// disagree on Y, which can never happen for honestly generated shares.
	ErrInconsistentPoints = fmt.Errorf("%w: two points share an x-coordinate but disagree on y", errs.ErrDomain)
)

// Coefficients represents a polynomial of degree len(Coefficients)-1 with
// coefficients stored in increasing power of x, i.e.
//
//	c[0] + c[1]*x + c[2]*x^2 + ... + c[n]*x^n.
type Coefficients []*big.Int

// EvaluateMod evaluates the polynomial at x0 modulo m using Horner's method,
// which is more numerically economical than expanding then reducing the
// full power series.
func (c Coefficients) EvaluateMod(x0, m *big.Int) (*big.Int, error) {
	if len(c) == 0 {
		return nil, errors.WithStack(ErrEmptyCoefficients)
	}
	x := new(big.Int).Mod(x0, m)

	result := new(big.Int)
	for i := len(c) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, c[i])
		result.Mod(result, m)
	}
	return result, nil
}

// Point is an (x, y) pair on some polynomial, carried through Lagrange
// interpolation.
type Point struct {
	X, Y *big.Int
}

func uniquePoints(points []Point) (unique []Point, inconsistent bool) {
	seen := map[string]int{}
	for idx, p := range points {
		key := p.X.String()
		if oldIdx, ok := seen[key]; !ok {
			unique = append(unique, p)
			seen[key] = idx
		} else if points[oldIdx].Y.Cmp(p.Y) != 0 {
			inconsistent = true
		}
	}
	return unique, inconsistent
}

// InterpolateAtZero reconstructs f(0) for the unique degree-(threshold-1)
// polynomial passing through the given points, using only the first
// threshold unique points supplied. This is the optimised Lagrange formula
// that avoids reconstructing the full polynomial when only the secret
// (the constant term) is needed:
//
//	f(0) = sum_j y_j * prod_{m != j} x_m / (x_m - x_j)   (mod prime)
func InterpolateAtZero(threshold int, prime *big.Int, points ...Point) (*big.Int, error) {
	if threshold < 1 {
		return nil, errors.Wrapf(ErrNoPoints, "threshold %d is not positive", threshold)
	}
	unique, inconsistent := uniquePoints(points)
	if inconsistent {
		return nil, errors.WithStack(ErrInconsistentPoints)
	}
	if len(unique) < threshold {
		return nil, errors.Wrapf(ErrNoPoints, "need %d points, have %d", threshold, len(unique))
	}
	unique = unique[:threshold]

	f0 := new(big.Int)
	for j := range unique {
		numerator := new(big.Int).Set(unique[j].Y)
		product := big.NewInt(1)
		for m := range unique {
			if m == j {
				continue
			}
			diff := new(big.Int).Sub(unique[m].X, unique[j].X)
			diff.Mod(diff, prime)
			invDiff := new(big.Int).ModInverse(diff, prime)
			term := new(big.Int).Mul(unique[m].X, invDiff)
			term.Mod(term, prime)
			product.Mul(product, term)
			product.Mod(product, prime)
		}
		numerator.Mul(numerator, product)
		f0.Add(f0, numerator)
		f0.Mod(f0, prime)
	}
	return f0, nil
}
