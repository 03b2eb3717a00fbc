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

// Package pairing implements the Szudzik elegant pairing function over
// nonnegative big integers, used to pack a Shamir (x, f(x)) evaluation
// point into the single integer a share record carries. The big.Int
// manipulation idiom (fresh copies via new(big.Int), in-place Mul/Add/Sub)
// follows paperback's polynomial and shamir packages throughout.
package pairing

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/rabinbenor/rbss/internal/errs"
)

// ErrNegativeInput is returned by Pair and Unpair for negative operands.
var ErrNegativeInput = fmt.Errorf("%w: pairing operates on nonnegative integers only", errs.ErrDomain)

var one = big.NewInt(1)

// Pair combines two nonnegative integers x and y into a single nonnegative
// integer z, such that (x, y) can be recovered from z by Unpair. The size
// of z is bounded by (max(x,y)+1)^2.
func Pair(x, y *big.Int) (*big.Int, error) {
	if x.Sign() < 0 || y.Sign() < 0 {
		return nil, errors.WithStack(ErrNegativeInput)
	}
	if x.Cmp(y) < 0 {
		z := new(big.Int).Mul(y, y)
		return z.Add(z, x), nil
	}
	z := new(big.Int).Mul(x, x)
	z.Add(z, x)
	return z.Add(z, y), nil
}

// Unpair recovers the (x, y) pair originally passed to Pair.
func Unpair(z *big.Int) (x, y *big.Int, err error) {
	if z.Sign() < 0 {
		return nil, nil, errors.WithStack(ErrNegativeInput)
	}
	r := floorSqrt(z)
	d := new(big.Int).Sub(z, new(big.Int).Mul(r, r))
	if d.Cmp(r) < 0 {
		return d, r, nil
	}
	return r, d.Sub(d, r), nil
}

// floorSqrt computes floor(sqrt(n)) exactly for a nonnegative n using
// integer Newton iteration, so that Unpair never relies on floating-point
// precision (which would be lossy for the arbitrary-precision integers this
// module packs shares into).
func floorSqrt(n *big.Int) *big.Int {
	if n.Sign() == 0 {
		return big.NewInt(0)
	}

	// Newton's method for integer square roots converges from any
	// overestimate of the true root, so start from a power of two known to
	// exceed sqrt(n): 2^(ceil(bitlen(n)/2)+1).
	guessBits := uint(n.BitLen()+1) / 2
	x := new(big.Int).Lsh(one, guessBits+1)

	for {
		next := new(big.Int).Div(n, x)
		next.Add(next, x)
		next.Rsh(next, 1)
		if next.Cmp(x) >= 0 {
			break
		}
		x = next
	}

	// Newton's method on integers can settle one above the true floor; step
	// down until x^2 <= n.
	for new(big.Int).Mul(x, x).Cmp(n) > 0 {
		x.Sub(x, one)
	}
	return x
}
