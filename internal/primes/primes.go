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

// Package primes looks up Mersenne primes from a fixed, ordered table. The
// table-scan shape is grounded on paperback's bip39 wordlist lookup
// (pkg/bip39/wordlist.go): a small fixed array walked in order rather than
// anything computed, since the whole point of a hardcoded table is that
// nothing about it needs deriving at runtime.
package primes

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/rabinbenor/rbss/internal/errs"
)

// mersenneExponents is the fixed, ordered table of Mersenne prime exponents
// this module recognizes. A production-grade prime generator is out of
// scope; this table is sufficient for every bit length this module needs.
var mersenneExponents = []int{
	2, 3, 5, 7, 13, 17, 19, 31, 61, 89, 107, 127, 521, 607,
	1279, 2203, 2281, 3217, 4253, 4423,
}

var (
	// ErrNegativeBitLength is returned when ForBitLength is asked for a
	// negative bit length.
	ErrNegativeBitLength = fmt.Errorf("%w: bit length must be nonnegative", errs.ErrConfiguration)

	// ErrNoSuitablePrime is returned when no table entry exceeds the
	// requested bit length.
	ErrNoSuitablePrime = fmt.Errorf("%w: no mersenne prime in the fixed table exceeds the requested bit length", errs.ErrConfiguration)
)

// ForBitLength returns 2^e-1 for the smallest Mersenne exponent e in the
// fixed table strictly greater than b. The returned value is always a fresh
// *big.Int; callers may mutate it freely without affecting later calls.
func ForBitLength(b int) (*big.Int, error) {
	if b < 0 {
		return nil, errors.Wrapf(ErrNegativeBitLength, "bit length %d", b)
	}
	for _, exp := range mersenneExponents {
		if exp > b {
			p := new(big.Int).Lsh(big.NewInt(1), uint(exp))
			return p.Sub(p, big.NewInt(1)), nil
		}
	}
	return nil, errors.Wrapf(ErrNoSuitablePrime, "bit length %d exceeds the largest table entry (%d)", b, mersenneExponents[len(mersenneExponents)-1])
}
