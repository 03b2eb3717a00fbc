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

// Package entropy samples uniformly random field elements from the OS CSPRNG,
// grounded on paperback's pkg/crypto key-generation helpers (which also read
// directly from crypto/rand with no custom PRNG layered on top).
package entropy

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/rabinbenor/rbss/internal/errs"
)

var (
	// ErrUnavailable wraps any failure reading from the OS entropy source.
	ErrUnavailable = fmt.Errorf("%w: could not read from the system entropy source", errs.ErrEntropyUnavailable)

	// ErrTooManyDistinctValues is returned when more distinct field elements
	// are requested than the field can provide.
	ErrTooManyDistinctValues = fmt.Errorf("%w: requested more distinct field elements than the field contains", errs.ErrConfiguration)
)

// InField returns a uniformly random element of Z_prime, i.e. an integer in
// [0, prime).
func InField(prime *big.Int) (*big.Int, error) {
	n, err := rand.Int(rand.Reader, prime)
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	return n, nil
}

// PositiveInField returns a uniformly random element of Z_prime excluding
// zero, i.e. an integer in [1, prime). It uses rejection sampling, which
// terminates quickly since at most one in prime draws is rejected.
func PositiveInField(prime *big.Int) (*big.Int, error) {
	for {
		n, err := InField(prime)
		if err != nil {
			return nil, err
		}
		if n.Sign() != 0 {
			return n, nil
		}
	}
}

// DistinctPositiveInField returns count uniformly random, pairwise distinct,
// nonzero elements of Z_prime. It is used to draw a Shamir sharing
// polynomial's higher-degree coefficients, which must be pairwise distinct
// and never zero (a zero coefficient would silently lower the polynomial's
// degree).
func DistinctPositiveInField(prime *big.Int, count int) ([]*big.Int, error) {
	maxDistinct := new(big.Int).Sub(prime, big.NewInt(1))
	if big.NewInt(int64(count)).Cmp(maxDistinct) > 0 {
		return nil, errors.Wrapf(ErrTooManyDistinctValues, "requested %d distinct nonzero values from a field of size %v", count, prime)
	}

	seen := make(map[string]struct{}, count)
	out := make([]*big.Int, 0, count)
	for len(out) < count {
		n, err := PositiveInField(prime)
		if err != nil {
			return nil, err
		}
		key := n.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out, nil
}
