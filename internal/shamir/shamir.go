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

// Package shamir implements the core (threshold, players) Shamir secret
// sharing scheme over a single big.Int secret, grounded on paperback's
// pkg/shamir.Split/Combine. Unlike paperback, which chunks the secret into
// fixed-size blocks (one polynomial per block) because its secret is an
// arbitrary-length byte blob, this package shares a single integer: the
// codec package already folds the whole secret into one integer bounded by
// an appropriately sized field, so chunking would be redundant. Share
// authentication (paperback signs each share with an ed25519 keypair stored
// in the secret) is handled by the sibling checkvector package instead,
// since the target scheme's authentication is information-theoretic rather
// than computational.
package shamir

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/rabinbenor/rbss/internal/entropy"
	"github.com/rabinbenor/rbss/internal/errs"
	"github.com/rabinbenor/rbss/internal/polynomial"
	"github.com/rabinbenor/rbss/internal/primes"
)

var (
	// ErrThresholdTooSmall is returned when a threshold below 1 is requested.
	ErrThresholdTooSmall = fmt.Errorf("%w: threshold must be at least one", errs.ErrConfiguration)

	// ErrThresholdExceedsPlayers is returned when more shares are requested
	// to reconstruct than the scheme was configured to produce.
	ErrThresholdExceedsPlayers = fmt.Errorf("%w: threshold cannot exceed the number of players", errs.ErrConfiguration)

	// ErrSecretTooLarge is returned when the secret integer does not fit
	// under the configured prime.
	ErrSecretTooLarge = fmt.Errorf("%w: secret does not fit in the configured field", errs.ErrConfiguration)

	// ErrTooFewShares is returned when reconstruction is attempted with
	// fewer points than the threshold requires.
	ErrTooFewShares = fmt.Errorf("%w: too few shares to reconstruct the secret", errs.ErrReconstructionFailure)
)

// Share is a single (x, f(x)) evaluation point of the sharing polynomial.
type Share struct {
	X, Y *big.Int
}

// ValidateParams checks that (threshold, players) describe a usable
// threshold scheme, independent of any particular secret or prime.
func ValidateParams(threshold, players int) error {
	if threshold < 1 {
		return errors.Wrapf(ErrThresholdTooSmall, "threshold %d", threshold)
	}
	if threshold > players {
		return errors.Wrapf(ErrThresholdExceedsPlayers, "threshold %d, players %d", threshold, players)
	}
	return nil
}

// Split splits secret into `players` points on a random degree-(threshold-1)
// polynomial over Z_prime whose constant term is secret, one point per
// player. Evaluation abscissae are fixed at 1..players (not randomly
// sampled): only the higher-degree coefficients are secret, so there is
// nothing to gain from hiding which x-coordinate belongs to which player,
// and fixing them lets a player's position double as its share index. The
// higher-degree coefficients themselves are sampled distinct and nonzero,
// per the reference scheme's distinctness requirement.
func Split(secret *big.Int, threshold, players int, prime *big.Int) ([]Share, error) {
	if err := ValidateParams(threshold, players); err != nil {
		return nil, err
	}
	if secret.Sign() < 0 || secret.Cmp(prime) >= 0 {
		return nil, errors.Wrapf(ErrSecretTooLarge, "secret %v, prime %v", secret, prime)
	}

	coeffs := make(polynomial.Coefficients, threshold)
	coeffs[0] = new(big.Int).Set(secret)
	rest, err := entropy.DistinctPositiveInField(prime, threshold-1)
	if err != nil {
		return nil, errors.Wrap(err, "generate distinct random coefficients")
	}
	copy(coeffs[1:], rest)

	shares := make([]Share, players)
	for i := 0; i < players; i++ {
		x := big.NewInt(int64(i + 1))
		y, err := coeffs.EvaluateMod(x, prime)
		if err != nil {
			return nil, errors.Wrapf(err, "evaluate share %d", i)
		}
		shares[i] = Share{X: x, Y: y}
	}
	return shares, nil
}

// SharingPrime selects the sharing prime p for a scheme with `players`
// players and a declared maximum secret length of `l` bytes: the smallest
// Mersenne prime in the fixed table whose exponent strictly exceeds
// max(bits(players), 8*(l+1)). Sizing on 8*(l+1) rather than 8*l leaves room
// for the codec's sentinel byte, and exceeding bits(players) guarantees
// players < p so every fixed abscissa 1..players lies in the field.
func SharingPrime(players, l int) (*big.Int, error) {
	bits := big.NewInt(int64(players)).BitLen()
	if secretBits := 8 * (l + 1); secretBits > bits {
		bits = secretBits
	}
	p, err := primes.ForBitLength(bits)
	if err != nil {
		return nil, errors.Wrap(err, "select sharing prime")
	}
	return p, nil
}

// Reconstruct recovers the secret from at least `threshold` shares.
func Reconstruct(threshold int, prime *big.Int, shares ...Share) (*big.Int, error) {
	if len(shares) < threshold {
		return nil, errors.Wrapf(ErrTooFewShares, "have %d, need %d", len(shares), threshold)
	}
	points := make([]polynomial.Point, len(shares))
	for i, s := range shares {
		points[i] = polynomial.Point{X: s.X, Y: s.Y}
	}
	return polynomial.InterpolateAtZero(threshold, prime, points...)
}
