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

// Package checkvector implements the information-theoretic, two-wise
// independent MAC used to authenticate shares against one another without
// any computational hardness assumption. The share-authenticator shape (an
// opaque tag accompanying a share, verified by a third party holding a
// secret key) is grounded on paperback's pkg/shamir share-signing idiom
// (constructShare/payload.Sign), adapted from an ed25519 signature to the
// additive MAC this scheme specifies instead.
package checkvector

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/rabinbenor/rbss/internal/entropy"
	"github.com/rabinbenor/rbss/internal/primes"
)

// MinAuthPrimeBitLength is the floor on the authentication prime's bit
// length regardless of how short the message is, keeping forgery
// probability 1/(q-1) negligible even for tiny messages.
const MinAuthPrimeBitLength = 107

// Tag is the (b, c) authenticator produced for a message under a given key.
// b is the random blinding coefficient chosen at generation time, and c is
// the resulting check value; together they let a holder of the key verify
// the message was not altered without revealing the key to anyone else.
type Tag struct {
	B, C *big.Int
}

// AuthPrime returns the authentication prime q for messages of declared
// maximum byte length L: the smallest Mersenne prime in the fixed table
// whose exponent strictly exceeds max(MinAuthPrimeBitLength, 8*L).
func AuthPrime(l int) (*big.Int, error) {
	bits := MinAuthPrimeBitLength
	if 8*l > bits {
		bits = 8 * l
	}
	p, err := primes.ForBitLength(bits)
	if err != nil {
		return nil, errors.Wrap(err, "select authentication prime")
	}
	return p, nil
}

// Generate produces a fresh (key, tag) pair authenticating message, sized
// for a declared maximum message length of l bytes.
func Generate(message *big.Int, l int) (key *big.Int, tag Tag, err error) {
	q, err := AuthPrime(l)
	if err != nil {
		return nil, Tag{}, err
	}
	y, err := entropy.InField(q)
	if err != nil {
		return nil, Tag{}, errors.Wrap(err, "sample mac key")
	}
	b, err := entropy.PositiveInField(q)
	if err != nil {
		return nil, Tag{}, errors.Wrap(err, "sample mac blinding coefficient")
	}
	return y, compute(message, y, b, q), nil
}

// Validate reports whether tag authenticates message under key, for a
// declared maximum message length of l bytes. A key outside the
// authentication field, or a failure to determine the authentication
// prime, is treated as a failed verification rather than a reported error:
// both conditions imply key cannot possibly have produced tag.
func Validate(key *big.Int, tag Tag, message *big.Int, l int) bool {
	q, err := AuthPrime(l)
	if err != nil {
		return false
	}
	if key.Sign() < 0 || key.Cmp(q) >= 0 {
		return false
	}
	want := compute(message, key, tag.B, q)
	return want.C.Cmp(tag.C) == 0
}

// compute evaluates the MAC formula c = (m + b*key) mod q, returning it
// paired with the blinding coefficient b used to produce it.
func compute(message, key, b, q *big.Int) Tag {
	c := new(big.Int).Mul(b, key)
	c.Add(c, message)
	c.Mod(c, q)
	return Tag{B: new(big.Int).Set(b), C: c}
}

// GenerateBatch produces k independent (key, tag) pairs over the same
// message, all sized for a declared maximum message length of l bytes. It
// is used to authenticate a single share against every other player in a
// sharing session: one key/tag pair per verifier.
func GenerateBatch(k int, message *big.Int, l int) (keys []*big.Int, tags []Tag, err error) {
	keys = make([]*big.Int, k)
	tags = make([]Tag, k)
	for i := 0; i < k; i++ {
		key, tag, err := Generate(message, l)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "generate mac %d", i)
		}
		keys[i] = key
		tags[i] = tag
	}
	return keys, tags, nil
}
