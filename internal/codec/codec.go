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

// Package codec implements the bijection between byte sequences and
// nonnegative integers used to carry a secret through integer-only algebra
// without losing leading zero bytes, grounded on paperback's big.Int
// byte-roundtripping helpers (pkg/shamir/utils.go's paddedBigint,
// encodeBigInt/decodeBigInt).
package codec

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/rabinbenor/rbss/internal/errs"
)

// Sentinel is the fixed nonzero byte prepended to every encoded bytestring
// before it is interpreted as an unsigned big-endian integer. Its presence
// on decode both preserves leading zero bytes in the original bytestring
// and gives a cheap tamper-detection signal: a large numeric perturbation of
// the integer destroys it with overwhelming probability.
const Sentinel byte = 0x2A

// ErrMissingSentinel is returned by BytesOfInt when the decoded leading byte
// isn't Sentinel, which indicates the integer did not originate from
// IntOfBytes (or was corrupted).
var ErrMissingSentinel = fmt.Errorf("%w: sentinel byte missing after decoding", errs.ErrParse)

// IntOfBytes prepends Sentinel to b and interprets the result as an
// unsigned big-endian integer. It never fails on well-formed input.
func IntOfBytes(b []byte) *big.Int {
	buf := make([]byte, len(b)+1)
	buf[0] = Sentinel
	copy(buf[1:], b)
	return new(big.Int).SetBytes(buf)
}

// BytesOfInt is the inverse of IntOfBytes: it emits the unsigned big-endian
// byte representation of n, strips the leading Sentinel byte, and returns
// the original bytestring. It fails with ErrMissingSentinel if the leading
// byte isn't Sentinel (n did not originate from IntOfBytes, or the numeric
// value was tampered with).
//
// Unlike the hex-string-based reference implementation this scheme is
// derived from, math/big.Int.Bytes already returns the minimal unsigned
// big-endian byte slice with no partial leading byte, so there is no
// hex-digit-parity padding step to reproduce here: IntOfBytes's sentinel
// byte is always the first, full byte of the encoded integer.
func BytesOfInt(n *big.Int) ([]byte, error) {
	b := n.Bytes()
	if len(b) == 0 || b[0] != Sentinel {
		return nil, errors.Wrap(ErrMissingSentinel, "bytes_of_int")
	}
	return b[1:], nil
}
