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

// Package errs defines the error-kind taxonomy shared by every package in
// this module. Each subsystem wraps one of these sentinels with a
// package-specific sentinel describing the concrete cause (see, e.g.,
// primes.ErrNoSuitablePrime), and call sites wrap that again with
// github.com/pkg/errors for a message and stack trace. Callers that only
// care about the kind test with errors.Is against one of these values;
// callers that care about the specific cause test against the
// package-specific sentinel instead.
package errs

import "errors"

var (
	// ErrConfiguration indicates a caller-supplied parameter violates a
	// size, threshold, or availability invariant (e.g. t > n, or no prime
	// exists for a requested bit length).
	ErrConfiguration = errors.New("configuration error")

	// ErrEntropyUnavailable indicates the OS cryptographic entropy source
	// could not be read.
	ErrEntropyUnavailable = errors.New("entropy unavailable")

	// ErrParse indicates a byte/integer decoding or share-record
	// deserialization failed structurally.
	ErrParse = errors.New("parse error")

	// ErrDomain indicates a programmer error: a negative input to the
	// pairing codec, or an empty coefficient list to the polynomial
	// routines.
	ErrDomain = errors.New("domain error")

	// ErrReconstructionFailure indicates robust reconstruction could not
	// produce a uniquely authorized secret.
	ErrReconstructionFailure = errors.New("reconstruction failure")
)
