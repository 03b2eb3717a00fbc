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

// Package rss implements the Rabin-Ben-Or robust secret sharing scheme: a
// dealer splits a secret into shares distributed to named players, any
// threshold of which reconstruct it under honest behavior, and which,
// augmented with pairwise information-theoretic check vectors, let the
// dealer recover the secret even when some players return corrupted,
// malformed, or colluding shares.
//
// The package is organized the way paperback lays out pkg/shamir: a core
// algebraic layer underneath (internal/polynomial, internal/shamir,
// internal/checkvector, internal/codec, internal/pairing, internal/entropy,
// internal/primes) and a thin orchestration layer on top (this package)
// that assembles and serializes player-facing records. Network transport,
// persistent key storage, command-line interfaces, and logging are left to
// callers; this package is a library.
package rss
