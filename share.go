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

package rss

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/rabinbenor/rbss/internal/checkvector"
	"github.com/rabinbenor/rbss/internal/codec"
	"github.com/rabinbenor/rbss/internal/errs"
	"github.com/rabinbenor/rbss/internal/pairing"
	"github.com/rabinbenor/rbss/internal/shamir"
)

// ErrDuplicatePlayer is returned when the players list names the same
// player twice.
var ErrDuplicatePlayer = fmt.Errorf("%w: duplicate player id", errs.ErrConfiguration)

// ErrEmptyPlayerID is returned when a player id is the empty string.
var ErrEmptyPlayerID = fmt.Errorf("%w: player id must be non-empty", errs.ErrConfiguration)

func validatePlayers(players []string) error {
	seen := make(map[string]struct{}, len(players))
	for _, p := range players {
		if p == "" {
			return errors.WithStack(ErrEmptyPlayerID)
		}
		if _, dup := seen[p]; dup {
			return errors.Wrapf(ErrDuplicatePlayer, "player %q", p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// ShareAuthenticated splits secret into len(players) robust share records,
// one per player, each cross-authenticated against every other player's
// share with an information-theoretic check vector. The returned map's
// values are self-describing JSON documents suitable for dispersal by the
// caller; l is the maximum secret length in bytes the caller will ever
// share under this scheme (it sizes the fields, not any single call).
func ShareAuthenticated(players []string, t, l int, secret []byte) (map[string]string, error) {
	if err := validatePlayers(players); err != nil {
		return nil, err
	}
	n := len(players)

	prime, err := shamir.SharingPrime(n, l)
	if err != nil {
		return nil, errors.Wrap(err, "select sharing prime")
	}

	secretInt := codec.IntOfBytes(secret)
	points, err := shamir.Split(secretInt, t, n, prime)
	if err != nil {
		return nil, errors.Wrap(err, "split secret")
	}

	shareOf := make([]*big.Int, n)
	for i, pt := range points {
		s, err := pairing.Pair(pt.X, pt.Y)
		if err != nil {
			return nil, errors.Wrapf(err, "pack share %d", i)
		}
		shareOf[i] = s
	}

	keyFrom := make([][]*big.Int, n)
	tagTo := make([][]checkvector.Tag, n)
	for i := 0; i < n; i++ {
		keys, tags, err := checkvector.GenerateBatch(n, shareOf[i], l+1)
		if err != nil {
			return nil, errors.Wrapf(err, "generate mac batch for share %d", i)
		}
		keyFrom[i] = keys
		tagTo[i] = tags
	}

	out := make(map[string]string, n)
	for q := 0; q < n; q++ {
		record := Record{
			Share: shareOf[q],
			Keys:  make(map[string]*big.Int, n),
			Tags:  make(map[string]checkvector.Tag, n),
		}
		for j := 0; j < n; j++ {
			record.Keys[players[j]] = keyFrom[j][q]
			record.Tags[players[j]] = tagTo[q][j]
		}
		serialized, err := json.Marshal(record)
		if err != nil {
			return nil, errors.Wrapf(err, "serialize record for player %q", players[q])
		}
		out[players[q]] = string(serialized)
	}
	return out, nil
}
