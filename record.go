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
	"math/big"

	"github.com/pkg/errors"

	"github.com/rabinbenor/rbss/internal/checkvector"
)

// Record is the per-player bundle produced by sharing and consumed by
// reconstruction: one share integer, one MAC key per player, the holder
// itself included (used to verify that player's tag about its own share),
// and one tag per player, the holder itself included (given to that player
// so it can verify this record's share).
//
// Unlike paperback's SharePayload, which carries a Meta struct (prime,
// block size, public key) because each share is independently
// self-describing, Record carries no metadata of its own: the sharing
// prime and authentication prime are both pure functions of the
// (n, t, L)/(n, L) parameters the caller already has on hand to call
// ReconstructAuthenticated, so recomputing them is cheaper and less
// error-prone than trusting values embedded in adversary-controlled input.
type Record struct {
	Share *big.Int
	Keys  map[string]*big.Int
	Tags  map[string]checkvector.Tag
}

// wireRecord is the JSON wire format for a Record. Big integers are
// serialized as decimal strings, not native JSON numbers, so precision
// survives languages whose JSON numbers are IEEE-754 doubles. The legacy
// field name "vectors" is written on encode; "tags" is accepted as an
// alias on decode, per the serialized format's compatibility contract.
type wireRecord struct {
	Share   string              `json:"share"`
	Keys    map[string]string   `json:"keys"`
	Vectors map[string][2]string `json:"vectors,omitempty"`
	Tags    map[string][2]string `json:"tags,omitempty"`
}

// MarshalJSON returns the JSON encoding of the record, using the legacy
// "vectors" field name for tags.
func (r Record) MarshalJSON() ([]byte, error) {
	wr := wireRecord{
		Share:   r.Share.String(),
		Keys:    make(map[string]string, len(r.Keys)),
		Vectors: make(map[string][2]string, len(r.Tags)),
	}
	for player, key := range r.Keys {
		wr.Keys[player] = key.String()
	}
	for player, tag := range r.Tags {
		wr.Vectors[player] = [2]string{tag.B.String(), tag.C.String()}
	}
	return json.Marshal(wr)
}

// UnmarshalJSON fills the record from its JSON encoding. It accepts tags
// under either "vectors" (the legacy, canonical name) or "tags" (the new
// alias); if both are present, "vectors" wins.
func (r *Record) UnmarshalJSON(data []byte) error {
	var wr wireRecord
	if err := json.Unmarshal(data, &wr); err != nil {
		return errors.Wrap(ErrMalformedRecord, err.Error())
	}

	share, ok := new(big.Int).SetString(wr.Share, 10)
	if !ok {
		return errors.Wrap(ErrMalformedRecord, "share is not a decimal integer")
	}

	keys := make(map[string]*big.Int, len(wr.Keys))
	for player, encoded := range wr.Keys {
		key, ok := new(big.Int).SetString(encoded, 10)
		if !ok {
			return errors.Wrapf(ErrMalformedRecord, "key for player %q is not a decimal integer", player)
		}
		keys[player] = key
	}

	tagSource := wr.Vectors
	if len(tagSource) == 0 {
		tagSource = wr.Tags
	}
	tags := make(map[string]checkvector.Tag, len(tagSource))
	for player, pair := range tagSource {
		b, ok := new(big.Int).SetString(pair[0], 10)
		if !ok {
			return errors.Wrapf(ErrMalformedRecord, "tag b-component for player %q is not a decimal integer", player)
		}
		c, ok := new(big.Int).SetString(pair[1], 10)
		if !ok {
			return errors.Wrapf(ErrMalformedRecord, "tag c-component for player %q is not a decimal integer", player)
		}
		tags[player] = checkvector.Tag{B: b, C: c}
	}

	r.Share = share
	r.Keys = keys
	r.Tags = tags
	return nil
}
