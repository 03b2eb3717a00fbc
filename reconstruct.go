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
	"sort"

	"github.com/pkg/errors"

	"github.com/rabinbenor/rbss/internal/checkvector"
	"github.com/rabinbenor/rbss/internal/codec"
	"github.com/rabinbenor/rbss/internal/pairing"
	"github.com/rabinbenor/rbss/internal/shamir"
)

// parseRecords deserializes every submitted record, routing failures into
// invalid rather than aborting the whole call: a single malformed player
// must never prevent reconstruction from the rest.
func parseRecords(submitted map[string]string) (records map[string]Record, invalid map[string]struct{}) {
	records = make(map[string]Record, len(submitted))
	invalid = make(map[string]struct{})
	for player, raw := range submitted {
		var r Record
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			invalid[player] = struct{}{}
			continue
		}
		records[player] = r
	}
	return records, invalid
}

// validateStructure checks that every parsed record names every responding
// player in both its keys and tags maps, moving any record that doesn't
// into invalid.
func validateStructure(records map[string]Record, responders []string, invalid map[string]struct{}) {
	for player, r := range records {
		if r.Share == nil {
			invalid[player] = struct{}{}
			continue
		}
		ok := true
		for _, other := range responders {
			if _, present := r.Keys[other]; !present {
				ok = false
				break
			}
			if _, present := r.Tags[other]; !present {
				ok = false
				break
			}
		}
		if !ok {
			invalid[player] = struct{}{}
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ReconstructAuthenticated recovers the secret from a set of submitted,
// possibly adversarial player records. n and t must match the values
// originally passed to ShareAuthenticated, and l must equal the maximum
// secret length declared there, since both the sharing prime and the
// authentication prime are derived from it. It returns the recovered secret,
// the players whose shares were authenticated as part of the winning
// vote, and the players whose submissions were structurally invalid.
func ReconstructAuthenticated(n, t, l int, submitted map[string]string) (secret []byte, verified []string, invalidPlayers []string, err error) {
	prime, err := shamir.SharingPrime(n, l)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "select sharing prime")
	}

	records, invalid := parseRecords(submitted)

	responders := make([]string, 0, len(submitted))
	for p := range submitted {
		responders = append(responders, p)
	}
	validateStructure(records, responders, invalid)

	var valid []string
	for p := range records {
		if _, bad := invalid[p]; !bad {
			valid = append(valid, p)
		}
	}

	if len(valid) < t {
		return nil, nil, sortedKeys(invalid), errors.Wrapf(ErrTooFewValidRecords, "have %d structurally valid records, need %d", len(valid), t)
	}

	// Step 3: pairwise authentication. accepted[v] is the sorted set of
	// players whose shares verifier v's keys validate.
	accepted := make(map[string][]string, len(valid))
	for _, v := range valid {
		var a []string
		for _, p := range valid {
			key, hasKey := records[v].Keys[p]
			tag, hasTag := records[p].Tags[v]
			if !hasKey || !hasTag {
				continue
			}
			if !checkvector.Validate(key, tag, records[p].Share, l+1) {
				continue
			}
			a = append(a, p)
		}
		sort.Strings(a)
		accepted[v] = a
	}

	// Step 4: candidate reconstruction per verifier meeting the threshold.
	candidateOf := make(map[string]string) // verifier -> decoded secret (as a byte-string key)
	decodedOf := make(map[string][]byte)   // byte-string key -> actual bytes
	for v, a := range accepted {
		if len(a) < t {
			continue
		}
		points := make([]shamir.Share, 0, len(a))
		for _, p := range a {
			x, y, uerr := pairing.Unpair(records[p].Share)
			if uerr != nil {
				continue
			}
			points = append(points, shamir.Share{X: x, Y: y})
		}
		if len(points) < t {
			continue
		}
		secretInt, rerr := shamir.Reconstruct(t, prime, points...)
		if rerr != nil {
			continue
		}
		decoded, derr := codec.BytesOfInt(secretInt)
		if derr != nil {
			// A byte-decoding failure just means this verifier has no
			// candidate; it is not fatal to the overall call.
			continue
		}
		key := string(decoded)
		candidateOf[v] = key
		decodedOf[key] = decoded
	}

	// Step 5: vote. Group verifiers by their reconstructed candidate.
	supportersOf := make(map[string][]string)
	for v, key := range candidateOf {
		supportersOf[key] = append(supportersOf[key], v)
	}

	var authorized []string
	for key, supporters := range supportersOf {
		if len(supporters) >= t {
			authorized = append(authorized, key)
		}
	}

	if len(authorized) != 1 {
		if len(authorized) == 0 {
			return nil, nil, sortedKeys(invalid), errors.Wrapf(ErrAmbiguousReconstruction, "no candidate secret reached the %d-verifier quorum", t)
		}
		return nil, nil, sortedKeys(invalid), errors.Wrapf(ErrAmbiguousReconstruction, "%d candidate secrets reached the %d-verifier quorum", len(authorized), t)
	}

	winner := authorized[0]
	verifiedSet := make(map[string]struct{})
	for _, v := range supportersOf[winner] {
		for _, p := range accepted[v] {
			verifiedSet[p] = struct{}{}
		}
	}

	return decodedOf[winner], sortedKeys(verifiedSet), sortedKeys(invalid), nil
}

// ReconstructUnauthenticated recovers a secret from every parseable record's
// share, without any cross-authentication. It provides no protection
// against corrupted or colluding players and should only be used as a
// diagnostic fallback or in settings where every player is already known
// honest.
func ReconstructUnauthenticated(n, l int, submitted map[string]string) ([]byte, error) {
	prime, err := shamir.SharingPrime(n, l)
	if err != nil {
		return nil, errors.Wrap(err, "select sharing prime")
	}

	var points []shamir.Share
	for _, raw := range submitted {
		var r Record
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			continue
		}
		if r.Share == nil {
			continue
		}
		x, y, err := pairing.Unpair(r.Share)
		if err != nil {
			continue
		}
		points = append(points, shamir.Share{X: x, Y: y})
	}

	secretInt, err := shamir.Reconstruct(len(points), prime, points...)
	if err != nil {
		return nil, errors.Wrap(err, "reconstruct secret")
	}
	decoded, err := codec.BytesOfInt(secretInt)
	if err != nil {
		return nil, errors.Wrap(err, "decode secret bytes")
	}
	return decoded, nil
}
