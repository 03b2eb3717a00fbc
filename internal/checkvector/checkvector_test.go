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

package checkvector

import (
	"math/big"
	"testing"
)

func TestGenerateValidateRoundTrip(t *testing.T) {
	message := big.NewInt(12345)

	key, tag, err := Generate(message, 16)
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}

	if !Validate(key, tag, message, 16) {
		t.Errorf("Validate rejected a genuine (message, key, tag) triple")
	}
}

func TestValidateRejectsTamperedMessage(t *testing.T) {
	message := big.NewInt(500)
	key, tag, err := Generate(message, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tampered := new(big.Int).Add(message, big.NewInt(1))
	if Validate(key, tag, tampered, 16) {
		t.Errorf("Validate accepted a tampered message")
	}
}

func TestValidateRejectsWrongKey(t *testing.T) {
	message := big.NewInt(500)
	_, tag, err := Generate(message, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wrongKey := big.NewInt(1)
	if Validate(wrongKey, tag, message, 16) {
		t.Errorf("Validate accepted an authenticator under the wrong key")
	}
}

func TestValidateRejectsKeyOutOfField(t *testing.T) {
	q, err := AuthPrime(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	badKey := new(big.Int).Add(q, big.NewInt(1))
	if Validate(badKey, Tag{B: big.NewInt(0), C: big.NewInt(0)}, big.NewInt(1), 8) {
		t.Errorf("Validate accepted a key outside the authentication field")
	}
}

func TestGenerateBatchProducesKValidPairs(t *testing.T) {
	message := big.NewInt(42)
	keys, tags, err := GenerateBatch(3, message, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 3 || len(tags) != 3 {
		t.Fatalf("expected 3 keys and tags, got %d keys, %d tags", len(keys), len(tags))
	}
	for i := range keys {
		if !Validate(keys[i], tags[i], message, 16) {
			t.Errorf("Validate %d rejected its own generated tag", i)
		}
	}
}

func TestGenerateTagBlindingCoefficientIsNonzero(t *testing.T) {
	message := big.NewInt(7)
	for i := 0; i < 50; i++ {
		_, tag, err := Generate(message, 16)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tag.B.Sign() == 0 {
			t.Fatalf("Generate produced a zero blinding coefficient")
		}
	}
}

func TestAuthPrimeRespectsFloorAndMessageLength(t *testing.T) {
	small, err := AuthPrime(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if small.BitLen() <= MinAuthPrimeBitLength {
		t.Errorf("AuthPrime(1) returned bit length %d, want > %d", small.BitLen(), MinAuthPrimeBitLength)
	}

	large, err := AuthPrime(64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if large.BitLen() <= 8*64 {
		t.Errorf("AuthPrime(64) returned bit length %d, want > %d", large.BitLen(), 8*64)
	}
}
