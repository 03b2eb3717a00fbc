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

package pairing

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
)

func TestPairUnpairRoundTrip(t *testing.T) {
	tests := []struct{ x, y int64 }{
		{0, 0},
		{0, 1},
		{1, 0},
		{1, 1},
		{3, 7},
		{7, 3},
		{1000, 1},
		{1, 1000},
		{123456789, 987654321},
	}
	for _, tt := range tests {
		x := big.NewInt(tt.x)
		y := big.NewInt(tt.y)
		z, err := Pair(x, y)
		if err != nil {
			t.Fatalf("Pair(%d, %d): unexpected error: %v", tt.x, tt.y, err)
		}
		gotX, gotY, err := Unpair(z)
		if err != nil {
			t.Fatalf("Unpair(%v): unexpected error: %v", z, err)
		}
		if gotX.Cmp(x) != 0 || gotY.Cmp(y) != 0 {
			t.Errorf("Unpair(Pair(%d, %d)) = (%v, %v), want (%d, %d)", tt.x, tt.y, gotX, gotY, tt.x, tt.y)
		}
	}
}

func TestPairDistinctInputsYieldDistinctOutputs(t *testing.T) {
	seen := make(map[string]struct{})
	for x := int64(0); x < 30; x++ {
		for y := int64(0); y < 30; y++ {
			z, err := Pair(big.NewInt(x), big.NewInt(y))
			if err != nil {
				t.Fatalf("Pair(%d, %d): unexpected error: %v", x, y, err)
			}
			key := z.String()
			if _, dup := seen[key]; dup {
				t.Fatalf("Pair(%d, %d) collided on an earlier pair at z=%s", x, y, key)
			}
			seen[key] = struct{}{}
		}
	}
}

func TestPairNegativeInput(t *testing.T) {
	if _, err := Pair(big.NewInt(-1), big.NewInt(0)); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("expected ErrNegativeInput, got %v", err)
	}
	if _, err := Pair(big.NewInt(0), big.NewInt(-1)); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("expected ErrNegativeInput, got %v", err)
	}
}

func TestUnpairNegativeInput(t *testing.T) {
	if _, _, err := Unpair(big.NewInt(-5)); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("expected ErrNegativeInput, got %v", err)
	}
}

func TestFloorSqrtAgainstPerfectSquaresAndNeighbors(t *testing.T) {
	for r := int64(0); r < 200; r++ {
		n := big.NewInt(r * r)
		if got := floorSqrt(n); got.Cmp(big.NewInt(r)) != 0 {
			t.Errorf("floorSqrt(%d) = %v, want %d", r*r, got, r)
		}
		if r > 0 {
			n := big.NewInt(r*r - 1)
			if got := floorSqrt(n); got.Cmp(big.NewInt(r-1)) != 0 {
				t.Errorf("floorSqrt(%d) = %v, want %d", r*r-1, got, r-1)
			}
		}
	}
}

func TestFloorSqrtLargeValue(t *testing.T) {
	big512, _ := new(big.Int).SetString("134535467432346756478987234567898723467892342342342342346745678902345", 10)
	root := floorSqrt(big512)
	lower := new(big.Int).Mul(root, root)
	upper := new(big.Int).Mul(new(big.Int).Add(root, big.NewInt(1)), new(big.Int).Add(root, big.NewInt(1)))
	if lower.Cmp(big512) > 0 || upper.Cmp(big512) <= 0 {
		t.Errorf("floorSqrt(%v) = %v is not the floor square root (root^2=%v, (root+1)^2=%v)", big512, root, lower, upper)
	}
}
