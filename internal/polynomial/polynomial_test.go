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

package polynomial

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
)

func TestEvaluateModHornersMethod(t *testing.T) {
	// p(x) = 3 + 2x + x^2, evaluated mod 101.
	c := Coefficients{big.NewInt(3), big.NewInt(2), big.NewInt(1)}
	m := big.NewInt(101)

	tests := []struct {
		x    int64
		want int64
	}{
		{0, 3},
		{1, 6},
		{2, 11},
		{10, 123 % 101},
	}
	for _, tt := range tests {
		got, err := c.EvaluateMod(big.NewInt(tt.x), m)
		if err != nil {
			t.Fatalf("EvaluateMod(%d): unexpected error: %v", tt.x, err)
		}
		if got.Cmp(big.NewInt(tt.want)) != 0 {
			t.Errorf("EvaluateMod(%d) = %v, want %d", tt.x, got, tt.want)
		}
	}
}

func TestEvaluateModEmptyCoefficients(t *testing.T) {
	var c Coefficients
	if _, err := c.EvaluateMod(big.NewInt(1), big.NewInt(101)); !errors.Is(err, ErrEmptyCoefficients) {
		t.Errorf("expected ErrEmptyCoefficients, got %v", err)
	}
}

func TestInterpolateAtZeroRecoversConstant(t *testing.T) {
	// p(x) = 42 + 5x + 9x^2 mod 101.
	prime := big.NewInt(101)
	c := Coefficients{big.NewInt(42), big.NewInt(5), big.NewInt(9)}

	var points []Point
	for x := int64(1); x <= 5; x++ {
		y, err := c.EvaluateMod(big.NewInt(x), prime)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		points = append(points, Point{X: big.NewInt(x), Y: y})
	}

	got, err := InterpolateAtZero(3, prime, points...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("InterpolateAtZero = %v, want 42", got)
	}
}

func TestInterpolateAtZeroUsesOnlyThresholdPoints(t *testing.T) {
	prime := big.NewInt(101)
	c := Coefficients{big.NewInt(7), big.NewInt(3)}

	var points []Point
	for x := int64(1); x <= 10; x++ {
		y, err := c.EvaluateMod(big.NewInt(x), prime)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		points = append(points, Point{X: big.NewInt(x), Y: y})
	}

	got, err := InterpolateAtZero(2, prime, points...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("InterpolateAtZero = %v, want 7", got)
	}
}

func TestInterpolateAtZeroTooFewPoints(t *testing.T) {
	prime := big.NewInt(101)
	points := []Point{{X: big.NewInt(1), Y: big.NewInt(2)}}
	if _, err := InterpolateAtZero(3, prime, points...); !errors.Is(err, ErrNoPoints) {
		t.Errorf("expected ErrNoPoints, got %v", err)
	}
}

func TestInterpolateAtZeroInconsistentPoints(t *testing.T) {
	prime := big.NewInt(101)
	points := []Point{
		{X: big.NewInt(1), Y: big.NewInt(2)},
		{X: big.NewInt(1), Y: big.NewInt(3)},
		{X: big.NewInt(2), Y: big.NewInt(4)},
	}
	if _, err := InterpolateAtZero(2, prime, points...); !errors.Is(err, ErrInconsistentPoints) {
		t.Errorf("expected ErrInconsistentPoints, got %v", err)
	}
}
