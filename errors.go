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
	"fmt"

	"github.com/rabinbenor/rbss/internal/errs"
)

var (
	// ErrMalformedRecord is returned when a serialized record cannot be
	// parsed, or parses but is missing a required field.
	ErrMalformedRecord = fmt.Errorf("%w: malformed share record", errs.ErrParse)

	// ErrTooFewValidRecords is returned when fewer structurally valid
	// records were submitted than the reconstruction threshold requires.
	// Supplements the distilled taxonomy's single ReconstructionFailure
	// kind with the specific cause, grounded on the original's
	// FatalReconstructionFailure("too few valid shares") branch.
	ErrTooFewValidRecords = fmt.Errorf("%w: fewer structurally valid records than the threshold requires", errs.ErrReconstructionFailure)

	// ErrAmbiguousReconstruction is returned when voting produced zero or
	// more than one authorized secret. Supplements the distilled taxonomy
	// with the specific cause, grounded on the original's
	// FatalReconstructionFailure("no consensus"/"multiple candidates")
	// branches.
	ErrAmbiguousReconstruction = fmt.Errorf("%w: voting did not produce exactly one authorized secret", errs.ErrReconstructionFailure)
)
