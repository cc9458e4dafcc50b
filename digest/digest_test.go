// This file is part of rtcseed.
//
// rtcseed is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rtcseed is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rtcseed.  If not, see <https://www.gnu.org/licenses/>.

package digest_test

import (
	"testing"

	"github.com/jetsetilly/rtcseed/digest"
	"github.com/jetsetilly/rtcseed/input"
	"github.com/jetsetilly/rtcseed/seed"
	"github.com/jetsetilly/rtcseed/test"
)

func TestSequence(t *testing.T) {
	start, err := seed.NewMoment(2000, 12, 31, 23, 58)
	test.DemandSuccess(t, err)

	entries, err := seed.Generate(start, 4)
	test.DemandSuccess(t, err)

	// empty digest
	dig := digest.NewSequence()
	test.ExpectEquality(t, dig.Hash(), "0000000000000000000000000000000000000000")

	for _, e := range entries {
		dig.AddEntry(e)
	}
	h := dig.Hash()
	test.ExpectEquality(t, len(h), 40)
	test.ExpectEquality(t, digest.Entries(entries), h)

	// regenerating the sequence gives the same fingerprint
	again, err := seed.Generate(start, 4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, digest.Entries(again), h)

	// order matters
	swapped := []seed.Entry{entries[1], entries[0], entries[2], entries[3]}
	test.ExpectInequality(t, digest.Entries(swapped), h)

	// a shorter sequence is different
	test.ExpectInequality(t, digest.Entries(entries[:3]), h)

	// the clock reading makes a difference
	bcd, err := seed.GenerateWith(start, 4, input.DeriveBCD)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, digest.Entries(bcd), h)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), "0000000000000000000000000000000000000000")
}
