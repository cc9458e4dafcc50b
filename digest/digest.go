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

// Package digest creates fingerprints of seed sequences. A fingerprint is a
// SHA-1 hash that is chained from one entry to the next, so the order of the
// entries matters as well as their content.
//
// Fingerprints are used by batch files to check that a request still produces
// the sequence of seeds it produced when the file was written.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/rtcseed/seed"
)

// Sequence creates a fingerprint of the seed.Entry values it has seen.
type Sequence struct {
	digest [sha1.Size]byte
	buf    []byte
}

// NewSequence is the preferred method of initialisation for the Sequence
// type.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Hash returns the current fingerprint as a hexadecimal string.
func (dig *Sequence) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest returns the fingerprint to its initial state.
func (dig *Sequence) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// AddEntry to the fingerprint. The previous fingerprint is hashed along with
// the moment and seed of the entry.
func (dig *Sequence) AddEntry(e seed.Entry) {
	dig.buf = append(dig.buf[:0], dig.digest[:]...)
	dig.buf = append(dig.buf, e.Moment.String()...)
	dig.buf = append(dig.buf, byte(e.Seed>>8), byte(e.Seed))
	dig.digest = sha1.Sum(dig.buf)
}

// Entries returns the fingerprint of the entries.
func Entries(entries []seed.Entry) string {
	dig := NewSequence()
	for _, e := range entries {
		dig.AddEntry(e)
	}
	return dig.Hash()
}
