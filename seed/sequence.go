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

package seed

import (
	"github.com/jetsetilly/rtcseed/curated"
)

// InvalidCount is the pattern for errors returned when a sequence of seeds
// is requested with a count of less than one.
const InvalidCount = "invalid seed count: %d"

// Entry is a single element of a sequence of seeds.
type Entry struct {
	Moment Moment

	// the time of day of the Moment in the form HH:MM
	Label string

	Seed Seed
}

// Sequence iterates over the seeds of consecutive minutes. The sequence is
// finite and can be restarted with Reset(). Entries are only derived when
// Next() is called.
//
// A Sequence is not safe for concurrent use but any number of Sequences with
// the same arguments can be used at once.
type Sequence struct {
	start  Moment
	count  int
	derive Deriver
	idx    int
}

// NewSequence is the preferred method of initialisation for the Sequence
// type. A nil Deriver means Derive().
func NewSequence(start Moment, count int, derive Deriver) (*Sequence, error) {
	if count < 1 {
		return nil, curated.Errorf(InvalidCount, count)
	}
	if derive == nil {
		derive = Derive
	}
	return &Sequence{
		start:  start,
		count:  count,
		derive: derive,
	}, nil
}

// Next returns the next entry in the sequence. The bool return value is
// false once the sequence is exhausted.
func (seq *Sequence) Next() (Entry, bool) {
	if seq.idx >= seq.count {
		return Entry{}, false
	}

	m := seq.start.Add(seq.idx)
	seq.idx++

	return Entry{
		Moment: m,
		Label:  m.Label(),
		Seed:   seq.derive(m),
	}, true
}

// Reset the sequence to the first entry.
func (seq *Sequence) Reset() {
	seq.idx = 0
}

// Len returns the number of entries in the full sequence.
func (seq *Sequence) Len() int {
	return seq.count
}

// Generate returns the seeds for count consecutive minutes, beginning with
// the start Moment.
func Generate(start Moment, count int) ([]Entry, error) {
	return GenerateWith(start, count, Derive)
}

// GenerateWith is the same as Generate() but with an alternative Deriver.
func GenerateWith(start Moment, count int, derive Deriver) ([]Entry, error) {
	seq, err := NewSequence(start, count, derive)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, count)
	for e, ok := seq.Next(); ok; e, ok = seq.Next() {
		entries = append(entries, e)
	}

	return entries, nil
}

// GenerateFields is the same as Generate() except that the start Moment is
// created from the fields first. Nothing is generated if the fields do not
// form a Moment.
func GenerateFields(year, month, day, hour, minute, count int) ([]Entry, error) {
	start, err := NewMoment(year, month, day, hour, minute)
	if err != nil {
		return nil, err
	}
	return Generate(start, count)
}
