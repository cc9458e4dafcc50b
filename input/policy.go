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

package input

import (
	"github.com/jetsetilly/rtcseed/logger"
	"github.com/jetsetilly/rtcseed/seed"
)

// Policy decides how Fields are turned into a Request.
type Policy struct {
	Clock Clock

	// clamp a day that is too large for the month to the last day of the
	// month. if false a seed.InvalidDate error is returned instead
	NormalizeDay bool

	// the maximum number of seeds in a request. zero means the default
	// maximum
	MaxSeeds int
}

// Request is the result of parsing Fields with a Policy.
type Request struct {
	Start seed.Moment
	Count int
	Clock Clock

	// the day field was clamped to the last day of the month. the
	// corrected day is Start.Day()
	Normalized bool
}

// Parse the Fields into a Request. Field errors are returned for the first
// field in error. A seed.InvalidDate error is returned if the fields do not
// form a date and NormalizeDay is false.
func (p Policy) Parse(f Fields) (Request, error) {
	var v [NumFields]int

	for i := Year; i < NumFields; i++ {
		r := ranges[i]
		if i == Seeds && p.MaxSeeds > 0 {
			r.Max = p.MaxSeeds
		}

		var err error
		v[i], err = parseField(i, f[i], r)
		if err != nil {
			return Request{}, err
		}
	}

	req := Request{
		Count: v[Seeds],
		Clock: p.Clock,
	}

	if p.NormalizeDay {
		last := seed.DaysInMonth(v[Year], v[Month])
		if v[Day] > last {
			logger.Logf(logger.Allow, "input", "day %d clamped to %d for %04d-%02d", v[Day], last, v[Year], v[Month])
			v[Day] = last
			req.Normalized = true
		}
	}

	var err error
	req.Start, err = seed.NewMoment(v[Year], v[Month], v[Day], v[Hour], v[Minute])
	if err != nil {
		return Request{}, err
	}

	return req, nil
}

// Seed returns the seed for the start of the request.
func (req Request) Seed() seed.Seed {
	return req.Clock.Deriver()(req.Start)
}

// Generate the sequence of seeds for the request.
func (req Request) Generate() ([]seed.Entry, error) {
	return seed.GenerateWith(req.Start, req.Count, req.Clock.Deriver())
}
