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

package seed_test

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/jetsetilly/rtcseed/seed"
)

// the day is limited to 28 so that every generated date is valid
func momentGens() []gopter.Gen {
	return []gopter.Gen{
		gen.IntRange(0, 9999),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		gen.IntRange(0, 23),
		gen.IntRange(0, 59),
	}
}

func TestDeriveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("derive is deterministic", prop.ForAll(
		func(year, month, day, hour, minute int) bool {
			a, errA := seed.DeriveFields(year, month, day, hour, minute)
			b, errB := seed.DeriveFields(year, month, day, hour, minute)
			return errA == nil && errB == nil && a == b
		},
		momentGens()...,
	))

	properties.Property("seed is the fold of the minute count", prop.ForAll(
		func(year, month, day, hour, minute int) bool {
			m, err := seed.NewMoment(year, month, day, hour, minute)
			if err != nil {
				return false
			}
			total := m.DayOffset()*1440 + int64(hour)*60 + int64(minute)
			return uint16(seed.Derive(m)) == uint16((total>>16)^(total&0xffff))
		},
		momentGens()...,
	))

	properties.Property("time of day does not change the day offset", prop.ForAll(
		func(year, month, day, hour, minute int) bool {
			a, _ := seed.NewMoment(year, month, day, 0, 0)
			b, _ := seed.NewMoment(year, month, day, hour, minute)
			return a.DayOffset() == b.DayOffset()
		},
		momentGens()...,
	))

	properties.TestingRun(t)
}

func TestLeapCorrectionProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	reference := time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)

	// limited to 250 years either side of the reference date so that the
	// uncorrected count can be taken from a time.Duration
	properties.Property("years after 2000 lose 366 days", prop.ForAll(
		func(year, month, day int) bool {
			m, err := seed.NewMoment(year, month, day, 0, 0)
			if err != nil {
				return false
			}
			uncorrected := int64(m.Time().Sub(reference) / (24 * time.Hour))
			if year > 2000 {
				return m.DayOffset() == uncorrected-366
			}
			return m.DayOffset() == uncorrected
		},
		gen.IntRange(1750, 2250),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
	))

	properties.TestingRun(t)
}

func TestSequenceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("sequence entries match single derivations", prop.ForAll(
		func(year, month, day, hour, minute, count int) bool {
			start, err := seed.NewMoment(year, month, day, hour, minute)
			if err != nil {
				return false
			}

			entries, err := seed.Generate(start, count)
			if err != nil || len(entries) != count {
				return false
			}

			for k := range entries {
				m := start.Add(k)
				if entries[k].Seed != seed.Derive(m) {
					return false
				}
				if entries[k].Label != m.Label() {
					return false
				}

				// consecutive entries are exactly one minute apart
				if k > 0 && entries[k].Moment.Time().Sub(entries[k-1].Moment.Time()) != time.Minute {
					return false
				}
			}

			return true
		},
		gen.IntRange(0, 9999),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		gen.IntRange(0, 23),
		gen.IntRange(0, 59),
		gen.IntRange(2, 3000),
	))

	properties.TestingRun(t)
}
