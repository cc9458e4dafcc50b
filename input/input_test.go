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

package input_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/rtcseed/curated"
	"github.com/jetsetilly/rtcseed/input"
	"github.com/jetsetilly/rtcseed/seed"
	"github.com/jetsetilly/rtcseed/test"
)

func TestDefaults(t *testing.T) {
	var p input.Policy
	req, err := p.Parse(input.Fields{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, req.Start.String(), "2000-01-01 00:00")
	test.ExpectEquality(t, req.Count, 10)
	test.ExpectEquality(t, req.Clock, input.Decimal)
	test.ExpectFailure(t, req.Normalized)
}

func TestFromArgs(t *testing.T) {
	f, err := input.FromArgs([]string{"2021", "2", "28"})
	test.DemandSuccess(t, err)

	var p input.Policy
	req, err := p.Parse(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, req.Start.String(), "2021-02-28 00:00")

	_, err = input.FromArgs([]string{"1", "2", "3", "4", "5", "6", "7"})
	test.ExpectSuccess(t, curated.Is(err, input.TooManyFields))
}

func TestFieldErrors(t *testing.T) {
	var p input.Policy

	_, err := p.Parse(input.Fields{input.Month: "13"})
	test.ExpectSuccess(t, curated.Is(err, input.FieldRange))
	test.ExpectEquality(t, err.Error(), "month must be between 1 and 12")

	_, err = p.Parse(input.Fields{input.Hour: "twelve"})
	test.ExpectSuccess(t, curated.Is(err, input.FieldSyntax))

	_, err = p.Parse(input.Fields{input.Year: "10000"})
	test.ExpectSuccess(t, curated.Is(err, input.FieldRange))

	_, err = p.Parse(input.Fields{input.Minute: "60"})
	test.ExpectSuccess(t, curated.Is(err, input.FieldRange))

	_, err = p.Parse(input.Fields{input.Seeds: "0"})
	test.ExpectSuccess(t, curated.Is(err, input.FieldRange))

	_, err = p.Parse(input.Fields{input.Seeds: "1001"})
	test.ExpectSuccess(t, curated.Is(err, input.FieldRange))

	// the maximum number of seeds is a policy decision
	p.MaxSeeds = 5000
	req, err := p.Parse(input.Fields{input.Seeds: "1001"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, req.Count, 1001)

	// surrounding space is allowed
	req, err = p.Parse(input.Fields{input.Year: " 2004 "})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, req.Start.Year(), 2004)
}

func TestNormalizeDay(t *testing.T) {
	f := input.Fields{"2021", "2", "30", "0", "0", ""}

	strict := input.Policy{}
	_, err := strict.Parse(f)
	test.ExpectSuccess(t, curated.Is(err, seed.InvalidDate))

	normalizing := input.Policy{NormalizeDay: true}
	req, err := normalizing.Parse(f)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, req.Normalized)
	test.ExpectEquality(t, req.Start.String(), "2021-02-28 00:00")

	// the normalised request has the same seed as the corrected date
	s, err := seed.DeriveFields(2021, 2, 28, 0, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, req.Seed(), s)

	// leap years clamp to the 29th
	req, err = normalizing.Parse(input.Fields{"2024", "2", "31"})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, req.Start.Day(), 29)

	// a valid day is not normalised
	req, err = normalizing.Parse(input.Fields{"2024", "2", "29"})
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, req.Normalized)
}

func TestBCDVectors(t *testing.T) {
	vectors := []struct {
		fields input.Fields
		seed   string
	}{
		{input.Fields{"1999", "12", "31", "0", "0"}, "0000"},
		{input.Fields{"1999", "12", "31", "16", "0"}, "0528"},
		{input.Fields{"2000", "12", "31", "23", "59"}, "1345"},
		{input.Fields{"2005", "6", "15", "15", "45"}, "C532"},
		{input.Fields{"2021", "2", "28", "23", "59"}, "D7AC"},
		{input.Fields{"2024", "5", "1", "12", "30"}, "4413"},
		{input.Fields{"9999", "12", "31", "23", "59"}, "3C8F"},
	}

	p := input.Policy{Clock: input.BCD}
	for _, v := range vectors {
		req, err := p.Parse(v.fields)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, req.Seed().String(), v.seed, req.Start)
	}
}

func TestBCDReadingOfSingleDigits(t *testing.T) {
	// times of day where every digit is below ten read the same in both
	// clocks
	for h := 0; h < 10; h++ {
		for m := 0; m < 10; m++ {
			start, err := seed.NewMoment(2004, 7, 4, h, m)
			test.DemandSuccess(t, err)
			test.ExpectEquality(t, input.DeriveBCD(start), seed.Derive(start), fmt.Sprintf("%02d:%02d", h, m))
		}
	}
}

func TestBCDSequence(t *testing.T) {
	p := input.Policy{Clock: input.BCD}
	req, err := p.Parse(input.Fields{"2000", "12", "31", "23", "58", "4"})
	test.DemandSuccess(t, err)

	entries, err := req.Generate()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 4)

	expected := []string{"1344", "1345", "05A0", "05A1"}
	for i := range expected {
		test.ExpectEquality(t, entries[i].Seed.String(), expected[i], entries[i].Label)
	}
}

func TestParseClock(t *testing.T) {
	c, err := input.ParseClock("BCD")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, input.BCD)

	c, err = input.ParseClock(" decimal ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, input.Decimal)

	_, err = input.ParseClock("octal")
	test.ExpectSuccess(t, curated.Is(err, input.UnknownClock))
}
