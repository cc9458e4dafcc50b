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
	"strings"

	"github.com/jetsetilly/rtcseed/curated"
	"github.com/jetsetilly/rtcseed/seed"
)

// UnknownClock is the pattern for errors returned by ParseClock().
const UnknownClock = "unknown clock: %s"

// Clock describes how the real-time clock reports the time of day.
type Clock int

// List of valid Clock values.
const (
	Decimal Clock = iota
	BCD
)

func (c Clock) String() string {
	switch c {
	case Decimal:
		return "decimal"
	case BCD:
		return "bcd"
	}
	return "unknown"
}

// ParseClock converts the string to a Clock value. Not case sensitive.
func ParseClock(s string) (Clock, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "decimal", "dec":
		return Decimal, nil
	case "bcd", "hex":
		return BCD, nil
	}
	return Decimal, curated.Errorf(UnknownClock, s)
}

// Deriver returns the seed.Deriver for the Clock.
func (c Clock) Deriver() seed.Deriver {
	if c == BCD {
		return DeriveBCD
	}
	return seed.Derive
}

// DeriveBCD returns the seed for the Moment for a clock that reports the
// time of day as binary coded decimal.
func DeriveBCD(m seed.Moment) seed.Seed {
	return seed.Fold(seed.TotalMinutes(m.DayOffset(), toBCD(m.Hour()), toBCD(m.Minute())))
}

// toBCD encodes a two digit decimal value as binary coded decimal.
func toBCD(v int) int64 {
	return int64((v/10)<<4 | v%10)
}
