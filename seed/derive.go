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

import "fmt"

// Seed is the 16-bit value derived from a Moment.
type Seed uint16

// String returns the seed as four uppercase hexadecimal digits.
func (s Seed) String() string {
	return fmt.Sprintf("%04X", uint16(s))
}

// Deriver is the type of function that produces a Seed for a Moment. Derive()
// is the Deriver for clocks that report the time of day in decimal.
type Deriver func(Moment) Seed

// TotalMinutes combines a day count with an hour and minute value. There is
// no range checking of any of the values and the result may be negative.
func TotalMinutes(days, hour, minute int64) int64 {
	return days*minutesPerDay + hour*minutesPerHour + minute
}

// Fold reduces the minute count to 16 bits by XORing the bits above bit 15
// with the low 16 bits. The shift is arithmetic, so negative counts fold with
// their two's complement bit pattern.
func Fold(total int64) Seed {
	return Seed((total >> 16) ^ (total & 0xffff))
}

// Derive returns the seed for the Moment.
func Derive(m Moment) Seed {
	return Fold(TotalMinutes(m.DayOffset(), int64(m.Hour()), int64(m.Minute())))
}

// DeriveFields is the same as Derive() except that the Moment is created from
// the fields first. Returns an InvalidDate error if the fields do not form a
// Moment.
func DeriveFields(year, month, day, hour, minute int) (Seed, error) {
	m, err := NewMoment(year, month, day, hour, minute)
	if err != nil {
		return 0, err
	}
	return Derive(m), nil
}
