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
	"fmt"
	"time"

	"github.com/jetsetilly/rtcseed/curated"
)

// InvalidDate is the pattern for errors returned by NewMoment() when the
// fields do not describe a calendar date and time of day.
const InvalidDate = "invalid date: %s"

// the date from which the day count is measured.
var reference = time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)

// number of days removed from the day count for years after 2000.
const leapCorrection = 366

// years after this year are subject to the leap correction.
const leapCorrectionYear = 2000

const (
	minutesPerDay  = 24 * 60
	secondsPerDay  = minutesPerDay * 60
	minutesPerHour = 60
)

// Moment is a date in the proleptic Gregorian calendar and a time of day with
// minute precision. Moment values are immutable.
//
// The zero value is not a valid Moment. Use NewMoment() to create one.
type Moment struct {
	t time.Time
}

// NewMoment is the preferred method of initialisation for the Moment type.
// Returns an InvalidDate error if the fields do not describe a real date and
// time of day. The day is never adjusted to fit the month.
func NewMoment(year, month, day, hour, minute int) (Moment, error) {
	if year < 0 {
		return Moment{}, curated.Errorf(InvalidDate, fmt.Sprintf("year %d is negative", year))
	}
	if month < 1 || month > 12 {
		return Moment{}, curated.Errorf(InvalidDate, fmt.Sprintf("month %d is out of range", month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Moment{}, curated.Errorf(InvalidDate, fmt.Sprintf("day %d is out of range for %04d-%02d", day, year, month))
	}
	if hour < 0 || hour > 23 {
		return Moment{}, curated.Errorf(InvalidDate, fmt.Sprintf("hour %d is out of range", hour))
	}
	if minute < 0 || minute > 59 {
		return Moment{}, curated.Errorf(InvalidDate, fmt.Sprintf("minute %d is out of range", minute))
	}

	return Moment{
		t: time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC),
	}, nil
}

// DaysInMonth returns the number of days in the month of the year. The month
// must be in the range 1 to 12.
func DaysInMonth(year, month int) int {
	// day zero of the following month is the last day of this month
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (m Moment) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %s", m.Year(), m.Month(), m.Day(), m.Label())
}

// Label returns the time of day in the form HH:MM.
func (m Moment) Label() string {
	return fmt.Sprintf("%02d:%02d", m.Hour(), m.Minute())
}

func (m Moment) Year() int {
	return m.t.Year()
}

func (m Moment) Month() int {
	return int(m.t.Month())
}

func (m Moment) Day() int {
	return m.t.Day()
}

func (m Moment) Hour() int {
	return m.t.Hour()
}

func (m Moment) Minute() int {
	return m.t.Minute()
}

// Time returns the Moment as a time.Time in the UTC location.
func (m Moment) Time() time.Time {
	return m.t
}

// Add returns a new Moment that is the given number of minutes after (or
// before, for a negative number) the receiver. Minutes carry into the hour,
// day, month and year.
func (m Moment) Add(minutes int) Moment {
	// time.Duration is limited to about 290 years so whole days are added
	// separately
	days := minutes / minutesPerDay
	minutes %= minutesPerDay
	return Moment{
		t: m.t.AddDate(0, 0, days).Add(time.Duration(minutes) * time.Minute),
	}
}

// DayOffset returns the number of whole days between the reference date and
// the date of the Moment, with the leap correction applied for years after
// 2000. The time of day does not contribute.
//
// The result is negative for dates before the reference date.
func (m Moment) DayOffset() int64 {
	date := time.Date(m.t.Year(), m.t.Month(), m.t.Day(), 0, 0, 0, 0, time.UTC)
	days := (date.Unix() - reference.Unix()) / secondsPerDay
	if m.t.Year() > leapCorrectionYear {
		days -= leapCorrection
	}
	return days
}
