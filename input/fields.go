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
	"strconv"
	"strings"

	"github.com/jetsetilly/rtcseed/curated"
)

// Sentinal patterns for field errors.
const (
	FieldRange    = "%s must be between %d and %d"
	FieldSyntax   = "%s is not a number: %q"
	TooManyFields = "too many fields: %d"
)

// Field identifies one of the input fields.
type Field int

// List of valid Field values.
const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Seeds
	NumFields
)

func (f Field) String() string {
	switch f {
	case Year:
		return "year"
	case Month:
		return "month"
	case Day:
		return "day"
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Seeds:
		return "seeds"
	}
	return "unknown field"
}

// Range is the range and default value of a field.
type Range struct {
	Min     int
	Max     int
	Default int
}

// the ranges of the fields. the maximum for the seeds field can be changed
// by the Policy.
var ranges = [NumFields]Range{
	Year:   {Min: 0, Max: 9999, Default: 2000},
	Month:  {Min: 1, Max: 12, Default: 1},
	Day:    {Min: 1, Max: 31, Default: 1},
	Hour:   {Min: 0, Max: 23, Default: 0},
	Minute: {Min: 0, Max: 59, Default: 0},
	Seeds:  {Min: 1, Max: 1000, Default: 10},
}

// RangeOf returns the Range of the Field.
func RangeOf(f Field) Range {
	return ranges[f]
}

// Fields are the raw values of the input fields. A blank field takes its
// default value.
type Fields [NumFields]string

// FromArgs creates Fields from a list of arguments, in field order. Missing
// arguments are left blank.
func FromArgs(args []string) (Fields, error) {
	var f Fields
	if len(args) > len(f) {
		return f, curated.Errorf(TooManyFields, len(args))
	}
	copy(f[:], args)
	return f, nil
}

// parse a single field and check it against the range.
func parseField(f Field, s string, r Range) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return r.Default, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, curated.Errorf(FieldSyntax, f, s)
	}

	if v < r.Min || v > r.Max {
		return 0, curated.Errorf(FieldRange, f, r.Min, r.Max)
	}

	return v, nil
}
