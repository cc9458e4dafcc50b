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

// Package input adapts raw user input for the seed package.
//
// Fields are the strings typed by the user, one for each of year, month,
// day, hour, minute and the number of seeds. A Policy turns Fields into a
// Request. Blank fields take their default value and every field is checked
// against its range before the date is formed.
//
// The Policy decides two things that the seed package does not:
//
// Whether a day that is too large for the month is clamped to the last day
// of the month (NormalizeDay) or causes an error.
//
// How the clock reports the time of day (Clock). The Decimal clock uses the
// hour and minute as they are. The BCD clock reports each as two binary coded
// decimal digits and so the formula sees the digits read as hexadecimal:
// 15:45 is seen as 0x15 and 0x45, or 21 and 69. The BCD reading is taken
// for every minute of a sequence, after the minute has rolled over.
package input
