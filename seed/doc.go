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

// Package seed predicts the 16-bit seed that a handheld game derives from its
// battery backed real-time clock.
//
// The seed is a function of the calendar date and the time of day. The date
// is converted to a number of days since the reference date of 31st December
// 1999, the time of day is added as a number of minutes, and the resulting
// minute count is folded into 16 bits:
//
//	total = days*1440 + hour*60 + minute
//	seed = (total >> 16) ^ (total & 0xffff)
//
// When the year of the date is after 2000 a further 366 days are removed
// from the day count. The correction is applied for every year after 2000
// and not only for the years in which it is correct for the hardware. It
// must not be generalised because every seed after 2000 depends on it.
//
// Derive() computes the seed for a single Moment. Generate() computes the
// seeds for a run of consecutive minutes. Both functions are pure and can be
// called from any number of goroutines.
//
// The hour and minute used by Derive() are the decimal values of the
// Moment. Clocks that report the time of day differently can still use the
// formula through the TotalMinutes() and Fold() functions and GenerateWith().
package seed
