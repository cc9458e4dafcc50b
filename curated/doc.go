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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. The pattern string
// given to Errorf() identifies the kind of error. Packages that want callers
// to be able to test for a specific kind of error export the pattern as a
// const string. For example, the seed package exports:
//
//	const InvalidDate = "invalid date: %s"
//
// and a caller can check for that kind with the Is() function:
//
//	_, err := seed.NewMoment(2021, 2, 30, 0, 0)
//	if curated.Is(err, seed.InvalidDate) {
//		fmt.Println("not a real date")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. The chain is built by passing an error as one of the
// values of a new curated error:
//
//	e := curated.Errorf("table: %v", err)
//	curated.Has(e, seed.InvalidDate) // true
//	curated.Is(e, seed.InvalidDate)  // false
//
// The Error() function normalises the chain. Adjacent parts of the message
// that are identical are reduced to a single part. Parts are the substrings
// separated by ': ', so that
//
//	curated.Errorf("batch: %v", curated.Errorf("batch: %v", err))
//
// prints as "batch: ..." and not as "batch: batch: ...". This means that a
// function can always wrap an error with its own context without worrying
// whether the callee already did so.
package curated
