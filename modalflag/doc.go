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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("TABLE", "SEED", "BATCH")
//	p, err := md.Parse()
//
// Parse() processes flags in the normal way but then checks to see if the
// first argument after the flags is one of the sub-modes. If it is then
// Mode() returns that sub-mode, otherwise the first sub-mode in the list is
// the mode. Sub-mode comparisons are case insensitive.
//
// Once the mode is known, NewMode() prepares for the next layer of flags.
// Arguments are taken up from where the previous Parse() left off:
//
//	switch md.Mode() {
//	case "TABLE":
//		md.NewMode()
//		bcd := md.AddBool("bcd", false, "clock reports time in BCD")
//		p, err := md.Parse()
//		...
//		fields := md.RemainingArgs()
//	}
//
// The ParseResult returned by Parse() should be checked. ParseHelp means that
// help has already been printed to Output and the program should do nothing
// more. ParseError is accompanied by an error.
//
// Modes can be chained together as deep as required. The Path() function
// returns every mode encountered so far.
package modalflag
