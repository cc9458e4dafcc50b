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

// Package prefs facilitates the storing of preference values on disk. A
// preference value is one of the types Bool, Int, String or Generic. Values
// are grouped by adding them to a Disk instance.
//
//	var count prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("seeds.count", &count)
//	_ = dsk.Load(true)
//
// The preferences file is a list of key/value pairs, one per line and sorted
// by key. The key and the value are separated by " :: ".
//
// Preference values can also be specified on the command line with
// PushCommandLineStack(). The prefs string is a list of key/value pairs
// separated by a semi-colon, with the key and value separated by a double
// colon. For example:
//
//	seeds.count::20; input.bcd::true
//
// A command line value takes priority over the value on disk the next time
// Disk.Load() is called. It is used only once.
package prefs
