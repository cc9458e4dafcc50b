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

// Package terminal defines the Terminal interface and the interactive form
// that uses it. The form asks for each field of a request in turn, showing
// the previous value as the default, and prints the resulting table of
// seeds. It repeats until the input is exhausted or the user interrupts.
//
// Implementations of the Terminal interface are in the colorterm and
// plainterm sub-packages.
package terminal
