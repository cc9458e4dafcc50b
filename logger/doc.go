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

// Package logger is the central log for rtcseed. Log entries are kept in
// memory, up to a maximum number of entries, and can be written to any
// io.Writer on request with Write() or Tail(). Entries can also be echoed to
// an io.Writer as they are logged, see SetEcho().
//
// Every entry has a tag and a detail. The tag is usually the name of the
// package making the entry. A repeated entry (same tag and detail as the
// previous entry) is folded into the previous entry and a repeat count is
// shown instead.
//
// Logging is gated by a Permission. Use Allow for entries that should always
// be logged.
package logger
