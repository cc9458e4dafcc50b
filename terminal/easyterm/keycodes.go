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

package easyterm

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyInterrupt         = 3 // end-of-text character
	KeyEndOfTransmission = 4
	KeyBackspace         = 8
	KeyTab               = 9
	KeyLineFeed          = 10
	KeyCarriageReturn    = 13
	KeyUndo              = 21 // negative acknowledge. clears the line
	KeySuspend           = 26 // substitute character
	KeyEsc               = 27
	KeyDelete            = 127
)

// list of ASCII code for characters that can follow KeyEsc.
const (
	EscCursor = '['
)

// list of ASCII code for characters that can follow EscCursor.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)
