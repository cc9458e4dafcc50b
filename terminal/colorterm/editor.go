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

package colorterm

import (
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/jetsetilly/rtcseed/curated"
	"github.com/jetsetilly/rtcseed/terminal"
	"github.com/jetsetilly/rtcseed/terminal/ansi"
	"github.com/jetsetilly/rtcseed/terminal/easyterm"
)

// lineEditor reads a single line of input from a terminal in raw mode. The
// default value of the prompt is shown in a dim pen until the user types
// something.
type lineEditor struct {
	r io.RuneReader
	w io.Writer

	// called when the suspend key is pressed. editing continues when the
	// function returns
	suspend func()

	buf    []rune
	cursor int
}

func (ed *lineEditor) redraw(prompt terminal.Prompt) {
	s := strings.Builder{}
	s.WriteString("\r")
	s.WriteString(ansi.ClearLine)
	s.WriteString(ansi.PenStyles["bold"])
	s.WriteString(prompt.Content)
	s.WriteString(": ")
	s.WriteString(ansi.NormalPen)

	if len(ed.buf) == 0 && prompt.Default != "" {
		s.WriteString(ansi.DimPens["white"])
		s.WriteString(prompt.Default)
		s.WriteString(ansi.NormalPen)
		s.WriteString(ansi.CursorMove(-len([]rune(prompt.Default))))
	} else {
		s.WriteString(string(ed.buf))
		s.WriteString(ansi.CursorMove(ed.cursor - len(ed.buf)))
	}

	_, _ = io.WriteString(ed.w, s.String())
}

// read a line for the prompt. the line is returned when the user presses
// return. if nothing has been typed the prompt's default value is returned.
func (ed *lineEditor) read(prompt terminal.Prompt) (string, error) {
	ed.buf = ed.buf[:0]
	ed.cursor = 0

	for {
		ed.redraw(prompt)

		r, _, err := ed.r.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			_, _ = io.WriteString(ed.w, "\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfTransmission:
			// end of input only if the line is empty
			if len(ed.buf) == 0 {
				_, _ = io.WriteString(ed.w, "\r\n")
				return "", io.EOF
			}

		case easyterm.KeySuspend:
			if ed.suspend != nil {
				ed.suspend()
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			_, _ = io.WriteString(ed.w, "\r\n")
			if len(ed.buf) == 0 {
				return prompt.Default, nil
			}
			return string(ed.buf), nil

		case easyterm.KeyTab:
			// the default value becomes editable
			if len(ed.buf) == 0 {
				ed.buf = append(ed.buf, []rune(prompt.Default)...)
				ed.cursor = len(ed.buf)
			}

		case easyterm.KeyUndo:
			ed.buf = ed.buf[:0]
			ed.cursor = 0

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if ed.cursor > 0 {
				ed.buf = slices.Delete(ed.buf, ed.cursor-1, ed.cursor)
				ed.cursor--
			}

		case easyterm.KeyEsc:
			r, _, err := ed.r.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				break // switch
			}

			r, _, err = ed.r.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorForward:
				if ed.cursor < len(ed.buf) {
					ed.cursor++
				}
			case easyterm.CursorBackward:
				if ed.cursor > 0 {
					ed.cursor--
				}
			}

		default:
			if unicode.IsPrint(r) {
				ed.buf = slices.Insert(ed.buf, ed.cursor, r)
				ed.cursor++
			}
		}
	}
}
