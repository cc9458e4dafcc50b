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
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/rtcseed/curated"
	"github.com/jetsetilly/rtcseed/terminal"
	"github.com/jetsetilly/rtcseed/terminal/ansi"
	"github.com/jetsetilly/rtcseed/test"
)

func editLine(t *testing.T, in string, prompt terminal.Prompt) (string, error) {
	t.Helper()
	ed := lineEditor{
		r: strings.NewReader(in),
		w: &test.CompareWriter{},
	}
	return ed.read(prompt)
}

func TestEditor(t *testing.T) {
	prompt := terminal.Prompt{Content: "year", Default: "2000"}

	s, err := editLine(t, "2004\r", prompt)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "2004")

	// return on an empty line accepts the default
	s, err = editLine(t, "\r", prompt)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "2000")

	// tab makes the default editable
	s, err = editLine(t, "\t\x7f1\r", prompt)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "2001")

	// backspace
	s, err = editLine(t, "12\x083\n", prompt)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "13")

	// cursor keys
	s, err = editLine(t, "ac\x1b[Db\x1b[C\x1b[Cd\r", prompt)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "abcd")

	// undo clears the line
	s, err = editLine(t, "1999\x15\r", prompt)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "2000")

	// non-printable characters are ignored
	s, err = editLine(t, "1\x012\r", prompt)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "12")
}

func TestEditorEndings(t *testing.T) {
	prompt := terminal.Prompt{Content: "day", Default: "1"}

	_, err := editLine(t, "12\x03", prompt)
	test.ExpectSuccess(t, curated.Is(err, terminal.UserInterrupt))

	_, err = editLine(t, "\x04", prompt)
	test.ExpectSuccess(t, errors.Is(err, io.EOF))

	// end-of-transmission is ignored if the line is not empty
	s, err := editLine(t, "3\x04\r", prompt)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "3")

	// input ends before return
	_, err = editLine(t, "3", prompt)
	test.ExpectSuccess(t, errors.Is(err, io.EOF))
}

func TestEditorSuspend(t *testing.T) {
	var suspended int
	ed := lineEditor{
		r:       strings.NewReader("1\x1a2\r"),
		w:       &test.CompareWriter{},
		suspend: func() { suspended++ },
	}

	s, err := ed.read(terminal.Prompt{Content: "minute"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "12")
	test.ExpectEquality(t, suspended, 1)
}

func TestEditorRedraw(t *testing.T) {
	w := &test.CompareWriter{}
	ed := lineEditor{
		r: strings.NewReader("\r"),
		w: w,
	}

	_, err := ed.read(terminal.Prompt{Content: "hour", Default: "12"})
	test.ExpectSuccess(t, err)

	// the default is drawn in a dim pen and the cursor placed at the start
	// of it
	expected := "\r" + ansi.ClearLine + ansi.PenStyles["bold"] + "hour: " + ansi.NormalPen +
		ansi.DimPens["white"] + "12" + ansi.NormalPen + ansi.CursorMove(-2) + "\r\n"
	test.ExpectEquality(t, w.String(), expected)
}

func TestStyledLine(t *testing.T) {
	test.ExpectEquality(t, styledLine(terminal.StyleNormal, "00:00         0000"), "00:00         0000\n")
	test.ExpectEquality(t, styledLine(terminal.StyleError, "bad"), ansi.Pens["red"]+"* bad"+ansi.NormalPen+"\n")
	test.ExpectEquality(t, styledLine(terminal.StyleShaded, "x"), ansi.DimPens["cyan"]+"x"+ansi.NormalPen+"\n")
}
