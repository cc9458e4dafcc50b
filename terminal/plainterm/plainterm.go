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

// Package plainterm implements the Terminal interface for the interactive
// form. It's as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jetsetilly/rtcseed/terminal"
)

// PlainTerminal is the most basic terminal interface. It keeps the terminal in
// whatever mode it started, probably cooked mode. As such, it offers only
// rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input  *bufio.Reader
	output io.Writer

	// the prompt is only printed if the input is a real terminal
	realInput bool
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. If either argument is nil then the standard input or
// output is used as appropriate.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}

	pt := &PlainTerminal{
		input:  bufio.NewReader(input),
		output: output,
	}

	if f, ok := input.(*os.File); ok {
		pt.realInput = term.IsTerminal(int(f.Fd()))
	}

	return pt
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	// help is of no use if nobody is there to read it
	if style == terminal.StyleHelp && !pt.realInput {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	_, _ = io.WriteString(pt.output, s)
	_, _ = io.WriteString(pt.output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if pt.realInput {
		_, _ = io.WriteString(pt.output, prompt.String())
	}

	s, err := pt.input.ReadString('\n')
	if err != nil {
		// a final line without a newline is still a line
		if !errors.Is(err, io.EOF) || s == "" {
			return "", err
		}
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return prompt.Default, nil
	}

	return s, nil
}
