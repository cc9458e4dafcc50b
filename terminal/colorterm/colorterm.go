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

// Package colorterm implements the Terminal interface for the interactive
// form. It uses ANSI pens to style the output and reads input with a simple
// line editor.
package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/rtcseed/logger"
	"github.com/jetsetilly/rtcseed/terminal"
	"github.com/jetsetilly/rtcseed/terminal/ansi"
	"github.com/jetsetilly/rtcseed/terminal/easyterm"
)

// ColorTerminal implements the terminal.Terminal interface for posix
// terminals that understand ANSI escape sequences.
type ColorTerminal struct {
	easyterm.Terminal

	editor lineEditor
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.Terminal.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.editor = lineEditor{
		r: bufio.NewReader(os.Stdin),
		w: os.Stdout,
		suspend: func() {
			ct.CanonicalMode()
			if err := easyterm.SuspendProcess(); err != nil {
				logger.Logf(logger.Allow, "terminal", "suspend: %v", err)
			}
			ct.RawMode()
		},
	}

	g := ct.Geometry()
	logger.Logf(logger.Allow, "terminal", "color terminal (%dx%d)", g.Cols, g.Rows)

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()
	return ct.editor.read(prompt)
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	ct.TermPrint(styledLine(style, s))
}

func styledLine(style terminal.Style, s string) string {
	var pen string

	switch style {
	case terminal.StyleShaded:
		pen = ansi.DimPens["cyan"]
	case terminal.StyleHeader:
		pen = ansi.PenStyles["underline"]
	case terminal.StyleFeedback:
		pen = ansi.Pens["yellow"]
	case terminal.StyleHelp:
		pen = ansi.DimPens["white"]
	case terminal.StyleError:
		pen = ansi.Pens["red"]
		s = "* " + s
	}

	if pen == "" {
		return s + "\n"
	}
	return pen + s + ansi.NormalPen + "\n"
}
