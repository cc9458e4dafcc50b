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

package terminal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/rtcseed/curated"
	"github.com/jetsetilly/rtcseed/input"
	"github.com/jetsetilly/rtcseed/logger"
	"github.com/jetsetilly/rtcseed/report"
)

// Form asks the user for the fields of a request and prints the table of
// seeds. The value entered for a field is the default the next time the
// field is asked for.
type Form struct {
	Policy input.Policy

	values input.Fields
}

// NewForm is the preferred method of initialisation for the Form type. The
// count argument is the initial value of the seeds field. A value less than
// one means the default number of seeds.
func NewForm(p input.Policy, count int) *Form {
	frm := &Form{Policy: p}
	for i := input.Year; i < input.NumFields; i++ {
		frm.values[i] = strconv.Itoa(input.RangeOf(i).Default)
	}
	if count > 0 {
		frm.values[input.Seeds] = strconv.Itoa(count)
	}
	return frm
}

// Values returns the current value of every field.
func (frm *Form) Values() input.Fields {
	return frm.values
}

// Run the form until the input is exhausted or the user interrupts. Neither
// of those conditions is returned as an error.
func (frm *Form) Run(term Terminal) error {
	term.TermPrintLine(StyleHelp, "press return to accept the value in brackets")

	for {
		err := frm.Step(term)
		if err != nil {
			if errors.Is(err, io.EOF) || curated.Is(err, UserInterrupt) {
				logger.Log(logger.Allow, "terminal", "form ended")
				return nil
			}
			return err
		}
	}
}

// Step asks for every field once and prints the result. Errors in the fields
// are printed to the terminal and not returned. The only errors returned are
// from the terminal itself.
func (frm *Form) Step(term Terminal) error {
	var f input.Fields

	for i := input.Year; i < input.NumFields; i++ {
		s, err := term.TermRead(Prompt{Content: i.String(), Default: frm.values[i]})
		if err != nil {
			return err
		}

		s = strings.TrimSpace(s)
		if s == "" {
			s = frm.values[i]
		}
		f[i] = s
	}

	// fields are remembered even if they are in error so that the user can
	// correct the mistake
	frm.values = f

	req, err := frm.Policy.Parse(f)
	if err != nil {
		term.TermPrintLine(StyleError, err.Error())
		return nil
	}

	if req.Normalized {
		frm.values[input.Day] = strconv.Itoa(req.Start.Day())
	}

	tab, err := report.NewTable("", req)
	if err != nil {
		term.TermPrintLine(StyleError, err.Error())
		return nil
	}

	logger.Logf(logger.Allow, "terminal", "%d seeds from %s", len(tab.Entries), req.Start)

	frm.print(term, tab)

	return nil
}

func (frm *Form) print(term Terminal, tab report.Table) {
	term.TermPrintLine(StyleFeedback, fmt.Sprintf("%s (%s clock)", tab.Request.Start, tab.Request.Clock))
	if tab.Request.Normalized {
		term.TermPrintLine(StyleFeedback, fmt.Sprintf("day corrected to %d", tab.Request.Start.Day()))
	}

	term.TermPrintLine(StyleHeader, report.Heading())
	for i, e := range tab.Entries {
		if i%2 == 1 {
			term.TermPrintLine(StyleShaded, report.Line(e))
		} else {
			term.TermPrintLine(StyleNormal, report.Line(e))
		}
	}
}
