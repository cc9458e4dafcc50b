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

import "fmt"

// UserInterrupt is returned by TermRead() if caught whilst waiting for input.
// Not all terminal implementations will return this error because of the
// context in which they operate.
const UserInterrupt = "user interrupt"

// Style is used to indicate the type of information being printed.
type Style int

// List of print styles.
const (
	StyleNormal Style = iota

	// alternate rows of a table
	StyleShaded

	// the header line of a table
	StyleHeader

	// information about the request. for example, when the day has been
	// corrected
	StyleFeedback

	// help text
	StyleHelp

	// errors are printed with StyleError even if the terminal is silenced
	StyleError
)

// Prompt specifies the prompt text and the value that will be used if the
// user enters nothing.
type Prompt struct {
	Content string
	Default string
}

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	if p.Default == "" {
		return fmt.Sprintf("%s: ", p.Content)
	}
	return fmt.Sprintf("%s [%s]: ", p.Content, p.Default)
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the text entered by the user without the trailing
	// newline. If nothing is entered then the Default field of the Prompt is
	// returned.
	//
	// io.EOF is returned when there is no more input.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive() should return true for implementations that require user
	// interaction. Instances that don't expect user intervention should return
	// false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the interactive form.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible. for example,
	// we could use this to make sure the terminal is returned to canonical
	// mode. not all terminal implementations will need to do anything.
	CleanUp()
}
