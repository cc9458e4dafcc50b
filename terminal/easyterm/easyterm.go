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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides some features not present in the third-party package, such as
// terminal geometry, and wraps termios methods in functions with friendlier
// names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/rtcseed/curated"
)

// TerminalError is the pattern for errors from the Terminal type.
const TerminalError = "easyterm: %v"

// TermGeometry contains the dimensions of a terminal (usually the output
// terminal).
type TermGeometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated by the signal handler
	mu       sync.Mutex
	geometry TermGeometry
}

// Initialise the fields in the Terminal struct.
func (et *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf(TerminalError, "requires an input file")
	}
	if outputFile == nil {
		return curated.Errorf(TerminalError, "requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	// prepare the attributes for the different terminal modes we'll be
	// using. the raw and cbreak attributes are derived from the canonical
	// attributes
	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)
	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)

	_ = et.UpdateGeometry()

	et.terminateHandlerSig = make(chan bool)
	et.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, unix.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp returns the terminal to canonical mode and stops the signal
// handler created in the Initialise() function.
func (et *Terminal) CleanUp() {
	if et.input == nil {
		return
	}
	et.CanonicalMode()
	if et.terminateHandlerSig != nil {
		et.terminateHandlerSig <- true
		<-et.terminateHandlerAck
		et.terminateHandlerSig = nil
	}
}

// TermPrint writes the string to the output file.
func (et *Terminal) TermPrint(s string) {
	_, _ = et.output.WriteString(s)
}

// Geometry returns the most recent dimensions of the output terminal.
func (et *Terminal) Geometry() TermGeometry {
	et.mu.Lock()
	defer et.mu.Unlock()
	return et.geometry
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (et *Terminal) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf(TerminalError, fmt.Sprintf("geometry: %v", err))
	}

	et.mu.Lock()
	defer et.mu.Unlock()
	et.geometry.Rows = int(ws.Row)
	et.geometry.Cols = int(ws.Col)

	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSAFLUSH, &et.canAttr)
}

// RawMode puts terminal into raw mode.
func (et *Terminal) RawMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSAFLUSH, &et.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (et *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSAFLUSH, &et.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *Terminal) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
