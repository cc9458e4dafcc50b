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

// Package ansi defines the ANSI escape sequences used by the colour terminal
// and by the colour report format.
package ansi

import (
	"fmt"
	"strings"
)

// colour codes.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// target of the colour code.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// text attributes.
const (
	attrBold      = 1
	attrDim       = 2
	attrUnderline = 4
	attrInverse   = 7
)

// Pens is the list of bright pens, indexed by colour name.
var Pens map[string]string

// DimPens is the list of normal pens, indexed by colour name.
var DimPens map[string]string

// PenStyles is the list of text attributes, indexed by attribute name.
var PenStyles map[string]string

// NormalPen resets pen, paper and attributes.
var NormalPen string

var colours = []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen = mustBuild("", "", "", false, false)

	for _, c := range colours {
		Pens[c] = mustBuild(c, "", "", true, false)
		DimPens[c] = mustBuild(c, "", "", false, false)
	}

	for _, a := range []string{"bold", "dim", "underline", "inverse"} {
		PenStyles[a] = mustBuild("", "", a, false, false)
	}
}

// the arguments to ColorBuild() in init() are known to be good
func mustBuild(pen, paper, attribute string, brightPen, brightPaper bool) string {
	s, err := ColorBuild(pen, paper, attribute, brightPen, brightPaper)
	if err != nil {
		panic(err)
	}
	return s
}

func colourCode(col string) (int, error) {
	switch strings.ToUpper(col) {
	case "BLACK":
		return colBlack, nil
	case "RED":
		return colRed, nil
	case "GREEN":
		return colGreen, nil
	case "YELLOW":
		return colYellow, nil
	case "BLUE":
		return colBlue, nil
	case "MAGENTA":
		return colMagenta, nil
	case "CYAN":
		return colCyan, nil
	case "WHITE":
		return colWhite, nil
	case "NORMAL":
		return colDefault, nil
	}
	return 0, fmt.Errorf("unknown ANSI colour (%s)", col)
}

// ColorBuild creates the ANSI sequence for a pen, paper and attribute
// combination. Empty strings leave that part of the sequence out.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	parts := make([]string, 0, 3)

	if pen == "" && paper == "" && attribute == "" {
		parts = append(parts, "0")
	}

	if pen != "" {
		c, err := colourCode(pen)
		if err != nil {
			return "", err
		}
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		parts = append(parts, fmt.Sprintf("%d%d", target, c))
	}

	if paper != "" {
		c, err := colourCode(paper)
		if err != nil {
			return "", err
		}
		target := targetPaper
		if brightPaper {
			target = targetBrightPaper
		}
		parts = append(parts, fmt.Sprintf("%d%d", target, c))
	}

	if attribute != "" {
		switch strings.ToUpper(attribute) {
		case "BOLD":
			parts = append(parts, fmt.Sprintf("%d", attrBold))
		case "DIM":
			parts = append(parts, fmt.Sprintf("%d", attrDim))
		case "UNDERLINE":
			parts = append(parts, fmt.Sprintf("%d", attrUnderline))
		case "INVERSE":
			parts = append(parts, fmt.Sprintf("%d", attrInverse))
		default:
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
	}

	return fmt.Sprintf("\033[%sm", strings.Join(parts, ";")), nil
}

// ClearLine clears the current line.
const ClearLine = "\033[2K"

// CursorBackwardOne moves the cursor one column to the left.
const CursorBackwardOne = "\033[1D"

// CursorMove returns the sequence to move the cursor n columns. Negative
// values move the cursor to the left.
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
