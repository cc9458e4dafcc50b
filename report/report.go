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

// Package report renders seeds for the user. Tables of seeds can be written
// as plain text, as text with ANSI colours, as JSON or as YAML.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/rtcseed/curated"
	"github.com/jetsetilly/rtcseed/input"
	"github.com/jetsetilly/rtcseed/seed"
	"github.com/jetsetilly/rtcseed/terminal/ansi"
)

// UnknownFormat is the pattern for errors returned by ParseFormat().
const UnknownFormat = "unknown report format: %s"

// Format of the report.
type Format int

// List of valid Format values.
const (
	Plain Format = iota
	Color
	JSON
	YAML
)

func (f Format) String() string {
	switch f {
	case Plain:
		return "PLAIN"
	case Color:
		return "COLOR"
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	}
	return "UNKNOWN"
}

// ParseFormat converts the string to a Format value. Not case sensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PLAIN":
		return Plain, nil
	case "COLOR", "COLOUR":
		return Color, nil
	case "JSON":
		return JSON, nil
	case "YAML":
		return YAML, nil
	}
	return Plain, curated.Errorf(UnknownFormat, s)
}

// Table is a sequence of seeds and the request that produced them.
type Table struct {
	// optional name of the table
	Name string

	Request input.Request
	Entries []seed.Entry
}

// NewTable generates the seeds for the request.
func NewTable(name string, req input.Request) (Table, error) {
	entries, err := req.Generate()
	if err != nil {
		return Table{}, err
	}
	return Table{
		Name:    name,
		Request: req,
		Entries: entries,
	}, nil
}

// column heading.
const (
	headingTime = "Time (HH:MM)"
	headingSeed = "Seed"
)

// Heading returns the column headings of a text table.
func Heading() string {
	return fmt.Sprintf("%-12s  %s", headingTime, headingSeed)
}

// Line returns the row of a text table for the entry.
func Line(e seed.Entry) string {
	return fmt.Sprintf("%-12s  %s", e.Label, e.Seed)
}

// Write the tables to the io.Writer in the specified format.
func Write(w io.Writer, f Format, tables ...Table) error {
	switch f {
	case Plain:
		return writeText(w, tables, false)
	case Color:
		return writeText(w, tables, true)
	case JSON:
		return writeJSON(w, documents(tables))
	case YAML:
		return writeYAML(w, documents(tables))
	}
	return curated.Errorf(UnknownFormat, f)
}

// WriteSeed writes the single seed for the start of the request.
func WriteSeed(w io.Writer, f Format, req input.Request) error {
	s := req.Seed()

	switch f {
	case Plain:
		_, err := io.WriteString(w, fmt.Sprintf("Seed: %s\n", s))
		return err
	case Color:
		_, err := io.WriteString(w, fmt.Sprintf("Seed: %s%s%s\n", ansi.PenStyles["bold"], s, ansi.NormalPen))
		return err
	case JSON:
		d := describe("", req)
		d.Seed = s.String()
		return writeJSON(w, d)
	case YAML:
		d := describe("", req)
		d.Seed = s.String()
		return writeYAML(w, d)
	}

	return curated.Errorf(UnknownFormat, f)
}

func writeText(w io.Writer, tables []Table, color bool) error {
	pen := func(p string) string {
		if color {
			return p
		}
		return ""
	}

	var s strings.Builder
	for i, t := range tables {
		if i > 0 {
			s.WriteString("\n")
		}

		if t.Name != "" {
			s.WriteString(fmt.Sprintf("%s%s%s\n", pen(ansi.PenStyles["bold"]), t.Name, pen(ansi.NormalPen)))
		}

		s.WriteString(fmt.Sprintf("%s (%s clock)\n", t.Request.Start, t.Request.Clock))
		if t.Request.Normalized {
			s.WriteString(fmt.Sprintf("%sday corrected to %d%s\n", pen(ansi.Pens["yellow"]), t.Request.Start.Day(), pen(ansi.NormalPen)))
		}

		s.WriteString(fmt.Sprintf("%s%s%s\n", pen(ansi.PenStyles["underline"]), Heading(), pen(ansi.NormalPen)))

		for j, e := range t.Entries {
			// alternate rows are shaded
			if j%2 == 1 {
				s.WriteString(fmt.Sprintf("%s%s%s\n", pen(ansi.DimPens["cyan"]), Line(e), pen(ansi.NormalPen)))
			} else {
				s.WriteString(fmt.Sprintf("%s\n", Line(e)))
			}
		}
	}

	_, err := io.WriteString(w, s.String())
	return err
}
