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

package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/rtcseed/curated"
	"github.com/jetsetilly/rtcseed/input"
	"github.com/jetsetilly/rtcseed/report"
	"github.com/jetsetilly/rtcseed/terminal/ansi"
	"github.com/jetsetilly/rtcseed/test"
)

func newYearTable(t *testing.T) report.Table {
	t.Helper()

	p := input.Policy{Clock: input.BCD}
	req, err := p.Parse(input.Fields{"2000", "12", "31", "23", "59", "3"})
	test.DemandSuccess(t, err)

	tab, err := report.NewTable("", req)
	test.DemandSuccess(t, err)
	return tab
}

func TestPlain(t *testing.T) {
	w := &test.CompareWriter{}
	err := report.Write(w, report.Plain, newYearTable(t))
	test.DemandSuccess(t, err)

	expected := "2000-12-31 23:59 (bcd clock)\n" +
		"Time (HH:MM)  Seed\n" +
		"23:59         1345\n" +
		"00:00         05A0\n" +
		"00:01         05A1\n"
	test.ExpectEquality(t, w.String(), expected)
}

func TestPlainNormalized(t *testing.T) {
	p := input.Policy{NormalizeDay: true}
	req, err := p.Parse(input.Fields{"2021", "2", "30", "0", "0", "2"})
	test.DemandSuccess(t, err)

	tab, err := report.NewTable("new game", req)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	err = report.Write(w, report.Plain, tab, newYearTable(t))
	test.DemandSuccess(t, err)

	lines := strings.Split(w.String(), "\n")
	test.ExpectEquality(t, lines[0], "new game")
	test.ExpectEquality(t, lines[1], "2021-02-28 00:00 (decimal clock)")
	test.ExpectEquality(t, lines[2], "day corrected to 28")

	// tables are separated by a blank line
	test.ExpectEquality(t, lines[6], "")
	test.ExpectEquality(t, lines[7], "2000-12-31 23:59 (bcd clock)")
}

func TestColor(t *testing.T) {
	w := &test.CompareWriter{}
	err := report.Write(w, report.Color, newYearTable(t))
	test.DemandSuccess(t, err)

	lines := strings.Split(w.String(), "\n")
	test.ExpectEquality(t, lines[2], "23:59         1345")
	test.ExpectEquality(t, lines[3], ansi.DimPens["cyan"]+"00:00         05A0"+ansi.NormalPen)
	test.ExpectEquality(t, lines[4], "00:01         05A1")
}

func TestJSON(t *testing.T) {
	var b bytes.Buffer
	err := report.Write(&b, report.JSON, newYearTable(t))
	test.DemandSuccess(t, err)

	var docs []report.Document
	err = json.Unmarshal(b.Bytes(), &docs)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(docs), 1)
	test.ExpectEquality(t, docs[0].Start, "2000-12-31 23:59")
	test.ExpectEquality(t, docs[0].Clock, "bcd")
	test.DemandEquality(t, len(docs[0].Seeds), 3)
	test.ExpectEquality(t, docs[0].Seeds[1], report.Row{Time: "00:00", Seed: "05A0"})
}

func TestYAML(t *testing.T) {
	var b bytes.Buffer
	err := report.Write(&b, report.YAML, newYearTable(t))
	test.DemandSuccess(t, err)

	var docs []report.Document
	err = yaml.Unmarshal(b.Bytes(), &docs)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(docs), 1)
	test.DemandEquality(t, len(docs[0].Seeds), 3)
	test.ExpectEquality(t, docs[0].Seeds[0], report.Row{Time: "23:59", Seed: "1345"})
	test.ExpectEquality(t, docs[0].Seeds[2], report.Row{Time: "00:01", Seed: "05A1"})
}

func TestWriteSeed(t *testing.T) {
	var p input.Policy
	req, err := p.Parse(input.Fields{"1999", "12", "31", "16", "0"})
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	err = report.WriteSeed(w, report.Plain, req)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.String(), "Seed: 03C0\n")

	var b bytes.Buffer
	err = report.WriteSeed(&b, report.JSON, req)
	test.DemandSuccess(t, err)

	var doc report.Document
	err = json.Unmarshal(b.Bytes(), &doc)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, doc.Seed, "03C0")
	test.ExpectEquality(t, len(doc.Seeds), 0)
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat("yaml")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, report.YAML)

	f, err = report.ParseFormat("Colour")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, report.Color)

	_, err = report.ParseFormat("xml")
	test.ExpectSuccess(t, curated.Is(err, report.UnknownFormat))
}
