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

package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/rtcseed/input"
)

// Row is a single seed in the JSON and YAML formats.
type Row struct {
	Time string `json:"time" yaml:"time"`
	Seed string `json:"seed" yaml:"seed"`
}

// Document is the JSON and YAML form of a Table or of a single seed.
type Document struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Start      string `json:"start" yaml:"start"`
	Clock      string `json:"clock" yaml:"clock"`
	Normalized bool   `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Seed       string `json:"seed,omitempty" yaml:"seed,omitempty"`
	Seeds      []Row  `json:"seeds,omitempty" yaml:"seeds,omitempty"`
}

func describe(name string, req input.Request) Document {
	return Document{
		Name:       name,
		Start:      req.Start.String(),
		Clock:      req.Clock.String(),
		Normalized: req.Normalized,
	}
}

func documents(tables []Table) []Document {
	docs := make([]Document, 0, len(tables))
	for _, t := range tables {
		d := describe(t.Name, t.Request)
		d.Seeds = make([]Row, 0, len(t.Entries))
		for _, e := range t.Entries {
			d.Seeds = append(d.Seeds, Row{Time: e.Label, Seed: e.Seed.String()})
		}
		docs = append(docs, d)
	}
	return docs
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
