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

// Package batch evaluates a file of seed requests. The file is YAML:
//
//	clock: bcd
//	normalize: true
//	requests:
//	  - name: new game
//	    year: 2004
//	    month: 2
//	    day: 30
//	    hour: 12
//	    minute: 0
//	    seeds: 5
//
// The clock and normalize settings apply to every request but a request can
// specify its own clock. Fields that are missing from a request take their
// default value, as they would if left blank on the command line.
//
// A request can also give the digest of the sequence it is expected to
// produce, as reported by the digest package. The run fails if the sequence
// has a different digest.
package batch

import (
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/rtcseed/curated"
	"github.com/jetsetilly/rtcseed/digest"
	"github.com/jetsetilly/rtcseed/input"
	"github.com/jetsetilly/rtcseed/logger"
	"github.com/jetsetilly/rtcseed/report"
)

// Sentinal patterns for batch errors.
const (
	FileError    = "batch: %v"
	RequestError = "batch: request %d (%s): %v"
	NoRequests   = "batch: no requests"
	Mismatch     = "digest mismatch: %s"
)

// Request is a single request in a batch file.
type Request struct {
	Name   string `yaml:"name"`
	Clock  string `yaml:"clock"`
	Year   *int   `yaml:"year"`
	Month  *int   `yaml:"month"`
	Day    *int   `yaml:"day"`
	Hour   *int   `yaml:"hour"`
	Minute *int   `yaml:"minute"`
	Seeds  *int   `yaml:"seeds"`

	// fingerprint of the expected sequence. not checked if empty
	Digest string `yaml:"digest"`
}

// File is the contents of a batch file.
type File struct {
	Clock     string    `yaml:"clock"`
	Normalize bool      `yaml:"normalize"`
	Requests  []Request `yaml:"requests"`
}

// Load a batch file from the io.Reader. Unknown keys in the file are an
// error.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	if len(f.Requests) == 0 {
		return nil, curated.Errorf(NoRequests)
	}

	return &f, nil
}

// LoadFile is the same as Load() but reads from the named file.
func LoadFile(filename string) (*File, error) {
	fh, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}
	defer fh.Close()
	return Load(fh)
}

// fields converts the request to input.Fields. nil values are left blank.
func (req Request) fields() input.Fields {
	var f input.Fields
	for i, v := range []*int{req.Year, req.Month, req.Day, req.Hour, req.Minute, req.Seeds} {
		if v != nil {
			f[i] = strconv.Itoa(*v)
		}
	}
	return f
}

// label is used to identify the request in error messages.
func (req Request) label() string {
	if req.Name == "" {
		return "unnamed"
	}
	return req.Name
}

// Run evaluates every request in the file. The maxSeeds argument is passed to
// the input.Policy of every request.
//
// Evaluation stops at the first request in error and no tables are returned.
func (f *File) Run(maxSeeds int) ([]report.Table, error) {
	p := input.Policy{
		NormalizeDay: f.Normalize,
		MaxSeeds:     maxSeeds,
	}

	if f.Clock != "" {
		var err error
		p.Clock, err = input.ParseClock(f.Clock)
		if err != nil {
			return nil, curated.Errorf(FileError, err)
		}
	}

	tables := make([]report.Table, 0, len(f.Requests))

	for i, r := range f.Requests {
		rp := p
		if r.Clock != "" {
			var err error
			rp.Clock, err = input.ParseClock(r.Clock)
			if err != nil {
				return nil, curated.Errorf(RequestError, i, r.label(), err)
			}
		}

		req, err := rp.Parse(r.fields())
		if err != nil {
			return nil, curated.Errorf(RequestError, i, r.label(), err)
		}

		tab, err := report.NewTable(r.Name, req)
		if err != nil {
			return nil, curated.Errorf(RequestError, i, r.label(), err)
		}

		if r.Digest != "" {
			if h := digest.Entries(tab.Entries); h != r.Digest {
				return nil, curated.Errorf(RequestError, i, r.label(), curated.Errorf(Mismatch, h))
			}
		}

		logger.Logf(logger.Allow, "batch", "request %d (%s): %d seeds from %s", i, r.label(), len(tab.Entries), req.Start)
		tables = append(tables, tab)
	}

	return tables, nil
}
