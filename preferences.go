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

package main

import (
	"strings"

	"github.com/jetsetilly/rtcseed/curated"
	"github.com/jetsetilly/rtcseed/input"
	"github.com/jetsetilly/rtcseed/paths"
	"github.com/jetsetilly/rtcseed/prefs"
	"github.com/jetsetilly/rtcseed/report"
)

// error pattern for preference values that are out of range.
const outOfRange = "%s must be at least 1"

// preferences for the rtcseed command.
type preferences struct {
	dsk *prefs.Disk

	// clock reports the time of day as BCD
	bcd prefs.Bool

	// clamp days that are too large for the month
	normalize prefs.Bool

	// the number of seeds in a request and the maximum number allowed
	count    prefs.Int
	maxSeeds prefs.Int

	// the default report format
	format      *prefs.Generic
	formatValue report.Format
}

func (p *preferences) String() string {
	return p.dsk.String()
}

// newPreferences is the preferred method of initialisation for the
// preferences type. Values are loaded from the preferences file if it
// exists. Values in the current command line group take priority.
func newPreferences() (*preferences, error) {
	p := &preferences{}
	p.setDefaults()

	// the count is checked against the maximum when a request is parsed
	p.count.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(outOfRange, "seeds.count")
		}
		return nil
	})
	p.maxSeeds.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(outOfRange, "seeds.max")
		}
		return nil
	})

	p.format = prefs.NewGeneric(
		func(s string) error {
			f, err := report.ParseFormat(s)
			if err != nil {
				return err
			}
			p.formatValue = f
			return nil
		},
		func() string {
			return strings.ToLower(p.formatValue.String())
		},
	)

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("input.bcd", &p.bcd)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.normalize", &p.normalize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("seeds.count", &p.count)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("seeds.max", &p.maxSeeds)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("report.format", p.format)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

func (p *preferences) setDefaults() {
	_ = p.bcd.Set(false)
	_ = p.normalize.Set(true)
	_ = p.maxSeeds.Set(input.RangeOf(input.Seeds).Max)
	_ = p.count.Set(input.RangeOf(input.Seeds).Default)
	p.formatValue = report.Plain
}

func (p *preferences) save() error {
	return p.dsk.Save()
}

// policy returns the input.Policy described by the preferences.
func (p *preferences) policy() input.Policy {
	pol := input.Policy{
		NormalizeDay: p.normalize.Get().(bool),
		MaxSeeds:     p.maxSeeds.Get().(int),
	}
	if p.bcd.Get().(bool) {
		pol.Clock = input.BCD
	}
	return pol
}

// seeds returns the default number of seeds as a field value.
func (p *preferences) seeds() string {
	return p.count.String()
}
