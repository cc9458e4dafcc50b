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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/rtcseed/curated"
	"github.com/jetsetilly/rtcseed/logger"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// Sentinal error patterns for the Disk type.
const (
	NoPrefsFile  = "prefs: no preferences file: %v"
	DiskError    = "prefs: %v"
	DuplicateKey = "prefs: duplicate key: %s"
	KeyNotAdded  = "prefs: key not added: %s"
)

// separator between key and value in the preferences file.
const separator = " :: "

// Disk represents preference values as stored on disk. Values are added to
// the Disk with Add() and then saved or loaded together.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}

	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to the Disk. The key must not already have been added
// and must not contain the key/value separator.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, separator) {
		return curated.Errorf(DiskError, fmt.Sprintf("illegal key: %q", key))
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}

	dsk.entries[key] = p

	return nil
}

// Get the value associated with the key.
func (dsk *Disk) Get(key string) (Value, error) {
	p, ok := dsk.entries[key]
	if !ok {
		return nil, curated.Errorf(KeyNotAdded, key)
	}
	return p.Get(), nil
}

// Reset all values in the Disk.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// read the preferences file. returns a map of key/value strings.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line == WarningBoilerPlate {
			continue
		}

		k, v, ok := strings.Cut(line, separator)
		if !ok {
			logger.Logf(logger.Allow, "prefs", "ignoring malformed line in %s: %q", dsk.path, line)
			continue
		}

		k = strings.TrimSpace(k)
		if isDefunct(k) {
			continue
		}

		entries[k] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return entries, nil
}

// Save current preference values to disk. Entries in the file that have not
// been added to this Disk are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		entries = make(map[string]string)
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, entries[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	logger.Logf(logger.Allow, "prefs", "saved %d entries to %s", len(keys), dsk.path)

	return nil
}

// Load preference values from disk. Values in the preferences file for keys
// that have not been added are ignored. Values in the current command line
// group (see PushCommandLineStack()) take priority over values on disk.
//
// If saveOnFail is true and the preferences file does not exist, a new file
// is created with the current values.
func (dsk *Disk) Load(saveOnFail bool) error {
	entries, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) || !saveOnFail {
			// command line values are applied even if there is no file
			if cerr := dsk.commandLine(); cerr != nil {
				return cerr
			}
			return err
		}
		if err := dsk.Save(); err != nil {
			return err
		}
		entries = nil
	}

	for k, v := range entries {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, fmt.Sprintf("%s: %v", k, err))
			}
		}
	}

	return dsk.commandLine()
}

// apply values from the command line stack for every key in the Disk.
func (dsk *Disk) commandLine() error {
	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(DiskError, fmt.Sprintf("%s: %v", k, err))
			}
			logger.Logf(logger.Allow, "prefs", "%s set to %v from command line", k, v)
		}
	}
	return nil
}
