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

// Package version reports the name and version of the application. The
// version number is set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/rtcseed/version.number=v1.0.0"
//
// Revision information comes from the build information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "rtcseed"

// if number is empty then the project was probably not built using the makefile
var number string

// the vcs revision. suffixed with "+dirty" if the source had uncommitted
// changes at build time
var revision string

// the version string. "unreleased" if the project has been built without a
// version number and "local" if there is no vcs information either. this can
// happen when running with "go run ."
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release version.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Describe returns a single line describing the application and its version.
func Describe() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	version, revision = fromSettings(number, settings)
}

// fromSettings derives the version and revision strings from the version
// number and the build settings.
func fromSettings(number string, settings []debug.BuildSetting) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			vcsRevision = s.Value
		case "vcs.modified":
			vcsModified = s.Value == "true"
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	if number != "" {
		return number, rev
	}
	if vcs {
		return "unreleased", rev
	}
	return "local", rev
}
