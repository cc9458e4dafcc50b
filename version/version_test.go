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

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/jetsetilly/rtcseed/test"
)

func TestFromSettings(t *testing.T) {
	v, r := fromSettings("", nil)
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	settings := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
	}

	v, r = fromSettings("", settings)
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abc123+dirty")

	v, r = fromSettings("v1.0.0", settings[:2])
	test.ExpectEquality(t, v, "v1.0.0")
	test.ExpectEquality(t, r, "abc123")
}

func TestDescribe(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(Describe(), ApplicationName+" "))
}
