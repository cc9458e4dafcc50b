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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/rtcseed/paths"
	"github.com/jetsetilly/rtcseed/test"
)

func TestPaths(t *testing.T) {
	// resource paths are relative to the working directory in development
	// builds
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".rtcseed", "foo", "bar", "baz"))

	// directory has been created
	info, err := os.Stat(filepath.Join(".rtcseed", "foo", "bar"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".rtcseed", "preferences"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rtcseed")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("rtcseed", "new game")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "rtcseed_new_game_"))
	test.ExpectEquality(t, len(fn), len("rtcseed_new_game_YYYYMMDD_HHMMSS"))

	fn = paths.UniqueFilename("rtcseed", "  ")
	test.ExpectEquality(t, len(fn), len("rtcseed_YYYYMMDD_HHMMSS"))
}
