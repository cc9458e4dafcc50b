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

package paths

import (
	"path/filepath"

	"github.com/jetsetilly/rtcseed/curated"
)

// ResourceError is the pattern for errors returned by ResourcePath().
const ResourceError = "paths: %v"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details.
//
// The subPth argument is a directory and will be created if necessary. The
// file argument is not checked.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", curated.Errorf(ResourceError, err)
	}
	return filepath.Join(base, file), nil
}
