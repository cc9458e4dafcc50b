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

//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/rtcseed/statsview"
	"github.com/jetsetilly/rtcseed/test"
)

func TestUnavailable(t *testing.T) {
	test.ExpectFailure(t, statsview.Available())

	w := &test.CompareWriter{}
	statsview.Launch(w)
	test.ExpectEquality(t, w.String(), "stats server not available in this build\n")

	test.ExpectEquality(t, statsview.URL(), "http://localhost:12600/debug/statsview")
}
