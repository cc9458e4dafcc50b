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

// Package paths contains functions to prepare paths to rtcseed resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// The policy of ResourcePath() depends on how the program was built. If it was
// built with the "release" tag then the user's config directory is used, as
// returned by os.UserConfigDir(). On a modern Linux system, the path returned
// in the example above will be:
//
//	/home/user/.config/rtcseed/preferences
//
// Otherwise, the path is relative to the current directory:
//
//	.rtcseed/preferences
//
// In both cases the directory is created if it does not exist.
package paths
