// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package walker

import (
	"io/fs"
	"strings"
)

// File is a regular file found under the root of a FileView.
type File struct {
	Path    string
	RelPath string
	Info    fs.FileInfo
}

// Filter reports whether a file should be passed to the walk callback.
type Filter func(f File) bool

// HasSuffix returns a Filter accepting files whose base name ends with one of
// the given suffixes. Matching is case-sensitive.
func HasSuffix(suffixes ...string) Filter {
	return func(f File) bool {
		name := f.Info.Name()
		for _, s := range suffixes {
			if strings.HasSuffix(name, s) {
				return true
			}
		}
		return false
	}
}
