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
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreList matches paths against a list of patterns, similar to .gitignore.
type IgnoreList struct {
	patterns []string
}

// NewIgnoreList creates a new IgnoreList.
func NewIgnoreList(patterns []string) *IgnoreList {
	return &IgnoreList{patterns: patterns}
}

// Len returns the number of patterns in the list.
func (l *IgnoreList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.patterns)
}

// ShouldIgnore returns true if the path should be ignored.
// relPath should be relative to the root of the walk.
func (l *IgnoreList) ShouldIgnore(relPath string, isDir bool) bool {
	if l == nil {
		return false
	}
	for _, p := range l.patterns {
		if match(p, relPath, isDir) {
			return true
		}
	}
	return false
}

// Validate reports the first malformed pattern in the list.
func (l *IgnoreList) Validate() error {
	if l.Len() == 0 {
		return nil
	}
	for _, p := range l.patterns {
		if !doublestar.ValidatePattern(strings.TrimSuffix(p, "/")) {
			return &PatternError{Pattern: p}
		}
	}
	return nil
}

// PatternError is returned by Validate for a pattern that can never match.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid ignore pattern %q", e.Pattern)
}

func match(pattern, relPath string, isDir bool) bool {
	anchored := strings.Contains(pattern, "/")

	// A trailing slash only matches directories.
	if strings.HasSuffix(pattern, "/") {
		if !isDir {
			return false
		}
		pattern = strings.TrimSuffix(pattern, "/")
	}

	// Patterns use / as separator.
	relPath = filepath.ToSlash(relPath)

	// "**/testdata" matches "testdata", "pkg/testdata"
	if strings.Contains(pattern, "**") {
		matched, _ := doublestar.Match(pattern, relPath)
		return matched
	}

	// Patterns with a slash, trailing included, are anchored at the root.
	if anchored {
		matched, _ := path.Match(pattern, relPath)
		return matched
	}

	matched, _ := path.Match(pattern, path.Base(relPath))
	return matched
}
