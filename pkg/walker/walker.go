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
	"io/fs"
	"os"
	"path/filepath"
)

// FileView represents a view of a directory tree, with ignore patterns.
type FileView struct {
	Dir    string
	Ignore *IgnoreList
	Filter Filter
}

// NewFileView creates a new FileView. An empty pattern list ignores nothing.
func NewFileView(dir string, ignorePatterns []string) *FileView {
	return &FileView{
		Dir:    dir,
		Ignore: NewIgnoreList(ignorePatterns),
	}
}

// Walk walks the directory tree in lexical order and calls callback for each
// regular file accepted by the filter. Symlinks and other special files are
// never passed to callback. The first error returned by the walk or by
// callback stops the walk. Dir may be a symlink to a directory; it must not
// be anything else.
func (v *FileView) Walk(callback func(File) error) error {
	root, err := filepath.EvalSymlinks(v.Dir)
	if err != nil {
		return err
	}
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", v.Dir)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		if v.Ignore != nil && v.Ignore.ShouldIgnore(relPath, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		f := File{
			Path:    path,
			RelPath: relPath,
			Info:    info,
		}
		if v.Filter != nil && !v.Filter(f) {
			return nil
		}
		return callback(f)
	})
}
