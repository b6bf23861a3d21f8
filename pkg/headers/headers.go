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

// Package headers prepends a fixed SPDX license header to C++ sources that
// do not carry one yet.
package headers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gke-labs/spdxheaders/pkg/fingerprint"
	"github.com/gke-labs/spdxheaders/pkg/walker"
	"github.com/natefinch/atomic"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
	"k8s.io/klog/v2"
)

// DefaultHeader is prepended to every file lacking DefaultMarker.
const DefaultHeader = `/*
SPDX-FileCopyrightText: 2021 Hamed Masafi <hamed.masfi@gmail.com>

SPDX-License-Identifier: GPL-3.0-or-later
*/

`

// DefaultMarker anywhere in a file means it already has a header.
const DefaultMarker = "SPDX-"

// Status lines printed after each candidate's path.
const (
	StatusPresent = "already has header"
	StatusMissing = "does not have header"
)

var (
	// ErrNotText is returned for a candidate that is not valid UTF-8.
	ErrNotText = errors.New("not valid UTF-8 text")
	// ErrModified is returned when a candidate changed between read and write.
	ErrModified = errors.New("file modified while adding header")
)

// DefaultExtensions returns the file name suffixes that receive a header.
func DefaultExtensions() []string {
	return []string{".cpp", ".h"}
}

// Options configures Inject.
type Options struct {
	Header     string
	Marker     string
	Extensions []string

	// Skip lists gitignore-style patterns excluded from the walk.
	Skip []string

	// Out receives two lines per candidate: its path relative to the root,
	// then StatusPresent or StatusMissing. Nil discards them.
	Out io.Writer
}

// DefaultOptions returns Options with the compiled-in header, marker and
// extensions, no exclusions and status output discarded.
func DefaultOptions() Options {
	return Options{
		Header:     DefaultHeader,
		Marker:     DefaultMarker,
		Extensions: DefaultExtensions(),
	}
}

func (o *Options) validate() error {
	if o.Marker == "" {
		return fmt.Errorf("marker must not be empty")
	}
	// Otherwise a second run would prepend the header again.
	if !strings.Contains(o.Header, o.Marker) {
		return fmt.Errorf("header does not contain marker %q", o.Marker)
	}
	if len(o.Extensions) == 0 {
		return fmt.Errorf("no file extensions given")
	}
	return walker.NewIgnoreList(o.Skip).Validate()
}

// Summary counts what Inject did.
type Summary struct {
	Candidates int
	Injected   int
	Present    int
}

// testHookBeforeWrite runs after the content is read and before the
// modification check.
var testHookBeforeWrite func(path string)

// processor checks one candidate at a time, prints its status lines to out
// and counts the outcome in summary.
type processor struct {
	opt     Options
	out     io.Writer
	summary Summary
}

// Inject walks root and prepends opt.Header to every candidate file that does
// not contain opt.Marker. Files are processed one at a time in lexical order.
// The first error stops the walk; files not reached yet are left untouched and
// the failing file is never partially written.
func Inject(ctx context.Context, root string, opt Options) (*Summary, error) {
	log := klog.FromContext(ctx)

	if err := opt.validate(); err != nil {
		return nil, err
	}

	p := &processor{opt: opt, out: opt.Out}
	if p.out == nil {
		p.out = io.Discard
	}

	fv := walker.NewFileView(root, opt.Skip)
	fv.Filter = walker.HasSuffix(opt.Extensions...)
	err := fv.Walk(func(f walker.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return p.processFile(ctx, f)
	})

	log.V(1).Info("Header scan finished", "root", root, "candidates", p.summary.Candidates, "injected", p.summary.Injected, "present", p.summary.Present)
	return &p.summary, err
}

func (p *processor) processFile(ctx context.Context, f walker.File) error {
	log := klog.FromContext(ctx)

	p.summary.Candidates++
	fmt.Fprintln(p.out, f.RelPath)

	before, err := fingerprint.Get(f.Path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", f.RelPath, err)
	}
	content, err := os.ReadFile(f.Path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", f.RelPath, err)
	}
	before.Hash = fingerprint.HashBytes(content)

	if _, _, err := transform.Bytes(encoding.UTF8Validator, content); err != nil {
		return fmt.Errorf("error decoding %s: %w", f.RelPath, ErrNotText)
	}

	if bytes.Contains(content, []byte(p.opt.Marker)) {
		fmt.Fprintln(p.out, StatusPresent)
		log.V(2).Info("File already has header", "file", f.RelPath)
		p.summary.Present++
		return nil
	}
	fmt.Fprintln(p.out, StatusMissing)
	log.V(2).Info("Adding file header", "file", f.RelPath)

	var buf bytes.Buffer
	buf.Grow(len(p.opt.Header) + len(content))
	buf.WriteString(p.opt.Header)
	buf.Write(content)

	if testHookBeforeWrite != nil {
		testHookBeforeWrite(f.Path)
	}
	now, err := fingerprint.GetWithHash(f.Path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", f.RelPath, err)
	}
	if !before.Same(now) {
		return fmt.Errorf("error writing %s: %w", f.RelPath, ErrModified)
	}

	if err := atomic.WriteFile(f.Path, &buf); err != nil {
		return fmt.Errorf("error writing %s: %w", f.RelPath, err)
	}
	p.summary.Injected++
	return nil
}
