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

package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Info is the version information embedded by the Go toolchain.
type Info struct {
	Module   string
	Version  string
	Revision string
	Modified bool
}

// Read extracts Info from the running binary's build info.
func Read() (*Info, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, fmt.Errorf("failed to read build info")
	}
	return fromBuildInfo(bi), nil
}

func fromBuildInfo(bi *debug.BuildInfo) *Info {
	info := &Info{
		Module:  bi.Main.Path,
		Version: bi.Main.Version,
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}
	return info
}

// Write prints info to w.
func (info *Info) Write(w io.Writer) {
	fmt.Fprintf(w, "Module: %s\n", info.Module)
	if info.Version != "" {
		fmt.Fprintf(w, "Version: %s\n", info.Version)
	}

	if info.Revision != "" {
		fmt.Fprintf(w, "Git SHA: %s", info.Revision)
		if info.Modified {
			fmt.Fprintf(w, " (modified)")
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "Git SHA: unknown")
	}
}

// Run prints version information to w.
func Run(w io.Writer) error {
	info, err := Read()
	if err != nil {
		return err
	}
	info.Write(w)
	return nil
}
