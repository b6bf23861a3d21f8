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

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gke-labs/spdxheaders/pkg/config"
	"github.com/gke-labs/spdxheaders/pkg/headers"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cmd := BuildRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range map[string]string{
		"a.cpp":         "int main(){}",
		"b.h":           "// SPDX-License-Identifier: MIT\n",
		"c.txt":         "notes\n",
		"3rdparty/x.h":  "int x;\n",
		"src/window.cc": "int w;\n",
	} {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestRootCommandInjects(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"inject"},
	} {
		t.Run(strings.Join(append([]string{"spdxheaders"}, args...), " "), func(t *testing.T) {
			root := setupTree(t)

			stdout, err := runCommand(t, append(args, "--root", root)...)
			if err != nil {
				t.Fatalf("command failed: %v", err)
			}

			wantStdout := strings.Join([]string{
				"3rdparty/x.h", headers.StatusMissing,
				"a.cpp", headers.StatusMissing,
				"b.h", headers.StatusPresent,
			}, "\n") + "\n"
			if stdout != wantStdout {
				t.Errorf("stdout = %q, want %q", stdout, wantStdout)
			}
			if got := readFile(t, filepath.Join(root, "a.cpp")); got != headers.DefaultHeader+"int main(){}" {
				t.Errorf("a.cpp = %q", got)
			}
			if got := readFile(t, filepath.Join(root, "src/window.cc")); got != "int w;\n" {
				t.Errorf("src/window.cc was modified: %q", got)
			}
		})
	}
}

func TestInjectSkipFlag(t *testing.T) {
	root := setupTree(t)

	stdout, err := runCommand(t, "inject", "--root", root, "--skip", "3rdparty/", "--quiet")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != "" {
		t.Errorf("--quiet should suppress status lines, got %q", stdout)
	}
	if got := readFile(t, filepath.Join(root, "3rdparty/x.h")); got != "int x;\n" {
		t.Errorf("skipped file was modified: %q", got)
	}
	if got := readFile(t, filepath.Join(root, "a.cpp")); !strings.HasPrefix(got, headers.DefaultHeader) {
		t.Errorf("a.cpp has no header: %q", got)
	}
}

func TestInjectConfigFile(t *testing.T) {
	root := setupTree(t)
	cfg := "skip:\n  - 3rdparty/\nquiet: true\n"
	if err := os.WriteFile(filepath.Join(root, config.FileName), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, err := runCommand(t, "--root", root)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != "" {
		t.Errorf("quiet config should suppress status lines, got %q", stdout)
	}
	if got := readFile(t, filepath.Join(root, "3rdparty/x.h")); got != "int x;\n" {
		t.Errorf("skipped file was modified: %q", got)
	}

	// The flag wins over the config file.
	stdout, err = runCommand(t, "--root", root, "--quiet=false")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	want := "a.cpp\n" + headers.StatusPresent + "\nb.h\n" + headers.StatusPresent + "\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestInjectFailure(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "bad.h"), []byte{0xc3, 0x28}, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := runCommand(t, "--root", root)
	if !errors.Is(err, headers.ErrNotText) {
		t.Fatalf("error = %v, want %v", err, headers.ErrNotText)
	}
}

func TestUnknownArgument(t *testing.T) {
	if _, err := runCommand(t, "frobnicate"); err == nil {
		t.Fatal("expected an error for an unknown subcommand")
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "Module: ") || !strings.Contains(stdout, "Git SHA: ") {
		t.Errorf("unexpected version output: %q", stdout)
	}
}
