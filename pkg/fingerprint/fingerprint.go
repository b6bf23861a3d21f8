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

// Package fingerprint identifies the on-disk state of a file so that a
// read-modify-write cycle can tell whether someone else wrote the file in
// between.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"syscall"
)

// Metadata is the stat-based fingerprint of a file at a point in time.
type Metadata struct {
	Path  string
	Size  int64
	Mtime int64 // Nanoseconds
	Inode uint64
	Hash  string
}

// Get retrieves the stat-based fingerprint of a file.
// Hash is left empty; see GetWithHash.
func Get(path string) (*Metadata, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}

	m := &Metadata{
		Path:  path,
		Size:  fi.Size(),
		Mtime: fi.ModTime().UnixNano(),
	}
	if stat, ok := fi.Sys().(*syscall.Stat_t); ok {
		m.Inode = stat.Ino
	}
	return m, nil
}

// GetWithHash is Get plus the SHA-256 of the file contents.
func GetWithHash(path string) (*Metadata, error) {
	m, err := Get(path)
	if err != nil {
		return nil, err
	}
	if m.Hash, err = Hash(path); err != nil {
		return nil, err
	}
	return m, nil
}

// Same reports whether m and other describe the same file state. Hashes are
// compared only when both are set.
func (m *Metadata) Same(other *Metadata) bool {
	if m.Size != other.Size || m.Mtime != other.Mtime || m.Inode != other.Inode {
		return false
	}
	if m.Hash != "" && other.Hash != "" {
		return m.Hash == other.Hash
	}
	return true
}

// Hash returns the hex-encoded SHA-256 of the file at path.
func Hash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashBytes returns the hex-encoded SHA-256 of b.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
