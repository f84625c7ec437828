// Copyright 2024 The Serverless Registry Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package filesystem provides filesystem helpers shared by the deployment
// workflow.
package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/serverless-registry/deploytool/common/errors"
)

// IsNotExist reports whether err indicates a missing file or directory.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// MakeDirs is a convenience wrapper for os.MkdirAll with 0755 permissions.
func MakeDirs(path string) error {
	return errors.WrapIf(os.MkdirAll(path, 0755), "making directories for %q", path)
}

// RemoveAll removes path and everything under it. A missing path is not an
// error.
//
// Unlike a bare os.RemoveAll, it copes with read-only entries such as the
// object store of a git checkout: if the first removal attempt fails, every
// surviving entry is marked user-writable (and, for directories,
// user-traversable) and the removal is retried.
func RemoveAll(path string) error {
	err := os.RemoveAll(path)
	if err == nil || IsNotExist(err) {
		return nil
	}

	// Lift read-only bits, best effort. The retry below is authoritative.
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		mode := info.Mode()
		want := mode | 0200
		if d.IsDir() {
			want |= 0700
		}
		if want != mode {
			_ = os.Chmod(p, want.Perm())
		}
		return nil
	})

	return errors.WrapIf(os.RemoveAll(path), "removing %q", path)
}
