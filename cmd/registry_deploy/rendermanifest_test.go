// Copyright 2025 The Serverless Registry Authors.
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

package main

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// Not parallel: one branch changes the working directory.
func TestWriteBlob(t *testing.T) {
	Convey(`writeBlob`, t, func() {
		tmp := t.TempDir()

		Convey(`creates missing parent directories`, func() {
			path := filepath.Join(tmp, "a", "b", "wrangler.json")
			So(writeBlob(path, []byte("{}\n")), ShouldBeNil)

			blob, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(blob), ShouldEqual, "{}\n")
		})

		Convey(`writes plain file names as is`, func() {
			wd, err := os.Getwd()
			So(err, ShouldBeNil)
			So(os.Chdir(tmp), ShouldBeNil)
			defer func() { _ = os.Chdir(wd) }()

			So(writeBlob("wrangler.json", []byte("{}\n")), ShouldBeNil)
			_, err = os.Stat(filepath.Join(tmp, "wrangler.json"))
			So(err, ShouldBeNil)
		})
	})
}
