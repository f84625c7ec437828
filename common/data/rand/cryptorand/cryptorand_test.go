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

package cryptorand

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRand(t *testing.T) {
	t.Parallel()

	Convey(`The real source fills the whole buffer`, t, func() {
		buf := make([]byte, 64)
		n, err := Read(context.Background(), buf)
		So(err, ShouldBeNil)
		So(n, ShouldEqual, 64)
	})

	Convey(`The mock source is deterministic per seed`, t, func() {
		read := func(seed int64) []byte {
			ctx := MockForTest(context.Background(), seed)
			buf := make([]byte, 16)
			n, err := Read(ctx, buf)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 16)
			return buf
		}
		So(read(0), ShouldResemble, read(0))
		So(read(1), ShouldNotResemble, read(0))
	})
}
