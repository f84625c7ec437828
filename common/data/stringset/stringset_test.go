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

package stringset

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSet(t *testing.T) {
	t.Parallel()

	Convey(`Set`, t, func() {
		s := NewFromSlice("b", "a", "b")

		So(s.Len(), ShouldEqual, 2)
		So(s.Has("a"), ShouldBeTrue)
		So(s.Has("c"), ShouldBeFalse)

		So(s.Add("c"), ShouldBeTrue)
		So(s.Add("c"), ShouldBeFalse)
		So(s.ToSortedSlice(), ShouldResemble, []string{"a", "b", "c"})

		So(s.Del("a"), ShouldBeTrue)
		So(s.Del("a"), ShouldBeFalse)
		So(s.Has("a"), ShouldBeFalse)

		So(New(0).Len(), ShouldEqual, 0)
	})
}
