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

package flag

import (
	"flag"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOptionalDays(t *testing.T) {
	t.Parallel()

	Convey(`OptionalDays`, t, func() {
		d := Days(30)
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.Var(&d, "expire-days", "usage")

		Convey(`keeps its default when not passed`, func() {
			So(fs.Parse(nil), ShouldBeNil)
			So(d, ShouldResemble, OptionalDays{Valid: true, Days: 30})
			So(d.String(), ShouldEqual, "30")
		})

		Convey(`parses a day count`, func() {
			So(fs.Parse([]string{"-expire-days", "7"}), ShouldBeNil)
			So(d, ShouldResemble, OptionalDays{Valid: true, Days: 7})
		})

		Convey(`accepts zero`, func() {
			So(fs.Parse([]string{"-expire-days", "0"}), ShouldBeNil)
			So(d, ShouldResemble, OptionalDays{Valid: true, Days: 0})
			So(d.String(), ShouldEqual, "0")
		})

		Convey(`an empty value clears the default`, func() {
			So(fs.Parse([]string{"-expire-days", ""}), ShouldBeNil)
			So(d.Valid, ShouldBeFalse)
			So(d.String(), ShouldEqual, "")
		})

		Convey(`rejects garbage`, func() {
			So(fs.Parse([]string{"-expire-days", "soon"}), ShouldNotBeNil)
		})

		Convey(`rejects negative counts`, func() {
			So(fs.Parse([]string{"-expire-days", "-1"}), ShouldNotBeNil)
		})

		Convey(`round-trips through Get`, func() {
			So(fs.Parse([]string{"-expire-days", "14"}), ShouldBeNil)
			g := fs.Lookup("expire-days").Value.(flag.Getter)
			So(g.Get(), ShouldResemble, OptionalDays{Valid: true, Days: 14})
		})
	})
}
