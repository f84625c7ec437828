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

package deploy

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/serverless-registry/deploytool/common/data/rand/cryptorand"
	"github.com/serverless-registry/deploytool/common/logging"
	"github.com/serverless-registry/deploytool/common/logging/memlogger"
)

func TestProvisionCredentials(t *testing.T) {
	t.Parallel()

	Convey(`provisionCredentials`, t, func() {
		ctx := memlogger.Use(cryptorand.MockForTest(context.Background(), 0))
		ml := logging.Get(ctx).(*memlogger.MemLogger)

		Convey(`fills blank credentials`, func() {
			in := NewConfig()
			out, err := provisionCredentials(ctx, in)
			So(err, ShouldBeNil)

			So(out.Username, ShouldEqual, DefaultUsername)
			So(out.Password, ShouldHaveLength, generatedPasswordLen)
			for i := 0; i < len(out.Password); i++ {
				So(isAlnum(out.Password[i]), ShouldBeTrue)
			}

			// The input configuration is untouched.
			So(in.Username, ShouldBeBlank)
			So(in.Password, ShouldBeBlank)

			// The generated password is echoed for the operator.
			So(ml.Has(logging.Info, out.Password), ShouldBeTrue)
		})

		Convey(`is deterministic under a mocked source`, func() {
			a, err := provisionCredentials(cryptorand.MockForTest(ctx, 42), NewConfig())
			So(err, ShouldBeNil)
			b, err := provisionCredentials(cryptorand.MockForTest(ctx, 42), NewConfig())
			So(err, ShouldBeNil)
			c, err := provisionCredentials(cryptorand.MockForTest(ctx, 43), NewConfig())
			So(err, ShouldBeNil)

			So(a.Password, ShouldEqual, b.Password)
			So(c.Password, ShouldNotEqual, a.Password)
		})

		Convey(`keeps supplied credentials`, func() {
			in := NewConfig()
			in.Username = "operator"
			in.Password = "sup3rsecret"
			out, err := provisionCredentials(ctx, in)
			So(err, ShouldBeNil)
			So(out.Username, ShouldEqual, "operator")
			So(out.Password, ShouldEqual, "sup3rsecret")
			So(ml.Has(logging.Info, "sup3rsecret"), ShouldBeFalse)
		})
	})
}

func TestGeneratePassword(t *testing.T) {
	t.Parallel()

	Convey(`generatePassword emits 16 alphanumerics from any source`, t, func() {
		for seed := int64(0); seed < 20; seed++ {
			ctx := cryptorand.MockForTest(context.Background(), seed)
			pw, err := generatePassword(ctx)
			So(err, ShouldBeNil)
			So(pw, ShouldHaveLength, generatedPasswordLen)
			for i := 0; i < len(pw); i++ {
				So(isAlnum(pw[i]), ShouldBeTrue)
			}
		}
	})
}
