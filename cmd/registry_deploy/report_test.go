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
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/serverless-registry/deploytool/deploy"
)

func testResult() *deploy.Result {
	cfg := deploy.NewConfig()
	cfg.Username = "admin"
	cfg.Password = "hunter2hunter2xx"
	return &deploy.Result{
		Config:       cfg,
		Checkout:     deploy.Checkout{Dir: "serverless-registry", Revision: "cafebabe"},
		ManifestPath: "serverless-registry/wrangler.json",
		ManifestSize: 512,
	}
}

func TestReportDeployment(t *testing.T) {
	t.Parallel()

	Convey(`reportDeployment`, t, func() {
		buf := &bytes.Buffer{}

		Convey(`echoes the credentials and the deployed state`, func() {
			So(reportDeployment(buf, testResult()), ShouldBeNil)

			out := buf.String()
			So(out, ShouldContainSubstring, "Registry deployed.")
			So(out, ShouldContainSubstring, "Username: admin")
			So(out, ShouldContainSubstring, "Password: hunter2hunter2xx")
			So(out, ShouldContainSubstring, "Bucket:   r2-registry")
			So(out, ShouldContainSubstring, "Revision: cafebabe")
			So(out, ShouldContainSubstring, "serverless-registry/wrangler.json")
			So(out, ShouldContainSubstring, "512 B")
		})

		Convey(`points at the custom domain when one is configured`, func() {
			res := testResult()
			res.Config.CustomDomain = "registry.example.com"
			So(reportDeployment(buf, res), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Endpoint: https://registry.example.com")
		})

		Convey(`names the workers.dev hostname shape otherwise`, func() {
			So(reportDeployment(buf, testResult()), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, ".workers.dev")
		})

		Convey(`reports the first write failure`, func() {
			So(reportDeployment(failAfter(2), testResult()), ShouldNotBeNil)
		})
	})
}

// failingWriter accepts n writes, then fails.
type failingWriter struct {
	n int
}

func failAfter(n int) *failingWriter { return &failingWriter{n: n} }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, bytes.ErrTooLarge
	}
	w.n--
	return len(p), nil
}
