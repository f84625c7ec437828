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
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/mgutz/ansi"

	"github.com/serverless-registry/deploytool/deploy"
)

type printer struct {
	w io.Writer

	// err is not nil if writing to w failed.
	err error
}

// f prints to p.w unless there was an error.
func (p *printer) f(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

// reportDeployment prints the post-deploy summary. The registry credentials
// appear in clear text: this report is the only place a generated password
// is ever shown.
func reportDeployment(w io.Writer, res *deploy.Result) error {
	p := &printer{w: w}
	p.f("%s\n", ansi.Color("Registry deployed.", "green+b"))
	p.f("  Worker:   %s\n", deploy.WorkerName)
	p.f("  Revision: %s\n", res.Checkout.Revision)
	p.f("  Bucket:   %s\n", res.Config.BucketName)
	p.f("  Manifest: %s (%s)\n", res.ManifestPath, humanize.Bytes(uint64(res.ManifestSize)))
	p.f("  Endpoint: %s\n", endpoint(res.Config))
	p.f("%s\n", ansi.Color("Registry credentials (shown only once):", "yellow+b"))
	p.f("  Username: %s\n", res.Config.Username)
	p.f("  Password: %s\n", res.Config.Password)
	return p.err
}

// endpoint names the URL the registry answers on. Without a custom domain
// the exact hostname depends on the account's workers.dev subdomain, which
// this tool does not query.
func endpoint(cfg deploy.Config) string {
	if cfg.CustomDomain != "" {
		return "https://" + cfg.CustomDomain
	}
	return fmt.Sprintf("https://%s.<your-subdomain>.workers.dev", deploy.WorkerName)
}
