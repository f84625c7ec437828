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
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"

	"github.com/serverless-registry/deploytool/common/logging"
	"github.com/serverless-registry/deploytool/common/system/filesystem"
	"github.com/serverless-registry/deploytool/deploy"
)

var cmdRenderManifest = &subcommands.Command{
	UsageLine: "render-manifest [options]",
	ShortDesc: "renders the deployment manifest without deploying",
	LongDesc: `Render-manifest produces the exact wrangler.json the deploy command would
write into the checkout and prints it to stdout, or writes it to the path
given with -out.

It touches nothing remote, so no Cloudflare credentials are needed.`,
	CommandRun: func() subcommands.CommandRun {
		r := &renderManifestRun{}
		r.init()
		r.Flags.StringVar(&r.out, "out", "", "Write the manifest to this path instead of stdout.")
		return r
	},
}

type renderManifestRun struct {
	commandBase

	out string
}

func (r *renderManifestRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if err := r.validate(args); err != nil {
		return usageErr(a, err)
	}
	ctx := r.rootContext()

	blob, err := deploy.RenderManifest(r.cfg)
	if err != nil {
		logging.WithError(err).Errorf(ctx, "rendering the manifest")
		return 1
	}
	if r.out == "" {
		fmt.Fprintf(a.GetOut(), "%s", blob)
		return 0
	}
	if err := writeBlob(r.out, blob); err != nil {
		logging.WithError(err).Errorf(ctx, "writing the manifest")
		return 1
	}
	logging.Fields{
		"path": r.out,
		"size": humanize.Bytes(uint64(len(blob))),
	}.Infof(ctx, "manifest written")
	return 0
}

func writeBlob(path string, blob []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := filesystem.MakeDirs(dir); err != nil {
			return err
		}
	}
	return os.WriteFile(path, blob, 0644)
}
