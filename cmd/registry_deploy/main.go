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

// Command registry_deploy deploys the serverless container registry to
// Cloudflare Workers: it fetches the registry worker's source, renders its
// deployment manifest, reconciles the backing R2 bucket and its retention
// rules, and deploys the worker with its secrets.
//
// git, npm and wrangler must be on PATH.
package main

import (
	"os"

	"github.com/maruel/subcommands"
)

// toolVersion is bumped manually on release.
const toolVersion = "1.0.1"

func application() *subcommands.DefaultApplication {
	return &subcommands.DefaultApplication{
		Name:  "registry_deploy",
		Title: "Serverless container registry deployment tool (v" + toolVersion + ")",
		Commands: []*subcommands.Command{
			cmdDeploy,
			cmdRenderManifest,
			cmdReconcileLifecycle,
			cmdVersion,
			subcommands.CmdHelp,
		},
	}
}

// helpAlias rewrites a leading help flag into the help subcommand, so that
// asking for help succeeds (exit 0) instead of tripping the unknown-command
// path.
func helpAlias(args []string) []string {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "-help", "--help":
			return append([]string{"help"}, args[1:]...)
		}
	}
	return args
}

func main() {
	os.Exit(subcommands.Run(application(), helpAlias(os.Args[1:])))
}
