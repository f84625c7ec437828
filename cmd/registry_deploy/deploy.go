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
	"github.com/maruel/subcommands"

	"github.com/serverless-registry/deploytool/common/logging"
	"github.com/serverless-registry/deploytool/deploy"
)

var cmdDeploy = &subcommands.Command{
	UsageLine: "deploy -cf-token <token> -cf-account-id <id> [options]",
	ShortDesc: "fetches the registry source and deploys it",
	LongDesc: `Deploy runs the full workflow: it fetches the registry worker's source,
renders the deployment manifest, creates the R2 bucket and reconciles its
retention rules, installs dependencies, uploads the worker secrets and
deploys the worker.

Registry credentials are generated when not supplied and echoed once at the
end of the run. They are not stored anywhere else.`,
	CommandRun: func() subcommands.CommandRun {
		r := &deployRun{}
		r.init()
		return r
	},
}

type deployRun struct {
	commandBase
}

func (r *deployRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if err := r.validate(args); err != nil {
		return usageErr(a, err)
	}
	ctx := r.rootContext()

	res, err := deploy.NewPipeline().Run(ctx, r.cfg)
	if err != nil {
		logging.WithError(err).Errorf(ctx, "deployment failed")
		return 1
	}
	if err := reportDeployment(a.GetOut(), res); err != nil {
		logging.WithError(err).Errorf(ctx, "writing the deployment report")
		return 1
	}
	return 0
}
