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

var cmdReconcileLifecycle = &subcommands.Command{
	UsageLine: "reconcile-lifecycle -cf-token <token> -cf-account-id <id> [options]",
	ShortDesc: "creates the registry bucket and reconciles its retention rules",
	LongDesc: `Reconcile-lifecycle makes sure the registry's R2 bucket exists and that its
managed lifecycle rules match the -expire-days, -abort-multipart-days and
-ia-transition-days flags. Rules this tool does not manage are left alone.

It does not touch the worker, so it is safe to run against a live registry.`,
	CommandRun: func() subcommands.CommandRun {
		r := &reconcileLifecycleRun{}
		r.init()
		return r
	},
}

type reconcileLifecycleRun struct {
	commandBase
}

func (r *reconcileLifecycleRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if err := r.validate(args); err != nil {
		return usageErr(a, err)
	}
	ctx := r.rootContext()

	if err := deploy.NewPipeline().RunLifecycle(ctx, r.cfg); err != nil {
		logging.WithError(err).Errorf(ctx, "lifecycle reconciliation failed")
		return 1
	}
	logging.Infof(ctx, "bucket %q is up to date", r.cfg.BucketName)
	return 0
}
