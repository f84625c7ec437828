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
	"context"
	"fmt"

	"github.com/maruel/subcommands"

	"github.com/serverless-registry/deploytool/common/errors"
	"github.com/serverless-registry/deploytool/common/logging"
	"github.com/serverless-registry/deploytool/common/logging/gologger"
	"github.com/serverless-registry/deploytool/deploy"
)

// commandBase carries the deployment flag set shared by the subcommands.
type commandBase struct {
	subcommands.CommandRunBase

	cfg      deploy.Config
	logLevel logging.Level
}

// init registers the shared flags. Called from each command's CommandRun
// factory.
func (b *commandBase) init() {
	b.cfg = deploy.NewConfig()
	b.cfg.RegisterFlags(&b.Flags)
	b.logLevel = logging.Info
	b.Flags.Var(&b.logLevel, "log-level",
		"Logging level: debug, info, warning or error.")
}

// validate applies the post-parse checks every subcommand shares.
func (b *commandBase) validate(args []string) error {
	if len(args) != 0 {
		return errors.Fmt("unexpected arguments: %q", args)
	}
	return b.cfg.Validate()
}

// rootContext builds the context commands run under: console logging at
// the requested level.
func (b *commandBase) rootContext() context.Context {
	ctx := gologger.StdConfig.Use(context.Background())
	return logging.SetLevel(ctx, b.logLevel)
}

// usageErr reports a bad invocation the way flag parsing does and returns
// the command's exit code.
func usageErr(a subcommands.Application, err error) int {
	fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
	return 1
}
