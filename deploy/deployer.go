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

	"github.com/serverless-registry/deploytool/common/logging"
)

// installDependencies installs the worker's npm dependencies into the
// checkout, so the deploy step has the build toolchain available.
func installDependencies(ctx context.Context, npm *tool, dir string) error {
	logging.Infof(ctx, "installing worker dependencies, this can take a while")
	_, err := npm.exec(ctx, invocation{
		args: []string{"install"},
		dir:  dir,
	})
	return err
}

// deployWorker builds and uploads the worker from the checkout.
func deployWorker(ctx context.Context, w Wrangler, dir string) error {
	logging.Infof(ctx, "deploying worker %q", WorkerName)
	return w.Deploy(ctx, dir)
}
