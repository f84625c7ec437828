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

	"github.com/serverless-registry/deploytool/common/errors"
	"github.com/serverless-registry/deploytool/common/logging"
)

// Names of the worker secrets.
const (
	secretUsername      = "USERNAME"
	secretPassword      = "PASSWORD"
	secretUpstreamToken = "REGISTRY_TOKEN"
)

// configureSecrets uploads the registry credentials as worker secrets.
//
// Uploads are all or nothing: unless the username, the password and the
// upstream password are all present, no secret is touched and a single
// warning tells the operator that authentication stays unconfigured. That
// keeps a partially specified credential set from producing a worker with
// half its secrets.
func configureSecrets(ctx context.Context, w Wrangler, cfg Config, dir string) error {
	if cfg.Username == "" || cfg.Password == "" || cfg.UpstreamPassword == "" {
		logging.Warningf(ctx, "credential set incomplete, skipping secret upload (pass -upstream-password to configure pull-through auth)")
		return nil
	}
	for _, s := range []struct{ name, value string }{
		{secretUsername, cfg.Username},
		{secretPassword, cfg.Password},
		{secretUpstreamToken, cfg.UpstreamPassword},
	} {
		if err := w.PutSecret(ctx, dir, s.name, s.value); err != nil {
			return errors.Fmt("uploading secret %s: %w", s.name, err)
		}
		logging.Infof(ctx, "uploaded secret %s", s.name)
	}
	return nil
}
