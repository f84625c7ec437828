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

// Result is what a successful deployment produced, for the operator
// report.
type Result struct {
	// Config is the effective configuration, provisioned credentials
	// included.
	Config Config
	// Checkout is the source tree that was deployed.
	Checkout Checkout
	// ManifestPath is where the rendered manifest was written, and
	// ManifestSize its size in bytes.
	ManifestPath string
	ManifestSize int
}

// Pipeline runs deployments. NewPipeline binds the production tools; the
// zero value is not usable.
type Pipeline struct {
	tools   *toolset
	fetcher *fetcher
}

// NewPipeline returns a Pipeline driving the real git, npm and wrangler
// executables.
func NewPipeline() *Pipeline {
	ts := newToolset()
	return &Pipeline{tools: ts, fetcher: newFetcher(ts.git)}
}

// Run executes a full deployment: fetch the source, provision credentials,
// render the manifest, reconcile the bucket and its lifecycle rules,
// install dependencies, upload secrets, deploy the worker.
//
// Steps run strictly in that order and the first failure aborts the run,
// wrapped with the failing step's name. Nothing is rolled back: a failed
// run is re-run after fixing the cause.
func (p *Pipeline) Run(ctx context.Context, cfg Config) (*Result, error) {
	// Building the client validates the platform credentials, so a
	// misconfigured run terminates before the first side effect.
	w, err := newWrangler(p.tools.wrangler, cfg)
	if err != nil {
		return nil, err
	}

	res := &Result{Config: cfg}
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"fetch repository", func(ctx context.Context) error {
			co, err := p.fetcher.fetch(ctx, cfg)
			if err != nil {
				return err
			}
			res.Checkout = *co
			return nil
		}},
		{"provision credentials", func(ctx context.Context) error {
			provisioned, err := provisionCredentials(ctx, cfg)
			if err != nil {
				return err
			}
			cfg = provisioned
			res.Config = provisioned
			return nil
		}},
		{"render manifest", func(ctx context.Context) error {
			path, size, err := writeManifest(ctx, cfg, res.Checkout.Dir)
			if err != nil {
				return err
			}
			res.ManifestPath = path
			res.ManifestSize = size
			return nil
		}},
		{"reconcile bucket lifecycle", func(ctx context.Context) error {
			return reconcileLifecycle(ctx, w, cfg)
		}},
		{"install dependencies", func(ctx context.Context) error {
			return installDependencies(ctx, p.tools.npm, res.Checkout.Dir)
		}},
		{"configure secrets", func(ctx context.Context) error {
			return configureSecrets(ctx, w, cfg, res.Checkout.Dir)
		}},
		{"deploy worker", func(ctx context.Context) error {
			return deployWorker(ctx, w, res.Checkout.Dir)
		}},
	}

	for _, s := range steps {
		logging.Infof(ctx, "step: %s", s.name)
		if err := s.run(ctx); err != nil {
			return nil, errors.Fmt("step %s: %w", s.name, err)
		}
	}
	return res, nil
}

// RunLifecycle reconciles only the bucket and its lifecycle rules. It
// needs no source checkout.
func (p *Pipeline) RunLifecycle(ctx context.Context, cfg Config) error {
	w, err := newWrangler(p.tools.wrangler, cfg)
	if err != nil {
		return err
	}
	return reconcileLifecycle(ctx, w, cfg)
}
