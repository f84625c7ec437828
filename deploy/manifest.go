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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/serverless-registry/deploytool/common/errors"
	"github.com/serverless-registry/deploytool/common/logging"
)

// Manifest and deployment constants, fixed by the worker project.
const (
	manifestName      = "wrangler.json"
	entryPoint        = "index.ts"
	compatibilityDate = "2024-09-23"
	bucketBinding     = "REGISTRY"
	deployEnv         = "production"
	buildOutputDir    = "dist"

	// registriesVar is the environment variable carrying the pull-through
	// registry list; upstreamTokenEnv names the secret its password comes
	// from.
	registriesVar    = "REGISTRIES_JSON"
	upstreamTokenEnv = "REGISTRY_TOKEN"
)

var compatibilityFlags = []string{"nodejs_compat"}

// The manifest document. Field order fixes the emitted JSON's section
// order.
type manifestDoc struct {
	Routes             []manifestRoute        `json:"routes,omitempty"`
	Name               string                 `json:"name"`
	WorkersDev         bool                   `json:"workers_dev"`
	Main               string                 `json:"main"`
	CompatibilityDate  string                 `json:"compatibility_date"`
	CompatibilityFlags []string               `json:"compatibility_flags"`
	Observability      manifestObservability  `json:"observability"`
	Env                map[string]manifestEnv `json:"env"`
}

type manifestRoute struct {
	Pattern      string `json:"pattern"`
	CustomDomain bool   `json:"custom_domain"`
}

type manifestObservability struct {
	Enabled bool `json:"enabled"`
}

type manifestEnv struct {
	R2Buckets []manifestBucket  `json:"r2_buckets"`
	Vars      map[string]string `json:"vars,omitempty"`
}

type manifestBucket struct {
	Binding    string `json:"binding"`
	BucketName string `json:"bucket_name"`
}

// upstreamEntry is one element of the pull-through registry list carried in
// registriesVar.
type upstreamEntry struct {
	Registry    string `json:"registry"`
	PasswordEnv string `json:"password_env"`
	Username    string `json:"username"`
}

// RenderManifest produces the wrangler.json bytes for the configuration.
//
// The manifest is built as a typed document and marshalled in one go, so
// the output is well-formed by construction and deterministic: the same
// configuration always renders the same bytes.
//
// The worker's production environment always binds the R2 bucket. The
// custom domain route and the pull-through registry list appear only when
// configured; the upstream password itself never does (it travels as a
// secret).
func RenderManifest(cfg Config) ([]byte, error) {
	doc := manifestDoc{
		Name:               WorkerName,
		WorkersDev:         cfg.WorkersDev(),
		Main:               entryPoint,
		CompatibilityDate:  compatibilityDate,
		CompatibilityFlags: compatibilityFlags,
		Observability:      manifestObservability{Enabled: true},
	}
	if cfg.CustomDomain != "" {
		doc.Routes = []manifestRoute{{Pattern: cfg.CustomDomain, CustomDomain: true}}
	}

	env := manifestEnv{
		R2Buckets: []manifestBucket{{Binding: bucketBinding, BucketName: cfg.BucketName}},
	}
	if cfg.UpstreamUsername != "" && cfg.UpstreamPassword != "" {
		upstream, err := json.Marshal([]upstreamEntry{{
			Registry:    cfg.UpstreamRegistry,
			PasswordEnv: upstreamTokenEnv,
			Username:    cfg.UpstreamUsername,
		}})
		if err != nil {
			return nil, errors.Fmt("encoding the upstream registry list: %w", err)
		}
		env.Vars = map[string]string{registriesVar: string(upstream)}
	}
	doc.Env = map[string]manifestEnv{deployEnv: env}

	blob, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, errors.Fmt("encoding the manifest: %w", err)
	}
	return append(blob, '\n'), nil
}

// writeManifest renders the manifest into the checkout and verifies the
// write landed: the file read back from disk must name the configured
// bucket. Deploying with a manifest that binds the wrong bucket would
// silently serve someone else's data, so a failed verification is fatal.
func writeManifest(ctx context.Context, cfg Config, dir string) (path string, size int, err error) {
	blob, err := RenderManifest(cfg)
	if err != nil {
		return "", 0, err
	}
	path = filepath.Join(dir, manifestName)
	if err := os.WriteFile(path, blob, 0644); err != nil {
		return "", 0, errors.Fmt("writing the manifest: %w", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		return "", 0, errors.Fmt("reading back the manifest: %w", err)
	}
	want := fmt.Sprintf("%q: %q", "bucket_name", cfg.BucketName)
	if !strings.Contains(string(written), want) {
		return "", 0, errors.Fmt("the manifest at %s does not bind bucket %q, refusing to deploy with it", path, cfg.BucketName)
	}

	logging.Fields{
		"path": path,
		"size": humanize.Bytes(uint64(len(written))),
	}.Infof(ctx, "wrote the deployment manifest")
	return path, len(written), nil
}
