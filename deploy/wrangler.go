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
	"strconv"
	"strings"

	"github.com/serverless-registry/deploytool/common/data/stringset"
	"github.com/serverless-registry/deploytool/common/errors"
	"github.com/serverless-registry/deploytool/common/logging"
)

// Wrangler is the client for the deployment platform.
//
// The production implementation shells out to the wrangler CLI. Tests
// install fakes.
type Wrangler interface {
	// EnsureBucket creates the bucket. A bucket that already exists is fine.
	EnsureBucket(ctx context.Context, bucket string) error

	// ListLifecycleRuleIDs returns the identifiers of the lifecycle rules
	// currently set on the bucket.
	ListLifecycleRuleIDs(ctx context.Context, bucket string) ([]string, error)

	// RemoveLifecycleRule deletes one lifecycle rule by identifier.
	RemoveLifecycleRule(ctx context.Context, bucket, id string) error

	// AddLifecycleRule creates a lifecycle rule. Its identifier derives
	// from the rule's kind.
	AddLifecycleRule(ctx context.Context, bucket string, r LifecycleRule) error

	// PutSecret uploads one secret of the worker's production environment,
	// delivering the value on the CLI's stdin. dir is the checkout holding
	// the manifest.
	PutSecret(ctx context.Context, dir, name, value string) error

	// Deploy builds and deploys the worker from the checkout at dir.
	Deploy(ctx context.Context, dir string) error
}

// wranglerCLI implements Wrangler on the wrangler executable.
type wranglerCLI struct {
	tool *tool
	env  []string
}

var _ Wrangler = (*wranglerCLI)(nil)

// newWrangler builds the production client.
//
// The platform credentials are checked here, before the pipeline has done
// anything, so a misconfigured run terminates without side effects.
func newWrangler(t *tool, cfg Config) (*wranglerCLI, error) {
	if cfg.APIToken == "" {
		return nil, errors.New("a Cloudflare API token is required (-cf-token)")
	}
	if cfg.AccountID == "" {
		return nil, errors.New("a Cloudflare account ID is required (-cf-account-id)")
	}
	return &wranglerCLI{
		tool: t,
		env: []string{
			"CLOUDFLARE_API_TOKEN=" + cfg.APIToken,
			"CLOUDFLARE_ACCOUNT_ID=" + cfg.AccountID,
		},
	}, nil
}

func (w *wranglerCLI) EnsureBucket(ctx context.Context, bucket string) error {
	_, err := w.tool.exec(ctx, invocation{
		args: []string{"r2", "bucket", "create", bucket},
		env:  w.env,
	})
	switch {
	case err == nil:
		logging.Infof(ctx, "created bucket %q", bucket)
	case isAlreadyExists(err):
		logging.Warningf(ctx, "bucket %q already exists, reusing it", bucket)
	default:
		return err
	}
	return nil
}

// isAlreadyExists recognizes the CLI's bucket collision failure. 10004 is
// the platform's "bucket already exists" error code.
func isAlreadyExists(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "10004")
}

func (w *wranglerCLI) ListLifecycleRuleIDs(ctx context.Context, bucket string) ([]string, error) {
	out, err := w.tool.exec(ctx, invocation{
		args: []string{"r2", "bucket", "lifecycle", "list", bucket},
		env:  w.env,
	})
	if err != nil {
		return nil, err
	}
	return parseLifecycleListing(out.stdout), nil
}

func (w *wranglerCLI) RemoveLifecycleRule(ctx context.Context, bucket, id string) error {
	_, err := w.tool.exec(ctx, invocation{
		args: []string{"r2", "bucket", "lifecycle", "remove", bucket, "--id", id},
		env:  w.env,
	})
	return err
}

func (w *wranglerCLI) AddLifecycleRule(ctx context.Context, bucket string, r LifecycleRule) error {
	_, err := w.tool.exec(ctx, invocation{
		args: []string{
			"r2", "bucket", "lifecycle", "add", bucket,
			"--id", r.Kind.RuleID(),
			r.Kind.cliFlag(), strconv.Itoa(r.Days),
		},
		env: w.env,
	})
	return err
}

func (w *wranglerCLI) PutSecret(ctx context.Context, dir, name, value string) error {
	_, err := w.tool.exec(ctx, invocation{
		args:  []string{"secret", "put", name, "-c", manifestName, "--env", deployEnv},
		dir:   dir,
		env:   w.env,
		stdin: value,
	})
	return err
}

func (w *wranglerCLI) Deploy(ctx context.Context, dir string) error {
	_, err := w.tool.exec(ctx, invocation{
		args: []string{"deploy", "-c", manifestName, "--env", deployEnv, "--outdir", buildOutputDir},
		dir:  dir,
		env:  w.env,
	})
	return err
}

// parseLifecycleListing extracts rule identifiers from the CLI's lifecycle
// listing.
//
// The listing is human-oriented and its shape has changed across CLI
// releases. Box-drawn table rows are read properly (the first cell of a
// body row is the rule ID); on any other line only the managed identifiers
// are recognized, as standalone tokens. The result is sorted and
// duplicate-free.
func parseLifecycleListing(listing string) []string {
	managed := stringset.NewFromSlice(RuleExpireObjects, RuleAbortMultipart, RuleIATransition)
	ids := stringset.New(managed.Len())
	for _, line := range strings.Split(listing, "\n") {
		if id, ok := tableRowID(line); ok {
			ids.Add(id)
			continue
		}
		for _, tok := range strings.FieldsFunc(line, isTokenBoundary) {
			if managed.Has(tok) {
				ids.Add(tok)
			}
		}
	}
	return ids.ToSortedSlice()
}

// tableRowID returns the first cell of a table body row, if line is one.
func tableRowID(line string) (string, bool) {
	sep := "│"
	if !strings.Contains(line, sep) {
		sep = "|"
		if !strings.Contains(line, sep) {
			return "", false
		}
	}
	for _, cell := range strings.Split(line, sep) {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if isHeaderCell(cell) {
			return "", false
		}
		return cell, true
	}
	return "", false
}

func isHeaderCell(cell string) bool {
	switch strings.ToLower(cell) {
	case "id", "name", "rule id":
		return true
	}
	return false
}

func isTokenBoundary(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case r == '-' || r == '_':
		return false
	}
	return true
}
