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
	"flag"

	"github.com/serverless-registry/deploytool/common/errors"
	deployflag "github.com/serverless-registry/deploytool/common/flag"
)

// Fixed parameters of the registry worker. The upstream project's layout
// (worker name, entry point, compatibility settings) is not configurable.
const (
	// SourceURL is the repository the worker is built from.
	SourceURL = "https://github.com/cloudflare/serverless-registry"

	// CheckoutDir is where the source is fetched, relative to the current
	// directory. It is clobbered at the start of every run and left on disk
	// afterwards.
	CheckoutDir = "serverless-registry"

	// WorkerName is the name the worker is deployed under.
	WorkerName = "serverless-registry"

	// DefaultBucket is the R2 bucket holding registry data unless
	// overridden.
	DefaultBucket = "r2-registry"

	// DefaultUsername is the registry username used when none is given.
	DefaultUsername = "admin"

	// DefaultUpstreamRegistry is the registry missing images are pulled
	// through from.
	DefaultUpstreamRegistry = "https://registry-1.docker.io"
)

// Default retention windows, in days.
const (
	DefaultExpireDays         = 30
	DefaultAbortMultipartDays = 1
	DefaultIATransitionDays   = 14
)

// Config is everything one deployment needs, assembled from command line
// flags.
//
// It is treated as immutable once parsed: steps that derive values, such as
// credential provisioning, return updated copies instead of mutating it.
type Config struct {
	// CommitRef pins the revision to deploy. Empty deploys the tip of the
	// default branch.
	CommitRef string

	// APIToken and AccountID authenticate wrangler against Cloudflare. They
	// are handed to the CLI through its environment, never on a command
	// line.
	APIToken  string
	AccountID string

	// CustomDomain, if set, routes the registry on a custom domain.
	CustomDomain string

	// DevDomainEnabled is the verbatim flag value controlling the default
	// workers.dev domain. Only the exact string "false" disables it.
	DevDomainEnabled string

	// BucketName is the R2 bucket backing the registry.
	BucketName string

	// Retention windows for the managed bucket lifecycle rules. An unset
	// value means the corresponding rule is removed and not recreated.
	ExpireDays         deployflag.OptionalDays
	AbortMultipartDays deployflag.OptionalDays
	IATransitionDays   deployflag.OptionalDays

	// Username and Password are the registry credentials. Blank values are
	// filled in by credential provisioning.
	Username string
	Password string

	// UpstreamUsername and UpstreamPassword authenticate against the
	// upstream registry. Pull-through configuration is emitted only when
	// both are set.
	UpstreamUsername string
	UpstreamPassword string

	// UpstreamRegistry is the registry missing images are pulled from.
	UpstreamRegistry string
}

// NewConfig returns a Config with every default filled in.
func NewConfig() Config {
	return Config{
		DevDomainEnabled:   "true",
		BucketName:         DefaultBucket,
		ExpireDays:         deployflag.Days(DefaultExpireDays),
		AbortMultipartDays: deployflag.Days(DefaultAbortMultipartDays),
		IATransitionDays:   deployflag.Days(DefaultIATransitionDays),
		UpstreamRegistry:   DefaultUpstreamRegistry,
	}
}

// RegisterFlags registers the deployment flags on fs.
//
// Every flag consumes a value token, including the enable/disable ones, so
// "-default-worker-domain-enabled false" parses as one flag and one value.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.CommitRef, "commit-sha", c.CommitRef,
		"Commit to deploy. Defaults to the tip of the default branch.")
	fs.StringVar(&c.APIToken, "cf-token", c.APIToken,
		"Cloudflare API token with Workers and R2 permissions.")
	fs.StringVar(&c.AccountID, "cf-account-id", c.AccountID,
		"Cloudflare account to deploy into.")
	fs.StringVar(&c.CustomDomain, "domain", c.CustomDomain,
		"Custom domain to route the registry on. Optional.")
	fs.StringVar(&c.DevDomainEnabled, "default-worker-domain-enabled", c.DevDomainEnabled,
		`Whether the worker keeps its default workers.dev domain. Only the exact value "false" disables it.`)
	fs.StringVar(&c.BucketName, "r2-bucket", c.BucketName,
		"Name of the R2 bucket holding registry data.")
	fs.Var(&c.ExpireDays, "r2-bucket-expire-days",
		"Days until uploaded objects are deleted. An empty value disables the rule.")
	fs.Var(&c.AbortMultipartDays, "r2-bucket-abort-multipart",
		"Days until incomplete multipart uploads are aborted. An empty value disables the rule.")
	fs.Var(&c.IATransitionDays, "r2-bucket-ia-transition",
		"Days until objects move to Infrequent Access storage. An empty value disables the rule.")
	fs.StringVar(&c.Username, "username", c.Username,
		`Registry username. Defaults to "`+DefaultUsername+`".`)
	fs.StringVar(&c.Password, "password", c.Password,
		"Registry password. A random one is generated and echoed when empty.")
	fs.StringVar(&c.UpstreamUsername, "upstream-username", c.UpstreamUsername,
		"Username for the upstream registry.")
	fs.StringVar(&c.UpstreamPassword, "upstream-password", c.UpstreamPassword,
		"Password for the upstream registry.")
	fs.StringVar(&c.UpstreamRegistry, "upstream-registry", c.UpstreamRegistry,
		"URL of the upstream registry missing images are pulled from.")
}

// WorkersDev reports whether the worker keeps its default workers.dev
// domain. Anything but the exact string "false" keeps it.
func (c Config) WorkersDev() bool {
	return c.DevDomainEnabled != "false"
}

// Validate checks the cross-field constraints flag parsing cannot.
//
// It does not check the Cloudflare credentials: those are validated when
// the wrangler client is built, so commands that never call the platform
// (like rendering a manifest) work without them.
func (c Config) Validate() error {
	if c.CustomDomain == "" && !c.WorkersDev() {
		return errors.New("the worker would be unreachable: pass -domain, or leave -default-worker-domain-enabled on")
	}
	return nil
}
