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
	"os"

	gogit "github.com/go-git/go-git/v5"

	"github.com/serverless-registry/deploytool/common/errors"
	"github.com/serverless-registry/deploytool/common/logging"
	"github.com/serverless-registry/deploytool/common/system/filesystem"
)

// Checkout is a fetched source tree.
type Checkout struct {
	// Dir is the path of the working tree.
	Dir string
	// Revision is the commit the tree is checked out at.
	Revision string
}

// fetcher produces fresh checkouts of the registry source.
type fetcher struct {
	git *tool

	// resolveRevision reads the checked out HEAD. Injectable, so tests that
	// fake the git tool do not need a repository on disk.
	resolveRevision func(dir string) (string, error)
}

func newFetcher(git *tool) *fetcher {
	return &fetcher{git: git, resolveRevision: resolveHead}
}

// fetch clobbers the working directory and checks out the requested
// revision, or the default branch tip when none is pinned.
func (f *fetcher) fetch(ctx context.Context, cfg Config) (*Checkout, error) {
	dir := CheckoutDir
	if _, err := os.Stat(dir); err == nil {
		logging.Infof(ctx, "removing stale checkout %q", dir)
	} else if !filesystem.IsNotExist(err) {
		return nil, errors.Fmt("inspecting %q: %w", dir, err)
	}
	if err := filesystem.RemoveAll(dir); err != nil {
		return nil, err
	}

	if _, err := f.git.exec(ctx, invocation{
		args: []string{"clone", "--depth", "1", "--single-branch", SourceURL, dir},
	}); err != nil {
		return nil, err
	}

	if cfg.CommitRef != "" {
		// The shallow clone only has the branch tip. Fetch the pinned
		// commit explicitly before moving the tree onto it.
		if _, err := f.git.exec(ctx, invocation{
			args: []string{"fetch", "origin", cfg.CommitRef},
			dir:  dir,
		}); err != nil {
			return nil, err
		}
		if _, err := f.git.exec(ctx, invocation{
			args: []string{"checkout", cfg.CommitRef},
			dir:  dir,
		}); err != nil {
			return nil, err
		}
	}

	rev, err := f.resolveRevision(dir)
	if err != nil {
		return nil, errors.Fmt("resolving the checked out revision: %w", err)
	}
	logging.Fields{
		"url":      SourceURL,
		"revision": rev,
	}.Infof(ctx, "checked out registry source")
	return &Checkout{Dir: dir, Revision: rev}, nil
}

// resolveHead reads the HEAD commit of the repository at dir.
func resolveHead(dir string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", err
	}
	return head.Hash().String(), nil
}
