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

// Package deploy implements the serverless registry deployment workflow.
//
// A deployment fetches the registry worker source, renders its deployment
// manifest, reconciles the backing R2 bucket and its retention rules,
// installs the worker's dependencies, uploads its secrets and deploys it,
// all by driving the git, npm and wrangler command line tools. Pipeline
// runs those steps in order and fails fast: the first error aborts the run
// and nothing is rolled back.
package deploy
