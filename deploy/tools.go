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
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/serverless-registry/deploytool/common/errors"
	"github.com/serverless-registry/deploytool/common/logging"
)

// invocation describes a single run of an external tool.
type invocation struct {
	args  []string // arguments, excluding the tool name
	dir   string   // working directory; "" is the current one
	env   []string // extra KEY=value entries appended to the inherited env
	stdin string   // fed to the child's stdin when non-empty
}

// output is what a finished invocation wrote.
type output struct {
	stdout string
	stderr string
}

// runnerFunc executes a named tool. Tests install fakes that never fork.
type runnerFunc func(ctx context.Context, name string, inv invocation) (output, error)

// tool is one external executable driven by the workflow.
type tool struct {
	name string
	run  runnerFunc
}

func newTool(name string) *tool {
	return &tool{name: name, run: execRunner}
}

// exec runs the tool once.
//
// Failures come back wrapped with the command line and the tail of the
// child's stderr. Secret values are only ever passed via stdin or the
// environment, so logging argv is safe.
func (t *tool) exec(ctx context.Context, inv invocation) (output, error) {
	logging.Debugf(ctx, "running: %s %s", t.name, strings.Join(inv.args, " "))
	out, err := t.run(ctx, t.name, inv)
	if err != nil {
		return out, errors.Fmt("%s %s: %w%s",
			t.name, strings.Join(inv.args, " "), err, stderrTail(out.stderr))
	}
	return out, nil
}

// stderrTail renders the last lines of a failed child's stderr for
// inclusion in the error message.
func stderrTail(stderr string) string {
	s := strings.TrimSpace(stderr)
	if s == "" {
		return ""
	}
	const keep = 10
	lines := strings.Split(s, "\n")
	if len(lines) > keep {
		lines = lines[len(lines)-keep:]
	}
	return "\nstderr:\n" + strings.Join(lines, "\n")
}

// execRunner is the production runnerFunc, on os/exec.
func execRunner(ctx context.Context, name string, inv invocation) (output, error) {
	cmd := exec.CommandContext(ctx, name, inv.args...)
	cmd.Dir = inv.dir
	if len(inv.env) > 0 {
		cmd.Env = append(os.Environ(), inv.env...)
	}
	if inv.stdin != "" {
		cmd.Stdin = strings.NewReader(inv.stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return output{stdout: stdout.String(), stderr: stderr.String()}, err
}

// toolset binds the external executables the workflow drives. All three
// must be on PATH.
type toolset struct {
	git      *tool
	npm      *tool
	wrangler *tool
}

func newToolset() *toolset {
	return &toolset{
		git:      newTool("git"),
		npm:      newTool("npm"),
		wrangler: newTool("wrangler"),
	}
}
