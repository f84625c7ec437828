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
	"encoding/base64"

	"github.com/serverless-registry/deploytool/common/data/rand/cryptorand"
	"github.com/serverless-registry/deploytool/common/errors"
	"github.com/serverless-registry/deploytool/common/logging"
)

// generatedPasswordLen is the length of generated registry passwords.
const generatedPasswordLen = 16

// provisionCredentials returns a copy of cfg with the registry credentials
// filled in: the default username when none was given, and a freshly
// generated password when none was given.
//
// A generated password is echoed to the operator through the log. Nothing
// else records it, so losing that output means redeploying.
func provisionCredentials(ctx context.Context, cfg Config) (Config, error) {
	if cfg.Username == "" {
		cfg.Username = DefaultUsername
		logging.Infof(ctx, "no registry username given, using %q", cfg.Username)
	}
	if cfg.Password == "" {
		pw, err := generatePassword(ctx)
		if err != nil {
			return cfg, errors.Fmt("generating a registry password: %w", err)
		}
		cfg.Password = pw
		logging.Infof(ctx, "generated registry password: %s", pw)
	}
	return cfg, nil
}

// generatePassword returns generatedPasswordLen characters of [A-Za-z0-9],
// collected from base64-encoded random bytes with the symbol characters
// dropped.
func generatePassword(ctx context.Context) (string, error) {
	out := make([]byte, 0, 2*generatedPasswordLen)
	buf := make([]byte, 3*generatedPasswordLen)
	for len(out) < generatedPasswordLen {
		if _, err := cryptorand.Read(ctx, buf); err != nil {
			return "", err
		}
		for _, c := range []byte(base64.StdEncoding.EncodeToString(buf)) {
			if isAlnum(c) {
				out = append(out, c)
			}
		}
	}
	return string(out[:generatedPasswordLen]), nil
}

func isAlnum(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	return false
}
