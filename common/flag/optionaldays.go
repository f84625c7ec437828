// Copyright 2024 The Serverless Registry Authors.
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

// Package flag provides custom flag.Value implementations.
package flag

import (
	"strconv"

	"github.com/serverless-registry/deploytool/common/errors"
)

// OptionalDays is a flag.Getter holding an optional non-negative count of
// days.
//
// Setting it to an empty string clears it (Valid becomes false). This is how
// callers opt out of a retention rule that has a non-empty default.
type OptionalDays struct {
	Valid bool
	Days  int
}

// Days returns a set OptionalDays with the given count.
func Days(n int) OptionalDays {
	return OptionalDays{Valid: true, Days: n}
}

// String implements flag.Value. An unset value renders as "".
func (d *OptionalDays) String() string {
	if !d.Valid {
		return ""
	}
	return strconv.Itoa(d.Days)
}

// Set implements flag.Value.
func (d *OptionalDays) Set(s string) error {
	if s == "" {
		*d = OptionalDays{}
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.Fmt("not a number of days: %q", s)
	}
	if n < 0 {
		return errors.Fmt("number of days must be non-negative, got %d", n)
	}
	*d = OptionalDays{Valid: true, Days: n}
	return nil
}

// Get implements flag.Getter, returning an OptionalDays value.
func (d *OptionalDays) Get() any {
	return *d
}
