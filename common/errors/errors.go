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

// Package errors is a drop-in replacement for the standard errors package
// with helpers to attach context to errors as they travel up the stack.
//
// Errors are wrapped, not mutated: use Fmt with a %w verb (or WrapIf) to
// prefix an error with the operation that failed, and the standard Is/As
// machinery keeps working on the result.
package errors

import (
	"errors"
	"fmt"
)

// New is a passthrough version of the standard errors.New.
func New(text string) error {
	return errors.New(text)
}

// Fmt is a passthrough version of the standard fmt.Errorf.
//
// It exists so that code wrapping errors does not need to import both this
// package and fmt. Use a trailing ": %w" to preserve the cause:
//
//	return errors.Fmt("removing lifecycle rule %q: %w", id, err)
func Fmt(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// WrapIf prefixes a non-nil error with additional context.
//
// If err is nil, returns nil, which makes it safe to use on the final
// return of a function:
//
//	return errors.WrapIf(doStuff(), "doing stuff for %q", name)
func WrapIf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is is a passthrough version of the standard errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a passthrough version of the standard errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap is a passthrough version of the standard errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join is a passthrough version of the standard errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
