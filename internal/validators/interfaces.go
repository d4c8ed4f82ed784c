// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input locally before any request is made.
//
// Rules live on the model structs as go-playground/validator tags; this
// package runs them and folds the field errors into one user-facing
// [ValidationError] per form.
package validators

import "context"

// Validator validates arbitrary input values. When fields are given only
// those fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
