// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded request bodies before they reach the
// service layer.
//
// Failures are reported as a single validation error carrying one
// human-readable message per failing field, in field order, so the HTTP
// responder can render them as the 400 message list:
//
//	{"statusCode":400,"message":["login is required","password must be at least 8 characters long"]}
//
// Field names in messages are the JSON names clients send.
package validators

import "context"

// Validator checks a request struct against its `validate` tags.
type Validator interface {
	// Validate checks obj. When fields are given, only those struct fields
	// are checked.
	Validate(ctx context.Context, obj any, fields ...string) error
}
