// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the declarative request validation pipeline.
//
// Core concepts:
//   - Field: one row of a rule table. It names where the value lives (body,
//     query string or path), a JSON-Schema fragment, the messages reported
//     when the value is missing or malformed, ordered domain checks and an
//     optional sanitizer.
//   - Schema: an ordered list of fields compiled once into gojsonschema
//     documents. A single interpreter evaluates every schema.
//   - Schemas: the route schemas of the API, built from Dependencies.
//
// Every field is evaluated. Failing fields are reported in declared order and
// joined into a single ValidationError. Sanitizers run only for fields that
// passed and rewrite the decoded input in place.
package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/occupa-lo-studente/internal/store"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

// Validator validates and sanitizes decoded request input.
type Validator interface {

	// Validate evaluates every field of the schema against in. Sanitized
	// values replace the originals in in.
	Validate(ctx context.Context, in *Input) error
}

// URLProber reports whether a URL points to a reachable resource.
type URLProber interface {
	Exists(ctx context.Context, rawURL string) bool
}

// AgencyLookup loads an agency for the approval check.
type AgencyLookup interface {
	FindOne(ctx context.Context, filter store.AgencyFilter, opts store.FindOptions) (*models.Agency, error)
}

// Dependencies are the collaborators used by the domain checks.
// EmailSuffix restricts student email addresses and accepts any when empty.
// Now defaults to time.Now.
type Dependencies struct {
	Prober      URLProber
	Agencies    AgencyLookup
	EmailSuffix string
	Now         func() time.Time
}
