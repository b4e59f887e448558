// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The result is an immutable [StructuredConfig] value built once by
// [GetStructuredConfig] and injected into the components that need it.
package config
