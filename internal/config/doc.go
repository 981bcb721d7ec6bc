// Package config provides configuration loading, merging, and validation
// facilities for team-vault.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file (path from TEAMVAULT_CONFIG or --config)
//  3. Environment variables, all prefixed with TEAMVAULT_
//  4. Command-line flags that were explicitly set
//
// The main entry point is [GetStructuredConfig].
package config
