// Package config provides configuration loading, merging, and validation
// facilities for the pet locator client and the devnet simulator.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] and [GetDevnetConfig], which
// project the merged [StructuredConfig] onto the settings each binary needs.
package config
