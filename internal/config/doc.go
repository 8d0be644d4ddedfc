// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional YAML file, an optional .env
// file and environment variables). It provides type-safe access to the
// server settings, the identity values echoed in every /bfhl response and
// the classifier policies, keeping them out of business logic.
package config
