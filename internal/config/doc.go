// Package config loads and merges application configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults. The first source to set a field wins; defaults fill
// whatever remains zero-valued.
package config
