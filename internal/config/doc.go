// Package config manages user-level settings stored at
// ~/.swiftinit/config.yaml. It provides functions to load, read, and write
// configuration keys such as the default init mode used when `init --mode`
// is not given, and validates the file against an embedded JSON Schema.
package config
